package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGOTPGenerator_RandomCode(t *testing.T) {
	generator := NewGOTPGenerator()

	code := generator.RandomCode(6)

	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
	}
}

func TestGOTPGenerator_RandomCodeLength(t *testing.T) {
	generator := NewGOTPGenerator()

	assert.Len(t, generator.RandomCode(4), 4)
	assert.Len(t, generator.RandomCode(8), 8)
}

package otp

import (
	"github.com/xlzd/gotp"
)

// Generator creates short-lived numeric verification codes.
type Generator interface {
	RandomCode(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a numeric code of the given length derived from a
// throwaway random secret, so consecutive calls are independent.
func (g *GOTPGenerator) RandomCode(length int) string {
	secret := gotp.RandomSecret(16)
	return gotp.NewTOTP(secret, length, 30, nil).Now()
}

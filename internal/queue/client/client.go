package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"

	"github.com/job-finder/backend/internal/config"
	"github.com/job-finder/backend/internal/queue/asynqserver"
)

type ctxKey int

const (
	_ ctxKey = iota
	asynqCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// New builds an asynq client against the same redis the queue server uses.
func New(cfg config.Cache) *asynq.Client {
	return asynq.NewClient(asynqserver.RedisOptions(cfg))
}

// WithClient binds a client to ctx, overriding the global one for calls
// made with that ctx.
func WithClient(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, asynqCtxKey, client)
}

// GetClient returns the client bound to ctx if any, otherwise the global
// one set via SetClient. A nil result means enqueueing is disabled (tests,
// tooling). Safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	if c := ctx.Value(asynqCtxKey); c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}
		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global client and returns a function restoring
// the previous value. Safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}

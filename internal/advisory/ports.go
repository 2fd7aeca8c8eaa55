package advisory

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks Notifier,Store,Observer

import (
	"context"
)

// Notifier delivers notification requests to the user's device.
type Notifier interface {
	// RequestAuthorization asks whether delivery is permitted.
	RequestAuthorization(ctx context.Context) (bool, error)
	// Deliver hands a request off for delivery.
	Deliver(ctx context.Context, req Request) error
}

// Store is the key-value capability holding cooldown timestamps and the
// audit trail. storage.Store satisfies it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Append(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, key string) ([][]byte, error)
}

// Observer receives the outcome of every suggestion dispatch.
type Observer interface {
	Observe(ctx context.Context, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, outcome Outcome)

func (f ObserverFunc) Observe(ctx context.Context, outcome Outcome) {
	f(ctx, outcome)
}

// Package local delivers notification requests in-process. A Worker drains
// the queue and presents each request once its trigger delay has elapsed.
package local

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cardwise/internal/advisory"
)

var (
	ErrNotAuthorized = errors.New("notifications not authorized")
	ErrQueueFull     = errors.New("notification queue full")
)

const defaultQueueSize = 256

// Presenter shows a request to the user.
type Presenter func(ctx context.Context, req advisory.Request)

type pending struct {
	req advisory.Request
	due time.Time
}

// Notifier queues requests for a Worker.
type Notifier struct {
	granted bool
	queue   chan pending
	now     func() time.Time
}

type Option func(*Notifier)

// WithQueueSize sets the buffered queue capacity.
func WithQueueSize(n int) Option {
	return func(n2 *Notifier) {
		if n > 0 {
			n2.queue = make(chan pending, n)
		}
	}
}

// New builds a notifier. granted is the answer given to permission prompts.
func New(granted bool, opts ...Option) *Notifier {
	n := &Notifier{
		granted: granted,
		queue:   make(chan pending, defaultQueueSize),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) RequestAuthorization(_ context.Context) (bool, error) {
	return n.granted, nil
}

// Deliver enqueues req without blocking.
func (n *Notifier) Deliver(ctx context.Context, req advisory.Request) error {
	if !n.granted {
		return ErrNotAuthorized
	}
	p := pending{req: req, due: n.now().Add(req.TriggerDelay)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case n.queue <- p:
		return nil
	default:
		return ErrQueueFull
	}
}

// Worker presents queued requests when they fall due. Requests share one
// trigger delay in practice, so FIFO order matches due order.
type Worker struct {
	inbox   <-chan pending
	present Presenter
}

func NewWorker(n *Notifier, present Presenter) *Worker {
	return &Worker{inbox: n.queue, present: present}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p := <-w.inbox:
			if wait := time.Until(p.due); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
			}
			w.present(ctx, p.req)
		}
	}
}

// LogPresenter writes presented notifications to logger.
func LogPresenter(logger *slog.Logger) Presenter {
	return func(ctx context.Context, req advisory.Request) {
		logger.InfoContext(ctx, "notification presented",
			"notification_id", req.ID.String(),
			"title", req.Title,
			"body", req.Body,
			"sound", req.Sound,
			"interruption_level", req.InterruptionLevel,
		)
	}
}

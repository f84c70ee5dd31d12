// Package txhook defers work until the owning database transaction durably
// commits. It is the single swallow point for the audit pipeline: callback
// panics and errors are recovered and logged, never propagated back into the
// business write path, because by the time a callback runs the transaction
// has already committed and nothing can be rolled back.
package txhook

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// DefaultTimeout bounds one callback run. A hung persistence or publish
// call becomes a logged, swallowed failure instead of a leaked goroutine.
const DefaultTimeout = 30 * time.Second

// Hook collects callbacks to run once the transaction it is attached to
// commits. Rolled-back transactions never fire their callbacks.
type Hook struct {
	logger  *slog.Logger
	timeout time.Duration

	mu    sync.Mutex
	fns   []func(context.Context) error
	fired bool

	wg sync.WaitGroup
}

// Option configures a Hook.
type Option func(*Hook)

// WithTimeout overrides the per-run callback deadline.
func WithTimeout(d time.Duration) Option {
	return func(h *Hook) {
		if d > 0 {
			h.timeout = d
		}
	}
}

func New(logger *slog.Logger, opts ...Option) *Hook {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hook{logger: logger, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AfterCommit registers fn to run after commit. Registrations after the
// hook has fired are dropped with a log line; they belong to a write that
// misused its transaction scope.
func (h *Hook) AfterCommit(fn func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fired {
		h.logger.Warn("after-commit callback registered after commit, dropping")
		return
	}
	h.fns = append(h.fns, fn)
}

// Fire runs the registered callbacks in a single background goroutine, in
// registration order, detached from the caller. Each run gets a fresh
// deadline so one slow callback cannot starve the rest forever.
func (h *Hook) Fire() {
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		return
	}
	h.fired = true
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	if len(fns) == 0 {
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for _, fn := range fns {
			h.runOne(fn)
		}
	}()
}

func (h *Hook) runOne(fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("after-commit callback panicked", "panic", r)
		}
	}()
	if err := fn(ctx); err != nil {
		h.logger.Error("after-commit callback failed", "error", err)
	}
}

// Wait blocks until all fired callbacks finish. Used by graceful shutdown
// and tests; production writes never wait on their audit output.
func (h *Hook) Wait() {
	h.wg.Wait()
}

// Tx wraps a pgx transaction so that a successful Commit fires the hook.
type Tx struct {
	pgx.Tx
	hook *Hook
}

// WrapTx attaches hook to tx. Use the returned Tx for the rest of the write.
func WrapTx(tx pgx.Tx, hook *Hook) Tx {
	return Tx{Tx: tx, hook: hook}
}

func (t Tx) Commit(ctx context.Context) error {
	if err := t.Tx.Commit(ctx); err != nil {
		return err
	}
	t.hook.Fire()
	return nil
}

type ctxKey struct{}

// With stores the write's commit hook in context for the lifecycle hooks
// downstream. A context without a hook means audit was not requested.
func With(ctx context.Context, h *Hook) context.Context {
	if h == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, h)
}

// From extracts the commit hook from context if present.
func From(ctx context.Context) (*Hook, bool) {
	h, ok := ctx.Value(ctxKey{}).(*Hook)
	return h, ok
}

package spawnjoin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Launcher spawns workers, each bound to one Payload, and joins them.
type Launcher struct {
	g       *errgroup.Group
	out     io.Writer
	body    Body
	chain   Chain
	limit   int
	l       *slog.Logger
	metrics *Metrics
}

type Option func(*Launcher)

// WithLimit caps the number of workers alive at once. Spawning past the cap
// fails with a *SpawnError. A negative limit means no cap; zero rejects every
// spawn.
func WithLimit(n int) Option {
	return func(l *Launcher) { l.limit = n }
}

func WithLogger(lg *slog.Logger) Option {
	return func(l *Launcher) { l.l = lg }
}

// WithChain replaces the default chain, which only recovers panics.
func WithChain(c Chain) Option {
	return func(l *Launcher) { l.chain = c }
}

// WithWorker replaces Announce as the worker body. A nil body is ignored.
func WithWorker(b Body) Option {
	return func(l *Launcher) {
		if b != nil {
			l.body = b
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(l *Launcher) { l.metrics = m }
}

// NewLauncher returns a Launcher whose workers write to out.
func NewLauncher(out io.Writer, opts ...Option) *Launcher {
	l := &Launcher{
		g:     new(errgroup.Group),
		body:  Announce,
		chain: NewChain().Recover(),
		limit: -1,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.out = &lockedWriter{w: out}
	l.g.SetLimit(l.limit)
	return l
}

// Spawn starts a worker bound to p. On failure no handle is returned and the
// error is a *SpawnError.
func (l *Launcher) Spawn(ctx context.Context, p Payload) (*Handle, error) {
	h := newHandle(p)
	r := l.chain.Apply(l.body(p, l.out))

	ok := l.g.TryGo(func() error {
		defer close(h.done)
		if l.metrics != nil {
			l.metrics.ActiveWorkers.Inc()
			defer l.metrics.ActiveWorkers.Dec()
		}
		h.err = r.Run(ctx)
		return h.err
	})
	if !ok {
		if l.metrics != nil {
			l.metrics.SpawnFailures.Inc()
		}
		err := &SpawnError{Payload: p, Result: StartupExhausted}
		if l.l != nil {
			l.l.Error("spawn failed", "payload", p.msg, "error", err)
		}
		return nil, err
	}

	if l.metrics != nil {
		l.metrics.Spawned.Inc()
	}
	if l.l != nil {
		l.l.Debug("worker spawned", "id", h.id, "payload", p.msg)
	}
	return h, nil
}

// Await blocks until the worker behind h has returned and hands back its
// error. A handle can be awaited once.
func (l *Launcher) Await(h *Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	if !h.awaited.CompareAndSwap(false, true) {
		return fmt.Errorf("worker %s: %w", h.id, ErrAlreadyAwaited)
	}

	<-h.done

	if l.l != nil {
		l.l.Debug("worker joined", "id", h.id)
	}
	if h.err != nil {
		return fmt.Errorf("worker %s: %w", h.id, h.err)
	}
	return nil
}

// Wait blocks until every worker spawned so far has returned.
func (l *Launcher) Wait() {
	// Worker errors are delivered through Await.
	_ = l.g.Wait()
}

// Launch spawns one worker per payload, in order, then awaits them in the
// same order. The first spawn failure stops further spawning; workers that
// were already started are still awaited. The report holds one outcome per
// attempted spawn.
func (l *Launcher) Launch(ctx context.Context, payloads ...Payload) (Report, error) {
	handles := make([]*Handle, 0, len(payloads))
	report := make(Report, 0, len(payloads))

	var spawnErr error
	for i, p := range payloads {
		h, err := l.Spawn(ctx, p)
		report = append(report, Outcome{Label: label(i), Result: ResultOf(err)})
		if err != nil {
			spawnErr = err
			break
		}
		handles = append(handles, h)
	}

	errs := []error{spawnErr}
	for _, h := range handles {
		errs = append(errs, l.Await(h))
	}
	l.Wait()

	return report, errors.Join(errs...)
}

func label(i int) string {
	return fmt.Sprintf("Thread %d", i+1)
}

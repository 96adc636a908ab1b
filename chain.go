package spawnjoin

import (
	"context"
	"fmt"
	"log/slog"
)

// Decorator wraps a worker body. It receives the chain it belongs to so it
// can reach the chain's logger.
type Decorator func(Chain) func(Runnable) Runnable

// Chain is an immutable list of decorators applied to every worker body a
// Launcher spawns. Each method returns a new Chain.
type Chain struct {
	fs []Decorator
	l  *slog.Logger
}

// NewChain returns an empty chain.
func NewChain() Chain {
	return Chain{}
}

// Recover turns a panic in the wrapped body into an error, so the worker's
// handle still completes.
func (c Chain) Recover() Chain {
	return c.X(func(Chain) func(Runnable) Runnable {
		return func(next Runnable) Runnable {
			return F(func(ctx context.Context) (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("panic recovered: %v", r)
					}
				}()
				return next.Run(ctx)
			})
		}
	})
}

// Logged reports the outcome of the wrapped body on the chain's logger.
func (c Chain) Logged() Chain {
	return c.X(func(chain Chain) func(Runnable) Runnable {
		return func(next Runnable) Runnable {
			return F(func(ctx context.Context) error {
				err := next.Run(ctx)
				if chain.l == nil {
					return err
				}
				if err != nil {
					chain.l.Error("worker returned error", "error", err)
				} else {
					chain.l.Debug("worker finished")
				}
				return err
			})
		}
	})
}

// X method allows you to extend Chain with decorators of your own
func (c Chain) X(f Decorator) Chain {
	fs := make([]Decorator, len(c.fs), len(c.fs)+1)
	copy(fs, c.fs)

	return Chain{
		fs: append(fs, f),
		l:  c.l,
	}
}

// WithLogger sets the logger decorators see through their Chain argument.
func (c Chain) WithLogger(l *slog.Logger) Chain {
	c.l = l
	return c
}

// Apply wraps r so that the first decorator added is the outermost.
func (c Chain) Apply(r Runnable) Runnable {
	for i := len(c.fs) - 1; i >= 0; i-- {
		r = c.fs[i](c)(r)
	}
	return r
}


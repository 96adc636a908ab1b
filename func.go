package spawnjoin

import "context"

// F is an adapter to allow the use of ordinary functions as worker bodies.
var _ Runnable = (*F)(nil)

type F func(ctx context.Context) error

func (f F) Run(ctx context.Context) error {
	return f(ctx)
}

package pipeline

import (
	"context"

	"github.com/sourcegraph/conc/panics"
)

// Result carries the outcome of an operation started with Go.
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn on its own goroutine and delivers exactly one Result on the
// returned channel, which is then closed. A panic inside fn is recovered and
// delivered as an error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)

	go func() {
		defer close(out)

		var res Result[T]
		var pc panics.Catcher
		pc.Try(func() {
			res.Value, res.Err = fn(ctx)
		})
		if r := pc.Recovered(); r != nil {
			res = Result[T]{Err: r.AsError()}
		}
		out <- res
	}()

	return out
}

// Await blocks until ch delivers or ctx is done. When ctx wins, the
// operation keeps running to completion and its result is dropped.
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case r := <-ch:
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

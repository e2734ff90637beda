// Package reconcile refreshes the cached session user from the backend.
//
// Fetches run concurrently and are joined with a settle-all pattern: every
// outcome is collected and inspected on its own, so one failing source never
// hides the others.
package reconcile

import (
	"context"
	"fmt"
	"sync"
)

// Result is the settled outcome of one fetch
type Result[T any] struct {
	Source string
	Value  T
	Err    error
}

// OK reports whether the fetch succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Future is a fetch running in its own goroutine
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
}

// Go starts fn in a goroutine. A panic inside fn settles the future with an error.
func Go[T any](ctx context.Context, source string, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		done:   make(chan struct{}),
		result: Result[T]{Source: source},
	}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.result.Err = fmt.Errorf("%s panicked: %v", source, r)
			}
		}()
		f.result.Value, f.result.Err = fn(ctx)
	}()

	return f
}

// Await blocks until the fetch settles. It may be called any number of times.
func (f *Future[T]) Await() Result[T] {
	<-f.done
	return f.result
}

// Task is a named fetch for SettleAll
type Task[T any] struct {
	Source string
	Run    func(ctx context.Context) (T, error)
}

// SettleAll runs every task concurrently and waits for all of them. Results
// are in the order of tasks regardless of completion order.
func SettleAll[T any](ctx context.Context, tasks ...Task[T]) []Result[T] {
	results := make([]Result[T], len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task Task[T]) {
			defer wg.Done()
			results[i] = Go(ctx, task.Source, task.Run).Await()
		}(i, task)
	}
	wg.Wait()

	return results
}

// Package dispatch is the fan-out/fan-in executor shared by the check
// tools: every probe for a run is submitted to a bounded worker pool up
// front, and outcomes are gathered as workers finish, not in submission
// order. Callers reconcile display order afterwards through a result map
// keyed by entity identity.
package dispatch

import (
	"fmt"
	"runtime"
	"sync"
)

// Outcome carries one item's probe result or the error that prevented it.
// A non-nil Err never aborts the batch; the item simply has no result.
type Outcome[R any] struct {
	Value R
	Err   error
}

type options struct {
	workers    int
	onComplete func()
}

// Option configures a Run call.
type Option func(*options)

// WithWorkers overrides the pool size. Values below one fall back to one.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithOnComplete registers a callback invoked once per finished item, from
// the collecting goroutine only, so it may touch UI state freely.
func WithOnComplete(fn func()) Option {
	return func(o *options) { o.onComplete = fn }
}

// Run executes fn over every item on a pool sized to the host's available
// parallelism by default, and blocks until all items finished. The
// returned slice is in completion order and always has len(items)
// entries: errors and recovered panics are captured per item.
func Run[T, R any](items []T, fn func(T) (R, error), opts ...Option) []Outcome[R] {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.workers > len(items) {
		o.workers = len(items)
	}
	if len(items) == 0 {
		return nil
	}

	jobs := make(chan T)
	outcomes := make(chan Outcome[R])

	var wg sync.WaitGroup
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				outcomes <- runOne(item, fn)
			}
		}()
	}

	go func() {
		for _, item := range items {
			jobs <- item
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	collected := make([]Outcome[R], 0, len(items))
	for outcome := range outcomes {
		collected = append(collected, outcome)
		if o.onComplete != nil {
			o.onComplete()
		}
	}
	return collected
}

// runOne invokes fn for a single item, converting a panic into the item's
// error so one misbehaving probe cannot take down its siblings.
func runOne[T, R any](item T, fn func(T) (R, error)) (outcome Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	outcome.Value, outcome.Err = fn(item)
	return outcome
}

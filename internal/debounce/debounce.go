// Package debounce delays propagation of a rapidly-changing value until it
// has been stable for a quiet period. The dashboard uses it to gate search
// re-filtering (300ms) and draft autosave (500ms).
package debounce

import (
	"sync"
	"time"
)

// Debouncer invokes fn with the most recent value once Set has not been
// called for the full quiet period. Every Set restarts the clock and cancels
// the pending emission. After Stop nothing fires, even if a timer already
// expired concurrently.
type Debouncer[T any] struct {
	quiet time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	gen     uint64
	stopped bool
}

func New[T any](quiet time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{quiet: quiet, fn: fn}
}

// Set schedules value for emission after the quiet period, replacing any
// pending value.
func (d *Debouncer[T]) Set(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = value
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A newer Set or a Stop between expiry and this callback wins.
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	value := d.pending
	fn := d.fn
	d.mu.Unlock()
	fn(value)
}

// Flush emits any pending value immediately and cancels the timer.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.stopped || d.timer == nil || !d.timer.Stop() {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	value := d.pending
	fn := d.fn
	d.gen++
	d.mu.Unlock()
	fn(value)
}

// Stop cancels any pending emission. The debouncer is dead afterwards; this
// is the teardown hook, not a pause.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

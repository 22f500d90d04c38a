// Package search wraps the host's lookup calls (customer search, price-book
// item search) in keystroke debouncing with last-write-wins delivery. The
// lookups themselves are the host's collaborators; this package only owns
// their timing and ordering.
package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/obs"
)

// DefaultInterval is the quiet period applied between keystrokes before a
// lookup fires.
const DefaultInterval = 300 * time.Millisecond

// ErrClosed is returned when querying a closed debouncer.
var ErrClosed = errors.New("search: debouncer closed")

// Outcome carries one delivered lookup result.
type Outcome[T any] struct {
	Query string
	Value T
	Err   error
}

// Debouncer coalesces rapid queries and delivers at most the latest result.
// Responses from superseded queries are dropped even when they arrive after
// the newer one: there is no sequencing guarantee on the underlying calls,
// so the most recent query always wins.
type Debouncer[T any] struct {
	interval time.Duration
	fetch    func(ctx context.Context, query string) (T, error)
	log      zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	closed  bool
	results chan Outcome[T]
}

// NewDebouncer builds a debouncer around the provided fetch function. A
// non-positive interval falls back to DefaultInterval.
func NewDebouncer[T any](interval time.Duration, fetch func(ctx context.Context, query string) (T, error), log zerolog.Logger) *Debouncer[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer[T]{
		interval: interval,
		fetch:    fetch,
		log:      log,
		results:  make(chan Outcome[T], 1),
	}
}

// Results exposes the delivery channel. At most one outcome is buffered; a
// newer result replaces an uncollected older one.
func (d *Debouncer[T]) Results() <-chan Outcome[T] {
	return d.results
}

// Query registers a keystroke. The lookup fires once the quiet period
// elapses without a newer query.
func (d *Debouncer[T]) Query(ctx context.Context, query string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.interval, func() {
		d.run(ctx, seq, query)
	})
	return nil
}

func (d *Debouncer[T]) run(ctx context.Context, seq uint64, query string) {
	value, err := d.fetch(ctx, query)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if seq != d.seq {
		// A newer query fired while this one was in flight.
		countLookup("stale")
		return
	}
	if err != nil {
		countLookup("error")
		d.log.Warn().Str("query", query).Err(err).Msg("search lookup failed")
	} else {
		countLookup("ok")
	}
	// Replace an uncollected older outcome; the channel holds one slot and
	// every send happens under the mutex, so this cannot block.
	select {
	case <-d.results:
	default:
	}
	d.results <- Outcome[T]{Query: query, Value: value, Err: err}
}

// Close stops the pending timer and closes the results channel. Queries
// after Close return ErrClosed.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.results)
}

func countLookup(result string) {
	if obs.SearchLookupTotal != nil {
		obs.SearchLookupTotal.WithLabelValues(result).Inc()
	}
}

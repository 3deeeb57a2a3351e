package viewmodel

import (
	"context"
	"sync"

	"github.com/xenking/shopfront/internal/result"
)

// Feed holds the latest state of one screen section and broadcasts every
// change. Subscribers that fall behind skip intermediate states and receive
// only the newest one.
type Feed[T any] struct {
	mu      sync.Mutex
	current State[T]
	gen     uint64 // bumped on every write; guards overlapping loads
	subs    map[chan State[T]]struct{}
}

// NewFeed returns a feed in the Loading state.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{
		current: Loading[T](),
		subs:    make(map[chan State[T]]struct{}),
	}
}

// Current returns the latest published state.
func (f *Feed[T]) Current() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Publish replaces the current state and notifies subscribers without
// blocking.
func (f *Feed[T]) Publish(s State[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.publish(s)
}

func (f *Feed[T]) publish(s State[T]) {
	f.current = s
	for ch := range f.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// Subscribe returns a channel that first yields the current state and then
// every published one. The channel is closed when ctx is done.
func (f *Feed[T]) Subscribe(ctx context.Context) <-chan State[T] {
	ch := make(chan State[T], 1)

	f.mu.Lock()
	ch <- f.current
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, ch)
		close(ch)
		f.mu.Unlock()
	}()
	return ch
}

// Load publishes Loading, runs fetch and publishes the reduced outcome, which
// it also returns. The outcome is published only if nothing was written to the
// feed since this load started, so a slow load never replaces a newer state.
func (f *Feed[T]) Load(ctx context.Context, fetch func(ctx context.Context) result.Result[T]) State[T] {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.publish(Loading[T]())
	f.mu.Unlock()

	s := Reduce(fetch(ctx))

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen == gen {
		f.publish(s)
	}
	return s
}

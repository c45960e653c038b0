package auction

import (
	"context"
	"slices"
	"sync"

	"promo-auction/internal/core/domain"
)

// Locks is an in-process lock per segment. Waiters on the same segment
// are granted the lock in arrival order; different segments never block
// each other. The zero value is not usable, use NewLocks.
type Locks struct {
	mu     sync.Mutex
	queues map[domain.SegmentKey][]chan struct{}
}

func NewLocks() *Locks {
	return &Locks{queues: make(map[domain.SegmentKey][]chan struct{})}
}

// Lock blocks until the segment is free or ctx is done.
func (l *Locks) Lock(ctx context.Context, key domain.SegmentKey) (func(), error) {
	ch := make(chan struct{})

	l.mu.Lock()
	q := append(l.queues[key], ch)
	l.queues[key] = q
	if len(q) == 1 {
		close(ch)
	}
	l.mu.Unlock()

	select {
	case <-ch:
		return l.unlocker(key), nil
	case <-ctx.Done():
	}

	l.mu.Lock()
	select {
	case <-ch:
		// granted while giving up; hand it over to the next waiter
		l.mu.Unlock()
		l.release(key)
	default:
		q := l.queues[key]
		if i := slices.Index(q, ch); i >= 0 {
			l.queues[key] = slices.Delete(q, i, i+1)
		}
		l.mu.Unlock()
	}
	return nil, ctx.Err()
}

// Held reports how many callers hold or wait for key.
func (l *Locks) Held(key domain.SegmentKey) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queues[key])
}

func (l *Locks) unlocker(key domain.SegmentKey) func() {
	var once sync.Once
	return func() { once.Do(func() { l.release(key) }) }
}

func (l *Locks) release(key domain.SegmentKey) {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := l.queues[key][1:]
	if len(q) == 0 {
		delete(l.queues, key)
		return
	}
	l.queues[key] = q
	close(q[0])
}

// Locker is the subset of port.SegmentLocker used for chaining.
type Locker interface {
	Lock(ctx context.Context, key domain.SegmentKey) (func(), error)
}

// Chain acquires every locker in order and releases them in reverse.
// It is used to put a distributed lease behind the in-process queue so
// that a replica holds at most one lease request per segment.
func Chain(lockers ...Locker) Locker {
	return chain(lockers)
}

type chain []Locker

func (c chain) Lock(ctx context.Context, key domain.SegmentKey) (func(), error) {
	unlocks := make([]func(), 0, len(c))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
	for _, l := range c {
		unlock, err := l.Lock(ctx, key)
		if err != nil {
			release()
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	var once sync.Once
	return func() { once.Do(release) }, nil
}

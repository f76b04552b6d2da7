package event

import (
	"sync"
	"sync/atomic"
)

// registry is the state shared by an Event and all of its clones: the
// handler map and the id counter, guarded as a single unit by one mutex.
//
// Locking discipline: every mutation and every read of the map or counter
// holds mu. During dispatch the lock is additionally held across each
// handler call, which is what serializes handlers of one bus — and what
// makes the lock non-reentrant from inside a handler.
type registry[Args any] struct {
	mu       sync.Mutex
	handlers map[Subscription]Handler[Args]
	nextID   uint64

	// Metrics counters, updated atomically so Metrics() can snapshot
	// them without taking mu.
	metrics Metrics
}

func newRegistry[Args any]() *registry[Args] {
	return &registry[Args]{
		handlers: make(map[Subscription]Handler[Args]),
	}
}

// insert registers h under a freshly allocated handle and returns it.
// Handles are allocated from a monotonically increasing counter and are
// never reused, including after removal. The counter is uint64; at one
// registration per nanosecond it lasts centuries, so wraparound is not
// handled.
func (r *registry[Args]) insert(h Handler[Args]) Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub := Subscription{id: r.nextID}
	r.nextID++
	r.handlers[sub] = h

	atomic.AddInt64(&r.metrics.TotalSubscribed, 1)
	return sub
}

// remove deletes the handler registered under sub, reporting whether an
// entry was actually removed. Unknown handles, including handles issued by
// a different registry, miss harmlessly.
func (r *registry[Args]) remove(sub Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[sub]; !ok {
		return false
	}
	delete(r.handlers, sub)
	return true
}

// removeAll clears the handler map in one critical section. The id
// counter is left alone so handles stay unique for the registry's
// lifetime.
func (r *registry[Args]) removeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.handlers)
}

// size reports the number of registered handlers at the instant of the
// call.
func (r *registry[Args]) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.handlers)
}

// invoke fans args out to every handler registered when dispatch begins.
//
// The handle set is snapshotted under the lock, then the lock is released
// and re-acquired once per handle: look up, call while still holding the
// lock, release, move on. A handler removed between the snapshot and its
// turn is skipped silently; a handler added after the snapshot is not
// called in this dispatch. Dispatch order is map order, i.e. unspecified.
func (r *registry[Args]) invoke(args Args) {
	atomic.AddInt64(&r.metrics.InvokeCalls, 1)

	r.mu.Lock()
	subs := make([]Subscription, 0, len(r.handlers))
	for sub := range r.handlers {
		subs = append(subs, sub)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		r.dispatchOne(sub, args)
	}
}

// dispatchOne runs a single handler while holding the registry lock.
//
// The unlock is deferred, so a panicking handler releases the lock on the
// way out and the bus remains usable; the panic itself propagates to the
// Invoke caller and the rest of that dispatch's handlers are not called.
func (r *registry[Args]) dispatchOne(sub Subscription, args Args) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handlers[sub]
	if !ok {
		atomic.AddInt64(&r.metrics.HandlersSkipped, 1)
		return
	}

	atomic.AddInt64(&r.metrics.HandlersInvoked, 1)
	h.Handle(args)
}

// snapshotMetrics assembles a Metrics value. Counter fields are read
// atomically; RegisteredHandlers needs the map size and therefore the
// mutex.
func (r *registry[Args]) snapshotMetrics() Metrics {
	r.mu.Lock()
	registered := int64(len(r.handlers))
	r.mu.Unlock()

	return Metrics{
		RegisteredHandlers: registered,
		TotalSubscribed:    atomic.LoadInt64(&r.metrics.TotalSubscribed),
		InvokeCalls:        atomic.LoadInt64(&r.metrics.InvokeCalls),
		HandlersInvoked:    atomic.LoadInt64(&r.metrics.HandlersInvoked),
		HandlersSkipped:    atomic.LoadInt64(&r.metrics.HandlersSkipped),
	}
}

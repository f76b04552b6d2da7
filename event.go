package event

// Event is a thread-safe fan-out point for values of type Args. Handlers
// subscribe to it, producers invoke it, and every handler registered at
// the moment a dispatch begins receives its own copy of the payload before
// Invoke returns.
//
// An Event holds a shared reference to one registry. Clone returns another
// handle to the same registry, so any number of goroutines can subscribe,
// unsubscribe, and invoke through their own handles while observing one
// subscriber set. The registry is reclaimed by the garbage collector once
// the last handle is unreachable.
//
// Construct with New; the zero Event value is not usable.
//
// Thread Safety:
// All methods are safe for concurrent use from any number of goroutines
// and clones. Handlers of one Event never run concurrently with each
// other: each handler call holds the registry lock, serializing dispatch
// even across concurrent Invoke calls. Consequently a handler must not
// call any method of its own Event — the lock is not re-entrant and the
// call deadlocks. Handlers may freely use other Event instances.
type Event[Args any] struct {
	reg *registry[Args]
}

// New creates an Event with no subscribers. It cannot fail.
func New[Args any]() *Event[Args] {
	return &Event[Args]{reg: newRegistry[Args]()}
}

// Subscribe registers h and returns the handle needed to remove it later.
//
// The handler may capture and mutate external state across calls; calls
// are serialized by the registry lock, so no additional synchronization is
// needed for state touched only by handlers of this bus. There is no
// ordering guarantee between Subscribe and a concurrently running Invoke:
// a dispatch already past its snapshot will not see the new handler.
func (e *Event[Args]) Subscribe(h Handler[Args]) Subscription {
	return e.reg.insert(h)
}

// SubscribeFunc registers fn as a handler. It is shorthand for
// Subscribe(HandlerFunc[Args](fn)).
func (e *Event[Args]) SubscribeFunc(fn func(Args)) Subscription {
	return e.reg.insert(HandlerFunc[Args](fn))
}

// Unsubscribe removes the handler registered under sub.
//
// It reports whether an entry was actually removed: true exactly once for
// a handle issued by this bus, then false on every later call with the
// same handle. Handles fabricated or issued by a different bus also
// report false; a miss is an expected outcome, never an error.
func (e *Event[Args]) Unsubscribe(sub Subscription) bool {
	return e.reg.remove(sub)
}

// UnsubscribeAll removes every registered handler in one atomic step with
// respect to other registry operations. Afterwards SubscriberCount is 0,
// barring concurrent Subscribe calls racing in. Handle allocation is not
// reset.
func (e *Event[Args]) UnsubscribeAll() {
	e.reg.removeAll()
}

// Invoke synchronously delivers args to every handler registered when the
// dispatch began, one at a time, in unspecified order. Each handler
// receives its own copy of args.
//
// Handlers removed after dispatch began but before their turn are skipped
// silently; handlers added after dispatch began are not guaranteed to be
// called. Invoke returns once the last handler has, so a slow handler
// stalls all other operations on the bus for its duration.
//
// If a handler panics, the panic propagates to Invoke's caller and the
// remaining handlers of that dispatch are not called. The bus itself
// stays usable afterwards.
func (e *Event[Args]) Invoke(args Args) {
	e.reg.invoke(args)
}

// SubscriberCount returns the number of currently registered handlers at
// the instant of the call.
func (e *Event[Args]) SubscriberCount() int {
	return e.reg.size()
}

// Clone returns a new handle to the same underlying registry — not a copy
// of its contents. Mutations through either handle are visible through
// both. Clone is cheap and never fails.
func (e *Event[Args]) Clone() *Event[Args] {
	return &Event[Args]{reg: e.reg}
}

// Metrics returns a consistent snapshot of the bus's counters. The
// snapshot is shared state: clones observe the same values.
func (e *Event[Args]) Metrics() Metrics {
	return e.reg.snapshotMetrics()
}

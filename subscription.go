package event

// Subscription is an opaque handle identifying one registered handler.
// It is returned by Subscribe and SubscribeFunc and is required to remove
// the handler later via Unsubscribe.
//
// Subscriptions are plain values: freely copyable, comparable with ==, and
// usable as map keys. Every Subscribe call on a bus yields a distinct
// handle, and handles are never reused within that bus's lifetime, even
// after the handler is removed.
//
// A Subscription only has meaning on the bus (or a clone of the bus) that
// issued it. Presenting it to an unrelated bus is harmless: Unsubscribe
// simply misses and reports false.
type Subscription struct {
	id uint64
}

// NewSubscription fabricates a handle from a raw id. It exists so tests
// can probe Unsubscribe with handles the bus never issued; production code
// should only ever hold handles returned by Subscribe.
func NewSubscription(id uint64) Subscription {
	return Subscription{id: id}
}

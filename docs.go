// Package event provides a thread-safe, in-process publish/subscribe
// primitive: a single Event value to which any number of handlers attach,
// and through which a producer synchronously fans a payload out to every
// handler registered at the time of the call.
//
// The package is a library, not a service: there is no wire protocol, no
// queueing, and no background goroutines. Every operation is synchronous
// and blocks only briefly on the registry lock, never on I/O.
//
// Basic Usage:
//
//	temperature := event.New[float64]()
//
//	sub := temperature.SubscribeFunc(func(celsius float64) {
//		fmt.Printf("reading: %.1f\n", celsius)
//	})
//
//	temperature.Invoke(21.5) // handler runs before Invoke returns
//	temperature.Unsubscribe(sub)
//
// Sharing Across Goroutines:
//
// Clone returns a second handle to the same underlying registry, so
// producers and consumers in different goroutines can hold their own
// handle while observing one subscriber set:
//
//	producer := temperature.Clone()
//	go func() {
//		for c := range readings {
//			producer.Invoke(c)
//		}
//	}()
//
// Handlers on one bus never run concurrently with each other: each handler
// call holds the registry lock for its duration, serializing dispatch even
// across concurrent Invoke calls from different clones. The flip side is
// that a handler must not call back into its own bus — the lock is not
// re-entrant and doing so deadlocks. Operating on a different bus from
// inside a handler is fine.
package event

package event

// Handler receives the payload each time the event it is registered with
// is invoked. Implementations may capture and mutate external state across
// calls; the registry serializes all calls on one bus, so a handler never
// runs concurrently with itself or with other handlers of the same bus.
//
// Handlers must not call back into the bus they are registered with (see
// the package documentation). They are free to operate on other buses.
type Handler[Args any] interface {
	Handle(args Args)
}

// HandlerFunc adapts an ordinary function to the Handler interface, the
// same way http.HandlerFunc adapts functions to http.Handler.
//
// Example:
//
//	sub := bus.Subscribe(event.HandlerFunc[int](func(n int) {
//		total += n
//	}))
//
// Most callers use SubscribeFunc instead, which performs this conversion.
type HandlerFunc[Args any] func(Args)

// Handle calls f(args).
func (f HandlerFunc[Args]) Handle(args Args) {
	f(args)
}

package event

// Metrics provides observability counters for a bus. All counter fields
// are updated with atomic operations and shared by every clone of the bus,
// since they live in the shared registry.
//
// Obtain a consistent snapshot with Event.Metrics; do not read the fields
// of a live bus's internal copy directly.
type Metrics struct {
	// RegisteredHandlers is the number of currently registered handlers
	// (requires the registry mutex to read).
	RegisteredHandlers int64

	// TotalSubscribed counts every successful Subscribe over the bus's
	// lifetime. Removals do not decrement it, so it also equals the next
	// handle id to be allocated.
	TotalSubscribed int64

	// InvokeCalls counts calls to Invoke, including calls that found no
	// handlers registered.
	InvokeCalls int64

	// HandlersInvoked counts individual handler executions summed over
	// all dispatches.
	HandlersInvoked int64

	// HandlersSkipped counts handles that were snapshotted by a dispatch
	// but removed before their turn came.
	HandlersSkipped int64
}

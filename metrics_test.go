package event

import "testing"

func TestMetricsTrackLifecycle(t *testing.T) {
	bus := New[int]()

	a := bus.SubscribeFunc(func(int) {})
	bus.SubscribeFunc(func(int) {})

	bus.Invoke(1) // 2 handlers
	bus.Invoke(2) // 2 handlers

	bus.Unsubscribe(a)
	bus.Invoke(3) // 1 handler

	bus.UnsubscribeAll()
	bus.Invoke(4) // 0 handlers, still counts as a call

	m := bus.Metrics()
	if m.RegisteredHandlers != 0 {
		t.Errorf("RegisteredHandlers = %d, expected 0", m.RegisteredHandlers)
	}
	if m.TotalSubscribed != 2 {
		t.Errorf("TotalSubscribed = %d, expected 2", m.TotalSubscribed)
	}
	if m.InvokeCalls != 4 {
		t.Errorf("InvokeCalls = %d, expected 4", m.InvokeCalls)
	}
	if m.HandlersInvoked != 5 {
		t.Errorf("HandlersInvoked = %d, expected 5", m.HandlersInvoked)
	}
	if m.HandlersSkipped != 0 {
		t.Errorf("HandlersSkipped = %d, expected 0", m.HandlersSkipped)
	}
}

func TestMetricsCountSkippedHandler(t *testing.T) {
	bus := New[int]()

	called := false
	sub := bus.SubscribeFunc(func(int) {
		called = true
	})
	bus.Unsubscribe(sub)

	// Drive the per-handle dispatch step directly with a handle that was
	// removed after the snapshot would have been taken.
	bus.reg.dispatchOne(sub, 9)

	if called {
		t.Error("Removed handler must not be called")
	}
	if m := bus.Metrics(); m.HandlersSkipped != 1 {
		t.Errorf("HandlersSkipped = %d, expected 1", m.HandlersSkipped)
	}
}

func TestMetricsSharedAcrossClones(t *testing.T) {
	bus := New[int]()
	clone := bus.Clone()

	bus.SubscribeFunc(func(int) {})
	clone.Invoke(1)

	if bus.Metrics() != clone.Metrics() {
		t.Errorf("Clones must observe identical metrics: %+v vs %+v", bus.Metrics(), clone.Metrics())
	}
	if m := bus.Metrics(); m.InvokeCalls != 1 || m.HandlersInvoked != 1 || m.RegisteredHandlers != 1 {
		t.Errorf("Unexpected metrics snapshot: %+v", m)
	}
}

package event

import "testing"

func TestPublishDeliversInOrder(t *testing.T) {
	n := NewNotifier()
	var order []int
	n.Subscribe(func(Change) { order = append(order, 1) })
	n.Subscribe(func(Change) { order = append(order, 2) })

	n.Publish(Change{NewText: "4"})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected delivery order [1 2], got %v", order)
	}
}

func TestPublishPayload(t *testing.T) {
	n := NewNotifier()
	var got Change
	n.Subscribe(func(c Change) { got = c })

	want := Change{OldText: "(412", NewText: "(412) 5", OldCursor: 4, NewCursor: 7}
	n.Publish(want)

	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestUnsubscribe(t *testing.T) {
	n := NewNotifier()
	calls := 0
	sub := n.Subscribe(func(Change) { calls++ })

	n.Publish(Change{})
	sub.Unsubscribe()
	n.Publish(Change{})

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}

	// Second unsubscribe is a no-op.
	sub.Unsubscribe()
}

func TestHandlerPanicIsolated(t *testing.T) {
	n := NewNotifier()
	called := false
	n.Subscribe(func(Change) { panic("boom") })
	n.Subscribe(func(Change) { called = true })

	n.Publish(Change{})

	if !called {
		t.Error("handler after a panicking one should still run")
	}
}

func TestZeroSubscriptionUnsubscribe(t *testing.T) {
	var s Subscription
	s.Unsubscribe() // must not panic
}

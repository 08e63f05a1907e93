package event

import "sync"

// Change describes one applied field change.
type Change struct {
	OldText   string
	NewText   string
	OldCursor int
	NewCursor int
}

// Handler receives change notifications.
type Handler func(Change)

// Notifier dispatches Change events to subscribers synchronously.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id      int
	handler Handler
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscription identifies a registered handler.
type Subscription struct {
	id int
	n  *Notifier
}

// Subscribe registers a handler. Handlers run in registration order.
func (n *Notifier) Subscribe(h Handler) Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	n.subs = append(n.subs, subscriber{id: n.nextID, handler: h})
	return Subscription{id: n.nextID, n: n}
}

// Unsubscribe removes the handler. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.n == nil {
		return
	}
	s.n.mu.Lock()
	defer s.n.mu.Unlock()

	for i, sub := range s.n.subs {
		if sub.id == s.id {
			s.n.subs = append(s.n.subs[:i], s.n.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the change to every subscriber. A handler panic is
// recovered so remaining handlers still run.
func (n *Notifier) Publish(change Change) {
	n.mu.Lock()
	subs := make([]subscriber, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		deliver(sub.handler, change)
	}
}

func deliver(h Handler, change Change) {
	defer func() {
		_ = recover()
	}()
	h(change)
}

package session

import (
	"sync"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/pkg/logger"
)

// Handler receives the user carried by a broadcast. A nil user means the
// session was cleared.
type Handler func(user models.UserRecord)

type subscription struct {
	id      uint64
	handler Handler
}

// Notifier broadcasts session changes to in-process listeners. Delivery is
// synchronous, in subscription order and best-effort: nothing is queued for
// listeners that subscribe after a broadcast.
type Notifier struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
	logger *logger.Logger
}

// NewNotifier creates a notifier with no listeners
func NewNotifier(logger *logger.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Subscribe registers handler and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (n *Notifier) Subscribe(handler Handler) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, handler: handler})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

// Notify delivers user to every current listener. Each listener gets its own
// copy of the record.
func (n *Notifier) Notify(user models.UserRecord) {
	n.mu.Lock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		n.deliver(sub, user.Clone())
	}
}

// Len returns the number of current listeners
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

func (n *Notifier) deliver(sub subscription, user models.UserRecord) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.WithField("subscription", sub.id).WithField("panic", r).Error("Session listener panicked")
		}
	}()
	sub.handler(user)
}

func (n *Notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, sub := range n.subs {
		if sub.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

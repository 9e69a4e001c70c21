package usecase

import "sync"

// ChangeEvent describes one committed store mutation. Subscribers are
// presentation concerns (board re-render, toasts); the core never depends
// on them.
type ChangeEvent struct {
	Entity   string `json:"entity"`
	Action   string `json:"action"`
	ID       string `json:"id"`
	Division string `json:"division,omitempty"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Notifier is the in-process change-notification hub. Publishing is
// synchronous and happens after the mutation is visible in the store, so a
// subscriber reading back always sees the new state. A nil *Notifier is
// valid and publishes nowhere.
type Notifier struct {
	mu   sync.Mutex
	subs []func(ChangeEvent)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Subscribe(fn func(ChangeEvent)) {
	if n == nil || fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *Notifier) Publish(ev ChangeEvent) {
	if n == nil {
		return
	}
	n.mu.Lock()
	subs := make([]func(ChangeEvent), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

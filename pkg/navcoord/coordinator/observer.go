package coordinator

import "slices"

// ChangeKind identifies the transition that produced a Change.
type ChangeKind int

const (
	ChangePush ChangeKind = iota
	ChangePop
	ChangePopToRoot
	ChangeUnwind
	ChangePresent
	ChangeDismiss
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePush:
		return "push"
	case ChangePop:
		return "pop"
	case ChangePopToRoot:
		return "pop_to_root"
	case ChangeUnwind:
		return "unwind"
	case ChangePresent:
		return "present"
	case ChangeDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// State is the renderable state of a coordinator.
type State[V comparable] struct {
	Path     []V
	Modal    V
	HasModal bool
}

// Change is delivered to observers after every effective transition.
type Change[V comparable] struct {
	Kind  ChangeKind
	State State[V]
}

// Observer is called synchronously after a transition has been applied.
type Observer[V comparable] func(Change[V])

type subscription[V comparable] struct {
	id int
	fn Observer[V]
}

// Subscribe registers fn for change notifications. The returned function
// removes the subscription; calling it more than once is harmless and it may
// be called from inside an observer.
func (c *Coordinator[V]) Subscribe(fn Observer[V]) (cancel func()) {
	c.nextSubID++
	id := c.nextSubID
	c.observers = append(c.observers, subscription[V]{id: id, fn: fn})

	return func() {
		c.observers = slices.DeleteFunc(c.observers, func(s subscription[V]) bool {
			return s.id == id
		})
	}
}

func (c *Coordinator[V]) notify(kind ChangeKind) {
	if len(c.observers) == 0 {
		return
	}
	change := Change[V]{Kind: kind, State: c.Snapshot()}
	for _, s := range slices.Clone(c.observers) {
		s.fn(change)
	}
}

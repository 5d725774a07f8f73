package coordinator

import (
	"fmt"
	"maps"
	"slices"
)

// SegueKind tells whether a segue is a stack return point or a modal
// dismissal target.
type SegueKind int

const (
	SegueUnwind  SegueKind = iota // Return point inside the navigation path
	SegueDismiss                  // Notification target for a presented modal
)

func (k SegueKind) String() string {
	switch k {
	case SegueUnwind:
		return "unwind"
	case SegueDismiss:
		return "dismiss"
	default:
		return fmt.Sprintf("SegueKind(%d)", int(k))
	}
}

// ParseSegueKind maps "unwind" and "dismiss" to their kinds.
func ParseSegueKind(s string) (SegueKind, bool) {
	switch s {
	case "unwind":
		return SegueUnwind, true
	case "dismiss":
		return SegueDismiss, true
	}
	return 0, false
}

// SegueInfo describes a registered segue.
type SegueInfo struct {
	Kind      SegueKind
	Anchor    int  // Path length at registration; the unwind truncation target
	HasAction bool // Whether firing the segue invokes a callback
}

// action receives the payload of a fired segue. It reports false when the
// payload did not match the type the action was registered with.
type action func(payload any) bool

type segue struct {
	kind   SegueKind
	anchor int
	action action
}

// typedAction adapts a typed callback. A nil payload delivers the zero value
// of T, any other payload must be a T.
func typedAction[T any](fn func(T)) action {
	if fn == nil {
		return nil
	}
	return func(payload any) bool {
		if payload == nil {
			var zero T
			fn(zero)
			return true
		}
		v, ok := payload.(T)
		if !ok {
			return false
		}
		fn(v)
		return true
	}
}

// RegisterSegue records a return point at the current path length without
// a callback. Registering the same identifier again replaces the previous
// entry.
func (c *Coordinator[V]) RegisterSegue(kind SegueKind, identifier string) {
	c.registerSegue(kind, identifier, nil)
}

// OnUnwind registers an unwind segue whose action receives the payload
// passed to UnwindWith. Call it once per screen activation, typically when
// the screen first appears.
func OnUnwind[V comparable, T any](c *Coordinator[V], identifier string, fn func(T)) {
	c.registerSegue(SegueUnwind, identifier, typedAction(fn))
}

// OnDismiss registers a dismiss segue on the presenting coordinator. A modal
// child calling DismissWith with the same identifier delivers its payload
// to fn.
func OnDismiss[V comparable, T any](c *Coordinator[V], identifier string, fn func(T)) {
	c.registerSegue(SegueDismiss, identifier, typedAction(fn))
}

func (c *Coordinator[V]) registerSegue(kind SegueKind, identifier string, act action) {
	c.segues[identifier] = segue{
		kind:   kind,
		anchor: c.path.Len(),
		action: act,
	}
	c.log.Debug("segue registered", "identifier", identifier, "kind", kind.String(), "anchor", c.path.Len())
}

// Segue returns the registered segue for identifier.
func (c *Coordinator[V]) Segue(identifier string) (SegueInfo, bool) {
	s, ok := c.segues[identifier]
	if !ok {
		return SegueInfo{}, false
	}
	return SegueInfo{Kind: s.kind, Anchor: s.anchor, HasAction: s.action != nil}, true
}

// Segues returns the registered identifiers in sorted order.
func (c *Coordinator[V]) Segues() []string {
	return slices.Sorted(maps.Keys(c.segues))
}

// pruneSegues drops every segue anchored at or beyond the current path
// length. Those anchors belong to screens that are no longer on the path.
func (c *Coordinator[V]) pruneSegues() {
	depth := c.path.Len()
	maps.DeleteFunc(c.segues, func(id string, s segue) bool {
		if s.anchor >= depth {
			c.log.Debug("segue pruned", "identifier", id, "anchor", s.anchor, "depth", depth)
			return true
		}
		return false
	})
}

// fire invokes the action of s with payload, if it has one.
func (c *Coordinator[V]) fire(identifier string, s segue, payload any) {
	if s.action == nil {
		return
	}
	if !s.action(payload) {
		c.stats.payloadMismatches.Inc()
		c.log.Warn("segue payload type mismatch",
			"identifier", identifier,
			"kind", s.kind.String(),
			"payload_type", fmt.Sprintf("%T", payload))
		return
	}
	c.stats.actionsFired.Inc()
}

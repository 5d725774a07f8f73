package coordinator

import (
	"log/slog"
	"weak"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/internal"
)

// Coordinator owns one navigation path and at most one pending modal screen.
//
// A modal is presented by storing its root screen; the presentation layer
// observes that, creates a child coordinator with New(parent) and renders
// the screen over the current flow. The child only holds a weak reference to
// its parent, so it never keeps a presenter alive.
//
// A Coordinator is not safe for concurrent use. Every method is expected to
// run from the same sequence of UI events.
type Coordinator[V comparable] struct {
	path   *Stack[V]
	segues map[string]segue
	parent weak.Pointer[Coordinator[V]]

	modal    V
	hasModal bool

	observers []subscription[V]
	nextSubID int

	log   *slog.Logger
	stats *Stats
}

// Option configures a Coordinator.
type Option func(*options)

type options struct {
	logger *slog.Logger
	stats  *Stats
}

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStats sets the transition counters. Pass the same Stats to several
// coordinators to aggregate them.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// New creates a coordinator. parent is nil for the root coordinator and the
// presenting coordinator for a modal flow. A child inherits the parent's
// logger and stats unless overridden by opts.
func New[V comparable](parent *Coordinator[V], opts ...Option) *Coordinator[V] {
	o := options{}
	if parent != nil {
		o.logger = parent.log
		o.stats = parent.stats
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}
	if o.stats == nil {
		o.stats = NewStats()
	}

	c := &Coordinator[V]{
		path:   NewStack[V](),
		segues: make(map[string]segue),
		log:    o.logger,
		stats:  o.stats,
	}
	if parent != nil {
		c.parent = weak.Make(parent)
	}
	return c
}

// --- Stack Navigation ---

// Push appends screen to the path.
func (c *Coordinator[V]) Push(screen V) {
	c.path.Push(screen)
	c.stats.pushes.Inc()
	c.notify(ChangePush)
}

// Pop removes the visible screen and forgets every segue anchored at or
// below it. Popping an empty path does nothing.
func (c *Coordinator[V]) Pop() {
	if _, ok := c.path.Pop(); !ok {
		c.log.Debug("pop ignored: path is empty")
		return
	}
	c.pruneSegues()
	c.stats.pops.Inc()
	c.notify(ChangePop)
}

// PopToRoot clears the path and every registered segue.
// Does nothing if the path is already empty.
func (c *Coordinator[V]) PopToRoot() {
	if c.path.IsEmpty() {
		c.log.Debug("pop to root ignored: path is empty")
		return
	}
	c.path.Clear()
	clear(c.segues)
	c.stats.popToRoots.Inc()
	c.notify(ChangePopToRoot)
}

// Unwind jumps back to the depth where identifier was registered. See
// UnwindWith.
func (c *Coordinator[V]) Unwind(identifier string) bool {
	return c.unwind(identifier, nil)
}

// UnwindWith jumps back to the depth where identifier was registered and
// hands value to its action.
//
// The unwind only happens if identifier is a registered unwind segue
// anchored strictly above the current depth. Anything else is ignored, since
// the target screen may simply not have been visited. Reports whether the
// path changed.
func UnwindWith[V comparable, T any](c *Coordinator[V], identifier string, value T) bool {
	return c.unwind(identifier, value)
}

func (c *Coordinator[V]) unwind(identifier string, payload any) bool {
	s, ok := c.segues[identifier]
	switch {
	case !ok:
		c.log.Debug("unwind ignored: unknown segue", "identifier", identifier)
	case s.kind != SegueUnwind:
		c.log.Debug("unwind ignored: not an unwind segue", "identifier", identifier, "kind", s.kind.String())
	case s.anchor >= c.path.Len():
		c.log.Debug("unwind ignored: anchor not above current depth",
			"identifier", identifier, "anchor", s.anchor, "depth", c.path.Len())
	default:
		c.path.Truncate(s.anchor)
		c.pruneSegues()
		c.stats.unwinds.Inc()
		c.notify(ChangeUnwind)
		c.fire(identifier, s, payload)
		return true
	}
	c.stats.unwindsIgnored.Inc()
	return false
}

// --- Modal Presentation ---

// Present requests screen to be shown modally. A pending modal is replaced.
func (c *Coordinator[V]) Present(screen V) {
	c.modal = screen
	c.hasModal = true
	c.stats.presents.Inc()
	c.notify(ChangePresent)
}

// Dismiss closes the modal this coordinator was created for.
// Returns false on a root coordinator, where there is nothing to dismiss.
func (c *Coordinator[V]) Dismiss() bool {
	return c.dismiss("", false, nil)
}

// DismissTo closes the modal and fires the parent's dismiss segue named
// identifier without a payload. See DismissWith.
func (c *Coordinator[V]) DismissTo(identifier string) bool {
	return c.dismiss(identifier, true, nil)
}

// DismissWith closes the modal this coordinator was created for and, if the
// parent registered a dismiss segue named identifier, hands value to its
// action. An unknown identifier or a segue of the wrong kind still dismisses,
// just without notifying anyone.
func DismissWith[V comparable, T any](c *Coordinator[V], identifier string, value T) bool {
	return c.dismiss(identifier, true, value)
}

func (c *Coordinator[V]) dismiss(identifier string, named bool, payload any) bool {
	parent := c.parent.Value()
	if parent == nil {
		c.log.Debug("dismiss ignored: no parent")
		return false
	}

	s, found := parent.segues[identifier]
	if named && (!found || s.kind != SegueDismiss) {
		c.log.Debug("dismiss segue not found, dismissing without notification", "identifier", identifier)
		found = false
	}

	parent.clearModal()
	c.parent = weak.Pointer[Coordinator[V]]{}

	if named && found {
		parent.fire(identifier, s, payload)
	}
	return true
}

// clearModal is the only state a child is allowed to change on its parent.
// Observers are only told when a modal was actually pending.
func (c *Coordinator[V]) clearModal() {
	pending := c.hasModal
	var zero V
	c.modal = zero
	c.hasModal = false
	if !pending {
		c.log.Debug("dismiss: no modal pending on parent")
		return
	}
	c.stats.dismissals.Inc()
	c.notify(ChangeDismiss)
}

// --- Observable State ---

// Path returns a copy of the navigation path, first pushed screen first.
func (c *Coordinator[V]) Path() []V {
	return c.path.Values()
}

// Depth returns the number of screens on the path.
func (c *Coordinator[V]) Depth() int {
	return c.path.Len()
}

// Top returns the visible screen. Returns false while the root is visible.
func (c *Coordinator[V]) Top() (V, bool) {
	return c.path.Peek()
}

// Modal returns the screen waiting to be presented modally.
func (c *Coordinator[V]) Modal() (V, bool) {
	return c.modal, c.hasModal
}

// Parent returns the presenting coordinator, or nil for a root coordinator
// or once the modal has been dismissed.
func (c *Coordinator[V]) Parent() *Coordinator[V] {
	return c.parent.Value()
}

// IsRoot returns true if the coordinator has no presenter.
func (c *Coordinator[V]) IsRoot() bool {
	return c.Parent() == nil
}

// Snapshot returns the renderable state.
func (c *Coordinator[V]) Snapshot() State[V] {
	return State[V]{
		Path:     c.path.Values(),
		Modal:    c.modal,
		HasModal: c.hasModal,
	}
}

// Stats returns the transition counters of this coordinator.
func (c *Coordinator[V]) Stats() *Stats {
	return c.stats
}

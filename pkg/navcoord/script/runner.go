package script

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/coordinator"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/internal"
)

// HandlerFunc applies one step to the runner's active coordinator.
type HandlerFunc func(r *Runner, step Step) error

// Entry records the state of the active coordinator after a step.
type Entry struct {
	Step     int      // Zero-based step index
	Op       string   // Op that was applied
	Level    int      // Modal nesting level of the active coordinator, 0 is the root
	Root     string   // Root screen of the active flow: the script root or the presented modal
	Path     []string // Path of the active coordinator
	Modal    string   // Pending modal of the active coordinator
	HasModal bool
	Fired    []string // Segue actions fired by the step, as "id <- value"
}

// Transcript is the ordered list of entries produced by a run.
type Transcript []Entry

// level is one coordinator of the modal chain plus its subscription.
type level struct {
	c      *coordinator.Coordinator[string]
	root   string
	cancel func()
}

// Runner replays steps against a root coordinator and the chain of modal
// children presented from it.
type Runner struct {
	handlers map[string]HandlerFunc
	chain    []level
	known    map[string]bool
	fired    []string
	stats    *coordinator.Stats
	log      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for step diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// WithStats sets the counters shared by every coordinator the runner creates.
func WithStats(s *coordinator.Stats) Option {
	return func(r *Runner) {
		r.stats = s
	}
}

// NewRunner creates a runner with the default ops registered.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		handlers: make(map[string]HandlerFunc),
		stats:    coordinator.NewStats(),
		log:      internal.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register(OpPush, handlePush).
		Register(OpPop, handlePop).
		Register(OpPopToRoot, handlePopToRoot).
		Register(OpRegister, handleRegister).
		Register(OpUnwind, handleUnwind).
		Register(OpPresent, handlePresent).
		Register(OpDismiss, handleDismiss).
		Register(OpExpect, handleExpect)

	return r
}

// Register adds or replaces the handler for op.
func (r *Runner) Register(op string, fn HandlerFunc) *Runner {
	r.handlers[op] = fn
	return r
}

// Run resets the runner and replays every step of s. It stops at the first
// failing step and returns the transcript up to and including it.
func (r *Runner) Run(s *Script) (Transcript, error) {
	r.reset(s.Root, s.Screens)

	transcript := make(Transcript, 0, len(s.Steps))
	for i, step := range s.Steps {
		fn, ok := r.handlers[step.Op]
		if !ok {
			return transcript, &StepError{Index: i, Op: step.Op, Err: ErrUnknownOp}
		}

		r.fired = nil
		err := fn(r, step)
		transcript = append(transcript, r.entry(i, step.Op))
		if err != nil {
			r.log.Debug("script step failed", "script", s.Name, "step", i+1, "op", step.Op, "error", err)
			return transcript, &StepError{Index: i, Op: step.Op, Err: err}
		}
		r.log.Debug("script step applied", "script", s.Name, "step", i+1, "op", step.Op,
			"level", len(r.chain)-1, "path", r.Active().Path())
	}
	return transcript, nil
}

// Active returns the innermost coordinator, the one steps act on.
func (r *Runner) Active() *coordinator.Coordinator[string] {
	return r.chain[len(r.chain)-1].c
}

// Root returns the root coordinator.
func (r *Runner) Root() *coordinator.Coordinator[string] {
	return r.chain[0].c
}

// Level returns the modal nesting level of the active coordinator.
func (r *Runner) Level() int {
	return len(r.chain) - 1
}

// Stats returns the counters shared by the coordinator tree.
func (r *Runner) Stats() *coordinator.Stats {
	return r.stats
}

func (r *Runner) reset(root string, screens []string) {
	for _, l := range r.chain {
		l.cancel()
	}
	r.chain = nil
	r.fired = nil

	r.known = nil
	if len(screens) > 0 {
		r.known = make(map[string]bool, len(screens))
		for _, s := range screens {
			r.known[s] = true
		}
	}

	r.attach(coordinator.New[string](nil, coordinator.WithStats(r.stats)), root)
}

// attach appends c to the chain and reacts to its modal changes the way a
// presentation layer would.
func (r *Runner) attach(c *coordinator.Coordinator[string], root string) {
	depth := len(r.chain)
	cancel := c.Subscribe(func(ch coordinator.Change[string]) {
		switch ch.Kind {
		case coordinator.ChangePresent:
			r.detachAbove(depth)
			r.attach(coordinator.New(c), ch.State.Modal)
		case coordinator.ChangeDismiss:
			r.detachAbove(depth)
		}
	})
	r.chain = append(r.chain, level{c: c, root: root, cancel: cancel})
}

// detachAbove discards every coordinator nested deeper than depth.
func (r *Runner) detachAbove(depth int) {
	if depth+1 >= len(r.chain) {
		return
	}
	for _, l := range r.chain[depth+1:] {
		l.cancel()
	}
	r.chain = slices.Delete(r.chain, depth+1, len(r.chain))
}

func (r *Runner) checkScreen(screen string) error {
	if screen == "" {
		return fmt.Errorf("%w: screen is required", ErrInvalidStep)
	}
	if r.known != nil && !r.known[screen] {
		return fmt.Errorf("%w %q", ErrUnknownScreen, screen)
	}
	return nil
}

func (r *Runner) note(identifier, value string) {
	if value == "" {
		r.fired = append(r.fired, identifier)
		return
	}
	r.fired = append(r.fired, identifier+" <- "+value)
}

func (r *Runner) entry(i int, op string) Entry {
	state := r.Active().Snapshot()
	return Entry{
		Step:     i,
		Op:       op,
		Level:    r.Level(),
		Root:     r.chain[len(r.chain)-1].root,
		Path:     state.Path,
		Modal:    state.Modal,
		HasModal: state.HasModal,
		Fired:    slices.Clone(r.fired),
	}
}

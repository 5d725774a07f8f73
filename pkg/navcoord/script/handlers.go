package script

import (
	"fmt"
	"slices"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/coordinator"
)

func handlePush(r *Runner, step Step) error {
	if err := r.checkScreen(step.Screen); err != nil {
		return err
	}
	r.Active().Push(step.Screen)
	return nil
}

func handlePop(r *Runner, _ Step) error {
	r.Active().Pop()
	return nil
}

func handlePopToRoot(r *Runner, _ Step) error {
	r.Active().PopToRoot()
	return nil
}

// handleRegister registers a segue whose action records the delivered
// payload in the transcript.
func handleRegister(r *Runner, step Step) error {
	if step.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidStep)
	}
	kind, ok := coordinator.ParseSegueKind(step.Kind)
	if !ok {
		return fmt.Errorf("%w: kind must be \"unwind\" or \"dismiss\", got %q", ErrInvalidStep, step.Kind)
	}

	id := step.ID
	record := func(v string) { r.note(id, v) }
	switch kind {
	case coordinator.SegueUnwind:
		coordinator.OnUnwind(r.Active(), id, record)
	case coordinator.SegueDismiss:
		coordinator.OnDismiss(r.Active(), id, record)
	}
	return nil
}

func handleUnwind(r *Runner, step Step) error {
	if step.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidStep)
	}
	if step.Value != nil {
		coordinator.UnwindWith(r.Active(), step.ID, *step.Value)
	} else {
		r.Active().Unwind(step.ID)
	}
	return nil
}

func handlePresent(r *Runner, step Step) error {
	if err := r.checkScreen(step.Screen); err != nil {
		return err
	}
	r.Active().Present(step.Screen)
	return nil
}

func handleDismiss(r *Runner, step Step) error {
	c := r.Active()
	switch {
	case step.ID == "":
		c.Dismiss()
	case step.Value != nil:
		coordinator.DismissWith(c, step.ID, *step.Value)
	default:
		c.DismissTo(step.ID)
	}
	return nil
}

func handleExpect(r *Runner, step Step) error {
	if step.Path == nil && step.Modal == nil {
		return fmt.Errorf("%w: expect needs path or modal", ErrInvalidStep)
	}

	c := r.Active()
	if step.Path != nil {
		want := *step.Path
		got := c.Path()
		if !slices.Equal(want, got) {
			return fmt.Errorf("%w: path is %v, want %v", ErrExpectation, got, want)
		}
	}
	if step.Modal != nil {
		modal, ok := c.Modal()
		switch {
		case *step.Modal == "" && ok:
			return fmt.Errorf("%w: modal %q is pending, want none", ErrExpectation, modal)
		case *step.Modal != "" && (!ok || modal != *step.Modal):
			return fmt.Errorf("%w: modal is %q, want %q", ErrExpectation, modal, *step.Modal)
		}
	}
	return nil
}

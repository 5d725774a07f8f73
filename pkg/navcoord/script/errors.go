package script

import (
	"errors"
	"fmt"
)

// Sentinel errors for script failures.
var (
	// ErrUnknownOp indicates a step names an op no handler is registered for.
	ErrUnknownOp = errors.New("unknown op")

	// ErrUnknownScreen indicates a step pushes or presents a screen that is
	// not listed in the script's screens table.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrInvalidStep indicates a step is missing a required field.
	ErrInvalidStep = errors.New("invalid step")

	// ErrExpectation indicates an expect step did not match the coordinator
	// state. The script itself is valid; the navigation went somewhere else.
	ErrExpectation = errors.New("expectation failed")
)

// StepError reports which step of a script failed.
type StepError struct {
	Index int    // Zero-based step index
	Op    string // Op of the failing step
	Err   error  // Underlying error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("script: step %d (%s): %v", e.Index+1, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// IsExpectationFailure checks if err reports a mismatched expect step.
func IsExpectationFailure(err error) bool {
	return errors.Is(err, ErrExpectation)
}

// FailedStep returns the index of the failing step, or -1 if err is not a
// StepError.
func FailedStep(err error) int {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Index
	}
	return -1
}

package coordinator

import "go.uber.org/atomic"

// Stats counts coordinator transitions. A single Stats is normally shared by
// a root coordinator and every modal child created from it. Counters may be
// read from any goroutine.
type Stats struct {
	pushes            atomic.Int64
	pops              atomic.Int64
	popToRoots        atomic.Int64
	unwinds           atomic.Int64
	unwindsIgnored    atomic.Int64
	presents          atomic.Int64
	dismissals        atomic.Int64
	actionsFired      atomic.Int64
	payloadMismatches atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Pushes            int64
	Pops              int64
	PopToRoots        int64
	Unwinds           int64
	UnwindsIgnored    int64
	Presents          int64
	Dismissals        int64
	ActionsFired      int64
	PayloadMismatches int64
}

// NewStats creates a zeroed Stats.
func NewStats() *Stats {
	return &Stats{}
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Pushes:            s.pushes.Load(),
		Pops:              s.pops.Load(),
		PopToRoots:        s.popToRoots.Load(),
		Unwinds:           s.unwinds.Load(),
		UnwindsIgnored:    s.unwindsIgnored.Load(),
		Presents:          s.presents.Load(),
		Dismissals:        s.dismissals.Load(),
		ActionsFired:      s.actionsFired.Load(),
		PayloadMismatches: s.payloadMismatches.Load(),
	}
}

// Transitions returns the number of effective transitions of every kind.
func (s StatsSnapshot) Transitions() int64 {
	return s.Pushes + s.Pops + s.PopToRoots + s.Unwinds + s.Presents + s.Dismissals
}

// Package coordinator manages navigation state outside of the views that
// render it.
//
// A Coordinator holds a navigation path (the push stack below a root screen
// the caller owns), a pending modal screen, and a registry of segues: named
// return points a screen registers so that a deeper screen can jump back to
// it, or so that a modal can report a result to its presenter.
//
// # Basic Usage
//
//	// Screens can be any comparable value
//	type Screen string
//
//	c := coordinator.New[Screen](nil)
//
//	c.Push("red")
//	// The red screen registers its return point when it first appears
//	coordinator.OnUnwind(c, "toRed", func(title string) {
//	    fmt.Println("back on red with", title)
//	})
//
//	c.Push("green")
//	c.Push("green")
//	coordinator.UnwindWith(c, "toRed", "hello") // path is [red] again
//
// # Modals
//
// Present stores the screen to show. The presentation layer reacts by
// creating a child coordinator and tearing it down once the modal is gone:
//
//	c.Subscribe(func(ch coordinator.Change[Screen]) {
//	    if ch.Kind == coordinator.ChangePresent {
//	        child := coordinator.New(c)
//	        // render ch.State.Modal with child ...
//	    }
//	})
//
// The presenter can register a dismiss segue to receive a result:
//
//	coordinator.OnDismiss(c, "picked", func(color string) { ... })
//
//	// later, from inside the modal flow
//	coordinator.DismissWith(child, "picked", "blue")
//
// # Failure Mode
//
// No operation returns an error. Popping an empty path, unwinding to an
// unknown or stale segue, or dismissing from a root coordinator are no-ops.
// Navigation requests are hints the coordinator is free to ignore when they
// no longer apply.
package coordinator

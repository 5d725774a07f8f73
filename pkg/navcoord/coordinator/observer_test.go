package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_ReceivesEffectiveTransitions(t *testing.T) {
	c := New[string](nil)
	var kinds []ChangeKind
	c.Subscribe(func(ch Change[string]) { kinds = append(kinds, ch.Kind) })

	c.Pop() // no-op, no notification
	c.Push("a")
	c.Push("b")
	c.Pop()
	c.RegisterSegue(SegueUnwind, "toA")
	c.Push("b")
	c.Unwind("toA")
	c.Unwind("toA") // rejected
	c.PopToRoot()
	c.PopToRoot() // no-op
	c.Present("m")

	assert.Equal(t, []ChangeKind{
		ChangePush, ChangePush, ChangePop, ChangePush,
		ChangeUnwind, ChangePopToRoot, ChangePresent,
	}, kinds)
}

func TestSubscribe_StateIsAppliedBeforeNotification(t *testing.T) {
	c := New[int](nil)
	c.Push(1)
	c.RegisterSegue(SegueUnwind, "x")
	c.Push(2)

	var seen []int
	c.Subscribe(func(ch Change[int]) {
		if ch.Kind == ChangeUnwind {
			seen = ch.State.Path
		}
	})

	c.Unwind("x")
	assert.Equal(t, []int{1}, seen)
}

func TestSubscribe_DismissNotifiesParent(t *testing.T) {
	parent := New[string](nil)
	var last Change[string]
	parent.Subscribe(func(ch Change[string]) { last = ch })

	parent.Present("modal")
	assert.Equal(t, ChangePresent, last.Kind)
	assert.True(t, last.State.HasModal)
	assert.Equal(t, "modal", last.State.Modal)

	child := New(parent)
	child.Dismiss()
	assert.Equal(t, ChangeDismiss, last.Kind)
	assert.False(t, last.State.HasModal)
	_, ok := parent.Modal()
	assert.False(t, ok)
}

func TestSubscribe_Cancel(t *testing.T) {
	c := New[int](nil)
	calls := 0
	cancel := c.Subscribe(func(Change[int]) { calls++ })

	c.Push(1)
	cancel()
	cancel()
	c.Push(2)

	assert.Equal(t, 1, calls)
}

func TestSubscribe_CancelFromInsideObserver(t *testing.T) {
	c := New[int](nil)
	calls := 0
	var cancel func()
	cancel = c.Subscribe(func(Change[int]) {
		calls++
		cancel()
	})
	other := 0
	c.Subscribe(func(Change[int]) { other++ })

	c.Push(1)
	c.Push(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSubscribe_PresentationLayerCreatesChild(t *testing.T) {
	root := New[string](nil)
	var child *Coordinator[string]
	root.Subscribe(func(ch Change[string]) {
		switch {
		case ch.Kind == ChangePresent:
			child = New(root)
		case ch.Kind == ChangeDismiss:
			child = nil
		}
	})

	var result string
	OnDismiss(root, "picked", func(v string) { result = v })

	root.Present("picker")
	require.NotNil(t, child)
	c := child
	c.Push("detail")
	DismissWith(c, "picked", "blue")

	assert.Nil(t, child)
	assert.Equal(t, "blue", result)
	_, ok := root.Modal()
	assert.False(t, ok)
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "pop_to_root", ChangePopToRoot.String())
	assert.Equal(t, "unknown", ChangeKind(99).String())
}

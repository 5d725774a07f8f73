package coordinator

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPush(t *testing.T) {
	c := New[int](nil)

	for i := 1; i <= 5; i++ {
		c.Push(i)
		assert.Equal(t, i, c.Depth(), "each push adds exactly one screen")
	}

	top, ok := c.Top()
	require.True(t, ok)
	assert.Equal(t, 5, top)
}

func TestPop(t *testing.T) {
	c := New[int](nil)
	c.Push(1)
	c.Push(2)

	c.Pop()
	assert.Equal(t, []int{1}, c.Path())
}

func TestPop_EmptyPathIsNoop(t *testing.T) {
	c := New[int](nil)

	c.Pop()
	c.Pop()

	assert.Equal(t, 0, c.Depth())
	assert.Zero(t, c.Stats().Snapshot().Pops)
}

func TestPushPopRoundTrip(t *testing.T) {
	c := New[string](nil)

	c.Push("a")
	c.Push("b")
	c.Pop()
	c.Pop()

	assert.Empty(t, c.Path())
	_, ok := c.Top()
	assert.False(t, ok)
}

func TestPopToRoot(t *testing.T) {
	c := New[int](nil)
	c.RegisterSegue(SegueUnwind, "root")
	c.Push(1)
	c.RegisterSegue(SegueUnwind, "first")
	c.Push(2)
	c.Push(3)

	c.PopToRoot()

	assert.Empty(t, c.Path())
	assert.Empty(t, c.Segues(), "pop to root clears the whole registry")
}

func TestPopToRoot_EmptyPathIsNoop(t *testing.T) {
	c := New[int](nil)
	c.RegisterSegue(SegueDismiss, "result")

	c.PopToRoot()

	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, []string{"result"}, c.Segues(), "registry untouched when nothing was popped")
	assert.Zero(t, c.Stats().Snapshot().PopToRoots)
}

func TestPresent(t *testing.T) {
	c := New[string](nil)

	_, ok := c.Modal()
	assert.False(t, ok)

	c.Present("blue")
	m, ok := c.Modal()
	require.True(t, ok)
	assert.Equal(t, "blue", m)

	c.Present("green")
	m, _ = c.Modal()
	assert.Equal(t, "green", m, "last presented screen wins")
}

func TestDismiss_WithoutIdentifier(t *testing.T) {
	parent := New[string](nil)
	called := false
	OnDismiss(parent, "result", func(string) { called = true })

	parent.Present("blue")
	child := New(parent)

	assert.True(t, child.Dismiss())

	_, ok := parent.Modal()
	assert.False(t, ok)
	assert.False(t, called, "a plain dismiss never fires a segue")
}

func TestDismissWith_DeliversPayloadOnce(t *testing.T) {
	parent := New[string](nil)
	var got []int
	OnDismiss(parent, "r", func(v int) { got = append(got, v) })

	parent.Present("blue")
	child := New(parent)

	assert.True(t, DismissWith(child, "r", 7))

	_, ok := parent.Modal()
	assert.False(t, ok)
	assert.Equal(t, []int{7}, got)

	assert.False(t, DismissWith(child, "r", 8), "child is detached after dismissal")
	assert.Equal(t, []int{7}, got)
}

func TestDismissTo_UnknownIdentifierStillDismisses(t *testing.T) {
	parent := New[string](nil)
	parent.Present("blue")
	child := New(parent)

	assert.True(t, child.DismissTo("missing"))
	_, ok := parent.Modal()
	assert.False(t, ok)
}

func TestDismissWith_UnwindSegueIsNotFired(t *testing.T) {
	parent := New[string](nil)
	called := false
	OnUnwind(parent, "r", func(int) { called = true })

	parent.Present("blue")
	child := New(parent)

	assert.True(t, DismissWith(child, "r", 1))
	_, ok := parent.Modal()
	assert.False(t, ok)
	assert.False(t, called, "only dismiss segues are fired by a dismissal")
}

func TestDismissTo_FiresWithZeroValue(t *testing.T) {
	parent := New[string](nil)
	got := "unset"
	OnDismiss(parent, "r", func(v string) { got = v })

	parent.Present("blue")
	child := New(parent)
	child.DismissTo("r")

	assert.Equal(t, "", got)
	_, ok := parent.Modal()
	assert.False(t, ok)
}

func TestDismiss_RootIsNoop(t *testing.T) {
	root := New[string](nil)
	root.Present("blue")

	assert.False(t, root.Dismiss())
	assert.False(t, root.DismissTo("anything"))

	m, ok := root.Modal()
	assert.True(t, ok, "a root coordinator cannot dismiss its own modal")
	assert.Equal(t, "blue", m)
}

func TestDismiss_OnlyTouchesDirectParent(t *testing.T) {
	root := New[string](nil)
	root.Present("a")
	middle := New(root)
	middle.Present("b")
	leaf := New(middle)

	leaf.Dismiss()

	_, ok := middle.Modal()
	assert.False(t, ok)
	m, ok := root.Modal()
	assert.True(t, ok, "grandparent modal is untouched")
	assert.Equal(t, "a", m)
}

func TestChildInheritsStats(t *testing.T) {
	stats := NewStats()
	root := New[int](nil, WithStats(stats))
	root.Present(1)
	child := New(root)
	child.Push(2)
	child.Dismiss()

	_, ok := root.Modal()
	assert.False(t, ok)

	snap := stats.Snapshot()
	assert.Equal(t, int64(1), snap.Presents)
	assert.Equal(t, int64(1), snap.Pushes)
	assert.Equal(t, int64(1), snap.Dismissals)
	assert.Equal(t, int64(3), snap.Transitions())
}

func TestParent(t *testing.T) {
	root := New[int](nil)
	assert.True(t, root.IsRoot())
	assert.Nil(t, root.Parent())

	child := New(root)
	assert.False(t, child.IsRoot())
	assert.Same(t, root, child.Parent())

	child.Dismiss()
	assert.True(t, child.IsRoot())
}

func TestChild_DoesNotKeepParentAlive(t *testing.T) {
	child := New(New[string](nil))

	runtime.GC()
	runtime.GC()

	assert.Nil(t, child.Parent(), "parent is collected once nothing else holds it")
	assert.True(t, child.IsRoot())
	assert.False(t, child.Dismiss())
}

func TestDismiss_WithoutPendingModalIsSilent(t *testing.T) {
	parent := New[string](nil)
	var kinds []ChangeKind
	parent.Subscribe(func(ch Change[string]) { kinds = append(kinds, ch.Kind) })

	child := New(parent)
	assert.True(t, child.Dismiss(), "the child is still detached")
	assert.Nil(t, child.Parent())

	_, ok := parent.Modal()
	assert.False(t, ok)
	assert.Empty(t, kinds)
	assert.Zero(t, parent.Stats().Snapshot().Dismissals)
}

func TestSnapshot(t *testing.T) {
	c := New[string](nil)
	c.Push("a")
	c.Present("m")

	assert.Equal(t, State[string]{Path: []string{"a"}, Modal: "m", HasModal: true}, c.Snapshot())
}

package win

import (
	"slices"
	"testing"
)

func leafNames(b *Block) []string {
	var names []string
	for n := range b.Leaves() {
		names = append(names, n.Name())
	}
	return names
}

func TestBlockSetAttaches(t *testing.T) {
	w := NewWindow(RunConfig{})
	txt := NewText(Label{Content: "hi"})
	w.Set("title", txt)

	if txt.Name() != "title" {
		t.Errorf("Name = %q, want title", txt.Name())
	}
	if txt.Parent() != w.Root() {
		t.Error("Parent should be root")
	}
	if txt.Canvas() != w.Canvas() {
		t.Error("Canvas should be the window canvas")
	}
	if !w.Canvas().Bound(txt) {
		t.Error("text should be bound to canvas")
	}
	if w.Get("title") != Node(txt) {
		t.Error("Get should return the attached node")
	}
}

func TestBlockReplaceDetachesSubtree(t *testing.T) {
	w := NewWindow(RunConfig{})
	a := NewBlock()
	inner := NewShapeNode(NewRectangle(0, 0, 10, 10, ColorBlack))
	a.Set("inner", inner)
	w.Set("first", NewText(Label{}))
	w.Set("x", a)
	w.Set("last", NewText(Label{}))

	b := NewText(Label{Content: "b"})
	w.Set("x", b)

	if got := w.Get("x"); got != Node(b) {
		t.Fatalf("Get(x) = %v, want b", got)
	}
	if a.Parent() != nil || a.Canvas() != nil {
		t.Error("replaced block should be detached")
	}
	if inner.Canvas() != nil {
		t.Error("replaced block's children should lose the canvas")
	}
	if w.Canvas().Bound(inner) {
		t.Error("replaced subtree should be unbound")
	}
	if want := []string{"first", "x", "last"}; !slices.Equal(w.Root().Names(), want) {
		t.Errorf("Names = %v, want %v (replacement keeps the slot)", w.Root().Names(), want)
	}
	for n := range w.Root().Leaves() {
		if n == Node(inner) {
			t.Error("detached leaf reached by traversal")
		}
	}
}

func TestBlockReplaceDrawsAboveHitsInSlot(t *testing.T) {
	w := NewWindow(RunConfig{})
	var hit string
	old := NewButton(NewRectangle(0, 0, 50, 50, ColorBlack), func() { hit = "old" })
	w.Set("a", old)
	w.Set("b", NewButton(NewRectangle(0, 0, 50, 50, ColorBlack), func() { hit = "b" }))
	repl := NewButton(NewRectangle(0, 0, 50, 50, ColorBlack), func() { hit = "repl" })
	w.Set("a", repl)

	w.Press(10, 10)
	if hit != "repl" {
		t.Errorf("hit = %q, want repl (replacement keeps the slot)", hit)
	}
	c := w.Canvas()
	c.reindex()
	if last := c.entries[len(c.entries)-1].r; last != Renderable(repl) {
		t.Errorf("last drawn = %T, want the replacement", last)
	}
}

func TestBlockCanvasPropagation(t *testing.T) {
	w := NewWindow(RunConfig{})
	outer := NewBlock()
	mid := NewBlock()
	leaf := NewText(Label{})
	mid.Set("leaf", leaf)
	outer.Set("mid", mid)

	if leaf.Canvas() != nil {
		t.Fatal("detached tree should have no canvas")
	}
	w.Set("outer", outer)
	for _, n := range []Node{outer, mid, leaf} {
		if n.Canvas() != w.Canvas() {
			t.Errorf("%q: canvas not propagated", n.Name())
		}
	}

	w.Set("outer", nil)
	for _, n := range []Node{outer, mid, leaf} {
		if n.Canvas() != nil {
			t.Errorf("%q: canvas not cleared", n.Name())
		}
	}
	if w.Canvas().Len() != 0 {
		t.Errorf("canvas Len = %d, want 0", w.Canvas().Len())
	}
	if w.Has("outer") {
		t.Error("outer should be gone")
	}
}

func TestBlockSetSameNodeNoop(t *testing.T) {
	w := NewWindow(RunConfig{})
	txt := NewText(Label{})
	w.Set("a", txt)
	w.Set("a", txt)
	if w.Root().Len() != 1 || w.Canvas().Len() != 1 {
		t.Errorf("Len = %d / %d, want 1 / 1", w.Root().Len(), w.Canvas().Len())
	}
}

func TestBlockMoveBetweenBlocks(t *testing.T) {
	w := NewWindow(RunConfig{})
	left, right := NewBlock(), NewBlock()
	w.Set("left", left)
	w.Set("right", right)
	txt := NewText(Label{})
	left.Set("t", txt)

	right.Set("moved", txt)
	if left.Has("t") {
		t.Error("old parent should drop the node")
	}
	if txt.Parent() != right || txt.Name() != "moved" {
		t.Errorf("parent/name = %v/%q", txt.Parent(), txt.Name())
	}
	if !w.Canvas().Bound(txt) || w.Canvas().Len() != 1 {
		t.Error("moved node should stay bound exactly once")
	}
}

func TestBlockRemoveUnknownNoop(t *testing.T) {
	b := NewBlock()
	b.Remove("missing")
	b.Set("missing", nil)
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

func TestBlockGetUnknownPanics(t *testing.T) {
	b := NewBlock()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); msg != `win: no child named "nope" in block ""` {
			t.Errorf("panic = %v", r)
		}
	}()
	b.Get("nope")
}

func TestBlockLookupAndHas(t *testing.T) {
	b := NewBlock()
	txt := NewText(Label{})
	b.Set("t", txt)
	if n, ok := b.Lookup("t"); !ok || n != Node(txt) {
		t.Error("Lookup(t) failed")
	}
	if _, ok := b.Lookup("u"); ok {
		t.Error("Lookup(u) should fail")
	}
	if !b.Has("t") || b.Has("u") {
		t.Error("Has mismatch")
	}
}

func TestBlockCyclePanics(t *testing.T) {
	a := NewBlock()
	b := NewBlock()
	a.Set("b", b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.Set("a", a)
}

func TestBlockLeavesPreOrder(t *testing.T) {
	root := NewBlock()
	root.Set("a", NewText(Label{}))
	group := NewBlock()
	group.Set("b1", NewText(Label{}))
	sub := NewBlock()
	sub.Set("c", NewText(Label{}))
	group.Set("sub", sub)
	group.Set("b2", NewText(Label{}))
	root.Set("group", group)
	root.Set("d", NewText(Label{}))
	root.Set("empty", NewBlock())

	want := []string{"a", "b1", "c", "b2", "d"}
	if got := leafNames(root); !slices.Equal(got, want) {
		t.Errorf("Leaves = %v, want %v", got, want)
	}
}

func TestBlockLeavesEarlyStop(t *testing.T) {
	root := NewBlock()
	for _, n := range []string{"a", "b", "c"} {
		root.Set(n, NewText(Label{}))
	}
	count := 0
	for range root.Leaves() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestChild(t *testing.T) {
	b := NewBlock()
	b.Set("t", NewText(Label{Content: "x"}))
	if got := Child[*Text](b, "t").Text(); got != "x" {
		t.Errorf("Text = %q, want x", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on wrong type")
		}
	}()
	Child[*Button](b, "t")
}

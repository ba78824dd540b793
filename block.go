package win

import (
	"fmt"
	"iter"
	"slices"
)

// Block is a composite node that owns named children. Children keep their
// insertion order, which is the priority order of hit-testing. Names are
// unique within one block.
//
// Render order is canvas bind order. It matches the child order as long as
// nodes are only appended; a node that replaces a name, or is attached into
// an earlier block, keeps the tree position for hit-testing but is drawn
// above everything bound before it.
//
// Types that embed *Block are blocks too: they can be attached like any
// node and their children take part in traversal.
type Block struct {
	object
	order    []string
	children map[string]Node
}

// NewBlock creates an empty, detached block.
func NewBlock() *Block {
	return &Block{children: make(map[string]Node)}
}

func (b *Block) block() *Block { return b }

// Set attaches n under name. Whatever held the name before is detached
// together with its subtree; n takes over its position. If n is attached
// elsewhere it is moved here. A nil n detaches the current holder.
// Panics if n is an ancestor of b.
func (b *Block) Set(name string, n Node) {
	if n == nil {
		b.Remove(name)
		return
	}
	if b.children == nil {
		b.children = make(map[string]Node)
	}
	if cur, ok := b.children[name]; ok && cur == n {
		return
	}
	if c, ok := n.(container); ok && isAncestor(c.block(), b) {
		panic("win: attaching block would create a cycle")
	}
	if p := n.Parent(); p != nil {
		p.unlink(n.Name())
	}

	if old, ok := b.children[name]; ok {
		old.attach(nil, "")
		old.setCanvas(nil)
	} else {
		b.order = append(b.order, name)
	}
	b.children[name] = n
	n.attach(b, name)
	n.setCanvas(b.canvas)

	if globalDebug {
		debugCheckTreeDepth(b)
		debugCheckChildCount(b)
	}
}

// Remove detaches the child held under name and its whole subtree.
// No-op if the name is not attached.
func (b *Block) Remove(name string) {
	n, ok := b.children[name]
	if !ok {
		return
	}
	b.unlink(name)
	n.setCanvas(nil)
}

// unlink drops name from the block and clears the child's parent, leaving
// its canvas alone so a move between blocks can rebind it directly.
func (b *Block) unlink(name string) {
	n, ok := b.children[name]
	if !ok {
		return
	}
	delete(b.children, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	n.attach(nil, "")
}

// Get returns the child attached under name. Panics if there is none; use
// Has or Lookup when the name may be absent.
func (b *Block) Get(name string) Node {
	n, ok := b.children[name]
	if !ok {
		panic(fmt.Sprintf("win: no child named %q in block %q", name, b.name))
	}
	return n
}

// Lookup returns the child attached under name and whether it exists.
func (b *Block) Lookup(name string) (Node, bool) {
	n, ok := b.children[name]
	return n, ok
}

// Has reports whether a child is attached under name.
func (b *Block) Has(name string) bool {
	_, ok := b.children[name]
	return ok
}

// Len returns the number of direct children.
func (b *Block) Len() int {
	return len(b.order)
}

// Names returns the child names in insertion order.
func (b *Block) Names() []string {
	return slices.Clone(b.order)
}

// Leaves yields every transitively reachable leaf in depth-first pre-order.
// Children are visited in insertion order and a nested block's leaves are
// yielded at the block's own position; blocks themselves are not yielded.
func (b *Block) Leaves() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		b.walkLeaves(yield)
	}
}

func (b *Block) walkLeaves(yield func(Node) bool) bool {
	for _, name := range b.order {
		n := b.children[name]
		if c, ok := n.(container); ok {
			if !c.block().walkLeaves(yield) {
				return false
			}
			continue
		}
		if !yield(n) {
			return false
		}
	}
	return true
}

func (b *Block) setCanvas(c *Canvas) {
	if b.canvas == c {
		return
	}
	b.canvas = c
	for _, name := range b.order {
		b.children[name].setCanvas(c)
	}
}

// Child returns the child under name as T. Panics if the name is unknown or
// holds a different type.
func Child[T Node](b *Block, name string) T {
	n := b.Get(name)
	v, ok := n.(T)
	if !ok {
		panic(fmt.Sprintf("win: child %q in block %q is %T, not %T", name, b.name, n, v))
	}
	return v
}

// isAncestor reports whether candidate is b or one of its ancestors.
func isAncestor(candidate, b *Block) bool {
	for p := b; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

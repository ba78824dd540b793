package win

// Node is any attachable element of the scene tree: a block or a leaf
// (shape, text, button, image, input). A node gets its name, parent and
// canvas when a Block attaches it; a detached node has none of them and is
// neither drawn nor hit-tested.
type Node interface {
	// Name returns the name the node is attached under, or "" if detached.
	Name() string
	// Parent returns the containing block, or nil if detached.
	Parent() *Block
	// Canvas returns the canvas the node is bound to, or nil if detached.
	Canvas() *Canvas

	attach(parent *Block, name string)
	setCanvas(c *Canvas)
}

// Hittable is a node that reacts to pointer presses.
type Hittable interface {
	Node
	Contains(x, y float64) bool
	Activate()
}

// container is implemented by *Block and by any type embedding it.
type container interface {
	Node
	block() *Block
}

// object carries the attachment state shared by every node. The parent
// pointer is non-owning: ownership runs parent→child through Block.children.
type object struct {
	name   string
	parent *Block
	canvas *Canvas
}

func (o *object) Name() string    { return o.name }
func (o *object) Parent() *Block  { return o.parent }
func (o *object) Canvas() *Canvas { return o.canvas }

func (o *object) attach(parent *Block, name string) {
	o.parent = parent
	o.name = name
}

// rebind moves r from the current canvas to c.
func (o *object) rebind(c *Canvas, r Renderable, layer Layer) {
	if o.canvas == c {
		return
	}
	if o.canvas != nil {
		o.canvas.Unbind(r)
	}
	o.canvas = c
	if c != nil {
		c.Bind(r, layer)
	}
}

// window returns the window owning the node's canvas, if any.
func (o *object) window() *Window {
	if o.canvas == nil {
		return nil
	}
	return o.canvas.owner
}

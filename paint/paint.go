// Package paint builds the painted form of a laid out document : one
// paintable box per layout box, and the stacking context tree carrying
// the transformation matrices style queries read back.
package paint

import (
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/layout"
)

var (
	_ dom.Paintable    = (*ViewportPaintable)(nil)
	_ dom.PaintableBox = (*PaintableBox)(nil)
)

// ViewportPaintable is the painted form of a whole document.
type ViewportPaintable struct {
	tree *layout.Tree
	root *StackingContext // nil until built
}

// NewViewportPaintable creates the paintable boxes for every box of
// `tree`, filling the paintable slot of each layout node. The
// stacking context tree is built on demand.
func NewViewportPaintable(tree *layout.Tree) *ViewportPaintable {
	v := &ViewportPaintable{tree: tree}
	if root := tree.Root(); root != nil {
		createBoxes(root)
	}
	return v
}

func createBoxes(n *layout.Node) {
	n.SetPaintableBox(&PaintableBox{node: n})
	for _, child := range n.Children() {
		createBoxes(child)
	}
}

// BuildStackingContextTreeIfNeeded builds the stacking context tree if
// it is absent, and is a no-op otherwise.
func (v *ViewportPaintable) BuildStackingContextTreeIfNeeded() {
	if v.root != nil {
		return
	}
	root := v.tree.Root()
	if root == nil {
		return
	}
	v.root = newStackingContext(root, nil)
	collectContexts(root, v.root)
}

// RootStackingContext returns the stacking context of the root
// element, or nil before the first build.
func (v *ViewportPaintable) RootStackingContext() *StackingContext { return v.root }

// PaintableBox is the painted form of one laid out box.
type PaintableBox struct {
	node            *layout.Node
	stackingContext *StackingContext
}

// StackingContext returns the stacking context established by this
// box, or nil if it establishes none.
func (p *PaintableBox) StackingContext() dom.StackingContext {
	if p.stackingContext == nil {
		return nil
	}
	return p.stackingContext
}

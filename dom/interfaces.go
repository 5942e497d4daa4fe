package dom

import (
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/matrix"
	"github.com/benoitkugler/cssom/utils"
)

// LayoutNode is the view of a laid out element needed by style
// queries. It is implemented by the layout package.
type LayoutNode interface {
	// Element returns the element this node was generated for.
	Element() *Element

	// ComputedValues returns the typed form of the computed style
	// the node was laid out with.
	ComputedValues() *pr.ComputedValues

	// LineHeight returns the used line height, in pixels.
	LineHeight() utils.Fl

	// PaintableBox returns the painted form of the node, or nil
	// before the first paint tree build.
	PaintableBox() PaintableBox
}

// Paintable is the painted form of a whole document, owning the
// stacking context tree.
type Paintable interface {
	// BuildStackingContextTreeIfNeeded builds the stacking context
	// tree if it is absent, and is a no-op otherwise.
	BuildStackingContextTreeIfNeeded()
}

// PaintableBox is the painted form of one laid out box.
type PaintableBox interface {
	// StackingContext returns the stacking context established by
	// this box, or nil if it establishes none.
	StackingContext() StackingContext
}

// StackingContext is one node of the stacking context tree.
type StackingContext interface {
	// AffineTransformMatrix returns the transform functions of the
	// establishing box, combined into a single matrix.
	AffineTransformMatrix() matrix.Transform
}

// StyleComputer computes the style of elements from the declarations
// applying to them. It is used directly for elements outside of the
// layout tree, which have no up to date computed style slot.
type StyleComputer interface {
	ComputeStyle(e *Element) (pr.Properties, error)
}

// Updater is the hook by which a document asks its owning browsing
// context for fresh style or layout information.
type Updater interface {
	// UpdateStyle computes the styles of the whole document if they
	// are stale.
	UpdateStyle()

	// UpdateLayout builds the layout tree if it is stale, updating
	// styles first if needed.
	UpdateLayout()
}

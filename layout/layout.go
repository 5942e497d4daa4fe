// Package layout builds a tree of boxes from a styled document, with
// enough geometry to resolve the used values style queries need.
//
// Layout is strongly simplified : boxes stack vertically in document
// order, floats, positioning and inline splitting are not modelled.
package layout

import (
	"math"

	pr "github.com/benoitkugler/cssom/css/properties"
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/logger"
	"github.com/benoitkugler/cssom/utils"
)

type fl = utils.Fl

// https://drafts.csswg.org/css-inline/#valdef-line-height-normal
const defaultLineHeight = 1.2

var _ dom.LayoutNode = (*Node)(nil)

// Tree is the layout tree of one document.
type Tree struct {
	root *Node

	viewportWidth, viewportHeight fl
}

// BuildTree generates and lays out the boxes for `doc`, which must
// have up to date computed styles. The layout node slot of each
// rendered element is filled, and cleared for elements without a box.
func BuildTree(doc *dom.Document, viewportWidth, viewportHeight fl) *Tree {
	t := &Tree{viewportWidth: viewportWidth, viewportHeight: viewportHeight}
	if rootEl := doc.Root(); rootEl != nil {
		t.root = t.buildNode(rootEl, nil)
	}
	if t.root != nil {
		t.layoutBlock(t.root, viewportWidth, viewportHeight)
	}
	return t
}

// Root returns the box of the root element, or nil for an empty or
// entirely hidden document.
func (t *Tree) Root() *Node { return t.root }

func (t *Tree) buildNode(el *dom.Element, parent *Node) *Node {
	style := el.ComputedStyle()
	if style == nil {
		logger.WarningLogger.Printf("layout : element <%s> has no computed style, skipped", el.TagName())
		return nil
	}
	values := pr.NewComputedValues(style)

	switch values.Display {
	case kw.None:
		// the whole subtree generates no box
		detachLayout(el)
		return nil
	case kw.Contents:
		if parent != nil {
			// the element generates no box, but its children do
			el.SetLayoutNode(nil)
			for _, child := range el.Children() {
				if n := t.buildNode(child, parent); n != nil {
					parent.children = append(parent.children, n)
				}
			}
			return nil
		}
		// on the root element, contents computes to block
	}

	node := &Node{
		element:    el,
		values:     &values,
		parent:     parent,
		lineHeight: usedLineHeight(&values),
	}
	el.SetLayoutNode(node)
	for _, child := range el.Children() {
		if n := t.buildNode(child, node); n != nil {
			node.children = append(node.children, n)
		}
	}
	return node
}

func detachLayout(el *dom.Element) {
	el.SetLayoutNode(nil)
	for _, child := range el.Children() {
		detachLayout(child)
	}
}

func usedLineHeight(values *pr.ComputedValues) fl {
	lh := values.LineHeight
	switch {
	case lh.Normal:
		return fl(math.Round(float64(values.FontSize * defaultLineHeight)))
	case lh.Unit == pr.Scalar:
		return lh.Value * values.FontSize
	default:
		return lh.Value
	}
}

// layoutBlock computes the border box of `n` and recursively of its
// children, stacked vertically.
func (t *Tree) layoutBlock(n *Node, containingWidth, containingHeight fl) {
	values := n.values

	// percentages on margins and paddings, vertical ones included, are
	// relative to the containing width
	// https://www.w3.org/TR/CSS21/box.html#margin-properties
	marginLeft := usedLength(values.Margin.Left, containingWidth)
	marginRight := usedLength(values.Margin.Right, containingWidth)
	n.marginTop = usedLength(values.Margin.Top, containingWidth)
	n.marginBottom = usedLength(values.Margin.Bottom, containingWidth)
	paddingLeft := usedLength(values.Padding.Left, containingWidth)
	paddingRight := usedLength(values.Padding.Right, containingWidth)
	paddingTop := usedLength(values.Padding.Top, containingWidth)
	paddingBottom := usedLength(values.Padding.Bottom, containingWidth)

	horizontalExtra := paddingLeft + paddingRight + values.BorderLeft.Width + values.BorderRight.Width
	verticalExtra := paddingTop + paddingBottom + values.BorderTop.Width + values.BorderBottom.Width

	contentWidth, ok := definiteSize(values.Width, containingWidth)
	if !ok {
		// block boxes fill their containing block
		contentWidth = utils.MaxF(0, containingWidth-horizontalExtra-marginLeft-marginRight)
	}
	if min, ok := definiteSize(values.MinWidth, containingWidth); ok {
		contentWidth = utils.MaxF(contentWidth, min)
	}
	if max, ok := definiteSize(values.MaxWidth, containingWidth); ok {
		contentWidth = utils.MinF(contentWidth, max)
	}
	n.borderBoxWidth = contentWidth + horizontalExtra

	contentHeight, definite := definiteSize(values.Height, containingHeight)
	childrenReference := contentHeight // 0 when the height is auto

	var childrenHeight fl
	for _, child := range n.children {
		t.layoutBlock(child, contentWidth, childrenReference)
		childrenHeight += child.marginTop + child.borderBoxHeight + child.marginBottom
	}
	if !definite {
		contentHeight = childrenHeight
		if len(n.children) == 0 && n.element.HasText() {
			// approximate a single line of text
			contentHeight = n.lineHeight
		}
	}
	if min, ok := definiteSize(values.MinHeight, containingHeight); ok {
		contentHeight = utils.MaxF(contentHeight, min)
	}
	if max, ok := definiteSize(values.MaxHeight, containingHeight); ok {
		contentHeight = utils.MinF(contentHeight, max)
	}
	n.borderBoxHeight = contentHeight + verticalExtra
}

// usedLength resolves a margin or padding against the containing
// width. The auto keyword and unresolved calc() count as 0.
func usedLength(lp pr.LengthPercentage, reference fl) fl {
	switch {
	case lp.IsAuto() || lp.IsCalc():
		return 0
	case lp.IsPercentage():
		return lp.Value / 100 * reference
	default:
		return lp.Value
	}
}

// definiteSize resolves a size against its reference, when possible.
// Keywords, calc() and fit-content() are not definite, nor are
// percentages of an indefinite reference.
func definiteSize(s pr.Size, reference fl) (fl, bool) {
	if s.Keyword != 0 || s.IsCalc() {
		return 0, false
	}
	switch s.Unit {
	case pr.Px:
		return s.Value, true
	case pr.Perc:
		if reference > 0 {
			return s.Value / 100 * reference, true
		}
	}
	return 0, false
}

// Node is one box of the layout tree.
type Node struct {
	element  *dom.Element
	values   *pr.ComputedValues
	parent   *Node
	children []*Node

	lineHeight              fl
	marginTop, marginBottom fl

	borderBoxWidth, borderBoxHeight fl

	paintable dom.PaintableBox
}

// Element returns the element the box was generated for.
func (n *Node) Element() *dom.Element { return n.element }

// ComputedValues returns the typed style the box was laid out with.
func (n *Node) ComputedValues() *pr.ComputedValues { return n.values }

// LineHeight returns the used line height, in pixels.
func (n *Node) LineHeight() fl { return n.lineHeight }

// Parent returns the parent box, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child boxes, in document order.
func (n *Node) Children() []*Node { return n.children }

// BorderBoxWidth returns the border box width, in pixels.
func (n *Node) BorderBoxWidth() fl { return n.borderBoxWidth }

// BorderBoxHeight returns the border box height, in pixels.
func (n *Node) BorderBoxHeight() fl { return n.borderBoxHeight }

// PaintableBox returns the painted form of the box, or nil before the
// first paint tree build.
func (n *Node) PaintableBox() dom.PaintableBox { return n.paintable }

// SetPaintableBox attaches the painted form of the box.
func (n *Node) SetPaintableBox(p dom.PaintableBox) { n.paintable = p }

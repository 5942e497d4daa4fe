package paint

import (
	"math"
	"sort"

	pr "github.com/benoitkugler/cssom/css/properties"
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/layout"
	"github.com/benoitkugler/cssom/logger"
	"github.com/benoitkugler/cssom/matrix"
	"github.com/benoitkugler/cssom/utils"
)

type fl = utils.Fl

var _ dom.StackingContext = (*StackingContext)(nil)

// StackingContext is one node of the stacking context tree,
// establishing a local coordinate system for z-ordering.
type StackingContext struct {
	box      *PaintableBox
	parent   *StackingContext
	children []*StackingContext // sorted by z-index, document order preserved

	zIndex    int
	transform matrix.Transform
}

func newStackingContext(n *layout.Node, parent *StackingContext) *StackingContext {
	sc := &StackingContext{
		box:       n.PaintableBox().(*PaintableBox),
		parent:    parent,
		zIndex:    n.ComputedValues().ZIndex.Int,
		transform: combineTransformations(n),
	}
	sc.box.stackingContext = sc
	return sc
}

// collectContexts walks the subtree of `n`, attaching the stacking
// contexts established below `parent`.
func collectContexts(n *layout.Node, parent *StackingContext) {
	for _, child := range n.Children() {
		if establishesStackingContext(child) {
			sc := newStackingContext(child, parent)
			parent.children = append(parent.children, sc)
			collectContexts(child, sc)
		} else {
			collectContexts(child, parent)
		}
	}
	sort.SliceStable(parent.children, func(i, j int) bool {
		return parent.children[i].zIndex < parent.children[j].zIndex
	})
}

// establishesStackingContext returns true if the box creates a new
// stacking context.
// https://www.w3.org/TR/CSS21/zindex.html
func establishesStackingContext(n *layout.Node) bool {
	if n.Parent() == nil { // the root element always does
		return true
	}
	values := n.ComputedValues()
	if len(values.Transformations) != 0 {
		return true
	}
	if values.Opacity < 1 {
		return true
	}
	if values.Position != kw.Static && !values.ZIndex.Auto {
		return true
	}
	return false
}

// AffineTransformMatrix returns the transform functions of the
// establishing box, combined into a single matrix.
func (sc *StackingContext) AffineTransformMatrix() matrix.Transform { return sc.transform }

// ZIndex returns the z-index of the establishing box, 0 for auto.
func (sc *StackingContext) ZIndex() int { return sc.zIndex }

// Parent returns the parent context, or nil for the root.
func (sc *StackingContext) Parent() *StackingContext { return sc.parent }

// Children returns the child contexts, sorted by z-index.
func (sc *StackingContext) Children() []*StackingContext { return sc.children }

// combineTransformations folds the transform list of the box into a
// single matrix, applying the functions in order. Translation
// percentages are resolved against the border box of the box.
// https://drafts.csswg.org/css-transforms/#transform-rendering
func combineTransformations(n *layout.Node) matrix.Transform {
	out := matrix.Identity()
	w, h := n.BorderBoxWidth(), n.BorderBoxHeight()
	for _, tr := range n.ComputedValues().Transformations {
		out.RightMultBy(transformationMatrix(tr, w, h))
	}
	return out
}

func transformationMatrix(tr pr.Transformation, w, h fl) matrix.Transform {
	switch tr.Function {
	case pr.TFMatrix:
		return matrix.New(
			numberParam(tr, 0, 1), numberParam(tr, 1, 0),
			numberParam(tr, 2, 0), numberParam(tr, 3, 1),
			numberParam(tr, 4, 0), numberParam(tr, 5, 0),
		)
	case pr.TFTranslate:
		return matrix.Translation(lengthParam(tr, 0, w), lengthParam(tr, 1, h))
	case pr.TFTranslateX:
		return matrix.Translation(lengthParam(tr, 0, w), 0)
	case pr.TFTranslateY:
		return matrix.Translation(0, lengthParam(tr, 0, h))
	case pr.TFScale:
		sx := numberParam(tr, 0, 1)
		sy := sx
		if len(tr.Parameters) > 1 {
			sy = numberParam(tr, 1, 1)
		}
		return matrix.Scaling(sx, sy)
	case pr.TFScaleX:
		return matrix.Scaling(numberParam(tr, 0, 1), 1)
	case pr.TFScaleY:
		return matrix.Scaling(1, numberParam(tr, 0, 1))
	case pr.TFRotate:
		return matrix.Rotation(angleParam(tr, 0))
	case pr.TFSkew:
		return matrix.Skew(angleParam(tr, 0), angleParam(tr, 1))
	case pr.TFSkewX:
		return matrix.Skew(angleParam(tr, 0), 0)
	case pr.TFSkewY:
		return matrix.Skew(0, angleParam(tr, 0))
	default:
		logger.WarningLogger.Printf("unsupported transform function %s", tr.Function)
		return matrix.Identity()
	}
}

// lengthParam resolves the i-th parameter as a length in pixels, with
// percentages relative to `reference`. A missing parameter is 0.
func lengthParam(tr pr.Transformation, i int, reference fl) fl {
	if i >= len(tr.Parameters) {
		return 0
	}
	switch v := tr.Parameters[i].(type) {
	case pr.Length:
		return v.Value
	case pr.Percentage:
		return fl(v) / 100 * reference
	case pr.Number:
		return fl(v)
	}
	return 0
}

// numberParam returns the i-th parameter as a scalar, or `missing`.
func numberParam(tr pr.Transformation, i int, missing fl) fl {
	if i >= len(tr.Parameters) {
		return missing
	}
	switch v := tr.Parameters[i].(type) {
	case pr.Number:
		return fl(v)
	case pr.Length:
		if v.Unit == pr.Scalar {
			return v.Value
		}
	}
	return missing
}

// angleParam returns the i-th parameter as an angle in radians.
// A missing parameter is 0.
func angleParam(tr pr.Transformation, i int) fl {
	if i >= len(tr.Parameters) {
		return 0
	}
	angle, ok := tr.Parameters[i].(pr.Length)
	if !ok {
		return 0
	}
	switch angle.Unit {
	case pr.Rad:
		return angle.Value
	case pr.Deg:
		return angle.Value * math.Pi / 180
	case pr.Grad:
		return angle.Value * math.Pi / 200
	case pr.Turn:
		return angle.Value * 2 * math.Pi
	}
	return 0
}

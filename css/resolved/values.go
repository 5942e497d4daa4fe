package resolved

import (
	pr "github.com/benoitkugler/cssom/css/properties"
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/logger"
)

// lengthPercentageValue builds the resolved form of a computed
// <length-percentage> | auto value.
func lengthPercentageValue(v pr.LengthPercentage) pr.StyleValue {
	switch {
	case v.IsAuto():
		return pr.Ident(kw.Auto)
	case v.IsPercentage():
		return pr.Percentage(v.Value)
	case v.IsCalc():
		return v.Calc
	default:
		return pr.Length(v.Dimension)
	}
}

// sizeValue builds the resolved form of a computed sizing value.
// The parameterized fit-content(<length-percentage>) form has no
// resolved form yet and panics.
func sizeValue(v pr.Size) pr.StyleValue {
	if v.IsParameterizedFitContent() {
		panic("unsupported fit-content() in a resolved value")
	}
	switch v.Keyword {
	case kw.None:
		return pr.Ident(kw.None)
	case kw.Auto:
		return pr.Ident(kw.Auto)
	case kw.MinContent:
		return pr.Ident(kw.MinContent)
	case kw.MaxContent:
		return pr.Ident(kw.MaxContent)
	case kw.FitContent:
		return pr.Ident(kw.FitContent)
	}
	if v.IsCalc() {
		return v.Calc
	}
	if v.Unit == pr.Perc {
		return pr.Percentage(v.Value)
	}
	return pr.Length(v.Dimension)
}

// styleValueForSidedShorthand collapses the resolved values of the four
// sides of a shorthand, using the shortest of the 1 to 4 value forms.
func styleValueForSidedShorthand(top, right, bottom, left pr.StyleValue) pr.StyleValue {
	topAndBottomSame := pr.Equal(top, bottom)
	leftAndRightSame := pr.Equal(left, right)

	switch {
	case topAndBottomSame && leftAndRightSame && pr.Equal(top, left):
		return top
	case topAndBottomSame && leftAndRightSame:
		return pr.ValueList{Values: []pr.StyleValue{top, right}, Separator: pr.SpaceSep}
	case leftAndRightSame:
		return pr.ValueList{Values: []pr.StyleValue{top, right, bottom}, Separator: pr.SpaceSep}
	default:
		return pr.ValueList{Values: []pr.StyleValue{top, right, bottom, left}, Separator: pr.SpaceSep}
	}
}

// styleValueForBackgroundPosition builds the resolved background
// position : the default position without layers, the position of a
// single layer as is, or a comma separated list.
func styleValueForBackgroundPosition(layers []pr.BackgroundLayer) pr.StyleValue {
	switch len(layers) {
	case 0:
		return pr.Position{
			X: pr.Edge{Side: kw.Left, Offset: pr.PercLP(0)},
			Y: pr.Edge{Side: kw.Top, Offset: pr.PercLP(0)},
		}
	case 1:
		return layers[0].Position
	default:
		values := make([]pr.StyleValue, len(layers))
		for i, layer := range layers {
			values[i] = layer.Position
		}
		return pr.ValueList{Values: values, Separator: pr.CommaSep}
	}
}

func isValueList(v pr.StyleValue) bool {
	_, ok := v.(pr.ValueList)
	return ok
}

// styleValueForProperty returns the resolved value of a property for an
// element with a layout node, or nil if it has none.
//
// A limited number of properties have special rules for producing their
// resolved value, and shorthands are rebuilt from their longhands ;
// everything else uses the computed value.
// https://www.w3.org/TR/cssom-1/#resolved-values
func styleValueForProperty(node dom.LayoutNode, id pr.PropertyID) pr.StyleValue {
	cv := node.ComputedValues()
	switch id {
	// for the color properties, the resolved value is the used value
	case pr.PBackgroundColor:
		return cv.BackgroundColor
	case pr.PBorderBottomColor:
		return cv.BorderBottom.Color
	case pr.PBorderLeftColor:
		return cv.BorderLeft.Color
	case pr.PBorderRightColor:
		return cv.BorderRight.Color
	case pr.PBorderTopColor:
		return cv.BorderTop.Color
	case pr.PColor:
		return cv.Color
	case pr.POutlineColor:
		return cv.Outline.Color
	case pr.PTextDecorationColor:
		return cv.TextDecoration.Color

	case pr.PLineHeight:
		// normal resolves as is, other values as the used line height
		lineHeight := node.Element().ComputedStyle()[pr.PLineHeight]
		if lineHeight == pr.Ident(kw.Normal) {
			return lineHeight
		}
		return pr.PxLength(node.LineHeight())

	// the sizing, margin, padding and inset properties should resolve
	// to their used value when the element is rendered ; returning the
	// computed value in every case is a simpler approximation
	case pr.PHeight:
		return sizeValue(cv.Height)
	case pr.PWidth:
		return sizeValue(cv.Width)
	case pr.PMarginBottom:
		return lengthPercentageValue(cv.Margin.Bottom)
	case pr.PMarginLeft:
		return lengthPercentageValue(cv.Margin.Left)
	case pr.PMarginRight:
		return lengthPercentageValue(cv.Margin.Right)
	case pr.PMarginTop:
		return lengthPercentageValue(cv.Margin.Top)
	case pr.PPaddingBottom:
		return lengthPercentageValue(cv.Padding.Bottom)
	case pr.PPaddingLeft:
		return lengthPercentageValue(cv.Padding.Left)
	case pr.PPaddingRight:
		return lengthPercentageValue(cv.Padding.Right)
	case pr.PPaddingTop:
		return lengthPercentageValue(cv.Padding.Top)
	case pr.PBottom:
		return lengthPercentageValue(cv.Inset.Bottom)
	case pr.PLeft:
		return lengthPercentageValue(cv.Inset.Left)
	case pr.PRight:
		return lengthPercentageValue(cv.Inset.Right)
	case pr.PTop:
		return lengthPercentageValue(cv.Inset.Top)

	case pr.PTransform:
		// the computed value of transform serializes as a single
		// matrix() function
		// https://www.w3.org/TR/css-transforms-1/#serialization-of-the-computed-value
		if len(cv.Transformations) == 0 {
			return pr.Ident(kw.None)
		}

		// the matrix is held by the stacking context, built on demand
		viewport := node.Element().Document().Paintable()
		if viewport == nil {
			panic("transform resolution requires a painted document")
		}
		viewport.BuildStackingContextTreeIfNeeded()

		box := node.PaintableBox()
		if box == nil {
			panic("transform resolution requires a paintable box")
		}
		context := box.StackingContext()
		if context == nil {
			panic("transform resolution requires a stacking context")
		}

		m := context.AffineTransformMatrix()
		matrixFunction := pr.Transformation{
			Function: pr.TFMatrix,
			Parameters: []pr.StyleValue{
				pr.Number(m.A), pr.Number(m.B), pr.Number(m.C),
				pr.Number(m.D), pr.Number(m.E), pr.Number(m.F),
			},
		}
		// the transform value is stored as a list of functions
		// everywhere else : keep the same shape
		return pr.ValueList{Values: []pr.StyleValue{matrixFunction}, Separator: pr.SpaceSep}

	// the remaining cases are shorthands needing manual construction
	case pr.PBackgroundPosition:
		return styleValueForBackgroundPosition(cv.BackgroundLayers)

	case pr.PBorder:
		width := styleValueForProperty(node, pr.PBorderWidth)
		style := styleValueForProperty(node, pr.PBorderStyle)
		color := styleValueForProperty(node, pr.PBorderColor)
		// border only has a reasonable value if the four sides are the same
		if isValueList(width) || isValueList(style) || isValueList(color) {
			return nil
		}
		return pr.ShorthandValue{
			Shorthand: id,
			Longhands: pr.Shorthands[id],
			Values:    []pr.StyleValue{width, style, color},
		}

	case pr.PBorderColor, pr.PBorderStyle, pr.PBorderWidth, pr.PMargin, pr.PPadding:
		sides := pr.Shorthands[id] // in top, right, bottom, left order
		return styleValueForSidedShorthand(
			styleValueForProperty(node, sides[0]),
			styleValueForProperty(node, sides[1]),
			styleValueForProperty(node, sides[2]),
			styleValueForProperty(node, sides[3]),
		)

	case pr.PInvalid:
		return pr.Ident(kw.Invalid)
	case pr.PCustom:
		logger.WarningLogger.Println("resolved value requested for a custom property")
		return nil

	default:
		if !id.IsShorthand() {
			return node.Element().ComputedStyle()[id]
		}

		// handle the other shorthands in a generic way
		longhands := pr.Shorthands[id]
		values := make([]pr.StyleValue, len(longhands))
		for i, longhand := range longhands {
			values[i] = styleValueForProperty(node, longhand)
		}
		return pr.ShorthandValue{Shorthand: id, Longhands: longhands, Values: values}
	}
}

package style

import (
	pr "github.com/benoitkugler/cssom/css/properties"
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
	"github.com/benoitkugler/cssom/utils"
)

// Convert *specified* property values (the result of the cascade and
// inheritance) into *computed* values (that are inherited).

var (
	// http://www.w3.org/TR/CSS21/fonts.html#propdef-font-weight
	fontWeightRelative = struct {
		bolder, lighter map[int]int
	}{
		bolder: map[int]int{
			100: 400,
			200: 400,
			300: 400,
			400: 700,
			500: 700,
			600: 900,
			700: 900,
			800: 900,
			900: 900,
		},
		lighter: map[int]int{
			100: 100,
			200: 100,
			300: 100,
			400: 100,
			500: 100,
			600: 400,
			700: 400,
			800: 700,
			900: 700,
		},
	}

	// https://drafts.csswg.org/css-transforms/#propdef-transform-origin
	originKeywords = map[kw.Keyword]pr.StyleValue{
		kw.Left:   pr.Percentage(0),
		kw.Center: pr.Percentage(50),
		kw.Right:  pr.Percentage(100),
		kw.Top:    pr.Percentage(0),
		kw.Bottom: pr.Percentage(100),
	}

	// Maps properties to functions returning the computed values
	computerFunctions = map[pr.PropertyID]computerFunc{}

	// to avoid declaration cycle
	tmp = map[pr.PropertyID]computerFunc{
		pr.PTop:    length,
		pr.PRight:  length,
		pr.PBottom: length,
		pr.PLeft:   length,

		pr.PMarginTop:     length,
		pr.PMarginRight:   length,
		pr.PMarginBottom:  length,
		pr.PMarginLeft:    length,
		pr.PPaddingTop:    length,
		pr.PPaddingRight:  length,
		pr.PPaddingBottom: length,
		pr.PPaddingLeft:   length,

		pr.PWidth:     length,
		pr.PHeight:    length,
		pr.PMinWidth:  length,
		pr.PMinHeight: length,
		pr.PMaxWidth:  length,
		pr.PMaxHeight: length,

		pr.PFlexBasis:     length,
		pr.PTextIndent:    length,
		pr.PColumnGap:     length,
		pr.PRowGap:        length,
		pr.POutlineOffset: length,
		pr.PVerticalAlign: length,

		pr.PBorderTopWidth:    borderWidth,
		pr.PBorderRightWidth:  borderWidth,
		pr.PBorderBottomWidth: borderWidth,
		pr.PBorderLeftWidth:   borderWidth,
		pr.POutlineWidth:      borderWidth,

		pr.PLetterSpacing: letterSpacing,
		pr.PWordSpacing:   wordSpacing,

		pr.PColor:      color,
		pr.PFontSize:   fontSize,
		pr.PFontWeight: fontWeight,
		pr.PLineHeight: lineHeight,
		pr.POpacity:    opacity,

		pr.PTransform:          transforms,
		pr.PTransformOrigin:    transformOrigin,
		pr.PBackgroundPosition: backgroundPosition,
		pr.PBackgroundSize:     lengthList,
	}
)

func init() {
	if pr.InitialValues.GetBorderTopWidth().Value != pr.BorderWidthKeywords[kw.Medium] {
		panic("border-top-width and medium should be the same !")
	}

	for k, v := range tmp {
		computerFunctions[k] = v
	}
}

type computerFunc = func(*computation, pr.PropertyID, pr.StyleValue) pr.StyleValue

// computation is the context of one style computation.
type computation struct {
	out          pr.Properties // being computed, font size already final
	parentStyle  pr.Properties // nil for the root element
	rootFontSize pr.Fl
}

func (c *computation) fontSize() pr.Fl { return c.out.GetFontSize().Value }

func (c *computation) parentFontSize() pr.Fl {
	if c.parentStyle == nil {
		return pr.InitialValues.GetFontSize().Value
	}
	return c.parentStyle.GetFontSize().Value
}

func (c *computation) parentFontWeight() int {
	if c.parentStyle == nil {
		return int(pr.InitialValues[pr.PFontWeight].(pr.Number))
	}
	if w, ok := c.parentStyle[pr.PFontWeight].(pr.Number); ok {
		return int(w)
	}
	return 400
}

func length(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	return length2(c, value, -1)
}

// length2 converts a length to pixels. Keywords, percentages, numbers,
// angles and calc() expressions are returned unchanged. Passing a
// negative fontSize means the font size of the computed element.
func length2(c *computation, value pr.StyleValue, fontSize pr.Fl) pr.StyleValue {
	switch v := value.(type) {
	case pr.Length:
		return pr.Length(absoluteDim(c, pr.Dimension(v), fontSize))
	case pr.FitContent:
		v.Arg = absoluteDim(c, v.Arg, fontSize)
		return v
	default:
		return value
	}
}

func absoluteDim(c *computation, value pr.Dimension, fontSize pr.Fl) pr.Dimension {
	var result pr.Fl
	switch unit := value.Unit; unit {
	case pr.Px:
		return value
	case pr.Pt, pr.Pc, pr.In, pr.Cm, pr.Mm, pr.Q:
		result = value.Value * pr.LengthsToPixels[unit]
	case pr.Em, pr.Ex, pr.Ch, pr.Rem:
		if fontSize < 0 {
			fontSize = c.fontSize()
		}
		switch unit {
		case pr.Em:
			result = value.Value * fontSize
		case pr.Ex, pr.Ch:
			// without font metrics, use the ratio suggested by
			// https://www.w3.org/TR/css-values-4/#font-relative-lengths
			result = value.Value * fontSize * 0.5
		case pr.Rem:
			result = value.Value * c.rootFontSize
		}
	default:
		// percentages, numbers and angles : no conversion needed
		return value
	}
	return pr.Dimension{Value: result, Unit: pr.Px}
}

// lengthList applies [length2] to a value or to each item of a list.
func lengthList(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	list, ok := value.(pr.ValueList)
	if !ok {
		return length2(c, value, -1)
	}
	out := make([]pr.StyleValue, len(list.Values))
	for i, item := range list.Values {
		out[i] = length2(c, item, -1)
	}
	return pr.ValueList{Values: out, Separator: list.Separator}
}

// Compute the border-*-width and outline-width properties.
func borderWidth(c *computation, p pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	// the style property is declared just before its width
	style := c.out[p-1].(pr.Ident)
	if s := kw.Keyword(style); s == kw.None || s == kw.Hidden {
		return pr.Length(pr.ZeroPixels)
	}
	if ident, ok := value.(pr.Ident); ok {
		if bw, in := pr.BorderWidthKeywords[kw.Keyword(ident)]; in {
			return pr.PxLength(bw)
		}
	}
	return length2(c, value, -1)
}

func letterSpacing(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	if ident, ok := value.(pr.Ident); ok && kw.Keyword(ident) == kw.Normal {
		return value
	}
	return length2(c, value, -1)
}

func wordSpacing(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	if ident, ok := value.(pr.Ident); ok && kw.Keyword(ident) == kw.Normal {
		return pr.Length(pr.ZeroPixels)
	}
	return length2(c, value, -1)
}

// Compute the color property : on it, currentcolor means inherit.
// https://drafts.csswg.org/css-color/#resolving-other-colors
func color(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	v, ok := value.(pr.Color)
	if !ok || v.Type != pr.ColorCurrentColor {
		return value
	}
	if c.parentStyle == nil {
		return pr.InitialValues[pr.PColor]
	}
	return c.parentStyle[pr.PColor]
}

// Compute the font-size property.
func fontSize(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	parentFontSize := c.parentFontSize()

	switch v := value.(type) {
	case pr.Ident:
		// https://drafts.csswg.org/css-fonts/#valdef-font-size-larger
		switch kw.Keyword(v) {
		case kw.Larger:
			return pr.PxLength(parentFontSize * 1.2)
		case kw.Smaller:
			return pr.PxLength(parentFontSize * 0.8)
		}
		return value
	case pr.Percentage:
		return pr.PxLength(pr.Fl(v) * parentFontSize / 100)
	default:
		return length2(c, value, parentFontSize)
	}
}

// Compute the font-weight property.
func fontWeight(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	ident, ok := value.(pr.Ident)
	if !ok {
		return value
	}
	var out int
	switch kw.Keyword(ident) {
	case kw.Normal:
		out = 400
	case kw.Bold:
		out = 700
	case kw.Bolder:
		out = fontWeightRelative.bolder[c.parentFontWeight()]
	case kw.Lighter:
		out = fontWeightRelative.lighter[c.parentFontWeight()]
	default:
		return value
	}
	return pr.Number(out)
}

// Compute the line-height property.
func lineHeight(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	switch v := value.(type) {
	case pr.Number: // scalar values inherit as is
		return value
	case pr.Percentage:
		return pr.PxLength(pr.Fl(v) / 100 * c.fontSize())
	case pr.Length:
		return length2(c, v, -1)
	default: // normal
		return value
	}
}

func opacity(_ *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	switch v := value.(type) {
	case pr.Number:
		return pr.Number(utils.MaxF(0, utils.MinF(1, pr.Fl(v))))
	case pr.Percentage:
		return pr.Number(utils.MaxF(0, utils.MinF(1, pr.Fl(v)/100)))
	}
	return value
}

// Compute the transform property, absolutizing the lengths in its
// arguments.
func transforms(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	switch v := value.(type) {
	case pr.Transformation:
		return transformArgs(c, v)
	case pr.ValueList:
		out := make([]pr.StyleValue, len(v.Values))
		for i, item := range v.Values {
			if tr, ok := item.(pr.Transformation); ok {
				out[i] = transformArgs(c, tr)
			} else {
				out[i] = item
			}
		}
		return pr.ValueList{Values: out, Separator: v.Separator}
	}
	return value // none
}

func transformArgs(c *computation, t pr.Transformation) pr.Transformation {
	params := make([]pr.StyleValue, len(t.Parameters))
	for i, p := range t.Parameters {
		params[i] = length2(c, p, -1)
	}
	t.Parameters = params
	return t
}

// Compute the transform-origin property, mapping keywords to
// percentages.
func transformOrigin(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	list, ok := value.(pr.ValueList)
	if !ok {
		return value
	}
	out := make([]pr.StyleValue, len(list.Values))
	for i, item := range list.Values {
		if ident, isKeyword := item.(pr.Ident); isKeyword {
			if perc, in := originKeywords[kw.Keyword(ident)]; in {
				out[i] = perc
				continue
			}
		}
		out[i] = length2(c, item, -1)
	}
	return pr.ValueList{Values: out, Separator: list.Separator}
}

// Compute the background-position property.
func backgroundPosition(c *computation, _ pr.PropertyID, value pr.StyleValue) pr.StyleValue {
	switch v := value.(type) {
	case pr.Position:
		return positionLengths(c, v)
	case pr.ValueList:
		out := make([]pr.StyleValue, len(v.Values))
		for i, item := range v.Values {
			if po, ok := item.(pr.Position); ok {
				out[i] = positionLengths(c, po)
			} else {
				out[i] = item
			}
		}
		return pr.ValueList{Values: out, Separator: v.Separator}
	}
	return value
}

func positionLengths(c *computation, p pr.Position) pr.Position {
	p.X.Offset = offsetLength(c, p.X.Offset)
	p.Y.Offset = offsetLength(c, p.Y.Offset)
	return p
}

func offsetLength(c *computation, lp pr.LengthPercentage) pr.LengthPercentage {
	if lp.IsAuto() || lp.IsCalc() {
		return lp
	}
	lp.Dimension = absoluteDim(c, lp.Dimension, -1)
	return lp
}

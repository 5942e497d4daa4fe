package properties

import (
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
)

// ComputedValues is the strongly typed form of a computed style,
// attached to a layout node. It is the source for used values, where
// the generic [Properties] map is the source for computed values.
type ComputedValues struct {
	Color           Color
	BackgroundColor Color
	BorderTop       Border
	BorderRight     Border
	BorderBottom    Border
	BorderLeft      Border
	Outline         Outline
	TextDecoration  TextDecoration

	FontSize   Fl // in pixels
	LineHeight LineHeight

	Margin  SideValues
	Padding SideValues
	Inset   SideValues

	Width     Size
	Height    Size
	MinWidth  Size
	MinHeight Size
	MaxWidth  Size
	MaxHeight Size

	Display    kw.Keyword
	Position   kw.Keyword
	Float      kw.Keyword
	Visibility kw.Keyword
	OverflowX  kw.Keyword
	OverflowY  kw.Keyword
	ZIndex     IntAuto
	Opacity    Fl

	Transformations  []Transformation
	TransformOrigin  Point
	BackgroundLayers []BackgroundLayer
}

// ResolveColor returns the used color for the property `p`, replacing
// currentcolor by the value of the color property.
// https://drafts.csswg.org/css-color/#resolving-other-colors
func ResolveColor(s Properties, p PropertyID) Color {
	value := s[p].(Color)
	if value.Type == ColorCurrentColor {
		return s.GetColor()
	}
	return value
}

// NewComputedValues builds the typed form of a computed style. The
// color fields hold used colors, with currentcolor already resolved.
func NewComputedValues(s Properties) ComputedValues {
	cv := ComputedValues{
		Color:           s.GetColor(),
		BackgroundColor: ResolveColor(s, PBackgroundColor),
		BorderTop: Border{
			Color: ResolveColor(s, PBorderTopColor),
			Width: s.GetBorderTopWidth().Value,
			Style: kw.Keyword(s.GetBorderTopStyle()),
		},
		BorderRight: Border{
			Color: ResolveColor(s, PBorderRightColor),
			Width: s.GetBorderRightWidth().Value,
			Style: kw.Keyword(s.GetBorderRightStyle()),
		},
		BorderBottom: Border{
			Color: ResolveColor(s, PBorderBottomColor),
			Width: s.GetBorderBottomWidth().Value,
			Style: kw.Keyword(s.GetBorderBottomStyle()),
		},
		BorderLeft: Border{
			Color: ResolveColor(s, PBorderLeftColor),
			Width: s.GetBorderLeftWidth().Value,
			Style: kw.Keyword(s.GetBorderLeftStyle()),
		},
		Outline: Outline{
			Color:  ResolveColor(s, POutlineColor),
			Width:  s.GetOutlineWidth().Value,
			Offset: s.GetOutlineOffset().Value,
			Style:  kw.Keyword(s.GetOutlineStyle()),
		},
		TextDecoration: TextDecoration{
			Color: ResolveColor(s, PTextDecorationColor),
			Lines: decorationLines(s[PTextDecorationLine]),
			Style: kw.Keyword(s.GetTextDecorationStyle()),
		},

		FontSize:   s.GetFontSize().Value,
		LineHeight: ToLineHeight(s[PLineHeight]),

		Margin: SideValues{
			Top:    ToLengthPercentage(s[PMarginTop]),
			Right:  ToLengthPercentage(s[PMarginRight]),
			Bottom: ToLengthPercentage(s[PMarginBottom]),
			Left:   ToLengthPercentage(s[PMarginLeft]),
		},
		Padding: SideValues{
			Top:    ToLengthPercentage(s[PPaddingTop]),
			Right:  ToLengthPercentage(s[PPaddingRight]),
			Bottom: ToLengthPercentage(s[PPaddingBottom]),
			Left:   ToLengthPercentage(s[PPaddingLeft]),
		},
		Inset: SideValues{
			Top:    ToLengthPercentage(s[PTop]),
			Right:  ToLengthPercentage(s[PRight]),
			Bottom: ToLengthPercentage(s[PBottom]),
			Left:   ToLengthPercentage(s[PLeft]),
		},

		Width:     ToSize(s[PWidth]),
		Height:    ToSize(s[PHeight]),
		MinWidth:  ToSize(s[PMinWidth]),
		MinHeight: ToSize(s[PMinHeight]),
		MaxWidth:  ToSize(s[PMaxWidth]),
		MaxHeight: ToSize(s[PMaxHeight]),

		Display:    kw.Keyword(s.GetDisplay()),
		Position:   kw.Keyword(s.GetPosition()),
		Float:      kw.Keyword(s.GetFloat()),
		Visibility: kw.Keyword(s.GetVisibility()),
		OverflowX:  kw.Keyword(s.GetOverflowX()),
		OverflowY:  kw.Keyword(s.GetOverflowY()),
		ZIndex:     ToIntAuto(s[PZIndex]),
		Opacity:    Fl(s.GetOpacity()),

		Transformations:  ToTransformations(s[PTransform]),
		TransformOrigin:  ToPoint(s[PTransformOrigin]),
		BackgroundLayers: buildBackgroundLayers(s),
	}
	return cv
}

// ToLengthPercentage converts a stored computed value to its typed
// form. Values outside <length-percentage> | auto yield the zero value.
func ToLengthPercentage(v StyleValue) LengthPercentage {
	switch v := v.(type) {
	case Ident:
		if kw.Keyword(v) == kw.Auto {
			return LengthPercentage{Auto: true}
		}
	case Length:
		return LengthPercentage{Dimension: Dimension(v)}
	case Percentage:
		return PercLP(Fl(v))
	case Calculated:
		return LengthPercentage{Calc: v}
	}
	return LengthPercentage{}
}

// ToSize converts a stored computed value to the typed form of the
// sizing properties.
func ToSize(v StyleValue) Size {
	switch v := v.(type) {
	case Ident:
		switch k := kw.Keyword(v); k {
		case kw.Auto, kw.None, kw.MinContent, kw.MaxContent, kw.FitContent,
			kw.Contain, kw.Cover:
			return Size{Keyword: k}
		}
	case Length:
		return Size{Dimension: Dimension(v)}
	case Percentage:
		return Size{Dimension: Dimension{Value: Fl(v), Unit: Perc}}
	case Calculated:
		return Size{Calc: v}
	case FitContent:
		return Size{Keyword: kw.FitContent, Dimension: v.Arg}
	}
	return Size{}
}

// ToLineHeight converts the stored computed line-height.
func ToLineHeight(v StyleValue) LineHeight {
	switch v := v.(type) {
	case Ident:
		if kw.Keyword(v) == kw.Normal {
			return LineHeight{Normal: true}
		}
	case Number:
		return LineHeight{Dimension: Dimension{Value: Fl(v), Unit: Scalar}}
	case Length:
		return LineHeight{Dimension: Dimension(v)}
	}
	return LineHeight{Normal: true}
}

// ToKeyword returns the keyword stored in v, or 0 if v is not an
// identifier.
func ToKeyword(v StyleValue) kw.Keyword {
	if i, ok := v.(Ident); ok {
		return kw.Keyword(i)
	}
	return 0
}

// ToIntAuto converts a stored computed value holding an integer or
// the auto keyword, like z-index.
func ToIntAuto(v StyleValue) IntAuto {
	if n, ok := v.(Number); ok {
		return IntAuto{Int: int(n)}
	}
	return IntAuto{Auto: true}
}

// ToTransformations converts the stored computed transform list.
// The none keyword yields an empty list.
func ToTransformations(v StyleValue) []Transformation {
	switch v := v.(type) {
	case Transformation:
		return []Transformation{v}
	case ValueList:
		out := make([]Transformation, 0, len(v.Values))
		for _, item := range v.Values {
			if t, ok := item.(Transformation); ok {
				out = append(out, t)
			}
		}
		return out
	}
	return nil
}

// ToPoint converts a stored pair of dimensions, like transform-origin.
func ToPoint(v StyleValue) Point {
	list, ok := v.(ValueList)
	if !ok || len(list.Values) != 2 {
		return Point{}
	}
	var out Point
	for i, item := range list.Values {
		switch item := item.(type) {
		case Length:
			out[i] = Dimension(item)
		case Percentage:
			out[i] = Dimension{Value: Fl(item), Unit: Perc}
		}
	}
	return out
}

func decorationLines(v StyleValue) []kw.Keyword {
	switch v := v.(type) {
	case Ident:
		if k := kw.Keyword(v); k != kw.None {
			return []kw.Keyword{k}
		}
	case ValueList:
		out := make([]kw.Keyword, 0, len(v.Values))
		for _, item := range v.Values {
			if i, ok := item.(Ident); ok {
				out = append(out, kw.Keyword(i))
			}
		}
		return out
	}
	return nil
}

// listValues exposes a stored value as a list of layers : a comma
// separated list yields its items, any other value a single layer.
func listValues(v StyleValue) []StyleValue {
	if v == nil {
		return nil
	}
	if list, ok := v.(ValueList); ok && list.Separator == CommaSep {
		return list.Values
	}
	return []StyleValue{v}
}

// buildBackgroundLayers assembles the background layers from the
// computed background longhands. The number of layers is given by the
// background-image list, the other properties being repeated as
// needed. A style with no background at all yields no layer.
func buildBackgroundLayers(s Properties) []BackgroundLayer {
	images := listValues(s[PBackgroundImage])
	positions := listValues(s[PBackgroundPosition])
	sizes := listValues(s[PBackgroundSize])
	repeats := listValues(s[PBackgroundRepeat])
	attachments := listValues(s[PBackgroundAttachment])
	origins := listValues(s[PBackgroundOrigin])
	clips := listValues(s[PBackgroundClip])

	if len(images) == 1 && Equal(images[0], InitialValues[PBackgroundImage]) &&
		len(positions) == 1 && Equal(positions[0], InitialValues[PBackgroundPosition]) &&
		len(sizes) == 1 && Equal(sizes[0], InitialValues[PBackgroundSize]) {
		return nil
	}

	out := make([]BackgroundLayer, len(images))
	for i := range out {
		layer := &out[i]
		if u, ok := images[i].(Url); ok {
			layer.Image = u
		}
		if p, ok := positions[i%len(positions)].(Position); ok {
			layer.Position = p
		}
		layer.SizeX, layer.SizeY = layerSize(sizes[i%len(sizes)])
		layer.Repeat = layerRepeat(repeats[i%len(repeats)])
		layer.Attachment = ToKeyword(attachments[i%len(attachments)])
		layer.Origin = ToKeyword(origins[i%len(origins)])
		layer.Clip = ToKeyword(clips[i%len(clips)])
	}
	return out
}

func layerSize(v StyleValue) (x, y Size) {
	if list, ok := v.(ValueList); ok && len(list.Values) == 2 {
		return ToSize(list.Values[0]), ToSize(list.Values[1])
	}
	// a single value : contain, cover, or a width with an auto height
	x = ToSize(v)
	if x.Keyword == kw.Contain || x.Keyword == kw.Cover {
		return x, x
	}
	return x, Size{Keyword: kw.Auto}
}

func layerRepeat(v StyleValue) [2]kw.Keyword {
	if list, ok := v.(ValueList); ok && len(list.Values) == 2 {
		return [2]kw.Keyword{ToKeyword(list.Values[0]), ToKeyword(list.Values[1])}
	}
	switch k := ToKeyword(v); k {
	case kw.RepeatX:
		return [2]kw.Keyword{kw.Repeat, kw.NoRepeat}
	case kw.RepeatY:
		return [2]kw.Keyword{kw.NoRepeat, kw.Repeat}
	default:
		return [2]kw.Keyword{k, k}
	}
}

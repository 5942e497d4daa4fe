package properties

import (
	"fmt"
	"strconv"
	"strings"

	kw "github.com/benoitkugler/cssom/css/properties/keywords"
)

// ------------- Concrete value types, implementing StyleValue ------------

// ColorType identifies the nature of a color value.
type ColorType uint8

const (
	// ColorRGBA is a regular, absolute color.
	ColorRGBA ColorType = iota
	// ColorCurrentColor stands for the value of the 'color' property.
	// It is resolved during style computation, so that resolved
	// values never contain it.
	ColorCurrentColor
)

type RGBA struct {
	R, G, B, A uint8
}

// Color is an RGBA color, or the special currentcolor keyword.
// The zero value is fully transparent black.
type Color struct {
	RGBA RGBA
	Type ColorType
}

// NewColor builds an opaque color.
func NewColor(r, g, b uint8) Color {
	return Color{RGBA: RGBA{r, g, b, 255}}
}

func (c Color) String() string {
	if c.Type == ColorCurrentColor {
		return "currentcolor"
	}
	if c.RGBA.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.RGBA.R, c.RGBA.G, c.RGBA.B)
	}
	alpha := strconv.FormatFloat(float64(c.RGBA.A)/255, 'g', 3, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.RGBA.R, c.RGBA.G, c.RGBA.B, alpha)
}

type Unit uint8

func (u Unit) String() string {
	switch u {
	case Scalar: // means no unit, but a valid value
		return ""
	case Perc: // percentage (%)
		return "%"
	case Ex:
		return "ex"
	case Em:
		return "em"
	case Ch:
		return "ch"
	case Rem:
		return "rem"
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	case Rad:
		return "rad"
	case Turn:
		return "turn"
	case Deg:
		return "deg"
	case Grad:
		return "grad"
	default:
		return "<invalid unit>"
	}
}

// Dimension is a float value with a unit of measure.
type Dimension struct {
	Value Fl
	Unit  Unit
}

func NewDim(v Fl, u Unit) Dimension { return Dimension{Value: v, Unit: u} }

func (d Dimension) String() string { return fmtFl(d.Value) + d.Unit.String() }

// Length is a resolved length, in general expressed in pixels.
type Length Dimension

// PxLength builds a length in CSS pixels.
func PxLength(v Fl) Length { return Length{Value: v, Unit: Px} }

func (l Length) String() string { return Dimension(l).String() }

// Percentage is a resolved percentage value.
type Percentage Fl

func (p Percentage) String() string { return fmtFl(Fl(p)) + "%" }

// Number is a plain numeric value.
type Number Fl

func (n Number) String() string { return fmtFl(Fl(n)) }

// Ident is a CSS wide keyword, like 'auto' or 'none'.
type Ident kw.Keyword

func (i Ident) String() string { return kw.Keyword(i).String() }

// String is a resolved textual value, like a font family.
type String string

func (s String) String() string { return string(s) }

// Url is a resolved url() reference.
type Url string

func (u Url) String() string { return fmt.Sprintf("url(%q)", string(u)) }

// Calculated is a calc() expression preserved through style
// computation, stored by its serialization.
type Calculated struct {
	Expression string
}

func (c Calculated) String() string { return c.Expression }

// FitContent is the parameterized form fit-content(<length-percentage>).
// The bare fit-content keyword is stored as an [Ident] instead.
type FitContent struct {
	Arg Dimension
}

func (f FitContent) String() string { return fmt.Sprintf("fit-content(%s)", f.Arg) }

// Edge positions a point against one side of a box, like `left 10%`.
type Edge struct {
	Side   kw.Keyword
	Offset LengthPercentage
}

func (e Edge) String() string { return e.Side.String() + " " + e.Offset.String() }

// Position is a point specified against two box edges, as used by
// background-position.
type Position struct {
	X, Y Edge
}

func (p Position) String() string { return p.X.String() + " " + p.Y.String() }

// Separator describes how the items of a list of values are joined.
type Separator uint8

const (
	SpaceSep Separator = iota
	CommaSep
)

// ValueList is an ordered sequence of values.
type ValueList struct {
	Values    []StyleValue
	Separator Separator
}

func (l ValueList) String() string {
	sep := " "
	if l.Separator == CommaSep {
		sep = ", "
	}
	chunks := make([]string, len(l.Values))
	for i, v := range l.Values {
		chunks[i] = v.String()
	}
	return strings.Join(chunks, sep)
}

// ShorthandValue is the resolved form of a shorthand property,
// wrapping the values of its longhands.
// Both slices have the same length and order.
type ShorthandValue struct {
	Shorthand PropertyID
	Longhands []PropertyID
	Values    []StyleValue
}

func (sh ShorthandValue) String() string {
	chunks := make([]string, len(sh.Values))
	for i, v := range sh.Values {
		chunks[i] = v.String()
	}
	return strings.Join(chunks, " ")
}

// TransformFunction identifies one CSS transform function.
type TransformFunction uint8

const (
	_ TransformFunction = iota
	TFMatrix
	TFTranslate
	TFTranslateX
	TFTranslateY
	TFScale
	TFScaleX
	TFScaleY
	TFRotate
	TFSkew
	TFSkewX
	TFSkewY
)

var tfNames = [...]string{
	TFMatrix:     "matrix",
	TFTranslate:  "translate",
	TFTranslateX: "translateX",
	TFTranslateY: "translateY",
	TFScale:      "scale",
	TFScaleX:     "scaleX",
	TFScaleY:     "scaleY",
	TFRotate:     "rotate",
	TFSkew:       "skew",
	TFSkewX:      "skewX",
	TFSkewY:      "skewY",
}

func (tf TransformFunction) String() string { return tfNames[tf] }

// Transformation is one transform function with its arguments.
type Transformation struct {
	Parameters []StyleValue
	Function   TransformFunction
}

func (t Transformation) String() string {
	chunks := make([]string, len(t.Parameters))
	for i, v := range t.Parameters {
		chunks[i] = v.String()
	}
	return fmt.Sprintf("%s(%s)", t.Function, strings.Join(chunks, ", "))
}

// ---------------------- typed computed forms -----------------------------

// LengthPercentage is the computed form of the properties accepting
// <length-percentage> | auto, such as margins and insets : the auto
// keyword, a preserved calc() expression, or a dimension in pixels
// or percents.
type LengthPercentage struct {
	Calc Calculated
	Dimension
	Auto bool
}

func (lp LengthPercentage) IsAuto() bool       { return lp.Auto }
func (lp LengthPercentage) IsCalc() bool       { return lp.Calc != Calculated{} }
func (lp LengthPercentage) IsPercentage() bool { return lp.Unit == Perc }

func (lp LengthPercentage) String() string {
	switch {
	case lp.Auto:
		return "auto"
	case lp.IsCalc():
		return lp.Calc.String()
	default:
		return lp.Dimension.String()
	}
}

// LengthLP builds a length in pixels.
func LengthLP(px Fl) LengthPercentage {
	return LengthPercentage{Dimension: Dimension{Value: px, Unit: Px}}
}

// PercLP builds a percentage.
func PercLP(p Fl) LengthPercentage {
	return LengthPercentage{Dimension: Dimension{Value: p, Unit: Perc}}
}

// Size is the computed form of the sizing properties width, height and
// their min and max variants. It is a keyword (auto, none, min-content,
// max-content or fit-content), a preserved calc() expression, or a
// dimension. For fit-content(<length-percentage>), the keyword is set
// and the dimension stores the argument.
type Size struct {
	Keyword kw.Keyword
	Calc    Calculated
	Dimension
}

func (s Size) IsCalc() bool { return s.Calc != Calculated{} }

// IsParameterizedFitContent returns true for fit-content(<length-percentage>),
// as opposed to the bare fit-content keyword.
func (s Size) IsParameterizedFitContent() bool {
	return s.Keyword == kw.FitContent && s.Unit != 0
}

// LineHeight is the computed value of the line-height property : the
// normal keyword, a scalar multiple of the font size, or an absolute
// length.
type LineHeight struct {
	Dimension
	Normal bool
}

// Border groups the computed properties of one border side.
type Border struct {
	Color Color
	Width Fl // in pixels, 0 when the style is none or hidden
	Style kw.Keyword
}

// Outline groups the computed outline properties.
type Outline struct {
	Color  Color
	Width  Fl
	Offset Fl
	Style  kw.Keyword
}

// TextDecoration groups the computed text-decoration properties.
type TextDecoration struct {
	Color Color
	Lines []kw.Keyword // empty for none
	Style kw.Keyword
}

// SideValues groups the four sides of a property group, like the
// margins, in top, right, bottom, left order.
type SideValues struct {
	Top, Right, Bottom, Left LengthPercentage
}

// IntAuto is an integer value or the auto keyword.
type IntAuto struct {
	Int  int
	Auto bool
}

// Point is a pair of dimensions, as used by transform-origin.
type Point [2]Dimension

// BackgroundLayer stores the computed values of one background layer.
type BackgroundLayer struct {
	Image      Url // empty when the layer has no image
	Position   Position
	SizeX      Size
	SizeY      Size
	Repeat     [2]kw.Keyword
	Attachment kw.Keyword
	Origin     kw.Keyword
	Clip       kw.Keyword
}

// fmtFl writes f with the shortest decimal representation.
func fmtFl(f Fl) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

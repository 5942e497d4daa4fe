package properties

import (
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
)

const ( // zero field corresponds to null content
	Scalar Unit = iota + 1 // means no unit, but a valid value
	Perc                   // percentage (%)
	Ex
	Em
	Ch
	Rem
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q

	Rad
	Turn
	Deg
	Grad
)

var (
	ZeroPixels      = Dimension{Unit: Px}
	zeroPixelsValue = Length(ZeroPixels)

	// computed value of the medium border and outline width
	mediumWidthValue = PxLength(3)

	CurrentColor = Color{Type: ColorCurrentColor}

	// How many CSS pixels is one <unit>?
	// http://www.w3.org/TR/CSS21/syndata.html#length-units
	LengthsToPixels = map[Unit]Fl{
		Px: 1,
		Pt: 1. / 0.75,
		Pc: 16.,             // LengthsToPixels[Pt] * 12
		In: 96.,             // LengthsToPixels[Pt] * 72
		Cm: 96. / 2.54,      // LengthsToPixels[In] / 2.54
		Mm: 96. / 25.4,      // LengthsToPixels[In] / 25.4
		Q:  96. / 25.4 / 4., // LengthsToPixels[Mm] / 4
	}

	// BorderWidthKeywords maps the border and outline width keywords
	// to their value in pixels.
	// https://www.w3.org/TR/css-backgrounds-3/#valdef-line-width-thin
	BorderWidthKeywords = map[kw.Keyword]Fl{
		kw.Thin:   1,
		kw.Medium: 3,
		kw.Thick:  5,
	}

	// Do not list shorthand properties here as we handle them before
	// inheritance.
	Inherited = NewSetK(
		PColor,
		PCursor,
		PDirection,
		PFontFamily,
		PFontSize,
		PFontStyle,
		PFontWeight,
		PLetterSpacing,
		PLineHeight,
		PListStyleImage,
		PListStylePosition,
		PListStyleType,
		PTextAlign,
		PTextIndent,
		PTextTransform,
		PVisibility,
		PWhiteSpace,
		PWordSpacing,
	)

	// Properties only affecting the painting of a box, so that a style
	// update is enough to resolve them.
	layoutUnaffected = NewSetK(
		PBackgroundAttachment,
		PBackgroundClip,
		PBackgroundColor,
		PBackgroundImage,
		PBackgroundOrigin,
		PBackgroundPosition,
		PBackgroundRepeat,
		PBackgroundSize,
		PBorderBottomColor,
		PBorderLeftColor,
		PBorderRightColor,
		PBorderTopColor,
		PColor,
		PCursor,
		POpacity,
		POutlineColor,
		POutlineOffset,
		POutlineStyle,
		POutlineWidth,
		PTextDecorationColor,
		PTextDecorationLine,
		PTextDecorationStyle,
		PVisibility,
		PZIndex,
	)
)

// AffectsLayout returns true if a change to the property requires a
// layout update, not only a style update, to be observable. A shorthand
// affects layout as soon as one of its longhands does.
func AffectsLayout(p PropertyID) bool {
	if longhands, isShorthand := Shorthands[p]; isShorthand {
		for _, l := range longhands {
			if AffectsLayout(l) {
				return true
			}
		}
		return false
	}
	return !layoutUnaffected.Has(p)
}

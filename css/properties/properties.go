package properties

import (
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
)

const (
	// PInvalid is the sentinel for an unknown property.
	PInvalid PropertyID = iota
	// PCustom stands for a custom property (--*), which is never
	// stored in [Properties].
	PCustom

	// CSS 2.1 box and positioning properties
	PBottom
	PClear
	PColor
	PCursor
	PDirection
	PDisplay
	PFloat
	PLeft
	PLineHeight
	PPosition
	PRight
	PTop
	PVerticalAlign
	PVisibility
	PZIndex

	// background properties, in the order expected by the
	// background shorthand
	PBackgroundColor
	PBackgroundImage
	PBackgroundPosition
	PBackgroundSize
	PBackgroundRepeat
	PBackgroundAttachment
	PBackgroundOrigin
	PBackgroundClip

	// the following properties are grouped by side
	PBorderBottomColor
	PBorderBottomStyle
	PBorderBottomWidth
	PMarginBottom
	PPaddingBottom

	PBorderLeftColor
	PBorderLeftStyle
	PBorderLeftWidth
	PMarginLeft
	PPaddingLeft

	PBorderRightColor
	PBorderRightStyle
	PBorderRightWidth
	PMarginRight
	PPaddingRight

	PBorderTopColor
	PBorderTopStyle
	PBorderTopWidth
	PMarginTop
	PPaddingTop

	// fonts and inherited text properties
	PFontFamily
	PFontSize
	PFontStyle
	PFontWeight
	PLetterSpacing
	PListStyleImage
	PListStylePosition
	PListStyleType
	PTextAlign
	PTextIndent
	PTextTransform
	PWhiteSpace
	PWordSpacing

	// sizing
	PBoxSizing
	PHeight
	PMaxHeight
	PMaxWidth
	PMinHeight
	PMinWidth
	PWidth

	// flexible box layout
	PFlexBasis
	PFlexDirection
	PFlexGrow
	PFlexShrink
	PFlexWrap
	PColumnGap
	PRowGap

	POverflowX
	POverflowY

	// decorations
	POpacity
	POutlineColor
	POutlineOffset
	POutlineStyle
	POutlineWidth
	PTextDecorationColor
	PTextDecorationLine
	PTextDecorationStyle

	PTransform
	PTransformOrigin

	// shorthand properties, resolved by reconstruction from
	// their longhands
	PBackground
	PBorder
	PBorderBottom
	PBorderColor
	PBorderLeft
	PBorderRight
	PBorderStyle
	PBorderTop
	PBorderWidth
	PFlex
	PFlexFlow
	PGap
	PInset
	PListStyle
	PMargin
	POutline
	POverflow
	PPadding
	PTextDecoration
)

// InitialValues stores the initial computed value of each longhand.
var InitialValues = Properties{
	// CSS 2.1: https://www.w3.org/TR/CSS21/propidx.html
	PBottom:        Ident(kw.Auto),
	PClear:         Ident(kw.None),
	PColor:         NewColor(0, 0, 0), // chosen by the user agent
	PCursor:        Ident(kw.Auto),
	PDirection:     Ident(kw.Ltr),
	PDisplay:       Ident(kw.Inline),
	PFloat:         Ident(kw.None),
	PLeft:          Ident(kw.Auto),
	PLineHeight:    Ident(kw.Normal),
	PPosition:      Ident(kw.Static),
	PRight:         Ident(kw.Auto),
	PTop:           Ident(kw.Auto),
	PVerticalAlign: Ident(kw.Baseline),
	PVisibility:    Ident(kw.Visible),
	PZIndex:        Ident(kw.Auto),

	PMarginBottom:  zeroPixelsValue,
	PMarginLeft:    zeroPixelsValue,
	PMarginRight:   zeroPixelsValue,
	PMarginTop:     zeroPixelsValue,
	PPaddingBottom: zeroPixelsValue,
	PPaddingLeft:   zeroPixelsValue,
	PPaddingRight:  zeroPixelsValue,
	PPaddingTop:    zeroPixelsValue,

	// Backgrounds and Borders 3 (CR): https://www.w3.org/TR/css-backgrounds-3/
	PBackgroundAttachment: Ident(kw.Scroll),
	PBackgroundClip:       Ident(kw.BorderBox),
	PBackgroundColor:      Color{}, // transparent
	PBackgroundImage:      Ident(kw.None),
	PBackgroundOrigin:     Ident(kw.PaddingBox),
	PBackgroundPosition: Position{
		X: Edge{Side: kw.Left, Offset: PercLP(0)},
		Y: Edge{Side: kw.Top, Offset: PercLP(0)},
	},
	PBackgroundRepeat:  Ident(kw.Repeat),
	PBackgroundSize:    Ident(kw.Auto),
	PBorderBottomColor: CurrentColor,
	PBorderLeftColor:   CurrentColor,
	PBorderRightColor:  CurrentColor,
	PBorderTopColor:    CurrentColor,
	PBorderBottomStyle: Ident(kw.None),
	PBorderLeftStyle:   Ident(kw.None),
	PBorderRightStyle:  Ident(kw.None),
	PBorderTopStyle:    Ident(kw.None),
	PBorderBottomWidth: mediumWidthValue,
	PBorderLeftWidth:   mediumWidthValue,
	PBorderRightWidth:  mediumWidthValue,
	PBorderTopWidth:    mediumWidthValue,

	// Fonts 3: https://www.w3.org/TR/css-fonts-3/
	PFontFamily: String("serif"), // depends on user agent
	PFontSize:   PxLength(16),    // medium
	PFontStyle:  Ident(kw.Normal),
	PFontWeight: Number(400),

	// Text 3/4: https://www.w3.org/TR/css-text-3/
	PLetterSpacing: Ident(kw.Normal),
	PTextAlign:     Ident(kw.Start),
	PTextIndent:    zeroPixelsValue,
	PTextTransform: Ident(kw.None),
	PWhiteSpace:    Ident(kw.Normal),
	PWordSpacing:   Ident(kw.Normal),

	// Lists 3: https://www.w3.org/TR/css-lists-3/
	PListStyleImage:    Ident(kw.None),
	PListStylePosition: Ident(kw.Outside),
	PListStyleType:     Ident(kw.Disc),

	// Sizing 3: https://www.w3.org/TR/css-sizing-3/
	PBoxSizing: Ident(kw.ContentBox),
	PHeight:    Ident(kw.Auto),
	PMaxHeight: Ident(kw.None),
	PMaxWidth:  Ident(kw.None),
	PMinHeight: Ident(kw.Auto),
	PMinWidth:  Ident(kw.Auto),
	PWidth:     Ident(kw.Auto),

	// Flexible Box Layout Module 1: https://www.w3.org/TR/css-flexbox-1/
	PFlexBasis:     Ident(kw.Auto),
	PFlexDirection: Ident(kw.Row),
	PFlexGrow:      Number(0),
	PFlexShrink:    Number(1),
	PFlexWrap:      Ident(kw.Nowrap),
	PColumnGap:     Ident(kw.Normal),
	PRowGap:        Ident(kw.Normal),

	// Overflow 3: https://www.w3.org/TR/css-overflow-3/
	POverflowX: Ident(kw.Visible),
	POverflowY: Ident(kw.Visible),

	// Color 3, UI 3, Text Decoration 3
	POpacity:             Number(1),
	POutlineColor:        CurrentColor,
	POutlineOffset:       zeroPixelsValue,
	POutlineStyle:        Ident(kw.None),
	POutlineWidth:        mediumWidthValue,
	PTextDecorationColor: CurrentColor,
	PTextDecorationLine:  Ident(kw.None),
	PTextDecorationStyle: Ident(kw.Solid),

	// Transforms 1: https://www.w3.org/TR/css-transforms-1/
	PTransform: Ident(kw.None),
	PTransformOrigin: ValueList{
		Values:    []StyleValue{Percentage(50), Percentage(50)},
		Separator: SpaceSep,
	},
}

package properties

// Shorthands maps each shorthand property to its longhands, in
// canonical order. Nested shorthands (like border) are expanded
// recursively.
var Shorthands = map[PropertyID][]PropertyID{
	PBackground: {
		PBackgroundColor, PBackgroundImage, PBackgroundPosition, PBackgroundSize,
		PBackgroundRepeat, PBackgroundAttachment, PBackgroundOrigin, PBackgroundClip,
	},

	PBorder:       {PBorderWidth, PBorderStyle, PBorderColor},
	PBorderColor:  {PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor},
	PBorderStyle:  {PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle},
	PBorderWidth:  {PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth},
	PBorderTop:    {PBorderTopWidth, PBorderTopStyle, PBorderTopColor},
	PBorderRight:  {PBorderRightWidth, PBorderRightStyle, PBorderRightColor},
	PBorderBottom: {PBorderBottomWidth, PBorderBottomStyle, PBorderBottomColor},
	PBorderLeft:   {PBorderLeftWidth, PBorderLeftStyle, PBorderLeftColor},

	PMargin:  {PMarginTop, PMarginRight, PMarginBottom, PMarginLeft},
	PPadding: {PPaddingTop, PPaddingRight, PPaddingBottom, PPaddingLeft},
	PInset:   {PTop, PRight, PBottom, PLeft},

	PFlex:     {PFlexGrow, PFlexShrink, PFlexBasis},
	PFlexFlow: {PFlexDirection, PFlexWrap},
	PGap:      {PRowGap, PColumnGap},

	PListStyle:      {PListStylePosition, PListStyleImage, PListStyleType},
	POutline:        {POutlineColor, POutlineStyle, POutlineWidth},
	POverflow:       {POverflowX, POverflowY},
	PTextDecoration: {PTextDecorationLine, PTextDecorationStyle, PTextDecorationColor},
}

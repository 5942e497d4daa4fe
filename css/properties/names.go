package properties

var propsNames = [...]string{
	PBackground:           "background",
	PBackgroundAttachment: "background-attachment",
	PBackgroundClip:       "background-clip",
	PBackgroundColor:      "background-color",
	PBackgroundImage:      "background-image",
	PBackgroundOrigin:     "background-origin",
	PBackgroundPosition:   "background-position",
	PBackgroundRepeat:     "background-repeat",
	PBackgroundSize:       "background-size",
	PBorder:               "border",
	PBorderBottom:         "border-bottom",
	PBorderBottomColor:    "border-bottom-color",
	PBorderBottomStyle:    "border-bottom-style",
	PBorderBottomWidth:    "border-bottom-width",
	PBorderColor:          "border-color",
	PBorderLeft:           "border-left",
	PBorderLeftColor:      "border-left-color",
	PBorderLeftStyle:      "border-left-style",
	PBorderLeftWidth:      "border-left-width",
	PBorderRight:          "border-right",
	PBorderRightColor:     "border-right-color",
	PBorderRightStyle:     "border-right-style",
	PBorderRightWidth:     "border-right-width",
	PBorderStyle:          "border-style",
	PBorderTop:            "border-top",
	PBorderTopColor:       "border-top-color",
	PBorderTopStyle:       "border-top-style",
	PBorderTopWidth:       "border-top-width",
	PBorderWidth:          "border-width",
	PBottom:               "bottom",
	PBoxSizing:            "box-sizing",
	PClear:                "clear",
	PColor:                "color",
	PColumnGap:            "column-gap",
	PCursor:               "cursor",
	PDirection:            "direction",
	PDisplay:              "display",
	PFlex:                 "flex",
	PFlexBasis:            "flex-basis",
	PFlexDirection:        "flex-direction",
	PFlexFlow:             "flex-flow",
	PFlexGrow:             "flex-grow",
	PFlexShrink:           "flex-shrink",
	PFlexWrap:             "flex-wrap",
	PFloat:                "float",
	PFontFamily:           "font-family",
	PFontSize:             "font-size",
	PFontStyle:            "font-style",
	PFontWeight:           "font-weight",
	PGap:                  "gap",
	PHeight:               "height",
	PInset:                "inset",
	PLeft:                 "left",
	PLetterSpacing:        "letter-spacing",
	PLineHeight:           "line-height",
	PListStyle:            "list-style",
	PListStyleImage:       "list-style-image",
	PListStylePosition:    "list-style-position",
	PListStyleType:        "list-style-type",
	PMargin:               "margin",
	PMarginBottom:         "margin-bottom",
	PMarginLeft:           "margin-left",
	PMarginRight:          "margin-right",
	PMarginTop:            "margin-top",
	PMaxHeight:            "max-height",
	PMaxWidth:             "max-width",
	PMinHeight:            "min-height",
	PMinWidth:             "min-width",
	POpacity:              "opacity",
	POutline:              "outline",
	POutlineColor:         "outline-color",
	POutlineOffset:        "outline-offset",
	POutlineStyle:         "outline-style",
	POutlineWidth:         "outline-width",
	POverflow:             "overflow",
	POverflowX:            "overflow-x",
	POverflowY:            "overflow-y",
	PPadding:              "padding",
	PPaddingBottom:        "padding-bottom",
	PPaddingLeft:          "padding-left",
	PPaddingRight:         "padding-right",
	PPaddingTop:           "padding-top",
	PPosition:             "position",
	PRight:                "right",
	PRowGap:               "row-gap",
	PTextAlign:            "text-align",
	PTextDecoration:       "text-decoration",
	PTextDecorationColor:  "text-decoration-color",
	PTextDecorationLine:   "text-decoration-line",
	PTextDecorationStyle:  "text-decoration-style",
	PTextIndent:           "text-indent",
	PTextTransform:        "text-transform",
	PTop:                  "top",
	PTransform:            "transform",
	PTransformOrigin:      "transform-origin",
	PVerticalAlign:        "vertical-align",
	PVisibility:           "visibility",
	PWhiteSpace:           "white-space",
	PWidth:                "width",
	PWordSpacing:          "word-spacing",
	PZIndex:               "z-index",
}

// PropsFromNames maps CSS property names to internal enum tags.
var PropsFromNames = map[string]PropertyID{}

func init() {
	for p, name := range propsNames {
		if name != "" {
			PropsFromNames[name] = PropertyID(p)
		}
	}
}

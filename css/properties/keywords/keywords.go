package keywords

// Keyword efficiently stores CSS keywords
type Keyword uint8

const (
	_ Keyword = iota
	Auto
	None
	Normal
	Invalid
	MinContent
	MaxContent
	FitContent

	// box sides and anchors
	Left
	Right
	Top
	Bottom
	Center

	// display
	Block
	Inline
	InlineBlock
	Flex
	InlineFlex
	FlowRoot
	ListItem
	Contents

	// position scheme
	Static
	Relative
	Absolute
	Fixed
	Sticky

	// overflow and visibility
	Visible
	Hidden
	Clip
	Scroll
	Collapse

	// border and outline styles
	Dotted
	Dashed
	Solid
	Double
	Groove
	Ridge
	Inset
	Outset

	// border width keywords
	Thin
	Medium
	Thick

	// backgrounds
	Repeat
	RepeatX
	RepeatY
	NoRepeat
	Space
	Round
	Local
	BorderBox
	PaddingBox
	ContentBox
	Contain
	Cover

	// text decoration
	Underline
	Overline
	LineThrough
	Blink
	Wavy

	// text
	Capitalize
	Uppercase
	Lowercase
	Justify
	Start
	End
	Nowrap
	Pre
	PreWrap
	PreLine
	BreakSpaces

	// vertical-align
	Baseline
	Sub
	Super
	TextTop
	TextBottom
	Middle

	// fonts
	Italic
	Oblique
	Bold
	Bolder
	Lighter
	Smaller
	Larger

	// flexbox
	Row
	RowReverse
	Column
	ColumnReverse
	Wrap
	WrapReverse

	// list styles
	Disc
	Circle
	Square
	Decimal
	LowerAlpha
	UpperAlpha
	LowerRoman
	UpperRoman
	Inside
	Outside

	// cursors
	Default
	Pointer
	Text
	Move
	Grab
	Crosshair

	// floats and clearance
	Both
	InlineStart
	InlineEnd

	// direction
	Ltr
	Rtl
)

var names = [...]string{
	Auto:       "auto",
	None:       "none",
	Normal:     "normal",
	Invalid:    "invalid",
	MinContent: "min-content",
	MaxContent: "max-content",
	FitContent: "fit-content",

	Left:   "left",
	Right:  "right",
	Top:    "top",
	Bottom: "bottom",
	Center: "center",

	Block:       "block",
	Inline:      "inline",
	InlineBlock: "inline-block",
	Flex:        "flex",
	InlineFlex:  "inline-flex",
	FlowRoot:    "flow-root",
	ListItem:    "list-item",
	Contents:    "contents",

	Static:   "static",
	Relative: "relative",
	Absolute: "absolute",
	Fixed:    "fixed",
	Sticky:   "sticky",

	Visible:  "visible",
	Hidden:   "hidden",
	Clip:     "clip",
	Scroll:   "scroll",
	Collapse: "collapse",

	Dotted: "dotted",
	Dashed: "dashed",
	Solid:  "solid",
	Double: "double",
	Groove: "groove",
	Ridge:  "ridge",
	Inset:  "inset",
	Outset: "outset",

	Thin:   "thin",
	Medium: "medium",
	Thick:  "thick",

	Repeat:     "repeat",
	RepeatX:    "repeat-x",
	RepeatY:    "repeat-y",
	NoRepeat:   "no-repeat",
	Space:      "space",
	Round:      "round",
	Local:      "local",
	BorderBox:  "border-box",
	PaddingBox: "padding-box",
	ContentBox: "content-box",
	Contain:    "contain",
	Cover:      "cover",

	Underline:   "underline",
	Overline:    "overline",
	LineThrough: "line-through",
	Blink:       "blink",
	Wavy:        "wavy",

	Capitalize:  "capitalize",
	Uppercase:   "uppercase",
	Lowercase:   "lowercase",
	Justify:     "justify",
	Start:       "start",
	End:         "end",
	Nowrap:      "nowrap",
	Pre:         "pre",
	PreWrap:     "pre-wrap",
	PreLine:     "pre-line",
	BreakSpaces: "break-spaces",

	Baseline:   "baseline",
	Sub:        "sub",
	Super:      "super",
	TextTop:    "text-top",
	TextBottom: "text-bottom",
	Middle:     "middle",

	Italic:  "italic",
	Oblique: "oblique",
	Bold:    "bold",
	Bolder:  "bolder",
	Lighter: "lighter",
	Smaller: "smaller",
	Larger:  "larger",

	Row:           "row",
	RowReverse:    "row-reverse",
	Column:        "column",
	ColumnReverse: "column-reverse",
	Wrap:          "wrap",
	WrapReverse:   "wrap-reverse",

	Disc:       "disc",
	Circle:     "circle",
	Square:     "square",
	Decimal:    "decimal",
	LowerAlpha: "lower-alpha",
	UpperAlpha: "upper-alpha",
	LowerRoman: "lower-roman",
	UpperRoman: "upper-roman",
	Inside:     "inside",
	Outside:    "outside",

	Default:   "default",
	Pointer:   "pointer",
	Text:      "text",
	Move:      "move",
	Grab:      "grab",
	Crosshair: "crosshair",

	Both:        "both",
	InlineStart: "inline-start",
	InlineEnd:   "inline-end",

	Ltr: "ltr",
	Rtl: "rtl",
}

var fromNames = map[string]Keyword{}

func init() {
	for k, name := range names {
		if name != "" {
			fromNames[name] = Keyword(k)
		}
	}
}

// NewKeyword returns the keyword for `s`, or 0 if
// it is not supported.
func NewKeyword(s string) Keyword { return fromNames[s] }

func (k Keyword) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "<invalid keyword>"
}

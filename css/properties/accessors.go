package properties

// Typed accessors for the entries whose concrete type is fixed
// after style computation.

func (s Properties) GetColor() Color  { return s[PColor].(Color) }
func (s Properties) SetColor(v Color) { s[PColor] = v }

func (s Properties) GetBackgroundColor() Color  { return s[PBackgroundColor].(Color) }
func (s Properties) SetBackgroundColor(v Color) { s[PBackgroundColor] = v }

func (s Properties) GetBorderTopColor() Color  { return s[PBorderTopColor].(Color) }
func (s Properties) SetBorderTopColor(v Color) { s[PBorderTopColor] = v }

func (s Properties) GetBorderRightColor() Color  { return s[PBorderRightColor].(Color) }
func (s Properties) SetBorderRightColor(v Color) { s[PBorderRightColor] = v }

func (s Properties) GetBorderBottomColor() Color  { return s[PBorderBottomColor].(Color) }
func (s Properties) SetBorderBottomColor(v Color) { s[PBorderBottomColor] = v }

func (s Properties) GetBorderLeftColor() Color  { return s[PBorderLeftColor].(Color) }
func (s Properties) SetBorderLeftColor(v Color) { s[PBorderLeftColor] = v }

func (s Properties) GetBorderTopStyle() Ident  { return s[PBorderTopStyle].(Ident) }
func (s Properties) SetBorderTopStyle(v Ident) { s[PBorderTopStyle] = v }

func (s Properties) GetBorderRightStyle() Ident  { return s[PBorderRightStyle].(Ident) }
func (s Properties) SetBorderRightStyle(v Ident) { s[PBorderRightStyle] = v }

func (s Properties) GetBorderBottomStyle() Ident  { return s[PBorderBottomStyle].(Ident) }
func (s Properties) SetBorderBottomStyle(v Ident) { s[PBorderBottomStyle] = v }

func (s Properties) GetBorderLeftStyle() Ident  { return s[PBorderLeftStyle].(Ident) }
func (s Properties) SetBorderLeftStyle(v Ident) { s[PBorderLeftStyle] = v }

func (s Properties) GetBorderTopWidth() Length  { return s[PBorderTopWidth].(Length) }
func (s Properties) SetBorderTopWidth(v Length) { s[PBorderTopWidth] = v }

func (s Properties) GetBorderRightWidth() Length  { return s[PBorderRightWidth].(Length) }
func (s Properties) SetBorderRightWidth(v Length) { s[PBorderRightWidth] = v }

func (s Properties) GetBorderBottomWidth() Length  { return s[PBorderBottomWidth].(Length) }
func (s Properties) SetBorderBottomWidth(v Length) { s[PBorderBottomWidth] = v }

func (s Properties) GetBorderLeftWidth() Length  { return s[PBorderLeftWidth].(Length) }
func (s Properties) SetBorderLeftWidth(v Length) { s[PBorderLeftWidth] = v }

func (s Properties) GetOutlineColor() Color  { return s[POutlineColor].(Color) }
func (s Properties) SetOutlineColor(v Color) { s[POutlineColor] = v }

func (s Properties) GetOutlineStyle() Ident  { return s[POutlineStyle].(Ident) }
func (s Properties) SetOutlineStyle(v Ident) { s[POutlineStyle] = v }

func (s Properties) GetOutlineWidth() Length  { return s[POutlineWidth].(Length) }
func (s Properties) SetOutlineWidth(v Length) { s[POutlineWidth] = v }

func (s Properties) GetOutlineOffset() Length  { return s[POutlineOffset].(Length) }
func (s Properties) SetOutlineOffset(v Length) { s[POutlineOffset] = v }

func (s Properties) GetTextDecorationColor() Color  { return s[PTextDecorationColor].(Color) }
func (s Properties) SetTextDecorationColor(v Color) { s[PTextDecorationColor] = v }

func (s Properties) GetTextDecorationStyle() Ident  { return s[PTextDecorationStyle].(Ident) }
func (s Properties) SetTextDecorationStyle(v Ident) { s[PTextDecorationStyle] = v }

func (s Properties) GetFontSize() Length  { return s[PFontSize].(Length) }
func (s Properties) SetFontSize(v Length) { s[PFontSize] = v }

func (s Properties) GetOpacity() Number  { return s[POpacity].(Number) }
func (s Properties) SetOpacity(v Number) { s[POpacity] = v }

func (s Properties) GetDisplay() Ident  { return s[PDisplay].(Ident) }
func (s Properties) SetDisplay(v Ident) { s[PDisplay] = v }

func (s Properties) GetPosition() Ident  { return s[PPosition].(Ident) }
func (s Properties) SetPosition(v Ident) { s[PPosition] = v }

func (s Properties) GetFloat() Ident  { return s[PFloat].(Ident) }
func (s Properties) SetFloat(v Ident) { s[PFloat] = v }

func (s Properties) GetVisibility() Ident  { return s[PVisibility].(Ident) }
func (s Properties) SetVisibility(v Ident) { s[PVisibility] = v }

func (s Properties) GetOverflowX() Ident  { return s[POverflowX].(Ident) }
func (s Properties) SetOverflowX(v Ident) { s[POverflowX] = v }

func (s Properties) GetOverflowY() Ident  { return s[POverflowY].(Ident) }
func (s Properties) SetOverflowY(v Ident) { s[POverflowY] = v }

// This package defines the types needed to store the computed value of the
// CSS properties, and to expose them as resolved values, the canonical form
// returned by style queries.
// Schematically, a style lifetime is :
//
//	declarations (Compute)-> Properties (resolve)-> StyleValue
package properties

import (
	"strings"

	"github.com/benoitkugler/cssom/utils"
)

type Fl = utils.Fl

// PropertyID efficiently encode a CSS property known to the engine.
type PropertyID uint8

func (p PropertyID) String() string { return propsNames[p] }

// IsShorthand returns true for properties expanding to several longhands.
func (p PropertyID) IsShorthand() bool {
	_, has := Shorthands[p]
	return has
}

// StyleValue is the resolved form of a CSS property value : an immutable,
// serializable value object.
//
// The zero value of each concrete type is a valid, empty value.
type StyleValue interface {
	// String returns the canonical CSS serialization of the value.
	String() string

	isStyleValue()
}

func (Color) isStyleValue()          {}
func (Length) isStyleValue()         {}
func (Percentage) isStyleValue()     {}
func (Number) isStyleValue()         {}
func (Ident) isStyleValue()          {}
func (String) isStyleValue()         {}
func (Url) isStyleValue()            {}
func (Edge) isStyleValue()           {}
func (Position) isStyleValue()       {}
func (ValueList) isStyleValue()      {}
func (ShorthandValue) isStyleValue() {}
func (Transformation) isStyleValue() {}
func (Calculated) isStyleValue()     {}
func (FitContent) isStyleValue()     {}

// StyleProperty is the result of a style query : a property
// and its resolved value.
type StyleProperty struct {
	Value StyleValue
	ID    PropertyID
}

// Properties stores the computed value of each longhand property.
//
// All the keys should be present after style computation, and values
// are never nil.
type Properties map[PropertyID]StyleValue

// Copy returns a shallow copy.
func (p Properties) Copy() Properties {
	out := make(Properties, len(p))
	for name, v := range p {
		out[name] = v
	}
	return out
}

// UpdateWith merges the entries from `other` to `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// SetK is a set of known properties.
type SetK map[PropertyID]struct{}

func NewSetK(props ...PropertyID) SetK {
	s := make(SetK, len(props))
	for _, p := range props {
		s.Add(p)
	}
	return s
}

func (s SetK) Add(p PropertyID)      { s[p] = struct{}{} }
func (s SetK) Has(p PropertyID) bool { _, in := s[p]; return in }

// PropFromName returns the property for a CSS name ("border-top-color"),
// PCustom for a custom property name ("--*"), or PInvalid if it is not
// supported. Script style attribute names ("borderTopColor") are also
// accepted.
func PropFromName(name string) PropertyID {
	if strings.HasPrefix(name, "--") {
		return PCustom
	}
	if p, has := PropsFromNames[name]; has {
		return p
	}
	return PropsFromNames[camelToKebab(name)]
}

func camelToKebab(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if 'A' <= r && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

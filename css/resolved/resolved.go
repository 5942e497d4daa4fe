// Package resolved implements the resolved value computation behind
// style queries : given an element and a property, it returns the
// canonical value object defined by the CSSOM specification, rebuilding
// shorthands from their longhands, and reading used values from the
// layout and paint stages for the properties requiring them.
// https://www.w3.org/TR/cssom-1/#resolved-values
package resolved

import (
	"errors"

	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/logger"
)

// ErrNoModificationAllowed is returned by all the mutation methods of
// [ResolvedStyleDeclaration].
var ErrNoModificationAllowed = errors.New("cannot modify result of a resolved-style query")

// ResolvedStyleDeclaration is the read-only style declaration returned
// by a getComputedStyle query. Reading a property triggers the style
// and layout updates needed to resolve it ; the mutation methods always
// fail with [ErrNoModificationAllowed].
type ResolvedStyleDeclaration struct {
	element *dom.Element
}

// NewResolvedStyleDeclaration returns the resolved style declaration
// for `element`, which must not be nil.
func NewResolvedStyleDeclaration(element *dom.Element) *ResolvedStyleDeclaration {
	return &ResolvedStyleDeclaration{element: element}
}

// Property returns the resolved value of the given property, or false
// if the element is disconnected or the property has no resolved value.
// https://www.w3.org/TR/cssom-1/#dom-window-getcomputedstyle
func (d *ResolvedStyleDeclaration) Property(id pr.PropertyID) (pr.StyleProperty, bool) {
	if !d.element.IsConnected() {
		return pr.StyleProperty{}, false
	}

	// cosmetic properties only need up to date styles, not layout
	doc := d.element.Document()
	if pr.AffectsLayout(id) {
		doc.UpdateLayout()
	} else {
		doc.UpdateStyle()
	}

	node := d.element.LayoutNode()
	if node == nil {
		// elements not rendered, like display: none subtrees, have no
		// layout node : fall back to a standalone style computation
		return d.computedFallback(id)
	}

	value := styleValueForProperty(node, id)
	if value == nil {
		return pr.StyleProperty{}, false
	}
	return pr.StyleProperty{ID: id, Value: value}, true
}

// computedFallback resolves `id` from a standalone style computation,
// without the used values and shorthand reconstruction a layout node
// would provide.
func (d *ResolvedStyleDeclaration) computedFallback(id pr.PropertyID) (pr.StyleProperty, bool) {
	computer := d.element.Document().StyleComputer()
	if computer == nil {
		logger.WarningLogger.Println("resolved-style query : no style computer installed")
		return pr.StyleProperty{}, false
	}
	style, err := computer.ComputeStyle(d.element)
	if err != nil {
		logger.WarningLogger.Printf("resolved-style query : style computation failed : %s", err)
		return pr.StyleProperty{}, false
	}
	value := style[id]
	if value == nil {
		logger.WarningLogger.Printf("resolved-style query : no computed value for %s", id)
		return pr.StyleProperty{}, false
	}
	return pr.StyleProperty{ID: id, Value: value}, true
}

// PropertyValue returns the serialization of the resolved value of the
// property `name`, or "" for unknown or unresolvable properties.
// https://drafts.csswg.org/cssom/#dom-cssstyledeclaration-getpropertyvalue
func (d *ResolvedStyleDeclaration) PropertyValue(name string) string {
	id := pr.PropFromName(name)
	if id == pr.PInvalid {
		return ""
	}
	prop, ok := d.Property(id)
	if !ok {
		return ""
	}
	return prop.Value.String()
}

// Length returns the number of declared properties. Resolved
// declarations do not support enumeration : it is always 0.
func (d *ResolvedStyleDeclaration) Length() int { return 0 }

// Item returns the name of the declared property at `index`. Resolved
// declarations do not support enumeration : it is always "".
func (d *ResolvedStyleDeclaration) Item(index int) string { return "" }

// SetProperty fails with [ErrNoModificationAllowed].
// https://drafts.csswg.org/cssom/#dom-cssstyledeclaration-setproperty
func (d *ResolvedStyleDeclaration) SetProperty(name, value string) error {
	return ErrNoModificationAllowed
}

// RemoveProperty fails with [ErrNoModificationAllowed].
// https://drafts.csswg.org/cssom/#dom-cssstyledeclaration-removeproperty
func (d *ResolvedStyleDeclaration) RemoveProperty(name string) (string, error) {
	return "", ErrNoModificationAllowed
}

// SetCSSText fails with [ErrNoModificationAllowed].
// https://drafts.csswg.org/cssom/#dom-cssstyledeclaration-csstext
func (d *ResolvedStyleDeclaration) SetCSSText(text string) error {
	return ErrNoModificationAllowed
}

// CSSText returns the serialization of the declaration, which is always
// empty for a resolved declaration.
func (d *ResolvedStyleDeclaration) CSSText() string { return "" }

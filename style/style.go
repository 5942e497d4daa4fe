// Package style implements the computed value stage of CSS : given the
// declarations applying to each element, it produces complete computed
// styles, with inheritance applied and lengths absolutized to pixels.
package style

import (
	"errors"
	"fmt"

	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/logger"
)

var _ dom.StyleComputer = (*Computer)(nil)

// Computer computes element styles from registered declarations.
//
// The zero Computer is not usable, see [NewComputer].
type Computer struct {
	declarations map[*dom.Element]pr.Properties
}

func NewComputer() *Computer {
	return &Computer{declarations: make(map[*dom.Element]pr.Properties)}
}

// SetDeclarations registers the declarations applying to `el`, given
// as typed longhand values. Shorthand entries are ignored, with a
// warning.
func (c *Computer) SetDeclarations(el *dom.Element, decls pr.Properties) {
	kept := make(pr.Properties, len(decls))
	for p, v := range decls {
		if p.IsShorthand() {
			logger.WarningLogger.Printf("declaration %s : shorthands are not supported, ignored", p)
			continue
		}
		kept[p] = v
	}
	c.declarations[el] = kept
}

// ComputeStyle computes the style of `el`, using the computed style of
// its parent for inheritance, or computing it first if needed. It does
// not update the style slot of the element.
func (c *Computer) ComputeStyle(el *dom.Element) (pr.Properties, error) {
	if el == nil {
		return nil, errors.New("cannot compute the style of a nil element")
	}
	var parentStyle pr.Properties
	if parent := el.Parent(); parent != nil {
		parentStyle = parent.ComputedStyle()
		if parentStyle == nil {
			var err error
			parentStyle, err = c.ComputeStyle(parent)
			if err != nil {
				return nil, fmt.Errorf("computing parent style: %s", err)
			}
		}
	}
	return c.computeStyle(el, parentStyle), nil
}

func (c *Computer) computeStyle(el *dom.Element, parentStyle pr.Properties) pr.Properties {
	out := pr.InitialValues.Copy()
	if parentStyle != nil {
		for p := range pr.Inherited {
			out[p] = parentStyle[p]
		}
	}
	for p, v := range c.declarations[el] {
		out[p] = v
	}

	comp := computation{
		out:          out,
		parentStyle:  parentStyle,
		rootFontSize: pr.InitialValues.GetFontSize().Value,
	}

	// the font size is computed first, since relative lengths depend on it
	out[pr.PFontSize] = fontSize(&comp, pr.PFontSize, out[pr.PFontSize])

	if parentStyle == nil {
		comp.rootFontSize = out.GetFontSize().Value
	} else if rs := rootStyle(el); rs != nil {
		comp.rootFontSize = rs.GetFontSize().Value
	}

	for p, v := range out {
		if p == pr.PFontSize {
			continue
		}
		if fn := computerFunctions[p]; fn != nil {
			out[p] = fn(&comp, p, v)
		}
	}
	return out
}

// rootStyle returns the computed style of the root element, or nil.
func rootStyle(el *dom.Element) pr.Properties {
	root := el.Document().Root()
	if root == nil {
		return nil
	}
	return root.ComputedStyle()
}

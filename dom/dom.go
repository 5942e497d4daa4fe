// Package dom provides a minimal document object model over parsed HTML
// pages, with the hooks needed to answer style queries : a computed style
// slot on each element, a layout node slot filled by the layout step, and
// the update entry points driven by the owning browsing context.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	pr "github.com/benoitkugler/cssom/css/properties"
)

// Document owns the element tree of one page.
type Document struct {
	root     *html.Node // the document node
	elements map[*html.Node]*Element

	computer  StyleComputer
	updater   Updater
	paintable Paintable
}

// ParseDocument reads and parses an HTML page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML document: %s", err)
	}
	return NewDocument(root), nil
}

// NewDocument wraps an already parsed page. `root` is expected to be
// a node with type [html.DocumentNode].
func NewDocument(root *html.Node) *Document {
	return &Document{root: root, elements: make(map[*html.Node]*Element)}
}

// element returns the wrapper for `node`, creating it if needed.
func (d *Document) element(node *html.Node) *Element {
	if el := d.elements[node]; el != nil {
		return el
	}
	el := &Element{node: node, doc: d}
	d.elements[node] = el
	return el
}

// Root returns the root element of the document (the <html> element),
// or nil for an empty page.
func (d *Document) Root() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.element(c)
		}
	}
	return nil
}

// Body returns the <body> element, or nil if the page has none.
func (d *Document) Body() *Element {
	return d.findAtom(atom.Body)
}

func (d *Document) findAtom(a atom.Atom) *Element {
	var walk func(n *html.Node) *Element
	walk = func(n *html.Node) *Element {
		if n.Type == html.ElementNode && n.DataAtom == a {
			return d.element(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if el := walk(c); el != nil {
				return el
			}
		}
		return nil
	}
	return walk(d.root)
}

// ElementByID returns the first element with the given id attribute,
// or nil.
func (d *Document) ElementByID(id string) *Element {
	var walk func(n *html.Node) *Element
	walk = func(n *html.Node) *Element {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "id" && attr.Val == id {
					return d.element(n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if el := walk(c); el != nil {
				return el
			}
		}
		return nil
	}
	return walk(d.root)
}

// SetStyleComputer installs the standalone style computer, used for
// elements without a layout node.
func (d *Document) SetStyleComputer(c StyleComputer) { d.computer = c }

// StyleComputer returns the installed style computer, or nil.
func (d *Document) StyleComputer() StyleComputer { return d.computer }

// SetUpdater installs the update hooks of the owning browsing context.
func (d *Document) SetUpdater(u Updater) { d.updater = u }

// UpdateStyle brings the computed styles up to date. It is a no-op
// for a document outside of a browsing context.
func (d *Document) UpdateStyle() {
	if d.updater != nil {
		d.updater.UpdateStyle()
	}
}

// UpdateLayout brings the layout tree up to date, computing styles
// first if needed. It is a no-op for a document outside of a browsing
// context.
func (d *Document) UpdateLayout() {
	if d.updater != nil {
		d.updater.UpdateLayout()
	}
}

// SetPaintable installs the painted form of the document, rebuilt
// after each layout update.
func (d *Document) SetPaintable(p Paintable) { d.paintable = p }

// Paintable returns the painted form of the document, or nil before
// the first layout.
func (d *Document) Paintable() Paintable { return d.paintable }

// Element is one element node of a document.
type Element struct {
	node *html.Node
	doc  *Document

	computedStyle pr.Properties
	layoutNode    LayoutNode
}

// Document returns the owner document.
func (e *Element) Document() *Document { return e.doc }

// TagName returns the lower case tag name, like "div".
func (e *Element) TagName() string { return e.node.Data }

// ID returns the id attribute, or "".
func (e *Element) ID() string { return e.Attr("id") }

// Attr returns the value of the given attribute, or "".
func (e *Element) Attr(name string) string {
	for _, attr := range e.node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.doc.element(p)
		}
	}
	return nil
}

// Children returns the child elements, ignoring text and comment nodes.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.element(c))
		}
	}
	return out
}

// HasText returns true if the element has a direct, non blank text
// child.
func (e *Element) HasText() bool {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

// IsConnected returns true if the element is still attached to its
// document tree.
func (e *Element) IsConnected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// Remove detaches the element from its parent. Style and layout
// information become stale until the next update.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
	e.layoutNode = nil
}

// SetComputedStyle fills the computed style slot, during a style
// update.
func (e *Element) SetComputedStyle(style pr.Properties) { e.computedStyle = style }

// ComputedStyle returns the computed style of the element, or nil
// before the first style update.
func (e *Element) ComputedStyle() pr.Properties { return e.computedStyle }

// SetLayoutNode attaches the layout node generated for this element.
// A nil value marks an element which does not take part in layout.
func (e *Element) SetLayoutNode(n LayoutNode) { e.layoutNode = n }

// LayoutNode returns the layout node of the element, or nil for
// elements not rendered, like display: none subtrees.
func (e *Element) LayoutNode() LayoutNode { return e.layoutNode }

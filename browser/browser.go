// Package browser ties the engine stages together : a [BrowsingContext]
// owns a document with its style computer, runs the style, layout and
// paint passes on demand, and answers resolved style queries.
package browser

import (
	"io"

	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/css/resolved"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/layout"
	"github.com/benoitkugler/cssom/logger"
	"github.com/benoitkugler/cssom/paint"
	"github.com/benoitkugler/cssom/style"
	"github.com/benoitkugler/cssom/utils"
)

// default viewport size, in CSS pixels
const (
	defaultViewportWidth  = 800
	defaultViewportHeight = 600
)

var _ dom.Updater = (*BrowsingContext)(nil)

// BrowsingContext owns a document and the style, layout and paint state
// derived from it. It implements [dom.Updater] : the update entry
// points of the document force the corresponding passes, at most once
// until the next invalidation.
//
// A context is not safe for concurrent use.
type BrowsingContext struct {
	document *dom.Document
	computer *style.Computer

	layoutTree *layout.Tree

	viewportWidth, viewportHeight int

	styleClean  bool
	layoutClean bool
}

// NewBrowsingContext parses an HTML page into a fresh context, with a
// default viewport of 800 by 600 pixels.
func NewBrowsingContext(r io.Reader) (*BrowsingContext, error) {
	doc, err := dom.ParseDocument(r)
	if err != nil {
		return nil, err
	}
	ctx := &BrowsingContext{
		document:       doc,
		computer:       style.NewComputer(),
		viewportWidth:  defaultViewportWidth,
		viewportHeight: defaultViewportHeight,
	}
	doc.SetStyleComputer(ctx.computer)
	doc.SetUpdater(ctx)
	return ctx, nil
}

// Document returns the document owned by the context.
func (ctx *BrowsingContext) Document() *dom.Document { return ctx.document }

// Resize updates the viewport size and invalidates layout.
func (ctx *BrowsingContext) Resize(width, height int) {
	ctx.viewportWidth, ctx.viewportHeight = width, height
	ctx.layoutClean = false
}

// ViewportSize returns the current viewport dimensions, in CSS pixels.
func (ctx *BrowsingContext) ViewportSize() (width, height int) {
	return ctx.viewportWidth, ctx.viewportHeight
}

// SetElementStyle registers the declarations applying to `el`,
// replacing any previous ones, and invalidates the derived state.
func (ctx *BrowsingContext) SetElementStyle(el *dom.Element, declarations pr.Properties) {
	ctx.computer.SetDeclarations(el, declarations)
	ctx.Invalidate()
}

// Invalidate marks style and layout as stale, so that the next update
// runs the passes again. It must be called after mutating the DOM tree
// or the declarations outside of [BrowsingContext.SetElementStyle].
func (ctx *BrowsingContext) Invalidate() {
	ctx.styleClean = false
	ctx.layoutClean = false
}

// UpdateStyle computes the style of every element of the document, in
// tree order. It is a no-op when styles are already up to date.
func (ctx *BrowsingContext) UpdateStyle() {
	if ctx.styleClean {
		return
	}
	ctx.styleClean = true
	root := ctx.document.Root()
	if root == nil {
		return
	}
	logger.ProgressLogger.Println("computing styles")
	var walk func(el *dom.Element)
	walk = func(el *dom.Element) {
		computed, err := ctx.computer.ComputeStyle(el)
		if err != nil {
			logger.WarningLogger.Printf("style pass : %s", err)
			return
		}
		el.SetComputedStyle(computed)
		for _, child := range el.Children() {
			walk(child)
		}
	}
	walk(root)
}

// UpdateLayout brings the layout tree and its painted form up to date,
// running the style pass first if needed.
func (ctx *BrowsingContext) UpdateLayout() {
	ctx.UpdateStyle()
	if ctx.layoutClean {
		return
	}
	ctx.layoutClean = true
	logger.ProgressLogger.Println("building layout and paint trees")
	ctx.layoutTree = layout.BuildTree(ctx.document,
		utils.Fl(ctx.viewportWidth), utils.Fl(ctx.viewportHeight))
	ctx.document.SetPaintable(paint.NewViewportPaintable(ctx.layoutTree))
}

// GetComputedStyle returns the resolved style declaration of `el`, the
// object behind a window.getComputedStyle call.
func (ctx *BrowsingContext) GetComputedStyle(el *dom.Element) *resolved.ResolvedStyleDeclaration {
	return resolved.NewResolvedStyleDeclaration(el)
}

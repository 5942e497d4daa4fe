package browser

import (
	"strings"
	"testing"

	pr "github.com/benoitkugler/cssom/css/properties"
	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func newContext(t *testing.T, page string) *BrowsingContext {
	t.Helper()
	ctx, err := NewBrowsingContext(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func TestQueryRunsPasses(t *testing.T) {
	ctx := newContext(t, `<html><body><div id="box">x</div></body></html>`)
	doc := ctx.Document()
	box := doc.ElementByID("box")
	ctx.SetElementStyle(box, pr.Properties{pr.PWidth: pr.PxLength(120)})

	// nothing is computed before the first query
	tu.AssertEqual(t, box.ComputedStyle() == nil, true)
	tu.AssertEqual(t, box.LayoutNode() == nil, true)

	prop, ok := ctx.GetComputedStyle(box).Property(pr.PWidth)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, prop.Value, pr.PxLength(120))

	// the query forced the style, layout and paint passes
	tu.AssertEqual(t, box.ComputedStyle() != nil, true)
	tu.AssertEqual(t, box.LayoutNode() != nil, true)
	tu.AssertEqual(t, doc.Paintable() != nil, true)
}

func TestStyleOnlyQuery(t *testing.T) {
	ctx := newContext(t, `<html><body><div id="box">x</div></body></html>`)
	box := ctx.Document().ElementByID("box")
	red := pr.NewColor(255, 0, 0)
	ctx.SetElementStyle(box, pr.Properties{pr.PColor: red})

	prop, ok := ctx.GetComputedStyle(box).Property(pr.PColor)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, prop.Value, red)

	// a color query needs styles, not layout
	tu.AssertEqual(t, box.ComputedStyle() != nil, true)
	tu.AssertEqual(t, ctx.Document().Paintable() == nil, true)
}

func TestUpdateMemoization(t *testing.T) {
	ctx := newContext(t, `<html><body><div id="box">x</div></body></html>`)
	box := ctx.Document().ElementByID("box")
	decl := ctx.GetComputedStyle(box)

	decl.Property(pr.PWidth)
	first := ctx.Document().Paintable()
	tu.AssertEqual(t, first != nil, true)

	// further queries leave the trees untouched
	decl.Property(pr.PHeight)
	decl.Property(pr.PColor)
	tu.AssertEqual(t, ctx.Document().Paintable() == first, true)

	// changing a declaration invalidates them
	ctx.SetElementStyle(box, pr.Properties{pr.PWidth: pr.PxLength(60)})
	prop, ok := decl.Property(pr.PWidth)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, prop.Value, pr.PxLength(60))
	tu.AssertEqual(t, ctx.Document().Paintable() != first, true)
}

func TestResize(t *testing.T) {
	ctx := newContext(t, `<html><body><div id="box">x</div></body></html>`)
	box := ctx.Document().ElementByID("box")
	decl := ctx.GetComputedStyle(box)

	decl.Property(pr.PWidth)
	first := ctx.Document().Paintable()

	ctx.Resize(1024, 768)
	decl.Property(pr.PWidth)
	tu.AssertEqual(t, ctx.Document().Paintable() != first, true)
}

func TestRemovedElement(t *testing.T) {
	ctx := newContext(t, `<html><body><div id="box">x</div></body></html>`)
	box := ctx.Document().ElementByID("box")
	decl := ctx.GetComputedStyle(box)

	_, ok := decl.Property(pr.PColor)
	tu.AssertEqual(t, ok, true)

	box.Remove()
	ctx.Invalidate()
	_, ok = decl.Property(pr.PColor)
	tu.AssertEqual(t, ok, false)
}

func TestUsedLineHeight(t *testing.T) {
	ctx := newContext(t, `<html><body><p id="text">hello</p></body></html>`)
	p := ctx.Document().ElementByID("text")
	ctx.SetElementStyle(p, pr.Properties{
		pr.PFontSize:   pr.PxLength(20),
		pr.PLineHeight: pr.Percentage(150),
	})

	prop, ok := ctx.GetComputedStyle(p).Property(pr.PLineHeight)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, prop.Value, pr.PxLength(30))
}

func TestTransformThroughContext(t *testing.T) {
	ctx := newContext(t, `<html><body><div id="box">x</div></body></html>`)
	box := ctx.Document().ElementByID("box")
	ctx.SetElementStyle(box, pr.Properties{
		pr.PTransform: pr.Transformation{Function: pr.TFScale, Parameters: []pr.StyleValue{pr.Number(2)}},
	})

	tu.AssertEqual(t, ctx.GetComputedStyle(box).PropertyValue("transform"),
		"matrix(2, 0, 0, 2, 0, 0)")
}

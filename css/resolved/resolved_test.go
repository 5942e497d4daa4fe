package resolved

import (
	"strings"
	"testing"

	pr "github.com/benoitkugler/cssom/css/properties"
	kw "github.com/benoitkugler/cssom/css/properties/keywords"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/layout"
	"github.com/benoitkugler/cssom/paint"
	"github.com/benoitkugler/cssom/style"
	tu "github.com/benoitkugler/cssom/utils/testutils"
)

// setup parses the page and runs the style, layout and paint stages,
// as a browsing context would. The stacking context tree is not built :
// transform queries trigger it on demand.
func setup(t *testing.T, page string, declare func(*style.Computer, *dom.Document)) *dom.Document {
	t.Helper()
	doc, err := dom.ParseDocument(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	c := style.NewComputer()
	if declare != nil {
		declare(c, doc)
	}
	doc.SetStyleComputer(c)
	var styleAll func(el *dom.Element)
	styleAll = func(el *dom.Element) {
		computed, err := c.ComputeStyle(el)
		if err != nil {
			t.Fatal(err)
		}
		el.SetComputedStyle(computed)
		for _, child := range el.Children() {
			styleAll(child)
		}
	}
	styleAll(doc.Root())
	doc.SetPaintable(paint.NewViewportPaintable(layout.BuildTree(doc, 800, 600)))
	return doc
}

func declarationFor(doc *dom.Document, id string) *ResolvedStyleDeclaration {
	return NewResolvedStyleDeclaration(doc.ElementByID(id))
}

func assertResolved(t *testing.T, d *ResolvedStyleDeclaration, id pr.PropertyID, expected pr.StyleValue) {
	t.Helper()
	prop, ok := d.Property(id)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, prop.ID, id)
	if !pr.Equal(prop.Value, expected) {
		t.Fatalf("property %s : expected %v, got %v", id, expected, prop.Value)
	}
}

func TestColorProperties(t *testing.T) {
	red, green := pr.NewColor(255, 0, 0), pr.NewColor(0, 128, 0)
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("box"), pr.Properties{
				pr.PColor:           red,
				pr.PBackgroundColor: green,
				pr.PBorderTopStyle:  pr.Ident(kw.Solid),
			})
		})
	box := declarationFor(doc, "box")

	assertResolved(t, box, pr.PColor, red)
	assertResolved(t, box, pr.PBackgroundColor, green)
	// the resolved value is the used value : currentcolor is replaced
	assertResolved(t, box, pr.PBorderTopColor, red)
	assertResolved(t, box, pr.POutlineColor, red)
	assertResolved(t, box, pr.PTextDecorationColor, red)

	tu.AssertEqual(t, box.PropertyValue("color"), "rgb(255, 0, 0)")
	tu.AssertEqual(t, box.PropertyValue("background-color"), "rgb(0, 128, 0)")
	tu.AssertEqual(t, box.PropertyValue("backgroundColor"), "rgb(0, 128, 0)")
}

func TestLineHeight(t *testing.T) {
	doc := setup(t, `<html><body>
		<div id="default">a</div>
		<div id="scaled">b</div>
		<div id="fixed">c</div>
	</body></html>`, func(c *style.Computer, doc *dom.Document) {
		c.SetDeclarations(doc.ElementByID("scaled"), pr.Properties{
			pr.PFontSize:   pr.PxLength(20),
			pr.PLineHeight: pr.Number(2),
		})
		c.SetDeclarations(doc.ElementByID("fixed"), pr.Properties{
			pr.PLineHeight: pr.PxLength(30),
		})
	})

	// the normal keyword resolves as is
	assertResolved(t, declarationFor(doc, "default"), pr.PLineHeight, pr.Ident(kw.Normal))
	// other values resolve to the used line height, in pixels
	assertResolved(t, declarationFor(doc, "scaled"), pr.PLineHeight, pr.PxLength(40))
	assertResolved(t, declarationFor(doc, "fixed"), pr.PLineHeight, pr.PxLength(30))
}

func TestBoxProperties(t *testing.T) {
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("box"), pr.Properties{
				pr.PWidth:       pr.PxLength(120),
				pr.PMarginTop:   pr.Percentage(25),
				pr.PPaddingLeft: pr.PxLength(8),
				pr.PTop:         pr.PxLength(5),
			})
		})
	box := declarationFor(doc, "box")

	// the computed value is returned, even for percentages
	assertResolved(t, box, pr.PMarginTop, pr.Percentage(25))
	assertResolved(t, box, pr.PMarginRight, pr.PxLength(0))
	assertResolved(t, box, pr.PPaddingLeft, pr.PxLength(8))
	assertResolved(t, box, pr.PWidth, pr.PxLength(120))
	assertResolved(t, box, pr.PHeight, pr.Ident(kw.Auto))
	assertResolved(t, box, pr.PTop, pr.PxLength(5))
	assertResolved(t, box, pr.PBottom, pr.Ident(kw.Auto))
}

func TestSidedShorthands(t *testing.T) {
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("box"), pr.Properties{
				pr.PMarginTop:    pr.PxLength(1),
				pr.PMarginRight:  pr.PxLength(2),
				pr.PMarginBottom: pr.PxLength(3),
				pr.PMarginLeft:   pr.PxLength(4),

				pr.PPaddingTop:    pr.PxLength(10),
				pr.PPaddingRight:  pr.PxLength(10),
				pr.PPaddingBottom: pr.PxLength(10),
				pr.PPaddingLeft:   pr.PxLength(10),
			})
		})
	box := declarationFor(doc, "box")

	assertResolved(t, box, pr.PMargin, pr.ValueList{
		Values:    []pr.StyleValue{pr.PxLength(1), pr.PxLength(2), pr.PxLength(3), pr.PxLength(4)},
		Separator: pr.SpaceSep,
	})
	// uniform sides collapse to the single value
	assertResolved(t, box, pr.PPadding, pr.PxLength(10))
	tu.AssertEqual(t, box.PropertyValue("margin"), "1px 2px 3px 4px")
}

func TestBorderShorthand(t *testing.T) {
	red := pr.NewColor(255, 0, 0)
	uniform := pr.Properties{}
	for _, p := range pr.Shorthands[pr.PBorderStyle] {
		uniform[p] = pr.Ident(kw.Solid)
	}
	for _, p := range pr.Shorthands[pr.PBorderWidth] {
		uniform[p] = pr.PxLength(2)
	}
	for _, p := range pr.Shorthands[pr.PBorderColor] {
		uniform[p] = red
	}
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("box"), uniform)
		})
	box := declarationFor(doc, "box")

	assertResolved(t, box, pr.PBorderWidth, pr.PxLength(2))
	assertResolved(t, box, pr.PBorderStyle, pr.Ident(kw.Solid))
	assertResolved(t, box, pr.PBorderColor, red)
	assertResolved(t, box, pr.PBorder, pr.ShorthandValue{
		Shorthand: pr.PBorder,
		Longhands: []pr.PropertyID{pr.PBorderWidth, pr.PBorderStyle, pr.PBorderColor},
		Values:    []pr.StyleValue{pr.PxLength(2), pr.Ident(kw.Solid), red},
	})
	tu.AssertEqual(t, box.PropertyValue("border"), "2px solid rgb(255, 0, 0)")
}

func TestNonUniformBorder(t *testing.T) {
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("box"), pr.Properties{
				pr.PBorderTopStyle: pr.Ident(kw.Solid),
				pr.PBorderTopWidth: pr.PxLength(5),
			})
		})
	box := declarationFor(doc, "box")

	// top 5px, the other sides 0 : the three value form
	assertResolved(t, box, pr.PBorderWidth, pr.ValueList{
		Values:    []pr.StyleValue{pr.PxLength(5), pr.PxLength(0), pr.PxLength(0)},
		Separator: pr.SpaceSep,
	})
	// border itself has no faithful resolved value
	_, ok := box.Property(pr.PBorder)
	tu.AssertEqual(t, ok, false)
	tu.AssertEqual(t, box.PropertyValue("border"), "")
}

func TestBackgroundPositionLayers(t *testing.T) {
	position := func(x, y pr.LengthPercentage) pr.Position {
		return pr.Position{X: pr.Edge{Side: kw.Left, Offset: x}, Y: pr.Edge{Side: kw.Top, Offset: y}}
	}
	doc := setup(t, `<html><body>
		<div id="plain">a</div>
		<div id="single">b</div>
		<div id="layered">c</div>
	</body></html>`, func(c *style.Computer, doc *dom.Document) {
		c.SetDeclarations(doc.ElementByID("single"), pr.Properties{
			pr.PBackgroundPosition: position(pr.PercLP(50), pr.LengthLP(10)),
		})
		c.SetDeclarations(doc.ElementByID("layered"), pr.Properties{
			pr.PBackgroundImage: pr.ValueList{
				Values:    []pr.StyleValue{pr.Url("a.png"), pr.Url("b.png")},
				Separator: pr.CommaSep,
			},
			pr.PBackgroundPosition: pr.ValueList{
				Values: []pr.StyleValue{
					position(pr.PercLP(100), pr.PercLP(0)),
					position(pr.LengthLP(4), pr.LengthLP(8)),
				},
				Separator: pr.CommaSep,
			},
		})
	})

	// without layers, the default position
	assertResolved(t, declarationFor(doc, "plain"), pr.PBackgroundPosition,
		position(pr.PercLP(0), pr.PercLP(0)))
	// one layer : its position alone ; several : a comma separated list
	assertResolved(t, declarationFor(doc, "single"), pr.PBackgroundPosition,
		position(pr.PercLP(50), pr.LengthLP(10)))
	assertResolved(t, declarationFor(doc, "layered"), pr.PBackgroundPosition, pr.ValueList{
		Values: []pr.StyleValue{
			position(pr.PercLP(100), pr.PercLP(0)),
			position(pr.LengthLP(4), pr.LengthLP(8)),
		},
		Separator: pr.CommaSep,
	})
}

func TestTransform(t *testing.T) {
	doc := setup(t, `<html><body>
		<div id="still">a</div>
		<div id="moved">b</div>
	</body></html>`, func(c *style.Computer, doc *dom.Document) {
		c.SetDeclarations(doc.ElementByID("moved"), pr.Properties{
			pr.PTransform: pr.Transformation{
				Function:   pr.TFTranslate,
				Parameters: []pr.StyleValue{pr.PxLength(10), pr.PxLength(5)},
			},
		})
	})

	// without transform : the none keyword
	assertResolved(t, declarationFor(doc, "still"), pr.PTransform, pr.Ident(kw.None))

	// the function list resolves to a single matrix() function ;
	// the first query builds the stacking context tree
	expected := pr.ValueList{
		Values: []pr.StyleValue{pr.Transformation{
			Function: pr.TFMatrix,
			Parameters: []pr.StyleValue{
				pr.Number(1), pr.Number(0), pr.Number(0),
				pr.Number(1), pr.Number(10), pr.Number(5),
			},
		}},
		Separator: pr.SpaceSep,
	}
	moved := declarationFor(doc, "moved")
	assertResolved(t, moved, pr.PTransform, expected)
	// repeated queries reuse the tree
	assertResolved(t, moved, pr.PTransform, expected)

	tu.AssertEqual(t, moved.PropertyValue("transform"), "matrix(1, 0, 0, 1, 10, 5)")
}

func TestDisconnectedElement(t *testing.T) {
	doc := setup(t, `<html><body><div id="gone">x</div></body></html>`, nil)
	el := doc.ElementByID("gone")
	decl := NewResolvedStyleDeclaration(el)
	el.Remove()

	for _, id := range []pr.PropertyID{
		pr.PColor, pr.PMarginTop, pr.PTransform, pr.PMargin, pr.PInvalid,
	} {
		_, ok := decl.Property(id)
		tu.AssertEqual(t, ok, false)
	}
	tu.AssertEqual(t, decl.PropertyValue("color"), "")
}

func TestDisplayNoneFallback(t *testing.T) {
	red := pr.NewColor(255, 0, 0)
	doc := setup(t, `<html><body><div id="ghost">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("ghost"), pr.Properties{
				pr.PDisplay: pr.Ident(kw.None),
				pr.PColor:   red,
				pr.PTransform: pr.Transformation{
					Function:   pr.TFTranslateX,
					Parameters: []pr.StyleValue{pr.PxLength(10)},
				},
			})
		})
	tu.AssertEqual(t, doc.ElementByID("ghost").LayoutNode() == nil, true)
	ghost := declarationFor(doc, "ghost")

	// longhands fall back to a standalone style computation
	assertResolved(t, ghost, pr.PColor, red)
	assertResolved(t, ghost, pr.PFontSize, pr.PxLength(16))
	// without layout, the transform stays a function list
	assertResolved(t, ghost, pr.PTransform, pr.Transformation{
		Function:   pr.TFTranslateX,
		Parameters: []pr.StyleValue{pr.PxLength(10)},
	})
	// and shorthands are not rebuilt
	_, ok := ghost.Property(pr.PMargin)
	tu.AssertEqual(t, ok, false)
}

func TestMutationRejected(t *testing.T) {
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`, nil)
	el := doc.ElementByID("box")

	check := func(decl *ResolvedStyleDeclaration) {
		tu.AssertEqual(t, decl.SetProperty("color", "red"), ErrNoModificationAllowed)
		_, err := decl.RemoveProperty("color")
		tu.AssertEqual(t, err, ErrNoModificationAllowed)
		tu.AssertEqual(t, decl.SetCSSText("color: red"), ErrNoModificationAllowed)
		tu.AssertEqual(t, decl.CSSText(), "")
		tu.AssertEqual(t, decl.Length(), 0)
		tu.AssertEqual(t, decl.Item(0), "")
	}
	decl := NewResolvedStyleDeclaration(el)
	check(decl)
	el.Remove() // the rejection does not depend on connectivity
	check(decl)
}

func TestInvalidAndCustom(t *testing.T) {
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`, nil)
	box := declarationFor(doc, "box")

	assertResolved(t, box, pr.PInvalid, pr.Ident(kw.Invalid))
	// custom properties are not resolved
	_, ok := box.Property(pr.PCustom)
	tu.AssertEqual(t, ok, false)
	tu.AssertEqual(t, box.PropertyValue("--main-color"), "")
	tu.AssertEqual(t, box.PropertyValue("not-a-property"), "")
}

func TestGenericShorthand(t *testing.T) {
	doc := setup(t, `<html><body><div id="box">x</div></body></html>`,
		func(c *style.Computer, doc *dom.Document) {
			c.SetDeclarations(doc.ElementByID("box"), pr.Properties{
				pr.POutlineColor: pr.NewColor(0, 0, 255),
				pr.POutlineStyle: pr.Ident(kw.Dashed),
				pr.POutlineWidth: pr.Ident(kw.Thin),
			})
		})
	box := declarationFor(doc, "box")

	prop, ok := box.Property(pr.POutline)
	tu.AssertEqual(t, ok, true)

	// wrapping the independently resolved longhands gives the same value
	longhands := pr.Shorthands[pr.POutline]
	wrapped := pr.ShorthandValue{Shorthand: pr.POutline, Longhands: longhands}
	for _, longhand := range longhands {
		lp, okLonghand := box.Property(longhand)
		tu.AssertEqual(t, okLonghand, true)
		wrapped.Values = append(wrapped.Values, lp.Value)
	}
	tu.AssertEqual(t, pr.Equal(prop.Value, wrapped), true)

	tu.AssertEqual(t, box.PropertyValue("outline"), "rgb(0, 0, 255) dashed 1px")
}

package js

import (
	"strings"
	"testing"

	"github.com/benoitkugler/cssom/browser"
	pr "github.com/benoitkugler/cssom/css/properties"
)

func newTestRuntime(t *testing.T, page string, declare func(*browser.BrowsingContext)) *Runtime {
	t.Helper()
	ctx, err := browser.NewBrowsingContext(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse page: %v", err)
	}
	if declare != nil {
		declare(ctx)
	}
	return NewRuntime(ctx)
}

func TestGetComputedStyleScripts(t *testing.T) {
	runtime := newTestRuntime(t, `<html><body><div id="box">hello</div></body></html>`,
		func(ctx *browser.BrowsingContext) {
			ctx.SetElementStyle(ctx.Document().ElementByID("box"), pr.Properties{
				pr.PColor:           pr.NewColor(255, 0, 0),
				pr.PBackgroundColor: pr.NewColor(0, 128, 0),
				pr.PWidth:           pr.PxLength(120),
				pr.PMarginTop:       pr.PxLength(1),
				pr.PMarginRight:     pr.PxLength(2),
				pr.PMarginBottom:    pr.PxLength(3),
				pr.PMarginLeft:      pr.PxLength(4),
				pr.PTransform: pr.Transformation{
					Function:   pr.TFTranslate,
					Parameters: []pr.StyleValue{pr.PxLength(10), pr.PxLength(5)},
				},
			})
		})

	tests := []struct {
		name   string
		script string
		want   interface{}
	}{
		{
			name:   "getComputedStyle is a function",
			script: "typeof getComputedStyle",
			want:   "function",
		},
		{
			name:   "window.getComputedStyle is the same binding",
			script: "window.getComputedStyle === getComputedStyle",
			want:   true,
		},
		{
			name:   "console.log is a function",
			script: "typeof console.log",
			want:   "function",
		},
		{
			name:   "getElementById finds the element",
			script: "document.getElementById('box').tagName",
			want:   "DIV",
		},
		{
			name:   "id attribute",
			script: "document.getElementById('box').id",
			want:   "box",
		},
		{
			name:   "wrappers are cached",
			script: "document.getElementById('box') === document.getElementById('box')",
			want:   true,
		},
		{
			name:   "unknown id is null",
			script: "document.getElementById('missing')",
			want:   nil,
		},
		{
			name:   "declaration is an object",
			script: "typeof getComputedStyle(document.getElementById('box'))",
			want:   "object",
		},
		{
			name:   "color value",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('color')",
			want:   "rgb(255, 0, 0)",
		},
		{
			name:   "camel case names are accepted",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('backgroundColor')",
			want:   "rgb(0, 128, 0)",
		},
		{
			name:   "margin shorthand",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('margin')",
			want:   "1px 2px 3px 4px",
		},
		{
			name:   "width",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('width')",
			want:   "120px",
		},
		{
			name:   "transform is a matrix",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('transform')",
			want:   "matrix(1, 0, 0, 1, 10, 5)",
		},
		{
			name:   "custom properties are not resolved",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('--main-color')",
			want:   "",
		},
		{
			name:   "unknown property",
			script: "getComputedStyle(document.getElementById('box')).getPropertyValue('not-a-property')",
			want:   "",
		},
		{
			name:   "length is zero",
			script: "getComputedStyle(document.getElementById('box')).length",
			want:   int64(0),
		},
		{
			name:   "item is empty",
			script: "getComputedStyle(document.getElementById('box')).item(0)",
			want:   "",
		},
		{
			name:   "cssText is empty",
			script: "getComputedStyle(document.getElementById('box')).cssText",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := runtime.Execute(tt.script)
			if err != nil {
				t.Fatalf("script error: %v", err)
			}
			got := val.Export()
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestMutationThrows(t *testing.T) {
	runtime := newTestRuntime(t, `<html><body><div id="box">hello</div></body></html>`, nil)

	const rejected = "TypeError: NoModificationAllowedError: cannot modify result of a resolved-style query"

	tests := []struct {
		name   string
		script string
		want   interface{}
	}{
		{
			name: "setProperty throws",
			script: `(function () {
				try {
					getComputedStyle(document.getElementById('box')).setProperty('color', 'blue');
					return 'no error';
				} catch (e) { return String(e); }
			})()`,
			want: rejected,
		},
		{
			name: "removeProperty throws",
			script: `(function () {
				try {
					getComputedStyle(document.getElementById('box')).removeProperty('color');
					return 'no error';
				} catch (e) { return String(e); }
			})()`,
			want: rejected,
		},
		{
			name: "cssText assignment throws",
			script: `(function () {
				try {
					getComputedStyle(document.getElementById('box')).cssText = 'color: blue';
					return 'no error';
				} catch (e) { return String(e); }
			})()`,
			want: rejected,
		},
		{
			name: "non element argument throws",
			script: `(function () {
				try {
					getComputedStyle({});
					return 'no error';
				} catch (e) { return String(e); }
			})()`,
			want: "TypeError: getComputedStyle: argument is not an Element",
		},
		{
			name: "missing argument throws",
			script: `(function () {
				try {
					getComputedStyle();
					return 'no error';
				} catch (e) { return String(e); }
			})()`,
			want: "TypeError: getComputedStyle: argument is not an Element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := runtime.Execute(tt.script)
			if err != nil {
				t.Fatalf("script error: %v", err)
			}
			got := val.Export()
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestElementRemovalScripts(t *testing.T) {
	runtime := newTestRuntime(t, `<html><body><div id="ghost">boo</div></body></html>`,
		func(ctx *browser.BrowsingContext) {
			ctx.SetElementStyle(ctx.Document().ElementByID("ghost"), pr.Properties{
				pr.PColor: pr.NewColor(255, 0, 0),
			})
		})

	// scripts share top level bindings, so run in order
	tests := []struct {
		name   string
		script string
		want   interface{}
	}{
		{
			name:   "connected before removal",
			script: "var ghost = document.getElementById('ghost'); ghost.isConnected",
			want:   true,
		},
		{
			name:   "query before removal",
			script: "getComputedStyle(ghost).getPropertyValue('color')",
			want:   "rgb(255, 0, 0)",
		},
		{
			name:   "removal disconnects",
			script: "ghost.remove(); ghost.isConnected",
			want:   false,
		},
		{
			name:   "query after removal is empty",
			script: "getComputedStyle(ghost).getPropertyValue('color')",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := runtime.Execute(tt.script)
			if err != nil {
				t.Fatalf("script error: %v", err)
			}
			got := val.Export()
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestWindowViewport(t *testing.T) {
	runtime := newTestRuntime(t, `<html><body></body></html>`, nil)

	val, err := runtime.Execute("window.innerWidth + 'x' + window.innerHeight")
	if err != nil {
		t.Fatalf("script error: %v", err)
	}
	if got := val.Export(); got != "800x600" {
		t.Errorf("got %v, want 800x600", got)
	}

	runtime.ctx.Resize(1024, 768)
	val, err = runtime.Execute("window.innerWidth + 'x' + window.innerHeight")
	if err != nil {
		t.Fatalf("script error: %v", err)
	}
	if got := val.Export(); got != "1024x768" {
		t.Errorf("got %v, want 1024x768", got)
	}
}

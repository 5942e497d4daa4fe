// Package js exposes a browsing context to scripts, using the goja
// engine (a pure Go implementation of ECMAScript 5.1+). The surface is
// the subset of the DOM and CSSOM needed to observe resolved styles :
// document.getElementById, element.remove and window.getComputedStyle.
package js

import (
	"strings"

	"github.com/dop251/goja"

	"github.com/benoitkugler/cssom/browser"
	"github.com/benoitkugler/cssom/css/resolved"
	"github.com/benoitkugler/cssom/dom"
	"github.com/benoitkugler/cssom/logger"
)

// Runtime wraps a goja runtime bound to one browsing context.
//
// Top level bindings persist between [Runtime.Execute] calls, so a
// script may store an element in a var and query it later.
type Runtime struct {
	vm  *goja.Runtime
	ctx *browser.BrowsingContext

	// one wrapper per element, so that scripts see identical objects
	elements map[*dom.Element]*goja.Object
}

// NewRuntime creates a runtime for the given context and installs the
// global objects : console, document and window.
func NewRuntime(ctx *browser.BrowsingContext) *Runtime {
	r := &Runtime{
		vm:       goja.New(),
		ctx:      ctx,
		elements: make(map[*dom.Element]*goja.Object),
	}
	r.setupConsole()
	r.setupDocument()
	r.setupWindow()
	return r
}

// Execute runs a script and returns its completion value.
func (r *Runtime) Execute(code string) (goja.Value, error) {
	return r.vm.RunString(code)
}

func (r *Runtime) setupConsole() {
	vm := r.vm
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		logger.ProgressLogger.Println(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		logger.WarningLogger.Println(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		logger.WarningLogger.Println(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func (r *Runtime) setupDocument() {
	vm := r.vm
	document := vm.NewObject()

	document.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		el := r.ctx.Document().ElementByID(call.Arguments[0].String())
		if el == nil {
			return goja.Null()
		}
		return r.wrapElement(el)
	})

	vm.Set("document", document)
}

// setupWindow uses the global object as window, so that properties set
// on it are reachable without qualification.
func (r *Runtime) setupWindow() {
	vm := r.vm
	window := vm.GlobalObject()
	vm.Set("window", window)
	vm.Set("self", window)

	window.Set("getComputedStyle", func(call goja.FunctionCall) goja.Value {
		el := r.unwrapElement(call)
		return r.wrapDeclaration(r.ctx.GetComputedStyle(el))
	})

	window.DefineAccessorProperty("innerWidth", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		width, _ := r.ctx.ViewportSize()
		return vm.ToValue(width)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	window.DefineAccessorProperty("innerHeight", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		_, height := r.ctx.ViewportSize()
		return vm.ToValue(height)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
}

// wrapElement returns the script-side view of `el`, building it on the
// first call.
func (r *Runtime) wrapElement(el *dom.Element) *goja.Object {
	if obj, ok := r.elements[el]; ok {
		return obj
	}

	vm := r.vm
	obj := vm.NewObject()

	// reference back to the Go element, recovered by unwrapElement
	obj.Set("_goElement", el)

	obj.DefineAccessorProperty("tagName", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(strings.ToUpper(el.TagName()))
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("id", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.ID())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("isConnected", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.IsConnected())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("remove", func(call goja.FunctionCall) goja.Value {
		el.Remove()
		r.ctx.Invalidate()
		return goja.Undefined()
	})

	r.elements[el] = obj
	return obj
}

// unwrapElement recovers the Go element backing the first argument, or
// throws a TypeError if it is not an element wrapper.
func (r *Runtime) unwrapElement(call goja.FunctionCall) *dom.Element {
	if len(call.Arguments) != 0 {
		if obj, ok := call.Arguments[0].(*goja.Object); ok {
			if v := obj.Get("_goElement"); v != nil {
				if el, ok := v.Export().(*dom.Element); ok {
					return el
				}
			}
		}
	}
	panic(r.vm.NewTypeError("getComputedStyle: argument is not an Element"))
}

// wrapDeclaration exposes a resolved declaration to scripts. Mutations
// throw, with the NoModificationAllowedError name of the DOM exception.
func (r *Runtime) wrapDeclaration(decl *resolved.ResolvedStyleDeclaration) *goja.Object {
	vm := r.vm
	obj := vm.NewObject()

	obj.Set("getPropertyValue", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return vm.ToValue("")
		}
		return vm.ToValue(decl.PropertyValue(call.Arguments[0].String()))
	})

	obj.Set("setProperty", func(call goja.FunctionCall) goja.Value {
		var name, value string
		if len(call.Arguments) > 0 {
			name = call.Arguments[0].String()
		}
		if len(call.Arguments) > 1 {
			value = call.Arguments[1].String()
		}
		if err := decl.SetProperty(name, value); err != nil {
			panic(vm.NewTypeError("NoModificationAllowedError: " + err.Error()))
		}
		return goja.Undefined()
	})

	obj.Set("removeProperty", func(call goja.FunctionCall) goja.Value {
		var name string
		if len(call.Arguments) > 0 {
			name = call.Arguments[0].String()
		}
		if _, err := decl.RemoveProperty(name); err != nil {
			panic(vm.NewTypeError("NoModificationAllowedError: " + err.Error()))
		}
		return vm.ToValue("")
	})

	obj.Set("item", func(call goja.FunctionCall) goja.Value {
		var index int
		if len(call.Arguments) > 0 {
			index = int(call.Arguments[0].ToInteger())
		}
		return vm.ToValue(decl.Item(index))
	})

	obj.DefineAccessorProperty("length", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(decl.Length())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("cssText", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(decl.CSSText())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		var text string
		if len(call.Arguments) > 0 {
			text = call.Arguments[0].String()
		}
		if err := decl.SetCSSText(text); err != nil {
			panic(vm.NewTypeError("NoModificationAllowedError: " + err.Error()))
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	return obj
}

func formatArgs(args []goja.Value) string {
	chunks := make([]string, len(args))
	for i, arg := range args {
		chunks[i] = arg.String()
	}
	return strings.Join(chunks, " ")
}

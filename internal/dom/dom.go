//go:build js && wasm

// Package dom implements the page ports on top of the browser DOM.
package dom

import (
	"fmt"
	"strconv"
	"sync"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/field"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/view"
)

// Window wraps the global window and document.
type Window struct {
	win js.Value
	doc js.Value
}

// NewWindow returns the current window.
func NewWindow() *Window {
	win := js.Global()
	return &Window{win: win, doc: win.Get("document")}
}

// Viewport returns the window's inner size.
func (w *Window) Viewport() field.Viewport {
	return field.Viewport{
		Width:  w.win.Get("innerWidth").Float(),
		Height: w.win.Get("innerHeight").Float(),
	}
}

// Origin returns the page origin, e.g. https://example.com.
func (w *Window) Origin() string {
	return w.win.Get("location").Get("origin").String()
}

// ByID looks up an element. ok is false when it is not in the document.
func (w *Window) ByID(id string) (js.Value, bool) {
	el := w.doc.Call("getElementById", id)
	return el, el.Truthy()
}

func (w *Window) listen(target js.Value, event string, fn func(js.Value)) (release func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	opts := map[string]any{"passive": event == "scroll"}
	target.Call("addEventListener", event, cb, opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, cb, opts)
			cb.Release()
		})
	}
}

// OnScroll reports the scroll offset and the largest possible offset.
func (w *Window) OnScroll(fn func(offset, maxOffset float64)) func() {
	report := func(js.Value) {
		root := w.doc.Get("documentElement")
		maxOffset := root.Get("scrollHeight").Float() - w.win.Get("innerHeight").Float()
		fn(w.win.Get("scrollY").Float(), maxOffset)
	}
	report(js.Undefined())
	return w.listen(w.win, "scroll", report)
}

// OnResize reports the new viewport size.
func (w *Window) OnResize(fn func(vp field.Viewport)) func() {
	return w.listen(w.win, "resize", func(js.Value) { fn(w.Viewport()) })
}

// OnClick runs fn when the element with id is clicked.
func (w *Window) OnClick(id string, fn func()) func() {
	el, ok := w.ByID(id)
	if !ok {
		return func() {}
	}
	return w.listen(el, "click", func(js.Value) { fn() })
}

// OnPageHide runs fn when the page is being unloaded.
func (w *Window) OnPageHide(fn func()) func() {
	return w.listen(w.win, "pagehide", func(js.Value) { fn() })
}

// Alert shows a blocking browser alert.
func (w *Window) Alert(msg string) {
	w.win.Call("alert", msg)
}

// ConfigJSON returns the text of the embedded engine config script.
func (w *Window) ConfigJSON() string {
	el, ok := w.ByID(view.ConfigScriptID)
	if !ok {
		return ""
	}
	return el.Get("textContent").String()
}

// Stars returns the star container when it has been rendered.
func (w *Window) Stars() (field.Container, bool) {
	el, ok := w.ByID(view.StarsID)
	if !ok {
		return nil, false
	}
	return &stars{doc: w.doc, el: el}, true
}

type stars struct {
	doc js.Value
	el  js.Value
}

// Replace swaps every star for a freshly generated set.
func (s *stars) Replace(elems []field.Element) {
	frag := s.doc.Call("createDocumentFragment")
	for _, e := range elems {
		star := s.doc.Call("createElement", "div")
		star.Set("className", "star")
		star.Call("setAttribute", "style", e.Style())
		frag.Call("appendChild", star)
	}
	s.el.Call("replaceChildren", frag)
}

// ProgressBar returns a func that scales the progress bar.
func (w *Window) ProgressBar() func(float64) {
	el, ok := w.ByID(view.ProgressID)
	if !ok {
		return nil
	}
	style := el.Get("style")
	return func(scaleX float64) {
		style.Set("transform", fmt.Sprintf("scaleX(%.4f)", scaleX))
	}
}

// Sections tracks the reveal groups rendered on the page.
type Sections struct {
	w      *Window
	groups []reveal.Group
	els    map[string]js.Value
}

// FindSections collects every element tagged as a reveal group.
func (w *Window) FindSections() *Sections {
	s := &Sections{w: w, els: make(map[string]js.Value)}
	nodes := w.doc.Call("querySelectorAll", "["+view.GroupAttr+"]")
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		name := el.Call("getAttribute", view.GroupAttr).String()
		amount, err := strconv.ParseFloat(el.Call("getAttribute", view.AmountAttr).String(), 64)
		if err != nil {
			amount = 0
		}
		children := el.Call("querySelectorAll", "["+view.ChildAttr+"]").Length()
		s.groups = append(s.groups, reveal.Group{Name: name, Amount: amount, Children: children})
		s.els[name] = el
	}
	return s
}

// Groups returns the discovered groups in document order.
func (s *Sections) Groups() []reveal.Group {
	return s.groups
}

// Observe reports every section's rect to observe.
func (s *Sections) Observe(observe func(name string, r reveal.Rect, viewportHeight float64) bool) {
	vh := s.w.win.Get("innerHeight").Float()
	for _, g := range s.groups {
		rect := s.els[g.Name].Call("getBoundingClientRect")
		observe(g.Name, reveal.Rect{Top: rect.Get("top").Float(), Height: rect.Get("height").Float()}, vh)
	}
}

// Apply starts each child's CSS transition toward its revealed style.
func (s *Sections) Apply(g reveal.Group, steps []reveal.Step) {
	el, ok := s.els[g.Name]
	if !ok {
		return
	}
	children := el.Call("querySelectorAll", "["+view.ChildAttr+"]")
	for _, st := range steps {
		if st.Child >= children.Length() {
			continue
		}
		style := children.Index(st.Child).Get("style")
		style.Set("transition", fmt.Sprintf(
			"opacity %[1]dms cubic-bezier(0.33,1,0.68,1) %[2]dms, transform %[1]dms cubic-bezier(0.33,1,0.68,1) %[2]dms",
			st.Duration.Milliseconds(), st.Delay.Milliseconds()))
		style.Set("opacity", strconv.FormatFloat(st.To.Opacity, 'f', -1, 64))
		style.Set("transform", fmt.Sprintf("translateY(%gpx)", st.To.OffsetY))
	}
}

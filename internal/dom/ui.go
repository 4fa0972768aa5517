//go:build js && wasm

package dom

import (
	"sync"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/toast"
	"github.com/Zachkp/portfolio/internal/view"
)

// Toasts renders toast banners into the document body.
type Toasts struct {
	w   *Window
	els map[string]js.Value
}

// NewToasts returns a toast display bound to w.
func (w *Window) NewToasts() *Toasts {
	return &Toasts{w: w, els: make(map[string]js.Value)}
}

// Render implements toast.Display.
func (t *Toasts) Render(msg toast.Toast) {
	switch msg.Phase {
	case toast.PhaseEntering:
		el := t.w.doc.Call("createElement", "div")
		el.Set("className", "toast")
		el.Set("textContent", msg.Text)
		el.Call("setAttribute", "role", "status")
		parent, ok := t.w.ByID("toast-root")
		if !ok {
			parent = t.w.doc.Get("body")
		}
		parent.Call("appendChild", el)
		t.els[msg.ID] = el
	case toast.PhaseVisible:
		if el, ok := t.els[msg.ID]; ok {
			el.Get("classList").Call("add", "show")
		}
	case toast.PhaseExiting:
		if el, ok := t.els[msg.ID]; ok {
			el.Get("classList").Call("remove", "show")
		}
	case toast.PhaseRemoved:
		if el, ok := t.els[msg.ID]; ok {
			el.Call("remove")
			delete(t.els, msg.ID)
		}
	}
}

// Links creates hidden download anchors on demand.
type Links struct {
	w   *Window
	mu  sync.Mutex
	els map[resume.Link]js.Value
}

// NewLinks returns a link host bound to w.
func (w *Window) NewLinks() *Links {
	return &Links{w: w, els: make(map[resume.Link]js.Value)}
}

// Append implements resume.LinkHost.
func (l *Links) Append(link resume.Link) {
	a := l.w.doc.Call("createElement", "a")
	a.Set("href", link.Href)
	a.Set("download", link.Filename)
	a.Get("style").Set("display", "none")
	l.w.doc.Get("body").Call("appendChild", a)

	l.mu.Lock()
	l.els[link] = a
	l.mu.Unlock()
}

// Click implements resume.LinkHost.
func (l *Links) Click(link resume.Link) {
	l.mu.Lock()
	a, ok := l.els[link]
	l.mu.Unlock()
	if ok {
		a.Call("click")
	}
}

// Remove implements resume.LinkHost.
func (l *Links) Remove(link resume.Link) {
	l.mu.Lock()
	a, ok := l.els[link]
	delete(l.els, link)
	l.mu.Unlock()
	if ok {
		a.Call("remove")
	}
}

// Form is the contact form element.
type Form struct {
	el js.Value
}

// ContactForm returns the rendered contact form.
func (w *Window) ContactForm() (*Form, bool) {
	el, ok := w.ByID(view.ContactFormID)
	if !ok {
		return nil, false
	}
	return &Form{el: el}, true
}

// Values implements contact.Form.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(contact.FieldNames))
	elements := f.el.Get("elements")
	for _, name := range contact.FieldNames {
		if input := elements.Call("namedItem", name); input.Truthy() {
			out[name] = input.Get("value").String()
		}
	}
	return out
}

// Reset implements contact.Form.
func (f *Form) Reset() {
	f.el.Call("reset")
}

// OnSubmit calls fn instead of the browser's default submission.
func (f *Form) OnSubmit(w *Window, fn func()) func() {
	return w.listen(f.el, "submit", func(ev js.Value) {
		if ev.Truthy() {
			ev.Call("preventDefault")
		}
		fn()
	})
}

// SubmitState disables the form's submit button while a message is in
// flight.
func (f *Form) SubmitState(st contact.State) {
	btn := f.el.Call("querySelector", "button[type=submit]")
	if !btn.Truthy() {
		return
	}
	sending := st == contact.StateSending
	btn.Set("disabled", sending)
	if sending {
		btn.Set("textContent", "Sending...")
	} else {
		btn.Set("textContent", "Send Message")
	}
}

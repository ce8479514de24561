package view

import (
	"image"

	"calc/hal"
)

// Geometry in logical pixels.
const (
	WindowSize    = 235
	DisplayHeight = 35
	ButtonSize    = 40

	margin  = 5
	spacing = 6
)

const (
	focusField = -1
	noGrab     = -1
)

// Window is the calculator view: a read-only display field above a fixed
// keypad. It holds the Display Buffer and renders into a framebuffer; it
// performs no computation.
type Window struct {
	text  string
	field image.Rectangle

	buttons [keyCount]Button

	focus   int
	grabbed int

	onReturn []func()

	dirty bool
}

func NewWindow() *Window {
	w := &Window{
		field:   image.Rect(margin, margin, WindowSize-margin, margin+DisplayHeight),
		focus:   focusField,
		grabbed: noGrab,
		dirty:   true,
	}

	gridW := Cols*ButtonSize + (Cols-1)*spacing
	gridH := Rows*ButtonSize + (Rows-1)*spacing
	left := (WindowSize - gridW) / 2
	top := w.field.Max.Y + (WindowSize-w.field.Max.Y-gridH)/2

	for _, k := range Keys() {
		x := left + k.Col()*(ButtonSize+spacing)
		y := top + k.Row()*(ButtonSize+spacing)
		w.buttons[k] = Button{
			key:    k,
			bounds: image.Rect(x, y, x+ButtonSize, y+ButtonSize),
		}
	}
	return w
}

// SetDisplayText replaces the display text and gives the field input focus,
// so the next Enter press reaches OnReturnPressed handlers.
func (w *Window) SetDisplayText(text string) {
	w.text = text
	w.setFocus(focusField)
	w.dirty = true
}

func (w *Window) DisplayText() string { return w.text }

func (w *Window) ClearDisplay() { w.SetDisplayText("") }

// Buttons returns the keypad buttons in layout order.
func (w *Window) Buttons() []*Button {
	out := make([]*Button, 0, keyCount)
	for i := range w.buttons {
		out = append(out, &w.buttons[i])
	}
	return out
}

// Button returns the button for k, or nil for an unknown key.
func (w *Window) Button(k Key) *Button {
	if k >= keyCount {
		return nil
	}
	return &w.buttons[k]
}

// OnReturnPressed registers fn to run when Enter is pressed in the field.
func (w *Window) OnReturnPressed(fn func()) {
	if fn == nil {
		return
	}
	w.onReturn = append(w.onReturn, fn)
}

// FieldBounds returns the display field rectangle.
func (w *Window) FieldBounds() image.Rectangle { return w.field }

// FieldFocused reports whether the display field has input focus.
func (w *Window) FieldFocused() bool { return w.focus == focusField }

// Dirty reports whether the window changed since the last Render.
func (w *Window) Dirty() bool { return w.dirty }

func (w *Window) Invalidate() { w.dirty = true }

// HandleKey dispatches a keyboard event. Only Enter is meaningful, and only
// while the field has focus.
func (w *Window) HandleKey(ev hal.KeyEvent) {
	if !ev.Press || ev.Code != hal.KeyEnter {
		return
	}
	if w.focus != focusField {
		return
	}
	for _, fn := range w.onReturn {
		fn()
	}
}

// HandlePointer dispatches a pointer event. A button clicks when released
// over the same button it was pressed on.
func (w *Window) HandlePointer(ev hal.PointerEvent) {
	pt := image.Pt(ev.X, ev.Y)

	switch ev.Kind {
	case hal.PointerPress:
		if k, ok := w.keyAt(pt); ok {
			w.grabbed = int(k)
			w.buttons[k].down = true
			w.setFocus(int(k))
			w.dirty = true
			return
		}
		if pt.In(w.field) {
			w.setFocus(focusField)
		}

	case hal.PointerMove:
		if w.grabbed == noGrab {
			return
		}
		b := &w.buttons[w.grabbed]
		if down := pt.In(b.bounds); down != b.down {
			b.down = down
			w.dirty = true
		}

	case hal.PointerRelease:
		if w.grabbed == noGrab {
			return
		}
		b := &w.buttons[w.grabbed]
		w.grabbed = noGrab
		b.down = false
		w.dirty = true
		if pt.In(b.bounds) {
			b.Click()
		}
	}
}

func (w *Window) keyAt(pt image.Point) (Key, bool) {
	for i := range w.buttons {
		if pt.In(w.buttons[i].bounds) {
			return Key(i), true
		}
	}
	return 0, false
}

func (w *Window) setFocus(f int) {
	if w.focus == f {
		return
	}
	w.focus = f
	w.dirty = true
}

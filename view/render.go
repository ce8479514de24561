package view

// This file draws the window into a framebuffer.

import (
	"image"
	"image/color"

	"calc/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	colorBG         = color.RGBA{R: 0x1C, G: 0x1C, B: 0x1C, A: 0xFF}
	colorFieldBG    = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorFG         = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorBorder     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorFocus      = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorButtonBG   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	colorOperatorBG = color.RGBA{R: 0x2A, G: 0x3A, B: 0x4A, A: 0xFF}
	colorClearBG    = color.RGBA{R: 0x5A, G: 0x2A, B: 0x2A, A: 0xFF}
	colorEqualsBG   = color.RGBA{R: 0x2A, G: 0x5A, B: 0x3A, A: 0xFF}
	colorButtonDown = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xFF}
)

const fieldPadding = 4

var (
	fieldFont  tinyfont.Fonter = &freemono.Bold12pt7b
	buttonFont tinyfont.Fonter = &freemono.Bold9pt7b
)

// Render draws the whole window and presents the frame. It reports whether
// anything was drawn.
func (w *Window) Render(fb hal.Framebuffer) bool {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return false
	}
	d := newFBDisplay(fb)

	d.fillRect(image.Rect(0, 0, fb.Width(), fb.Height()), colorBG)
	w.drawField(d)
	for i := range w.buttons {
		w.drawButton(d, &w.buttons[i], w.focus == i)
	}

	w.dirty = false
	_ = d.Display()
	return true
}

func (w *Window) drawField(d *fbDisplay) {
	d.fillRect(w.field, colorFieldBG)
	if w.focus == focusField {
		d.strokeRect(w.field, colorFocus)
	} else {
		d.strokeRect(w.field, colorBorder)
	}

	inner := w.field.Inset(fieldPadding)
	s := visibleTail(fieldFont, w.text, inner.Dx())
	if s == "" {
		return
	}
	_, width := tinyfont.LineWidth(fieldFont, s)
	x := inner.Max.X - int(width)
	y := baseline(fieldFont, w.field)
	tinyfont.WriteLine(d.withClip(inner), fieldFont, int16(x), int16(y), s, colorFG)
}

func (w *Window) drawButton(d *fbDisplay, b *Button, focused bool) {
	bg := buttonColor(b.key)
	if b.down {
		bg = colorButtonDown
	}
	d.fillRect(b.bounds, bg)
	if focused {
		d.strokeRect(b.bounds, colorFocus)
	} else {
		d.strokeRect(b.bounds, colorBorder)
	}

	label := b.Label()
	_, width := tinyfont.LineWidth(buttonFont, label)
	x := b.bounds.Min.X + (b.bounds.Dx()-int(width))/2
	y := baseline(buttonFont, b.bounds)
	tinyfont.WriteLine(d.withClip(b.bounds), buttonFont, int16(x), int16(y), label, colorFG)
}

func buttonColor(k Key) color.RGBA {
	switch k {
	case KeyClear:
		return colorClearBG
	case KeyEquals:
		return colorEqualsBG
	case KeyDivide, KeyMultiply, KeyMinus, KeyPlus, KeyLParen, KeyRParen:
		return colorOperatorBG
	default:
		return colorButtonBG
	}
}

// baseline returns the y coordinate that vertically centres a digit of f in r.
func baseline(f tinyfont.Fonter, r image.Rectangle) int {
	info := f.GetGlyph('0').Info()
	top := r.Min.Y + (r.Dy()-int(info.Height))/2
	return top - int(info.YOffset)
}

// visibleTail returns the longest suffix of s that fits in width pixels, so
// an overlong expression shows its most recent input.
func visibleTail(f tinyfont.Fonter, s string, width int) string {
	rs := []rune(s)
	for i := 0; i <= len(rs); i++ {
		tail := string(rs[i:])
		if _, w := tinyfont.LineWidth(f, tail); int(w) <= width {
			return tail
		}
	}
	return ""
}

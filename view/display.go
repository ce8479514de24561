package view

import (
	"image"
	"image/color"

	"calc/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay adapts a framebuffer to drivers.Displayer for tinyfont, dropping
// pixels outside clip.
type fbDisplay struct {
	fb   hal.Framebuffer
	clip image.Rectangle
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	d := &fbDisplay{fb: fb}
	if fb != nil {
		d.clip = image.Rect(0, 0, fb.Width(), fb.Height())
	}
	return d
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	if !image.Pt(int(x), int(y)).In(d.clip) {
		return
	}
	hal.SetPixel(d.fb, int(x), int(y), c)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// withClip returns a copy of d limited to r.
func (d *fbDisplay) withClip(r image.Rectangle) *fbDisplay {
	return &fbDisplay{fb: d.fb, clip: d.clip.Intersect(r)}
}

func (d *fbDisplay) fillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(d.clip)
	hal.FillRect(d.fb, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, c)
}

// strokeRect draws a 1px outline just inside r.
func (d *fbDisplay) strokeRect(r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	d.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	d.fillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	d.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	d.fillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

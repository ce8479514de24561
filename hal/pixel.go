package hal

import "image/color"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// FillRect fills the clipped rectangle [x0,x1)x[y0,y1) of an RGB565 framebuffer.
func FillRect(fb Framebuffer, x0, y0, x1, y1 int, c color.RGBA) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}

	x0, x1 = clamp(x0, 0, fb.Width()), clamp(x1, 0, fb.Width())
	y0, y1 = clamp(y0, 0, fb.Height()), clamp(y1, 0, fb.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := rgb565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := fb.StrideBytes()
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := x0; x < x1; x++ {
			off := row + x*2
			if off+1 >= len(buf) {
				return
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// SetPixel writes one pixel of an RGB565 framebuffer; out-of-range writes are dropped.
func SetPixel(fb Framebuffer, x, y int, c color.RGBA) {
	FillRect(fb, x, y, x+1, y+1, c)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

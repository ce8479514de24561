package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	seq    uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present marks the current buffer content as a new frame.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// snapshotRGB565 copies the buffer if a frame was presented after seq and
// returns the presented frame's sequence number.
func (f *hostFramebuffer) snapshotRGB565(dst []byte, seq uint64) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seq == seq {
		return seq, false
	}
	copy(dst, f.buf)
	return f.seq, true
}

// PixelRGB returns the color at (x, y), for tests and headless inspection.
func (h *Host) PixelRGB(x, y int) (r, g, b uint8) {
	f := h.fb
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*2
	return rgb888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

// Frames returns how many frames were presented.
func (h *Host) Frames() uint64 {
	h.fb.mu.Lock()
	defer h.fb.mu.Unlock()
	return h.fb.seq
}

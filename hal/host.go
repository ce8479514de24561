package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Host is the desktop HAL: an in-memory framebuffer, a stdout logger and
// input queues fed by the window backend (or by InjectKey/InjectPointer).
type Host struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
}

// NewHost returns a host HAL with a width x height framebuffer.
func NewHost(width, height int) *Host {
	return &Host{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
	}
}

func (h *Host) Logger() Logger   { return h.logger }
func (h *Host) Display() Display { return hostDisplay{fb: h.fb} }
func (h *Host) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

// SetLogOutput redirects log lines.
func (h *Host) SetLogOutput(w io.Writer) {
	h.logger.mu.Lock()
	defer h.logger.mu.Unlock()
	h.logger.w = w
}

// InjectKey queues a key event as if it came from the window backend.
// It reports false if the queue is full.
func (h *Host) InjectKey(ev KeyEvent) bool {
	select {
	case h.kbd.ch <- ev:
		return true
	default:
		return false
	}
}

// InjectPointer queues a pointer event as if it came from the window backend.
// It reports false if the queue is full.
func (h *Host) InjectPointer(ev PointerEvent) bool {
	select {
	case h.ptr.ch <- ev:
		return true
	default:
		return false
	}
}

// Tap queues a press and a release at (x, y).
func (h *Host) Tap(x, y int) bool {
	return h.InjectPointer(PointerEvent{Kind: PointerPress, X: x, Y: y}) &&
		h.InjectPointer(PointerEvent{Kind: PointerRelease, X: x, Y: y})
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

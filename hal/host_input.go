//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	// Only Enter is forwarded; the display is read-only to typing.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		emit(KeyEnter, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) || inpututil.IsKeyJustReleased(ebiten.KeyNumpadEnter) {
		emit(KeyEnter, false)
	}
}

type hostPointer struct {
	ch chan PointerEvent

	down    bool
	touch   ebiten.TouchID
	touched bool
	lastX   int
	lastY   int

	touchIDs []ebiten.TouchID
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(kind PointerKind, x, y int) {
	p.lastX, p.lastY = x, y
	select {
	case p.ch <- PointerEvent{Kind: kind, X: x, Y: y}:
	default:
	}
}

func (p *hostPointer) poll() {
	if p.touched {
		p.pollTouch()
		return
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if !p.down && len(p.touchIDs) > 0 {
		p.touch = p.touchIDs[0]
		p.touched = true
		p.down = true
		x, y := ebiten.TouchPosition(p.touch)
		p.emit(PointerPress, x, y)
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.down = true
		p.emit(PointerPress, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.down = false
		p.emit(PointerRelease, x, y)
	case p.down && (x != p.lastX || y != p.lastY):
		p.emit(PointerMove, x, y)
	}
}

func (p *hostPointer) pollTouch() {
	if inpututil.IsTouchJustReleased(p.touch) {
		p.touched = false
		p.down = false
		x, y := inpututil.TouchPositionInPreviousTick(p.touch)
		p.emit(PointerRelease, x, y)
		return
	}
	x, y := ebiten.TouchPosition(p.touch)
	if x != p.lastX || y != p.lastY {
		p.emit(PointerMove, x, y)
	}
}

package app

import (
	"calc/controller"
	"calc/eval"
	"calc/hal"
	"calc/internal/buildinfo"
	"calc/view"
)

type Config struct {
	// Trace logs every evaluation.
	Trace bool
}

type system struct {
	log  hal.Logger
	fb   hal.Framebuffer
	keys <-chan hal.KeyEvent
	ptr  <-chan hal.PointerEvent

	win *view.Window
	ctl *controller.Controller

	panicked bool
}

// New builds the calculator with default config and returns its per-frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{log: h.Logger()}

	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
		if p := in.Pointer(); p != nil {
			s.ptr = p.Events()
		}
	}

	s.win = view.NewWindow()
	var trace hal.Logger
	if cfg.Trace {
		trace = s.log
	}
	s.ctl = controller.New(eval.Evaluate, s.win, trace)

	s.logf("calc: start %s", buildinfo.String())
	return s
}

// step drains pending input, dispatches it to the window and redraws if needed.
// It never blocks.
func (s *system) step() error {
	if s.panicked {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			s.fail(r)
		}
	}()

	for {
		select {
		case ev := <-s.keys:
			s.win.HandleKey(ev)
			continue
		case ev := <-s.ptr:
			s.win.HandlePointer(ev)
			continue
		default:
		}
		break
	}

	if s.fb != nil && s.win.Dirty() {
		s.win.Render(s.fb)
	}
	return nil
}

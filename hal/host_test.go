package hal

import (
	"bytes"
	"context"
	"testing"
)

func TestHostInjectQueuesEvents(t *testing.T) {
	h := NewHost(10, 10)
	if !h.Tap(3, 4) {
		t.Fatal("Tap: queue full")
	}
	if !h.InjectKey(KeyEvent{Code: KeyEnter, Press: true}) {
		t.Fatal("InjectKey: queue full")
	}

	ptr := h.Input().Pointer().Events()
	if ev := <-ptr; ev.Kind != PointerPress || ev.X != 3 || ev.Y != 4 {
		t.Fatalf("first pointer event = %+v, want press at (3,4)", ev)
	}
	if ev := <-ptr; ev.Kind != PointerRelease {
		t.Fatalf("second pointer event = %+v, want release", ev)
	}
	if ev := <-h.Input().Keyboard().Events(); ev.Code != KeyEnter || !ev.Press {
		t.Fatalf("key event = %+v, want Enter press", ev)
	}
}

func TestHostInjectFullQueue(t *testing.T) {
	h := NewHost(1, 1)
	for i := 0; i < cap(h.kbd.ch); i++ {
		if !h.InjectKey(KeyEvent{Code: KeyEnter, Press: true}) {
			t.Fatalf("InjectKey failed at %d", i)
		}
	}
	if h.InjectKey(KeyEvent{Code: KeyEnter, Press: true}) {
		t.Fatal("expected InjectKey to report a full queue")
	}
}

func TestHostLogger(t *testing.T) {
	h := NewHost(1, 1)
	var buf bytes.Buffer
	h.SetLogOutput(&buf)

	h.Logger().WriteLineString("calc: a")
	h.Logger().WriteLineBytes([]byte("calc: b"))

	if got, want := buf.String(), "calc: a\ncalc: b\n"; got != want {
		t.Fatalf("log output = %q, want %q", got, want)
	}
}

func TestFramebufferSnapshotOnlyAfterPresent(t *testing.T) {
	h := NewHost(2, 1)
	dst := make([]byte, len(h.fb.buf))

	if _, ok := h.fb.snapshotRGB565(dst, 0); ok {
		t.Fatal("expected no snapshot before Present")
	}
	h.fb.ClearRGB(255, 255, 255)
	_ = h.fb.Present()

	seq, ok := h.fb.snapshotRGB565(dst, 0)
	if !ok || seq != 1 {
		t.Fatalf("snapshot = (%d,%v), want (1,true)", seq, ok)
	}
	if dst[0] != 0xFF || dst[1] != 0xFF {
		t.Fatalf("snapshot pixel = %x %x, want ff ff", dst[0], dst[1])
	}
	if _, ok := h.fb.snapshotRGB565(dst, seq); ok {
		t.Fatal("expected no snapshot for an already seen frame")
	}
	if h.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", h.Frames())
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{})
	if err != context.Canceled {
		t.Fatalf("RunHeadless err = %v, want context.Canceled", err)
	}
}

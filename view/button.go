package view

import "image"

// Button is one keypad push-button.
type Button struct {
	key     Key
	bounds  image.Rectangle
	down    bool
	onClick []func()
}

func (b *Button) Key() Key                { return b.key }
func (b *Button) Label() string           { return b.key.Label() }
func (b *Button) Bounds() image.Rectangle { return b.bounds }

// Down reports whether the button is drawn pressed.
func (b *Button) Down() bool { return b.down }

// OnClick registers fn to run when the button is clicked.
func (b *Button) OnClick(fn func()) {
	if fn == nil {
		return
	}
	b.onClick = append(b.onClick, fn)
}

// Click runs the click handlers in registration order.
func (b *Button) Click() {
	for _, fn := range b.onClick {
		fn()
	}
}

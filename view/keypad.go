package view

// Key identifies one keypad button. Keys are declared in row-major grid
// order, so the enumeration is the layout table.
type Key uint8

const (
	Key7 Key = iota
	Key8
	Key9
	KeyDivide
	KeyClear

	Key4
	Key5
	Key6
	KeyMultiply
	KeyLParen

	Key1
	Key2
	Key3
	KeyMinus
	KeyRParen

	Key0
	Key00
	KeyPoint
	KeyPlus
	KeyEquals

	keyCount
)

const (
	Rows = 4
	Cols = 5
)

var keyLabels = [keyCount]string{
	"7", "8", "9", "/", "C",
	"4", "5", "6", "*", "(",
	"1", "2", "3", "-", ")",
	"0", "00", ".", "+", "=",
}

// Label returns the text on the key. It is also the text the key appends.
func (k Key) Label() string {
	if k >= keyCount {
		return ""
	}
	return keyLabels[k]
}

func (k Key) Row() int { return int(k) / Cols }
func (k Key) Col() int { return int(k) % Cols }

func (k Key) String() string { return k.Label() }

// Keys returns every key in layout order.
func Keys() []Key {
	out := make([]Key, keyCount)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}

// KeyForLabel finds the key showing label.
func KeyForLabel(label string) (Key, bool) {
	for i, l := range keyLabels {
		if l == label {
			return Key(i), true
		}
	}
	return 0, false
}

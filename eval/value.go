package eval

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	ErrParse          = errors.New("parse error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
	// ErrDomain is returned when a result has no real value, e.g. (-8)**0.5.
	ErrDomain = errors.New("math domain error")
)

type valueKind uint8

const (
	valueInt valueKind = iota
	valueFloat
)

// Value is the result of an evaluation: an exact integer or a float.
type Value struct {
	kind valueKind
	i    int64
	f    float64
}

func Int(n int64) Value { return Value{kind: valueInt, i: n} }

func Float(f float64) Value { return Value{kind: valueFloat, f: f} }

func (v Value) IsInt() bool { return v.kind == valueInt }

func (v Value) IsFloat() bool { return v.kind == valueFloat }

// Int64 returns the integer value. It is only meaningful when IsInt is true.
func (v Value) Int64() int64 { return v.i }

func (v Value) Float64() float64 {
	if v.kind == valueInt {
		return float64(v.i)
	}
	return v.f
}

func (v Value) String() string {
	if v.kind == valueInt {
		return formatInt(v.i)
	}
	return formatFloat(v.f)
}

func neg(x Value) (Value, error) {
	if x.kind == valueFloat {
		return Float(-x.f), nil
	}
	if x.i == math.MinInt64 {
		return Value{}, fmt.Errorf("%w: -(%d)", ErrOverflow, x.i)
	}
	return Int(-x.i), nil
}

func add(a, b Value) (Value, error) {
	if a.kind == valueInt && b.kind == valueInt {
		s := a.i + b.i
		if (s > a.i) != (b.i > 0) {
			return Value{}, fmt.Errorf("%w: %d + %d", ErrOverflow, a.i, b.i)
		}
		return Int(s), nil
	}
	return Float(a.Float64() + b.Float64()), nil
}

func sub(a, b Value) (Value, error) {
	if a.kind == valueInt && b.kind == valueInt {
		d := a.i - b.i
		if (d < a.i) != (b.i > 0) {
			return Value{}, fmt.Errorf("%w: %d - %d", ErrOverflow, a.i, b.i)
		}
		return Int(d), nil
	}
	return Float(a.Float64() - b.Float64()), nil
}

func mul(a, b Value) (Value, error) {
	if a.kind == valueInt && b.kind == valueInt {
		p, ok := mulInt(a.i, b.i)
		if !ok {
			return Value{}, fmt.Errorf("%w: %d * %d", ErrOverflow, a.i, b.i)
		}
		return Int(p), nil
	}
	return Float(a.Float64() * b.Float64()), nil
}

// div is true division: the result is always a float.
func div(a, b Value) (Value, error) {
	d := b.Float64()
	if d == 0 {
		return Value{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, a, b)
	}
	return Float(a.Float64() / d), nil
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b Value) (Value, error) {
	if a.kind == valueInt && b.kind == valueInt {
		if b.i == 0 {
			return Value{}, fmt.Errorf("%w: %d // 0", ErrDivisionByZero, a.i)
		}
		if a.i == math.MinInt64 && b.i == -1 {
			return Value{}, fmt.Errorf("%w: %d // -1", ErrOverflow, a.i)
		}
		q := a.i / b.i
		if (a.i%b.i != 0) && ((a.i < 0) != (b.i < 0)) {
			q--
		}
		return Int(q), nil
	}

	x, y := a.Float64(), b.Float64()
	if y == 0 {
		return Value{}, fmt.Errorf("%w: %s // %s", ErrDivisionByZero, a, b)
	}
	mod := math.Mod(x, y)
	q := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		q -= 1
	}
	if q == 0 {
		return Float(math.Copysign(0, x/y)), nil
	}
	fq := math.Floor(q)
	if q-fq > 0.5 {
		fq += 1
	}
	return Float(fq), nil
}

func pow(a, b Value) (Value, error) {
	if a.kind == valueInt && b.kind == valueInt && b.i >= 0 {
		p, ok := powInt(a.i, b.i)
		if !ok {
			return Value{}, fmt.Errorf("%w: %d ** %d", ErrOverflow, a.i, b.i)
		}
		return Int(p), nil
	}

	x, y := a.Float64(), b.Float64()
	if x == 0 && y < 0 {
		return Value{}, fmt.Errorf("%w: %s ** %s", ErrDivisionByZero, a, b)
	}
	if x < 0 && !math.IsInf(x, 0) && y != math.Trunc(y) && !math.IsInf(y, 0) && !math.IsNaN(y) {
		return Value{}, fmt.Errorf("%w: %s ** %s", ErrDomain, a, b)
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return Value{}, fmt.Errorf("%w: %s ** %s", ErrOverflow, a, b)
	}
	return Float(r), nil
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

func powInt(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r, ok := mulInt(result, base)
			if !ok {
				return 0, false
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		b, ok := mulInt(base, base)
		if !ok {
			return 0, false
		}
		base = b
	}
	return result, true
}

func absU64(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

package eval

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.0"},
		{in: math.Copysign(0, -1), want: "-0.0"},
		{in: 1, want: "1.0"},
		{in: -2.5, want: "-2.5"},
		{in: 15, want: "15.0"},
		{in: 0.1, want: "0.1"},
		{in: 0.0001, want: "0.0001"},
		{in: 0.00001, want: "1e-05"},
		{in: 0.000015, want: "1.5e-05"},
		{in: 1e15, want: "1000000000000000.0"},
		{in: 1e16, want: "1e+16"},
		{in: 1.5e16, want: "1.5e+16"},
		{in: 1e100, want: "1e+100"},
		{in: 123456.789, want: "123456.789"},
		{in: math.Inf(1), want: "inf"},
		{in: math.Inf(-1), want: "-inf"},
		{in: math.NaN(), want: "nan"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Fatalf("formatFloat(%v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"2e+16", "1.5e-05", "0.30000000000000004", "1000000000000000.0", "-3.5"} {
		v, err := Eval(in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", in, err)
		}
		if got := v.String(); got != in {
			t.Fatalf("Eval(%q).String()=%q, want %q", in, got, in)
		}
	}
}

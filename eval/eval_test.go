package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/Knetic/govaluate"
)

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "7+8", want: "15"},
		{in: "5/0", want: ErrorMsg},
		{in: "(1+2)*3", want: "9"},
		{in: "9", want: "9"},
		{in: "12.5", want: "12.5"},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.in); got != tt.want {
			t.Fatalf("Evaluate(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvaluate_Arithmetic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1+2*3", want: "7"},
		{in: "(1+2)*3", want: "9"},
		{in: "10-4-3", want: "3"},
		{in: "8/2", want: "4.0"},
		{in: "7/2", want: "3.5"},
		{in: "1/3", want: "0.3333333333333333"},
		{in: "0.1+0.2", want: "0.30000000000000004"},
		{in: "1.5+1.5", want: "3.0"},
		{in: "2*3.0", want: "6.0"},
		{in: "-5", want: "-5"},
		{in: "--5", want: "5"},
		{in: "+5", want: "5"},
		{in: "5--3", want: "8"},
		{in: "3*-2", want: "-6"},
		{in: "((2))", want: "2"},
		{in: " 1 + 1 ", want: "2"},
		{in: "100", want: "100"},
		{in: "00", want: "0"},
		{in: "000+7", want: "7"},
		{in: "00.5", want: "0.5"},
		{in: ".5", want: "0.5"},
		{in: "5.", want: "5.0"},
		{in: "1e+16*2", want: "2e+16"},
		{in: "1e3", want: "1000.0"},
		{in: "2.5E-3", want: "0.0025"},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.in); got != tt.want {
			t.Fatalf("Evaluate(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvaluate_PowerAndFloorDivision(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2**10", want: "1024"},
		{in: "2**3**2", want: "512"},
		{in: "-2**2", want: "-4"},
		{in: "(-2)**2", want: "4"},
		{in: "2**-1", want: "0.5"},
		{in: "4**0.5", want: "2.0"},
		{in: "0**0", want: "1"},
		{in: "7//2", want: "3"},
		{in: "-7//2", want: "-4"},
		{in: "7//-2", want: "-4"},
		{in: "7.5//2", want: "3.0"},
		{in: "-7.5//2", want: "-4.0"},
		{in: "1//3.0", want: "0.0"},
		{in: "-1//3.0", want: "-1.0"},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.in); got != tt.want {
			t.Fatalf("Evaluate(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{in: "", wantErr: ErrParse},
		{in: "   ", wantErr: ErrParse},
		{in: "(1+2", wantErr: ErrParse},
		{in: "1+2)", wantErr: ErrParse},
		{in: "()", wantErr: ErrParse},
		{in: "5+", wantErr: ErrParse},
		{in: "*5", wantErr: ErrParse},
		{in: "5***2", wantErr: ErrParse},
		{in: "1..2", wantErr: ErrParse},
		{in: "1.2.3", wantErr: ErrParse},
		{in: ".", wantErr: ErrParse},
		{in: "007", wantErr: ErrParse},
		{in: "0012", wantErr: ErrParse},
		{in: "2(3)", wantErr: ErrParse},
		{in: "(1)(2)", wantErr: ErrParse},
		{in: "1e", wantErr: ErrParse},
		{in: "x+1", wantErr: ErrParse},
		{in: "ERROR9", wantErr: ErrParse},
		{in: "__import__('os')", wantErr: ErrParse},
		{in: "inf", wantErr: ErrParse},
		{in: "5/0", wantErr: ErrDivisionByZero},
		{in: "5.0/0.0", wantErr: ErrDivisionByZero},
		{in: "0/0", wantErr: ErrDivisionByZero},
		{in: "5//0", wantErr: ErrDivisionByZero},
		{in: "5.5//0", wantErr: ErrDivisionByZero},
		{in: "0**-1", wantErr: ErrDivisionByZero},
		{in: "(-8)**0.5", wantErr: ErrDomain},
		{in: "10.0**400", wantErr: ErrOverflow},
		{in: "2**63", wantErr: ErrOverflow},
		{in: "9223372036854775807+1", wantErr: ErrOverflow},
		{in: "99999999999999999999", wantErr: ErrOverflow},
		{in: "3037000500*3037000500", wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		_, err := Eval(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("Eval(%q) err=%v, want %v", tt.in, err, tt.wantErr)
		}
		if got := Evaluate(tt.in); got != ErrorMsg {
			t.Fatalf("Evaluate(%q)=%q, want %q", tt.in, got, ErrorMsg)
		}
	}
}

func TestEval_IntegerBounds(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "9223372036854775807", want: math.MaxInt64},
		{in: "-9223372036854775807-1", want: math.MinInt64},
		{in: "2**62", want: 1 << 62},
		{in: "(-2)**63", want: math.MinInt64},
		{in: "-3037000499*3037000499", want: -9223372030926249001},
	}

	for _, tt := range tests {
		v, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if !v.IsInt() || v.Int64() != tt.want {
			t.Fatalf("Eval(%q)=%v, want int %d", tt.in, v, tt.want)
		}
	}
}

func TestEval_FloatOverflowIsInfinite(t *testing.T) {
	if got := Evaluate("1e308*10"); got != "inf" {
		t.Fatalf("Evaluate(1e308*10)=%q, want inf", got)
	}
	if got := Evaluate("-1e308*10"); got != "-inf" {
		t.Fatalf("Evaluate(-1e308*10)=%q, want -inf", got)
	}
	if got := Evaluate("1e400"); got != "inf" {
		t.Fatalf("Evaluate(1e400)=%q, want inf", got)
	}
}

// TestEval_MatchesReferenceEvaluator cross-checks plain arithmetic against an
// independent evaluator.
func TestEval_MatchesReferenceEvaluator(t *testing.T) {
	exprs := []string{
		"7+8",
		"(1+2)*3",
		"1+2*3-4/5",
		"((1.5+2.25)*4)/3",
		"12.5*8-0.125",
		"100/7",
		"(3-10)*(2+0.5)",
		"1/3+1/3+1/3",
		"2**10/3",
		"9-(8-(7-(6-5)))",
		"0.1*0.1",
		"123456789*9",
		"(4+5)/(2-0.5)",
	}

	for _, in := range exprs {
		ref, err := govaluate.NewEvaluableExpression(in)
		if err != nil {
			t.Fatalf("reference parse %q: %v", in, err)
		}
		rv, err := ref.Evaluate(nil)
		if err != nil {
			t.Fatalf("reference eval %q: %v", in, err)
		}
		want, ok := rv.(float64)
		if !ok {
			t.Fatalf("reference eval %q: got %T, want float64", in, rv)
		}

		v, err := Eval(in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", in, err)
		}
		got := v.Float64()
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("Eval(%q)=%v, reference=%v", in, got, want)
		}
	}
}

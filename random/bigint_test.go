package random

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big integer literal %q", s)
	}
	return v
}

func TestGeneratorBigInt_Range(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
	}{
		{name: "small", min: "0", max: "9"},
		{name: "beyond int64", min: "0", max: "123456789012345678901234567890"},
		{name: "negative range", min: "-987654321098765432109876543210", max: "-10"},
		{name: "spanning zero", min: "-1000000000000000000000", max: "1000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(42)
			min := mustBig(t, tt.min)
			max := mustBig(t, tt.max)

			for i := 0; i < 100; i++ {
				v, err := g.BigInt(min, max)
				if err != nil {
					t.Fatalf("BigInt() error = %v", err)
				}
				if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
					t.Fatalf("BigInt() = %s, out of [%s, %s]", v, min, max)
				}
			}
		})
	}
}

func TestGeneratorBigInt_Degenerate(t *testing.T) {
	g := New(42)
	min := mustBig(t, "123456789012345678901234567890")
	max := mustBig(t, "123456789012345678901234567890")

	v, err := g.BigInt(min, max)
	if err != nil {
		t.Fatalf("BigInt() error = %v", err)
	}
	if v.Cmp(min) != 0 {
		t.Errorf("BigInt() = %s, want %s", v, min)
	}
	if got := g.Source().Draws(); got != 0 {
		t.Errorf("degenerate BigInt consumed %d draws, want 0", got)
	}

	// The result is a copy; mutating it must not reach the caller's bound.
	v.Add(v, big.NewInt(1))
	if min.Cmp(max) != 0 {
		t.Errorf("mutating the result changed the min bound to %s", min)
	}
}

func TestGeneratorBigInt_RangeError(t *testing.T) {
	g := New(42)
	min := mustBig(t, "100")
	max := mustBig(t, "-100")

	_, err := g.BigInt(min, max)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("BigInt(100, -100) error = %v, want *RangeError", err)
	}
	if !strings.Contains(err.Error(), "100") || !strings.Contains(err.Error(), "-100") {
		t.Errorf("error %q does not carry both bounds", err.Error())
	}
	if got := g.Source().Draws(); got != 0 {
		t.Errorf("failed call consumed %d draws, want 0", got)
	}
}

func TestGeneratorBigInt_BoundsUntouched(t *testing.T) {
	g := New(42)
	min := mustBig(t, "-500")
	max := mustBig(t, "12345678901234567890")
	wantMin, wantMax := min.String(), max.String()

	for i := 0; i < 20; i++ {
		if _, err := g.BigInt(min, max); err != nil {
			t.Fatalf("BigInt() error = %v", err)
		}
	}

	if min.String() != wantMin || max.String() != wantMax {
		t.Errorf("bounds mutated: min %s, max %s", min, max)
	}
}

func TestGeneratorBigInt_Determinism(t *testing.T) {
	min := mustBig(t, "-99999999999999999999")
	max := mustBig(t, "99999999999999999999")

	a := New(7)
	b := New(7)
	for i := 0; i < 100; i++ {
		va, err := a.BigInt(min, max)
		if err != nil {
			t.Fatalf("BigInt() error = %v", err)
		}
		vb, err := b.BigInt(min, max)
		if err != nil {
			t.Fatalf("BigInt() error = %v", err)
		}
		if va.Cmp(vb) != 0 {
			t.Fatalf("call %d differs: %s vs %s", i, va, vb)
		}
	}
}

func TestGeneratorUniformBigInt_Range(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
	}{
		{name: "single bit", min: "0", max: "1"},
		{name: "power of two width", min: "0", max: "1023"},
		{name: "beyond int64", min: "1", max: "340282366920938463463374607431768211456"},
		{name: "negative", min: "-1000000", max: "-999990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(42)
			min := mustBig(t, tt.min)
			max := mustBig(t, tt.max)

			for i := 0; i < 100; i++ {
				v, err := g.UniformBigInt(min, max)
				if err != nil {
					t.Fatalf("UniformBigInt() error = %v", err)
				}
				if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
					t.Fatalf("UniformBigInt() = %s, out of [%s, %s]", v, min, max)
				}
			}
		})
	}
}

func TestGeneratorUniformBigInt_RangeError(t *testing.T) {
	g := New(42)

	_, err := g.UniformBigInt(big.NewInt(5), big.NewInt(4))
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("UniformBigInt(5, 4) error = %v, want *RangeError", err)
	}
}

func TestGeneratorUniformBigInt_Determinism(t *testing.T) {
	min := mustBig(t, "0")
	max := mustBig(t, "123456789012345678901234567890123456789")

	a := New(31337)
	b := New(31337)
	for i := 0; i < 100; i++ {
		va, err := a.UniformBigInt(min, max)
		if err != nil {
			t.Fatalf("UniformBigInt() error = %v", err)
		}
		vb, err := b.UniformBigInt(min, max)
		if err != nil {
			t.Fatalf("UniformBigInt() error = %v", err)
		}
		if va.Cmp(vb) != 0 {
			t.Fatalf("call %d differs: %s vs %s", i, va, vb)
		}
	}
}

func TestGeneratorUniformBigInt_SmallRangeCoverage(t *testing.T) {
	// Over a tiny range every value should eventually appear.
	g := New(42)
	min := big.NewInt(10)
	max := big.NewInt(13)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		v, err := g.UniformBigInt(min, max)
		if err != nil {
			t.Fatalf("UniformBigInt() error = %v", err)
		}
		seen[v.String()] = true
	}

	for _, want := range []string{"10", "11", "12", "13"} {
		if !seen[want] {
			t.Errorf("value %s never sampled", want)
		}
	}
}

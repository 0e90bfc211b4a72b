package random

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratorAlpha_Casing(t *testing.T) {
	tests := []struct {
		name    string
		casing  Casing
		allowed string
	}{
		{name: "lower", casing: CasingLower, allowed: "abcdefghijklmnopqrstuvwxyz"},
		{name: "upper", casing: CasingUpper, allowed: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{name: "mixed", casing: CasingMixed, allowed: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(42)
			s, err := g.Alpha(AlphaRequest{Length: 200, Casing: tt.casing})
			if err != nil {
				t.Fatalf("Alpha() error = %v", err)
			}
			if len(s) != 200 {
				t.Fatalf("Alpha() length = %d, want 200", len(s))
			}
			for _, r := range s {
				if !strings.ContainsRune(tt.allowed, r) {
					t.Fatalf("Alpha() produced %q outside %s alphabet", r, tt.name)
				}
			}
		})
	}
}

func TestGeneratorAlpha_MixedCoversBothCases(t *testing.T) {
	g := New(42)
	s, err := g.Alpha(AlphaRequest{Length: 500, Casing: CasingMixed})
	if err != nil {
		t.Fatalf("Alpha() error = %v", err)
	}

	if s == strings.ToLower(s) {
		t.Errorf("mixed casing produced no uppercase letters")
	}
	if s == strings.ToUpper(s) {
		t.Errorf("mixed casing produced no lowercase letters")
	}
}

func TestGeneratorAlpha_Banned(t *testing.T) {
	g := New(42)
	s, err := g.Alpha(AlphaRequest{
		Length: 5,
		Casing: CasingLower,
		Banned: []rune{'a', 'p'},
	})
	if err != nil {
		t.Fatalf("Alpha() error = %v", err)
	}
	if len(s) != 5 {
		t.Fatalf("Alpha() length = %d, want 5", len(s))
	}
	if strings.ContainsAny(s, "apAP") {
		t.Errorf("Alpha() = %q, contains banned characters", s)
	}
	if s != strings.ToLower(s) {
		t.Errorf("Alpha() = %q, expected lowercase only", s)
	}
}

func TestGeneratorAlpha_BannedDuplicates(t *testing.T) {
	g := New(42)
	s, err := g.Alpha(AlphaRequest{
		Length: 50,
		Casing: CasingLower,
		Banned: []rune{'x', 'x', 'x', 'y', 'y'},
	})
	if err != nil {
		t.Fatalf("Alpha() error = %v", err)
	}
	if strings.ContainsAny(s, "xy") {
		t.Errorf("Alpha() = %q, contains banned characters", s)
	}
}

func TestGeneratorAlpha_AllBanned(t *testing.T) {
	g := New(42)

	_, err := g.Alpha(AlphaRequest{
		Length: 5,
		Casing: CasingLower,
		Banned: []rune("abcdefghijklmnopqrstuvwxyz"),
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Alpha() error = %v, want *GenerationError", err)
	}
	if got := g.Source().Draws(); got != 0 {
		t.Errorf("failed call consumed %d draws, want 0", got)
	}
}

func TestGeneratorAlpha_EmptyLength(t *testing.T) {
	g := New(42)

	for _, length := range []int{0, -1, -100} {
		s, err := g.Alpha(AlphaRequest{Length: length})
		if err != nil {
			t.Fatalf("Alpha(length %d) error = %v", length, err)
		}
		if s != "" {
			t.Errorf("Alpha(length %d) = %q, want empty", length, s)
		}
	}
	if got := g.Source().Draws(); got != 0 {
		t.Errorf("empty requests consumed %d draws, want 0", got)
	}
}

func TestGeneratorAlpha_LengthClamp(t *testing.T) {
	g := New(42)

	s, err := g.Alpha(AlphaRequest{Length: 1 << 28, Casing: CasingLower})
	if err != nil {
		t.Fatalf("Alpha() error = %v", err)
	}
	if len(s) != MaxStringLength {
		t.Errorf("Alpha() length = %d, want clamp to %d", len(s), MaxStringLength)
	}
}

func TestGeneratorAlpha_BannedSliceUntouched(t *testing.T) {
	g := New(42)
	banned := []rune{'q', 'w', 'e'}

	if _, err := g.Alpha(AlphaRequest{Length: 30, Banned: banned}); err != nil {
		t.Fatalf("Alpha() error = %v", err)
	}

	if string(banned) != "qwe" {
		t.Errorf("banned slice mutated: %q", string(banned))
	}
}

func TestGeneratorHex(t *testing.T) {
	g := New(42)

	s, err := g.Hex(HexRequest{Length: 300})
	if err != nil {
		t.Fatalf("Hex() error = %v", err)
	}
	if len(s) != 300 {
		t.Fatalf("Hex() length = %d, want 300", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(hexDigits, r) {
			t.Fatalf("Hex() produced %q outside hex alphabet", r)
		}
	}

	// Both letter cases are candidates by default.
	if !strings.ContainsAny(s, "abcdef") {
		t.Errorf("Hex() = 300 chars with no lowercase letters")
	}
	if !strings.ContainsAny(s, "ABCDEF") {
		t.Errorf("Hex() = 300 chars with no uppercase letters")
	}
}

func TestGeneratorHex_Banned(t *testing.T) {
	g := New(42)

	s, err := g.Hex(HexRequest{Length: 100, Banned: []rune("abcdefABCDEF")})
	if err != nil {
		t.Fatalf("Hex() error = %v", err)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			t.Fatalf("Hex() = %q, expected decimal digits only", s)
		}
	}
}

func TestGeneratorHex_AllBanned(t *testing.T) {
	g := New(42)

	_, err := g.Hex(HexRequest{Length: 4, Banned: []rune(hexDigits)})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Hex() error = %v, want *GenerationError", err)
	}
}

func TestGeneratorAlpha_Determinism(t *testing.T) {
	req := AlphaRequest{Length: 64, Casing: CasingMixed, Banned: []rune{'O', 'l'}}

	a := New(2024)
	b := New(2024)
	for i := 0; i < 50; i++ {
		sa, err := a.Alpha(req)
		if err != nil {
			t.Fatalf("Alpha() error = %v", err)
		}
		sb, err := b.Alpha(req)
		if err != nil {
			t.Fatalf("Alpha() error = %v", err)
		}
		if sa != sb {
			t.Fatalf("call %d differs: %q vs %q", i, sa, sb)
		}
	}
}

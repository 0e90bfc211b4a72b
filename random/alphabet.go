package random

import "strings"

// Casing selects which letter case an alphabet offers.
type Casing int

const (
	// CasingMixed samples from lowercase and uppercase letters.
	CasingMixed Casing = iota
	// CasingLower samples from lowercase letters only.
	CasingLower
	// CasingUpper samples from uppercase letters only.
	CasingUpper
)

// String returns the lowercase name of the casing, for configs and logs.
func (c Casing) String() string {
	switch c {
	case CasingLower:
		return "lower"
	case CasingUpper:
		return "upper"
	default:
		return "mixed"
	}
}

const (
	// DefaultStringLength is applied by callers when a request leaves
	// the length unset.
	DefaultStringLength = 1

	// MaxStringLength caps any single sampled string. Longer requests
	// are clamped, not rejected, so a wild length cannot exhaust memory.
	MaxStringLength = 1 << 20
)

const (
	lowerLetters  = "abcdefghijklmnopqrstuvwxyz"
	upperLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	decimalDigits = "0123456789"

	// Hex strings mix both letter cases; casing filters do not apply.
	hexDigits = "0123456789abcdefABCDEF"
)

// AlphaRequest configures letter string sampling.
type AlphaRequest struct {
	// Length of the result. Zero or negative yields an empty string;
	// values above MaxStringLength are clamped.
	Length int

	// Casing restricts the candidate letters. The zero value samples
	// both cases.
	Casing Casing

	// Banned characters are removed from the candidate alphabet before
	// sampling. Duplicates are tolerated. The slice is only read.
	Banned []rune
}

// Alpha returns a string of letters drawn independently and uniformly, with
// replacement, from the alphabet left after casing and ban filtering.
//
// Returns *GenerationError when the filters ban every candidate letter. The
// check runs before any draw, so a failing call never produces partial
// output and never advances the stream.
func (g *Generator) Alpha(req AlphaRequest) (string, error) {
	var base string
	switch req.Casing {
	case CasingLower:
		base = lowerLetters
	case CasingUpper:
		base = upperLetters
	default:
		base = lowerLetters + upperLetters
	}
	alphabet := effectiveAlphabet(base, req.Banned)
	if len(alphabet) == 0 {
		return "", newGenerationError("all candidate characters are banned")
	}
	return g.sampleFrom(alphabet, req.Length)
}

// HexRequest configures hexadecimal string sampling.
type HexRequest struct {
	// Length of the result. Zero or negative yields an empty string;
	// values above MaxStringLength are clamped.
	Length int

	// Banned characters are removed from the candidate digits before
	// sampling. Duplicates are tolerated. The slice is only read.
	Banned []rune
}

// Hex returns a string of hexadecimal digits drawn independently and
// uniformly, with replacement. Lowercase and uppercase digit letters are
// both candidates unless explicitly banned.
//
// Returns *GenerationError when the ban list covers every candidate digit.
func (g *Generator) Hex(req HexRequest) (string, error) {
	alphabet := effectiveAlphabet(hexDigits, req.Banned)
	if len(alphabet) == 0 {
		return "", newGenerationError("all candidate characters are banned")
	}
	return g.sampleFrom(alphabet, req.Length)
}

// sampleFrom draws length characters from alphabet by index. The alphabet
// must be non-empty.
func (g *Generator) sampleFrom(alphabet []rune, length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if length > MaxStringLength {
		length = MaxStringLength
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := g.Int(0, int64(len(alphabet))-1)
		if err != nil {
			return "", err
		}
		b.WriteRune(alphabet[idx])
	}
	return b.String(), nil
}

// effectiveAlphabet removes banned characters from base, preserving order.
func effectiveAlphabet(base string, banned []rune) []rune {
	if len(banned) == 0 {
		return []rune(base)
	}
	drop := make(map[rune]struct{}, len(banned))
	for _, r := range banned {
		drop[r] = struct{}{}
	}
	out := make([]rune, 0, len(base))
	for _, r := range base {
		if _, ok := drop[r]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

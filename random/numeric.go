package random

import "strings"

// NumericRequest configures decimal digit string sampling.
type NumericRequest struct {
	// Length of the result. Zero or negative yields an empty string;
	// values above MaxStringLength are clamped.
	Length int

	// AllowLeadingZeros permits '0' in the first position. The zero
	// value forbids it, except for single character requests where zero
	// is the only digit left.
	AllowLeadingZeros bool

	// Banned digits are removed from the candidate set before sampling.
	// Duplicates are tolerated. The slice is only read.
	Banned []rune
}

// Numeric returns a string of decimal digits drawn independently and
// uniformly, with replacement. Only the first position is subject to the
// leading zero policy; later positions may always yield '0'.
//
// Returns *GenerationError when the ban list covers every digit, or when
// forbidding a leading zero leaves nothing to place first. Both checks run
// before any draw, so a failing call never produces partial output and
// never advances the stream.
func (g *Generator) Numeric(req NumericRequest) (string, error) {
	length := req.Length
	if length <= 0 {
		return "", nil
	}
	if length > MaxStringLength {
		length = MaxStringLength
	}

	alphabet := effectiveAlphabet(decimalDigits, req.Banned)
	if len(alphabet) == 0 {
		return "", newGenerationError("all digits are banned")
	}

	leading := alphabet
	if !req.AllowLeadingZeros {
		leading = effectiveAlphabet(string(alphabet), []rune{'0'})
		if len(leading) == 0 {
			if length > 1 {
				return "", newGenerationError("leading zeros are forbidden and every non-zero digit is banned")
			}
			// A lone zero is the only single digit string left.
			leading = alphabet
		}
	}

	var b strings.Builder
	b.Grow(length)
	idx, err := g.Int(0, int64(len(leading))-1)
	if err != nil {
		return "", err
	}
	b.WriteRune(leading[idx])
	for i := 1; i < length; i++ {
		idx, err = g.Int(0, int64(len(alphabet))-1)
		if err != nil {
			return "", err
		}
		b.WriteRune(alphabet[idx])
	}
	return b.String(), nil
}

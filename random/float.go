package random

import (
	"strconv"
	"strings"
)

const (
	// DefaultFloatPrecision is the fractional digit count applied by
	// callers when a request leaves precision unset.
	DefaultFloatPrecision = 2

	// MaxFloatPrecision caps the fractional digit count so the sampled
	// magnitude 10^precision stays inside the int64 domain. Larger
	// requests are clamped, not rejected.
	MaxFloatPrecision = 15
)

// Float returns a value in [min, max] carrying exactly precision fractional
// decimal digits. Precision zero or below is normalized to integral output.
//
// The whole part is sampled over [min, max] and the fractional part over
// [0, 10^precision - 1]; the two are joined by decimal string composition
// and parsed, never by float arithmetic, so the decimal digits are exact
// as long as they fit float64's decimal capacity.
//
// Appending fractional digits moves a value away from zero, so when the
// whole part lands on max (or on min when negative) the fractional stage is
// skipped entirely and the whole part is returned as is. That call consumes
// only the whole part's draws.
//
// Returns *RangeError when min > max.
func (g *Generator) Float(min, max int64, precision int) (float64, error) {
	whole, err := g.Int(min, max)
	if err != nil {
		return 0, err
	}
	if precision <= 0 {
		return float64(whole), nil
	}
	if precision > MaxFloatPrecision {
		precision = MaxFloatPrecision
	}
	if (whole >= 0 && whole == max) || (whole < 0 && whole == min) {
		return float64(whole), nil
	}

	frac, err := g.Int(0, pow10(precision)-1)
	if err != nil {
		return 0, err
	}
	digits := strconv.FormatInt(frac, 10)
	if pad := precision - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return strconv.ParseFloat(strconv.FormatInt(whole, 10)+"."+digits, 64)
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

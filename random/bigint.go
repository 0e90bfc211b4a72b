package random

import "math/big"

// DefaultBigIntMax bounds arbitrary precision sampling when a request
// leaves the maximum unset.
const DefaultBigIntMax = 999999999999999

// BigInt returns an integer of unbounded magnitude in [min, max]. Both
// bounds must be non-nil; neither is mutated.
//
// The value is sampled as a decimal digit string as long as the range width,
// interpreted as an integer and reduced modulo the width. The reduction
// skews toward low values whenever the width is not an exact power of ten;
// the skew is bounded and accepted here for speed and draw-count stability.
// Use UniformBigInt when exact uniformity matters more than either.
//
// Returns *RangeError when min > max.
func (g *Generator) BigInt(min, max *big.Int) (*big.Int, error) {
	delta := new(big.Int).Sub(max, min)
	switch delta.Sign() {
	case -1:
		return nil, newBigRangeError(min, max)
	case 0:
		return new(big.Int).Set(min), nil
	}

	digits, err := g.Numeric(NumericRequest{
		Length:            len(delta.Text(10)),
		AllowLeadingZeros: true,
	})
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, newGenerationError("sampled digits %q are not a decimal integer", digits)
	}

	width := delta.Add(delta, big.NewInt(1))
	v.Mod(v, width)
	return v.Add(v, min), nil
}

// UniformBigInt returns an integer of unbounded magnitude drawn exactly
// uniformly from [min, max]. Both bounds must be non-nil; neither is
// mutated.
//
// Sampling rejects masked bit strings until one lands inside the range
// width, so every value is precisely equally likely at the cost of a
// variable draw count.
//
// Returns *RangeError when min > max.
func (g *Generator) UniformBigInt(min, max *big.Int) (*big.Int, error) {
	delta := new(big.Int).Sub(max, min)
	switch delta.Sign() {
	case -1:
		return nil, newBigRangeError(min, max)
	case 0:
		return new(big.Int).Set(min), nil
	}

	bitLen := delta.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	// Zero out bits above bitLen so roughly half of all candidates are
	// accepted per round.
	topMask := byte(0xff >> (uint(len(buf)*8) - uint(bitLen)))

	v := new(big.Int)
	for {
		g.Read(buf)
		buf[0] &= topMask
		v.SetBytes(buf)
		if v.Cmp(delta) <= 0 {
			return v.Add(v, min), nil
		}
	}
}

// Package ops maps named generation operations onto the core samplers. It
// resolves omitted request fields to the documented defaults, so every
// surface (CLI, MCP, journal replay) interprets a request identically.
package ops

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/kironimmanuel/faker/random"
)

// Op names one core generation operation.
type Op string

const (
	OpInt     Op = "int"
	OpFloat   Op = "float"
	OpBigInt  Op = "bigint"
	OpAlpha   Op = "alpha"
	OpHex     Op = "hex"
	OpNumeric Op = "numeric"
)

// All lists every operation in stable order, for CLI usage text and
// validation.
func All() []Op {
	return []Op{OpInt, OpFloat, OpBigInt, OpAlpha, OpHex, OpNumeric}
}

// Request describes one generation call. Pointer fields distinguish an
// omitted value from an explicit zero; omitted fields resolve to the core
// defaults during Execute.
//
// The JSON form of a Request is what the journal persists, so renaming a
// field is a breaking change for stored runs.
type Request struct {
	Op Op `json:"op"`

	// Int and float bounds.
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`

	// Float precision in fractional digits.
	Precision *int `json:"precision,omitempty"`

	// Arbitrary precision bounds, decimal strings.
	BigMin string `json:"big_min,omitempty"`
	BigMax string `json:"big_max,omitempty"`

	// Exact selects rejection sampling for bigint, trading a stable draw
	// count for strict uniformity.
	Exact bool `json:"exact,omitempty"`

	// String sampling fields.
	Length            *int   `json:"length,omitempty"`
	Casing            string `json:"casing,omitempty"`
	Banned            string `json:"banned,omitempty"`
	AllowLeadingZeros bool   `json:"allow_leading_zeros,omitempty"`
}

// Result carries the rendered value and the entropy spent producing it.
type Result struct {
	// Value is the decimal or string rendering of the sampled value.
	Value string

	// Draws counts the 32-bit values this call consumed.
	Draws uint64
}

// Execute resolves req against its defaults and runs it on g. The value is
// rendered to its canonical string form: integers in decimal, floats with
// exactly the requested fractional digits, strings verbatim.
func Execute(g *random.Generator, req Request) (Result, error) {
	before := g.Source().Draws()

	value, err := run(g, req)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Value: value,
		Draws: g.Source().Draws() - before,
	}, nil
}

func run(g *random.Generator, req Request) (string, error) {
	switch req.Op {
	case OpInt:
		min, max := intBounds(req)
		v, err := g.Int(min, max)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil

	case OpFloat:
		min, max := intBounds(req)
		precision := random.DefaultFloatPrecision
		if req.Precision != nil {
			precision = *req.Precision
		}
		if precision > random.MaxFloatPrecision {
			precision = random.MaxFloatPrecision
		}
		v, err := g.Float(min, max, precision)
		if err != nil {
			return "", err
		}
		if precision <= 0 {
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
		return strconv.FormatFloat(v, 'f', precision, 64), nil

	case OpBigInt:
		min, max, err := bigBounds(req)
		if err != nil {
			return "", err
		}
		var v *big.Int
		if req.Exact {
			v, err = g.UniformBigInt(min, max)
		} else {
			v, err = g.BigInt(min, max)
		}
		if err != nil {
			return "", err
		}
		return v.String(), nil

	case OpAlpha:
		casing, err := ParseCasing(req.Casing)
		if err != nil {
			return "", err
		}
		return g.Alpha(random.AlphaRequest{
			Length: length(req),
			Casing: casing,
			Banned: []rune(req.Banned),
		})

	case OpHex:
		return g.Hex(random.HexRequest{
			Length: length(req),
			Banned: []rune(req.Banned),
		})

	case OpNumeric:
		return g.Numeric(random.NumericRequest{
			Length:            length(req),
			AllowLeadingZeros: req.AllowLeadingZeros,
			Banned:            []rune(req.Banned),
		})
	}

	return "", fmt.Errorf("unknown operation %q", req.Op)
}

// intBounds resolves the fixed width bounds: min falls back to 0 and max to
// min plus the default width.
func intBounds(req Request) (int64, int64) {
	min := int64(random.DefaultIntMin)
	if req.Min != nil {
		min = *req.Min
	}
	max := min + random.DefaultIntMax
	if req.Max != nil {
		max = *req.Max
	}
	return min, max
}

// bigBounds resolves the arbitrary precision bounds with the same fallback
// scheme as intBounds.
func bigBounds(req Request) (*big.Int, *big.Int, error) {
	min := big.NewInt(0)
	if req.BigMin != "" {
		parsed, ok := new(big.Int).SetString(req.BigMin, 10)
		if !ok {
			return nil, nil, fmt.Errorf("parse big min %q: not a decimal integer", req.BigMin)
		}
		min = parsed
	}
	max := new(big.Int).Add(min, big.NewInt(random.DefaultBigIntMax))
	if req.BigMax != "" {
		parsed, ok := new(big.Int).SetString(req.BigMax, 10)
		if !ok {
			return nil, nil, fmt.Errorf("parse big max %q: not a decimal integer", req.BigMax)
		}
		max = parsed
	}
	return min, max, nil
}

func length(req Request) int {
	if req.Length == nil {
		return random.DefaultStringLength
	}
	return *req.Length
}

// ParseCasing maps a config string onto a letter casing. The empty string
// selects mixed case.
func ParseCasing(s string) (random.Casing, error) {
	switch s {
	case "", "mixed":
		return random.CasingMixed, nil
	case "lower":
		return random.CasingLower, nil
	case "upper":
		return random.CasingUpper, nil
	}
	return random.CasingMixed, fmt.Errorf("unknown casing %q (want lower, upper, or mixed)", s)
}

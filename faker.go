// Package faker generates reproducible fake data: names, addresses,
// network identities, and filler text, all derived from one seeded
// generator so identical seeds yield identical data.
//
// The heavy lifting happens in the random package; this package layers
// small domain vocabularies on top of it. Every provider draws entropy
// exclusively through the shared generator, which keeps the full output
// sequence of a Faker reproducible across providers, not just within one.
package faker

import (
	"github.com/kironimmanuel/faker/random"
)

// Faker produces fake domain data from one deterministic generator.
//
// Like the generator it wraps, a Faker is not safe for concurrent use.
type Faker struct {
	gen *random.Generator
}

// New returns a Faker seeded with seed.
func New(seed int64) *Faker {
	return &Faker{gen: random.New(seed)}
}

// NewFromGenerator returns a Faker drawing from gen, for callers that
// interleave provider calls with direct sampler calls on one stream.
func NewFromGenerator(gen *random.Generator) *Faker {
	return &Faker{gen: gen}
}

// Seed reports the seed the underlying generator was last seeded with,
// for recording alongside generated fixtures.
func (f *Faker) Seed() int64 {
	return f.gen.Source().CurrentSeed()
}

// Generator exposes the underlying generator for direct sampler access.
func (f *Faker) Generator() *random.Generator {
	return f.gen
}

// pick returns a uniformly drawn element. Every table in this package is a
// non-empty constant, so the draw cannot fail.
func (f *Faker) pick(items []string) string {
	idx, _ := f.gen.IntN(int64(len(items)))
	return items[idx]
}

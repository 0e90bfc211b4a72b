// Package random implements the deterministic randomization core that every
// fake-data provider in this library draws from.
//
// The package is built from two layers:
//   - Source: a seedable Mersenne Twister bit generator producing a fixed
//     stream of uniform 32-bit values for a given seed.
//   - Generator: bounded samplers layered on one Source — integers without
//     modulo bias, decimal floats with exact fractional precision, arbitrary
//     precision integers, and constrained character strings.
//
// # Determinism
//
// For a fixed seed, the ordered sequence of results across every Generator
// method is reproducible byte for byte across runs and platforms. The
// guarantee holds only while calls are issued in a single, unbroken order:
// a Source has no internal locking, so concurrent use of one instance must
// be serialized by the caller, or each goroutine should own its own
// independently seeded instance.
//
// # Errors
//
// Invalid bounds surface as *RangeError and over-constrained alphabets as
// *GenerationError. Both are reported before any entropy is consumed, so a
// failed call never perturbs the draw sequence and never yields partial
// output. Both reflect caller configuration mistakes; no operation retries
// or degrades.
package random

package random

import (
	crand "crypto/rand"
	"encoding/binary"
)

// NewSeed generates a high-entropy seed using crypto/rand, for callers that
// want varied output but still record the seed for later replay. The
// sequences derived from it remain fully reproducible; only the seed choice
// itself is unpredictable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}

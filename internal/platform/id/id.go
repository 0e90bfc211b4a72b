// Package id generates opaque identifiers for stored records.
//
// Identifiers are random UUIDs rendered as 26-character lowercase base32
// without padding, which keeps them URL and filename safe while preserving
// the full 128 bits.
package id

import (
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a fresh identifier backed by crypto randomness.
func NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return encode(u), nil
}

// NewIDFrom returns an identifier whose bits come from r, so callers with a
// deterministic byte stream get reproducible identifiers.
func NewIDFrom(r io.Reader) (string, error) {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return encode(u), nil
}

func encode(u uuid.UUID) string {
	return strings.ToLower(encoding.EncodeToString(u[:]))
}

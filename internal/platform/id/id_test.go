package id

import (
	"bytes"
	"encoding/base32"
	"strings"
	"testing"
)

func decodeID(t *testing.T, id string) []byte {
	t.Helper()
	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("decode id: %v", err)
	}
	return decoded
}

func TestNewIDFormat(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}
	if strings.Contains(id, "=") {
		t.Fatal("expected no padding")
	}
	if len(id) != 26 {
		t.Fatalf("expected 26-character id, got %d", len(id))
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("unexpected character %q in id", r)
		}
	}

	if decoded := decodeID(t, id); len(decoded) != 16 {
		t.Fatalf("expected 16 decoded bytes, got %d", len(decoded))
	}
}

func TestNewIDSetsUUIDVersionAndVariant(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	decoded := decodeID(t, id)
	if version := decoded[6] >> 4; version != 4 {
		t.Fatalf("expected version 4, got %d", version)
	}
	if variant := decoded[8] & 0xC0; variant != 0x80 {
		t.Fatalf("expected variant 0x80, got 0x%X", variant)
	}
}

func TestNewIDFromIsDeterministic(t *testing.T) {
	seed := []byte("0123456789abcdef0123456789abcdef")

	a, err := NewIDFrom(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("new id from reader: %v", err)
	}
	b, err := NewIDFrom(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("new id from reader: %v", err)
	}
	if a != b {
		t.Fatalf("expected identical ids from identical streams, got %q and %q", a, b)
	}
	if len(a) != 26 {
		t.Fatalf("expected 26-character id, got %d", len(a))
	}

	// Version and variant bits are forced even on supplied bytes.
	decoded := decodeID(t, a)
	if version := decoded[6] >> 4; version != 4 {
		t.Fatalf("expected version 4, got %d", version)
	}
}

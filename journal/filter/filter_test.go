package filter

import (
	"reflect"
	"testing"
)

func TestParseRunFilter_OpEquals(t *testing.T) {
	cond, err := ParseRunFilter(`op = "int"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "op = ?" {
		t.Errorf("expected 'op = ?', got %q", cond.Clause)
	}
	if len(cond.Params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(cond.Params))
	}
	if cond.Params[0] != "int" {
		t.Errorf("expected 'int', got %v", cond.Params[0])
	}
}

func TestParseRunFilter_Empty(t *testing.T) {
	cond, err := ParseRunFilter(" ")
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "" || cond.Params != nil {
		t.Fatalf("expected empty condition, got %+v", cond)
	}
}

func TestParseRunFilter_AndOr(t *testing.T) {
	cond, err := ParseRunFilter(`op = "alpha" AND seed = 42`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "(op = ? AND seed = ?)" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
	if !reflect.DeepEqual(cond.Params, []any{"alpha", int64(42)}) {
		t.Fatalf("Params = %v", cond.Params)
	}

	cond, err = ParseRunFilter(`op = "int" OR op = "float"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "(op = ? OR op = ?)" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
}

func TestParseRunFilter_NumericComparisons(t *testing.T) {
	cond, err := ParseRunFilter(`draws > 10`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "draws > ?" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
	if cond.Params[0] != int64(10) {
		t.Fatalf("draws param = %v", cond.Params[0])
	}

	cond, err = ParseRunFilter(`seed != 0`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "seed != ?" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
}

func TestParseRunFilter_TimestampToMillis(t *testing.T) {
	cond, err := ParseRunFilter(`created > timestamp("2025-01-01T00:00:00Z")`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "created_at > ?" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
	if len(cond.Params) != 1 {
		t.Fatalf("Params len = %d", len(cond.Params))
	}
	// 2025-01-01T00:00:00Z in Unix milliseconds.
	if cond.Params[0] != int64(1735689600000) {
		t.Fatalf("timestamp param = %v", cond.Params[0])
	}
}

func TestParseRunFilter_InvalidField(t *testing.T) {
	_, err := ParseRunFilter(`result = "x"`)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseRunFilter_InvalidValueFunc(t *testing.T) {
	_, err := ParseRunFilter(`created = duration("1h")`)
	if err == nil {
		t.Fatal("expected error for unsupported value function")
	}
}

func TestParseRunFilter_InvalidTimestamp(t *testing.T) {
	_, err := ParseRunFilter(`created = timestamp("not-a-time")`)
	if err == nil {
		t.Fatal("expected error for invalid timestamp")
	}
}

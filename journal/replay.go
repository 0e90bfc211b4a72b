package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kironimmanuel/faker/internal/ops"
	"github.com/kironimmanuel/faker/random"
)

// ReplayResult reports a stored run re-executed from its seed.
type ReplayResult struct {
	// Run is the stored record.
	Run Run

	// Value is the freshly recomputed result.
	Value string

	// Draws is the entropy cost of the recomputation.
	Draws uint64

	// Match reports whether value and draw count both reproduced the
	// stored record exactly.
	Match bool
}

// Replay loads a run and re-executes it on a fresh generator seeded from
// the record. A mismatch means the stored record was produced by a
// different build of the samplers, or was tampered with; it is reported,
// not treated as an error.
func Replay(ctx context.Context, store Store, id string) (ReplayResult, error) {
	run, err := store.GetRun(ctx, id)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("load run: %w", err)
	}

	var req ops.Request
	if err := json.Unmarshal([]byte(run.Request), &req); err != nil {
		return ReplayResult{}, fmt.Errorf("decode run request: %w", err)
	}

	result, err := ops.Execute(random.New(run.Seed), req)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("re-execute run: %w", err)
	}

	return ReplayResult{
		Run:   run,
		Value: result.Value,
		Draws: result.Draws,
		Match: result.Value == run.Result && result.Draws == run.Draws,
	}, nil
}

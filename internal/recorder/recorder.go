// Package recorder executes generation requests and optionally journals
// each outcome, so every surface records runs the same way.
package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kironimmanuel/faker/internal/ops"
	"github.com/kironimmanuel/faker/internal/platform/id"
	"github.com/kironimmanuel/faker/journal"
	"github.com/kironimmanuel/faker/random"
)

var tracer = otel.Tracer("github.com/kironimmanuel/faker/internal/recorder")

// Recorder runs generation requests and writes each outcome to a journal
// store when one is configured.
type Recorder struct {
	store journal.Store
}

// New returns a Recorder journaling to store. A nil store disables
// recording; requests still execute.
func New(store journal.Store) *Recorder {
	return &Recorder{store: store}
}

// Do executes req on a fresh generator seeded with seed. With recording
// enabled the stored run is returned alongside the result; otherwise the
// returned run has an empty ID. Tracing never touches the generation path:
// the span wraps execution without consuming entropy, so seeded output is
// identical with telemetry on or off.
func (r *Recorder) Do(ctx context.Context, seed int64, req ops.Request) (ops.Result, journal.Run, error) {
	ctx, span := tracer.Start(ctx, "recorder.do",
		trace.WithAttributes(attribute.String("op", string(req.Op))))
	defer span.End()

	result, err := ops.Execute(random.New(seed), req)
	if err != nil {
		return ops.Result{}, journal.Run{}, err
	}
	if r == nil || r.store == nil {
		return result, journal.Run{}, nil
	}

	encoded, err := json.Marshal(req)
	if err != nil {
		return ops.Result{}, journal.Run{}, fmt.Errorf("encode request: %w", err)
	}
	runID, err := id.NewID()
	if err != nil {
		return ops.Result{}, journal.Run{}, fmt.Errorf("assign run id: %w", err)
	}
	run := journal.Run{
		ID:        runID,
		Seed:      seed,
		Op:        string(req.Op),
		Request:   string(encoded),
		Result:    result.Value,
		Draws:     result.Draws,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.store.CreateRun(ctx, run); err != nil {
		return ops.Result{}, journal.Run{}, fmt.Errorf("journal run: %w", err)
	}
	return result, run, nil
}

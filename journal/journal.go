// Package journal records generation runs so any produced value can be
// traced back to its seed and replayed bit for bit.
//
// A Run captures everything needed to reproduce one generation call: the
// seed, the operation, its full request, the rendered result, and the
// number of 32-bit draws it consumed. Stores persist runs; Replay verifies
// a stored run by re-executing it from scratch.
package journal

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested run record is missing.
	ErrNotFound = errors.New("run not found")
	// ErrAlreadyExists indicates a run with the same ID is already stored.
	ErrAlreadyExists = errors.New("run already exists")
)

// Run stores one recorded generation call.
type Run struct {
	// ID is an opaque identifier assigned at record time.
	ID string

	// Seed is the generator seed the run started from.
	Seed int64

	// Op names the operation, such as "int" or "alpha".
	Op string

	// Request is the JSON encoding of the full operation request.
	Request string

	// Result is the rendered value the run produced.
	Result string

	// Draws counts the 32-bit values the run consumed.
	Draws uint64

	// CreatedAt is when the run was recorded.
	CreatedAt time.Time
}

// Page stores one page of run records.
type Page struct {
	Runs          []Run
	NextPageToken string
}

// ListQuery bounds and filters a run listing.
type ListQuery struct {
	// PageSize caps the number of runs returned. Required.
	PageSize int

	// PageToken resumes a previous listing. Empty starts from the top.
	PageToken string

	// Filter is an AIP-160 expression over op, seed, draws, and
	// created. Empty matches everything.
	Filter string
}

// Store persists run records.
type Store interface {
	CreateRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, query ListQuery) (Page, error)
}

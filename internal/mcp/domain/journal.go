package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kironimmanuel/faker/journal"
)

// journalPageSize bounds the journal resource payload.
const journalPageSize = 50

// ReplayRunInput represents the MCP tool input for replaying a journaled run.
type ReplayRunInput struct {
	RunID string `json:"run_id" jsonschema:"journal entry id to replay"`
}

// ReplayRunResult represents the MCP tool output for replaying a journaled run.
type ReplayRunResult struct {
	RunID         string `json:"run_id" jsonschema:"journal entry id"`
	Op            string `json:"op" jsonschema:"operation name"`
	Seed          int64  `json:"seed" jsonschema:"seed the run was recorded with"`
	StoredValue   string `json:"stored_value" jsonschema:"value the journal holds"`
	ReplayedValue string `json:"replayed_value" jsonschema:"value recomputed from the seed"`
	StoredDraws   uint64 `json:"stored_draws" jsonschema:"draw count the journal holds"`
	ReplayedDraws uint64 `json:"replayed_draws" jsonschema:"draw count of the recomputation"`
	Match         bool   `json:"match" jsonschema:"whether value and draw count both reproduced"`
}

// JournalRunEntry represents one run in the journal resource payload.
type JournalRunEntry struct {
	ID        string `json:"id"`
	Op        string `json:"op"`
	Seed      int64  `json:"seed"`
	Value     string `json:"value"`
	Draws     uint64 `json:"draws"`
	CreatedAt string `json:"created_at"`
}

// JournalRunsPayload represents the MCP resource payload for journal listings.
type JournalRunsPayload struct {
	Runs          []JournalRunEntry `json:"runs"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// ReplayRunTool defines the MCP tool schema for replaying runs.
func ReplayRunTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "replay_run",
		Description: "Re-executes a journaled run from its seed and reports whether the value reproduced",
	}
}

// JournalRunsResource defines the MCP resource for journal listings.
func JournalRunsResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "journal_runs",
		Title:       "Journaled runs",
		Description: "Readable listing of journaled generation runs",
		MIMEType:    "application/json",
		URI:         "journal://runs",
	}
}

// ReplayRunHandler executes a replay request against the journal.
func ReplayRunHandler(store journal.Store) mcp.ToolHandlerFor[ReplayRunInput, ReplayRunResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ReplayRunInput) (*mcp.CallToolResult, ReplayRunResult, error) {
		if store == nil {
			return nil, ReplayRunResult{}, fmt.Errorf("journal is not configured")
		}
		if input.RunID == "" {
			return nil, ReplayRunResult{}, fmt.Errorf("run_id is required")
		}

		replayed, err := journal.Replay(ctx, store, input.RunID)
		if err != nil {
			return nil, ReplayRunResult{}, fmt.Errorf("replay run failed: %w", err)
		}

		return nil, ReplayRunResult{
			RunID:         replayed.Run.ID,
			Op:            replayed.Run.Op,
			Seed:          replayed.Run.Seed,
			StoredValue:   replayed.Run.Result,
			ReplayedValue: replayed.Value,
			StoredDraws:   replayed.Run.Draws,
			ReplayedDraws: replayed.Draws,
			Match:         replayed.Match,
		}, nil
	}
}

// JournalRunsResourceHandler returns a readable journal listing resource.
func JournalRunsResourceHandler(store journal.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("journal is not configured")
		}

		uri := JournalRunsResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		page, err := store.ListRuns(ctx, journal.ListQuery{PageSize: journalPageSize})
		if err != nil {
			return nil, fmt.Errorf("journal list failed: %w", err)
		}

		payload := JournalRunsPayload{NextPageToken: page.NextPageToken}
		for _, run := range page.Runs {
			payload.Runs = append(payload.Runs, JournalRunEntry{
				ID:        run.ID,
				Op:        run.Op,
				Seed:      run.Seed,
				Value:     run.Result,
				Draws:     run.Draws,
				CreatedAt: run.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal journal list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

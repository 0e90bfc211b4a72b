// Package domain defines the MCP tool surface: input and output shapes
// plus the handlers that bind them to the generation core.
package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kironimmanuel/faker/internal/ops"
	"github.com/kironimmanuel/faker/internal/recorder"
	"github.com/kironimmanuel/faker/journal"
	"github.com/kironimmanuel/faker/random"
)

// GenerateResult represents the MCP tool output shared by the generation
// tools. Value is rendered as text so integers beyond JSON number
// precision survive the round trip.
type GenerateResult struct {
	Value string `json:"value" jsonschema:"generated value rendered as text"`
	Seed  int64  `json:"seed" jsonschema:"seed used for this draw, pass it back to reproduce the value"`
	Draws uint64 `json:"draws" jsonschema:"number of 32 bit draws consumed"`
	RunID string `json:"run_id,omitempty" jsonschema:"journal entry id when journaling is enabled"`
}

// GenerateIntInput represents the MCP tool input for integer generation.
type GenerateIntInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
	Min  *int64 `json:"min,omitempty" jsonschema:"inclusive lower bound, defaults to 0"`
	Max  *int64 `json:"max,omitempty" jsonschema:"inclusive upper bound, defaults to min plus 99999"`
}

// GenerateFloatInput represents the MCP tool input for float generation.
type GenerateFloatInput struct {
	Seed      *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
	Min       *int64 `json:"min,omitempty" jsonschema:"inclusive whole part lower bound, defaults to 0"`
	Max       *int64 `json:"max,omitempty" jsonschema:"inclusive whole part upper bound, defaults to min plus 99999"`
	Precision *int   `json:"precision,omitempty" jsonschema:"fractional digits, defaults to 2, zero or less yields an integral value"`
}

// GenerateBigIntInput represents the MCP tool input for arbitrary
// precision integer generation. Bounds travel as decimal strings.
type GenerateBigIntInput struct {
	Seed  *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
	Min   string `json:"min,omitempty" jsonschema:"inclusive lower bound as a decimal string, defaults to 0"`
	Max   string `json:"max,omitempty" jsonschema:"inclusive upper bound as a decimal string, defaults to min plus 999999999999999"`
	Exact bool   `json:"exact,omitempty" jsonschema:"use rejection sampling for strict uniformity at the cost of a variable draw count"`
}

// GenerateStringInput represents the MCP tool input for string generation.
type GenerateStringInput struct {
	Seed              *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
	Kind              string `json:"kind,omitempty" jsonschema:"alphabet kind (alpha, hex, or numeric), defaults to alpha"`
	Length            *int   `json:"length,omitempty" jsonschema:"number of characters, defaults to 1"`
	Casing            string `json:"casing,omitempty" jsonschema:"letter casing for alpha (lower, upper, or mixed)"`
	Banned            string `json:"banned,omitempty" jsonschema:"characters to exclude from the alphabet"`
	AllowLeadingZeros bool   `json:"allow_leading_zeros,omitempty" jsonschema:"permit a zero first digit for numeric strings"`
}

// GenerateIntTool defines the MCP tool schema for integer generation.
func GenerateIntTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_int",
		Description: "Draws a uniform integer from an inclusive range",
	}
}

// GenerateFloatTool defines the MCP tool schema for float generation.
func GenerateFloatTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_float",
		Description: "Draws a float with a fixed number of fractional digits",
	}
}

// GenerateBigIntTool defines the MCP tool schema for big integer generation.
func GenerateBigIntTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_bigint",
		Description: "Draws an integer of arbitrary precision from decimal string bounds",
	}
}

// GenerateStringTool defines the MCP tool schema for string generation.
func GenerateStringTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_string",
		Description: "Draws a random string from an alphabetic, hexadecimal, or numeric alphabet",
	}
}

// GenerateIntHandler executes an integer generation request.
func GenerateIntHandler(rec *recorder.Recorder) mcp.ToolHandlerFor[GenerateIntInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateIntInput) (*mcp.CallToolResult, GenerateResult, error) {
		seed := resolveSeed(input.Seed)
		result, run, err := rec.Do(ctx, seed, ops.Request{
			Op:  ops.OpInt,
			Min: input.Min,
			Max: input.Max,
		})
		if err != nil {
			return nil, GenerateResult{}, fmt.Errorf("generate int failed: %w", err)
		}
		return nil, generateResult(result, run, seed), nil
	}
}

// GenerateFloatHandler executes a float generation request.
func GenerateFloatHandler(rec *recorder.Recorder) mcp.ToolHandlerFor[GenerateFloatInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateFloatInput) (*mcp.CallToolResult, GenerateResult, error) {
		seed := resolveSeed(input.Seed)
		result, run, err := rec.Do(ctx, seed, ops.Request{
			Op:        ops.OpFloat,
			Min:       input.Min,
			Max:       input.Max,
			Precision: input.Precision,
		})
		if err != nil {
			return nil, GenerateResult{}, fmt.Errorf("generate float failed: %w", err)
		}
		return nil, generateResult(result, run, seed), nil
	}
}

// GenerateBigIntHandler executes an arbitrary precision generation request.
func GenerateBigIntHandler(rec *recorder.Recorder) mcp.ToolHandlerFor[GenerateBigIntInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateBigIntInput) (*mcp.CallToolResult, GenerateResult, error) {
		seed := resolveSeed(input.Seed)
		result, run, err := rec.Do(ctx, seed, ops.Request{
			Op:     ops.OpBigInt,
			BigMin: input.Min,
			BigMax: input.Max,
			Exact:  input.Exact,
		})
		if err != nil {
			return nil, GenerateResult{}, fmt.Errorf("generate bigint failed: %w", err)
		}
		return nil, generateResult(result, run, seed), nil
	}
}

// GenerateStringHandler executes a string generation request.
func GenerateStringHandler(rec *recorder.Recorder) mcp.ToolHandlerFor[GenerateStringInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateStringInput) (*mcp.CallToolResult, GenerateResult, error) {
		op, err := opForKind(input.Kind)
		if err != nil {
			return nil, GenerateResult{}, err
		}
		seed := resolveSeed(input.Seed)
		result, run, err := rec.Do(ctx, seed, ops.Request{
			Op:                op,
			Length:            input.Length,
			Casing:            input.Casing,
			Banned:            input.Banned,
			AllowLeadingZeros: input.AllowLeadingZeros,
		})
		if err != nil {
			return nil, GenerateResult{}, fmt.Errorf("generate string failed: %w", err)
		}
		return nil, generateResult(result, run, seed), nil
	}
}

// opForKind maps a string kind label onto its operation.
func opForKind(kind string) (ops.Op, error) {
	switch kind {
	case "", "alpha":
		return ops.OpAlpha, nil
	case "hex":
		return ops.OpHex, nil
	case "numeric":
		return ops.OpNumeric, nil
	}
	return "", fmt.Errorf("unknown string kind %q (want alpha, hex, or numeric)", kind)
}

func generateResult(result ops.Result, run journal.Run, seed int64) GenerateResult {
	return GenerateResult{
		Value: result.Value,
		Seed:  seed,
		Draws: result.Draws,
		RunID: run.ID,
	}
}

// resolveSeed returns the client's seed or draws a fresh one, so every
// response can report the seed that produced it.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return random.NewSeed()
}

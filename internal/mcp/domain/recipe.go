package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kironimmanuel/faker"
	"github.com/kironimmanuel/faker/recipe"
)

// RecipeEvalInput represents the MCP tool input for recipe evaluation.
type RecipeEvalInput struct {
	Seed   *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
	Script string `json:"script" jsonschema:"lua recipe script, its return value becomes the fixture"`
}

// RecipeEvalResult represents the MCP tool output for recipe evaluation.
type RecipeEvalResult struct {
	Seed    int64  `json:"seed" jsonschema:"seed used for this fixture"`
	Fixture string `json:"fixture" jsonschema:"fixture rendered as JSON"`
}

// RecipeEvalTool defines the MCP tool schema for recipe evaluation.
func RecipeEvalTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recipe_eval",
		Description: "Evaluates a Lua recipe script against a seeded generator and returns the fixture as JSON",
	}
}

// RecipeEvalHandler executes a recipe evaluation request.
func RecipeEvalHandler() mcp.ToolHandlerFor[RecipeEvalInput, RecipeEvalResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RecipeEvalInput) (*mcp.CallToolResult, RecipeEvalResult, error) {
		if input.Script == "" {
			return nil, RecipeEvalResult{}, fmt.Errorf("script is required")
		}
		seed := resolveSeed(input.Seed)
		value, err := recipe.New(faker.New(seed)).Run(input.Script)
		if err != nil {
			return nil, RecipeEvalResult{}, fmt.Errorf("recipe eval failed: %w", err)
		}
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, RecipeEvalResult{}, fmt.Errorf("marshal fixture: %w", err)
		}
		return nil, RecipeEvalResult{Seed: seed, Fixture: string(data)}, nil
	}
}

package service

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kironimmanuel/faker/internal/mcp/domain"
	"github.com/kironimmanuel/faker/internal/recorder"
	"github.com/kironimmanuel/faker/journal"
)

func registerGenerateTools(mcpServer *mcp.Server, store journal.Store) {
	rec := recorder.New(store)
	mcp.AddTool(mcpServer, domain.GenerateIntTool(), domain.GenerateIntHandler(rec))
	mcp.AddTool(mcpServer, domain.GenerateFloatTool(), domain.GenerateFloatHandler(rec))
	mcp.AddTool(mcpServer, domain.GenerateBigIntTool(), domain.GenerateBigIntHandler(rec))
	mcp.AddTool(mcpServer, domain.GenerateStringTool(), domain.GenerateStringHandler(rec))
}

func registerFakeTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, domain.FakePersonTool(), domain.FakePersonHandler())
	mcp.AddTool(mcpServer, domain.FakeAddressTool(), domain.FakeAddressHandler())
	mcp.AddTool(mcpServer, domain.FakeInternetTool(), domain.FakeInternetHandler())
}

func registerRecipeTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, domain.RecipeEvalTool(), domain.RecipeEvalHandler())
}

// registerJournalTools registers the replay tool and the readable journal
// resource.
func registerJournalTools(mcpServer *mcp.Server, store journal.Store) {
	mcp.AddTool(mcpServer, domain.ReplayRunTool(), domain.ReplayRunHandler(store))
	mcpServer.AddResource(domain.JournalRunsResource(), domain.JournalRunsResourceHandler(store))
}

// Package service hosts the MCP server that exposes the generation core,
// the fixture providers, and the journal over the Model Context Protocol.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kironimmanuel/faker/journal"
	"github.com/kironimmanuel/faker/journal/sqlite"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Faker MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

// TransportStdio uses standard input/output for MCP.
const TransportStdio TransportKind = "stdio"

// Config configures the MCP server.
type Config struct {
	// JournalPath is the SQLite journal location. Empty disables
	// journaling; generation tools still work, replay and listing report
	// that the journal is not configured.
	JournalPath string
	Transport   TransportKind
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server. A nil store disables journaling.
func New(store journal.Store) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{})

	registerGenerateTools(mcpServer, store)
	registerFakeTools(mcpServer)
	registerRecipeTools(mcpServer)
	registerJournalTools(mcpServer, store)

	return &Server{mcpServer: mcpServer}
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	var store journal.Store
	if cfg.JournalPath != "" {
		s, err := sqlite.Open(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer s.Close()
		store = s
	}

	return New(store).serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// A context cancellation is the normal shutdown path, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Package mcp wires configuration and telemetry around the faker MCP server.
package mcp

import (
	"context"
	"flag"
	"fmt"

	"github.com/kironimmanuel/faker/internal/mcp/service"
	"github.com/kironimmanuel/faker/internal/platform/cmd"
)

// Config holds MCP server configuration.
type Config struct {
	JournalPath string `env:"FAKER_JOURNAL_PATH"`
	Transport   string `env:"FAKER_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig loads environment defaults and parses flags into a Config.
// Flags win over environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "path to the run journal database (empty disables journaling)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport (stdio)")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server and blocks until the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			JournalPath: cfg.JournalPath,
			Transport:   service.TransportKind(cfg.Transport),
		})
	})
}

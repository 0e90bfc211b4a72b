package mcp

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.JournalPath != "" {
		t.Fatalf("expected empty journal path, got %q", cfg.JournalPath)
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("FAKER_JOURNAL_PATH", "env.db")
	t.Setenv("FAKER_MCP_TRANSPORT", "env-transport")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.JournalPath != "env.db" {
		t.Fatalf("expected env journal path, got %q", cfg.JournalPath)
	}
	if cfg.Transport != "env-transport" {
		t.Fatalf("expected env transport, got %q", cfg.Transport)
	}
}

func TestParseConfigFlagsWin(t *testing.T) {
	t.Setenv("FAKER_JOURNAL_PATH", "env.db")
	t.Setenv("FAKER_MCP_TRANSPORT", "env-transport")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	args := []string{"-journal", "flag.db", "-transport", "stdio"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.JournalPath != "flag.db" {
		t.Fatalf("expected flag journal path, got %q", cfg.JournalPath)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected flag transport, got %q", cfg.Transport)
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	cfg := Config{Transport: "carrier-pigeon"}
	err := Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

// Package main provides the faker CLI for generating deterministic fake
// values, evaluating Lua recipes, and inspecting or replaying journaled runs.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	fakercmd "github.com/kironimmanuel/faker/internal/cmd/faker"
	"github.com/kironimmanuel/faker/internal/platform/config"
)

func main() {
	cfg, err := fakercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fakercmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

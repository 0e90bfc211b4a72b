// Package faker implements the faker command line interface: one-shot value
// generation, recipe evaluation, and journal inspection with replay.
package faker

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	fakerlib "github.com/kironimmanuel/faker"
	"github.com/kironimmanuel/faker/internal/ops"
	"github.com/kironimmanuel/faker/internal/platform/cmd"
	"github.com/kironimmanuel/faker/internal/recorder"
	"github.com/kironimmanuel/faker/journal"
	"github.com/kironimmanuel/faker/journal/sqlite"
	"github.com/kironimmanuel/faker/random"
	"github.com/kironimmanuel/faker/recipe"
)

// Config holds faker command configuration. The zero value is not usable;
// build one through ParseConfig so defaults are applied.
type Config struct {
	JournalPath string `env:"FAKER_JOURNAL_PATH"`
	Seed        int64  `env:"FAKER_SEED"`
	Verbose     bool   `env:"FAKER_VERBOSE"`

	// Generation request, used when no other mode flag is set.
	Op                string
	Count             int
	Min               int64
	Max               int64
	Precision         int
	BigMin            string
	BigMax            string
	Exact             bool
	Length            int
	Casing            string
	Banned            string
	AllowLeadingZeros bool

	// Mode selectors.
	List      bool
	Replay    bool
	RunID     string
	Recipe    string
	PageSize  int
	PageToken string
	Filter    string
}

// ParseConfig loads environment defaults and parses flags into a Config.
// Flags win over environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "path to the run journal database (empty disables journaling)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")

	fs.StringVar(&cfg.Op, "op", "int", "operation to run (int, float, bigint, alpha, hex, numeric)")
	fs.IntVar(&cfg.Count, "n", 1, "number of values to generate (later values use seed+1, seed+2, ...)")
	fs.Int64Var(&cfg.Min, "min", random.DefaultIntMin, "minimum value, inclusive (int, float)")
	fs.Int64Var(&cfg.Max, "max", random.DefaultIntMax, "maximum value, inclusive (int, float)")
	fs.IntVar(&cfg.Precision, "precision", random.DefaultFloatPrecision, "fractional digits (float)")
	fs.StringVar(&cfg.BigMin, "big-min", "", "minimum value as a decimal string (bigint)")
	fs.StringVar(&cfg.BigMax, "big-max", "", "maximum value as a decimal string (bigint)")
	fs.BoolVar(&cfg.Exact, "exact", false, "use exact-uniform sampling (bigint)")
	fs.IntVar(&cfg.Length, "length", random.DefaultStringLength, "output length (alpha, hex, numeric)")
	fs.StringVar(&cfg.Casing, "casing", "", "letter casing: lower, upper, or mixed (alpha)")
	fs.StringVar(&cfg.Banned, "banned", "", "characters to exclude (alpha, hex, numeric)")
	fs.BoolVar(&cfg.AllowLeadingZeros, "allow-leading-zeros", false, "permit a leading zero digit (numeric)")

	fs.BoolVar(&cfg.List, "list", false, "list journaled runs")
	fs.BoolVar(&cfg.Replay, "replay", false, "replay the journaled run named by -run")
	fs.StringVar(&cfg.RunID, "run", "", "show the journaled run with this ID")
	fs.StringVar(&cfg.Recipe, "recipe", "", "evaluate a Lua recipe file")
	fs.IntVar(&cfg.PageSize, "page-size", 50, "journal page size for -list")
	fs.StringVar(&cfg.PageToken, "page-token", "", "journal page token for -list")
	fs.StringVar(&cfg.Filter, "filter", "", "journal filter for -list, e.g. op = \"int\"")

	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the faker command in the mode selected by cfg.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	switch {
	case cfg.List:
		return runList(ctx, cfg, out, errOut)
	case cfg.Replay:
		return runReplay(ctx, cfg, out)
	case cfg.RunID != "":
		return runShow(ctx, cfg, out)
	case cfg.Recipe != "":
		return runRecipe(cfg, out, errOut)
	default:
		return runGenerate(ctx, cfg, out, errOut)
	}
}

// runGenerate produces cfg.Count values for the requested operation, one per
// line, journaling each value as its own run when a journal is configured.
func runGenerate(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if cfg.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cfg.Count)
	}
	if err := validateOp(cfg.Op); err != nil {
		return err
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
	rec := recorder.New(store)
	req := buildRequest(cfg)

	for i := 0; i < cfg.Count; i++ {
		seed := nthSeed(cfg.Seed, i)
		res, run, err := rec.Do(ctx, seed, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res.Value)
		if !cfg.Verbose {
			continue
		}
		if run.ID != "" {
			fmt.Fprintf(errOut, "seed=%d draws=%d run=%s\n", seed, res.Draws, run.ID)
		} else {
			fmt.Fprintf(errOut, "seed=%d draws=%d\n", seed, res.Draws)
		}
	}
	return nil
}

// runRecipe evaluates a Lua recipe file and prints the fixture as JSON.
func runRecipe(cfg Config, out io.Writer, errOut io.Writer) error {
	seed := nthSeed(cfg.Seed, 0)
	f := fakerlib.New(seed)
	value, err := recipe.New(f).RunFile(cfg.Recipe)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	fmt.Fprintln(out, string(data))
	if cfg.Verbose {
		fmt.Fprintf(errOut, "seed=%d draws=%d\n", seed, f.Generator().Source().Draws())
	}
	return nil
}

// runList prints one journaled run per line in stable id order.
func runList(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	page, err := store.ListRuns(ctx, journal.ListQuery{
		PageSize:  cfg.PageSize,
		PageToken: cfg.PageToken,
		Filter:    cfg.Filter,
	})
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	for _, run := range page.Runs {
		fmt.Fprintf(out, "%s\t%s\tseed=%d\tdraws=%d\t%s\n",
			run.ID, run.Op, run.Seed, run.Draws, run.CreatedAt.UTC().Format(time.RFC3339))
	}
	if page.NextPageToken != "" {
		fmt.Fprintf(errOut, "next page: -page-token %s\n", page.NextPageToken)
	}
	return nil
}

// runShow prints the full record of one journaled run.
func runShow(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(ctx, cfg.RunID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Fprintf(out, "id:      %s\n", run.ID)
	fmt.Fprintf(out, "op:      %s\n", run.Op)
	fmt.Fprintf(out, "seed:    %d\n", run.Seed)
	fmt.Fprintf(out, "draws:   %d\n", run.Draws)
	fmt.Fprintf(out, "created: %s\n", run.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "request: %s\n", run.Request)
	fmt.Fprintf(out, "result:  %s\n", run.Result)
	return nil
}

// runReplay re-executes a journaled run and reports whether the stored value
// came back. A mismatch is returned as an error so scripts can detect it.
func runReplay(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.RunID == "" {
		return errors.New("run ID is required (set -run)")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := journal.Replay(ctx, store, cfg.RunID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "run:      %s (%s, seed %d)\n", result.Run.ID, result.Run.Op, result.Run.Seed)
	fmt.Fprintf(out, "stored:   %s\n", result.Run.Result)
	fmt.Fprintf(out, "replayed: %s\n", result.Value)
	fmt.Fprintf(out, "match:    %t\n", result.Match)
	if !result.Match {
		return fmt.Errorf("replay mismatch for run %s", result.Run.ID)
	}
	return nil
}

// openStore opens the configured journal database.
func openStore(cfg Config) (*sqlite.Store, error) {
	if cfg.JournalPath == "" {
		return nil, errors.New("journal path is required (set -journal or FAKER_JOURNAL_PATH)")
	}
	store, err := sqlite.Open(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return store, nil
}

// nthSeed resolves the seed for the i-th generated value. Seed zero asks for
// a fresh random seed per value; any other base seed advances by one per
// value so a command line reproduces the same sequence.
func nthSeed(base int64, i int) int64 {
	if base == 0 {
		return random.NewSeed()
	}
	return base + int64(i)
}

// buildRequest translates flag values into a generation request.
func buildRequest(cfg Config) ops.Request {
	return ops.Request{
		Op:                ops.Op(cfg.Op),
		Min:               &cfg.Min,
		Max:               &cfg.Max,
		Precision:         &cfg.Precision,
		BigMin:            cfg.BigMin,
		BigMax:            cfg.BigMax,
		Exact:             cfg.Exact,
		Length:            &cfg.Length,
		Casing:            cfg.Casing,
		Banned:            cfg.Banned,
		AllowLeadingZeros: cfg.AllowLeadingZeros,
	}
}

// validateOp rejects operation names Execute would not accept, so the
// error surfaces before any journal is touched.
func validateOp(name string) error {
	for _, op := range ops.All() {
		if ops.Op(name) == op {
			return nil
		}
	}

	names := make([]string, 0, len(ops.All()))
	for _, op := range ops.All() {
		names = append(names, string(op))
	}
	return fmt.Errorf("unknown operation %q (valid operations: %s)", name, strings.Join(names, ", "))
}

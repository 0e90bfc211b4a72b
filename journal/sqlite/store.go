// Package sqlite provides a SQLite-backed journal store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kironimmanuel/faker/internal/platform/storage/sqlitemigrate"
	"github.com/kironimmanuel/faker/journal"
	"github.com/kironimmanuel/faker/journal/filter"
	"github.com/kironimmanuel/faker/journal/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists journal runs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite journal store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateRun inserts one run record.
func (s *Store) CreateRun(ctx context.Context, run journal.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	runID := strings.TrimSpace(run.ID)
	op := strings.TrimSpace(run.Op)
	if runID == "" {
		return fmt.Errorf("run id is required")
	}
	if op == "" {
		return fmt.Errorf("run op is required")
	}
	createdAt := run.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO runs (id, seed, op, request, result, draws, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		run.Seed,
		op,
		run.Request,
		run.Result,
		int64(run.Draws),
		toMillis(createdAt),
	)
	if err != nil {
		if isRunUniqueViolation(err) {
			return journal.ErrAlreadyExists
		}
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// GetRun returns one run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (journal.Run, error) {
	if err := ctx.Err(); err != nil {
		return journal.Run{}, err
	}
	if s == nil || s.sqlDB == nil {
		return journal.Run{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return journal.Run{}, fmt.Errorf("run id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, seed, op, request, result, draws, created_at
		   FROM runs
		  WHERE id = ?`,
		id,
	)

	run, err := scanRun(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return journal.Run{}, journal.ErrNotFound
		}
		return journal.Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns one page of runs, optionally narrowed by an AIP-160
// filter over op, seed, draws, and created.
func (s *Store) ListRuns(ctx context.Context, query journal.ListQuery) (journal.Page, error) {
	if err := ctx.Err(); err != nil {
		return journal.Page{}, err
	}
	if s == nil || s.sqlDB == nil {
		return journal.Page{}, fmt.Errorf("storage is not configured")
	}
	if query.PageSize <= 0 {
		return journal.Page{}, fmt.Errorf("page size must be greater than zero")
	}

	cond, err := filter.ParseRunFilter(query.Filter)
	if err != nil {
		return journal.Page{}, fmt.Errorf("parse run filter: %w", err)
	}

	var clauses []string
	var params []any
	if cond.Clause != "" {
		clauses = append(clauses, cond.Clause)
		params = append(params, cond.Params...)
	}
	if token := strings.TrimSpace(query.PageToken); token != "" {
		clauses = append(clauses, "id > ?")
		params = append(params, token)
	}

	sqlQuery := `SELECT id, seed, op, request, result, draws, created_at FROM runs`
	if len(clauses) > 0 {
		sqlQuery += " WHERE " + strings.Join(clauses, " AND ")
	}
	sqlQuery += " ORDER BY id ASC LIMIT ?"
	params = append(params, query.PageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, params...)
	if err != nil {
		return journal.Page{}, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	page := journal.Page{Runs: make([]journal.Run, 0, query.PageSize)}
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return journal.Page{}, fmt.Errorf("list runs: %w", err)
		}
		page.Runs = append(page.Runs, run)
	}
	if err := rows.Err(); err != nil {
		return journal.Page{}, fmt.Errorf("list runs: %w", err)
	}
	if len(page.Runs) > query.PageSize {
		page.NextPageToken = page.Runs[query.PageSize-1].ID
		page.Runs = page.Runs[:query.PageSize]
	}

	return page, nil
}

// scanRun reads one runs row through the provided scan function.
func scanRun(scan func(dest ...any) error) (journal.Run, error) {
	var run journal.Run
	var draws int64
	var createdAt int64
	if err := scan(
		&run.ID,
		&run.Seed,
		&run.Op,
		&run.Request,
		&run.Result,
		&draws,
		&createdAt,
	); err != nil {
		return journal.Run{}, err
	}
	run.Draws = uint64(draws)
	run.CreatedAt = fromMillis(createdAt)
	return run, nil
}

func isRunUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "runs.id")
}

var _ journal.Store = (*Store)(nil)

package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"jobbridge/internal/logger"

	"go.uber.org/zap"
)

// lockKey serialises concurrent server and jobbridgectl starts.
const lockKey int64 = 7146021893

var (
	ErrNoSource      = errors.New("migration: no source filesystem")
	ErrChecksumDrift = errors.New("migration: applied file was edited")
)

// Runner applies V<version>__<name>.sql files from FS in version order,
// one transaction per file.
type Runner struct {
	FS     fs.FS
	Logger *zap.Logger
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

// Status describes one known migration against the live schema.
type Status struct {
	Migration
	AppliedAt *time.Time
	Drifted   bool
}

func (s Status) Applied() bool { return s.AppliedAt != nil }

type appliedRow struct {
	checksum  string
	appliedAt time.Time
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	migs, err := r.load()
	if err != nil || len(migs) == 0 {
		return err
	}
	log := logger.OrNop(r.Logger)

	if err := ensureHistoryTable(ctx, db); err != nil {
		return err
	}

	// Session advisory locks belong to one connection, so hold it until done.
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	applied, err := readHistory(ctx, conn)
	if err != nil {
		return err
	}
	pending, err := plan(migs, applied)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		log.Debug("schema up to date", zap.Int("known", len(migs)))
		return nil
	}

	for _, m := range pending {
		started := time.Now()
		if err := apply(ctx, conn, m); err != nil {
			return err
		}
		log.Info("migration applied",
			zap.Int64("version", m.Version),
			zap.String("name", m.Name),
			zap.Duration("elapsed", time.Since(started)),
		)
	}
	return nil
}

// Status lists every known migration with the time it was applied, if ever.
func (r Runner) Status(ctx context.Context, db *sql.DB) ([]Status, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	migs, err := r.load()
	if err != nil {
		return nil, err
	}
	if err := ensureHistoryTable(ctx, db); err != nil {
		return nil, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	applied, err := readHistory(ctx, conn)
	if err != nil {
		return nil, err
	}
	return describe(migs, applied), nil
}

func (r Runner) load() ([]Migration, error) {
	if r.FS == nil {
		return nil, ErrNoSource
	}
	return loadMigrations(r.FS)
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

func loadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var migs []Migration
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := fileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version: %s", e.Name())
		}

		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		body := strings.TrimSpace(string(raw))
		if body == "" {
			return nil, fmt.Errorf("empty migration file: %s", e.Name())
		}

		sum := sha256.Sum256([]byte(body))
		migs = append(migs, Migration{
			Version:  version,
			Name:     m[2],
			Filename: e.Name(),
			SQL:      body,
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	slices.SortFunc(migs, func(a, b Migration) int {
		switch {
		case a.Version < b.Version:
			return -1
		case a.Version > b.Version:
			return 1
		}
		return 0
	})
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d", migs[i].Version)
		}
	}
	return migs, nil
}

// plan returns the migrations still to apply, refusing to continue when an
// applied file no longer matches its recorded checksum.
func plan(migs []Migration, applied map[int64]appliedRow) ([]Migration, error) {
	var pending []Migration
	for _, m := range migs {
		row, ok := applied[m.Version]
		if !ok {
			pending = append(pending, m)
			continue
		}
		if row.checksum != m.Checksum {
			return nil, fmt.Errorf("%w: version=%d file=%s", ErrChecksumDrift, m.Version, m.Filename)
		}
	}
	return pending, nil
}

func describe(migs []Migration, applied map[int64]appliedRow) []Status {
	out := make([]Status, 0, len(migs))
	for _, m := range migs {
		st := Status{Migration: m}
		if row, ok := applied[m.Version]; ok {
			at := row.appliedAt
			st.AppliedAt = &at
			st.Drifted = row.checksum != m.Checksum
		}
		out = append(out, st)
	}
	return out
}

func ensureHistoryTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func readHistory(ctx context.Context, conn *sql.Conn) (map[int64]appliedRow, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, checksum, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]appliedRow{}
	for rows.Next() {
		var (
			version int64
			row     appliedRow
		)
		if err := rows.Scan(&version, &row.checksum, &row.appliedAt); err != nil {
			return nil, err
		}
		out[version] = row
	}
	return out, rows.Err()
}

func apply(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		m.Version, m.Name, m.Checksum,
	); err != nil {
		return fmt.Errorf("record migration %d: %w", m.Version, err)
	}
	return tx.Commit()
}

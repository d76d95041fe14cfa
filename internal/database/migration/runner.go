package migration

import (
	"context"
	"errors"
	"fmt"

	"skill-ledger/internal/database"
)

type migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in order inside a single connection; each version
// is recorded in schema_migrations and never re-applied.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create_accounts",
		SQL: `CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			handle TEXT NOT NULL UNIQUE,
			principal TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 2,
		Name:    "create_ledger_journal",
		SQL: `CREATE TABLE IF NOT EXISTS ledger_journal (
			seq BIGSERIAL PRIMARY KEY,
			height BIGINT NOT NULL,
			sender TEXT NOT NULL,
			op TEXT NOT NULL,
			payload JSONB NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 3,
		Name:    "index_journal_height",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_ledger_journal_height ON ledger_journal (height)`,
	},
}

type Runner struct{}

func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if _, err := db.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

func appliedVersions(ctx context.Context, db database.DB) (map[int]struct{}, error) {
	rows, err := db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int]struct{}{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	return out, rows.Err()
}

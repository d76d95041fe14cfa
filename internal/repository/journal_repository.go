package repository

import (
	"context"
	"encoding/json"

	"skill-ledger/internal/database"
)

// JournalEntry is one successfully applied transaction: the block height it
// executed at, the sender, the operation name, and its JSON-encoded input.
// The journal is append-only; replaying it in seq order rebuilds the
// ledger exactly.
type JournalEntry struct {
	Seq     int64
	Height  uint64
	Sender  string
	Op      string
	Payload json.RawMessage
}

type JournalRepository interface {
	Append(ctx context.Context, e JournalEntry) error
	List(ctx context.Context) ([]JournalEntry, error)
}

type PostgresJournalRepository struct {
	db database.DB
}

func NewPostgresJournalRepository(db database.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

func (r *PostgresJournalRepository) Append(ctx context.Context, e JournalEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ledger_journal (height, sender, op, payload) VALUES ($1, $2, $3, $4)`,
		e.Height, e.Sender, e.Op, e.Payload,
	)
	return err
}

func (r *PostgresJournalRepository) List(ctx context.Context) ([]JournalEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT seq, height, sender, op, payload FROM ledger_journal ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JournalEntry, 0)
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.Seq, &e.Height, &e.Sender, &e.Op, &e.Payload); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

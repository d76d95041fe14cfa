package repository

import (
	"context"
	"errors"
	"time"

	"skill-ledger/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAccountNotFound = errors.New("account not found")

// Account binds an authentication handle to a ledger principal.
type Account struct {
	ID           uuid.UUID
	Handle       string
	Principal    string
	PasswordHash string
	CreatedAt    time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, a Account) error
	GetByHandle(ctx context.Context, handle string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
}

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, handle, principal, password_hash) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Handle, a.Principal, a.PasswordHash,
	)
	return err
}

func (r *PostgresAccountRepository) GetByHandle(ctx context.Context, handle string) (Account, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT id, handle, principal, password_hash, created_at FROM accounts WHERE handle = $1`,
		handle,
	))
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (Account, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT id, handle, principal, password_hash, created_at FROM accounts WHERE id = $1`,
		id,
	))
}

func (r *PostgresAccountRepository) scanOne(row database.Row) (Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Handle, &a.Principal, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return a, nil
}

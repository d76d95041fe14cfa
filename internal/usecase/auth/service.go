package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-ledger/internal/repository"
)

var (
	ErrHandleAlreadyRegistered = errors.New("handle already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInternal                = errors.New("internal error")
)

type RegisterInput struct {
	Handle   string
	Password string
}

type LoginInput struct {
	Handle   string
	Password string
}

type Service struct {
	accounts repository.AccountRepository
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// Register creates an account and mints a fresh principal for it. The
// principal is the identity every ledger transaction is signed as; it is
// fixed at registration and never reassigned.
func (s *Service) Register(ctx context.Context, in RegisterInput) (repository.Account, error) {
	handle := normalizeHandle(in.Handle)
	if handle == "" {
		return repository.Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return repository.Account{}, ErrInvalidInput
	}

	if _, err := s.accounts.GetByHandle(ctx, handle); err == nil {
		return repository.Account{}, ErrHandleAlreadyRegistered
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return repository.Account{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Account{}, ErrInternal
	}

	a := repository.Account{
		ID:           uuid.New(),
		Handle:       handle,
		Principal:    mintPrincipal(),
		PasswordHash: string(hash),
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		if _, exErr := s.accounts.GetByHandle(ctx, handle); exErr == nil {
			return repository.Account{}, ErrHandleAlreadyRegistered
		}
		return repository.Account{}, ErrInternal
	}

	return sanitizeAccount(a), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (repository.Account, error) {
	handle := normalizeHandle(in.Handle)
	if handle == "" || in.Password == "" {
		return repository.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, ErrInvalidCredentials
		}
		return repository.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return repository.Account{}, ErrInvalidCredentials
	}

	return sanitizeAccount(a), nil
}

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

// mintPrincipal derives an address-shaped identity from a fresh UUID.
func mintPrincipal() string {
	return "SP" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func sanitizeAccount(a repository.Account) repository.Account {
	a.PasswordHash = ""
	return a
}

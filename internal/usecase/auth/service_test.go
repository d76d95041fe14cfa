package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skill-ledger/internal/repository"

	"github.com/google/uuid"
)

type memAccounts struct {
	byHandle map[string]repository.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byHandle: map[string]repository.Account{}}
}

func (m *memAccounts) Create(_ context.Context, a repository.Account) error {
	if _, ok := m.byHandle[a.Handle]; ok {
		return errors.New("duplicate handle")
	}
	m.byHandle[a.Handle] = a
	return nil
}

func (m *memAccounts) GetByHandle(_ context.Context, handle string) (repository.Account, error) {
	a, ok := m.byHandle[handle]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return a, nil
}

func (m *memAccounts) GetByID(_ context.Context, id uuid.UUID) (repository.Account, error) {
	for _, a := range m.byHandle {
		if a.ID == id {
			return a, nil
		}
	}
	return repository.Account{}, repository.ErrAccountNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newMemAccounts())
	ctx := context.Background()

	acc, err := svc.Register(ctx, RegisterInput{Handle: "Alice", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if acc.Handle != "alice" {
		t.Fatalf("expected normalized handle, got %q", acc.Handle)
	}
	if !strings.HasPrefix(acc.Principal, "SP") {
		t.Fatalf("expected minted principal, got %q", acc.Principal)
	}
	if acc.PasswordHash != "" {
		t.Fatalf("expected password hash stripped from result")
	}

	if _, err := svc.Register(ctx, RegisterInput{Handle: "alice", Password: "other-password"}); !errors.Is(err, ErrHandleAlreadyRegistered) {
		t.Fatalf("expected ErrHandleAlreadyRegistered, got %v", err)
	}

	logged, err := svc.Login(ctx, LoginInput{Handle: "ALICE", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if logged.Principal != acc.Principal {
		t.Fatalf("expected stable principal across logins")
	}

	if _, err := svc.Login(ctx, LoginInput{Handle: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Handle: "nobody", Password: "whatever1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMemAccounts())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Handle: "", Password: "longenough"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty handle, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Handle: "bob", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

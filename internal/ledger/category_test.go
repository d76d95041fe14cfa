package ledger

import (
	"errors"
	"testing"
)

func TestCreateCategory_AdminOnly(t *testing.T) {
	l := New(admin)

	if _, err := l.CreateCategory(tx(alice, 1), "Web Development", "web skills"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	id, err := l.CreateCategory(tx(admin, 1), "Web Development", "Frontend and backend web development skills")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first category id 1, got %d", id)
	}

	c, err := l.GetCategory(1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Name != "Web Development" || c.CreatedBy != admin {
		t.Fatalf("unexpected category %+v", c)
	}
}

func TestCreateCategory_DenseIDsAcrossFailures(t *testing.T) {
	l := New(admin)

	if id, _ := l.CreateCategory(tx(admin, 1), "One", ""); id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
	// Interleaved failures must not consume ids.
	if _, err := l.CreateCategory(tx(alice, 1), "Nope", ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := l.CreateCategory(tx(admin, 1), "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if id, _ := l.CreateCategory(tx(admin, 2), "Two", ""); id != 2 {
		t.Fatalf("expected id 2, got %d", id)
	}
	if id, _ := l.CreateCategory(tx(admin, 3), "Three", ""); id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	l := New(admin)
	if _, err := l.GetCategory(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddVerifier(t *testing.T) {
	l := New(admin)

	if err := l.AddVerifier(tx(alice, 1), verifier, "Tech Academy", []string{"bootcamp"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := l.AddVerifier(tx(admin, 1), verifier, "Tech Academy", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty methods, got %v", err)
	}

	if err := l.AddVerifier(tx(admin, 1), verifier, "Tech Academy", []string{"bootcamp", "assessment"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !l.IsTrustedVerifier(verifier) {
		t.Fatalf("expected verifier to be trusted")
	}
	if l.IsTrustedVerifier(alice) {
		t.Fatalf("expected alice not to be trusted")
	}
}

func TestAddVerifier_OverwritesPriorRecord(t *testing.T) {
	l := New(admin)

	if err := l.AddVerifier(tx(admin, 1), verifier, "Old Name", []string{"bootcamp"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.AddVerifier(tx(admin, 2), verifier, "New Name", []string{"certification"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	v, err := l.GetVerifier(verifier)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.DisplayName != "New Name" {
		t.Fatalf("expected overwritten display name, got %q", v.DisplayName)
	}
	if len(v.AllowedMethods) != 1 || v.AllowedMethods[0] != "certification" {
		t.Fatalf("expected overwritten methods, got %v", v.AllowedMethods)
	}
}

func TestRemoveVerifier(t *testing.T) {
	l := New(admin)

	if err := l.RemoveVerifier(tx(admin, 1), verifier); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := l.AddVerifier(tx(admin, 1), verifier, "Tech Academy", []string{"bootcamp"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.RemoveVerifier(tx(alice, 2), verifier); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := l.RemoveVerifier(tx(admin, 2), verifier); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.IsTrustedVerifier(verifier) {
		t.Fatalf("expected verifier no longer trusted")
	}
}

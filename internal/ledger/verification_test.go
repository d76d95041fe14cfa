package ledger

import (
	"errors"
	"testing"
)

// seedVerification sets up one category, one trusted verifier and one
// profile for alice, mirroring the usual attestation preamble.
func seedVerification(t *testing.T, methods ...string) *Ledger {
	t.Helper()
	l := New(admin)
	if len(methods) == 0 {
		methods = []string{"bootcamp"}
	}
	if _, err := l.CreateCategory(tx(admin, 1), "Web Development", "web skills"); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := l.AddVerifier(tx(admin, 1), verifier, "Tech Academy", methods); err != nil {
		t.Fatalf("seed verifier: %v", err)
	}
	if _, err := l.CreateProfile(tx(alice, 1), "jane_dev", "Software developer", ""); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return l
}

func TestVerifySkill(t *testing.T) {
	l := seedVerification(t)

	id, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject:     alice,
		SkillName:   "JavaScript",
		CategoryID:  1,
		Method:      "bootcamp",
		Score:       85,
		EvidenceURL: "https://certificate.url",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first verification id 1, got %d", id)
	}

	v, err := l.GetVerification(alice, 1, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.SkillName != "JavaScript" || v.Verifier != verifier || v.Status != VerificationActive {
		t.Fatalf("unexpected verification %+v", v.Verification)
	}
	if !v.IsCurrentlyValid {
		t.Fatalf("expected verification to be currently valid")
	}

	p, err := l.GetProfile(alice, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Reputation != 85 {
		t.Fatalf("expected reputation 85, got %d", p.Reputation)
	}
}

func TestVerifySkill_Untrusted(t *testing.T) {
	l := seedVerification(t)

	_, err := l.VerifySkill(tx(bob, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Storage and reputation unchanged.
	if _, err := l.GetVerification(alice, 1, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no verification stored, got %v", err)
	}
	p, _ := l.GetProfile(alice, 5)
	if p.Reputation != 0 {
		t.Fatalf("expected reputation 0, got %d", p.Reputation)
	}
}

func TestVerifySkill_MethodNotAllowed(t *testing.T) {
	l := seedVerification(t, "bootcamp", "assessment")

	_, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "survey", Score: 85,
	})
	if !errors.Is(err, ErrMethodNotAllowed) {
		t.Fatalf("expected ErrMethodNotAllowed, got %v", err)
	}
	if _, err := l.GetVerification(alice, 1, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no verification stored, got %v", err)
	}
	p, _ := l.GetProfile(alice, 5)
	if p.Reputation != 0 {
		t.Fatalf("expected reputation unchanged, got %d", p.Reputation)
	}
}

func TestVerifySkill_Validation(t *testing.T) {
	l := seedVerification(t)

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JS", CategoryID: 9, Method: "bootcamp", Score: 85,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing category, got %v", err)
	}

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: carol, SkillName: "JS", CategoryID: 1, Method: "bootcamp", Score: 85,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing profile, got %v", err)
	}

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JS", CategoryID: 1, Method: "bootcamp", Score: 101,
	}); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}

	expired := uint64(5)
	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JS", CategoryID: 1, Method: "bootcamp", Score: 85, Expiration: &expired,
	}); !errors.Is(err, ErrInvalidExpiration) {
		t.Fatalf("expected ErrInvalidExpiration, got %v", err)
	}
}

func TestVerifySkill_Duplicate(t *testing.T) {
	l := seedVerification(t)

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := l.VerifySkill(tx(verifier, 6), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 90,
	})
	if !errors.Is(err, ErrDuplicateVerification) {
		t.Fatalf("expected ErrDuplicateVerification, got %v", err)
	}

	// A different skill in the same category is fine.
	if _, err := l.VerifySkill(tx(verifier, 6), VerifySkillInput{
		Subject: alice, SkillName: "TypeScript", CategoryID: 1, Method: "bootcamp", Score: 90,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Revoking the original clears the way for re-verification.
	if err := l.RevokeVerification(tx(verifier, 7), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := l.VerifySkill(tx(verifier, 8), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 95,
	}); err != nil {
		t.Fatalf("unexpected err after revoke: %v", err)
	}
}

func TestVerificationIDs_DenseAcrossFailures(t *testing.T) {
	l := seedVerification(t)

	id1, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	})
	if err != nil || id1 != 1 {
		t.Fatalf("expected id 1, got %d (err %v)", id1, err)
	}
	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	}); !errors.Is(err, ErrDuplicateVerification) {
		t.Fatalf("expected ErrDuplicateVerification, got %v", err)
	}
	id2, err := l.VerifySkill(tx(verifier, 6), VerifySkillInput{
		Subject: alice, SkillName: "Go", CategoryID: 1, Method: "bootcamp", Score: 70,
	})
	if err != nil || id2 != 2 {
		t.Fatalf("expected id 2, got %d (err %v)", id2, err)
	}
}

func TestReputation_FloorMean(t *testing.T) {
	l := seedVerification(t)

	scores := []uint64{85, 70, 92}
	names := []string{"JavaScript", "Go", "SQL"}
	for i := range scores {
		if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
			Subject: alice, SkillName: names[i], CategoryID: 1, Method: "bootcamp", Score: scores[i],
		}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	// floor((85+70+92)/3) = floor(82.33) = 82
	p, _ := l.GetProfile(alice, 5)
	if p.Reputation != 82 {
		t.Fatalf("expected reputation 82, got %d", p.Reputation)
	}

	// Revoking one member re-aggregates: floor((85+92)/2) = 88.
	if err := l.RevokeVerification(tx(verifier, 6), 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p, _ = l.GetProfile(alice, 6)
	if p.Reputation != 88 {
		t.Fatalf("expected reputation 88, got %d", p.Reputation)
	}

	if err := l.RevokeVerification(tx(admin, 7), 1); err != nil {
		t.Fatalf("admin revoke: %v", err)
	}
	if err := l.RevokeVerification(tx(admin, 7), 3); err != nil {
		t.Fatalf("admin revoke: %v", err)
	}
	p, _ = l.GetProfile(alice, 7)
	if p.Reputation != 0 {
		t.Fatalf("expected reputation 0 with no active verifications, got %d", p.Reputation)
	}
}

func TestReputation_LazyExpiry(t *testing.T) {
	l := seedVerification(t)

	expiration := uint64(100)
	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 80, Expiration: &expiration,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "Go", CategoryID: 1, Method: "bootcamp", Score: 60,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Before expiry both records count: floor((80+60)/2) = 70.
	p, _ := l.GetProfile(alice, 99)
	if p.Reputation != 70 {
		t.Fatalf("expected reputation 70 before expiry, got %d", p.Reputation)
	}

	// Two reads of the same stored state at different heights diverge:
	// the expired record drops out with no intervening write.
	p, _ = l.GetProfile(alice, 100)
	if p.Reputation != 60 {
		t.Fatalf("expected reputation 60 after expiry, got %d", p.Reputation)
	}

	v, err := l.GetVerification(alice, 1, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Status != VerificationActive {
		t.Fatalf("expected stored status to remain active, got %s", v.Status)
	}
	if v.IsCurrentlyValid {
		t.Fatalf("expected derived validity to be false past expiration")
	}
}

func TestRevokeVerification_Authorization(t *testing.T) {
	l := seedVerification(t)

	if err := l.RevokeVerification(tx(verifier, 5), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := l.RevokeVerification(tx(bob, 6), 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := l.RevokeVerification(tx(verifier, 6), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	v, _ := l.GetVerification(alice, 1, 6)
	if v.Status != VerificationRevoked || v.IsCurrentlyValid {
		t.Fatalf("expected revoked and invalid, got %+v", v)
	}
}

func TestRemoveVerifier_PriorVerificationsStand(t *testing.T) {
	l := seedVerification(t)

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.RemoveVerifier(tx(admin, 6), verifier); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Trust is checked at verification time, not retroactively.
	v, err := l.GetVerification(alice, 1, 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !v.IsCurrentlyValid {
		t.Fatalf("expected prior verification to remain valid")
	}
	p, _ := l.GetProfile(alice, 7)
	if p.Reputation != 85 {
		t.Fatalf("expected reputation 85, got %d", p.Reputation)
	}

	// But the removed verifier can no longer attest.
	if _, err := l.VerifySkill(tx(verifier, 8), VerifySkillInput{
		Subject: alice, SkillName: "Go", CategoryID: 1, Method: "bootcamp", Score: 70,
	}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after removal, got %v", err)
	}
}

func TestGetVerification_SubjectMismatch(t *testing.T) {
	l := seedVerification(t)

	if _, err := l.VerifySkill(tx(verifier, 5), VerifySkillInput{
		Subject: alice, SkillName: "JavaScript", CategoryID: 1, Method: "bootcamp", Score: 85,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := l.GetVerification(bob, 1, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong subject, got %v", err)
	}
}

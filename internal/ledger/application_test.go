package ledger

import (
	"errors"
	"testing"
)

// seedMarketplace builds the end-to-end preamble: a category, a trusted
// verifier, alice with a verified category-1 skill at score 90, and an
// open job posted by the employer.
func seedMarketplace(t *testing.T, minReputation uint64) *Ledger {
	t.Helper()
	l := seedVerification(t, "certification")
	if _, err := l.VerifySkill(tx(verifier, 2), VerifySkillInput{
		Subject: alice, SkillName: "React", CategoryID: 1, Method: "certification", Score: 90,
	}); err != nil {
		t.Fatalf("seed verification: %v", err)
	}
	if _, err := l.PostJob(tx(employer, 3), PostJobInput{
		Title:               "React Developer Needed",
		Description:         "e-commerce project",
		RequiredSkillNames:  []string{"React"},
		RequiredCategoryIDs: []uint64{1},
		MinReputation:       minReputation,
		MaxBudget:           5000,
		Deadline:            103,
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return l
}

func TestApplyForJob(t *testing.T) {
	l := seedMarketplace(t, 0)

	err := l.ApplyForJob(tx(alice, 4), ApplyInput{
		JobID:               1,
		Proposal:            "3 years of React experience",
		ProposedBudget:      4500,
		EstimatedCompletion: 54,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	a, err := l.GetApplication(1, alice)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != ApplicationPending || a.AppliedAt != 4 || a.ProposedBudget != 4500 {
		t.Fatalf("unexpected application %+v", a)
	}

	if err := l.ApplyForJob(tx(alice, 5), ApplyInput{JobID: 1, Proposal: "again"}); !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplyForJob_InsufficientReputation(t *testing.T) {
	l := seedMarketplace(t, 100)

	// alice's reputation is 90; the job demands 100.
	err := l.ApplyForJob(tx(alice, 4), ApplyInput{JobID: 1, Proposal: "pick me"})
	if !errors.Is(err, ErrInsufficientReputation) {
		t.Fatalf("expected ErrInsufficientReputation, got %v", err)
	}
	if _, err := l.GetApplication(1, alice); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no application stored, got %v", err)
	}
}

func TestApplyForJob_MissingRequiredSkill(t *testing.T) {
	l := seedMarketplace(t, 0)
	if _, err := l.CreateProfile(tx(bob, 3), "bob", "no verifications", ""); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	// bob has no verification in required category 1.
	if err := l.ApplyForJob(tx(bob, 4), ApplyInput{JobID: 1, Proposal: "hi"}); !errors.Is(err, ErrMissingRequiredSkill) {
		t.Fatalf("expected ErrMissingRequiredSkill, got %v", err)
	}
}

func TestApplyForJob_Preconditions(t *testing.T) {
	l := seedMarketplace(t, 0)

	if err := l.ApplyForJob(tx(alice, 4), ApplyInput{JobID: 9}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing job, got %v", err)
	}

	// carol has no profile.
	if err := l.ApplyForJob(tx(carol, 4), ApplyInput{JobID: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing profile, got %v", err)
	}

	// Deadline passed.
	if err := l.ApplyForJob(tx(alice, 103), ApplyInput{JobID: 1}); !errors.Is(err, ErrJobNotOpen) {
		t.Fatalf("expected ErrJobNotOpen past deadline, got %v", err)
	}

	// Closed job.
	if err := l.CloseJob(tx(employer, 4), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.ApplyForJob(tx(alice, 5), ApplyInput{JobID: 1}); !errors.Is(err, ErrJobNotOpen) {
		t.Fatalf("expected ErrJobNotOpen for closed job, got %v", err)
	}
}

func TestApplyForJob_LazyExpiryFlipsOutcome(t *testing.T) {
	l := seedVerification(t, "certification")
	expiration := uint64(50)
	if _, err := l.VerifySkill(tx(verifier, 2), VerifySkillInput{
		Subject: alice, SkillName: "React", CategoryID: 1, Method: "certification", Score: 90, Expiration: &expiration,
	}); err != nil {
		t.Fatalf("seed verification: %v", err)
	}
	if _, err := l.PostJob(tx(employer, 3), PostJobInput{
		Title: "Job", RequiredCategoryIDs: []uint64{1}, MinReputation: 80, Deadline: 200,
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	if _, err := l.PostJob(tx(employer, 3), PostJobInput{
		Title: "Second Job", RequiredCategoryIDs: []uint64{1}, MinReputation: 80, Deadline: 200,
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	// Before expiry the identical call succeeds.
	if err := l.ApplyForJob(tx(alice, 49), ApplyInput{JobID: 1, Proposal: "p"}); err != nil {
		t.Fatalf("unexpected err before expiry: %v", err)
	}

	// After expiry, with no intervening write, the same eligibility check
	// fails purely from lazy expiry.
	if err := l.ApplyForJob(tx(alice, 50), ApplyInput{JobID: 2, Proposal: "p"}); !errors.Is(err, ErrInsufficientReputation) {
		t.Fatalf("expected ErrInsufficientReputation after expiry, got %v", err)
	}
}

func TestRespondToApplication(t *testing.T) {
	l := seedMarketplace(t, 0)
	if err := l.ApplyForJob(tx(alice, 4), ApplyInput{JobID: 1, Proposal: "p"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := l.RespondToApplication(tx(bob, 5), 1, alice, true); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := l.RespondToApplication(tx(employer, 5), 1, bob, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing application, got %v", err)
	}

	if err := l.RespondToApplication(tx(employer, 5), 1, alice, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	a, _ := l.GetApplication(1, alice)
	if a.Status != ApplicationAccepted {
		t.Fatalf("expected accepted, got %s", a.Status)
	}
	j, _ := l.GetJob(1)
	if j.Status != JobFilled {
		t.Fatalf("expected filled, got %s", j.Status)
	}

	// Filled is terminal: no further responses.
	if err := l.RespondToApplication(tx(employer, 6), 1, alice, false); !errors.Is(err, ErrJobNotOpen) {
		t.Fatalf("expected ErrJobNotOpen, got %v", err)
	}
}

func TestRespondToApplication_AcceptRejectsOtherPending(t *testing.T) {
	l := seedMarketplace(t, 0)
	if _, err := l.CreateProfile(tx(bob, 3), "bob", "", ""); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if _, err := l.VerifySkill(tx(verifier, 3), VerifySkillInput{
		Subject: bob, SkillName: "React", CategoryID: 1, Method: "certification", Score: 75,
	}); err != nil {
		t.Fatalf("seed verification: %v", err)
	}

	if err := l.ApplyForJob(tx(alice, 4), ApplyInput{JobID: 1, Proposal: "a"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.ApplyForJob(tx(bob, 4), ApplyInput{JobID: 1, Proposal: "b"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := l.RespondToApplication(tx(employer, 5), 1, alice, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	other, _ := l.GetApplication(1, bob)
	if other.Status != ApplicationRejected {
		t.Fatalf("expected sibling application rejected, got %s", other.Status)
	}
}

func TestRespondToApplication_Reject(t *testing.T) {
	l := seedMarketplace(t, 0)
	if err := l.ApplyForJob(tx(alice, 4), ApplyInput{JobID: 1, Proposal: "p"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := l.RespondToApplication(tx(employer, 5), 1, alice, false); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	a, _ := l.GetApplication(1, alice)
	if a.Status != ApplicationRejected {
		t.Fatalf("expected rejected, got %s", a.Status)
	}
	j, _ := l.GetJob(1)
	if j.Status != JobOpen {
		t.Fatalf("expected job to stay open after rejection, got %s", j.Status)
	}

	// Rejected is terminal for the application.
	if err := l.RespondToApplication(tx(employer, 6), 1, alice, true); !errors.Is(err, ErrApplicationNotPending) {
		t.Fatalf("expected ErrApplicationNotPending, got %v", err)
	}
}

func TestWithdrawApplication(t *testing.T) {
	l := seedMarketplace(t, 0)

	if err := l.WithdrawApplication(tx(alice, 4), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := l.ApplyForJob(tx(alice, 4), ApplyInput{JobID: 1, Proposal: "p"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.WithdrawApplication(tx(alice, 5), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	a, _ := l.GetApplication(1, alice)
	if a.Status != ApplicationWithdrawn {
		t.Fatalf("expected withdrawn, got %s", a.Status)
	}
	if err := l.WithdrawApplication(tx(alice, 6), 1); !errors.Is(err, ErrApplicationNotPending) {
		t.Fatalf("expected ErrApplicationNotPending, got %v", err)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"skill-ledger/internal/ledger"
)

const (
	opCreateProfile        = "profile.create"
	opCreateCategory       = "category.create"
	opAddVerifier          = "verifier.add"
	opRemoveVerifier       = "verifier.remove"
	opVerifySkill          = "skill.verify"
	opRevokeVerification   = "verification.revoke"
	opPostJob              = "job.post"
	opCloseJob             = "job.close"
	opApplyForJob          = "application.apply"
	opRespondToApplication = "application.respond"
	opWithdrawApplication  = "application.withdraw"
)

type removeVerifierPayload struct {
	Identity ledger.Principal `json:"identity"`
}

type revokePayload struct {
	ID uint64 `json:"id"`
}

type closeJobPayload struct {
	ID uint64 `json:"id"`
}

type withdrawPayload struct {
	JobID uint64 `json:"job_id"`
}

// Replay rebuilds ledger state from the journal. Entries are applied in
// seq order with their recorded sender and height, so the rebuilt state is
// byte-for-byte the state that produced the journal. The sequencer ends up
// at the last replayed height.
func (u *Registry) Replay(ctx context.Context) error {
	if u.journal == nil {
		return nil
	}

	entries, err := u.journal.List(ctx)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for _, e := range entries {
		tx := ledger.TxContext{Sender: ledger.Principal(e.Sender), Height: e.Height}
		if err := u.applyEntry(tx, e.Op, e.Payload); err != nil {
			return fmt.Errorf("replay seq %d (%s): %w", e.Seq, e.Op, err)
		}
		u.seq.AdvanceTo(e.Height)
	}
	return nil
}

func (u *Registry) applyEntry(tx ledger.TxContext, op string, payload json.RawMessage) error {
	switch op {
	case opCreateProfile:
		var in CreateProfileInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		_, err := u.ledger.CreateProfile(tx, in.Username, in.Bio, in.PortfolioURL)
		return err

	case opCreateCategory:
		var in CreateCategoryInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		_, err := u.ledger.CreateCategory(tx, in.Name, in.Description)
		return err

	case opAddVerifier:
		var in AddVerifierInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.AddVerifier(tx, in.Identity, in.DisplayName, in.AllowedMethods)

	case opRemoveVerifier:
		var in removeVerifierPayload
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.RemoveVerifier(tx, in.Identity)

	case opVerifySkill:
		var in ledger.VerifySkillInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		_, err := u.ledger.VerifySkill(tx, in)
		return err

	case opRevokeVerification:
		var in revokePayload
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.RevokeVerification(tx, in.ID)

	case opPostJob:
		var in ledger.PostJobInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		_, err := u.ledger.PostJob(tx, in)
		return err

	case opCloseJob:
		var in closeJobPayload
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.CloseJob(tx, in.ID)

	case opApplyForJob:
		var in ledger.ApplyInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.ApplyForJob(tx, in)

	case opRespondToApplication:
		var in RespondInput
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.RespondToApplication(tx, in.JobID, in.Applicant, in.Accept)

	case opWithdrawApplication:
		var in withdrawPayload
		if err := json.Unmarshal(payload, &in); err != nil {
			return err
		}
		return u.ledger.WithdrawApplication(tx, in.JobID)

	default:
		return fmt.Errorf("unknown journal op %q", op)
	}
}

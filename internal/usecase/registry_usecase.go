package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"skill-ledger/internal/chain"
	"skill-ledger/internal/infrastructure/cache"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/repository"
	"skill-ledger/internal/ws"
)

var ErrInternal = errors.New("internal error")

type RegistryUsecase interface {
	CreateProfile(ctx context.Context, sender ledger.Principal, in CreateProfileInput) (ledger.Principal, error)
	GetProfile(ctx context.Context, identity ledger.Principal) (ledger.Profile, error)

	CreateCategory(ctx context.Context, sender ledger.Principal, in CreateCategoryInput) (uint64, error)
	GetCategory(ctx context.Context, id uint64) (ledger.Category, error)

	AddVerifier(ctx context.Context, sender ledger.Principal, in AddVerifierInput) error
	RemoveVerifier(ctx context.Context, sender, identity ledger.Principal) error
	GetVerifier(ctx context.Context, identity ledger.Principal) (ledger.Verifier, error)
	IsTrustedVerifier(ctx context.Context, identity ledger.Principal) bool

	VerifySkill(ctx context.Context, sender ledger.Principal, in ledger.VerifySkillInput) (uint64, error)
	RevokeVerification(ctx context.Context, sender ledger.Principal, id uint64) error
	GetVerification(ctx context.Context, subject ledger.Principal, id uint64) (ledger.VerificationView, error)

	PostJob(ctx context.Context, sender ledger.Principal, in ledger.PostJobInput) (uint64, error)
	CloseJob(ctx context.Context, sender ledger.Principal, id uint64) error
	GetJob(ctx context.Context, id uint64) (ledger.Job, error)

	ApplyForJob(ctx context.Context, sender ledger.Principal, in ledger.ApplyInput) error
	GetApplication(ctx context.Context, jobID uint64, applicant ledger.Principal) (ledger.Application, error)
	RespondToApplication(ctx context.Context, sender ledger.Principal, in RespondInput) error
	WithdrawApplication(ctx context.Context, sender ledger.Principal, jobID uint64) error

	CurrentHeight() uint64
}

type CreateProfileInput struct {
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddVerifierInput struct {
	Identity       ledger.Principal `json:"identity"`
	DisplayName    string           `json:"display_name"`
	AllowedMethods []string         `json:"allowed_methods"`
}

type RespondInput struct {
	JobID     uint64           `json:"job_id"`
	Applicant ledger.Principal `json:"applicant"`
	Accept    bool             `json:"accept"`
}

// Registry executes transactions against the ledger one at a time. Each
// mutation mines a block, applies atomically, and only then is journaled
// and announced; a rejected transaction leaves the ledger, the journal and
// the event feed untouched.
type Registry struct {
	mu sync.Mutex

	ledger  *ledger.Ledger
	seq     *chain.Sequencer
	journal repository.JournalRepository
	cache   *cache.Redis
	logger  *log.Logger
}

func NewRegistryUsecase(l *ledger.Ledger, seq *chain.Sequencer, journal repository.JournalRepository, c *cache.Redis, logger *log.Logger) *Registry {
	return &Registry{ledger: l, seq: seq, journal: journal, cache: c, logger: logger}
}

func (u *Registry) CurrentHeight() uint64 {
	return u.seq.Current()
}

func (u *Registry) CreateProfile(ctx context.Context, sender ledger.Principal, in CreateProfileInput) (ledger.Principal, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	key, err := u.ledger.CreateProfile(tx, in.Username, in.Bio, in.PortfolioURL)
	if err != nil {
		return "", err
	}
	u.journalTx(ctx, tx, opCreateProfile, in)
	return key, nil
}

func (u *Registry) GetProfile(_ context.Context, identity ledger.Principal) (ledger.Profile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ledger.GetProfile(identity, u.seq.Current())
}

func (u *Registry) CreateCategory(ctx context.Context, sender ledger.Principal, in CreateCategoryInput) (uint64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	id, err := u.ledger.CreateCategory(tx, in.Name, in.Description)
	if err != nil {
		return 0, err
	}
	u.journalTx(ctx, tx, opCreateCategory, in)

	// Categories are immutable, so the cache entry can never go stale.
	if c, err := u.ledger.GetCategory(id); err == nil {
		_ = u.cache.SetJSON(ctx, categoryCacheKey(id), c, time.Hour)
	}
	return id, nil
}

func (u *Registry) GetCategory(ctx context.Context, id uint64) (ledger.Category, error) {
	var cached ledger.Category
	if ok, err := u.cache.GetJSON(ctx, categoryCacheKey(id), &cached); err == nil && ok {
		return cached, nil
	}

	u.mu.Lock()
	c, err := u.ledger.GetCategory(id)
	u.mu.Unlock()
	if err != nil {
		return ledger.Category{}, err
	}

	_ = u.cache.SetJSON(ctx, categoryCacheKey(id), c, time.Hour)
	return c, nil
}

func (u *Registry) AddVerifier(ctx context.Context, sender ledger.Principal, in AddVerifierInput) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.AddVerifier(tx, in.Identity, in.DisplayName, in.AllowedMethods); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opAddVerifier, in)
	return nil
}

func (u *Registry) RemoveVerifier(ctx context.Context, sender, identity ledger.Principal) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.RemoveVerifier(tx, identity); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opRemoveVerifier, removeVerifierPayload{Identity: identity})
	return nil
}

func (u *Registry) GetVerifier(_ context.Context, identity ledger.Principal) (ledger.Verifier, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ledger.GetVerifier(identity)
}

func (u *Registry) IsTrustedVerifier(_ context.Context, identity ledger.Principal) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ledger.IsTrustedVerifier(identity)
}

func (u *Registry) VerifySkill(ctx context.Context, sender ledger.Principal, in ledger.VerifySkillInput) (uint64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	id, err := u.ledger.VerifySkill(tx, in)
	if err != nil {
		return 0, err
	}
	u.journalTx(ctx, tx, opVerifySkill, in)
	ws.NotifyLedgerEvent(ws.EventSkillVerified, tx.Height, string(in.Subject), id)
	return id, nil
}

func (u *Registry) RevokeVerification(ctx context.Context, sender ledger.Principal, id uint64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.RevokeVerification(tx, id); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opRevokeVerification, revokePayload{ID: id})
	ws.NotifyLedgerEvent(ws.EventVerificationRevoked, tx.Height, "", id)
	return nil
}

func (u *Registry) GetVerification(_ context.Context, subject ledger.Principal, id uint64) (ledger.VerificationView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ledger.GetVerification(subject, id, u.seq.Current())
}

func (u *Registry) PostJob(ctx context.Context, sender ledger.Principal, in ledger.PostJobInput) (uint64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	id, err := u.ledger.PostJob(tx, in)
	if err != nil {
		return 0, err
	}
	u.journalTx(ctx, tx, opPostJob, in)
	ws.NotifyLedgerEvent(ws.EventJobPosted, tx.Height, string(sender), id)
	return id, nil
}

func (u *Registry) CloseJob(ctx context.Context, sender ledger.Principal, id uint64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.CloseJob(tx, id); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opCloseJob, closeJobPayload{ID: id})
	ws.NotifyLedgerEvent(ws.EventJobClosed, tx.Height, string(sender), id)
	return nil
}

func (u *Registry) GetJob(_ context.Context, id uint64) (ledger.Job, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ledger.GetJob(id)
}

func (u *Registry) ApplyForJob(ctx context.Context, sender ledger.Principal, in ledger.ApplyInput) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.ApplyForJob(tx, in); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opApplyForJob, in)
	ws.NotifyLedgerEvent(ws.EventApplicationSubmitted, tx.Height, string(sender), in.JobID)
	return nil
}

func (u *Registry) GetApplication(_ context.Context, jobID uint64, applicant ledger.Principal) (ledger.Application, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ledger.GetApplication(jobID, applicant)
}

func (u *Registry) RespondToApplication(ctx context.Context, sender ledger.Principal, in RespondInput) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.RespondToApplication(tx, in.JobID, in.Applicant, in.Accept); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opRespondToApplication, in)

	evt := ws.EventApplicationRejected
	if in.Accept {
		evt = ws.EventApplicationAccepted
	}
	ws.NotifyLedgerEvent(evt, tx.Height, string(in.Applicant), in.JobID)
	return nil
}

func (u *Registry) WithdrawApplication(ctx context.Context, sender ledger.Principal, jobID uint64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.mine(sender)
	if err := u.ledger.WithdrawApplication(tx, jobID); err != nil {
		return err
	}
	u.journalTx(ctx, tx, opWithdrawApplication, withdrawPayload{JobID: jobID})
	return nil
}

// mine advances the chain by one block for the incoming transaction.
// Rejected transactions still consume a block, matching an environment
// that sequences every submitted transaction.
func (u *Registry) mine(sender ledger.Principal) ledger.TxContext {
	return ledger.TxContext{Sender: sender, Height: u.seq.Next()}
}

// journalTx records an applied transaction. The journal is write-behind:
// an append failure is logged but does not unwind the committed state.
func (u *Registry) journalTx(ctx context.Context, tx ledger.TxContext, op string, payload any) {
	if u.journal == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("journal encode failed | op=%s error=%v", op, err)
		}
		return
	}
	if err := u.journal.Append(ctx, repository.JournalEntry{
		Height:  tx.Height,
		Sender:  string(tx.Sender),
		Op:      op,
		Payload: b,
	}); err != nil && u.logger != nil {
		u.logger.Printf("journal append failed | op=%s height=%d error=%v", op, tx.Height, err)
	}
}

func categoryCacheKey(id uint64) string {
	return "category:" + strconv.FormatUint(id, 10)
}

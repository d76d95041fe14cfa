package ledger

type ApplyInput struct {
	JobID               uint64
	Proposal            string
	ProposedBudget      uint64
	EstimatedCompletion uint64
}

// ApplyForJob submits the sender's application against an open job.
// Eligibility (reputation and category coverage) is evaluated live at the
// transaction height, so the same call can flip from success to failure
// once a verification expires, with no intervening write.
func (l *Ledger) ApplyForJob(tx TxContext, in ApplyInput) error {
	j, ok := l.jobs[in.JobID]
	if !ok {
		return ErrNotFound
	}
	if j.Status != JobOpen || tx.Height >= j.Deadline {
		return ErrJobNotOpen
	}
	if _, ok := l.profiles[tx.Sender]; !ok {
		return ErrNotFound
	}
	if len(in.Proposal) > maxProposalLen {
		return ErrInvalidInput
	}
	key := ApplicationKey{JobID: in.JobID, Applicant: tx.Sender}
	if _, ok := l.applications[key]; ok {
		return ErrDuplicateApplication
	}
	if l.reputationAt(tx.Sender, tx.Height) < j.MinReputation {
		return ErrInsufficientReputation
	}
	for _, categoryID := range j.RequiredCategoryIDs {
		if !l.hasValidVerificationIn(tx.Sender, categoryID, tx.Height) {
			return ErrMissingRequiredSkill
		}
	}

	l.applications[key] = &Application{
		JobID:               in.JobID,
		Applicant:           tx.Sender,
		Proposal:            in.Proposal,
		ProposedBudget:      in.ProposedBudget,
		EstimatedCompletion: in.EstimatedCompletion,
		Status:              ApplicationPending,
		AppliedAt:           tx.Height,
	}
	return nil
}

func (l *Ledger) GetApplication(jobID uint64, applicant Principal) (Application, error) {
	a, ok := l.applications[ApplicationKey{JobID: jobID, Applicant: applicant}]
	if !ok {
		return Application{}, ErrNotFound
	}
	return *a, nil
}

// RespondToApplication accepts or rejects a pending application. Employer
// only, and only while the job is open. Accepting fills the job and
// rejects every other pending application for it, keeping the application
// state machine total.
func (l *Ledger) RespondToApplication(tx TxContext, jobID uint64, applicant Principal, accept bool) error {
	j, ok := l.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	if tx.Sender != j.Employer {
		return ErrUnauthorized
	}
	if j.Status != JobOpen {
		return ErrJobNotOpen
	}
	a, ok := l.applications[ApplicationKey{JobID: jobID, Applicant: applicant}]
	if !ok {
		return ErrNotFound
	}
	if a.Status != ApplicationPending {
		return ErrApplicationNotPending
	}

	if !accept {
		a.Status = ApplicationRejected
		return nil
	}

	a.Status = ApplicationAccepted
	j.Status = JobFilled
	for key, other := range l.applications {
		if key.JobID == jobID && key.Applicant != applicant && other.Status == ApplicationPending {
			other.Status = ApplicationRejected
		}
	}
	return nil
}

// WithdrawApplication retracts the sender's own pending application.
func (l *Ledger) WithdrawApplication(tx TxContext, jobID uint64) error {
	a, ok := l.applications[ApplicationKey{JobID: jobID, Applicant: tx.Sender}]
	if !ok {
		return ErrNotFound
	}
	if a.Status != ApplicationPending {
		return ErrApplicationNotPending
	}
	a.Status = ApplicationWithdrawn
	return nil
}

package ledger

// Principal is an opaque on-chain identity.
type Principal string

const (
	maxUsernameLen    = 50
	maxBioLen         = 500
	maxURLLen         = 200
	maxSkillNameLen   = 50
	maxMethodLen      = 30
	maxDisplayNameLen = 50
	maxTitleLen       = 100
	maxDescriptionLen = 1000
	maxProposalLen    = 1000
)

type Profile struct {
	Owner        Principal
	Username     string
	Bio          string
	PortfolioURL string
	Reputation   uint64
	CreatedAt    uint64
}

type Category struct {
	ID          uint64
	Name        string
	Description string
	CreatedBy   Principal
	CreatedAt   uint64
}

type Verifier struct {
	Identity       Principal
	DisplayName    string
	AllowedMethods []string
	AddedBy        Principal
	Trusted        bool
}

type VerificationStatus string

const (
	VerificationActive  VerificationStatus = "active"
	VerificationExpired VerificationStatus = "expired"
	VerificationRevoked VerificationStatus = "revoked"
)

type Verification struct {
	ID          uint64
	Subject     Principal
	SkillName   string
	CategoryID  uint64
	Method      string
	Score       uint64
	EvidenceURL string
	Expiration  *uint64
	Verifier    Principal
	VerifiedAt  uint64
	Status      VerificationStatus
}

// activeAt reports whether the record counts toward reputation and
// category coverage at the given height. Expiry is lazy: a stored
// status of active with an elapsed expiration is treated as inactive
// without a status write.
func (v Verification) activeAt(height uint64) bool {
	if v.Status != VerificationActive {
		return false
	}
	if v.Expiration != nil && height >= *v.Expiration {
		return false
	}
	return true
}

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
	JobFilled JobStatus = "filled"
)

type Job struct {
	ID                  uint64
	Title               string
	Description         string
	RequiredSkillNames  []string
	RequiredCategoryIDs []uint64
	MinReputation       uint64
	MaxBudget           uint64
	Deadline            uint64
	Employer            Principal
	Status              JobStatus
	CreatedAt           uint64
}

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

type ApplicationKey struct {
	JobID     uint64
	Applicant Principal
}

type Application struct {
	JobID               uint64
	Applicant           Principal
	Proposal            string
	ProposedBudget      uint64
	EstimatedCompletion uint64
	Status              ApplicationStatus
	AppliedAt           uint64
}

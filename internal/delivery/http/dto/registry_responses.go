package dto

type ProfileResponse struct {
	Principal    string `json:"principal"`
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	Reputation   uint64 `json:"reputation"`
	CreatedAt    uint64 `json:"created_at"`
}

type CategoryResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   uint64 `json:"created_at"`
}

type VerifierResponse struct {
	Principal      string   `json:"principal"`
	DisplayName    string   `json:"display_name"`
	AllowedMethods []string `json:"allowed_methods"`
	Trusted        bool     `json:"trusted"`
}

type VerificationResponse struct {
	ID               uint64  `json:"id"`
	Subject          string  `json:"subject"`
	SkillName        string  `json:"skill_name"`
	CategoryID       uint64  `json:"category_id"`
	Method           string  `json:"method"`
	Score            uint64  `json:"score"`
	EvidenceURL      string  `json:"evidence_url,omitempty"`
	Expiration       *uint64 `json:"expiration,omitempty"`
	Verifier         string  `json:"verifier"`
	VerifiedAt       uint64  `json:"verified_at"`
	Status           string  `json:"status"`
	IsCurrentlyValid bool    `json:"is_currently_valid"`
}

type JobResponse struct {
	ID                  uint64   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	RequiredSkillNames  []string `json:"required_skill_names"`
	RequiredCategoryIDs []uint64 `json:"required_category_ids"`
	MinReputation       uint64   `json:"min_reputation"`
	MaxBudget           uint64   `json:"max_budget"`
	Deadline            uint64   `json:"deadline"`
	Employer            string   `json:"employer"`
	Status              string   `json:"status"`
	CreatedAt           uint64   `json:"created_at"`
}

type ApplicationResponse struct {
	JobID               uint64 `json:"job_id"`
	Applicant           string `json:"applicant"`
	Proposal            string `json:"proposal"`
	ProposedBudget      uint64 `json:"proposed_budget"`
	EstimatedCompletion uint64 `json:"estimated_completion"`
	Status              string `json:"status"`
	AppliedAt           uint64 `json:"applied_at"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Handle    string `json:"handle"`
	Principal string `json:"principal"`
}

package ledger

import "errors"

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrNotFound               = errors.New("not found")
	ErrProfileAlreadyExists   = errors.New("profile already exists")
	ErrDuplicateVerification  = errors.New("duplicate verification")
	ErrDuplicateApplication   = errors.New("duplicate application")
	ErrInvalidScore           = errors.New("invalid score")
	ErrInvalidExpiration      = errors.New("invalid expiration")
	ErrInvalidDeadline        = errors.New("invalid deadline")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrJobNotOpen             = errors.New("job not open")
	ErrInsufficientReputation = errors.New("insufficient reputation")
	ErrMissingRequiredSkill   = errors.New("missing required skill")
	ErrApplicationNotPending  = errors.New("application not pending")
	ErrInvalidInput           = errors.New("invalid input")
)

package ledger

// TxContext carries what the execution environment supplies for a single
// transaction: the sender and the block height it executes at.
type TxContext struct {
	Sender Principal
	Height uint64
}

// Ledger is the registry state machine. It is not safe for concurrent use;
// the environment executes one transaction at a time and every entry point
// either fully applies or leaves the state untouched.
type Ledger struct {
	admin Principal

	profiles      map[Principal]*Profile
	usernames     map[string]Principal
	categories    map[uint64]*Category
	verifiers     map[Principal]*Verifier
	verifications map[uint64]*Verification
	jobs          map[uint64]*Job
	applications  map[ApplicationKey]*Application

	nextCategoryID     uint64
	nextVerificationID uint64
	nextJobID          uint64
}

func New(admin Principal) *Ledger {
	return &Ledger{
		admin:         admin,
		profiles:      make(map[Principal]*Profile),
		usernames:     make(map[string]Principal),
		categories:    make(map[uint64]*Category),
		verifiers:     make(map[Principal]*Verifier),
		verifications: make(map[uint64]*Verification),
		jobs:          make(map[uint64]*Job),
		applications:  make(map[ApplicationKey]*Application),

		nextCategoryID:     1,
		nextVerificationID: 1,
		nextJobID:          1,
	}
}

func (l *Ledger) IsAdmin(p Principal) bool {
	return p == l.admin
}

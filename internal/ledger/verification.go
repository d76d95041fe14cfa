package ledger

type VerifySkillInput struct {
	Subject     Principal
	SkillName   string
	CategoryID  uint64
	Method      string
	Score       uint64
	EvidenceURL string
	Expiration  *uint64
}

// VerificationView is what get-verification exposes: the stored record plus
// a validity flag derived from status and expiration at the queried height.
type VerificationView struct {
	Verification
	IsCurrentlyValid bool
}

// VerifySkill records an attestation by a trusted verifier and recomputes
// the subject's reputation in the same transaction. All checks run before
// the first write.
func (l *Ledger) VerifySkill(tx TxContext, in VerifySkillInput) (uint64, error) {
	caller, ok := l.verifiers[tx.Sender]
	if !ok || !caller.Trusted {
		return 0, ErrUnauthorized
	}
	if !caller.allowsMethod(in.Method) {
		return 0, ErrMethodNotAllowed
	}
	if _, ok := l.categories[in.CategoryID]; !ok {
		return 0, ErrNotFound
	}
	if _, ok := l.profiles[in.Subject]; !ok {
		return 0, ErrNotFound
	}
	if in.SkillName == "" || len(in.SkillName) > maxSkillNameLen {
		return 0, ErrInvalidInput
	}
	if len(in.EvidenceURL) > maxURLLen {
		return 0, ErrInvalidInput
	}
	if in.Score > 100 {
		return 0, ErrInvalidScore
	}
	if in.Expiration != nil && *in.Expiration <= tx.Height {
		return 0, ErrInvalidExpiration
	}
	for _, v := range l.verifications {
		if v.Subject == in.Subject && v.SkillName == in.SkillName && v.CategoryID == in.CategoryID && v.activeAt(tx.Height) {
			return 0, ErrDuplicateVerification
		}
	}

	id := l.nextVerificationID
	var expiration *uint64
	if in.Expiration != nil {
		e := *in.Expiration
		expiration = &e
	}
	l.verifications[id] = &Verification{
		ID:          id,
		Subject:     in.Subject,
		SkillName:   in.SkillName,
		CategoryID:  in.CategoryID,
		Method:      in.Method,
		Score:       in.Score,
		EvidenceURL: in.EvidenceURL,
		Expiration:  expiration,
		Verifier:    tx.Sender,
		VerifiedAt:  tx.Height,
		Status:      VerificationActive,
	}
	l.nextVerificationID++
	l.recomputeReputation(in.Subject, tx.Height)
	return id, nil
}

// RevokeVerification sets the record to revoked and recomputes the
// subject's reputation. Only the original verifier or the admin may revoke.
func (l *Ledger) RevokeVerification(tx TxContext, id uint64) error {
	v, ok := l.verifications[id]
	if !ok {
		return ErrNotFound
	}
	if tx.Sender != v.Verifier && !l.IsAdmin(tx.Sender) {
		return ErrUnauthorized
	}

	v.Status = VerificationRevoked
	l.recomputeReputation(v.Subject, tx.Height)
	return nil
}

// GetVerification looks up a record by (subject, id).
func (l *Ledger) GetVerification(subject Principal, id uint64, height uint64) (VerificationView, error) {
	v, ok := l.verifications[id]
	if !ok || v.Subject != subject {
		return VerificationView{}, ErrNotFound
	}
	out := *v
	if v.Expiration != nil {
		e := *v.Expiration
		out.Expiration = &e
	}
	return VerificationView{Verification: out, IsCurrentlyValid: v.activeAt(height)}, nil
}

// reputationAt is the floor of the mean score over the subject's active,
// non-expired verifications at the given height, 0 when there are none.
func (l *Ledger) reputationAt(subject Principal, height uint64) uint64 {
	var sum, n uint64
	for _, v := range l.verifications {
		if v.Subject == subject && v.activeAt(height) {
			sum += v.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

// recomputeReputation persists the aggregate on the profile. The stored
// value is a snapshot at write time; reads recompute so that lazy expiry
// stays observable without an intervening write.
func (l *Ledger) recomputeReputation(subject Principal, height uint64) {
	p, ok := l.profiles[subject]
	if !ok {
		return
	}
	p.Reputation = l.reputationAt(subject, height)
}

// hasValidVerificationIn reports whether the subject holds at least one
// currently valid verification in the category.
func (l *Ledger) hasValidVerificationIn(subject Principal, categoryID uint64, height uint64) bool {
	for _, v := range l.verifications {
		if v.Subject == subject && v.CategoryID == categoryID && v.activeAt(height) {
			return true
		}
	}
	return false
}

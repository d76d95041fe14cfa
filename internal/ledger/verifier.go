package ledger

// AddVerifier delegates skill attestation to the given identity, scoped to
// the listed verification methods. Admin only. Overwrites any prior record
// for the identity.
func (l *Ledger) AddVerifier(tx TxContext, identity Principal, displayName string, allowedMethods []string) error {
	if !l.IsAdmin(tx.Sender) {
		return ErrUnauthorized
	}
	if displayName == "" || len(displayName) > maxDisplayNameLen {
		return ErrInvalidInput
	}
	if len(allowedMethods) == 0 {
		return ErrInvalidInput
	}
	for _, m := range allowedMethods {
		if m == "" || len(m) > maxMethodLen {
			return ErrInvalidInput
		}
	}

	methods := make([]string, len(allowedMethods))
	copy(methods, allowedMethods)
	l.verifiers[identity] = &Verifier{
		Identity:       identity,
		DisplayName:    displayName,
		AllowedMethods: methods,
		AddedBy:        tx.Sender,
		Trusted:        true,
	}
	return nil
}

func (l *Ledger) IsTrustedVerifier(identity Principal) bool {
	v, ok := l.verifiers[identity]
	return ok && v.Trusted
}

// RemoveVerifier withdraws trust from a verifier. Verifications already
// issued stay in place; trust is checked at verification time, not
// retroactively.
func (l *Ledger) RemoveVerifier(tx TxContext, identity Principal) error {
	if !l.IsAdmin(tx.Sender) {
		return ErrUnauthorized
	}
	v, ok := l.verifiers[identity]
	if !ok {
		return ErrNotFound
	}
	v.Trusted = false
	return nil
}

func (l *Ledger) GetVerifier(identity Principal) (Verifier, error) {
	v, ok := l.verifiers[identity]
	if !ok {
		return Verifier{}, ErrNotFound
	}
	out := *v
	out.AllowedMethods = append([]string(nil), v.AllowedMethods...)
	return out, nil
}

func (v Verifier) allowsMethod(method string) bool {
	for _, m := range v.AllowedMethods {
		if m == method {
			return true
		}
	}
	return false
}

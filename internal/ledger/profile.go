package ledger

// CreateProfile registers a profile for the sender. Usernames are unique
// across all profiles and immutable once set. Returns the sender principal,
// which is the profile key.
func (l *Ledger) CreateProfile(tx TxContext, username, bio, portfolioURL string) (Principal, error) {
	if _, ok := l.profiles[tx.Sender]; ok {
		return "", ErrProfileAlreadyExists
	}
	if username == "" || len(username) > maxUsernameLen {
		return "", ErrInvalidInput
	}
	if len(bio) > maxBioLen {
		return "", ErrInvalidInput
	}
	if len(portfolioURL) > maxURLLen {
		return "", ErrInvalidInput
	}
	if _, taken := l.usernames[username]; taken {
		return "", ErrProfileAlreadyExists
	}

	l.profiles[tx.Sender] = &Profile{
		Owner:        tx.Sender,
		Username:     username,
		Bio:          bio,
		PortfolioURL: portfolioURL,
		Reputation:   0,
		CreatedAt:    tx.Height,
	}
	l.usernames[username] = tx.Sender
	return tx.Sender, nil
}

// GetProfile returns the profile with reputation recomputed live at the
// given height, so reads past a verification's expiry see the drop even
// though the stored value was written earlier.
func (l *Ledger) GetProfile(identity Principal, height uint64) (Profile, error) {
	p, ok := l.profiles[identity]
	if !ok {
		return Profile{}, ErrNotFound
	}
	out := *p
	out.Reputation = l.reputationAt(identity, height)
	return out, nil
}

package ledger

// CreateCategory adds a skill category to the taxonomy. Admin only.
// Ids are dense and 1-based; a failed attempt never consumes one.
func (l *Ledger) CreateCategory(tx TxContext, name, description string) (uint64, error) {
	if !l.IsAdmin(tx.Sender) {
		return 0, ErrUnauthorized
	}
	if name == "" || len(name) > maxDisplayNameLen {
		return 0, ErrInvalidInput
	}
	if len(description) > maxDescriptionLen {
		return 0, ErrInvalidInput
	}

	id := l.nextCategoryID
	l.categories[id] = &Category{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedBy:   tx.Sender,
		CreatedAt:   tx.Height,
	}
	l.nextCategoryID++
	return id, nil
}

func (l *Ledger) GetCategory(id uint64) (Category, error) {
	c, ok := l.categories[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return *c, nil
}

package ledger

type PostJobInput struct {
	Title               string
	Description         string
	RequiredSkillNames  []string
	RequiredCategoryIDs []uint64
	MinReputation       uint64
	MaxBudget           uint64
	Deadline            uint64
}

// PostJob opens a job posting. Any identity may post; eligibility
// thresholds are declarative until checked at application time.
func (l *Ledger) PostJob(tx TxContext, in PostJobInput) (uint64, error) {
	if in.Title == "" || len(in.Title) > maxTitleLen {
		return 0, ErrInvalidInput
	}
	if len(in.Description) > maxDescriptionLen {
		return 0, ErrInvalidInput
	}
	for _, s := range in.RequiredSkillNames {
		if s == "" || len(s) > maxSkillNameLen {
			return 0, ErrInvalidInput
		}
	}
	if in.Deadline <= tx.Height {
		return 0, ErrInvalidDeadline
	}

	id := l.nextJobID
	l.jobs[id] = &Job{
		ID:                  id,
		Title:               in.Title,
		Description:         in.Description,
		RequiredSkillNames:  append([]string(nil), in.RequiredSkillNames...),
		RequiredCategoryIDs: append([]uint64(nil), in.RequiredCategoryIDs...),
		MinReputation:       in.MinReputation,
		MaxBudget:           in.MaxBudget,
		Deadline:            in.Deadline,
		Employer:            tx.Sender,
		Status:              JobOpen,
		CreatedAt:           tx.Height,
	}
	l.nextJobID++
	return id, nil
}

// CloseJob withdraws an open posting. Employer only; closed is terminal.
func (l *Ledger) CloseJob(tx TxContext, id uint64) error {
	j, ok := l.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if tx.Sender != j.Employer {
		return ErrUnauthorized
	}
	if j.Status != JobOpen {
		return ErrJobNotOpen
	}
	j.Status = JobClosed
	return nil
}

func (l *Ledger) GetJob(id uint64) (Job, error) {
	j, ok := l.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	out := *j
	out.RequiredSkillNames = append([]string(nil), j.RequiredSkillNames...)
	out.RequiredCategoryIDs = append([]uint64(nil), j.RequiredCategoryIDs...)
	return out, nil
}

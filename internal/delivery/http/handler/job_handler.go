package handler

import (
	"skill-ledger/internal/delivery/http/dto"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/pkg/response"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.RegistryUsecase
}

type postJobRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	RequiredSkillNames  []string `json:"required_skill_names"`
	RequiredCategoryIDs []uint64 `json:"required_category_ids"`
	MinReputation       uint64   `json:"min_reputation"`
	MaxBudget           uint64   `json:"max_budget"`
	Deadline            uint64   `json:"deadline"`
}

type applyRequest struct {
	Proposal            string `json:"proposal"`
	ProposedBudget      uint64 `json:"proposed_budget"`
	EstimatedCompletion uint64 `json:"estimated_completion"`
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

func NewJobHandler(uc usecase.RegistryUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Post("/", h.Post)
	grp.Get("/:id", h.Get)
	grp.Post("/:id/close", h.Close)
	grp.Post("/:id/applications", h.Apply)
	grp.Delete("/:id/applications", h.Withdraw)
	grp.Get("/:id/applications/:principal", h.GetApplication)
	grp.Post("/:id/applications/:principal/respond", h.Respond)
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.PostJob(c.Context(), sender, ledger.PostJobInput{
		Title:               req.Title,
		Description:         req.Description,
		RequiredSkillNames:  req.RequiredSkillNames,
		RequiredCategoryIDs: req.RequiredCategoryIDs,
		MinReputation:       req.MinReputation,
		MaxBudget:           req.MaxBudget,
		Deadline:            req.Deadline,
	})
	if err != nil {
		return mapLedgerError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, map[string]any{"id": id})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	job, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapLedgerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobToResponse(job))
}

func (h *JobHandler) Close(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.CloseJob(c.Context(), sender, id); err != nil {
		return mapLedgerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) Apply(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ApplyForJob(c.Context(), sender, ledger.ApplyInput{
		JobID:               id,
		Proposal:            req.Proposal,
		ProposedBudget:      req.ProposedBudget,
		EstimatedCompletion: req.EstimatedCompletion,
	}); err != nil {
		return mapLedgerError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, map[string]any{"applied": true})
}

func (h *JobHandler) Withdraw(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.WithdrawApplication(c.Context(), sender, id); err != nil {
		return mapLedgerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) GetApplication(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	applicant := ledger.Principal(c.Params("principal"))
	if applicant == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	app, err := h.uc.GetApplication(c.Context(), id, applicant)
	if err != nil {
		return mapLedgerError(err)
	}

	res := dto.ApplicationResponse{
		JobID:               app.JobID,
		Applicant:           string(app.Applicant),
		Proposal:            app.Proposal,
		ProposedBudget:      app.ProposedBudget,
		EstimatedCompletion: app.EstimatedCompletion,
		Status:              string(app.Status),
		AppliedAt:           app.AppliedAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *JobHandler) Respond(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	applicant := ledger.Principal(c.Params("principal"))
	if applicant == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	var req respondRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.RespondToApplication(c.Context(), sender, usecase.RespondInput{
		JobID:     id,
		Applicant: applicant,
		Accept:    req.Accept,
	}); err != nil {
		return mapLedgerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"accepted": req.Accept})
}

func jobToResponse(job ledger.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                  job.ID,
		Title:               job.Title,
		Description:         job.Description,
		RequiredSkillNames:  job.RequiredSkillNames,
		RequiredCategoryIDs: job.RequiredCategoryIDs,
		MinReputation:       job.MinReputation,
		MaxBudget:           job.MaxBudget,
		Deadline:            job.Deadline,
		Employer:            string(job.Employer),
		Status:              string(job.Status),
		CreatedAt:           job.CreatedAt,
	}
}

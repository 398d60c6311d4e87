package handler

import (
	"errors"

	"resumatch/internal/delivery/http/dto"
	"resumatch/internal/delivery/http/middleware"
	"resumatch/internal/domain/user"
	"resumatch/internal/pkg/response"
	"resumatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc   usecase.JobUsecase
	auth *middleware.AuthMiddleware
}

type postJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type applyRequest struct {
	ResumeID uuid.UUID `json:"resume_id"`
}

func NewJobHandler(uc usecase.JobUsecase, auth *middleware.AuthMiddleware) *JobHandler {
	return &JobHandler{uc: uc, auth: auth}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/mine", h.Mine, h.auth.RequireRole(user.RoleRecruiter))
	grp.Get("/:id", h.Get)
	grp.Get("/:id/match", h.Match)
	grp.Post("/:id/apply", h.Apply)

	recruiter := grp.Group("", h.auth.RequireRole(user.RoleRecruiter))
	recruiter.Post("/", h.Post)
	recruiter.Get("/:id/applicants", h.Applicants)
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.PostJob(c.Context(), usecase.PostJobInput{
		RecruiterID: recruiterID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job posted successfully", dto.NewJobResponse(p))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit", 20)
	offset := fiber.Query[int](c, "offset", 0)

	items, err := h.uc.ListJobs(c.Context(), limit, offset)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items))
}

func (h *JobHandler) Mine(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.MyPostings(c.Context(), recruiterID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *JobHandler) Match(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	resumeID, err := uuid.Parse(c.Query("resume_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume_id", nil, err)
	}

	res, err := h.uc.MatchResume(c.Context(), userID, jobID, resumeID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewQuickAnalysisResponse(res))
}

func (h *JobHandler) Apply(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Apply(c.Context(), userID, jobID, req.ResumeID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(a))
}

func (h *JobHandler) Applicants(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.Applicants(c.Context(), recruiterID, jobID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicantResponses(items))
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrJobDescriptionTooShort):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description too short", nil, err)
	case errors.Is(err, usecase.ErrJobDescriptionTooLong):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description too long", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

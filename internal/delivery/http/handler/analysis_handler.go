package handler

import (
	"errors"
	"fmt"

	"resumatch/internal/delivery/http/dto"
	"resumatch/internal/delivery/http/middleware"
	"resumatch/internal/pkg/response"
	"resumatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

type analyzeRequest struct {
	ResumeID       uuid.UUID  `json:"resume_id"`
	JobID          *uuid.UUID `json:"job_id"`
	JobDescription string     `json:"job_description"`
}

type quickAnalyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analyses")
	grp.Post("/", h.Analyze)
	grp.Post("/quick", h.QuickAnalyze)
	grp.Get("/", h.History)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/report", h.Report)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Analyze(c.Context(), usecase.AnalyzeInput{
		UserID:         userID,
		ResumeID:       req.ResumeID,
		JobID:          req.JobID,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Analysis completed", dto.NewAnalysisResponse(a))
}

func (h *AnalysisHandler) QuickAnalyze(c fiber.Ctx) error {
	if _, err := userIDFromCtx(c); err != nil {
		return err
	}

	var req quickAnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.QuickAnalyze(c.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewQuickAnalysisResponse(res))
}

func (h *AnalysisHandler) History(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	limit := fiber.Query[int](c, "limit", 20)
	items, err := h.uc.History(c.Context(), userID, limit)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisResponses(items))
}

func (h *AnalysisHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	analysisID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	a, err := h.uc.GetAnalysis(c.Context(), userID, analysisID)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisResponse(a))
}

func (h *AnalysisHandler) Report(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	analysisID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	pdf, err := h.uc.Report(c.Context(), userID, analysisID)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="match_report_%s.pdf"`, analysisID))
	return c.Send(pdf)
}

func mapAnalysisUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrJobDescriptionTooShort):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description too short", nil, err)
	case errors.Is(err, usecase.ErrJobDescriptionTooLong):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description too long", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrAnalysisNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Analysis not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
	"examdesk/internal/service"
)

// ExamHandler handles exam endpoints.
type ExamHandler struct {
	svc service.ExamService
}

// NewExamHandler creates an exam handler.
func NewExamHandler(svc service.ExamService) *ExamHandler {
	return &ExamHandler{svc: svc}
}

// CreateExamRequest represents an exam creation request.
type CreateExamRequest struct {
	Title   string      `json:"title" validate:"required"`
	Courses []uuid.UUID `json:"courses,omitempty"`
}

// UpdateExamRequest represents an exam update request. Ids travel in the
// body, not the path.
type UpdateExamRequest struct {
	ID      uuid.UUID   `json:"id" validate:"required"`
	Title   string      `json:"title" validate:"required"`
	Courses []uuid.UUID `json:"courses" validate:"required"`
}

// DeleteExamRequest represents an exam delete request.
type DeleteExamRequest struct {
	ID uuid.UUID `json:"id"`
}

// List godoc
// @Summary List all exams
// @Tags exams
// @Produce json
// @Success 200 {array} model.Exam
// @Failure 400 {object} errors.ErrorResponse
// @Router /exams [get]
func (h *ExamHandler) List(c echo.Context) error {
	exams, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, exams)
}

// Create godoc
// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body CreateExamRequest true "Exam data"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /exams [post]
func (h *ExamHandler) Create(c echo.Context) error {
	var req CreateExamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "title field required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "title field required"})
	}

	exam, err := h.svc.Create(c.Request().Context(), req.Title, req.Courses)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("New exam %s created", exam.Title)})
}

// Update godoc
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body UpdateExamRequest true "Exam data"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /exams [patch]
func (h *ExamHandler) Update(c echo.Context) error {
	var req UpdateExamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	exam, err := h.svc.Update(c.Request().Context(), req.ID, req.Title, req.Courses)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s updated", exam.Title)})
}

// Delete godoc
// @Summary Delete an exam
// @Tags exams
// @Accept json
// @Produce plain
// @Param request body DeleteExamRequest true "Exam id"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /exams [delete]
func (h *ExamHandler) Delete(c echo.Context) error {
	var req DeleteExamRequest
	if err := c.Bind(&req); err != nil || req.ID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "exam ID required"})
	}

	exam, err := h.svc.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("exam title %s with ID %s deleted", exam.Title, exam.ID))
}

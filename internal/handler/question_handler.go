package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
	"examdesk/internal/service"
)

// QuestionHandler handles question endpoints.
type QuestionHandler struct {
	svc service.QuestionService
}

// NewQuestionHandler creates a question handler.
func NewQuestionHandler(svc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// CreateQuestionRequest represents a question creation request.
type CreateQuestionRequest struct {
	Number  int       `json:"number" validate:"required"`
	PaperID uuid.UUID `json:"paperId" validate:"required"`
	Text    string    `json:"text" validate:"required"`
	Answer  string    `json:"answer" validate:"required"`
}

// UpdateQuestionRequest represents a question update request.
type UpdateQuestionRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Number  int       `json:"number" validate:"required"`
	PaperID uuid.UUID `json:"paperId" validate:"required"`
	Text    string    `json:"text" validate:"required"`
	Answer  string    `json:"answer" validate:"required"`
}

// DeleteQuestionRequest represents a question delete request.
type DeleteQuestionRequest struct {
	ID uuid.UUID `json:"id"`
}

// List godoc
// @Summary List all questions with their paper years
// @Tags questions
// @Produce json
// @Success 200 {array} service.QuestionListing
// @Failure 400 {object} errors.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, questions)
}

// Create godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequest true "Question data"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields required"})
	}

	question, err := h.svc.Create(c.Request().Context(), req.Number, req.PaperID, req.Text, req.Answer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("New question %d created", question.Number)})
}

// Update godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body UpdateQuestionRequest true "Question data"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /questions [patch]
func (h *QuestionHandler) Update(c echo.Context) error {
	var req UpdateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	question, err := h.svc.Update(c.Request().Context(), req.ID, req.Number, req.PaperID, req.Text, req.Answer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%d updated", question.Number)})
}

// Delete godoc
// @Summary Delete a question
// @Tags questions
// @Accept json
// @Produce plain
// @Param request body DeleteQuestionRequest true "Question id"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /questions [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	var req DeleteQuestionRequest
	if err := c.Bind(&req); err != nil || req.ID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "question ID required"})
	}

	question, err := h.svc.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("question number %d with ID %s deleted", question.Number, question.ID))
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
	"examdesk/internal/service"
)

// PaperHandler handles paper endpoints.
type PaperHandler struct {
	svc service.PaperService
}

// NewPaperHandler creates a paper handler.
func NewPaperHandler(svc service.PaperService) *PaperHandler {
	return &PaperHandler{svc: svc}
}

// CreatePaperRequest represents a paper creation request. Questions may be
// attached later.
type CreatePaperRequest struct {
	Year      string      `json:"year" validate:"required"`
	CourseID  uuid.UUID   `json:"courseId" validate:"required"`
	Questions []uuid.UUID `json:"questions,omitempty"`
}

// UpdatePaperRequest represents a paper update request.
type UpdatePaperRequest struct {
	ID        uuid.UUID   `json:"id" validate:"required"`
	Year      string      `json:"year" validate:"required"`
	CourseID  uuid.UUID   `json:"courseId" validate:"required"`
	Questions []uuid.UUID `json:"questions" validate:"required"`
}

// DeletePaperRequest represents a paper delete request.
type DeletePaperRequest struct {
	ID uuid.UUID `json:"id"`
}

// List godoc
// @Summary List all papers with their course titles
// @Tags papers
// @Produce json
// @Success 200 {array} service.PaperListing
// @Failure 400 {object} errors.ErrorResponse
// @Router /papers [get]
func (h *PaperHandler) List(c echo.Context) error {
	papers, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, papers)
}

// Create godoc
// @Summary Create a paper
// @Tags papers
// @Accept json
// @Produce json
// @Param request body CreatePaperRequest true "Paper data"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /papers [post]
func (h *PaperHandler) Create(c echo.Context) error {
	var req CreatePaperRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "year and courseId fields required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "year and courseId fields required"})
	}

	paper, err := h.svc.Create(c.Request().Context(), req.Year, req.CourseID, req.Questions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("New paper %s created", paper.Year)})
}

// Update godoc
// @Summary Update a paper
// @Tags papers
// @Accept json
// @Produce json
// @Param request body UpdatePaperRequest true "Paper data"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /papers [patch]
func (h *PaperHandler) Update(c echo.Context) error {
	var req UpdatePaperRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	paper, err := h.svc.Update(c.Request().Context(), req.ID, req.Year, req.CourseID, req.Questions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s updated", paper.Year)})
}

// Delete godoc
// @Summary Delete a paper
// @Tags papers
// @Accept json
// @Produce plain
// @Param request body DeletePaperRequest true "Paper id"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /papers [delete]
func (h *PaperHandler) Delete(c echo.Context) error {
	var req DeletePaperRequest
	if err := c.Bind(&req); err != nil || req.ID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "paper ID required"})
	}

	paper, err := h.svc.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("paper year %s with ID %s deleted", paper.Year, paper.ID))
}

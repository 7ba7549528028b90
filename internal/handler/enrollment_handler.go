package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
	"examdesk/internal/service"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	svc service.EnrollmentService
}

// NewEnrollmentHandler creates an enrollment handler.
func NewEnrollmentHandler(svc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

// CreateEnrollmentRequest represents an enrollment creation request.
type CreateEnrollmentRequest struct {
	UserID   uuid.UUID `json:"userId" validate:"required"`
	CourseID uuid.UUID `json:"courseId" validate:"required"`
}

// UpdateEnrollmentRequest represents an enrollment update request. Active is
// a pointer so an explicit false is distinguishable from an absent field.
type UpdateEnrollmentRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	UserID   uuid.UUID `json:"userId" validate:"required"`
	CourseID uuid.UUID `json:"courseId" validate:"required"`
	Active   *bool     `json:"active" validate:"required"`
}

// DeleteEnrollmentRequest represents an enrollment delete request.
type DeleteEnrollmentRequest struct {
	ID uuid.UUID `json:"id"`
}

// List godoc
// @Summary List all enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {array} model.Enrollment
// @Failure 400 {object} errors.ErrorResponse
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c echo.Context) error {
	enrollments, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, enrollments)
}

// Create godoc
// @Summary Enroll a user in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body CreateEnrollmentRequest true "Enrollment data"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c echo.Context) error {
	var req CreateEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "all fields required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "all fields required"})
	}

	enrollment, err := h.svc.Create(c.Request().Context(), req.UserID, req.CourseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{
		Message: fmt.Sprintf("New enrollment by userId: %s for courseId %s", enrollment.UserID, enrollment.CourseID),
	})
}

// Update godoc
// @Summary Update an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body UpdateEnrollmentRequest true "Enrollment data"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /enrollments [patch]
func (h *EnrollmentHandler) Update(c echo.Context) error {
	var req UpdateEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	enrollment, err := h.svc.Update(c.Request().Context(), req.ID, req.UserID, req.CourseID, *req.Active)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s updated", enrollment.ID)})
}

// Delete godoc
// @Summary Delete an enrollment
// @Tags enrollments
// @Accept json
// @Produce plain
// @Param request body DeleteEnrollmentRequest true "Enrollment id"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /enrollments [delete]
func (h *EnrollmentHandler) Delete(c echo.Context) error {
	var req DeleteEnrollmentRequest
	if err := c.Bind(&req); err != nil || req.ID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "enrollment ID required"})
	}

	enrollment, err := h.svc.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("enrollment %s deleted", enrollment.ID))
}

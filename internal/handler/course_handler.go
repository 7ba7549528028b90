package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
	"examdesk/internal/service"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler creates a course handler.
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// CreateCourseRequest represents a course creation request.
type CreateCourseRequest struct {
	Title     string      `json:"title" validate:"required"`
	ExamID    uuid.UUID   `json:"examId" validate:"required"`
	Structure string      `json:"structure" validate:"required"`
	Years     []uuid.UUID `json:"years" validate:"required"`
}

// UpdateCourseRequest represents a course update request.
type UpdateCourseRequest struct {
	ID        uuid.UUID   `json:"id" validate:"required"`
	Title     string      `json:"title" validate:"required"`
	ExamID    uuid.UUID   `json:"examId" validate:"required"`
	Structure string      `json:"structure" validate:"required"`
	Years     []uuid.UUID `json:"years" validate:"required"`
}

// DeleteCourseRequest represents a course delete request.
type DeleteCourseRequest struct {
	ID uuid.UUID `json:"id"`
}

// List godoc
// @Summary List all courses with their exam titles
// @Tags courses
// @Produce json
// @Success 200 {array} service.CourseListing
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, courses)
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "Course data"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "all fields required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "all fields required"})
	}

	course, err := h.svc.Create(c.Request().Context(), req.Title, req.ExamID, req.Structure, req.Years)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("New course %s created", course.Title)})
}

// Update godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body UpdateCourseRequest true "Course data"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /courses [patch]
func (h *CourseHandler) Update(c echo.Context) error {
	var req UpdateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "All fields are required"})
	}

	course, err := h.svc.Update(c.Request().Context(), req.ID, req.Title, req.ExamID, req.Structure, req.Years)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s updated", course.Title)})
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Accept json
// @Produce plain
// @Param request body DeleteCourseRequest true "Course id"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	var req DeleteCourseRequest
	if err := c.Bind(&req); err != nil || req.ID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Message: "course ID required"})
	}

	course, err := h.svc.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("course title %s with ID %s deleted", course.Title, course.ID))
}

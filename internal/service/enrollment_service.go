package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

// EnrollmentService exposes enrollment operations.
type EnrollmentService interface {
	List(ctx context.Context) ([]model.Enrollment, error)
	Create(ctx context.Context, userID, courseID uuid.UUID) (*model.Enrollment, error)
	Update(ctx context.Context, id, userID, courseID uuid.UUID, active bool) (*model.Enrollment, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Enrollment, error)
}

type enrollmentService struct {
	enrollments repository.EnrollmentRepository
}

// NewEnrollmentService builds an EnrollmentService.
func NewEnrollmentService(enrollments repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{enrollments: enrollments}
}

func (s *enrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	enrollments, err := s.enrollments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	if len(enrollments) == 0 {
		return nil, errs.Message(errs.ErrNotFound, "No enrollments found")
	}
	return enrollments, nil
}

// Create rejects an enrollment as a duplicate when some enrollment already
// carries the user id AND some enrollment already carries the course id. The
// two lookups are independent, not a query on the pair; this reproduces the
// API's historical behaviour exactly.
func (s *enrollmentService) Create(ctx context.Context, userID, courseID uuid.UUID) (*model.Enrollment, error) {
	userEnrolled, err := s.enrollments.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user enrollments: %w", err)
	}
	courseEnrolled, err := s.enrollments.ExistsByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course enrollments: %w", err)
	}
	if userEnrolled && courseEnrolled {
		return nil, errs.Message(errs.ErrDuplicate, "Already Enrolled to the course")
	}

	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Active:   true,
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) Update(ctx context.Context, id, userID, courseID uuid.UUID, active bool) (*model.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "enrollment not found")
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	enrollment.UserID = userID
	enrollment.CourseID = courseID
	enrollment.Active = active

	if err := s.enrollments.Save(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("save enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) Delete(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "enrollment not found")
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	if err := s.enrollments.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete enrollment: %w", err)
	}
	return enrollment, nil
}

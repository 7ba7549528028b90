package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

// ExamService exposes exam catalogue operations.
type ExamService interface {
	List(ctx context.Context) ([]model.Exam, error)
	Create(ctx context.Context, title string, courses []uuid.UUID) (*model.Exam, error)
	Update(ctx context.Context, id uuid.UUID, title string, courses []uuid.UUID) (*model.Exam, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Exam, error)
}

type examService struct {
	exams   repository.ExamRepository
	courses repository.CourseRepository
}

// NewExamService builds an ExamService.
func NewExamService(exams repository.ExamRepository, courses repository.CourseRepository) ExamService {
	return &examService{exams: exams, courses: courses}
}

func (s *examService) List(ctx context.Context) ([]model.Exam, error) {
	exams, err := s.exams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	if len(exams) == 0 {
		return nil, errs.Message(errs.ErrNotFound, "No exams found")
	}
	return exams, nil
}

func (s *examService) Create(ctx context.Context, title string, courses []uuid.UUID) (*model.Exam, error) {
	if _, err := s.exams.FindByTitleFold(ctx, title); err == nil {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate exam Title")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate title: %w", err)
	}

	exam := &model.Exam{Title: title}
	if len(courses) > 0 {
		exam.Courses = datatypes.NewJSONSlice(courses)
	}

	if err := s.exams.Create(ctx, exam); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}
	return exam, nil
}

func (s *examService) Update(ctx context.Context, id uuid.UUID, title string, courses []uuid.UUID) (*model.Exam, error) {
	exam, err := s.exams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "exam not found")
		}
		return nil, fmt.Errorf("find exam: %w", err)
	}

	// A match on the record being updated is not a duplicate.
	if dup, err := s.exams.FindByTitleFold(ctx, title); err == nil && dup.ID != id {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate exam")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate title: %w", err)
	}

	exam.Title = title
	exam.Courses = datatypes.NewJSONSlice(courses)

	if err := s.exams.Save(ctx, exam); err != nil {
		return nil, fmt.Errorf("save exam: %w", err)
	}
	return exam, nil
}

func (s *examService) Delete(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	// Dependent check runs before the existence check, matching the API's
	// observable ordering.
	hasCourses, err := s.courses.ExistsByExamID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check dependent courses: %w", err)
	}
	if hasCourses {
		return nil, errs.Message(errs.ErrHasDependents, "Exam has assigned courses")
	}

	exam, err := s.exams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "exam not found")
		}
		return nil, fmt.Errorf("find exam: %w", err)
	}

	if err := s.exams.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete exam: %w", err)
	}
	return exam, nil
}

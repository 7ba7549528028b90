package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"examdesk/internal/cache"
	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

const parentCacheTTL = 5 * time.Minute

// CourseListing is a course enriched with its exam's title for display. The
// title is omitted when the referenced exam no longer exists.
type CourseListing struct {
	model.Course
	ExamTitle string `json:"examtitle,omitempty"`
}

// CourseService exposes course operations.
type CourseService interface {
	List(ctx context.Context) ([]CourseListing, error)
	Create(ctx context.Context, title string, examID uuid.UUID, structure string, years []uuid.UUID) (*model.Course, error)
	Update(ctx context.Context, id uuid.UUID, title string, examID uuid.UUID, structure string, years []uuid.UUID) (*model.Course, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Course, error)
}

type courseService struct {
	courses     repository.CourseRepository
	exams       repository.ExamRepository
	papers      repository.PaperRepository
	enrollments repository.EnrollmentRepository
	cache       *cache.Client
}

// NewCourseService builds a CourseService.
func NewCourseService(
	courses repository.CourseRepository,
	exams repository.ExamRepository,
	papers repository.PaperRepository,
	enrollments repository.EnrollmentRepository,
	cache *cache.Client,
) CourseService {
	return &courseService{
		courses:     courses,
		exams:       exams,
		papers:      papers,
		enrollments: enrollments,
		cache:       cache,
	}
}

func (s *courseService) examCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("exam:%s", id)
}

// parentExam resolves the exam a course references, best effort, through the
// cache.
func (s *courseService) parentExam(ctx context.Context, id uuid.UUID) *model.Exam {
	if data, _ := s.cache.Get(ctx, s.examCacheKey(id)); data != nil {
		var cached model.Exam
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	exam, err := s.exams.FindByID(ctx, id)
	if err != nil {
		return nil
	}

	if payload, err := json.Marshal(exam); err == nil {
		_ = s.cache.Set(ctx, s.examCacheKey(id), payload, parentCacheTTL)
	}
	return exam
}

func (s *courseService) List(ctx context.Context) ([]CourseListing, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, errs.Message(errs.ErrNotFound, "No courses found")
	}

	listings := make([]CourseListing, 0, len(courses))
	for _, course := range courses {
		listing := CourseListing{Course: course}
		if exam := s.parentExam(ctx, course.ExamID); exam != nil {
			listing.ExamTitle = exam.Title
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *courseService) Create(ctx context.Context, title string, examID uuid.UUID, structure string, years []uuid.UUID) (*model.Course, error) {
	if _, err := s.courses.FindByTitleFold(ctx, title); err == nil {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate course Title")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate title: %w", err)
	}

	course := &model.Course{
		Title:     title,
		ExamID:    examID,
		Structure: structure,
		Years:     datatypes.NewJSONSlice(years),
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uuid.UUID, title string, examID uuid.UUID, structure string, years []uuid.UUID) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "course not found")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if dup, err := s.courses.FindByTitleFold(ctx, title); err == nil && dup.ID != id {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate course")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate title: %w", err)
	}

	course.Title = title
	course.ExamID = examID
	course.Structure = structure
	course.Years = datatypes.NewJSONSlice(years)

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, fmt.Errorf("save course: %w", err)
	}
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	hasPapers, err := s.papers.ExistsByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check dependent papers: %w", err)
	}
	if hasPapers {
		return nil, errs.Message(errs.ErrHasDependents, "Course has assigned papers")
	}

	hasEnrollments, err := s.enrollments.ExistsByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check dependent enrollments: %w", err)
	}
	if hasEnrollments {
		return nil, errs.Message(errs.ErrHasDependents, "Course has assigned enrollments")
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "course not found")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete course: %w", err)
	}
	return course, nil
}

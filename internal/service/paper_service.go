package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"examdesk/internal/cache"
	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

// PaperListing is a paper enriched with its course's title for display. The
// title is omitted when the referenced course no longer exists.
type PaperListing struct {
	model.Paper
	CourseTitle string `json:"coursetitle,omitempty"`
}

// PaperService exposes paper operations.
type PaperService interface {
	List(ctx context.Context) ([]PaperListing, error)
	Create(ctx context.Context, year string, courseID uuid.UUID, questions []uuid.UUID) (*model.Paper, error)
	Update(ctx context.Context, id uuid.UUID, year string, courseID uuid.UUID, questions []uuid.UUID) (*model.Paper, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Paper, error)
}

type paperService struct {
	papers    repository.PaperRepository
	courses   repository.CourseRepository
	questions repository.QuestionRepository
	cache     *cache.Client
}

// NewPaperService builds a PaperService.
func NewPaperService(
	papers repository.PaperRepository,
	courses repository.CourseRepository,
	questions repository.QuestionRepository,
	cache *cache.Client,
) PaperService {
	return &paperService{
		papers:    papers,
		courses:   courses,
		questions: questions,
		cache:     cache,
	}
}

func (s *paperService) courseCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("course:%s", id)
}

func (s *paperService) parentCourse(ctx context.Context, id uuid.UUID) *model.Course {
	if data, _ := s.cache.Get(ctx, s.courseCacheKey(id)); data != nil {
		var cached model.Course
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil
	}

	if payload, err := json.Marshal(course); err == nil {
		_ = s.cache.Set(ctx, s.courseCacheKey(id), payload, parentCacheTTL)
	}
	return course
}

func (s *paperService) List(ctx context.Context) ([]PaperListing, error) {
	papers, err := s.papers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	if len(papers) == 0 {
		return nil, errs.Message(errs.ErrNotFound, "No paper found")
	}

	listings := make([]PaperListing, 0, len(papers))
	for _, paper := range papers {
		listing := PaperListing{Paper: paper}
		if course := s.parentCourse(ctx, paper.CourseID); course != nil {
			listing.CourseTitle = course.Title
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *paperService) Create(ctx context.Context, year string, courseID uuid.UUID, questions []uuid.UUID) (*model.Paper, error) {
	if _, err := s.papers.FindByYearFold(ctx, year); err == nil {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate paper year")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate year: %w", err)
	}

	paper := &model.Paper{Year: year, CourseID: courseID}
	if len(questions) > 0 {
		paper.Questions = datatypes.NewJSONSlice(questions)
	}

	if err := s.papers.Create(ctx, paper); err != nil {
		return nil, fmt.Errorf("create paper: %w", err)
	}
	return paper, nil
}

func (s *paperService) Update(ctx context.Context, id uuid.UUID, year string, courseID uuid.UUID, questions []uuid.UUID) (*model.Paper, error) {
	paper, err := s.papers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "paper not found")
		}
		return nil, fmt.Errorf("find paper: %w", err)
	}

	if dup, err := s.papers.FindByYearFold(ctx, year); err == nil && dup.ID != id {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate Paper")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate year: %w", err)
	}

	paper.Year = year
	paper.CourseID = courseID
	paper.Questions = datatypes.NewJSONSlice(questions)

	if err := s.papers.Save(ctx, paper); err != nil {
		return nil, fmt.Errorf("save paper: %w", err)
	}
	return paper, nil
}

func (s *paperService) Delete(ctx context.Context, id uuid.UUID) (*model.Paper, error) {
	hasQuestions, err := s.questions.ExistsByPaperID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check dependent questions: %w", err)
	}
	if hasQuestions {
		return nil, errs.Message(errs.ErrHasDependents, "paper has assigned Question")
	}

	paper, err := s.papers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "paper not found")
		}
		return nil, fmt.Errorf("find paper: %w", err)
	}

	if err := s.papers.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete paper: %w", err)
	}
	return paper, nil
}

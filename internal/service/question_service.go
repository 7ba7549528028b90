package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"examdesk/internal/cache"
	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

// QuestionListing is a question enriched with its paper's year for display.
// The year is omitted when the referenced paper no longer exists.
type QuestionListing struct {
	model.Question
	PaperYear string `json:"paperyear,omitempty"`
}

// QuestionService exposes question operations.
type QuestionService interface {
	List(ctx context.Context) ([]QuestionListing, error)
	Create(ctx context.Context, number int, paperID uuid.UUID, text, answer string) (*model.Question, error)
	Update(ctx context.Context, id uuid.UUID, number int, paperID uuid.UUID, text, answer string) (*model.Question, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Question, error)
}

type questionService struct {
	questions repository.QuestionRepository
	papers    repository.PaperRepository
	cache     *cache.Client
}

// NewQuestionService builds a QuestionService.
func NewQuestionService(questions repository.QuestionRepository, papers repository.PaperRepository, cache *cache.Client) QuestionService {
	return &questionService{questions: questions, papers: papers, cache: cache}
}

func (s *questionService) paperCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("paper:%s", id)
}

func (s *questionService) parentPaper(ctx context.Context, id uuid.UUID) *model.Paper {
	if data, _ := s.cache.Get(ctx, s.paperCacheKey(id)); data != nil {
		var cached model.Paper
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	paper, err := s.papers.FindByID(ctx, id)
	if err != nil {
		return nil
	}

	if payload, err := json.Marshal(paper); err == nil {
		_ = s.cache.Set(ctx, s.paperCacheKey(id), payload, parentCacheTTL)
	}
	return paper
}

func (s *questionService) List(ctx context.Context) ([]QuestionListing, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, errs.Message(errs.ErrNotFound, "No questions found")
	}

	listings := make([]QuestionListing, 0, len(questions))
	for _, question := range questions {
		listing := QuestionListing{Question: question}
		if paper := s.parentPaper(ctx, question.PaperID); paper != nil {
			listing.PaperYear = paper.Year
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *questionService) Create(ctx context.Context, number int, paperID uuid.UUID, text, answer string) (*model.Question, error) {
	if _, err := s.questions.FindByNumber(ctx, number); err == nil {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate question number")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate number: %w", err)
	}

	question := &model.Question{
		Number:  number,
		PaperID: paperID,
		Text:    text,
		Answer:  answer,
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

func (s *questionService) Update(ctx context.Context, id uuid.UUID, number int, paperID uuid.UUID, text, answer string) (*model.Question, error) {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "question not found")
		}
		return nil, fmt.Errorf("find question: %w", err)
	}

	if dup, err := s.questions.FindByNumber(ctx, number); err == nil && dup.ID != id {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate question")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate number: %w", err)
	}

	question.Number = number
	question.PaperID = paperID
	question.Text = text
	question.Answer = answer

	if err := s.questions.Save(ctx, question); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "question not found")
		}
		return nil, fmt.Errorf("find question: %w", err)
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete question: %w", err)
	}
	return question, nil
}

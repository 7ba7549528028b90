package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"examdesk/internal/model"
)

// QuestionRepository defines question persistence operations.
//
// Number is unique and compared numerically, not under a string collation.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	Save(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	FindByNumber(ctx context.Context, number int) (*model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByPaperID(ctx context.Context, paperID uuid.UUID) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository builds a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) Save(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByNumber(ctx context.Context, number int) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, "id = ?", id).Error
}

func (r *questionRepository) ExistsByPaperID(ctx context.Context, paperID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Where("paper_id = ?", paperID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

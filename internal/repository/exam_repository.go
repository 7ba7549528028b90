package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"examdesk/internal/model"
)

// ExamRepository defines exam persistence operations.
type ExamRepository interface {
	Create(ctx context.Context, exam *model.Exam) error
	Save(ctx context.Context, exam *model.Exam) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error)
	FindByTitleFold(ctx context.Context, title string) (*model.Exam, error)
	List(ctx context.Context) ([]model.Exam, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type examRepository struct {
	db *gorm.DB
}

// NewExamRepository builds a GORM-backed repository.
func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepository) Save(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Save(exam).Error
}

func (r *examRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByTitleFold(ctx context.Context, title string) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).Where("LOWER(title) = LOWER(?)", title).First(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) List(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	if err := r.db.WithContext(ctx).Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Exam{}, "id = ?", id).Error
}

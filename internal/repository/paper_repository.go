package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"examdesk/internal/model"
)

// PaperRepository defines paper persistence operations.
type PaperRepository interface {
	Create(ctx context.Context, paper *model.Paper) error
	Save(ctx context.Context, paper *model.Paper) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Paper, error)
	FindByYearFold(ctx context.Context, year string) (*model.Paper, error)
	List(ctx context.Context) ([]model.Paper, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByCourseID(ctx context.Context, courseID uuid.UUID) (bool, error)
}

type paperRepository struct {
	db *gorm.DB
}

// NewPaperRepository builds a GORM-backed repository.
func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(ctx context.Context, paper *model.Paper) error {
	return r.db.WithContext(ctx).Create(paper).Error
}

func (r *paperRepository) Save(ctx context.Context, paper *model.Paper) error {
	return r.db.WithContext(ctx).Save(paper).Error
}

func (r *paperRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Paper, error) {
	var paper model.Paper
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&paper).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepository) FindByYearFold(ctx context.Context, year string) (*model.Paper, error) {
	var paper model.Paper
	if err := r.db.WithContext(ctx).Where("LOWER(year) = LOWER(?)", year).First(&paper).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepository) List(ctx context.Context) ([]model.Paper, error) {
	var papers []model.Paper
	if err := r.db.WithContext(ctx).Find(&papers).Error; err != nil {
		return nil, err
	}
	return papers, nil
}

func (r *paperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Paper{}, "id = ?", id).Error
}

func (r *paperRepository) ExistsByCourseID(ctx context.Context, courseID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Paper{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

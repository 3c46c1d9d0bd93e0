package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WritingRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]models.Writing, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Writing, error)
	Create(ctx context.Context, tx *gorm.DB, writing *models.Writing) error
	Save(ctx context.Context, tx *gorm.DB, writing *models.Writing) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type writingRepo struct {
	db *gorm.DB
}

func NewWritingRepo(db *gorm.DB) WritingRepo {
	return &writingRepo{db: db}
}

// List returns every writing, newest first.
func (r *writingRepo) List(ctx context.Context, tx *gorm.DB) ([]models.Writing, error) {
	writings := []models.Writing{}
	if err := pick(r.db, tx).WithContext(ctx).
		Order("created_at DESC").
		Find(&writings).Error; err != nil {
		return nil, Translate(err)
	}
	return writings, nil
}

func (r *writingRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Writing, error) {
	var writing models.Writing
	if err := pick(r.db, tx).WithContext(ctx).First(&writing, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &writing, nil
}

func (r *writingRepo) Create(ctx context.Context, tx *gorm.DB, writing *models.Writing) error {
	return Translate(pick(r.db, tx).WithContext(ctx).Create(writing).Error)
}

func (r *writingRepo) Save(ctx context.Context, tx *gorm.DB, writing *models.Writing) error {
	return Translate(pick(r.db, tx).WithContext(ctx).Save(writing).Error)
}

// Delete removes exactly the row with id; a missing row yields ErrNotFound.
func (r *writingRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	result := pick(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&models.Writing{})
	if result.Error != nil {
		return Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *writingRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	err := pick(r.db, tx).WithContext(ctx).Model(&models.Writing{}).Count(&n).Error
	return n, Translate(err)
}

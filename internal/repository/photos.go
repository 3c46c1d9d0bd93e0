package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]models.Photo, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Photo, error)
	Create(ctx context.Context, tx *gorm.DB, photos []*models.Photo) ([]*models.Photo, error)
	Save(ctx context.Context, tx *gorm.DB, photo *models.Photo) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type photoRepo struct {
	db *gorm.DB
}

func NewPhotoRepo(db *gorm.DB) PhotoRepo {
	return &photoRepo{db: db}
}

// List returns every photo, newest first.
func (r *photoRepo) List(ctx context.Context, tx *gorm.DB) ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := pick(r.db, tx).WithContext(ctx).
		Order("created_at DESC").
		Find(&photos).Error; err != nil {
		return nil, Translate(err)
	}
	return photos, nil
}

func (r *photoRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	if err := pick(r.db, tx).WithContext(ctx).First(&photo, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &photo, nil
}

func (r *photoRepo) Create(ctx context.Context, tx *gorm.DB, photos []*models.Photo) ([]*models.Photo, error) {
	if len(photos) == 0 {
		return []*models.Photo{}, nil
	}
	if err := pick(r.db, tx).WithContext(ctx).Create(&photos).Error; err != nil {
		return nil, Translate(err)
	}
	return photos, nil
}

func (r *photoRepo) Save(ctx context.Context, tx *gorm.DB, photo *models.Photo) error {
	return Translate(pick(r.db, tx).WithContext(ctx).Save(photo).Error)
}

// Delete removes exactly the row with id; a missing row yields ErrNotFound.
func (r *photoRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	result := pick(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&models.Photo{})
	if result.Error != nil {
		return Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *photoRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	err := pick(r.db, tx).WithContext(ctx).Model(&models.Photo{}).Count(&n).Error
	return n, Translate(err)
}

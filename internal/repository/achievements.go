package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement repos share one shape: list a user's rows in order, and replace
// the user's whole set (delete all, insert the given rows). Replace must run
// inside the caller's transaction to be atomic with the parent write.

type AwardRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]models.Award, error)
	Replace(ctx context.Context, tx *gorm.DB, userID uuid.UUID, awards []models.Award) error
}

type PublicationRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]models.Publication, error)
	Replace(ctx context.Context, tx *gorm.DB, userID uuid.UUID, publications []models.Publication) error
}

type RecognitionRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]models.Recognition, error)
	Replace(ctx context.Context, tx *gorm.DB, userID uuid.UUID, recognitions []models.Recognition) error
}

type ownedRepo[T any] struct {
	db *gorm.DB
}

func NewAwardRepo(db *gorm.DB) AwardRepo {
	return &ownedRepo[models.Award]{db: db}
}

func NewPublicationRepo(db *gorm.DB) PublicationRepo {
	return &ownedRepo[models.Publication]{db: db}
}

func NewRecognitionRepo(db *gorm.DB) RecognitionRepo {
	return &ownedRepo[models.Recognition]{db: db}
}

func (r *ownedRepo[T]) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]T, error) {
	results := []T{}
	if err := pick(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, Translate(err)
	}
	return results, nil
}

func (r *ownedRepo[T]) Replace(ctx context.Context, tx *gorm.DB, userID uuid.UUID, rows []T) error {
	transaction := pick(r.db, tx).WithContext(ctx)

	var zero T
	if err := transaction.Where("user_id = ?", userID).Delete(&zero).Error; err != nil {
		return Translate(err)
	}
	if len(rows) == 0 {
		return nil
	}
	return Translate(transaction.CreateInBatches(rows, 100).Error)
}

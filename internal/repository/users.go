package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo interface {
	FindOwner(ctx context.Context, tx *gorm.DB) (*models.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error)
	GetWithAchievements(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

// FindOwner returns the singleton profile row.
func (r *userRepo) FindOwner(ctx context.Context, tx *gorm.DB) (*models.User, error) {
	var user models.User
	if err := pick(r.db, tx).WithContext(ctx).
		Where("slot = ?", models.OwnerSlot).
		First(&user).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := pick(r.db, tx).WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *userRepo) GetWithAchievements(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := pick(r.db, tx).WithContext(ctx).
		Preload("Awards", byPosition).
		Preload("Publications", byPosition).
		Preload("Recognitions", byPosition).
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return Translate(pick(r.db, tx).WithContext(ctx).Omit("Awards", "Publications", "Recognitions").Create(user).Error)
}

// Update writes the given columns; a missing row yields ErrNotFound.
func (r *userRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		_, err := r.GetByID(ctx, tx, id)
		return err
	}
	result := pick(r.db, tx).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user together with every owned achievement row.
func (r *userRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	run := func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.Award{}, &models.Publication{}, &models.Recognition{}} {
			if err := tx.Where("user_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}
	if tx != nil {
		return Translate(run(tx.WithContext(ctx)))
	}
	return Translate(r.db.WithContext(ctx).Transaction(run))
}

func (r *userRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	err := pick(r.db, tx).WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, Translate(err)
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the typed data access for every entity around one
// pooled *gorm.DB. Each method accepts an optional tx; nil means the pool.
type Repositories struct {
	db *gorm.DB

	Users        UserRepo
	Awards       AwardRepo
	Publications PublicationRepo
	Recognitions RecognitionRepo
	Photos       PhotoRepo
	Writings     WritingRepo
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		Users:        NewUserRepo(db),
		Awards:       NewAwardRepo(db),
		Publications: NewPublicationRepo(db),
		Recognitions: NewRecognitionRepo(db),
		Photos:       NewPhotoRepo(db),
		Writings:     NewWritingRepo(db),
	}
}

// Transaction runs fn in a single database transaction. Any error returned by
// fn rolls back every write made through tx.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return Translate(r.db.WithContext(ctx).Transaction(fn))
}

func pick(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

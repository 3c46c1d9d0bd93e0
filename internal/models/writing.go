package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Writing is a published piece; ContentURL points at the full text, either on
// the upload CDN or as an inline data:text/plain;base64 URL.
type Writing struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"size:500;not null" json:"title"`
	Category    string                      `gorm:"size:100;not null;index" json:"category"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Image       string                      `gorm:"type:text;not null" json:"image"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	ContentURL  string                      `gorm:"type:text;not null" json:"contentUrl"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (w *Writing) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.Tags == nil {
		w.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}

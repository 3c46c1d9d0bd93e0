package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerSlot is the constant singleton key of the one profile per deployment.
const OwnerSlot = "owner"

// User is the portfolio owner's profile row.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slot            string    `gorm:"size:16;not null;default:'owner';uniqueIndex:idx_users_slot" json:"-"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Title           string    `gorm:"size:255" json:"title"`
	Bio             string    `gorm:"type:text" json:"bio"`
	Image           string    `gorm:"type:text" json:"image"`
	Email           string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Location        string    `gorm:"size:255" json:"location"`
	Website         string    `gorm:"size:500" json:"website"`
	TwitterHandle   string    `gorm:"size:100" json:"twitterHandle"`
	InstagramHandle string    `gorm:"size:100" json:"instagramHandle"`
	FacebookHandle  string    `gorm:"size:100" json:"facebookHandle"`
	Education       string    `gorm:"type:text" json:"education"`
	Experience      string    `gorm:"type:text" json:"experience"`
	Interests       string    `gorm:"type:text" json:"interests"`
	WritingsCount   int       `gorm:"default:0" json:"writingsCount"`
	PhotosCount     int       `gorm:"default:0" json:"photosCount"`
	FollowersCount  int       `gorm:"default:0" json:"followersCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Awards       []Award       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Publications []Publication `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recognitions []Recognition `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Slot == "" {
		u.Slot = OwnerSlot
	}
	return nil
}

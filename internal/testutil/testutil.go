// Package testutil provides an isolated, migrated database per test.
package testutil

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a private in-memory SQLite database with the full schema. It is
// closed when the test ends.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("test db handle: %v", err)
	}
	// single writer, like the sqlite production setup
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func SeedOwner(tb testing.TB, db *gorm.DB, email string) *models.User {
	tb.Helper()
	u := &models.User{
		Slot:           models.OwnerSlot,
		Name:           "Ada Owner",
		Title:          "Essayist",
		Bio:            "Writes things.",
		Email:          email,
		TwitterHandle:  "@ada",
		Education:      "BA Literature",
		WritingsCount:  3,
		PhotosCount:    5,
		FollowersCount: 8,
	}
	if err := db.WithContext(context.Background()).Create(u).Error; err != nil {
		tb.Fatalf("seed owner: %v", err)
	}
	return u
}

func SeedAwards(tb testing.TB, db *gorm.DB, userID uuid.UUID, descriptions ...string) {
	tb.Helper()
	for i, d := range descriptions {
		if err := db.Create(&models.Award{UserID: userID, Position: i, Description: d}).Error; err != nil {
			tb.Fatalf("seed award: %v", err)
		}
	}
}

func SeedPhoto(tb testing.TB, db *gorm.DB, url string) *models.Photo {
	tb.Helper()
	p := &models.Photo{URL: url, Filename: "seed.jpg", Path: "/uploads/photos/seed.jpg"}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed photo: %v", err)
	}
	return p
}

func SeedWriting(tb testing.TB, db *gorm.DB, title string) *models.Writing {
	tb.Helper()
	w := &models.Writing{
		Title:       title,
		Category:    "Essay",
		Description: "desc",
		Image:       "https://example.com/cover.jpg",
		ContentURL:  "data:text/plain;base64,aGVsbG8=",
	}
	if err := db.Create(w).Error; err != nil {
		tb.Fatalf("seed writing: %v", err)
	}
	return w
}

func CountRows(tb testing.TB, db *gorm.DB, model interface{}) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count rows: %v", err)
	}
	return n
}

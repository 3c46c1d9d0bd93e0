package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPhotoURLRequired = errors.New("url is required for each photo")
	ErrPhotoNotFound    = errors.New("photo not found")
)

const photoUploadDir = "/uploads/photos/"

type PhotoService struct {
	repos *repository.Repositories
	now   func() time.Time
}

func NewPhotoService(repos *repository.Repositories) *PhotoService {
	return &PhotoService{repos: repos, now: time.Now}
}

func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	return s.repos.Photos.List(ctx, nil)
}

// Create validates every item before writing any, then inserts them all in
// one transaction.
func (s *PhotoService) Create(ctx context.Context, items []dto.PhotoInput) ([]*models.Photo, error) {
	photos := make([]*models.Photo, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.URL) == "" {
			return nil, ErrPhotoURLRequired
		}

		filename := item.Filename
		if filename == "" {
			filename = s.generateFilename()
		}
		path := item.Path
		if path == "" {
			path = photoUploadDir + filename
		}

		var title *string
		if item.Title != nil && *item.Title != "" {
			title = item.Title
		}

		photos = append(photos, &models.Photo{
			URL:      item.URL,
			Title:    title,
			Filename: filename,
			Path:     path,
		})
	}

	var created []*models.Photo
	err := s.repos.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		created, err = s.repos.Photos.Create(ctx, tx, photos)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create photos: %w", err)
	}
	return created, nil
}

func (s *PhotoService) Get(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo, err := s.repos.Photos.GetByID(ctx, nil, id)
	if repository.IsNotFound(err) {
		return nil, ErrPhotoNotFound
	}
	return photo, err
}

// Update applies a partial patch; fields absent from req keep their values.
func (s *PhotoService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePhotoRequest) (*models.Photo, error) {
	photo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.URL != nil {
		if strings.TrimSpace(*req.URL) == "" {
			return nil, ErrPhotoURLRequired
		}
		photo.URL = *req.URL
	}
	if req.Title != nil {
		if *req.Title == "" {
			photo.Title = nil
		} else {
			photo.Title = req.Title
		}
	}
	if req.Filename != nil {
		photo.Filename = *req.Filename
	}
	if req.Path != nil {
		photo.Path = *req.Path
	}

	if err := s.repos.Photos.Save(ctx, nil, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *PhotoService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repos.Photos.Delete(ctx, nil, id)
	if repository.IsNotFound(err) {
		return ErrPhotoNotFound
	}
	return err
}

// generateFilename yields photo-<unix millis>-<7 base36 chars>.jpg.
func (s *PhotoService) generateFilename() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return "photo-" + strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + string(suffix) + ".jpg"
}

// ToPhotoView formats a photo for the gallery, with a long-form display date.
func ToPhotoView(p *models.Photo) dto.PhotoResponse {
	return dto.PhotoResponse{
		ID:        p.ID.String(),
		URL:       p.URL,
		Title:     p.Title,
		Date:      p.CreatedAt.Format("January 2, 2006"),
		Filename:  p.Filename,
		Path:      p.Path,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrWritingFieldsRequired = errors.New("missing required fields")
	ErrWritingNotFound       = errors.New("writing not found")
)

type WritingService struct {
	repos *repository.Repositories
}

func NewWritingService(repos *repository.Repositories) *WritingService {
	return &WritingService{repos: repos}
}

func (s *WritingService) List(ctx context.Context) ([]models.Writing, error) {
	return s.repos.Writings.List(ctx, nil)
}

func (s *WritingService) Create(ctx context.Context, req dto.CreateWritingRequest) (*models.Writing, error) {
	if isBlank(req.Title) || isBlank(req.Category) || isBlank(req.Description) ||
		isBlank(req.Image) || isBlank(req.ContentURL) {
		return nil, ErrWritingFieldsRequired
	}

	writing := &models.Writing{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Tags:        normalizeTags(req.Tags),
		ContentURL:  req.ContentURL,
	}
	if err := s.repos.Writings.Create(ctx, nil, writing); err != nil {
		return nil, fmt.Errorf("failed to create writing: %w", err)
	}
	return writing, nil
}

func (s *WritingService) Get(ctx context.Context, id uuid.UUID) (*models.Writing, error) {
	writing, err := s.repos.Writings.GetByID(ctx, nil, id)
	if repository.IsNotFound(err) {
		return nil, ErrWritingNotFound
	}
	return writing, err
}

// Update applies a partial patch; fields absent from req keep their values.
func (s *WritingService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWritingRequest) (*models.Writing, error) {
	writing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		writing.Title = *req.Title
	}
	if req.Category != nil {
		writing.Category = *req.Category
	}
	if req.Description != nil {
		writing.Description = *req.Description
	}
	if req.Image != nil {
		writing.Image = *req.Image
	}
	if req.Tags != nil {
		writing.Tags = normalizeTags(*req.Tags)
	}
	if req.ContentURL != nil {
		writing.ContentURL = *req.ContentURL
	}

	if err := s.repos.Writings.Save(ctx, nil, writing); err != nil {
		return nil, err
	}
	return writing, nil
}

func (s *WritingService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repos.Writings.Delete(ctx, nil, id)
	if repository.IsNotFound(err) {
		return ErrWritingNotFound
	}
	return err
}

func normalizeTags(tags []string) datatypes.JSONSlice[string] {
	out := datatypes.JSONSlice[string]{}
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

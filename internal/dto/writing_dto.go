package dto

import "github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"

type CreateWritingRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	ContentURL  string   `json:"contentUrl"`
}

type UpdateWritingRequest struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	ContentURL  *string   `json:"contentUrl"`
}

type WritingSaveResponse struct {
	Message string          `json:"message"`
	Writing *models.Writing `json:"writing"`
}

type InlineContentRequest struct {
	Content string `json:"content"`
}

type InlineContentResponse struct {
	URL string `json:"url"`
}

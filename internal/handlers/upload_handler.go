package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler serves the inline text fallback used when the CDN upload is
// skipped. Binary uploads go straight to the CDN from the client.
type UploadHandler struct {
	contentService *services.ContentService
}

func NewUploadHandler(contentService *services.ContentService) *UploadHandler {
	return &UploadHandler{contentService: contentService}
}

func (h *UploadHandler) InlineText(c *fiber.Ctx) error {
	var req dto.InlineContentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	url, err := h.contentService.EncodeInline(req.Content)
	if err != nil {
		if errors.Is(err, services.ErrContentEmpty) {
			return respond(c, fiber.StatusBadRequest, "Content is required")
		}
		return serverError(c, "Failed to encode content", err)
	}
	return c.JSON(dto.InlineContentResponse{URL: url})
}

package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PhotoHandler struct {
	photoService *services.PhotoService
}

func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	photos, err := h.photoService.List(c.UserContext())
	if err != nil {
		return serverError(c, "Failed to fetch photos", err)
	}

	resp := make([]dto.PhotoResponse, 0, len(photos))
	for i := range photos {
		resp = append(resp, services.ToPhotoView(&photos[i]))
	}
	return c.JSON(resp)
}

// Create accepts a single photo or {"photos": [...]}.
func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePhotosRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	photos, err := h.photoService.Create(c.UserContext(), req.Items())
	if err != nil {
		if errors.Is(err, services.ErrPhotoURLRequired) {
			return respond(c, fiber.StatusBadRequest, "URL is required for each photo")
		}
		return serverError(c, "Failed to create photos", err)
	}

	resp := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, services.ToPhotoView(p))
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Photo not found")
	}

	photo, err := h.photoService.Get(c.UserContext(), id)
	if err != nil {
		return h.photoError(c, err)
	}
	return c.JSON(services.ToPhotoView(photo))
}

func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Photo not found")
	}

	var req dto.UpdatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	photo, err := h.photoService.Update(c.UserContext(), id, req)
	if err != nil {
		return h.photoError(c, err)
	}
	return c.JSON(services.ToPhotoView(photo))
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Photo not found")
	}
	return h.delete(c, id)
}

// DeleteByQuery serves DELETE /photos?id=.
func (h *PhotoHandler) DeleteByQuery(c *fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return respond(c, fiber.StatusBadRequest, "Photo ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return respond(c, fiber.StatusNotFound, "Photo not found")
	}
	return h.delete(c, id)
}

func (h *PhotoHandler) delete(c *fiber.Ctx, id uuid.UUID) error {
	if err := h.photoService.Delete(c.UserContext(), id); err != nil {
		return h.photoError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Photo deleted successfully"})
}

func (h *PhotoHandler) photoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPhotoNotFound):
		return respond(c, fiber.StatusNotFound, "Photo not found")
	case errors.Is(err, services.ErrPhotoURLRequired):
		return respond(c, fiber.StatusBadRequest, "URL is required for each photo")
	}
	return serverError(c, msgDatabaseFailed, err)
}

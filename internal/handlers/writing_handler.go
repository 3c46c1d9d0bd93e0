package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WritingHandler struct {
	writingService *services.WritingService
	contentService *services.ContentService
	exposeDetails  bool
}

// NewWritingHandler wires the writing endpoints. exposeDetails adds the
// underlying error text to 500 responses and must be off in production.
func NewWritingHandler(writingService *services.WritingService, contentService *services.ContentService, exposeDetails bool) *WritingHandler {
	return &WritingHandler{
		writingService: writingService,
		contentService: contentService,
		exposeDetails:  exposeDetails,
	}
}

func (h *WritingHandler) List(c *fiber.Ctx) error {
	writings, err := h.writingService.List(c.UserContext())
	if err != nil {
		return serverError(c, "Failed to fetch writings", err)
	}
	return c.JSON(writings)
}

func (h *WritingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWritingRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	writing, err := h.writingService.Create(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrWritingFieldsRequired) {
			return respond(c, fiber.StatusBadRequest, "Missing required fields")
		}
		logServerError(c, "Failed to create writing", err)
		resp := dto.ErrorResponse{Error: "Failed to create writing"}
		if h.exposeDetails {
			resp.Details = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.WritingSaveResponse{
		Message: "Writing created successfully",
		Writing: writing,
	})
}

func (h *WritingHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Writing not found")
	}

	writing, err := h.writingService.Get(c.UserContext(), id)
	if err != nil {
		return h.writingError(c, err)
	}
	return c.JSON(writing)
}

func (h *WritingHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Writing not found")
	}

	var req dto.UpdateWritingRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	writing, err := h.writingService.Update(c.UserContext(), id, req)
	if err != nil {
		return h.writingError(c, err)
	}
	return c.JSON(dto.WritingSaveResponse{Message: "Writing updated successfully", Writing: writing})
}

func (h *WritingHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Writing not found")
	}

	if err := h.writingService.Delete(c.UserContext(), id); err != nil {
		return h.writingError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Writing deleted successfully"})
}

// Content resolves the writing's content reference to plain text.
func (h *WritingHandler) Content(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respond(c, fiber.StatusNotFound, "Writing not found")
	}

	writing, err := h.writingService.Get(c.UserContext(), id)
	if err != nil {
		return h.writingError(c, err)
	}

	text, err := h.contentService.Resolve(c.UserContext(), writing.ContentURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContentRefInvalid), errors.Is(err, services.ErrContentHostNotAllowed):
			return respond(c, fiber.StatusBadRequest, "Invalid content URL")
		case errors.Is(err, services.ErrContentTooLarge):
			logServerError(c, "Content exceeds size limit", err)
			return respond(c, fiber.StatusBadGateway, "Content too large")
		case errors.Is(err, services.ErrContentUnavailable):
			logServerError(c, "Failed to fetch content", err)
			return respond(c, fiber.StatusBadGateway, "Failed to fetch content")
		}
		return serverError(c, "Failed to fetch content", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

func (h *WritingHandler) writingError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrWritingNotFound) {
		return respond(c, fiber.StatusNotFound, "Writing not found")
	}
	return serverError(c, msgDatabaseFailed, err)
}

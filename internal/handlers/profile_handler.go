package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profileService.GetProfile(c.UserContext())
	if err != nil {
		return serverError(c, msgDatabaseFailed, err)
	}
	return c.JSON(profile)
}

// Save creates the owner profile on first write and overwrites it afterwards.
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	profile, created, err := h.profileService.SaveProfile(c.UserContext(), &req)
	if err != nil {
		return h.profileError(c, err)
	}

	message := "User updated successfully"
	if created {
		message = "User created successfully"
	}
	return c.JSON(dto.ProfileSaveResponse{Message: message, User: *profile})
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	profile, err := h.profileService.CreateProfile(c.UserContext(), &req)
	if err != nil {
		return h.profileError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProfileSaveResponse{
		Message: "User created successfully",
		User:    *profile,
	})
}

func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "userId")
	if !ok {
		return respond(c, fiber.StatusNotFound, "User not found")
	}

	profile, err := h.profileService.GetProfileByID(c.UserContext(), id)
	if err != nil {
		return h.profileError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) UpdateByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "userId")
	if !ok {
		return respond(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	profile, err := h.profileService.UpdateProfileByID(c.UserContext(), id, &req)
	if err != nil {
		return h.profileError(c, err)
	}
	return c.JSON(dto.ProfileSaveResponse{Message: "Profile updated successfully", User: *profile})
}

func (h *ProfileHandler) profileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmailRequired):
		return respond(c, fiber.StatusBadRequest, "Email is required")
	case errors.Is(err, services.ErrEmailTaken):
		return respond(c, fiber.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrProfileExists):
		return respond(c, fiber.StatusBadRequest, "Profile already exists")
	case errors.Is(err, services.ErrUserNotFound):
		return respond(c, fiber.StatusNotFound, "User not found")
	}
	return serverError(c, msgDatabaseFailed, err)
}

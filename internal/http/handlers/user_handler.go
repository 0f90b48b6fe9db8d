package handlers

import (
	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/middleware"
	"github.com/encorefund/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo *repositories.UserRepo
	log      *zap.Logger
}

func NewUserHandler(userRepo *repositories.UserRepo, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, log: log}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("user not found"))
	}
	return c.JSON(dto.OK(user))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}
	if req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fullName is required"))
	}

	userID := middleware.GetUserID(c)
	user, err := h.userRepo.UpdateProfile(c.Context(), userID, req.FullName, req.ArtistName, req.Bio)
	if err != nil {
		h.log.Error("profile update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}
	return c.JSON(dto.OK(user))
}

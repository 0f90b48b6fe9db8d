package handlers

import (
	"errors"
	"strings"

	"github.com/encorefund/backend/internal/auth"
	"github.com/encorefund/backend/internal/config"
	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/models"
	"github.com/encorefund/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userRepo *repositories.UserRepo
	cfg      *config.Config
	log      *zap.Logger
}

func NewAuthHandler(userRepo *repositories.UserRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, cfg: cfg, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("email, password and fullName are required"))
	}

	if _, err := h.userRepo.GetByEmail(c.Context(), req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("user with this email already exists"))
	} else if !errors.Is(err, pgx.ErrNoRows) {
		h.log.Error("register email lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		ArtistName:   req.ArtistName,
	}
	if err := h.userRepo.Create(c.Context(), user); err != nil {
		h.log.Error("user create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("jwt generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.AuthData{User: user, Token: token}))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password get the same answer so login
	// cannot be used to probe which emails are registered.
	user, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("invalid credentials"))
		}
		h.log.Error("login email lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("invalid credentials"))
	}

	if err := h.userRepo.UpdateLastLogin(c.Context(), user.ID); err != nil {
		h.log.Warn("last_login update failed", zap.Error(err))
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("jwt generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.JSON(dto.OK(dto.AuthData{User: user, Token: token}))
}

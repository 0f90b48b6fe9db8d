package handlers

import (
	"errors"

	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/middleware"
	"github.com/encorefund/backend/internal/models"
	"github.com/encorefund/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentRepo  *repositories.CommentRepo
	campaignRepo *repositories.CampaignRepo
	log          *zap.Logger
}

func NewCommentHandler(commentRepo *repositories.CommentRepo, campaignRepo *repositories.CampaignRepo, log *zap.Logger) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo, campaignRepo: campaignRepo, log: log}
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("content is required"))
	}

	if _, err := h.campaignRepo.GetByID(c.Context(), campaignID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found"))
		}
		h.log.Error("campaign lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	comment := &models.Comment{
		CampaignID: campaignID,
		UserID:     middleware.GetUserID(c),
		Content:    req.Content,
	}
	if err := h.commentRepo.Create(c.Context(), comment); err != nil {
		h.log.Error("comment create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(comment))
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	comments, err := h.commentRepo.ListByCampaign(c.Context(), campaignID)
	if err != nil {
		h.log.Error("comment list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.JSON(dto.OK(comments))
}

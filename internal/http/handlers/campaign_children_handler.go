package handlers

import (
	"errors"
	"time"

	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/middleware"
	"github.com/encorefund/backend/internal/models"
	"github.com/encorefund/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignChildrenHandler covers the owner-managed child resources of a
// campaign: milestones, reward tiers and updates.
type CampaignChildrenHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignChildrenHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignChildrenHandler {
	return &CampaignChildrenHandler{campaignService: campaignService, log: log}
}

func (h *CampaignChildrenHandler) CreateMilestone(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	var req dto.CreateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}
	if req.Title == "" || req.TargetAmount == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("title and targetAmount are required"))
	}

	milestone := &models.Milestone{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.AddMilestone(c.Context(), campaignID, userID, milestone); err != nil {
		return h.childError(c, err, "milestone create failed")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(milestone))
}

func (h *CampaignChildrenHandler) CreateRewardTier(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	var req dto.CreateRewardTierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}
	if req.Title == "" || req.Description == "" || req.MinimumAmount == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("title, description and minimumAmount are required"))
	}

	tier := &models.RewardTier{
		Title:                 req.Title,
		Description:           req.Description,
		MinimumAmount:         req.MinimumAmount,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		MaxClaims:             req.MaxClaims,
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.AddRewardTier(c.Context(), campaignID, userID, tier); err != nil {
		return h.childError(c, err, "reward tier create failed")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(tier))
}

func (h *CampaignChildrenHandler) CreateUpdate(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	var req dto.CreateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}
	if req.Title == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("title and content are required"))
	}

	update := &models.Update{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.Publish {
		now := time.Now()
		update.PublishedAt = &now
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.AddUpdate(c.Context(), campaignID, userID, update); err != nil {
		return h.childError(c, err, "update create failed")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(update))
}

func (h *CampaignChildrenHandler) childError(c *fiber.Ctx, err error, logMsg string) error {
	if errors.Is(err, services.ErrCampaignNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found or unauthorized"))
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
}

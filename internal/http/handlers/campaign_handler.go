package handlers

import (
	"errors"

	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/middleware"
	"github.com/encorefund/backend/internal/models"
	"github.com/encorefund/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}

	if req.Title == "" || req.Description == "" || req.FundingGoal == "" ||
		req.StartDate.IsZero() || req.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("title, description, fundingGoal, startDate and endDate are required"))
	}

	campaign := &models.Campaign{
		Title:          req.Title,
		Description:    req.Description,
		FundingGoal:    req.FundingGoal,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		BannerImageURL: req.BannerImageURL,
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Create(c.Context(), userID, campaign); err != nil {
		h.log.Error("campaign create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(campaign))
}

func (h *CampaignHandler) ListUserCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	campaigns, err := h.campaignService.ListByOwner(c.Context(), userID)
	if err != nil {
		h.log.Error("campaign list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}
	return c.JSON(dto.OK(campaigns))
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	detail, source, err := h.campaignService.GetDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found"))
		}
		h.log.Error("campaign get failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.JSON(dto.OKWithSource(detail, source))
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}

	if req.Title == "" || req.Description == "" || req.FundingGoal == "" ||
		req.StartDate.IsZero() || req.EndDate.IsZero() || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("all campaign fields are required"))
	}

	campaign := &models.Campaign{
		Title:          req.Title,
		Description:    req.Description,
		FundingGoal:    req.FundingGoal,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         req.Status,
		BannerImageURL: req.BannerImageURL,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.campaignService.Update(c.Context(), id, userID, campaign)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found or unauthorized"))
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign status"))
		}
		h.log.Error("campaign update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.JSON(dto.OK(updated))
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Delete(c.Context(), id, userID); err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found or unauthorized"))
		}
		h.log.Error("campaign delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.JSON(dto.OKMessage("campaign deleted successfully"))
}

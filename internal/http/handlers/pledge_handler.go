package handlers

import (
	"errors"

	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/middleware"
	"github.com/encorefund/backend/internal/payments"
	"github.com/encorefund/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PledgeHandler struct {
	pledgeService *services.PledgeService
	log           *zap.Logger
}

func NewPledgeHandler(pledgeService *services.PledgeService, log *zap.Logger) *PledgeHandler {
	return &PledgeHandler{pledgeService: pledgeService, log: log}
}

func (h *PledgeHandler) CreatePledge(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	var req dto.CreatePledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid request body"))
	}
	if _, err := payments.AmountToMinorUnits(req.Amount); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid pledge amount"))
	}

	userID := middleware.GetUserID(c)
	pledge, intent, err := h.pledgeService.Create(c.Context(), campaignID, userID, req.Amount, req.RewardTierID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found"))
		case errors.Is(err, services.ErrRewardTierUnavailable):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("reward tier unavailable"))
		case errors.Is(err, payments.ErrNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("payments unavailable"))
		}
		h.log.Error("pledge create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.PledgeData{
		Pledge:       pledge,
		ClientSecret: intent.ClientSecret,
	}))
}

func (h *PledgeHandler) ListPledges(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid campaign id"))
	}

	userID := middleware.GetUserID(c)
	pledges, err := h.pledgeService.ListByCampaign(c.Context(), campaignID, userID)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("campaign not found or unauthorized"))
		}
		h.log.Error("pledge list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("server error"))
	}

	return c.JSON(dto.OK(pledges))
}

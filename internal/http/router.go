package http

import (
	"time"

	"github.com/encorefund/backend/internal/config"
	"github.com/encorefund/backend/internal/http/handlers"
	"github.com/encorefund/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	childrenHandler *handlers.CampaignChildrenHandler,
	pledgeHandler *handlers.PledgeHandler,
	commentHandler *handlers.CommentHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMin, time.Minute))
	api.Use(middleware.SanitizeInputMiddleware())

	// Users (public)
	api.Post("/users/register", authHandler.Register)
	api.Post("/users/login", authHandler.Login)

	authed := middleware.AuthMiddleware(cfg, log)

	// Users (protected)
	api.Get("/users/profile", authed, userHandler.GetProfile)
	api.Put("/users/profile", authed, userHandler.UpdateProfile)

	// Campaigns. /campaigns/user is registered before /campaigns/:id so the
	// literal segment wins.
	api.Post("/campaigns", authed, campaignHandler.CreateCampaign)
	api.Get("/campaigns/user", authed, campaignHandler.ListUserCampaigns)
	api.Get("/campaigns/:id", campaignHandler.GetCampaign)
	api.Put("/campaigns/:id", authed, campaignHandler.UpdateCampaign)
	api.Delete("/campaigns/:id", authed, campaignHandler.DeleteCampaign)

	// Campaign children (owner-only writes)
	api.Post("/campaigns/:id/milestones", authed, childrenHandler.CreateMilestone)
	api.Post("/campaigns/:id/reward-tiers", authed, childrenHandler.CreateRewardTier)
	api.Post("/campaigns/:id/updates", authed, childrenHandler.CreateUpdate)

	// Pledges
	api.Post("/campaigns/:id/pledges", authed, pledgeHandler.CreatePledge)
	api.Get("/campaigns/:id/pledges", authed, pledgeHandler.ListPledges)

	// Comments
	api.Post("/campaigns/:id/comments", authed, commentHandler.CreateComment)
	api.Get("/campaigns/:id/comments", commentHandler.ListComments)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}

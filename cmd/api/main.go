package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/encorefund/backend/internal/cache"
	"github.com/encorefund/backend/internal/config"
	"github.com/encorefund/backend/internal/db"
	"github.com/encorefund/backend/internal/events"
	apphttp "github.com/encorefund/backend/internal/http"
	"github.com/encorefund/backend/internal/http/dto"
	"github.com/encorefund/backend/internal/http/handlers"
	"github.com/encorefund/backend/internal/payments"
	"github.com/encorefund/backend/internal/repositories"
	"github.com/encorefund/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	milestoneRepo := repositories.NewMilestoneRepo(pool)
	tierRepo := repositories.NewRewardTierRepo(pool)
	pledgeRepo := repositories.NewPledgeRepo(pool)
	updateRepo := repositories.NewUpdateRepo(pool)
	commentRepo := repositories.NewCommentRepo(pool)

	// Cache + events
	campaignCache := cache.NewCampaignCache(rdb, cfg.CampaignCacheTTL, log)
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Payments
	stripeProvider := payments.NewStripeProvider(cfg.StripeSecretKey, log)

	// Services
	campaignService := services.NewCampaignService(campaignRepo, milestoneRepo, tierRepo, updateRepo, campaignCache, publisher, log)
	pledgeService := services.NewPledgeService(pool, pledgeRepo, campaignRepo, tierRepo, milestoneRepo, stripeProvider, cfg.PledgeCurrency, campaignCache, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	childrenHandler := handlers.NewCampaignChildrenHandler(campaignService, log)
	pledgeHandler := handlers.NewPledgeHandler(pledgeService, log)
	commentHandler := handlers.NewCommentHandler(commentRepo, campaignRepo, log)
	wsHub := handlers.NewWSHub(subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			} else {
				log.Error("unhandled error", zap.Error(err))
			}
			return c.Status(code).JSON(dto.Fail(msg))
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, userHandler, campaignHandler, childrenHandler, pledgeHandler, commentHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

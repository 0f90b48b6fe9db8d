package services

import (
	"context"
	"errors"

	"github.com/encorefund/backend/internal/cache"
	"github.com/encorefund/backend/internal/events"
	"github.com/encorefund/backend/internal/models"
	"github.com/encorefund/backend/internal/payments"
	"github.com/encorefund/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PledgeService struct {
	pool          *pgxpool.Pool
	pledgeRepo    *repositories.PledgeRepo
	campaignRepo  *repositories.CampaignRepo
	tierRepo      *repositories.RewardTierRepo
	milestoneRepo *repositories.MilestoneRepo
	provider      payments.Provider
	currency      string
	cache         *cache.CampaignCache
	publisher     events.Publisher
	log           *zap.Logger
}

func NewPledgeService(
	pool *pgxpool.Pool,
	pledgeRepo *repositories.PledgeRepo,
	campaignRepo *repositories.CampaignRepo,
	tierRepo *repositories.RewardTierRepo,
	milestoneRepo *repositories.MilestoneRepo,
	provider payments.Provider,
	currency string,
	cache *cache.CampaignCache,
	publisher events.Publisher,
	log *zap.Logger,
) *PledgeService {
	return &PledgeService{
		pool:          pool,
		pledgeRepo:    pledgeRepo,
		campaignRepo:  campaignRepo,
		tierRepo:      tierRepo,
		milestoneRepo: milestoneRepo,
		provider:      provider,
		currency:      currency,
		cache:         cache,
		publisher:     publisher,
		log:           log,
	}
}

// Create records a pledge against a campaign. The payment intent is opened
// first; the pledge row, the campaign amount increment, the reward tier
// claim and milestone stamping then commit as one transaction.
func (s *PledgeService) Create(ctx context.Context, campaignID, userID uuid.UUID, amount string, tierID *uuid.UUID) (*models.Pledge, *payments.Intent, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrCampaignNotFound
		}
		return nil, nil, err
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, amount, s.currency, map[string]string{
		"campaign_id": campaignID.String(),
		"user_id":     userID.String(),
	})
	if err != nil {
		return nil, nil, err
	}

	pledge := &models.Pledge{
		CampaignID:    campaignID,
		UserID:        userID,
		RewardTierID:  tierID,
		Amount:        amount,
		Status:        models.PledgeStatusPending,
		TransactionID: &intent.ID,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	if tierID != nil {
		if err := s.tierRepo.ClaimInTx(ctx, tx, *tierID, campaignID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil, ErrRewardTierUnavailable
			}
			return nil, nil, err
		}
	}

	if err := s.pledgeRepo.CreateInTx(ctx, tx, pledge); err != nil {
		return nil, nil, err
	}

	raised, err := s.campaignRepo.IncrementAmountInTx(ctx, tx, campaignID, amount)
	if err != nil {
		return nil, nil, err
	}

	reached, err := s.milestoneRepo.MarkReachedInTx(ctx, tx, campaignID, raised)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	s.cache.Invalidate(ctx, campaignID)

	s.publish(ctx, events.Event{
		Type:       events.EventPledgeReceived,
		CampaignID: campaignID,
		Payload: map[string]any{
			"pledge_id":      pledge.ID.String(),
			"amount":         pledge.Amount,
			"current_amount": raised,
		},
	})
	for _, m := range reached {
		s.publish(ctx, events.Event{
			Type:       events.EventMilestoneUpdate,
			CampaignID: campaignID,
			Payload: map[string]any{
				"milestone_id":  m.ID.String(),
				"title":         m.Title,
				"target_amount": m.TargetAmount,
			},
		})
	}

	return pledge, intent, nil
}

// ListByCampaign returns a campaign's pledges to its owner.
func (s *PledgeService) ListByCampaign(ctx context.Context, campaignID, userID uuid.UUID) ([]models.Pledge, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrCampaignNotFound
	}
	return s.pledgeRepo.ListByCampaign(ctx, campaignID)
}

func (s *PledgeService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, events.ChannelCampaign, event); err != nil {
		s.log.Warn("event publish failed", zap.String("type", event.Type), zap.Error(err))
	}
}

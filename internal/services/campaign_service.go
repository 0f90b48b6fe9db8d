package services

import (
	"context"
	"errors"
	"time"

	"github.com/encorefund/backend/internal/cache"
	"github.com/encorefund/backend/internal/events"
	"github.com/encorefund/backend/internal/models"
	"github.com/encorefund/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Read sources reported in the response envelope.
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

type CampaignService struct {
	campaignRepo  *repositories.CampaignRepo
	milestoneRepo *repositories.MilestoneRepo
	tierRepo      *repositories.RewardTierRepo
	updateRepo    *repositories.UpdateRepo
	cache         *cache.CampaignCache
	publisher     events.Publisher
	log           *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	milestoneRepo *repositories.MilestoneRepo,
	tierRepo *repositories.RewardTierRepo,
	updateRepo *repositories.UpdateRepo,
	cache *cache.CampaignCache,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo:  campaignRepo,
		milestoneRepo: milestoneRepo,
		tierRepo:      tierRepo,
		updateRepo:    updateRepo,
		cache:         cache,
		publisher:     publisher,
		log:           log,
	}
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	c.UserID = userID
	c.Status = models.CampaignStatusDraft
	c.CurrentAmount = "0"
	return s.campaignRepo.Create(ctx, c)
}

func (s *CampaignService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	return s.campaignRepo.ListByOwner(ctx, userID)
}

// GetDetail serves the composite campaign view, from cache when possible.
// The returned source is SourceCache or SourceDatabase.
func (s *CampaignService) GetDetail(ctx context.Context, id uuid.UUID) (*models.CampaignDetail, string, error) {
	if cached, _ := s.cache.Get(ctx, id); cached != nil {
		return cached, SourceCache, nil
	}

	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrCampaignNotFound
		}
		return nil, "", err
	}

	detail := models.NewCampaignDetail(*c)

	if detail.Milestones, err = s.milestoneRepo.ListByCampaign(ctx, id); err != nil {
		return nil, "", err
	}
	if detail.RewardTiers, err = s.tierRepo.ListByCampaign(ctx, id); err != nil {
		return nil, "", err
	}
	if detail.Updates, err = s.updateRepo.ListByCampaign(ctx, id); err != nil {
		return nil, "", err
	}

	s.cache.Set(ctx, id, detail)
	return detail, SourceDatabase, nil
}

// Update overwrites every campaign field for the owner and invalidates the
// cached view. Ownership is enforced inside the update statement itself.
func (s *CampaignService) Update(ctx context.Context, id, userID uuid.UUID, c *models.Campaign) (*models.Campaign, error) {
	if !models.IsValidCampaignStatus(c.Status) {
		return nil, ErrInvalidStatus
	}

	c.ID = id
	c.UserID = userID
	if err := s.campaignRepo.UpdateOwned(ctx, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, events.Event{
		Type:       events.EventCampaignUpdate,
		CampaignID: id,
		Payload: map[string]any{
			"title":          c.Title,
			"status":         c.Status,
			"funding_goal":   c.FundingGoal,
			"current_amount": c.CurrentAmount,
			"updated_at":     c.UpdatedAt.Format(time.RFC3339),
		},
	})
	return c, nil
}

func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.campaignRepo.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCampaignNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// AddMilestone, AddRewardTier and AddUpdate mutate parts of the cached view,
// so each invalidates the campaign entry after a successful insert.

func (s *CampaignService) AddMilestone(ctx context.Context, campaignID, userID uuid.UUID, m *models.Milestone) error {
	if err := s.requireOwner(ctx, campaignID, userID); err != nil {
		return err
	}
	m.CampaignID = campaignID
	if err := s.milestoneRepo.Create(ctx, m); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, campaignID)
	return nil
}

func (s *CampaignService) AddRewardTier(ctx context.Context, campaignID, userID uuid.UUID, t *models.RewardTier) error {
	if err := s.requireOwner(ctx, campaignID, userID); err != nil {
		return err
	}
	t.CampaignID = campaignID
	if err := s.tierRepo.Create(ctx, t); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, campaignID)
	return nil
}

func (s *CampaignService) AddUpdate(ctx context.Context, campaignID, userID uuid.UUID, u *models.Update) error {
	if err := s.requireOwner(ctx, campaignID, userID); err != nil {
		return err
	}
	u.CampaignID = campaignID
	if err := s.updateRepo.Create(ctx, u); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, campaignID)
	return nil
}

func (s *CampaignService) requireOwner(ctx context.Context, campaignID, userID uuid.UUID) error {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCampaignNotFound
		}
		return err
	}
	if c.UserID != userID {
		return ErrCampaignNotFound
	}
	return nil
}

func (s *CampaignService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, events.ChannelCampaign, event); err != nil {
		s.log.Warn("event publish failed", zap.String("type", event.Type), zap.Error(err))
	}
}

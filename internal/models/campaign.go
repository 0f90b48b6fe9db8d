package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// CampaignStatuses is the accepted status set. Transitions between statuses
// are not constrained.
var CampaignStatuses = map[string]bool{
	CampaignStatusDraft:     true,
	CampaignStatusActive:    true,
	CampaignStatusCompleted: true,
	CampaignStatusCancelled: true,
}

func IsValidCampaignStatus(s string) bool {
	return CampaignStatuses[s]
}

type Campaign struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FundingGoal    string    `json:"funding_goal"`
	CurrentAmount  string    `json:"current_amount"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	BannerImageURL *string   `json:"banner_image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CampaignDetail is the composite read view served by GET /campaigns/:id
// and stored in the cache.
type CampaignDetail struct {
	Campaign
	Milestones  []Milestone  `json:"milestones"`
	RewardTiers []RewardTier `json:"reward_tiers"`
	Updates     []Update     `json:"updates"`
}

// NewCampaignDetail wraps a campaign with never-nil child slices so a fresh
// campaign serializes them as empty arrays.
func NewCampaignDetail(c Campaign) *CampaignDetail {
	return &CampaignDetail{
		Campaign:    c,
		Milestones:  []Milestone{},
		RewardTiers: []RewardTier{},
		Updates:     []Update{},
	}
}

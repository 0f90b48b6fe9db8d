package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PledgeStatusPending   = "pending"
	PledgeStatusCompleted = "completed"
	PledgeStatusFailed    = "failed"
	PledgeStatusRefunded  = "refunded"
)

type Pledge struct {
	ID            uuid.UUID  `json:"id"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	UserID        uuid.UUID  `json:"user_id"`
	RewardTierID  *uuid.UUID `json:"reward_tier_id,omitempty"`
	Amount        string     `json:"amount"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

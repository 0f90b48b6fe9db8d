package models

import (
	"time"

	"github.com/google/uuid"
)

type RewardTier struct {
	ID                    uuid.UUID  `json:"id"`
	CampaignID            uuid.UUID  `json:"campaign_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	MinimumAmount         string     `json:"minimum_amount"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	MaxClaims             *int       `json:"max_claims,omitempty"`
	CurrentClaims         int        `json:"current_claims"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

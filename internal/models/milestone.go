package models

import (
	"time"

	"github.com/google/uuid"
)

type Milestone struct {
	ID           uuid.UUID  `json:"id"`
	CampaignID   uuid.UUID  `json:"campaign_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	TargetAmount string     `json:"target_amount"`
	ReachedAt    *time.Time `json:"reached_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

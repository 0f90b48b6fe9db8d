package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"fullName"`
	ArtistName *string `json:"artistName,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FullName   string  `json:"fullName"`
	ArtistName *string `json:"artistName,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

type CreateCampaignRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FundingGoal    string    `json:"fundingGoal"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	BannerImageURL *string   `json:"bannerImageUrl,omitempty"`
}

// UpdateCampaignRequest carries every campaign field; partial updates are
// not supported.
type UpdateCampaignRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FundingGoal    string    `json:"fundingGoal"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	BannerImageURL *string   `json:"bannerImageUrl,omitempty"`
}

type CreateMilestoneRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	TargetAmount string  `json:"targetAmount"`
}

type CreateRewardTierRequest struct {
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	MinimumAmount         string     `json:"minimumAmount"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	MaxClaims             *int       `json:"maxClaims,omitempty"`
}

type CreateUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Publish bool   `json:"publish"`
}

type CreatePledgeRequest struct {
	Amount       string     `json:"amount"`
	RewardTierID *uuid.UUID `json:"rewardTierId,omitempty"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

package services

import "errors"

var (
	// ErrCampaignNotFound covers both a missing row and a row owned by
	// someone else; the two are deliberately not distinguished.
	ErrCampaignNotFound = errors.New("campaign not found or unauthorized")

	// ErrRewardTierUnavailable is returned when a pledge names a tier that
	// does not belong to the campaign or has no claims left.
	ErrRewardTierUnavailable = errors.New("reward tier unavailable")

	ErrInvalidStatus = errors.New("invalid campaign status")
)

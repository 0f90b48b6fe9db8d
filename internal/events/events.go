package events

import (
	"context"

	"github.com/google/uuid"
)

// Channel carrying campaign-scoped events between API replicas and the WS hub.
const ChannelCampaign = "events:campaign"

// Event types relayed to browsers. Names match the client socket contract.
const (
	EventCampaignUpdate  = "campaignUpdate"
	EventPledgeReceived  = "pledgeReceived"
	EventMilestoneUpdate = "milestoneUpdate"
)

type Event struct {
	Type       string         `json:"type"`
	CampaignID uuid.UUID      `json:"campaign_id"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, channel string, handler func(Event)) error
}

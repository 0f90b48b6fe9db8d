package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/encorefund/backend/internal/events"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Inbound message types from browsers.
const (
	wsJoinCampaign     = "joinCampaign"
	wsLeaveCampaign    = "leaveCampaign"
	wsCampaignUpdated  = "campaignUpdated"
	wsNewPledge        = "newPledge"
	wsMilestoneReached = "milestoneReached"
)

type wsMessage struct {
	Type       string          `json:"type"`
	CampaignID uuid.UUID       `json:"campaignId"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// wsConn is the slice of *websocket.Conn the hub needs.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
}

// WSHub keeps one room per campaign and fans event payloads out to its
// members. Delivery is best effort: no ordering, no persistence, no replay.
// Events published by the API itself arrive through the Redis subscription
// so every replica's hub sees them.
type WSHub struct {
	subscriber events.Subscriber
	log        *zap.Logger
	mu         sync.RWMutex
	rooms      map[uuid.UUID]map[wsConn]struct{}
}

func NewWSHub(subscriber events.Subscriber, log *zap.Logger) *WSHub {
	return &WSHub{
		subscriber: subscriber,
		log:        log,
		rooms:      make(map[uuid.UUID]map[wsConn]struct{}),
	}
}

func (h *WSHub) Start(ctx context.Context) {
	_ = h.subscriber.Subscribe(ctx, events.ChannelCampaign, h.handleServerEvent)
}

// handleServerEvent relays a service-published event to the whole room.
func (h *WSHub) handleServerEvent(event events.Event) {
	var data json.RawMessage
	if event.Payload != nil {
		data, _ = json.Marshal(event.Payload)
	}
	out, err := json.Marshal(wsMessage{Type: event.Type, CampaignID: event.CampaignID, Data: data})
	if err != nil {
		return
	}
	h.relay(event.CampaignID, nil, out)
}

func (h *WSHub) join(campaignID uuid.UUID, conn wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[campaignID]
	if room == nil {
		room = make(map[wsConn]struct{})
		h.rooms[campaignID] = room
	}
	room[conn] = struct{}{}
}

func (h *WSHub) leave(campaignID uuid.UUID, conn wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[campaignID], conn)
	if len(h.rooms[campaignID]) == 0 {
		delete(h.rooms, campaignID)
	}
}

func (h *WSHub) dropConn(conn wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		delete(room, conn)
		if len(room) == 0 {
			delete(h.rooms, id)
		}
	}
}

// relay sends data to every room member except exclude (nil excludes no one).
func (h *WSHub) relay(campaignID uuid.UUID, exclude wsConn, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.rooms[campaignID] {
		if conn == exclude {
			continue
		}
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}

// dispatch handles one inbound client message.
func (h *WSHub) dispatch(conn wsConn, raw []byte) {
	var msg wsMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.log.Debug("ws message unreadable", zap.Error(err))
		return
	}
	if msg.CampaignID == uuid.Nil {
		return
	}

	switch msg.Type {
	case wsJoinCampaign:
		h.join(msg.CampaignID, conn)
	case wsLeaveCampaign:
		h.leave(msg.CampaignID, conn)
	case wsCampaignUpdated:
		h.relayClientEvent(conn, msg, events.EventCampaignUpdate, false)
	case wsNewPledge:
		h.relayClientEvent(conn, msg, events.EventPledgeReceived, false)
	case wsMilestoneReached:
		// milestone announcements echo back to the sender too
		h.relayClientEvent(conn, msg, events.EventMilestoneUpdate, true)
	default:
		h.log.Debug("ws message type unknown", zap.String("type", msg.Type))
	}
}

func (h *WSHub) relayClientEvent(sender wsConn, msg wsMessage, outType string, includeSender bool) {
	out, err := json.Marshal(wsMessage{Type: outType, CampaignID: msg.CampaignID, Data: msg.Data})
	if err != nil {
		return
	}
	exclude := sender
	if includeSender {
		exclude = nil
	}
	h.relay(msg.CampaignID, exclude, out)
}

// WSUpgradeMiddleware rejects plain HTTP requests to the WS endpoint.
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	defer func() {
		h.dropConn(conn)
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.dispatch(conn, raw)
	}
}

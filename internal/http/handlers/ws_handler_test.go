package handlers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/encorefund/backend/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeConn struct {
	received [][]byte
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.received = append(f.received, data)
	return nil
}

func (f *fakeConn) lastType(t *testing.T) string {
	t.Helper()
	if len(f.received) == 0 {
		t.Fatal("no message received")
	}
	var msg wsMessage
	if err := json.Unmarshal(f.received[len(f.received)-1], &msg); err != nil {
		t.Fatalf("unmarshal received message: %v", err)
	}
	return msg.Type
}

func clientMsg(t *testing.T, typ string, campaignID uuid.UUID) []byte {
	t.Helper()
	raw, err := json.Marshal(wsMessage{Type: typ, CampaignID: campaignID, Data: json.RawMessage(`{"x":1}`)})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestHubPledgeEventSkipsSender(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	campaignID := uuid.New()

	a := &fakeConn{}
	b := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, campaignID))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, campaignID))

	hub.dispatch(a, clientMsg(t, wsNewPledge, campaignID))

	if len(a.received) != 0 {
		t.Errorf("sender received its own pledge event: %d messages", len(a.received))
	}
	if len(b.received) != 1 {
		t.Fatalf("other member got %d messages, want 1", len(b.received))
	}
	if got := b.lastType(t); got != events.EventPledgeReceived {
		t.Errorf("relayed type = %q, want %q", got, events.EventPledgeReceived)
	}
}

func TestHubMilestoneEventIncludesSender(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	campaignID := uuid.New()

	a := &fakeConn{}
	b := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, campaignID))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, campaignID))

	hub.dispatch(a, clientMsg(t, wsMilestoneReached, campaignID))

	if len(a.received) != 1 || len(b.received) != 1 {
		t.Fatalf("got a=%d b=%d messages, want 1 each", len(a.received), len(b.received))
	}
	if got := a.lastType(t); got != events.EventMilestoneUpdate {
		t.Errorf("relayed type = %q, want %q", got, events.EventMilestoneUpdate)
	}
}

func TestHubRoomsAreScoped(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	c1 := uuid.New()
	c2 := uuid.New()

	a := &fakeConn{}
	b := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, c1))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, c2))

	hub.dispatch(a, clientMsg(t, wsCampaignUpdated, c1))

	if len(b.received) != 0 {
		t.Errorf("member of another campaign room received %d messages", len(b.received))
	}
}

func TestHubLeaveStopsDelivery(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	campaignID := uuid.New()

	a := &fakeConn{}
	b := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, campaignID))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, campaignID))
	hub.dispatch(b, clientMsg(t, wsLeaveCampaign, campaignID))

	hub.dispatch(a, clientMsg(t, wsNewPledge, campaignID))

	if len(b.received) != 0 {
		t.Errorf("departed member received %d messages", len(b.received))
	}
}

func TestHubDropConnRemovesFromAllRooms(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	c1 := uuid.New()
	c2 := uuid.New()

	a := &fakeConn{}
	b := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, c1))
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, c2))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, c1))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, c2))

	hub.dropConn(b)

	hub.dispatch(a, clientMsg(t, wsNewPledge, c1))
	hub.dispatch(a, clientMsg(t, wsNewPledge, c2))

	if len(b.received) != 0 {
		t.Errorf("dropped conn received %d messages", len(b.received))
	}
}

func TestHubServerEventReachesWholeRoom(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	campaignID := uuid.New()

	a := &fakeConn{}
	b := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, campaignID))
	hub.dispatch(b, clientMsg(t, wsJoinCampaign, campaignID))

	hub.handleServerEvent(events.Event{
		Type:       events.EventPledgeReceived,
		CampaignID: campaignID,
		Payload:    map[string]any{"amount": "25.00"},
	})

	for i, conn := range []*fakeConn{a, b} {
		if len(conn.received) != 1 {
			t.Fatalf("conn %d got %d messages, want 1", i, len(conn.received))
		}
		if got := conn.lastType(t); got != events.EventPledgeReceived {
			t.Errorf("conn %d type = %q, want %q", i, got, events.EventPledgeReceived)
		}
	}
}

func TestHubIgnoresGarbage(t *testing.T) {
	hub := NewWSHub(nil, zap.NewNop())
	campaignID := uuid.New()

	a := &fakeConn{}
	hub.dispatch(a, clientMsg(t, wsJoinCampaign, campaignID))

	hub.dispatch(a, []byte("not json"))
	hub.dispatch(a, []byte(fmt.Sprintf(`{"type":"unknownThing","campaignId":%q}`, campaignID)))
	hub.dispatch(a, []byte(`{"type":"newPledge"}`))

	if len(a.received) != 0 {
		t.Errorf("garbage input produced %d messages", len(a.received))
	}
}

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIsValidCampaignStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{CampaignStatusDraft, true},
		{CampaignStatusActive, true},
		{CampaignStatusCompleted, true},
		{CampaignStatusCancelled, true},
		{"", false},
		{"DRAFT", false},
		{"archived", false},
	}

	for _, tt := range tests {
		if got := IsValidCampaignStatus(tt.status); got != tt.want {
			t.Errorf("IsValidCampaignStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestNewCampaignDetailEmptyChildren(t *testing.T) {
	detail := NewCampaignDetail(Campaign{
		Title:         "First EP",
		Status:        CampaignStatusDraft,
		CurrentAmount: "0",
	})

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	// A fresh campaign must serialize empty arrays, not null
	for _, field := range []string{`"milestones":[]`, `"reward_tiers":[]`, `"updates":[]`} {
		if !strings.Contains(out, field) {
			t.Errorf("detail JSON missing %s: %s", field, out)
		}
	}
	if !strings.Contains(out, `"status":"draft"`) {
		t.Errorf("detail JSON should carry draft status: %s", out)
	}
	if !strings.Contains(out, `"current_amount":"0"`) {
		t.Errorf("detail JSON should carry zero amount: %s", out)
	}
}

func TestCampaignDetailCacheRoundTrip(t *testing.T) {
	detail := NewCampaignDetail(Campaign{Title: "Tour Fund", Status: CampaignStatusActive, CurrentAmount: "150.00"})
	detail.Milestones = append(detail.Milestones, Milestone{Title: "Studio time", TargetAmount: "100.00"})

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back CampaignDetail
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.Title != "Tour Fund" || back.CurrentAmount != "150.00" {
		t.Errorf("campaign fields lost in round trip: %+v", back.Campaign)
	}
	if len(back.Milestones) != 1 || back.Milestones[0].Title != "Studio time" {
		t.Errorf("milestones lost in round trip: %+v", back.Milestones)
	}
}

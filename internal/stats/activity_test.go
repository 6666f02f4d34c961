package stats

import (
	"testing"

	"fantasy-league-history/internal/domain/activity"
)

func TestActivityLeaders(t *testing.T) {
	e := NewEngine(Source{Activities: []activity.Activity{
		{Year: 2023, Actions: []activity.Action{
			{CoachID: "b", CoachName: "Bob", Kind: activity.KindWaiverAdd},
			{CoachID: "b", CoachName: "Bob", Kind: activity.KindDrop},
			{CoachID: "a", CoachName: "Alice", Kind: activity.KindTrade},
		}},
		{Year: 2024, Actions: []activity.Action{
			{CoachID: "a", CoachName: "Alice", Kind: activity.KindFreeAgentAdd},
			{CoachName: "Ghost", Kind: activity.KindDrop},
			{CoachID: "b", CoachName: "Bob", Kind: activity.KindTrade},
		}},
	}})

	got := e.ActivityLeaders(5)
	if len(got) != 3 {
		t.Fatalf("expected 3 coaches, got %+v", got)
	}
	if got[0].CoachID != "b" || got[0].Actions != 3 || got[0].Adds != 1 || got[0].Drops != 1 || got[0].Trades != 1 {
		t.Fatalf("unexpected leader %+v", got[0])
	}
	if got[1].CoachID != "a" || got[1].Actions != 2 {
		t.Fatalf("unexpected runner-up %+v", got[1])
	}
	if got[2].CoachID != "Ghost" {
		t.Fatalf("expected name fallback for missing id, got %+v", got[2])
	}
	if top := e.ActivityLeaders(1); len(top) != 1 {
		t.Fatalf("expected truncation, got %d", len(top))
	}
}

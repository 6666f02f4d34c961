package stats

import (
	"testing"

	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/testutil"
)

func streakLeague() []matchups.Record {
	return []matchups.Record{
		testutil.Win(alice, 100, bob, 90, 1, 2023),
		testutil.Win(alice, 100, bob, 90, 2, 2023),
		testutil.Win(alice, 100, bob, 90, 3, 2023),
		testutil.Win(bob, 100, alice, 90, 4, 2023),
		testutil.Win(bob, 100, alice, 90, 5, 2023),
		testutil.PlayoffWin(alice, 100, bob, 90, 6, 2023),
		testutil.Win(alice, 100, bob, 90, 1, 2024),
		testutil.Win(bob, 100, alice, 90, 2, 2024),
	}
}

func TestStreaksCountClosedRunsWithinSeasons(t *testing.T) {
	got := engineFor(streakLeague()).Streaks(5, true)

	wantWinning := []Streak{
		{Coach: alice, Length: 3, EndWeek: 4, EndYear: 2023},
		{Coach: alice, Length: 1, EndWeek: 2, EndYear: 2024},
	}
	wantLosing := []Streak{
		{Coach: bob, Length: 3, EndWeek: 4, EndYear: 2023},
		{Coach: bob, Length: 1, EndWeek: 2, EndYear: 2024},
	}
	assertStreaks(t, "winning", got.Winning, wantWinning)
	assertStreaks(t, "losing", got.Losing, wantLosing)
}

func TestStreaksIncludingPlayoffs(t *testing.T) {
	got := engineFor(streakLeague()).Streaks(5, false)
	// Bob's two wins end at the week 6 playoff loss.
	found := false
	for _, s := range got.Winning {
		if s.Coach.ID == "bob" && s.Length == 2 && s.EndWeek == 6 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Bob's streak closed by the playoff game, got %+v", got.Winning)
	}
}

func TestStreaksTruncateToN(t *testing.T) {
	got := engineFor(streakLeague()).Streaks(1, true)
	if len(got.Winning) != 1 || got.Winning[0].Length != 3 {
		t.Fatalf("unexpected winning streaks %+v", got.Winning)
	}
	if len(got.Losing) != 1 || got.Losing[0].Length != 3 {
		t.Fatalf("unexpected losing streaks %+v", got.Losing)
	}
}

func TestStreakLengthMatchesLossesBeforeWin(t *testing.T) {
	records := []matchups.Record{
		testutil.Win(alice, 100, cara, 90, 1, 2022),
		testutil.Win(bob, 100, cara, 90, 2, 2022),
		testutil.Win(dan, 100, cara, 90, 3, 2022),
		testutil.Win(cara, 100, alice, 90, 4, 2022),
	}
	got := engineFor(records).Streaks(5, true)
	var caraLoss *Streak
	for i := range got.Losing {
		if got.Losing[i].Coach.ID == "cara" {
			caraLoss = &got.Losing[i]
		}
	}
	if caraLoss == nil || caraLoss.Length != 3 || caraLoss.EndWeek != 4 {
		t.Fatalf("expected Cara's 3-game losing streak ending week 4, got %+v", got.Losing)
	}
}

func TestInsertRankedKeepsFirstFoundOnTies(t *testing.T) {
	first := Streak{Coach: alice, Length: 3}
	second := Streak{Coach: bob, Length: 3}
	list := insertRanked(nil, first, 1)
	list = insertRanked(list, second, 1)
	if len(list) != 1 || list[0].Coach.ID != "alice" {
		t.Fatalf("expected first streak to keep the slot, got %+v", list)
	}

	list = insertRanked(list, Streak{Coach: cara, Length: 4}, 1)
	if len(list) != 1 || list[0].Coach.ID != "cara" {
		t.Fatalf("expected longer streak to take the slot, got %+v", list)
	}

	list = insertRanked(nil, first, 3)
	list = insertRanked(list, Streak{Coach: dan, Length: 1}, 3)
	list = insertRanked(list, second, 3)
	if len(list) != 3 || list[0].Coach.ID != "alice" || list[1].Coach.ID != "bob" || list[2].Coach.ID != "dan" {
		t.Fatalf("expected ties kept in discovery order, got %+v", list)
	}
}

func assertStreaks(t *testing.T, label string, got, want []Streak) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d streaks, got %+v", label, len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s %d: expected %+v, got %+v", label, i, want[i], got[i])
		}
	}
}

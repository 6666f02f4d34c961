package matchups

import (
	"testing"

	"fantasy-league-history/internal/domain/coaches"
)

var (
	alice = coaches.Coach{ID: "a", FirstName: "Alice", LastName: "Smith"}
	bob   = coaches.Coach{ID: "b", FirstName: "Bob", LastName: "Jones"}
)

func TestTypeIsRegularSeason(t *testing.T) {
	cases := map[Type]bool{
		TypeRegular:                  true,
		TypeWinnersBracket:           false,
		TypeWinnersConsolationLadder: false,
		TypeLosersConsolationLadder:  false,
		Type("SOMETHING_NEW"):        false,
	}
	for typ, want := range cases {
		if got := typ.IsRegularSeason(); got != want {
			t.Fatalf("type %s expected regular=%v, got %v", typ, want, got)
		}
	}
}

func TestNewRecordOrientsWinnerAndLoser(t *testing.T) {
	cases := []struct {
		name       string
		home, away float64
		winner     string
	}{
		{"home wins", 120.5, 99.25, "a"},
		{"away wins", 80, 101.3, "b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := NewRecord(Matchup{Home: alice, HomeScore: tc.home, Away: bob, AwayScore: tc.away, Type: TypeRegular}, 3, 2023, TieAwayWins)
			if !ok {
				t.Fatalf("expected record")
			}
			if rec.Winner.ID != tc.winner {
				t.Fatalf("expected winner %s, got %s", tc.winner, rec.Winner.ID)
			}
			if rec.WinnerScore < rec.LoserScore {
				t.Fatalf("winner score %v below loser score %v", rec.WinnerScore, rec.LoserScore)
			}
			if rec.Difference != RoundPoints(rec.WinnerScore-rec.LoserScore) {
				t.Fatalf("unexpected difference %v", rec.Difference)
			}
			if rec.Week != 3 || rec.Year != 2023 {
				t.Fatalf("unexpected week/year %d/%d", rec.Week, rec.Year)
			}
		})
	}
}

func TestNewRecordRoundsDifference(t *testing.T) {
	rec, _ := NewRecord(Matchup{Home: alice, HomeScore: 100.126, Away: bob, AwayScore: 90}, 1, 2024, TieAwayWins)
	if rec.Difference != 10.13 {
		t.Fatalf("expected difference 10.13, got %v", rec.Difference)
	}
}

func TestNewRecordTiePolicies(t *testing.T) {
	tied := Matchup{Home: alice, HomeScore: 95, Away: bob, AwayScore: 95, Type: TypeRegular}

	rec, ok := NewRecord(tied, 2, 2023, TieAwayWins)
	if !ok || rec.Winner.ID != "b" || !rec.Tie || rec.Difference != 0 {
		t.Fatalf("expected away side credited with tie, got %+v", rec)
	}

	rec, ok = NewRecord(tied, 2, 2023, TieHomeWins)
	if !ok || rec.Winner.ID != "a" || !rec.Tie {
		t.Fatalf("expected home side credited with tie, got %+v", rec)
	}

	if _, ok := NewRecord(tied, 2, 2023, TieSkip); ok {
		t.Fatalf("expected tie to be skipped")
	}
}

func TestParseTiePolicy(t *testing.T) {
	cases := map[string]TiePolicy{
		"":       TieAwayWins,
		"away":   TieAwayWins,
		" HOME ": TieHomeWins,
		"skip":   TieSkip,
		"bogus":  TieAwayWins,
	}
	for in, want := range cases {
		if got := ParseTiePolicy(in); got != want {
			t.Fatalf("input %q expected %s, got %s", in, want, got)
		}
	}
}

func TestKeyForUsesCoachIdentity(t *testing.T) {
	k := KeyFor(alice, 2024)
	if k.CoachID != "a" || k.Year != 2024 {
		t.Fatalf("unexpected key %+v", k)
	}
	comma := coaches.Coach{FirstName: "Smith,", LastName: "Jr"}
	if KeyFor(comma, 2024).CoachID != "Smith, Jr" {
		t.Fatalf("expected names with separators to survive as-is")
	}
}

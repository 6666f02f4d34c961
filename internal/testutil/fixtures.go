package testutil

import (
	"strings"

	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

// Coach builds a coach whose id is the lowercased first name.
func Coach(first, last string) coaches.Coach {
	return coaches.Coach{ID: strings.ToLower(first), FirstName: first, LastName: last}
}

// Win builds a regular-season record with winner and loser already oriented.
func Win(winner coaches.Coach, ws float64, loser coaches.Coach, ls float64, week, year int) matchups.Record {
	rec, _ := matchups.NewRecord(matchups.Matchup{
		Home: winner, HomeScore: ws,
		Away: loser, AwayScore: ls,
		Type: matchups.TypeRegular,
	}, week, year, matchups.TieHomeWins)
	return rec
}

// PlayoffWin is Win for a winners-bracket game.
func PlayoffWin(winner coaches.Coach, ws float64, loser coaches.Coach, ls float64, week, year int) matchups.Record {
	rec := Win(winner, ws, loser, ls, week, year)
	rec.IsPlayoff = true
	rec.Type = matchups.TypeWinnersBracket
	return rec
}

// RegularSeason filters records down to regular-season games, keeping order.
func RegularSeason(records []matchups.Record) []matchups.Record {
	out := make([]matchups.Record, 0, len(records))
	for _, r := range records {
		if r.IsRegularSeason() {
			out = append(out, r)
		}
	}
	return out
}

// TwoSeasonLeague is the two-coach fixture: Alice beats Bob 100-90 in week 1 of 2023,
// Bob beats Alice 110-95 in week 1 of 2024.
func TwoSeasonLeague() []matchups.Record {
	alice, bob := Coach("Alice", "Adams"), Coach("Bob", "Brown")
	return []matchups.Record{
		Win(alice, 100, bob, 90, 1, 2023),
		Win(bob, 110, alice, 95, 1, 2024),
	}
}

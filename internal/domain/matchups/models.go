package matchups

import (
	"strings"

	"github.com/shopspring/decimal"

	"fantasy-league-history/internal/domain/coaches"
)

// Type mirrors the upstream playoff tier tag attached to every matchup.
type Type string

const (
	TypeRegular                  Type = "NONE"
	TypeWinnersBracket           Type = "WINNERS_BRACKET"
	TypeWinnersConsolationLadder Type = "WINNERS_CONSOLATION_LADDER"
	TypeLosersConsolationLadder  Type = "LOSERS_CONSOLATION_LADDER"
)

// IsRegularSeason reports whether the tag marks a regular-season game.
func (t Type) IsRegularSeason() bool {
	return t == TypeRegular
}

// Matchup is one raw scoreboard entry as returned by a league provider.
type Matchup struct {
	Home      coaches.Coach `json:"home"`
	HomeScore float64       `json:"homeScore"`
	Away      coaches.Coach `json:"away"`
	AwayScore float64       `json:"awayScore"`
	IsPlayoff bool          `json:"isPlayoff"`
	Type      Type          `json:"type"`
}

// Record is a matchup oriented by outcome and stamped with its week and year.
// Build it with NewRecord so WinnerScore >= LoserScore always holds.
type Record struct {
	Winner      coaches.Coach `json:"winner"`
	WinnerScore float64       `json:"winnerScore"`
	Loser       coaches.Coach `json:"loser"`
	LoserScore  float64       `json:"loserScore"`
	Difference  float64       `json:"difference"`
	IsPlayoff   bool          `json:"isPlayoff"`
	Type        Type          `json:"type"`
	Week        int           `json:"week"`
	Year        int           `json:"year"`
	Tie         bool          `json:"tie,omitempty"`
}

// IsRegularSeason reports whether the record counts toward the regular season.
func (r Record) IsRegularSeason() bool {
	return r.Type.IsRegularSeason()
}

// Involves reports whether the coach played in the matchup.
func (r Record) Involves(coachKey string) bool {
	return r.Winner.Key() == coachKey || r.Loser.Key() == coachKey
}

// TiePolicy decides who is credited with the win when both sides score the same.
type TiePolicy string

const (
	// TieAwayWins credits the away side, which is what a strict home > away check does.
	TieAwayWins TiePolicy = "away"
	TieHomeWins TiePolicy = "home"
	// TieSkip drops tied matchups from the record set.
	TieSkip TiePolicy = "skip"
)

// ParseTiePolicy maps a config value onto a policy, defaulting to TieAwayWins.
func ParseTiePolicy(raw string) TiePolicy {
	switch TiePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case TieHomeWins:
		return TieHomeWins
	case TieSkip:
		return TieSkip
	default:
		return TieAwayWins
	}
}

// NewRecord orients a raw matchup into a winner/loser record. The second return is false
// when the policy drops the matchup.
func NewRecord(m Matchup, week, year int, policy TiePolicy) (Record, bool) {
	homeWins := m.HomeScore > m.AwayScore
	tie := m.HomeScore == m.AwayScore
	if tie {
		switch policy {
		case TieSkip:
			return Record{}, false
		case TieHomeWins:
			homeWins = true
		}
	}

	rec := Record{
		IsPlayoff: m.IsPlayoff,
		Type:      m.Type,
		Week:      week,
		Year:      year,
		Tie:       tie,
	}
	if homeWins {
		rec.Winner, rec.WinnerScore = m.Home, m.HomeScore
		rec.Loser, rec.LoserScore = m.Away, m.AwayScore
	} else {
		rec.Winner, rec.WinnerScore = m.Away, m.AwayScore
		rec.Loser, rec.LoserScore = m.Home, m.HomeScore
	}
	rec.Difference = RoundPoints(rec.WinnerScore - rec.LoserScore)
	return rec, true
}

// RoundPoints rounds a point value to two decimals, half away from zero.
func RoundPoints(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// SeasonKey buckets season-level aggregates per coach and year.
type SeasonKey struct {
	CoachID string
	Year    int
}

// KeyFor builds the season key for a coach in a given year.
func KeyFor(c coaches.Coach, year int) SeasonKey {
	return SeasonKey{CoachID: c.Key(), Year: year}
}

// Week is one scoring week's raw scoreboard.
type Week struct {
	Number   int       `json:"week"`
	Matchups []Matchup `json:"matchups"`
}

// Season is a completed season's raw scoreboards, the unit the snapshot cache stores.
type Season struct {
	Year  int    `json:"year"`
	Weeks []Week `json:"weeks"`
}

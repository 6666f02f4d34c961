package fixture

import (
	"context"
	"time"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/providers"
)

const (
	// FirstSeason is the oldest season the fixture league has data for.
	FirstSeason    = 2015
	regularWeeks   = 3
	weeksPerSeason = regularWeeks + 1
	leagueID       = "fixture"
)

var league = []coaches.Coach{
	{ID: "fx-alice", FirstName: "Alice", LastName: "Archer"},
	{ID: "fx-bob", FirstName: "Bob", LastName: "Baker"},
	{ID: "fx-cara", FirstName: "Cara", LastName: "Cole"},
	{ID: "fx-dan", FirstName: "Dan", LastName: "Drake"},
}

// pairings lists home/away league indexes per week; the last week is the playoff round.
var pairings = [weeksPerSeason][2][2]int{
	{{0, 1}, {2, 3}},
	{{0, 2}, {1, 3}},
	{{3, 0}, {1, 2}},
	{{0, 1}, {2, 3}},
}

var playoffTypes = [2]matchups.Type{matchups.TypeWinnersBracket, matchups.TypeLosersConsolationLadder}

// Provider returns a deterministic four-coach league useful for local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Coaches returns the fixture league members.
func Coaches() []coaches.Coach {
	out := make([]coaches.Coach, len(league))
	copy(out, league)
	return out
}

// CurrentWeek returns the number of weeks every fixture season has.
func (p *Provider) CurrentWeek(ctx context.Context, year int) (int, error) {
	if err := checkSeason(ctx, year); err != nil {
		return 0, err
	}
	return weeksPerSeason, nil
}

// SeasonFinished reports every generated season as closed.
func (p *Provider) SeasonFinished(ctx context.Context, year int) (bool, error) {
	if err := checkSeason(ctx, year); err != nil {
		return false, err
	}
	return true, nil
}

// Scoreboard returns the two matchups of the given week.
func (p *Provider) Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error) {
	if err := checkSeason(ctx, year); err != nil {
		return nil, err
	}
	if week < 1 || week > weeksPerSeason {
		return []matchups.Matchup{}, nil
	}

	out := make([]matchups.Matchup, 0, 2)
	for slot, pair := range pairings[week-1] {
		m := matchups.Matchup{
			Home:      league[pair[0]],
			HomeScore: score(year, week, pair[0]),
			Away:      league[pair[1]],
			AwayScore: score(year, week, pair[1]),
			Type:      matchups.TypeRegular,
		}
		if week > regularWeeks {
			m.IsPlayoff = true
			m.Type = playoffTypes[slot]
		}
		out = append(out, m)
	}
	return out, nil
}

// RecentActivity returns one add and one drop per coach, newest first.
func (p *Provider) RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error) {
	if err := checkSeason(ctx, year); err != nil {
		return nil, err
	}

	out := make([]activity.Activity, 0, len(league))
	base := time.Date(year, time.December, 1, 12, 0, 0, 0, time.UTC)
	for i := len(league) - 1; i >= 0; i-- {
		c := league[i]
		act := activity.Activity{
			Year: year,
			Date: base.Add(time.Duration(i) * 24 * time.Hour),
			Actions: []activity.Action{
				{CoachID: c.ID, CoachName: c.DisplayName(), Kind: activity.KindWaiverAdd, PlayerID: 1000 + i},
				{CoachID: c.ID, CoachName: c.DisplayName(), Kind: activity.KindDrop, PlayerID: 2000 + i},
			},
		}
		// Earlier coaches are busier so activity rankings are not all ties.
		for extra := 0; extra < len(league)-1-i; extra++ {
			act.Actions = append(act.Actions, activity.Action{CoachID: c.ID, CoachName: c.DisplayName(), Kind: activity.KindFreeAgentAdd, PlayerID: 3000 + 10*i + extra})
		}
		out = append(out, act)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func checkSeason(ctx context.Context, year int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if year < FirstSeason {
		return &providers.InvalidLeagueError{LeagueID: leagueID, Year: year}
	}
	return nil
}

// score derives a stable quarter-point total from the season, week, and team.
func score(year, week, team int) float64 {
	whole := 70 + (year*31+week*17+team*23)%61
	quarters := (year + week + team) % 4
	return float64(whole) + float64(quarters)*0.25
}

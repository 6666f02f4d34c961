package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

// CoachTotal is a lifetime aggregate for one coach.
type CoachTotal struct {
	Coach   coaches.Coach
	Total   float64
	Games   int
	Average float64
}

// LifetimeResult ranks coaches by lifetime points and by points per game.
type LifetimeResult struct {
	ByTotal   []CoachTotal
	ByAverage []CoachTotal
}

// SeasonTotal is a per-coach, per-season aggregate.
type SeasonTotal struct {
	Key    matchups.SeasonKey
	Coach  coaches.Coach
	Year   int
	Points float64
}

// SeasonRanking holds the highest and lowest season totals.
type SeasonRanking struct {
	Highest []SeasonTotal
	Lowest  []SeasonTotal
}

// LifetimeTopScorers sums points scored by every coach, win or lose. Rankings use the exact
// totals; the rounded values are for display. n <= 0 lists every coach.
func (e *Engine) LifetimeTopScorers(n int, regularSeasonOnly bool) LifetimeResult {
	type acc struct {
		coach   coaches.Coach
		total   decimal.Decimal
		average decimal.Decimal
		games   int64
	}
	byCoach := make(map[string]*acc)
	add := func(c coaches.Coach, score float64) {
		a, ok := byCoach[c.Key()]
		if !ok {
			a = &acc{coach: c}
			byCoach[c.Key()] = a
		}
		a.total = a.total.Add(decimal.NewFromFloat(score))
		a.games++
	}
	for _, r := range e.records(regularSeasonOnly) {
		add(r.Winner, r.WinnerScore)
		add(r.Loser, r.LoserScore)
	}

	accs := make([]*acc, 0, len(byCoach))
	for _, a := range byCoach {
		a.average = a.total.Div(decimal.NewFromInt(a.games))
		accs = append(accs, a)
	}
	if n <= 0 {
		n = len(accs)
	}
	rank := func(value func(*acc) decimal.Decimal) []CoachTotal {
		sorted := append([]*acc(nil), accs...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if c := value(sorted[i]).Cmp(value(sorted[j])); c != 0 {
				return c > 0
			}
			return coaches.Less(sorted[i].coach, sorted[j].coach)
		})
		out := make([]CoachTotal, 0, len(sorted))
		for _, a := range sorted {
			out = append(out, CoachTotal{
				Coach:   a.coach,
				Total:   a.total.Round(2).InexactFloat64(),
				Games:   int(a.games),
				Average: a.average.Round(2).InexactFloat64(),
			})
		}
		return take(out, n)
	}

	return LifetimeResult{
		ByTotal:   rank(func(a *acc) decimal.Decimal { return a.total }),
		ByAverage: rank(func(a *acc) decimal.Decimal { return a.average }),
	}
}

// SeasonPointsAllowed sums opponents' scores per coach and season within [startYear, endYear].
func (e *Engine) SeasonPointsAllowed(startYear, endYear, n int, regularSeasonOnly bool) SeasonRanking {
	totals := seasonFold(e.records(regularSeasonOnly), func(r matchups.Record) bool {
		return r.Year >= startYear && r.Year <= endYear
	}, func(r matchups.Record) (float64, float64) {
		return r.LoserScore, r.WinnerScore
	})
	return rankSeasons(totals, totals, n)
}

// PointsScored sums own scores per coach and season. The lowest ranking leaves out the
// season still being played.
func (e *Engine) PointsScored(n int, regularSeasonOnly bool) SeasonRanking {
	totals := seasonFold(e.records(regularSeasonOnly), nil, func(r matchups.Record) (float64, float64) {
		return r.WinnerScore, r.LoserScore
	})
	present := e.now().Year()
	finished := make([]SeasonTotal, 0, len(totals))
	for _, t := range totals {
		if t.Year != present {
			finished = append(finished, t)
		}
	}
	return rankSeasons(totals, finished, n)
}

// seasonFold accumulates a value per (coach, year). points returns what the winner and the
// loser of a record are credited with.
func seasonFold(records []matchups.Record, keep func(matchups.Record) bool, points func(matchups.Record) (float64, float64)) []SeasonTotal {
	type acc struct {
		coach coaches.Coach
		year  int
		sum   decimal.Decimal
	}
	byKey := make(map[matchups.SeasonKey]*acc)
	var order []matchups.SeasonKey
	add := func(c coaches.Coach, year int, v float64) {
		key := matchups.KeyFor(c, year)
		a, ok := byKey[key]
		if !ok {
			a = &acc{coach: c, year: year}
			byKey[key] = a
			order = append(order, key)
		}
		a.sum = a.sum.Add(decimal.NewFromFloat(v))
	}
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		winnerPts, loserPts := points(r)
		add(r.Winner, r.Year, winnerPts)
		add(r.Loser, r.Year, loserPts)
	}

	out := make([]SeasonTotal, 0, len(order))
	for _, key := range order {
		a := byKey[key]
		out = append(out, SeasonTotal{Key: key, Coach: a.coach, Year: a.year, Points: a.sum.Round(2).InexactFloat64()})
	}
	return out
}

func rankSeasons(highestFrom, lowestFrom []SeasonTotal, n int) SeasonRanking {
	highest := append([]SeasonTotal(nil), highestFrom...)
	sort.SliceStable(highest, func(i, j int) bool { return seasonBefore(highest[i], highest[j], true) })
	lowest := append([]SeasonTotal(nil), lowestFrom...)
	sort.SliceStable(lowest, func(i, j int) bool { return seasonBefore(lowest[i], lowest[j], false) })
	return SeasonRanking{
		Highest: take(highest, n),
		Lowest:  take(lowest, n),
	}
}

func seasonBefore(a, b SeasonTotal, desc bool) bool {
	if a.Points != b.Points {
		if desc {
			return a.Points > b.Points
		}
		return a.Points < b.Points
	}
	if an, bn := a.Coach.DisplayName(), b.Coach.DisplayName(); an != bn {
		return an < bn
	}
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	return a.Coach.Key() < b.Coach.Key()
}

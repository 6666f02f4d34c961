package stats

import (
	"sort"

	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

// Streak is a closed run of consecutive results. EndWeek and EndYear name the game that broke it.
type Streak struct {
	Coach   coaches.Coach
	Length  int
	EndWeek int
	EndYear int
}

// StreakResult holds the longest winning and losing streaks.
type StreakResult struct {
	Winning []Streak
	Losing  []Streak
}

// Streaks finds the n longest closed winning and losing streaks. Counters reset at every
// season start, and a streak still running at the end of the data never counts.
func (e *Engine) Streaks(n int, regularSeasonOnly bool) StreakResult {
	result := StreakResult{Winning: []Streak{}, Losing: []Streak{}}
	if n <= 0 {
		return result
	}

	chronological := sortedCopy(e.all, func(a, b matchups.Record) bool {
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Week < b.Week
	})
	if regularSeasonOnly {
		filtered := chronological[:0:0]
		for _, r := range chronological {
			if r.IsRegularSeason() {
				filtered = append(filtered, r)
			}
		}
		chronological = filtered
	}

	for _, coach := range coachesIn(chronological) {
		key := coach.Key()
		wins, losses := 0, 0
		lastYear := 0
		for _, r := range chronological {
			if !r.Involves(key) {
				continue
			}
			if r.Week == 1 || r.Year != lastYear {
				wins, losses = 0, 0
			}
			lastYear = r.Year

			if r.Winner.Key() == key {
				if losses > 0 {
					result.Losing = insertRanked(result.Losing, Streak{Coach: coach, Length: losses, EndWeek: r.Week, EndYear: r.Year}, n)
				}
				wins++
				losses = 0
				continue
			}
			if wins > 0 {
				result.Winning = insertRanked(result.Winning, Streak{Coach: coach, Length: wins, EndWeek: r.Week, EndYear: r.Year}, n)
			}
			losses++
			wins = 0
		}
	}
	return result
}

// insertRanked places s before the first strictly shorter streak within the first n slots
// and truncates to n. Equal streaks keep their discovery order.
func insertRanked(list []Streak, s Streak, n int) []Streak {
	for i := 0; i < n; i++ {
		if i >= len(list) || s.Length > list[i].Length {
			list = append(list, Streak{})
			copy(list[i+1:], list[i:])
			list[i] = s
			if len(list) > n {
				list = list[:n]
			}
			return list
		}
	}
	return list
}

// coachesIn lists the distinct coaches of records ordered by display name, then id.
func coachesIn(records []matchups.Record) []coaches.Coach {
	seen := make(map[string]coaches.Coach)
	for _, r := range records {
		if _, ok := seen[r.Winner.Key()]; !ok {
			seen[r.Winner.Key()] = r.Winner
		}
		if _, ok := seen[r.Loser.Key()]; !ok {
			seen[r.Loser.Key()] = r.Loser
		}
	}
	out := make([]coaches.Coach, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return coaches.Less(out[i], out[j]) })
	return out
}

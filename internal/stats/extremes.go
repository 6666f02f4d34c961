package stats

import (
	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

// ScoreEntry is one side of a matchup singled out by score.
type ScoreEntry struct {
	Coach  coaches.Coach
	Score  float64
	Week   int
	Year   int
	Winner bool
}

// HighestScoresAllTime merges the top winner and loser scores into one descending ranking.
func (e *Engine) HighestScoresAllTime(n int, regularSeasonOnly bool) []ScoreEntry {
	return mergeSelect(e.records(regularSeasonOnly), n, func(a, b float64) bool { return a > b })
}

// LowestScoresAllTime merges the bottom winner and loser scores into one ascending ranking.
func (e *Engine) LowestScoresAllTime(n int, regularSeasonOnly bool) []ScoreEntry {
	return mergeSelect(e.records(regularSeasonOnly), n, func(a, b float64) bool { return a < b })
}

// mergeSelect walks the best n winners and the best n losers side by side. A loser is taken
// only when it strictly beats the next winner, so ties go to the winner list. When one list
// runs out the other continues; the result holds min(n, 2*len(records)) entries.
func mergeSelect(records []matchups.Record, n int, better func(a, b float64) bool) []ScoreEntry {
	if n <= 0 {
		return []ScoreEntry{}
	}
	winners := take(sortedCopy(records, func(a, b matchups.Record) bool {
		return better(a.WinnerScore, b.WinnerScore)
	}), n)
	losers := take(sortedCopy(records, func(a, b matchups.Record) bool {
		return better(a.LoserScore, b.LoserScore)
	}), n)

	out := make([]ScoreEntry, 0, min(n, len(winners)+len(losers)))
	wi, li := 0, 0
	for len(out) < n && (wi < len(winners) || li < len(losers)) {
		useLoser := wi >= len(winners) ||
			(li < len(losers) && better(losers[li].LoserScore, winners[wi].WinnerScore))
		if useLoser {
			r := losers[li]
			out = append(out, ScoreEntry{Coach: r.Loser, Score: r.LoserScore, Week: r.Week, Year: r.Year})
			li++
			continue
		}
		r := winners[wi]
		out = append(out, ScoreEntry{Coach: r.Winner, Score: r.WinnerScore, Week: r.Week, Year: r.Year, Winner: true})
		wi++
	}
	return out
}

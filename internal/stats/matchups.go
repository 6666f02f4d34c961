package stats

import "fantasy-league-history/internal/domain/matchups"

// LowestWinningPointTotals returns the n wins with the fewest points, ascending.
func (e *Engine) LowestWinningPointTotals(n int) []matchups.Record {
	sorted := sortedCopy(e.all, func(a, b matchups.Record) bool {
		return a.WinnerScore < b.WinnerScore
	})
	return take(sorted, n)
}

// HighestLosingPointTotals returns the n losses with the most points, descending.
func (e *Engine) HighestLosingPointTotals(n int) []matchups.Record {
	sorted := sortedCopy(e.all, func(a, b matchups.Record) bool {
		return a.LoserScore > b.LoserScore
	})
	return take(sorted, n)
}

// ClosestGames returns the n matchups with the smallest margin, ascending.
func (e *Engine) ClosestGames(n int) []matchups.Record {
	sorted := sortedCopy(e.all, func(a, b matchups.Record) bool {
		return a.Difference < b.Difference
	})
	return take(sorted, n)
}

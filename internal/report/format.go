package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/stats"
)

func points(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func regularSeasonSuffix(regularSeasonOnly bool) string {
	if regularSeasonOnly {
		return " (regular season only)"
	}
	return ""
}

func lowestWinningBlock(n int, records []matchups.Record) Block {
	b := Block{Header: fmt.Sprintf("Top %d lowest winning point totals:", n)}
	for i, r := range records {
		b.Lines = append(b.Lines, fmt.Sprintf("#%d: %s won with only %s points against %s who scored %s in week %d of %d.",
			i+1, r.Winner.DisplayName(), points(r.WinnerScore), r.Loser.DisplayName(), points(r.LoserScore), r.Week, r.Year))
	}
	return b
}

func highestLosingBlock(n int, records []matchups.Record) Block {
	b := Block{Header: fmt.Sprintf("Top %d highest losing point totals:", n)}
	for i, r := range records {
		b.Lines = append(b.Lines, fmt.Sprintf("#%d: %s lost despite scoring %s points against %s who scored %s in week %d of %d.",
			i+1, r.Loser.DisplayName(), points(r.LoserScore), r.Winner.DisplayName(), points(r.WinnerScore), r.Week, r.Year))
	}
	return b
}

func scoresBlock(header string, entries []stats.ScoreEntry) Block {
	b := Block{Header: header}
	for i, e := range entries {
		b.Lines = append(b.Lines, fmt.Sprintf("#%d: %s scored %s points in week %d of %d.",
			i+1, e.Coach.DisplayName(), points(e.Score), e.Week, e.Year))
	}
	return b
}

func closestGamesBlock(n int, records []matchups.Record) Block {
	b := Block{Header: fmt.Sprintf("Top %d closest games:", n)}
	for i, r := range records {
		b.Lines = append(b.Lines, fmt.Sprintf("#%d: %s won with %s points against %s with %s points in week %d of %d. Difference: %s points.",
			i+1, r.Winner.DisplayName(), points(r.WinnerScore), r.Loser.DisplayName(), points(r.LoserScore), r.Week, r.Year, points(r.Difference)))
	}
	return b
}

func lifetimeBlocks(res stats.LifetimeResult) []Block {
	total := Block{Header: "Top lifetime top scorers:"}
	for i, c := range res.ByTotal {
		total.Lines = append(total.Lines, fmt.Sprintf("#%d: %s with %s total points scored.", i+1, c.Coach.DisplayName(), points(c.Total)))
	}
	average := Block{Header: "Top lifetime average top scorers:"}
	for i, c := range res.ByAverage {
		average.Lines = append(average.Lines, fmt.Sprintf("#%d: %s with an average of %s points per game.", i+1, c.Coach.DisplayName(), points(c.Average)))
	}
	return []Block{total, average}
}

func pointsAllowedBlocks(startYear, endYear int, res stats.SeasonRanking) []Block {
	highest := Block{Header: fmt.Sprintf("Highest season points allowed from %d to %d:", startYear, endYear)}
	for i, s := range res.Highest {
		highest.Lines = append(highest.Lines, fmt.Sprintf("#%d: %s in %d allowed %s points.", i+1, s.Coach.DisplayName(), s.Year, points(s.Points)))
	}
	lowest := Block{Header: fmt.Sprintf("Lowest season points allowed from %d to %d:", startYear, endYear)}
	for i, s := range res.Lowest {
		lowest.Lines = append(lowest.Lines, fmt.Sprintf("#%d: %s in %d allowed only %s points.", i+1, s.Coach.DisplayName(), s.Year, points(s.Points)))
	}
	return []Block{highest, lowest}
}

func streakBlocks(n int, regularSeasonOnly bool, res stats.StreakResult) []Block {
	label := ""
	if regularSeasonOnly {
		label = "Regular Season "
	}
	winning := Block{Header: fmt.Sprintf("Top %d %sWinning streaks:", n, label)}
	for i, s := range res.Winning {
		winning.Lines = append(winning.Lines, fmt.Sprintf("#%d: %s with a winning streak of %d ending in week %d of %d.", i+1, s.Coach.DisplayName(), s.Length, s.EndWeek, s.EndYear))
	}
	losing := Block{Header: fmt.Sprintf("Top %d %sLosing streaks:", n, label)}
	for i, s := range res.Losing {
		losing.Lines = append(losing.Lines, fmt.Sprintf("#%d: %s with a losing streak of %d ending in week %d of %d.", i+1, s.Coach.DisplayName(), s.Length, s.EndWeek, s.EndYear))
	}
	return []Block{winning, losing}
}

func pointsScoredBlocks(n int, res stats.SeasonRanking) []Block {
	lowest := Block{Header: fmt.Sprintf("Top %d lowest point totals in a season:", n)}
	for i, s := range res.Lowest {
		lowest.Lines = append(lowest.Lines, fmt.Sprintf("#%d: %s in %d scored only %s points.", i+1, s.Coach.DisplayName(), s.Year, points(s.Points)))
	}
	highest := Block{Header: fmt.Sprintf("Top %d highest point totals in a season:", n)}
	for i, s := range res.Highest {
		highest.Lines = append(highest.Lines, fmt.Sprintf("#%d: %s in %d scored %s points.", i+1, s.Coach.DisplayName(), s.Year, points(s.Points)))
	}
	return []Block{lowest, highest}
}

func activityBlock(n int, leaders []stats.ActivityLeader) Block {
	b := Block{Header: fmt.Sprintf("Top %d most active coaches:", n)}
	for i, l := range leaders {
		b.Lines = append(b.Lines, fmt.Sprintf("#%d: %s with %d transactions (%d adds, %d drops, %d trades).",
			i+1, l.CoachName, l.Actions, l.Adds, l.Drops, l.Trades))
	}
	return b
}

package espn

import (
	"fmt"
	"strings"
	"time"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

// roster maps team ids to the coach who owns them for one season.
type roster map[int]coaches.Coach

func buildRoster(resp leagueResponse) roster {
	members := make(map[string]memberResponse, len(resp.Members))
	for _, m := range resp.Members {
		members[m.ID] = m
	}

	out := make(roster, len(resp.Teams))
	for _, t := range resp.Teams {
		out[t.ID] = mapCoach(t, members)
	}
	return out
}

// mapCoach uses the first listed owner. Teams without a known owner fall back to the team name.
func mapCoach(t teamResponse, members map[string]memberResponse) coaches.Coach {
	if len(t.Owners) > 0 {
		if m, ok := members[t.Owners[0]]; ok {
			c := coaches.Coach{ID: m.ID, FirstName: strings.TrimSpace(m.FirstName), LastName: strings.TrimSpace(m.LastName)}
			if c.DisplayName() == "" {
				c.FirstName = strings.TrimSpace(m.DisplayName)
			}
			return c
		}
	}
	name := strings.TrimSpace(t.Name)
	if name == "" {
		name = strings.TrimSpace(t.Location + " " + t.Nickname)
	}
	if name == "" {
		name = fmt.Sprintf("Team %d", t.ID)
	}
	return coaches.Coach{FirstName: name}
}

func (r roster) coach(teamID int) coaches.Coach {
	if c, ok := r[teamID]; ok {
		return c
	}
	return coaches.Coach{FirstName: fmt.Sprintf("Team %d", teamID)}
}

// currentWeek caps the scoring period at the final one so finished seasons report their last week.
func currentWeek(resp leagueResponse) int {
	week := resp.ScoringPeriodID
	if final := resp.Status.FinalScoringPeriod; final > 0 && week > final {
		week = final
	}
	return week
}

// seasonFinished trusts the isActive flag when present and otherwise checks whether
// scoring has moved past the final period.
func seasonFinished(resp leagueResponse) bool {
	if resp.Status.IsActive != nil {
		return !*resp.Status.IsActive
	}
	final := resp.Status.FinalScoringPeriod
	if final <= 0 {
		return false
	}
	return resp.ScoringPeriodID > final || resp.Status.LatestScoringPeriod > final
}

// mapSchedule keeps one matchup period and drops byes.
func mapSchedule(entries []matchupEntry, week int, teams roster) []matchups.Matchup {
	out := make([]matchups.Matchup, 0)
	for _, e := range entries {
		if e.MatchupPeriodID != week || e.Home == nil || e.Away == nil {
			continue
		}
		tier := e.PlayoffTierType
		if tier == "" {
			tier = playoffTierNone
		}
		out = append(out, matchups.Matchup{
			Home:      teams.coach(e.Home.TeamID),
			HomeScore: e.Home.TotalPoints,
			Away:      teams.coach(e.Away.TeamID),
			AwayScore: e.Away.TotalPoints,
			IsPlayoff: tier != playoffTierNone,
			Type:      matchups.Type(tier),
		})
	}
	return out
}

func mapActivities(resp communicationResponse, year int, teams roster) []activity.Activity {
	out := make([]activity.Activity, 0, len(resp.Topics))
	for _, topic := range resp.Topics {
		act := activity.Activity{
			Year: year,
			Date: time.UnixMilli(topic.Date).UTC(),
		}
		for _, msg := range topic.Messages {
			kind, ok := actionKind(msg.MessageTypeID)
			if !ok {
				continue
			}
			coach := teams.coach(actingTeam(msg))
			act.Actions = append(act.Actions, activity.Action{
				CoachID:   coach.Key(),
				CoachName: coach.DisplayName(),
				Kind:      kind,
				PlayerID:  msg.TargetID,
			})
		}
		if len(act.Actions) > 0 {
			out = append(out, act)
		}
	}
	return out
}

func actionKind(messageType int) (activity.Kind, bool) {
	switch messageType {
	case msgFreeAgentAdd:
		return activity.KindFreeAgentAdd, true
	case msgWaiverAdd:
		return activity.KindWaiverAdd, true
	case msgDrop, msgDropRoster, msgDropMoved:
		return activity.KindDrop, true
	case msgTrade:
		return activity.KindTrade, true
	default:
		return "", false
	}
}

func actingTeam(msg messageResponse) int {
	switch msg.MessageTypeID {
	case msgTrade:
		return msg.From
	case msgDropMoved:
		return msg.For
	default:
		return msg.To
	}
}

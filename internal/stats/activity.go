package stats

import (
	"sort"

	"fantasy-league-history/internal/domain/activity"
)

// ActivityLeader counts one coach's transactions.
type ActivityLeader struct {
	CoachID   string
	CoachName string
	Actions   int
	Adds      int
	Drops     int
	Trades    int
}

// ActivityLeaders ranks coaches by number of transaction actions, most active first.
func (e *Engine) ActivityLeaders(n int) []ActivityLeader {
	byCoach := make(map[string]*ActivityLeader)
	for _, a := range e.activities {
		for _, act := range a.Actions {
			id := act.CoachID
			if id == "" {
				id = act.CoachName
			}
			leader, ok := byCoach[id]
			if !ok {
				leader = &ActivityLeader{CoachID: id, CoachName: act.CoachName}
				byCoach[id] = leader
			}
			leader.Actions++
			switch act.Kind {
			case activity.KindFreeAgentAdd, activity.KindWaiverAdd:
				leader.Adds++
			case activity.KindDrop:
				leader.Drops++
			case activity.KindTrade:
				leader.Trades++
			}
		}
	}

	out := make([]ActivityLeader, 0, len(byCoach))
	for _, l := range byCoach {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Actions != out[j].Actions {
			return out[i].Actions > out[j].Actions
		}
		if out[i].CoachName != out[j].CoachName {
			return out[i].CoachName < out[j].CoachName
		}
		return out[i].CoachID < out[j].CoachID
	})
	return take(out, n)
}

package activity

import "time"

// Kind labels a league transaction.
type Kind string

const (
	KindFreeAgentAdd Kind = "FA ADDED"
	KindWaiverAdd    Kind = "WAIVER ADDED"
	KindDrop         Kind = "DROPPED"
	KindTrade        Kind = "TRADED"
)

// Action is a single move inside an activity entry.
type Action struct {
	CoachID   string `json:"coachId"`
	CoachName string `json:"coachName"`
	Kind      Kind   `json:"kind"`
	PlayerID  int    `json:"playerId"`
}

// Activity is one league activity entry stamped with its season.
type Activity struct {
	Year    int       `json:"year"`
	Date    time.Time `json:"date"`
	Actions []Action  `json:"actions"`
}

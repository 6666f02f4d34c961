package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	defaultHTTPTimeout = 45 * time.Second

	// Seasons before this one only live under the leagueHistory endpoint.
	legacyCutoffYear = 2018
	// The communication endpoint has no data for older seasons.
	activityFirstYear = 2019

	maxErrorBody = 512

	viewSettings      = "mSettings"
	viewTeam          = "mTeam"
	viewMatchupScore  = "mMatchupScore"
	viewCommunication = "kona_league_communication"

	playoffTierNone = "NONE"
)

// Transaction message type ids used by the communication feed.
const (
	msgFreeAgentAdd = 178
	msgDrop         = 179
	msgWaiverAdd    = 180
	msgDropRoster   = 181
	msgDropMoved    = 239
	msgTrade        = 244
)

var activityMessageTypes = []int{msgFreeAgentAdd, msgWaiverAdd, msgDrop, msgDropMoved, msgDropRoster, msgTrade}

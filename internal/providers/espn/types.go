package espn

type leagueResponse struct {
	ID              int              `json:"id"`
	SeasonID        int              `json:"seasonId"`
	ScoringPeriodID int              `json:"scoringPeriodId"`
	Status          statusResponse   `json:"status"`
	Members         []memberResponse `json:"members"`
	Teams           []teamResponse   `json:"teams"`
	Schedule        []matchupEntry   `json:"schedule"`
}

type statusResponse struct {
	CurrentMatchupPeriod int   `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int   `json:"finalScoringPeriod"`
	LatestScoringPeriod  int   `json:"latestScoringPeriod"`
	IsActive             *bool `json:"isActive"`
}

type memberResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
}

type teamResponse struct {
	ID       int      `json:"id"`
	Abbrev   string   `json:"abbrev"`
	Location string   `json:"location"`
	Nickname string   `json:"nickname"`
	Name     string   `json:"name"`
	Owners   []string `json:"owners"`
}

type matchupEntry struct {
	ID              int        `json:"id"`
	MatchupPeriodID int        `json:"matchupPeriodId"`
	PlayoffTierType string     `json:"playoffTierType"`
	Home            *sideEntry `json:"home"`
	Away            *sideEntry `json:"away"`
}

type sideEntry struct {
	TeamID      int     `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}

type communicationResponse struct {
	Topics []topicResponse `json:"topics"`
}

type topicResponse struct {
	ID       string            `json:"id"`
	Date     int64             `json:"date"`
	Messages []messageResponse `json:"messages"`
}

type messageResponse struct {
	MessageTypeID int `json:"messageTypeId"`
	TargetID      int `json:"targetId"`
	From          int `json:"from"`
	To            int `json:"to"`
	For           int `json:"for"`
}

// activityFilter is serialised into the X-Fantasy-Filter header.
type activityFilter struct {
	Topics activityTopics `json:"topics"`
}

type activityTopics struct {
	FilterType                  filterValues[string] `json:"filterType"`
	Limit                       int                  `json:"limit"`
	LimitPerMessageSet          filterValue[int]     `json:"limitPerMessageSet"`
	Offset                      int                  `json:"offset"`
	SortMessageDate             sortSpec             `json:"sortMessageDate"`
	SortFor                     sortSpec             `json:"sortFor"`
	FilterIncludeMessageTypeIDs filterValues[int]    `json:"filterIncludeMessageTypeIds"`
}

type filterValues[T any] struct {
	Value []T `json:"value"`
}

type filterValue[T any] struct {
	Value T `json:"value"`
}

type sortSpec struct {
	SortPriority int  `json:"sortPriority"`
	SortAsc      bool `json:"sortAsc"`
}

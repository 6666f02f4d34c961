package config

const defaultEspnBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

// LeagueConfig carries the league id and the two ESPN session cookies.
type LeagueConfig struct {
	ID   string
	S2   string
	SWID string
}

// ESPNConfig controls how we talk to the ESPN fantasy API.
type ESPNConfig struct {
	BaseURL string
}

func loadLeague() LeagueConfig {
	return LeagueConfig{
		ID:   firstEnv(envLeagueID, legacyLeagueID),
		S2:   firstEnv(envEspnS2, legacyEspnS2),
		SWID: firstEnv(envEspnSWID, legacySWID),
	}
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
	}
}

func (l LeagueConfig) missing() []string {
	var missing []string
	if l.ID == "" {
		missing = append(missing, envLeagueID)
	}
	if l.S2 == "" {
		missing = append(missing, envEspnS2)
	}
	if l.SWID == "" {
		missing = append(missing, envEspnSWID)
	}
	return missing
}

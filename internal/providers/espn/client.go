package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/providers"
)

// ErrActivityUnavailable is returned for seasons the communication feed does not cover.
var ErrActivityUnavailable = errors.New("espn: recent activity unavailable before 2019")

// Config controls how the ESPN client reaches the fantasy API.
type Config struct {
	BaseURL    string
	LeagueID   string
	S2         string
	SWID       string
	HTTPClient *http.Client
}

// Client fetches league data from the ESPN fantasy football API and maps it to domain models.
type Client struct {
	baseURL    string
	leagueID   string
	cookies    []*http.Cookie
	httpClient httpDoer
	now        func() time.Time

	mu      sync.Mutex
	rosters map[int]roster
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   cfg.LeagueID,
		cookies:    authCookies(cfg.S2, cfg.SWID),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		rosters:    make(map[int]roster),
	}
}

// CurrentWeek returns the latest scoring period of the season, capped at the final one.
func (c *Client) CurrentWeek(ctx context.Context, year int) (int, error) {
	resp, err := c.fetchLeague(ctx, year, viewSettings)
	if err != nil {
		return 0, err
	}
	return currentWeek(resp), nil
}

// SeasonFinished reports whether the league has closed the season. Legacy seasons are
// always closed.
func (c *Client) SeasonFinished(ctx context.Context, year int) (bool, error) {
	if year < legacyCutoffYear {
		return true, nil
	}
	resp, err := c.fetchLeague(ctx, year, viewSettings)
	if err != nil {
		return false, err
	}
	return seasonFinished(resp), nil
}

// Scoreboard returns the matchups of one matchup period.
func (c *Client) Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error) {
	teams, err := c.roster(ctx, year)
	if err != nil {
		return nil, err
	}
	resp, err := c.fetchLeague(ctx, year, viewMatchupScore)
	if err != nil {
		return nil, err
	}
	return mapSchedule(resp.Schedule, week, teams), nil
}

// RecentActivity returns up to limit transaction entries, newest first.
func (c *Client) RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error) {
	if year < activityFirstYear {
		return nil, ErrActivityUnavailable
	}
	teams, err := c.roster(ctx, year)
	if err != nil {
		return nil, err
	}

	filter, err := json.Marshal(newActivityFilter(limit))
	if err != nil {
		return nil, err
	}
	endpoint, query := c.leagueEndpoint(year)
	query.Add("view", viewCommunication)

	req, err := c.newRequest(ctx, endpoint+"/communication/", query)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Fantasy-Filter", string(filter))

	var payload communicationResponse
	if err := c.do(req, year, &payload); err != nil {
		return nil, err
	}
	return mapActivities(payload, year, teams), nil
}

// roster loads the team to coach lookup once per season.
func (c *Client) roster(ctx context.Context, year int) (roster, error) {
	c.mu.Lock()
	cached, ok := c.rosters[year]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	resp, err := c.fetchLeague(ctx, year, viewTeam)
	if err != nil {
		return nil, err
	}
	teams := buildRoster(resp)

	c.mu.Lock()
	c.rosters[year] = teams
	c.mu.Unlock()
	return teams, nil
}

func (c *Client) fetchLeague(ctx context.Context, year int, views ...string) (leagueResponse, error) {
	endpoint, query := c.leagueEndpoint(year)
	for _, v := range views {
		query.Add("view", v)
	}
	req, err := c.newRequest(ctx, endpoint, query)
	if err != nil {
		return leagueResponse{}, err
	}

	if year >= legacyCutoffYear {
		var payload leagueResponse
		err := c.do(req, year, &payload)
		return payload, err
	}

	var history []leagueResponse
	if err := c.do(req, year, &history); err != nil {
		return leagueResponse{}, err
	}
	if len(history) == 0 {
		return leagueResponse{}, &providers.InvalidLeagueError{LeagueID: c.leagueID, Year: year}
	}
	return history[0], nil
}

func (c *Client) leagueEndpoint(year int) (string, url.Values) {
	query := url.Values{}
	if year < legacyCutoffYear {
		query.Set("seasonId", strconv.Itoa(year))
		return fmt.Sprintf("%s/leagueHistory/%s", c.baseURL, c.leagueID), query
	}
	return fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%s", c.baseURL, year, c.leagueID), query
}

func (c *Client) newRequest(ctx context.Context, endpoint string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, year int, dst any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return &providers.InvalidLeagueError{LeagueID: c.leagueID, Year: year}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &providers.AccessDeniedError{LeagueID: c.leagueID, Year: year}
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "espn: rate limited",
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("espn: decode %d response: %w", year, err)
	}
	return nil
}

func newActivityFilter(limit int) activityFilter {
	return activityFilter{Topics: activityTopics{
		FilterType:                  filterValues[string]{Value: []string{"ACTIVITY_TRANSACTIONS"}},
		Limit:                       limit,
		LimitPerMessageSet:          filterValue[int]{Value: 25},
		SortMessageDate:             sortSpec{SortPriority: 1},
		SortFor:                     sortSpec{SortPriority: 2},
		FilterIncludeMessageTypeIDs: filterValues[int]{Value: activityMessageTypes},
	}}
}

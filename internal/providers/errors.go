package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrProviderUnavailable signals a missing provider or an open circuit.
var ErrProviderUnavailable = errors.New("league provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// InvalidLeagueError means the upstream does not know the league for that season.
type InvalidLeagueError struct {
	LeagueID string
	Year     int
}

func (e *InvalidLeagueError) Error() string {
	return fmt.Sprintf("league %s does not exist for %d", e.LeagueID, e.Year)
}

// AccessDeniedError means the credentials were rejected for a private league.
type AccessDeniedError struct {
	LeagueID string
	Year     int
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied to league %s for %d; check ESPN_S2 and ESPN_SWID", e.LeagueID, e.Year)
}

// IsPermanent reports errors that no retry or circuit can fix.
func IsPermanent(err error) bool {
	var invalid *InvalidLeagueError
	var denied *AccessDeniedError
	return errors.As(err, &invalid) || errors.As(err, &denied)
}

// FetchTimeoutError is returned once every attempt of a call ran past its deadline.
type FetchTimeoutError struct {
	Operation string
	Year      int
	Week      int
	Attempts  int
	Timeout   time.Duration
}

func (e *FetchTimeoutError) Error() string {
	switch e.Operation {
	case OpScoreboard:
		return fmt.Sprintf("timeout after %s getting matchups for week %d of %d after %d attempts", e.Timeout, e.Week, e.Year, e.Attempts)
	case OpRecentActivity:
		return fmt.Sprintf("timeout after %s getting activities for %d after %d attempts", e.Timeout, e.Year, e.Attempts)
	default:
		return fmt.Sprintf("timeout after %s getting %s for %d after %d attempts", e.Timeout, e.Operation, e.Year, e.Attempts)
	}
}

// Unwrap lets callers match the timeout with errors.Is(err, context.DeadlineExceeded).
func (e *FetchTimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// IsTimeout reports whether err stems from a deadline rather than a real upstream answer.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

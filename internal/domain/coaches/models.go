package coaches

import "strings"

// Coach is the owner behind a fantasy team. ID is the stable upstream member id;
// names are presentation only.
type Coach struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName joins first and last name the way reports print it.
func (c Coach) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Key returns the identity used for aggregation, falling back to the display name
// when the upstream did not provide an id.
func (c Coach) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.DisplayName()
}

// Less orders coaches by display name, then identity, for deterministic output.
func Less(a, b Coach) bool {
	if an, bn := a.DisplayName(), b.DisplayName(); an != bn {
		return an < bn
	}
	return a.Key() < b.Key()
}

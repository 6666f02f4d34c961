package store

import (
	"sort"
	"sync"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

// MemoryStore keeps the collected records in insertion order, thread-safe.
type MemoryStore struct {
	mu         sync.RWMutex
	records    []matchups.Record
	regular    []matchups.Record
	activities []activity.Activity
	coaches    map[string]coaches.Coach
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		coaches: make(map[string]coaches.Coach),
	}
}

// Append adds records in order; regular-season records are also indexed separately.
func (s *MemoryStore) Append(records ...matchups.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.records = append(s.records, r)
		if r.IsRegularSeason() {
			s.regular = append(s.regular, r)
		}
		s.coaches[r.Winner.Key()] = r.Winner
		s.coaches[r.Loser.Key()] = r.Loser
	}
}

// AppendActivities adds activity entries in order.
func (s *MemoryStore) AppendActivities(items ...activity.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, items...)
}

// All returns a copy of every record.
func (s *MemoryStore) All() []matchups.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]matchups.Record(nil), s.records...)
}

// RegularSeason returns a copy of the regular-season records.
func (s *MemoryStore) RegularSeason() []matchups.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]matchups.Record(nil), s.regular...)
}

// Activities returns a copy of the stored activity entries.
func (s *MemoryStore) Activities() []activity.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]activity.Activity, len(s.activities))
	for i, a := range s.activities {
		a.Actions = append([]activity.Action(nil), a.Actions...)
		out[i] = a
	}
	return out
}

// Coaches returns every coach seen in a record, ordered by display name.
func (s *MemoryStore) Coaches() []coaches.Coach {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]coaches.Coach, 0, len(s.coaches))
	for _, c := range s.coaches {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return coaches.Less(out[i], out[j]) })
	return out
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Package memory is an in-memory Store used by tests and dry runs.
//
// It mirrors the Mongo adapter's matching semantics exactly, containment
// matching included, so deduplication behaves the same against either
// backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/olade/naija-events/internal/event"
	"github.com/olade/naija-events/internal/store"
)

// Store keeps events in memory behind a mutex.
type Store struct {
	mu     sync.Mutex
	nextID int
	events map[string]*event.NormalizedEvent
	order  []string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		events: make(map[string]*event.NormalizedEvent),
	}
}

// Create persists one event and returns its id.
func (s *Store) Create(_ context.Context, ev *event.NormalizedEvent) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("mem-%d", s.nextID)
	copied := *ev
	s.events[id] = &copied
	s.order = append(s.order, id)
	return id, nil
}

// BulkCreate persists a batch.
func (s *Store) BulkCreate(ctx context.Context, evs []*event.NormalizedEvent) error {
	for _, ev := range evs {
		if _, err := s.Create(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// ExistsLike reports whether a stored event matches by case-insensitive
// containment on name and location and exact day on the date.
func (s *Store) ExistsLike(_ context.Context, name string, date time.Time, location string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.ToLower(name)
	location = strings.ToLower(location)
	day := event.DateOnly(date)

	for _, ev := range s.events {
		if strings.Contains(strings.ToLower(ev.Name), name) &&
			strings.Contains(strings.ToLower(ev.Location), location) &&
			event.DateOnly(ev.OccursAt).Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

// FindAll lists active events matching the query with pagination.
func (s *Store) FindAll(_ context.Context, q store.Query) (*store.PageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*event.NormalizedEvent
	for _, id := range s.order {
		ev := s.events[id]
		if !ev.Active {
			continue
		}
		if q.Category != "" && !strings.EqualFold(string(ev.Category), q.Category) {
			continue
		}
		if q.City != "" && !strings.Contains(strings.ToLower(ev.Location), strings.ToLower(q.City)) {
			continue
		}
		if q.Search != "" && !matchesSearch(ev, q.Search) {
			continue
		}
		matched = append(matched, ev)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].OccursAt.Before(matched[j].OccursAt)
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	total := int64(len(matched))
	totalPages := (len(matched) + limit - 1) / limit
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return &store.PageResult{
		Events:     matched[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func matchesSearch(ev *event.NormalizedEvent, search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(ev.Name), search) ||
		strings.Contains(strings.ToLower(ev.Description), search) ||
		strings.Contains(strings.ToLower(ev.Location), search)
}

// FindUpcoming lists active events dated now or later, soonest first.
func (s *Store) FindUpcoming(_ context.Context, limit int) ([]*event.NormalizedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var upcoming []*event.NormalizedEvent
	for _, id := range s.order {
		ev := s.events[id]
		if ev.Active && !ev.OccursAt.Before(now) {
			upcoming = append(upcoming, ev)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].OccursAt.Before(upcoming[j].OccursAt)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// Update replaces the event stored under id.
func (s *Store) Update(_ context.Context, id string, ev *event.NormalizedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("event not found: %s", id)
	}
	copied := *ev
	s.events[id] = &copied
	return nil
}

// Delete removes the event stored under id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("event not found: %s", id)
	}
	delete(s.events, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Stats aggregates totals by source and category.
func (s *Store) Stats(_ context.Context) (*store.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &store.Stats{
		BySource:   make(map[string]int64),
		ByCategory: make(map[string]int64),
	}
	now := time.Now()

	for _, ev := range s.events {
		stats.TotalEvents++
		if ev.Active {
			stats.ActiveEvents++
			if !ev.OccursAt.Before(now) {
				stats.UpcomingEvents++
			}
		}
		stats.BySource[ev.SourceID]++
		stats.ByCategory[string(ev.Category)]++
	}
	return stats, nil
}

// Len reports how many events are stored. Test helper.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

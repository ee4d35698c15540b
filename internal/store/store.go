// Package store defines the persistence boundary for normalized events.
//
// The pipeline only ever sees the Store interface; the mongo subpackage
// implements it against a document store and the memory subpackage backs
// tests and dry runs. ExistsLike carries the deduplicator's intentionally
// loose matching semantics: case-insensitive containment on name and
// location, exact day on the date.
package store

import (
	"context"
	"time"

	"github.com/olade/naija-events/internal/event"
)

// Query filters and paginates an event listing.
type Query struct {
	Category string
	City     string
	Search   string
	Page     int
	Limit    int
}

// PageResult is one page of events plus pagination totals.
type PageResult struct {
	Events     []*event.NormalizedEvent `json:"events"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"total_pages"`
}

// Stats aggregates the stored corpus for the operator surface.
type Stats struct {
	TotalEvents    int64            `json:"total_events"`
	ActiveEvents   int64            `json:"active_events"`
	UpcomingEvents int64            `json:"upcoming_events"`
	BySource       map[string]int64 `json:"by_source"`
	ByCategory     map[string]int64 `json:"by_category"`
}

// Store is the persistence collaborator consumed by the pipeline and the
// API surface.
type Store interface {
	// Create persists one event and returns its stored id.
	Create(ctx context.Context, ev *event.NormalizedEvent) (string, error)
	// BulkCreate persists a batch in one round trip.
	BulkCreate(ctx context.Context, evs []*event.NormalizedEvent) error
	// ExistsLike backs the deduplicator: partial name and location match,
	// exact day-truncated date.
	ExistsLike(ctx context.Context, name string, date time.Time, location string) (bool, error)
	// FindAll lists events matching the query, active only.
	FindAll(ctx context.Context, q Query) (*PageResult, error)
	// FindUpcoming lists active events dated now or later, soonest first.
	FindUpcoming(ctx context.Context, limit int) ([]*event.NormalizedEvent, error)
	// Update replaces the event stored under id.
	Update(ctx context.Context, id string, ev *event.NormalizedEvent) error
	// Delete removes the event stored under id.
	Delete(ctx context.Context, id string) error
	// Stats aggregates totals by source and category.
	Stats(ctx context.Context) (*Stats, error)
}

// Package dedup decides whether a normalized event is a likely duplicate
// of one the store already holds.
//
// Matching is deliberately conservative and high-recall: case-insensitive
// partial containment on name and location plus exact date equality. It can
// suppress a legitimately similar distinct event, which is the accepted
// trade-off for never re-submitting the same event scraped twice in one run
// or across scheduled runs.
package dedup

import (
	"context"
	"time"

	"github.com/olade/naija-events/internal/event"
)

// Lookup is the collaborator query backing duplicate detection. date is
// day-truncated UTC; name and location match by case-insensitive
// containment on the implementation's side.
type Lookup interface {
	ExistsLike(ctx context.Context, name string, date time.Time, location string) (bool, error)
}

// IsDuplicate reports whether ev's (name, date, location) key matches a
// previously stored event.
func IsDuplicate(ctx context.Context, lk Lookup, ev *event.NormalizedEvent) (bool, error) {
	key := ev.Key()
	return lk.ExistsLike(ctx, key.Name, key.Date, key.Location)
}

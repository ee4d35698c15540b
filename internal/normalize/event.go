package normalize

import (
	"time"

	"github.com/olade/naija-events/internal/event"
)

// Event turns a raw Detailed record into the canonical NormalizedEvent.
// Every field passes through its fallback rule, so the result is always
// fully typed: a concrete UTC timestamp, a non-negative amount, and a
// valid category.
func Event(d *event.Detailed, now time.Time, sourceID string) event.NormalizedEvent {
	amount, free := Price(d.PriceText)

	location := d.LocationText
	if location == "" {
		location = "Nigeria"
	}

	venue := d.LocationText
	if venue == "" {
		venue = "TBA"
	}

	return event.NormalizedEvent{
		Name:        d.Name,
		Description: d.Snippet,
		OccursAt:    Date(d.DateText, now),
		Location:    location,
		Venue:       venue,
		PriceAmount: amount,
		PriceIsFree: free,
		Category:    Categorize(d.Name, d.AboutText),
		TicketURL:   d.TicketURL,
		ImageURL:    d.ImageURL,
		SourceURL:   d.SourceURL,
		SourceID:    sourceID,
		Active:      true,
	}
}

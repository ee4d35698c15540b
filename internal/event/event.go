package event

import (
	"strings"
	"time"
)

// Candidate is a listing element hypothesized to represent one event.
// It is ephemeral: produced per element, discarded after detail enrichment
// or failure.
type Candidate struct {
	Name      string `json:"name"`
	SourceURL string `json:"source_url"`
	ImageURL  string `json:"image_url,omitempty"`
	// Snippet is the element's raw text, truncated, used for downstream
	// pattern matching.
	Snippet string `json:"snippet"`
}

// Detailed extends a Candidate with fields re-extracted from the event's
// own detail page. All fields are raw, unvalidated text; an empty field is
// a normal state, not an error — the normalizer supplies fallbacks.
type Detailed struct {
	Candidate

	DateText     string `json:"date_text,omitempty"`
	TimeText     string `json:"time_text,omitempty"`
	LocationText string `json:"location_text,omitempty"`
	PriceText    string `json:"price_text,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
	AboutText    string `json:"about_text,omitempty"`
}

// NormalizedEvent is the pipeline's output contract, ready for persistence.
type NormalizedEvent struct {
	Name        string    `json:"name" bson:"eventName"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	OccursAt    time.Time `json:"occurs_at" bson:"date"`
	Location    string    `json:"location" bson:"location"`
	Venue       string    `json:"venue,omitempty" bson:"venue,omitempty"`
	PriceAmount int       `json:"price_amount" bson:"price"`
	PriceIsFree bool      `json:"price_is_free" bson:"isFree"`
	Category    Category  `json:"category" bson:"category"`
	TicketURL   string    `json:"ticket_url,omitempty" bson:"ticketLink,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"imageUrl,omitempty"`
	SourceURL   string    `json:"source_url" bson:"sourceUrl"`
	SourceID    string    `json:"source_id" bson:"source"`
	Active      bool      `json:"active" bson:"isActive"`
}

// DedupKey is the derived (name, date, location) triple used to detect
// likely duplicate submissions. It is computed on demand and never stored.
type DedupKey struct {
	Name     string
	Date     time.Time
	Location string
}

// Key derives the event's dedup key: case-folded name and location, date
// truncated to the UTC day.
func (e *NormalizedEvent) Key() DedupKey {
	return DedupKey{
		Name:     strings.ToLower(strings.TrimSpace(e.Name)),
		Date:     DateOnly(e.OccursAt),
		Location: strings.ToLower(strings.TrimSpace(e.Location)),
	}
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package normalize

import (
	"testing"

	"github.com/olade/naija-events/internal/event"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		about string
		want  event.Category
	}{
		{"afrobeats is a concert", "Afrobeats Night", "", event.CategoryConcert},
		{"tech summit", "Lagos Tech Summit", "startup networking", event.CategoryConference},
		{"rooftop party", "NYE Rooftop Party", "", event.CategoryParty},
		{"carnival", "Calabar Carnival", "", event.CategoryFestival},
		{"football match", "Super Eagles Match", "football", event.CategorySports},
		{"standup night", "Standup Special", "comedian lineup", event.CategoryComedy},
		{"stage play", "Drama at Terra Kulture", "stage adaptation", event.CategoryTheater},
		{"no keywords", "Untitled Gathering", "", event.CategoryEntertainment},
		{"keyword in about only", "Saturday Special", "live band performance", event.CategoryConcert},
		{"case insensitive", "COMEDY EXTRAVAGANZA", "", event.CategoryComedy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.title, tt.about)
			if got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.title, tt.about, got, tt.want)
			}
		})
	}
}

// Text matching keywords from two categories resolves to whichever row
// comes first in the table.
func TestCategorize_TableOrderWins(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  event.Category
	}{
		// "music" (Concert) beats "festival" (Festival)
		{"music festival", "Gidi Music Festival", event.CategoryConcert},
		// "workshop" (Conference) beats "comedy" (Comedy)
		{"comedy workshop", "Comedy Writing Workshop", event.CategoryConference},
		// "party" (Party) beats "football" (Sports)
		{"football party", "Football Viewing Party", event.CategoryParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.title, "")
			if got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

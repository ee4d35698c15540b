package normalize

import (
	"strings"

	"github.com/olade/naija-events/internal/event"
)

// categoryKeywords maps each category to the keywords that select it.
// Order matters: the first category with any keyword present in the text
// wins, so "music festival" classifies as Concert via "music" before the
// Festival row is ever consulted.
var categoryKeywords = []struct {
	category event.Category
	keywords []string
}{
	{event.CategoryConcert, []string{
		"concert", "music", "live", "performance", "band", "artist",
		"afrobeats", "amapiano", "album", "tour", "acoustic",
	}},
	{event.CategoryConference, []string{
		"conference", "summit", "seminar", "workshop", "business", "tech",
		"startup", "networking", "professional",
	}},
	{event.CategoryParty, []string{
		"party", "club", "nightlife", "celebration", "birthday", "december",
		"nye", "new year", "rooftop",
	}},
	{event.CategoryFestival, []string{
		"festival", "carnival", "cultural", "food", "art", "film",
		"music festival",
	}},
	{event.CategorySports, []string{
		"sports", "football", "basketball", "match", "game", "tournament",
		"championship",
	}},
	{event.CategoryComedy, []string{
		"comedy", "standup", "comedian", "funny", "laugh", "humor",
	}},
	{event.CategoryTheater, []string{
		"theater", "theatre", "drama", "play", "stage", "musical",
	}},
}

// Categorize assigns a category from the event's name and about text.
// Matching is case-insensitive substring containment against the ordered
// keyword table; no match yields Entertainment.
func Categorize(name, about string) event.Category {
	text := strings.ToLower(name + " " + about)

	for _, row := range categoryKeywords {
		for _, keyword := range row.keywords {
			if strings.Contains(text, keyword) {
				return row.category
			}
		}
	}

	return event.CategoryEntertainment
}

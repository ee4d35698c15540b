package normalize

import (
	"regexp"
	"time"
)

// fallbackDays is how far in the future an event is assumed to be when its
// date text is missing or unparseable.
const fallbackDays = 30

// pastGrace is the window within which a parsed date may sit in the past
// without triggering the year correction.
const pastGrace = 7 * 24 * time.Hour

// leadingWeekday strips a leading day name ("Saturday, 25 Dec 2025").
var leadingWeekday = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday)[,.]?\s*`)

// dateLayouts is the ordered chain of layouts tried against the cleaned
// text and against each pattern match. Month-first numeric forms, matching
// how the source site writes them.
var dateLayouts = []string{
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"1-2-06",
	"1.2.2006",
	"1.2.06",
	"2006-01-02",
}

// datePatterns are the numeric and month-name families re-tried against
// free text when the direct parse of the whole string fails. Tried in
// order; the first match that parses wins.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.? \d{1,2},? \d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2} (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`),
}

// monthAbbrev collapses long month names to the three-letter form the
// layout chain understands ("December 25, 2025" -> "Dec 25, 2025").
var monthAbbrev = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]+\.?`)

// Date resolves raw date text into a concrete UTC timestamp. The leading
// weekday name is stripped and the cleaned text is tried against the layout
// chain; failing that, each pattern family is matched against the original
// text and the first parseable match is used. If nothing parses, or the
// text is empty, the result is now plus 30 days.
//
// A successfully parsed date more than 7 days in the past is assumed to be
// the previous occurrence of an annual event and is bumped forward by
// exactly one year. The correction is applied once, never looped, so a
// listing two years stale still lands one year forward.
func Date(raw string, now time.Time) time.Time {
	if raw == "" {
		return now.AddDate(0, 0, fallbackDays)
	}

	clean := leadingWeekday.ReplaceAllString(raw, "")
	clean = monthAbbrev.ReplaceAllStringFunc(clean, func(m string) string {
		return m[:3]
	})

	if t, ok := parseLayouts(clean); ok {
		return correctPastDate(t, now)
	}

	for _, pattern := range datePatterns {
		match := pattern.FindString(raw)
		if match == "" {
			continue
		}
		match = monthAbbrev.ReplaceAllStringFunc(match, func(m string) string {
			return m[:3]
		})
		if t, ok := parseLayouts(match); ok {
			return correctPastDate(t, now)
		}
	}

	return now.AddDate(0, 0, fallbackDays)
}

func parseLayouts(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// correctPastDate bumps a stale date by one year. Listings on the source
// site reflect the upcoming occurrence of recurring annual events, so a
// date beyond the grace window is taken to mean "same date, next year".
func correctPastDate(t, now time.Time) time.Time {
	if t.Before(now.Add(-pastGrace)) {
		return t.AddDate(1, 0, 0)
	}
	return t
}

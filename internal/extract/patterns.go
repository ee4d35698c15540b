package extract

import (
	"regexp"
	"strings"
)

// datePatterns are the four recognized date families: numeric D/M/Y,
// "Month D, Y", "D Month Y", and the weekday-prefixed long form. The first
// match anywhere in the text is used verbatim; resolving it into a
// timestamp is the normalizer's job.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2} (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`),
	regexp.MustCompile(`(?i)\b(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)[^,]*\d{1,2}[^,]*\d{4}`),
}

// locationPatterns are tried in priority order: known city, "venue:",
// "location:", then a bare "at <place>".
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Lagos|Abuja|Port Harcourt|Kano|Ibadan|Benin|Jos|Kaduna|Enugu|Calabar)[^,\n]*`),
	regexp.MustCompile(`(?i)venue[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)location[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)\bat\s+([^,\n]+)`),
}

// pricePatterns recognize Naira amounts, NGN-coded amounts, comma-grouped
// amounts with a currency word, and explicit free/zero markers.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`₦[\d,]+`),
	regexp.MustCompile(`NGN\s*[\d,]+`),
	regexp.MustCompile(`(?i)\b\d{1,3}(,\d{3})*\s*(naira|₦|NGN)`),
	regexp.MustCompile(`(?i)\b(free|₦0|NGN\s*0)\b`),
}

var (
	eventKeywordToken = regexp.MustCompile(`(?i)event|concert|show|party|festival|conference`)
	placeToken        = regexp.MustCompile(`(?i)lagos|abuja|nigeria|venue`)
	priceToken        = regexp.MustCompile(`(?i)₦|NGN|free|price`)
	timeOfDayToken    = regexp.MustCompile(`\d{1,2}:\d{2}\s*(AM|PM|am|pm)`)
)

// FirstDate returns the first recognized date token in text, verbatim, or
// "" when no family matches.
func FirstDate(text string) string {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// FirstLocation returns the first recognized location in text, or "" when
// nothing matches. City matches include the trailing text up to the next
// comma or newline ("Lagos Island, ..." yields "Lagos Island").
func FirstLocation(text string) string {
	for _, pattern := range locationPatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// FirstPrice returns the first recognized price token in text. Absence of
// any match defaults to the literal "Free": on the source site an unpriced
// listing is a free event, and the normalizer maps "Free" to a zero amount.
func FirstPrice(text string) string {
	for _, pattern := range pricePatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return "Free"
}

// FirstTimeOfDay returns the first clock-time token ("7:30 PM") in text,
// or "".
func FirstTimeOfDay(text string) string {
	return timeOfDayToken.FindString(text)
}

// HasDateToken reports whether text contains any recognized date family.
func HasDateToken(text string) bool { return FirstDate(text) != "" }

// HasPriceToken reports whether text mentions a currency symbol, code, or
// free/price marker. Looser than the price families on purpose: scoring
// only needs a hint, not an extractable amount.
func HasPriceToken(text string) bool { return priceToken.MatchString(text) }

// HasPlaceToken reports whether text mentions a known place or venue word.
func HasPlaceToken(text string) bool { return placeToken.MatchString(text) }

// HasEventKeyword reports whether text mentions an event-domain word.
func HasEventKeyword(text string) bool { return eventKeywordToken.MatchString(text) }

package locator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/olade/naija-events/internal/extract"
)

const (
	// scoreThreshold is the minimum heuristic score for an element to
	// qualify as a candidate.
	scoreThreshold = 4

	// minTextLen and maxTextLen bound "reasonable" element text for the
	// length weight.
	minTextLen = 50
	maxTextLen = 2000

	// fallbackMax caps the last-resort scan.
	fallbackMax = 20
)

// Strategy is one selector tried against the document. Strategies are
// evaluated in slice order and scored uniformly, so adding one is a pure
// extension.
type Strategy struct {
	Name     string
	Selector string
}

// strategies in priority order: semantic class hints first, then card-like
// containers, structural elements, test-id hints, and finally broad
// structural fallbacks.
var strategies = []Strategy{
	{"event-class", `div[class*="Event"], div[class*="event"]`},
	{"card-class", `div[class*="Card"], div[class*="card"]`},
	{"structural", `article, section`},
	{"testid", `div[data-testid*="event"], div[data-cy*="event"]`},
	{"media-div", `div:has(img):has(a)`},
	{"any-div", `div`},
}

// Score sums the fixed weights for the event signals present in the
// element: outbound link +2, image +2, event-domain keyword +3, place-name
// token +2, date token +2, price token +1, reasonable text length +1.
func Score(sel *goquery.Selection) int {
	text := strings.TrimSpace(sel.Text())

	score := 0
	if sel.Find("a").Length() > 0 {
		score += 2
	}
	if sel.Find("img").Length() > 0 {
		score += 2
	}
	if extract.HasEventKeyword(text) {
		score += 3
	}
	if extract.HasPlaceToken(text) {
		score += 2
	}
	if extract.HasDateToken(text) {
		score += 2
	}
	if extract.HasPriceToken(text) {
		score += 1
	}
	if len(text) > minTextLen && len(text) < maxTextLen {
		score += 1
	}
	return score
}

// Locate returns the elements likely to represent events, in document
// order. Each strategy is tried in priority order; the first one that
// qualifies at least one element at the score threshold is used and the
// rest are skipped. When no strategy qualifies anything, Locate falls back
// to a capped scan for generic containers that still carry event signals.
func Locate(doc *goquery.Document) []*goquery.Selection {
	for _, strategy := range strategies {
		var qualified []*goquery.Selection
		doc.Find(strategy.Selector).Each(func(_ int, sel *goquery.Selection) {
			if Score(sel) >= scoreThreshold {
				qualified = append(qualified, sel)
			}
		})
		if len(qualified) > 0 {
			return qualified
		}
	}

	return fallbackScan(doc)
}

// fallbackScan is the last resort: generic containers with a handful of
// children, mid-sized text, an image, a link, and a currency or city
// mention. Capped so an adversarial page cannot flood the batch.
func fallbackScan(doc *goquery.Document) []*goquery.Selection {
	var found []*goquery.Selection
	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		children := sel.Children().Length()

		if children > 2 && children < 20 &&
			len(text) > 100 && len(text) < 1000 &&
			sel.Find("img").Length() > 0 &&
			sel.Find("a").Length() > 0 &&
			(strings.Contains(text, "₦") ||
				strings.Contains(text, "Lagos") ||
				strings.Contains(text, "Abuja")) {
			found = append(found, sel)
		}
		return len(found) < fallbackMax
	})
	return found
}

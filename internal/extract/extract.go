package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/olade/naija-events/internal/event"
)

const (
	// minNameLen rejects elements whose best name is too short to be a
	// real event title.
	minNameLen = 5
	// maxNameLen bounds the stored name.
	maxNameLen = 200
	// maxLineNameLen bounds a name taken from a free text line, the
	// least trustworthy source.
	maxLineNameLen = 100
	// maxSnippetLen bounds the raw text carried for downstream parsing.
	maxSnippetLen = 500
)

// Candidate extracts a raw event candidate from one listing element.
// The boolean is false when the element yields no usable name, which is a
// rejection, not an error: the locator over-selects and the extractor is
// the filter.
func Candidate(sel *goquery.Selection, base *url.URL) (*event.Candidate, bool) {
	text := strings.TrimSpace(sel.Text())

	name := extractName(sel, text)
	if len(name) < minNameLen {
		return nil, false
	}

	c := &event.Candidate{
		Name:    truncate(name, maxNameLen),
		Snippet: truncate(text, maxSnippetLen),
	}

	if href, ok := sel.Find("a").First().Attr("href"); ok {
		c.SourceURL = resolveURL(base, href)
	}
	c.ImageURL = extractImage(sel, base)

	return c, true
}

// extractName tries, in order: the first heading, the first bold or
// title/name-hinted node, then the first non-trivial line of the element's
// text.
func extractName(sel *goquery.Selection, text string) string {
	if heading := sel.Find("h1, h2, h3, h4, h5, h6").First(); heading.Length() > 0 {
		if name := strings.TrimSpace(heading.Text()); name != "" {
			return name
		}
	}

	if bold := sel.Find(`strong, b, [class*="title"], [class*="name"]`).First(); bold.Length() > 0 {
		if name := strings.TrimSpace(bold.Text()); name != "" {
			return name
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			return truncate(line, maxLineNameLen)
		}
	}

	return ""
}

// extractImage takes the first image descendant, preferring src and
// falling back to the lazy-load data-src attribute.
func extractImage(sel *goquery.Selection, base *url.URL) string {
	img := sel.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	src, ok := img.Attr("src")
	if !ok || src == "" {
		src, _ = img.Attr("data-src")
	}
	if src == "" {
		return ""
	}
	return resolveURL(base, src)
}

// resolveURL resolves href against the source site's base origin. An href
// that fails to parse is returned as-is rather than dropped; downstream
// fetch failures degrade to a single dropped event anyway.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// truncate cuts s at n runes. Listing text carries the Naira symbol, so
// the cut has to land on a rune boundary.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package enrich

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/olade/naija-events/internal/event"
	"github.com/olade/naija-events/internal/extract"
	"github.com/olade/naija-events/internal/logger"
	"github.com/olade/naija-events/internal/render"
)

// Detail-page selector families. The source site hints fields with
// data-testid attributes in some deploys and semantic class names in
// others, so every family carries both.
const (
	dateSelector     = `[data-testid="event-date"], .event-date, .date-time`
	locationSelector = `[data-testid="event-location"], .event-location, .location`
	priceSelector    = `[data-testid="event-price"], .event-price, .price`
	aboutSelector    = `[data-testid="event-description"], .event-description, .about-event`
	ticketSelector   = `[data-testid="buy-ticket"], .buy-ticket, a[href*="ticket"]`
)

// Enricher loads each candidate's detail page and re-extracts a fuller
// record from it.
type Enricher struct {
	transport render.Transport
	timeout   time.Duration
	log       *logger.Logger
}

// New creates an Enricher. timeout bounds each detail-page load; it kills
// the one event, never the run.
func New(transport render.Transport, timeout time.Duration, log *logger.Logger) *Enricher {
	return &Enricher{
		transport: transport,
		timeout:   timeout,
		log:       log,
	}
}

// Enrich produces the detailed record for one candidate, or nil when the
// detail page cannot be loaded. A nil result means "drop this event and
// continue the batch"; the enricher never invents field values and never
// fails the caller.
func (e *Enricher) Enrich(ctx context.Context, c *event.Candidate) *event.Detailed {
	if c.SourceURL == "" {
		e.log.Warn("candidate has no detail URL, dropping", logger.Fields{"name": c.Name})
		return nil
	}

	doc, err := e.transport.Load(ctx, c.SourceURL, e.timeout)
	if err != nil {
		e.log.Error("failed to load detail page, dropping event", logger.Fields{
			"name": c.Name,
			"url":  c.SourceURL,
		}, err)
		return nil
	}

	return e.fromDocument(doc, c)
}

// fromDocument applies the detail selectors and the override policy:
// detail values win, name/url/image fall back to the listing, and raw
// date/location/price stay empty when absent so the normalizer applies its
// own fallbacks.
func (e *Enricher) fromDocument(doc *goquery.Document, c *event.Candidate) *event.Detailed {
	d := &event.Detailed{Candidate: *c}

	d.DateText = selectorText(doc, dateSelector)
	d.TimeText = extract.FirstTimeOfDay(d.DateText)
	d.LocationText = selectorText(doc, locationSelector)
	d.PriceText = selectorText(doc, priceSelector)
	d.AboutText = selectorText(doc, aboutSelector)

	if href, ok := doc.Find(ticketSelector).First().Attr("href"); ok && href != "" {
		d.TicketURL = resolveAgainst(c.SourceURL, href)
	} else {
		d.TicketURL = c.SourceURL
	}

	return d
}

func selectorText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

// resolveAgainst resolves a possibly relative href against the detail
// page's own URL.
func resolveAgainst(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

package enrich

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/olade/naija-events/internal/event"
	"github.com/olade/naija-events/internal/logger"
)

// fakeTransport serves canned HTML per URL.
type fakeTransport struct {
	pages map[string]string
	err   error
}

func (f *fakeTransport) Load(_ context.Context, url string, _ time.Duration) (*goquery.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	html, ok := f.pages[url]
	if !ok {
		return nil, errors.New("page not found")
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func testLogger() *logger.Logger {
	return logger.New(logger.LevelError, io.Discard)
}

const detailPage = `<html><body>
	<h1>Afrobeats Night</h1>
	<div class="event-date">Saturday, Dec 25 2025 7:30 PM</div>
	<div class="event-location">Hard Rock Cafe, Lagos</div>
	<div class="event-price">₦15,000</div>
	<div class="about-event">A night of live afrobeats performances.</div>
	<a class="buy-ticket" href="/afrobeats-night/tickets">Buy</a>
</body></html>`

func testCandidate() *event.Candidate {
	return &event.Candidate{
		Name:      "Afrobeats Night",
		SourceURL: "https://tix.africa/afrobeats-night",
		ImageURL:  "https://tix.africa/img/afro.jpg",
		Snippet:   "Afrobeats Night Lagos ₦15,000 Dec 25 2025",
	}
}

func TestEnrich_DetailFieldsExtracted(t *testing.T) {
	transport := &fakeTransport{pages: map[string]string{
		"https://tix.africa/afrobeats-night": detailPage,
	}}
	e := New(transport, time.Second, testLogger())

	d := e.Enrich(context.Background(), testCandidate())
	if d == nil {
		t.Fatal("expected a detailed record")
	}

	if d.DateText != "Saturday, Dec 25 2025 7:30 PM" {
		t.Errorf("DateText = %q", d.DateText)
	}
	if d.TimeText != "7:30 PM" {
		t.Errorf("TimeText = %q", d.TimeText)
	}
	if d.LocationText != "Hard Rock Cafe, Lagos" {
		t.Errorf("LocationText = %q", d.LocationText)
	}
	if d.PriceText != "₦15,000" {
		t.Errorf("PriceText = %q", d.PriceText)
	}
	if d.AboutText != "A night of live afrobeats performances." {
		t.Errorf("AboutText = %q", d.AboutText)
	}
	if d.TicketURL != "https://tix.africa/afrobeats-night/tickets" {
		t.Errorf("TicketURL = %q", d.TicketURL)
	}
}

// Fields missing on the detail page: name/url/image keep the listing
// values, raw date/location/price stay empty for the normalizer.
func TestEnrich_OverridePolicy(t *testing.T) {
	transport := &fakeTransport{pages: map[string]string{
		"https://tix.africa/afrobeats-night": `<html><body><h1>bare page</h1></body></html>`,
	}}
	e := New(transport, time.Second, testLogger())

	d := e.Enrich(context.Background(), testCandidate())
	if d == nil {
		t.Fatal("expected a detailed record")
	}

	if d.Name != "Afrobeats Night" {
		t.Errorf("Name = %q, want listing value", d.Name)
	}
	if d.ImageURL != "https://tix.africa/img/afro.jpg" {
		t.Errorf("ImageURL = %q, want listing value", d.ImageURL)
	}
	if d.DateText != "" || d.LocationText != "" || d.PriceText != "" {
		t.Errorf("raw fields should stay empty, got (%q, %q, %q)",
			d.DateText, d.LocationText, d.PriceText)
	}
	if d.TicketURL != "https://tix.africa/afrobeats-night" {
		t.Errorf("TicketURL = %q, want detail page URL fallback", d.TicketURL)
	}
}

func TestEnrich_LoadFailureDropsEvent(t *testing.T) {
	e := New(&fakeTransport{err: errors.New("navigation timeout")}, time.Second, testLogger())

	if d := e.Enrich(context.Background(), testCandidate()); d != nil {
		t.Error("expected nil on load failure")
	}
}

func TestEnrich_MissingURLDropsEvent(t *testing.T) {
	e := New(&fakeTransport{}, time.Second, testLogger())

	c := testCandidate()
	c.SourceURL = ""
	if d := e.Enrich(context.Background(), c); d != nil {
		t.Error("expected nil for a candidate without a detail URL")
	}
}

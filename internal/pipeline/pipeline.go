package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/olade/naija-events/internal/dedup"
	"github.com/olade/naija-events/internal/enrich"
	"github.com/olade/naija-events/internal/event"
	"github.com/olade/naija-events/internal/extract"
	"github.com/olade/naija-events/internal/locator"
	"github.com/olade/naija-events/internal/logger"
	"github.com/olade/naija-events/internal/normalize"
	"github.com/olade/naija-events/internal/render"
	"github.com/olade/naija-events/internal/store"
)

// Config carries the run parameters for one source site.
type Config struct {
	// ListingURL is the rendered listing page to extract from.
	ListingURL string
	// SourceID is the stable identifier of the origin site stored on
	// every event.
	SourceID string
	// ListingTimeout bounds the initial page load; exceeding it is fatal
	// to the run.
	ListingTimeout time.Duration
	// DetailTimeout bounds each detail-page load; exceeding it drops the
	// one event.
	DetailTimeout time.Duration
	// DetailDelay is the fixed pause between detail fetches that
	// throttles request rate against the origin site.
	DetailDelay time.Duration
}

// Summary is the operator-visible outcome of a run. No run surfaces
// per-event failures upward.
type Summary struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

// Pipeline wires the extraction stages to the transport and the store.
type Pipeline struct {
	transport render.Transport
	enricher  *enrich.Enricher
	store     store.Store
	log       *logger.Logger
	cfg       Config
	now       func() time.Time
}

// New assembles a pipeline.
func New(transport render.Transport, st store.Store, log *logger.Logger, cfg Config) *Pipeline {
	return &Pipeline{
		transport: transport,
		enricher:  enrich.New(transport, cfg.DetailTimeout, log),
		store:     st,
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Run executes one extraction run. The returned error is non-nil only for
// the session-fatal case: the listing page could not be loaded. Every other
// failure is absorbed per event and reflected in the summary counts.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	p.log.Info("starting extraction run", logger.Fields{
		"url":    p.cfg.ListingURL,
		"source": p.cfg.SourceID,
	})

	doc, err := p.transport.Load(ctx, p.cfg.ListingURL, p.cfg.ListingTimeout)
	if err != nil {
		logger.IncrCounter("runs.failed")
		return Summary{}, fmt.Errorf("loading listing page: %w", err)
	}

	candidates := p.locateCandidates(doc)
	p.log.Info("located candidates", logger.Fields{"count": len(candidates)})

	summary := Summary{Attempted: len(candidates)}
	for _, candidate := range candidates {
		if p.processCandidate(ctx, candidate) {
			summary.Succeeded++
		}
		time.Sleep(p.cfg.DetailDelay)
	}

	p.log.Info("extraction run finished", logger.Fields{
		"attempted": summary.Attempted,
		"succeeded": summary.Succeeded,
	})
	return summary, nil
}

// locateCandidates scores the listing document and extracts a raw
// candidate per qualifying element. Elements the extractor rejects are
// silently skipped; over-selection is expected.
func (p *Pipeline) locateCandidates(doc *goquery.Document) []*event.Candidate {
	base := p.baseURL()

	var candidates []*event.Candidate
	for _, sel := range locator.Locate(doc) {
		candidate, ok := extract.Candidate(sel, base)
		if !ok {
			continue
		}
		if candidate.SourceURL == "" {
			candidate.SourceURL = p.cfg.ListingURL
		}
		logger.IncrCounter("events.located")
		candidates = append(candidates, candidate)
	}
	return candidates
}

// processCandidate runs one candidate through enrichment, normalization,
// deduplication, and persistence. Returns true when the event was saved.
func (p *Pipeline) processCandidate(ctx context.Context, candidate *event.Candidate) bool {
	detailed := p.enricher.Enrich(ctx, candidate)
	if detailed == nil {
		return false
	}
	logger.IncrCounter("events.enriched")

	normalized := normalize.Event(detailed, p.now(), p.cfg.SourceID)

	isDup, err := dedup.IsDuplicate(ctx, p.store, &normalized)
	if err != nil {
		// Fail open: a broken lookup should not drop the event.
		p.log.Warn("duplicate lookup failed, assuming new event", logger.Fields{
			"name": normalized.Name,
		})
		isDup = false
	}
	if isDup {
		logger.IncrCounter("events.duplicate")
		p.log.Info("skipping duplicate event", logger.Fields{
			"name":     normalized.Name,
			"date":     normalized.OccursAt.Format("2006-01-02"),
			"location": normalized.Location,
		})
		return false
	}

	id, err := p.store.Create(ctx, &normalized)
	if err != nil {
		p.log.Error("failed to save event", logger.Fields{"name": normalized.Name}, err)
		return false
	}

	logger.IncrCounter("events.saved")
	p.log.Debug("saved event", logger.Fields{"id": id, "name": normalized.Name})
	return true
}

func (p *Pipeline) baseURL() *url.URL {
	base, err := url.Parse(p.cfg.ListingURL)
	if err != nil {
		return nil
	}
	// Relative links resolve against the site origin, not the listing
	// path.
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""
	return base
}

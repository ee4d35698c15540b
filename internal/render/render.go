package render

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultUserAgent identifies the scraper politely when no override is
// configured.
const DefaultUserAgent = "naija-events/1.0 (github.com/olade/naija-events)"

// Transport loads a URL and returns its rendered document. Implementations
// must honor the context and the timeout; a timeout error kills one event,
// not the run.
type Transport interface {
	Load(ctx context.Context, url string, timeout time.Duration) (*goquery.Document, error)
}

// Viewport is the rendering surface size for browser-backed transports.
type Viewport struct {
	Width  int
	Height int
}

// Options carries the environment-specific rendering knobs. None of these
// belong inside the pipeline's logic; they arrive from configuration.
type Options struct {
	BrowserExecutable string
	Viewport          Viewport
	UserAgent         string
	Headless          bool
}

// HTTPTransport fetches pages over plain HTTP and parses them with goquery.
// It covers sites that render server-side; pages that only materialize
// under a script engine need a browser-backed Transport behind the same
// interface.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

// NewHTTP creates an HTTP transport. The per-request timeout is supplied
// on each Load call, so the underlying client carries none.
func NewHTTP(opts Options) *HTTPTransport {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &HTTPTransport{
		client:    &http.Client{},
		userAgent: ua,
	}
}

// Load fetches url and returns the parsed document.
func (t *HTTPTransport) Load(ctx context.Context, url string, timeout time.Duration) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

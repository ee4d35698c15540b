// Package render is the transport boundary between the pipeline and the
// rendered web.
//
// The pipeline consumes parsed DOM snapshots and never owns a browser
// lifecycle; Transport is the seam where those snapshots come from. The
// default implementation fetches over HTTP and parses with goquery. Options
// enumerates the environment knobs (user agent, viewport, browser
// executable, headless) so a browser-backed implementation can honor them;
// the HTTP transport consumes only the user agent.
package render

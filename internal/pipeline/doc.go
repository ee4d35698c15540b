// Package pipeline orchestrates one extraction run: listing page to
// located candidates, to enriched raw records, to normalized events, to
// deduplicated persistence.
//
// A run is single-threaded-cooperative: candidates are enriched and saved
// sequentially because they share one transport session, with a fixed delay
// between detail fetches to bound request rate against the origin site.
// Only a failure to load the listing page is fatal to the run; every
// per-event failure degrades to dropping that event and the operator sees
// a summary count either way.
package pipeline

// Package enrich revisits each candidate's own detail page to widen it
// into a full raw record.
//
// Listing cards truncate and omit; the detail page is authoritative. Any
// field found there overrides the listing value, while name, URL, and image
// fall back to the listing and the date/location/price fields stay empty
// for the normalizer's fallback rules. A failure on one event drops that
// event and never the batch.
package enrich

// Package extract pulls typed raw fields out of listing elements.
//
// The extractor works over parsed DOM selections and free text: a name is
// taken from the first heading, bold, or non-trivial text line; date,
// location, and price tokens are recognized by fixed pattern families; links
// and images come from the first matching descendant with relative URLs
// resolved against the source origin. The same pattern families back the
// locator's heuristic scoring, so a token that scores an element is always
// a token the extractor can pull out.
package extract

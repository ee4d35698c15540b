// Package locator finds the listing elements likely to represent events.
//
// The page structure of the source site is unknown and unstable, so the
// locator runs a fixed, ordered list of selector strategies over the parsed
// document and scores every matching element with fixed weights for event
// signals (link, image, keywords, place, date, price, sane text length).
// The first strategy that qualifies at least one element wins; the rest are
// never evaluated. A capped last-resort scan keeps adversarial pages from
// exploding into false positives. Given the same document the locator
// always returns the same elements in document order.
package locator

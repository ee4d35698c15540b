// Package event defines the record types that flow through the extraction
// pipeline.
//
// A Candidate is what the locator and field extractor produce from one
// listing element. Detail enrichment widens it into a Detailed record whose
// fields are still raw, unvalidated text. Normalization turns a Detailed
// record into a NormalizedEvent, the canonical typed shape handed to the
// persistence layer. Each stage owns its record exclusively until handoff.
package event

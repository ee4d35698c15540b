// Package normalize converts raw extracted text into the canonical typed
// fields of a NormalizedEvent.
//
// Every conversion has an explicit fallback so the pipeline never emits a
// partially-typed record: unparseable dates become "30 days from now",
// unparseable prices become zero, and unclassifiable text becomes the
// Entertainment category. Parse failures are a normal input state here,
// never an error.
package normalize

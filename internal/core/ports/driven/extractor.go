package driven

import "context"

// RawRecord is one extraction result as the AI service returns it: an
// untyped mapping whose values may be strings, numbers, lists, mappings,
// JSON-encoded strings or absent. No schema is enforced upstream.
type RawRecord map[string]any

// Extractor calls the external AI text-extraction service.
// It is the only suspending collaborator in the pipeline; implementations
// must bound each call with a timeout and a fixed retry budget, and must
// surface timeouts as domain.ErrExtractionTimeout so callers can tell
// them apart from service errors.
type Extractor interface {
	// Extract sends document text and returns the raw extracted record.
	// A failed extraction may legitimately return an empty record; the
	// normalization core degrades to defaults rather than failing.
	Extract(ctx context.Context, documentText string) (RawRecord, error)

	// HealthCheck verifies the extraction service is reachable.
	HealthCheck(ctx context.Context) error

	// Close releases resources held by the client.
	Close() error
}

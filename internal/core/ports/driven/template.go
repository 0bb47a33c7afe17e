package driven

import "github.com/verbale-labs/verbale-core/internal/core/domain"

// Template is one legal-minutes variant. Implementations are stateless:
// they read a canonical record and produce a content plan, never writing
// back into the record.
type Template interface {
	// Name returns the registry key of the variant.
	Name() string

	// RequiredFields declares the minimum canonical-record fields the
	// variant needs, used for pre-flight validation reporting.
	RequiredFields() []string

	// BuildContentPlan maps a canonical record onto a fixed-order block
	// sequence. Missing values substitute bracketed placeholder tokens
	// (e.g. [PRESIDENTE]) so a partial record still yields a reviewable
	// draft.
	BuildContentPlan(record *domain.CanonicalRecord) *domain.ContentPlan

	// RenderPreview flattens a content plan to plain text for human
	// review before binary generation.
	RenderPreview(plan *domain.ContentPlan) string
}

// TemplateFactory creates a fresh template instance.
type TemplateFactory func() Template

// TemplateRegistry is the name-keyed catalog of template variants.
// Keys are case-insensitive; registering an existing key overwrites it.
type TemplateRegistry interface {
	// Register adds or replaces a template factory under name.
	Register(name string, factory TemplateFactory)

	// Create instantiates the template registered under name.
	// Returns domain.ErrUnknownTemplate when the key is not registered.
	Create(name string) (Template, error)

	// List returns all registered keys, sorted.
	List() []string
}

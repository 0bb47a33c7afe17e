package driving

import (
	"context"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// SourceRecord is one per-document extraction result handed to the
// pipeline, tagged with the source it came from. Higher priority sources
// win field-level conflicts during combination.
type SourceRecord struct {
	// Name identifies the source document (e.g. "visura", "documento_identita").
	Name string `json:"name"`

	// Priority orders conflict resolution; higher wins. Ties are broken
	// by name so combination is independent of slice order.
	Priority int `json:"priority"`

	// Fields is the raw extracted mapping for this source.
	Fields driven.RawRecord `json:"fields"`
}

// NormalizeResult carries a canonical record together with its
// validation report.
type NormalizeResult struct {
	Record *domain.CanonicalRecord `json:"record"`
	Report []string                `json:"validation_report"`
}

// PreviewResult carries a content plan and its plain-text rendering.
type PreviewResult struct {
	Plan    *domain.ContentPlan `json:"plan"`
	Preview string              `json:"preview"`
	Report  []string            `json:"validation_report"`
}

// GenerateResult is the outcome of a full generation request.
type GenerateResult struct {
	RequestID     string              `json:"request_id"`
	ArtifactPath  string              `json:"artifact_path"`
	Plan          *domain.ContentPlan `json:"plan"`
	Report        []string            `json:"validation_report"`
	SkippedBlocks []int               `json:"skipped_blocks,omitempty"`
}

// GenerationService drives the normalization and assembly pipeline.
type GenerationService interface {
	// ListTemplates returns the registered template keys.
	ListTemplates(ctx context.Context) []string

	// Normalize combines the per-source records into one canonical record.
	// It never fails on data-shape problems; malformed fields degrade to
	// documented defaults and surface only in the validation report.
	Normalize(ctx context.Context, sources []SourceRecord) (*NormalizeResult, error)

	// Preview builds the content plan for templateKey and flattens it.
	// Fails only on an unknown template key.
	Preview(ctx context.Context, templateKey string, sources []SourceRecord) (*PreviewResult, error)

	// Generate runs the full pipeline to a binary artifact in outputDir.
	Generate(ctx context.Context, templateKey string, sources []SourceRecord, outputDir string) (*GenerateResult, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/verbale-labs/verbale-core/internal/assembler"
	"github.com/verbale-labs/verbale-core/internal/combiner"
	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driving"
	"github.com/verbale-labs/verbale-core/internal/templates"
)

// Ensure generationService implements GenerationService
var _ driving.GenerationService = (*generationService)(nil)

// generationService runs the normalization and assembly pipeline.
// Each request operates on its own canonical record and content plan;
// nothing is cached or shared between calls.
type generationService struct {
	registry  driven.TemplateRegistry
	combiner  *combiner.Combiner
	assembler *assembler.Assembler
	logger    *slog.Logger
}

// NewGenerationService creates a GenerationService.
func NewGenerationService(
	registry driven.TemplateRegistry,
	comb *combiner.Combiner,
	asm *assembler.Assembler,
	logger *slog.Logger,
) driving.GenerationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &generationService{
		registry:  registry,
		combiner:  comb,
		assembler: asm,
		logger:    logger,
	}
}

// ListTemplates returns the registered template keys.
func (s *generationService) ListTemplates(ctx context.Context) []string {
	return s.registry.List()
}

// Normalize combines the per-source records into one canonical record.
func (s *generationService) Normalize(ctx context.Context, sources []driving.SourceRecord) (*driving.NormalizeResult, error) {
	record := s.combiner.Combine(toCombinerSources(sources))
	return &driving.NormalizeResult{
		Record: record,
		Report: record.Validate(),
	}, nil
}

// Preview builds the content plan for templateKey and flattens it.
func (s *generationService) Preview(ctx context.Context, templateKey string, sources []driving.SourceRecord) (*driving.PreviewResult, error) {
	tpl, record, plan, err := s.buildPlan(templateKey, sources)
	if err != nil {
		return nil, err
	}

	return &driving.PreviewResult{
		Plan:    plan,
		Preview: tpl.RenderPreview(plan),
		Report:  buildReport(tpl, record),
	}, nil
}

// Generate runs the full pipeline to a binary artifact in outputDir.
func (s *generationService) Generate(ctx context.Context, templateKey string, sources []driving.SourceRecord, outputDir string) (*driving.GenerateResult, error) {
	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID, "template", templateKey)

	tpl, record, plan, err := s.buildPlan(templateKey, sources)
	if err != nil {
		return nil, err
	}

	state := domain.StateContentPlanned
	report := buildReport(tpl, record)
	if len(report) > 0 {
		logger.Warn("generating from incomplete record", "issues", len(report))
	}

	assembled, err := s.assembler.Assemble(plan, outputDir)
	if err != nil {
		return nil, err
	}
	if state, err = state.Advance(domain.StateAssembled); err != nil {
		return nil, err
	}

	logger.Info("document assembled",
		"state", state,
		"artifact", assembled.ArtifactPath,
		"blocks", assembled.BlocksWritten,
		"skipped", len(assembled.SkippedBlocks),
	)

	return &driving.GenerateResult{
		RequestID:     requestID,
		ArtifactPath:  assembled.ArtifactPath,
		Plan:          plan,
		Report:        report,
		SkippedBlocks: assembled.SkippedBlocks,
	}, nil
}

// buildPlan walks the request through the linear state machine up to
// ContentPlanned: template selection, data collection, planning.
func (s *generationService) buildPlan(templateKey string, sources []driving.SourceRecord) (driven.Template, *domain.CanonicalRecord, *domain.ContentPlan, error) {
	tpl, err := s.registry.Create(templateKey)
	if err != nil {
		return nil, nil, nil, err
	}
	state := domain.StateSelected

	record := s.combiner.Combine(toCombinerSources(sources))
	if state, err = state.Advance(domain.StateDataCollected); err != nil {
		return nil, nil, nil, err
	}

	plan := tpl.BuildContentPlan(record)
	if plan == nil {
		return nil, nil, nil, fmt.Errorf("template %s produced no plan", templateKey)
	}
	if _, err = state.Advance(domain.StateContentPlanned); err != nil {
		return nil, nil, nil, err
	}

	return tpl, record, plan, nil
}

// buildReport joins the business validation with the template's own
// pre-flight required-field check.
func buildReport(tpl driven.Template, record *domain.CanonicalRecord) []string {
	return append(record.Validate(), templates.MissingFields(tpl, record)...)
}

func toCombinerSources(sources []driving.SourceRecord) []combiner.Source {
	out := make([]combiner.Source, 0, len(sources))
	for _, src := range sources {
		out = append(out, combiner.Source{
			Name:     src.Name,
			Priority: src.Priority,
			Fields:   src.Fields,
		})
	}
	return out
}

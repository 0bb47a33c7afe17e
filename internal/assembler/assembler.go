// Package assembler turns a content plan into a binary document by
// walking the plan in order and delegating block formatting to the
// external word-processing writer. The only logic here is traversal and
// block-to-call mapping.
package assembler

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// Report describes the outcome of one assembly run. SkippedBlocks holds
// the indexes of blocks the writer rejected; the run continues past
// them so one unsupported block cannot lose the whole document.
type Report struct {
	ArtifactPath  string `json:"artifact_path"`
	BlocksWritten int    `json:"blocks_written"`
	SkippedBlocks []int  `json:"skipped_blocks,omitempty"`
}

// Assembler walks content plans against a writer. A fresh writer is
// created per run, so concurrent runs never share writer state.
type Assembler struct {
	newWriter driven.WriterFactory
	logger    *slog.Logger
	now       func() time.Time
}

// New creates an Assembler.
func New(factory driven.WriterFactory, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		newWriter: factory,
		logger:    logger,
		now:       time.Now,
	}
}

// Assemble writes the plan to a binary artifact in outputDir, named
// {template_key}_{ISO date}.pdf. Block-level writer failures are
// recovered by skipping the block; a failed save propagates with the
// partial report preserved for diagnostics.
func (a *Assembler) Assemble(plan *domain.ContentPlan, outputDir string) (*Report, error) {
	w := a.newWriter()
	report := &Report{}

	for i, block := range plan.Blocks {
		if err := writeBlock(w, block); err != nil {
			a.logger.Warn("skipping block the writer rejected",
				"template", plan.TemplateKey,
				"block", i,
				"kind", block.Kind,
				"error", err,
			)
			report.SkippedBlocks = append(report.SkippedBlocks, i)
			continue
		}
		report.BlocksWritten++
	}

	filename := fmt.Sprintf("%s_%s.pdf", plan.TemplateKey, a.now().Format("2006-01-02"))
	path := filepath.Join(outputDir, filename)

	if err := w.Save(path); err != nil {
		return report, fmt.Errorf("%w: saving %s after %d blocks: %v",
			domain.ErrAssemblyFailed, path, report.BlocksWritten, err)
	}

	report.ArtifactPath = path
	return report, nil
}

func writeBlock(w driven.DocumentWriter, block domain.Block) error {
	switch block.Kind {
	case domain.BlockHeading:
		return w.WriteHeading(block.Level, block.Text)
	case domain.BlockParagraph:
		return w.WriteParagraph(block.Text)
	case domain.BlockList:
		return w.WriteList(block.Items)
	case domain.BlockSignature:
		return w.WriteSignatureTable(block.ChairLabel, block.SecretaryLabel, block.ChairName, block.SecretaryName)
	default:
		return fmt.Errorf("unknown block kind %q", block.Kind)
	}
}

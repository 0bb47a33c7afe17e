// Package pdf adapts the gofpdf library to the DocumentWriter port.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// Ensure Writer implements DocumentWriter
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders content-plan blocks onto an A4 page. One Writer
// produces one document; create a fresh one per generation request.
type Writer struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewWriter creates a writer with an empty first page.
func NewWriter() driven.DocumentWriter {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	return &Writer{
		pdf: doc,
		// CP1252 translation keeps accented Italian text readable with
		// the core fonts.
		translate: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// WriteHeading emits a centered bold heading; level 1 is the document
// title.
func (w *Writer) WriteHeading(level int, text string) error {
	size := 16.0
	switch level {
	case 2:
		size = 13
	case 3:
		size = 12
	}

	w.pdf.SetFont("Helvetica", "B", size)
	w.pdf.MultiCell(0, 7, w.translate(text), "", "C", false)
	w.pdf.Ln(3)
	return w.err()
}

// WriteParagraph emits a justified body paragraph.
func (w *Writer) WriteParagraph(text string) error {
	w.pdf.SetFont("Helvetica", "", 11)
	w.pdf.MultiCell(0, 5.5, w.translate(text), "", "J", false)
	w.pdf.Ln(2)
	return w.err()
}

// WriteList emits a bulleted list.
func (w *Writer) WriteList(items []string) error {
	w.pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		w.pdf.SetX(w.pdf.GetX() + 5)
		w.pdf.MultiCell(0, 5.5, w.translate("- "+item), "", "L", false)
	}
	w.pdf.Ln(2)
	return w.err()
}

// WriteSignatureTable emits the two-row, two-column closing block:
// bolded role labels over centered names.
func (w *Writer) WriteSignatureTable(chairLabel, secretaryLabel, chairName, secretaryName string) error {
	w.pdf.Ln(10)

	colWidth := 85.0
	w.pdf.SetFont("Helvetica", "B", 11)
	w.pdf.CellFormat(colWidth, 6, w.translate(chairLabel), "", 0, "C", false, 0, "")
	w.pdf.CellFormat(colWidth, 6, w.translate(secretaryLabel), "", 1, "C", false, 0, "")

	w.pdf.SetFont("Helvetica", "", 11)
	w.pdf.CellFormat(colWidth, 6, w.translate(chairName), "", 0, "C", false, 0, "")
	w.pdf.CellFormat(colWidth, 6, w.translate(secretaryName), "", 1, "C", false, 0, "")
	return w.err()
}

// Save writes the binary artifact, creating the output directory when
// missing.
func (w *Writer) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return w.pdf.OutputFileAndClose(path)
}

// err surfaces the accumulated gofpdf error, if any.
func (w *Writer) err() error {
	if w.pdf.Err() {
		return w.pdf.Error()
	}
	return nil
}

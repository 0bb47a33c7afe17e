package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriter_ProducesArtifact(t *testing.T) {
	w := NewWriter()

	if err := w.WriteHeading(1, "Alfa S.r.l."); err != nil {
		t.Fatalf("heading: %v", err)
	}
	if err := w.WriteHeading(2, "Verbale di assemblea ordinaria"); err != nil {
		t.Fatalf("subheading: %v", err)
	}
	if err := w.WriteParagraph("Il giorno 30 aprile 2024, alle ore 10:00, presso la sede sociale, si è riunita l'assemblea dei soci."); err != nil {
		t.Fatalf("paragraph: %v", err)
	}
	if err := w.WriteList([]string{"di approvare il bilancio;", "di destinare l'utile a riserva."}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := w.WriteSignatureTable("Il Presidente", "Il Segretario", "Anna Verdi", "Mario Rossi"); err != nil {
		t.Fatalf("signature: %v", err)
	}

	path := filepath.Join(t.TempDir(), "verbale_standard_2024-04-30.pdf")
	if err := w.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("artifact is empty")
	}
}

func TestWriter_CreatesOutputDirectory(t *testing.T) {
	w := NewWriter()
	if err := w.WriteParagraph("test"); err != nil {
		t.Fatalf("paragraph: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.pdf")
	if err := w.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
}

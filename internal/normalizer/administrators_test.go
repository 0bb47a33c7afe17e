package normalizer

import (
	"testing"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

func TestAdministrators_EmptyWithFallback(t *testing.T) {
	got := Administrators(nil, "Mario Rossi")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Name != "Mario Rossi" {
		t.Errorf("expected fallback name, got %q", got[0].Name)
	}
	if got[0].Role != domain.DefaultAdministratorRole {
		t.Errorf("expected Amministratore Unico, got %q", got[0].Role)
	}
	if !got[0].Present {
		t.Error("expected present")
	}
}

func TestAdministrators_EmptyNoFallback(t *testing.T) {
	got := Administrators([]any{nil, map[string]any{}}, "  ")
	if len(got) != 1 {
		t.Fatalf("expected 1 placeholder, got %d", len(got))
	}
	if got[0].Name != "" || got[0].Role != "" {
		t.Errorf("expected empty placeholder, got %+v", got[0])
	}
}

func TestAdministrators_Backfill(t *testing.T) {
	got := Administrators([]any{
		map[string]any{"nome": "Anna Verdi"},
		map[string]any{"nome": "Luca Bianchi", "carica": "Consigliere", "presente": "no", "assente_giustificato": "si"},
		"Paolo Neri",
	}, "ignored when list is non-empty")

	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	if got[0].Role != domain.DefaultAdministratorRole {
		t.Errorf("blank role should default, got %q", got[0].Role)
	}
	if !got[0].Present || got[0].AbsentJustified {
		t.Errorf("expected present/not-justified defaults, got %+v", got[0])
	}

	if got[1].Role != "Consigliere" {
		t.Errorf("explicit role should survive, got %q", got[1].Role)
	}
	if got[1].Present {
		t.Error(`presente "no" should coerce to false`)
	}
	if !got[1].AbsentJustified {
		t.Error(`assente_giustificato "si" should coerce to true`)
	}

	if got[2].Name != "Paolo Neri" {
		t.Errorf("bare string should become a named record, got %q", got[2].Name)
	}
}

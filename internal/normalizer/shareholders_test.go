package normalizer

import (
	"testing"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

func assertDefaults(t *testing.T, s domain.Shareholder) {
	t.Helper()
	if s.Participation != domain.ParticipationDirect {
		t.Errorf("expected Diretta participation, got %q", s.Participation)
	}
	if s.SubjectType != domain.SubjectNaturalPerson {
		t.Errorf("expected Persona Fisica, got %q", s.SubjectType)
	}
	if s.ProxyHolder != "" || s.LegalRepresentative != "" {
		t.Errorf("expected empty proxy/representative, got %q %q", s.ProxyHolder, s.LegalRepresentative)
	}
	if !s.Present {
		t.Error("expected present by default")
	}
}

func TestShareholders_EmptyInput(t *testing.T) {
	got := Shareholders(nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 placeholder, got %d", len(got))
	}
	if got[0].Name != "" {
		t.Errorf("expected empty placeholder name, got %q", got[0].Name)
	}
	assertDefaults(t, got[0])
}

func TestShareholders_AllEntriesDropped(t *testing.T) {
	got := Shareholders([]any{nil, "", map[string]any{}, 42, "   "})
	if len(got) != 1 {
		t.Fatalf("expected 1 placeholder after filtering, got %d", len(got))
	}
	if got[0].Name != "" {
		t.Errorf("expected empty placeholder name, got %q", got[0].Name)
	}
	assertDefaults(t, got[0])
}

func TestShareholders_MixedShapes(t *testing.T) {
	got := Shareholders([]any{
		"Mario Rossi",
		map[string]any{
			"nome":              "Anna Verdi",
			"quota_percentuale": "30%",
			"presente":          false,
		},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	if got[0].Name != "Mario Rossi" {
		t.Errorf("expected Mario Rossi, got %q", got[0].Name)
	}
	assertDefaults(t, got[0])

	if got[1].Name != "Anna Verdi" {
		t.Errorf("expected Anna Verdi, got %q", got[1].Name)
	}
	if got[1].StakePercentage != "30%" {
		t.Errorf("expected stake preserved, got %q", got[1].StakePercentage)
	}
	if got[1].Present {
		t.Error("expected presente false to be preserved")
	}
}

func TestShareholders_NullFieldsDefaulted(t *testing.T) {
	got := Shareholders([]any{
		map[string]any{"nome": "Luca Bianchi", "presente": nil, "tipo_partecipazione": nil},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if !got[0].Present {
		t.Error("null presente should default to true")
	}
	if got[0].Participation != domain.ParticipationDirect {
		t.Errorf("null participation should default, got %q", got[0].Participation)
	}
}

func TestShareholders_ItalianBooleanSpelling(t *testing.T) {
	got := Shareholders([]any{
		map[string]any{"nome": "A", "presente": "no"},
		map[string]any{"nome": "B", "presente": "sì"},
	})
	if got[0].Present {
		t.Error(`"no" should coerce to false`)
	}
	if !got[1].Present {
		t.Error(`"sì" should coerce to true`)
	}
}

func TestShareholders_ProxyFieldsPreserved(t *testing.T) {
	got := Shareholders([]any{
		map[string]any{
			"nome":                 "Holding Alfa S.r.l.",
			"tipo_partecipazione":  "Delega",
			"delegato":             "Mario Rossi",
			"tipo_soggetto":        "Persona Giuridica",
			"rappresentante_legale": "Anna Verdi",
			"quota_valore":         "5.000,00",
		},
	})
	s := got[0]
	if s.Participation != domain.ParticipationProxy {
		t.Errorf("expected Delega, got %q", s.Participation)
	}
	if s.ProxyHolder != "Mario Rossi" {
		t.Errorf("expected proxy holder, got %q", s.ProxyHolder)
	}
	if s.SubjectType != domain.SubjectLegalEntity {
		t.Errorf("expected Persona Giuridica, got %q", s.SubjectType)
	}
	if s.StakeAmount != "5.000,00" {
		t.Errorf("expected stake amount preserved, got %q", s.StakeAmount)
	}
}

func TestShareholders_OrderPreserved(t *testing.T) {
	got := Shareholders([]any{"C", "A", "B"})
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	want := []string{"C", "A", "B"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order not preserved: got %v", names)
		}
	}
}

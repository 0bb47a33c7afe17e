package normalizer

import (
	"testing"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

func TestChairAndSecretary(t *testing.T) {
	admins := []domain.Administrator{{Name: "A"}}
	socis := []domain.Shareholder{{Name: "B"}}

	got := ChairAndSecretary(admins, socis, "fallback")
	if got.Chair != "A" {
		t.Errorf("expected chair A, got %q", got.Chair)
	}
	if got.Secretary != "B" {
		t.Errorf("expected secretary B (shareholders first), got %q", got.Secretary)
	}
}

func TestChairAndSecretary_FallbackChair(t *testing.T) {
	got := ChairAndSecretary(
		[]domain.Administrator{{Name: ""}},
		nil,
		"Mario Rossi",
	)
	if got.Chair != "Mario Rossi" {
		t.Errorf("expected representative fallback, got %q", got.Chair)
	}
	if got.Secretary != "" {
		t.Errorf("expected empty secretary, got %q", got.Secretary)
	}
}

func TestChairAndSecretary_SecretaryFromAdministrators(t *testing.T) {
	got := ChairAndSecretary(
		[]domain.Administrator{{Name: "A"}},
		[]domain.Shareholder{{Name: ""}},
		"",
	)
	if got.Secretary != "A" {
		t.Errorf("expected administrator as secretary when no named shareholder, got %q", got.Secretary)
	}
}

func TestChairAndSecretary_SkipsEmptyNames(t *testing.T) {
	got := ChairAndSecretary(
		[]domain.Administrator{{Name: ""}, {Name: "C"}},
		[]domain.Shareholder{{Name: ""}, {Name: "D"}},
		"",
	)
	if got.Chair != "C" {
		t.Errorf("expected first non-empty administrator, got %q", got.Chair)
	}
	if got.Secretary != "D" {
		t.Errorf("expected first non-empty shareholder, got %q", got.Secretary)
	}
}

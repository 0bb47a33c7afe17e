package templates

import (
	"errors"
	"testing"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// stub template for registry tests
type stubTemplate struct {
	base
	name string
}

func (s *stubTemplate) Name() string             { return s.name }
func (s *stubTemplate) RequiredFields() []string { return nil }
func (s *stubTemplate) BuildContentPlan(rec *domain.CanonicalRecord) *domain.ContentPlan {
	return &domain.ContentPlan{TemplateKey: s.name}
}

func TestRegistry_CreateUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Create("inesistente")
	if !errors.Is(err, domain.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestRegistry_CaseInsensitiveKeys(t *testing.T) {
	r := NewRegistry()
	r.Register("Verbale_Standard", func() driven.Template { return &stubTemplate{name: "verbale_standard"} })

	tpl, err := r.Create("VERBALE_STANDARD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Name() != "verbale_standard" {
		t.Errorf("unexpected template: %s", tpl.Name())
	}
}

func TestRegistry_OverwriteByName(t *testing.T) {
	r := NewRegistry()
	r.Register("x", func() driven.Template { return &stubTemplate{name: "first"} })
	r.Register("X ", func() driven.Template { return &stubTemplate{name: "second"} })

	if got := len(r.List()); got != 1 {
		t.Fatalf("expected 1 key after overwrite, got %d", got)
	}

	tpl, err := r.Create("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Name() != "second" {
		t.Errorf("expected overwritten factory, got %s", tpl.Name())
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("b", func() driven.Template { return &stubTemplate{name: "b"} })
	r.Register("a", func() driven.Template { return &stubTemplate{name: "a"} })
	r.Register("c", func() driven.Template { return &stubTemplate{name: "c"} })

	keys := r.List()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected sorted keys %v, got %v", want, keys)
		}
	}
}

func TestDefaultRegistry_AllVariantsRegistered(t *testing.T) {
	r := DefaultRegistry()

	keys := r.List()
	if len(keys) != 15 {
		t.Fatalf("expected 15 variants, got %d: %v", len(keys), keys)
	}

	for _, key := range keys {
		tpl, err := r.Create(key)
		if err != nil {
			t.Fatalf("create %s: %v", key, err)
		}
		if tpl.Name() != key {
			t.Errorf("template %s registered under key %s", tpl.Name(), key)
		}
	}
}

package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// mockExtractor is a mock implementation for testing
type mockExtractor struct {
	healthCheckErr error
	closed         bool
}

func (m *mockExtractor) Extract(ctx context.Context, documentText string) (driven.RawRecord, error) {
	return driven.RawRecord{}, nil
}

func (m *mockExtractor) HealthCheck(ctx context.Context) error {
	return m.healthCheckErr
}

func (m *mockExtractor) Close() error {
	m.closed = true
	return nil
}

func TestServices_SetExtractor(t *testing.T) {
	s := NewServices()

	if s.Extractor() != nil {
		t.Fatal("expected nil extractor initially")
	}

	first := &mockExtractor{}
	s.SetExtractor(first)
	if s.Extractor() != driven.Extractor(first) {
		t.Fatal("expected first extractor")
	}

	second := &mockExtractor{}
	s.SetExtractor(second)
	if !first.closed {
		t.Error("replacing the extractor should close the old one")
	}
	if s.Extractor() != driven.Extractor(second) {
		t.Fatal("expected second extractor")
	}
}

func TestServices_ValidateAndSetExtractor(t *testing.T) {
	s := NewServices()

	healthy := &mockExtractor{}
	if err := s.ValidateAndSetExtractor(context.Background(), healthy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Extractor() == nil {
		t.Fatal("healthy extractor should be set")
	}

	broken := &mockExtractor{healthCheckErr: errors.New("unreachable")}
	if err := s.ValidateAndSetExtractor(context.Background(), broken); err == nil {
		t.Fatal("expected health check error")
	}
	if !broken.closed {
		t.Error("rejected extractor should be closed")
	}
	if s.Extractor() != driven.Extractor(healthy) {
		t.Error("previous extractor should survive a failed swap")
	}
}

func TestServices_ValidateAndSetExtractor_Nil(t *testing.T) {
	s := NewServices()
	old := &mockExtractor{}
	s.SetExtractor(old)

	if err := s.ValidateAndSetExtractor(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Extractor() != nil {
		t.Error("nil should clear the extractor")
	}
	if !old.closed {
		t.Error("cleared extractor should be closed")
	}
}

func TestServices_Close(t *testing.T) {
	s := NewServices()
	ext := &mockExtractor{}
	s.SetExtractor(ext)

	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ext.closed {
		t.Error("close should close the extractor")
	}
	if s.Extractor() != nil {
		t.Error("close should clear the extractor")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.OutputDir == "" {
		t.Error("expected default output dir")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("PORT", "99999")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EXTRACTION_URL", "http://localhost:9999")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.ExtractionURL != "http://localhost:9999" {
		t.Errorf("unexpected extraction URL %q", cfg.ExtractionURL)
	}
}

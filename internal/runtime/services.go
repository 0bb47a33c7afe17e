package runtime

import (
	"context"
	"sync"

	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// Services holds the dynamically configurable extraction service.
// The extractor can be swapped at runtime via API without a restart.
// Thread-safe for concurrent access.
type Services struct {
	mu sync.RWMutex

	extractor driven.Extractor
}

// NewServices creates a new Services holder.
func NewServices() *Services {
	return &Services{}
}

// Extractor returns the current extraction client (may be nil when the
// collaborator is not configured; the pipeline then runs on caller-
// provided records only).
func (s *Services) Extractor() driven.Extractor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.extractor
}

// SetExtractor updates the extraction client, closing the old one.
func (s *Services) SetExtractor(svc driven.Extractor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.extractor != nil {
		_ = s.extractor.Close()
	}
	s.extractor = svc
}

// ValidateAndSetExtractor verifies connectivity before swapping in the
// new client.
func (s *Services) ValidateAndSetExtractor(ctx context.Context, svc driven.Extractor) error {
	if svc == nil {
		s.SetExtractor(nil)
		return nil
	}

	if err := svc.HealthCheck(ctx); err != nil {
		_ = svc.Close()
		return err
	}

	s.SetExtractor(svc)
	return nil
}

// Close shuts down the held services.
func (s *Services) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.extractor != nil {
		_ = s.extractor.Close()
		s.extractor = nil
	}
	return nil
}

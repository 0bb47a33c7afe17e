package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
)

func fastClient(t *testing.T, baseURL string) *ExtractionClient {
	t.Helper()
	c, err := NewExtractionClient("test-key", baseURL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.attemptTimeout = 200 * time.Millisecond
	c.backoff = 10 * time.Millisecond
	return c
}

func TestExtract_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/extract" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		w.Write([]byte(`{"fields": {"denominazione": "Alfa S.r.l.", "soci": ["Mario Rossi"]}}`))
	}))
	defer srv.Close()

	c := fastClient(t, srv.URL)
	record, err := c.Extract(context.Background(), "testo del documento")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record["denominazione"] != "Alfa S.r.l." {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestExtract_TimeoutIsTypedAndRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(500 * time.Millisecond) // beyond the attempt timeout
	}))
	defer srv.Close()

	c := fastClient(t, srv.URL)
	_, err := c.Extract(context.Background(), "testo")
	if !errors.Is(err, domain.ErrExtractionTimeout) {
		t.Fatalf("expected ErrExtractionTimeout, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestExtract_ServiceErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": {"message": "document unreadable", "type": "invalid_document"}}`))
	}))
	defer srv.Close()

	c := fastClient(t, srv.URL)
	_, err := c.Extract(context.Background(), "testo")
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("service rejection should not retry, got %d attempts", got)
	}
}

func TestExtract_ServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"fields": {"denominazione": "Alfa S.r.l."}}`))
	}))
	defer srv.Close()

	c := fastClient(t, srv.URL)
	record, err := c.Extract(context.Background(), "testo")
	if err != nil {
		t.Fatalf("expected recovery on third attempt, got %v", err)
	}
	if record["denominazione"] != "Alfa S.r.l." {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestNewExtractionClient_RequiresURL(t *testing.T) {
	if _, err := NewExtractionClient("key", ""); err == nil {
		t.Fatal("expected error for missing URL")
	}
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := fastClient(t, srv.URL)
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

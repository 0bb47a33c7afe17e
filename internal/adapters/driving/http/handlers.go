package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// SourcePayload is one contributing record in a pipeline request
// @Description One contributing record with its priority
type SourcePayload struct {
	Name     string           `json:"name" example:"visura"`
	Priority int              `json:"priority" example:"10"`
	Fields   driven.RawRecord `json:"fields"`
}

// PipelineRequest is the shared request body for the pipeline endpoints.
// DocumentText is optional; when set, the configured extraction service
// contributes an additional source.
// @Description Pipeline request: sources plus optional document text
type PipelineRequest struct {
	TemplateKey  string          `json:"template_key,omitempty" example:"verbale_standard"`
	Sources      []SourcePayload `json:"sources"`
	DocumentText string          `json:"document_text,omitempty"`
}

// NormalizeResponse carries the canonical record and its validation report
type NormalizeResponse struct {
	Record *domain.CanonicalRecord `json:"record"`
	Report []string                `json:"report"`
}

// PreviewResponse carries the flattened preview text
type PreviewResponse struct {
	TemplateKey string   `json:"template_key"`
	Preview     string   `json:"preview"`
	Report      []string `json:"report"`
}

// GenerateResponse carries the artifact location
type GenerateResponse struct {
	RequestID     string   `json:"request_id"`
	ArtifactPath  string   `json:"artifact_path"`
	Report        []string `json:"report"`
	SkippedBlocks []int    `json:"skipped_blocks,omitempty"`
}

// ExtractorConfigRequest reconfigures the extraction collaborator.
// An empty URL clears the current client.
type ExtractorConfigRequest struct {
	URL    string `json:"url" example:"https://extract.internal:8443"`
	APIKey string `json:"api_key"`
}

// ExtractorStatusResponse reports whether extraction is configured
type ExtractorStatusResponse struct {
	Configured bool `json:"configured"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	extractor := "unconfigured"
	if s.services.Extractor() != nil {
		extractor = "configured"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"extractor": extractor,
	})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Template catalog

// handleListTemplates godoc
// @Summary      List document templates
// @Description  Returns the registered template keys in alphabetical order
// @Tags         Templates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Router       /templates [get]
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	keys := s.generationService.ListTemplates(r.Context())
	writeJSON(w, http.StatusOK, map[string][]string{"templates": keys})
}

// Pipeline endpoints

// handleNormalize godoc
// @Summary      Normalize source records
// @Description  Combine the given sources into one canonical record and report missing fields
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PipelineRequest  true  "Sources to combine"
// @Success      200      {object}  NormalizeResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      503      {object}  ErrorResponse  "Extraction service unavailable"
// @Router       /normalize [post]
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req PipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sources, err := s.resolveSources(r, &req)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	result, err := s.generationService.Normalize(r.Context(), sources)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NormalizeResponse{
		Record: result.Record,
		Report: result.Report,
	})
}

// handlePreview godoc
// @Summary      Preview a document
// @Description  Build the content plan for the template and return its flattened text
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PipelineRequest  true  "Template key and sources"
// @Success      200      {object}  PreviewResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      404      {object}  ErrorResponse  "Unknown template"
// @Router       /preview [post]
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateKey == "" {
		writeError(w, http.StatusBadRequest, "template_key is required")
		return
	}

	sources, err := s.resolveSources(r, &req)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	result, err := s.generationService.Preview(r.Context(), req.TemplateKey, sources)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		TemplateKey: req.TemplateKey,
		Preview:     result.Preview,
		Report:      result.Report,
	})
}

// handleGenerate godoc
// @Summary      Generate a document
// @Description  Run the full pipeline and write the PDF artifact to the output directory
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PipelineRequest  true  "Template key and sources"
// @Success      200      {object}  GenerateResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      404      {object}  ErrorResponse  "Unknown template"
// @Failure      500      {object}  ErrorResponse  "Assembly failed"
// @Router       /generate [post]
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req PipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateKey == "" {
		writeError(w, http.StatusBadRequest, "template_key is required")
		return
	}

	sources, err := s.resolveSources(r, &req)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	result, err := s.generationService.Generate(r.Context(), req.TemplateKey, sources, s.outputDir)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		RequestID:     result.RequestID,
		ArtifactPath:  result.ArtifactPath,
		Report:        result.Report,
		SkippedBlocks: result.SkippedBlocks,
	})
}

// Extraction settings

// handleUpdateExtractor godoc
// @Summary      Configure the extraction service
// @Description  Swap in a new extraction client after a successful health check. An empty URL clears the client.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ExtractorConfigRequest  true  "Extraction endpoint"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      502      {object}  ErrorResponse  "Endpoint failed the health check"
// @Router       /settings/extractor [put]
func (s *Server) handleUpdateExtractor(w http.ResponseWriter, r *http.Request) {
	var req ExtractorConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		if err := s.services.ValidateAndSetExtractor(r.Context(), nil); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to clear extractor")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
		return
	}

	client, err := s.newExtractor(req.APIKey, req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.services.ValidateAndSetExtractor(r.Context(), client); err != nil {
		writeError(w, http.StatusBadGateway, "extraction endpoint failed health check")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetExtractorStatus godoc
// @Summary      Extraction service status
// @Description  Reports whether an extraction client is configured
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ExtractorStatusResponse
// @Router       /settings/extractor [get]
func (s *Server) handleGetExtractorStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ExtractorStatusResponse{
		Configured: s.services.Extractor() != nil,
	})
}

// resolveSources converts the request payload to service sources and,
// when document text is supplied, runs the configured extraction
// client and appends its fields as one more source.
func (s *Server) resolveSources(r *http.Request, req *PipelineRequest) ([]driving.SourceRecord, error) {
	sources := make([]driving.SourceRecord, 0, len(req.Sources)+1)
	for _, src := range req.Sources {
		sources = append(sources, driving.SourceRecord{
			Name:     src.Name,
			Priority: src.Priority,
			Fields:   src.Fields,
		})
	}

	if req.DocumentText != "" {
		extractor := s.services.Extractor()
		if extractor == nil {
			return nil, domain.ErrServiceUnavailable
		}
		fields, err := extractor.Extract(r.Context(), req.DocumentText)
		if err != nil {
			return nil, err
		}
		// Extraction ranks below caller-provided sources.
		sources = append(sources, driving.SourceRecord{
			Name:     "estrazione",
			Priority: 0,
			Fields:   fields,
		})
	}

	return sources, nil
}

// writePipelineError maps domain errors onto HTTP statuses.
func writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownTemplate):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrExtractionTimeout):
		writeError(w, http.StatusGatewayTimeout, "extraction timed out")
	case errors.Is(err, domain.ErrServiceUnavailable):
		writeError(w, http.StatusServiceUnavailable, "extraction service unavailable")
	case errors.Is(err, domain.ErrExtractionFailed):
		writeError(w, http.StatusBadGateway, "extraction failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

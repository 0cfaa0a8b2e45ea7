package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/matzehuels/ariel/pkg/buildinfo"
	"github.com/matzehuels/ariel/pkg/document"
	"github.com/matzehuels/ariel/pkg/errors"
	"github.com/matzehuels/ariel/pkg/extract"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

// RenderResponse is the body of POST /render/json.
type RenderResponse struct {
	Diagram     string           `json:"diagram"`
	Title       string           `json:"title"`
	GraphHash   string           `json:"graph_hash"`
	Diagnostics []extract.Report `json:"diagnostics"`
	Stats       pipeline.Stats   `json:"stats"`
	Cached      bool             `json:"cached"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "ariel", "build": buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	res, ok := s.render(w, r)
	if !ok {
		return
	}
	ct := "text/plain; charset=utf-8"
	if r.URL.Query().Get("output") == pipeline.OutputMarkdown {
		ct = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, res.Text)
}

func (s *Server) handleRenderJSON(w http.ResponseWriter, r *http.Request) {
	res, ok := s.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		Diagram:     res.Text,
		Title:       res.Title(),
		GraphHash:   res.GraphHash,
		Diagnostics: extract.Reports(res.Diagnostics),
		Stats:       res.Stats,
		Cached:      res.CacheHit,
	})
}

// render runs the pipeline for a request, writing the error response itself
// when it fails.
func (s *Server) render(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	format, err := requestFormat(r)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Output:  q.Get("output"),
		Title:   q.Get("title"),
		Refresh: q.Get("refresh") == "true",
		Logger:  s.logger.With("request_id", RequestID(r.Context())),
	}
	if opts.Output == "" {
		opts.Output = pipeline.OutputText
	}
	if err := pipeline.ValidateOutput(opts.Output); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "output parameter"))
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return nil, false
	}

	res, err := s.runner.RenderDocument(r.Context(), body, format, s.registry, opts)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return res, true
}

// requestFormat prefers the format query parameter over Content-Type and
// falls back to YAML.
func requestFormat(r *http.Request) (document.Format, error) {
	if f := r.URL.Query().Get("format"); f != "" {
		return document.ParseFormat(f)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if f, err := document.ParseFormat(ct); err == nil {
			return f, nil
		}
	}
	return document.FormatYAML, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "id", RequestID(r.Context()), "err", err)
	} else {
		s.logger.Warn("render rejected", "id", RequestID(r.Context()), "err", err)
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, ErrorResponse{
		Code:      string(code),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput, errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeRootType, errors.ErrCodeRootInvocation, errors.ErrCodeRecursionLimit:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ariel/pkg/cache"
	"github.com/matzehuels/ariel/pkg/observability"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

const checkoutDoc = `
direction: LR
title: Checkout
children:
  - component: Circle
    props: {id: start}
    text: Start
  - component: Rectangle
    props: {id: pay, label: Pay}
  - component: Arrow
    props: {from: start, to: pay}
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
	t.Cleanup(func() { runner.Close() })
	return New(runner, Options{Logger: logger})
}

func do(t *testing.T, s *Server, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRenderText(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/render", "application/yaml", checkoutDoc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := "flowchart LR\n%% title Checkout\nstart((Start))\npay[Pay]\nstart --> pay"
	if got := rec.Body.String(); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderMarkdown(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/render?output=markdown", "", checkoutDoc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "# Checkout\n```mermaid\nflowchart LR\n") {
		t.Errorf("body = %q", body)
	}
}

func TestRenderFormats(t *testing.T) {
	jsonDoc := `{"title": "J", "children": [{"component": "Hexagon", "props": {"id": "h"}, "text": "Hex"}]}`
	tomlDoc := "title = \"T\"\n[[children]]\ncomponent = \"Diamond\"\nprops = { id = \"d\", label = \"D\" }\n"

	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		want        string
	}{
		{"json by header", "/render", "application/json", jsonDoc, "\nh[Hex]"},
		{"json by query", "/render?format=json", "text/plain", jsonDoc, "\nh[Hex]"},
		{"toml by query", "/render?format=toml", "", tomlDoc, "\nd{D}"},
		{"query wins", "/render?format=toml", "application/json", tomlDoc, "\nd{D}"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, tt.contentType, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body = %q, want line %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	doc := checkoutDoc + `  - component: Arrow
    props: {from: pay}
`
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/render/json", "", doc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(resp.Diagram, "flowchart LR\n") {
		t.Errorf("diagram = %q", resp.Diagram)
	}
	if resp.Title != "Checkout" {
		t.Errorf("title = %q", resp.Title)
	}
	if resp.Stats.NodeCount != 2 || resp.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v", resp.Stats)
	}
	if len(resp.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v, want 1", resp.Diagnostics)
	}
	if d := resp.Diagnostics[0]; d.Code != "COMPONENT_INVOCATION" || d.Component != "Arrow" {
		t.Errorf("diagnostic = %+v", d)
	}
	if resp.GraphHash == "" {
		t.Error("graph_hash is empty")
	}
}

func TestRenderCached(t *testing.T) {
	s := newTestServer(t)
	for i, want := range []bool{false, true} {
		rec := do(t, s, http.MethodPost, "/render/json", "", checkoutDoc)
		var resp RenderResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Cached != want {
			t.Errorf("request %d: cached = %v, want %v", i, resp.Cached, want)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{"bad yaml", "/render", "children: [unclosed", http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad format", "/render?format=xml", checkoutDoc, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad output", "/render?output=svg", checkoutDoc, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad kind", "/render", "kind: pie\n", http.StatusUnprocessableEntity, "ROOT_INVOCATION"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, "", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
			if resp.RequestID == "" {
				t.Error("request_id is empty")
			}
		})
	}
}

func TestBodyLimit(t *testing.T) {
	logger := log.New(io.Discard)
	s := New(pipeline.NewRunner(nil, nil, logger), Options{Logger: logger, MaxBodyBytes: 16})
	rec := do(t, s, http.MethodPost, "/render", "", checkoutDoc)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "", "")
	if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("generated id = %q, want a uuid", id)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if id := rec.Header().Get(RequestIDHeader); id != "abc-123" {
		t.Errorf("echoed id = %q", id)
	}
}

type recordingHTTPHooks struct {
	requests  int
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string) { h.requests++ }

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.responses = append(h.responses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	s := newTestServer(t)
	do(t, s, http.MethodGet, "/healthz", "", "")
	do(t, s, http.MethodPost, "/render", "", "kind: pie\n")

	if hooks.requests != 2 {
		t.Errorf("requests = %d, want 2", hooks.requests)
	}
	if len(hooks.responses) != 2 || hooks.responses[0] != 200 || hooks.responses[1] != 422 {
		t.Errorf("responses = %v, want [200 422]", hooks.responses)
	}
}

package api

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/reconanalytics/docgen/internal/config"
	"github.com/reconanalytics/docgen/internal/generate"
	"github.com/reconanalytics/docgen/internal/markdown"
	"github.com/reconanalytics/docgen/internal/store"
)

func newTestServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		Port:            "8080",
		APIKey:          apiKey,
		OutputDir:       st.Dir(),
		BaseURL:         "http://docs.example.com",
		MaxRequestBytes: 1 << 20,
		RetentionMaxAge: 24 * time.Hour,
	}
	gen := generate.New(st, nil, "", log)
	return NewServer(gen, st, markdown.DefaultPolicy(), log, cfg)
}

func postJSON(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestAuth(t *testing.T) {
	srv := newTestServer(t, "topsecret")
	body := `{"markdown":"# Doc\n\n## Section\n\nText."}`

	rec := postJSON(t, srv, "/api/preview", body)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/preview", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with bad token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/preview", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer topsecret")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with valid token, got %d", rec.Code)
	}
}

func TestAuth_DisabledWhenKeyEmpty(t *testing.T) {
	srv := newTestServer(t, "")
	rec := postJSON(t, srv, "/api/preview", `{"markdown":"hello"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("expected open access with empty key, got %d", rec.Code)
	}
}

func TestGenerateMarkdown(t *testing.T) {
	srv := newTestServer(t, "")
	body := `{"markdown":"# Market Report\n\n## 2. Market Share\n\n| Provider | Change |\n|---|---|\n| T-Mobile | +7.6pp |\n","author":"Analyst"}`

	rec := postJSON(t, srv, "/api/generate/markdown", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp documentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if !resp.Success || resp.Filename == "" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if !strings.HasPrefix(resp.DownloadURL, "http://docs.example.com/download/") {
		t.Errorf("unexpected download url %q", resp.DownloadURL)
	}

	// The generated file is downloadable and is a zip package.
	req := httptest.NewRequest(http.MethodGet, "/download/"+resp.Filename, nil)
	dl := httptest.NewRecorder()
	srv.ServeHTTP(dl, req)
	if dl.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", dl.Code)
	}
	if ct := dl.Header().Get("Content-Type"); ct != docxContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	data := dl.Body.Bytes()
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Errorf("download is not a package: %v", err)
	}
}

func TestGenerateMarkdown_ReturnBase64(t *testing.T) {
	srv := newTestServer(t, "")
	body := `{"markdown":"# Inline\n\n## Notes\n\nText."}`

	rec := postJSON(t, srv, "/api/generate/markdown?return_base64=true", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp documentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.FileBase64 == "" {
		t.Fatal("missing file_base64 payload")
	}
	data, err := base64.StdEncoding.DecodeString(resp.FileBase64)
	if err != nil {
		t.Fatalf("file_base64 does not decode: %v", err)
	}
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Errorf("inlined file is not a package: %v", err)
	}
}

func TestGenerateJSON(t *testing.T) {
	srv := newTestServer(t, "")
	body := `{
		"title": "Rhode Island Market Analysis",
		"sections": [{
			"title": "2. Market Share",
			"content": [
				{"type": "paragraph", "text": "Shares shifted **sharply**."},
				{"type": "table", "table": {
					"caption": "Share Trend",
					"headers": ["Provider", "Change"],
					"rows": [["T-Mobile", "+7.6pp"]],
					"numeric_columns": [1],
					"highlights": [{"row": 0, "col": 1, "type": "positive"}]
				}}
			]
		}]
	}`

	rec := postJSON(t, srv, "/api/generate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp documentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestGenerateJSON_BadRequests(t *testing.T) {
	srv := newTestServer(t, "")

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing title", `{"sections":[]}`},
		{"unknown content type", `{"title":"X","sections":[{"title":"S","content":[{"type":"video"}]}]}`},
		{"bad logo", `{"title":"X","logo_base64":"!!","sections":[]}`},
		{"ragged table", `{"title":"X","sections":[{"title":"S","content":[{"type":"table","table":{"headers":["A","B"],"rows":[["only"]]}}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, srv, "/api/generate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestPreview(t *testing.T) {
	srv := newTestServer(t, "")
	body := `{"markdown":"## Table Demo\n\n| A | B |\n|---|---|\n| 1 | 2 |\n"}`

	rec := postJSON(t, srv, "/api/preview", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp["html"], "<table>") {
		t.Errorf("expected table markup in preview, got %q", resp["html"])
	}
}

func TestDownload_NotFound(t *testing.T) {
	srv := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/download/missing.docx", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCleanup(t *testing.T) {
	srv := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodDelete, "/api/cleanup?max_age_hours=1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if _, ok := resp["deleted_count"]; !ok {
		t.Errorf("missing deleted_count in %v", resp)
	}
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var previewMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// handlePreview converts markdown to HTML so callers can inspect content
// before committing to a full document build.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBytes)

	var req markdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Markdown == "" {
		jsonError(w, "markdown is required", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := previewMarkdown.Convert([]byte(req.Markdown), &buf); err != nil {
		jsonError(w, "render preview: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"html": buf.String()})
}

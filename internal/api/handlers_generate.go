package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/reconanalytics/docgen/internal/docx"
	"github.com/reconanalytics/docgen/internal/generate"
	"github.com/reconanalytics/docgen/internal/markdown"
	"github.com/reconanalytics/docgen/internal/model"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBytes)

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		jsonError(w, "title is required", http.StatusBadRequest)
		return
	}

	doc, err := req.toModel()
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.respondGenerated(w, r, doc)
}

func (s *Server) handleGenerateMarkdown(w http.ResponseWriter, r *http.Request) {
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

	doc := markdown.Parse(req.Markdown, markdown.Options{
		TitleOverride: req.Title,
		Author:        req.Author,
		Date:          req.Date,
		IncludeTOC:    req.IncludeTOC == nil || *req.IncludeTOC,
	}, s.policy)

	if req.LogoBase64 != "" {
		logo, err := generate.DecodeImage(req.LogoBase64)
		if err != nil {
			jsonError(w, "logo: "+err.Error(), http.StatusBadRequest)
			return
		}
		doc.Logo = logo
	}

	s.respondGenerated(w, r, doc)
}

// respondGenerated runs the build and writes the shared response shape. The
// ?return_base64=true query flag inlines the package bytes in the response.
func (s *Server) respondGenerated(w http.ResponseWriter, r *http.Request, doc *model.Document) {
	filename, err := s.gen.Generate(doc)
	if err != nil {
		s.log.Error("generation failed", "error", err)
		status := http.StatusInternalServerError
		if isRequestError(err) {
			status = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(documentResponse{Success: false, Error: err.Error()})
		return
	}

	resp := documentResponse{
		Success:     true,
		Filename:    filename,
		DownloadURL: fmt.Sprintf("%s/download/%s", s.cfg.BaseURL, filename),
	}
	if r.URL.Query().Get("return_base64") == "true" {
		data, err := s.store.Read(filename)
		if err != nil {
			jsonError(w, "read generated file: "+err.Error(), http.StatusInternalServerError)
			return
		}
		resp.FileBase64 = base64.StdEncoding.EncodeToString(data)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// isRequestError reports whether a generation failure traces back to bad
// request content rather than a server fault.
func isRequestError(err error) bool {
	return errors.Is(err, docx.ErrNoTitle) ||
		errors.Is(err, docx.ErrTableGeometry) ||
		errors.Is(err, docx.ErrImageMissing) ||
		errors.Is(err, docx.ErrImageDecode) ||
		errors.Is(err, generate.ErrBadImageData)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/reconanalytics/docgen/internal/store"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := store.SanitizeFilename(chi.URLParam(r, "filename"))
	data, err := s.store.Read(filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "file not found", http.StatusNotFound)
			return
		}
		s.log.Error("download failed", "filename", filename, "error", err)
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	maxAge := s.cfg.RetentionMaxAge
	if v := r.URL.Query().Get("max_age_hours"); v != "" {
		if d, err := time.ParseDuration(v + "h"); err == nil && d > 0 {
			maxAge = d
		}
	}

	deleted, err := s.store.Cleanup(maxAge)
	if err != nil {
		s.log.Error("cleanup failed", "error", err)
		jsonError(w, "cleanup failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"deleted_count": deleted,
		"max_age_hours": maxAge.Hours(),
	})
}

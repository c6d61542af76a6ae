// Package generate orchestrates one document build: resolve the footer
// logo, render the package, and persist it for download.
package generate

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reconanalytics/docgen/internal/docx"
	"github.com/reconanalytics/docgen/internal/model"
	"github.com/reconanalytics/docgen/internal/store"
)

// ErrBadImageData reports base64 or data-URL content that does not decode.
var ErrBadImageData = errors.New("invalid base64 image data")

// Generator builds documents into the output store.
type Generator struct {
	store       *store.Store
	defaultLogo []byte
	siteURL     string
	log         *slog.Logger
}

// New returns a generator. defaultLogo may be nil (documents then render
// without footer imagery unless the request carries its own logo); siteURL
// may be empty to keep the renderer default.
func New(st *store.Store, defaultLogo []byte, siteURL string, log *slog.Logger) *Generator {
	return &Generator{store: st, defaultLogo: defaultLogo, siteURL: siteURL, log: log}
}

// Generate renders doc and saves the package, returning the stored
// filename. Each call owns its renderer, so concurrent generates never
// share caption counters.
func (g *Generator) Generate(doc *model.Document) (string, error) {
	if doc.Logo == nil {
		doc.Logo = g.defaultLogo
	}

	r := docx.NewRenderer()
	if g.siteURL != "" {
		r.SiteURL = g.siteURL
	}
	data, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	filename := Filename(doc.Title)
	if _, err := g.store.Save(filename, data); err != nil {
		return "", err
	}
	g.log.Info("document generated", "filename", filename, "bytes", len(data), "sections", len(doc.Sections))
	return filename, nil
}

// Filename derives a safe output name from the document title plus a short
// random suffix.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if len(name) > 50 {
		name = name[:50]
	}
	if name == "" {
		name = "document"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return name + "_" + suffix + ".docx"
}

// DecodeImage decodes a base64 payload, accepting bare base64 or a data URL
// ("data:image/png;base64,...").
func DecodeImage(encoded string) ([]byte, error) {
	if strings.TrimSpace(encoded) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrBadImageData)
	}
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImageData, err)
	}
	return data, nil
}

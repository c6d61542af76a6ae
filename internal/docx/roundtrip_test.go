package docx

import (
	"bytes"
	"strings"
	"testing"

	godocx "github.com/fumiama/go-docx"

	"github.com/reconanalytics/docgen/internal/model"
)

// Round-trip check: a generated package must be readable by an independent
// WordprocessingML reader, with heading styles and body text intact.
func TestRender_ReadBack(t *testing.T) {
	doc := &model.Document{
		Title:    "Rhode Island Market Analysis",
		Subtitle: "3-Year Market Share Trends",
		Author:   "Roger Entner",
		Sections: []model.Section{{
			Title: "1. Executive Summary", Level: 2,
			Content: []model.Content{
				model.Paragraph{Text: "T-Mobile has executed a dramatic takeover."},
			},
		}},
	}

	data, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := godocx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("generated package does not parse: %v", err)
	}

	var titleStyle string
	texts := map[string]bool{}
	for _, item := range parsed.Document.Body.Items {
		para, ok := item.(*godocx.Paragraph)
		if !ok {
			continue
		}
		var buf strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*godocx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if txt, ok := rc.(*godocx.Text); ok {
					buf.WriteString(txt.Text)
				}
			}
		}
		text := strings.TrimSpace(buf.String())
		if text == "" {
			continue
		}
		texts[text] = true
		if text == "RHODE ISLAND MARKET ANALYSIS" && para.Properties != nil && para.Properties.Style != nil {
			titleStyle = para.Properties.Style.Val
		}
	}

	for _, want := range []string{
		"RHODE ISLAND MARKET ANALYSIS",
		"3-Year Market Share Trends",
		"By: Roger Entner",
		"1. Executive Summary",
		"T-Mobile has executed a dramatic takeover.",
	} {
		if !texts[want] {
			t.Errorf("missing paragraph %q in read-back", want)
		}
	}
	if titleStyle != "Heading1" {
		t.Errorf("expected Heading1 title style, got %q", titleStyle)
	}
}

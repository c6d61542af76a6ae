package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reconanalytics/docgen/internal/model"
)

const marketReport = `# Rhode Island Market Analysis

## 1. Executive Summary

T-Mobile has executed a dramatic takeover of Rhode Island wireless.

## 2. Market Share

### 2.1 Wireless Market

Table 1: Rhode Island Wireless Market Share Trend

| Provider | 2023 | 2024 | 2025 | Change |
|----------|------|------|------|--------|
| T-Mobile | 24.8% | 29.3% | 32.4% | +7.6pp |
| Verizon | 42.4% | 36.2% | 27.3% | -15.1pp |
`

func TestParse_FullDocument(t *testing.T) {
	doc := Parse(marketReport, Options{Author: "Analyst", IncludeTOC: true}, DefaultPolicy())

	if doc.Title != "Rhode Island Market Analysis" {
		t.Errorf("expected H1 title, got %q", doc.Title)
	}
	if doc.Author != "Analyst" {
		t.Errorf("expected author passthrough, got %q", doc.Author)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}

	summary := doc.Sections[0]
	if summary.Title != "1. Executive Summary" || summary.Level != 2 {
		t.Errorf("unexpected first section: %+v", summary)
	}
	if len(summary.Content) != 1 {
		t.Fatalf("expected 1 content item in summary, got %d", len(summary.Content))
	}
	para, ok := summary.Content[0].(model.Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", summary.Content[0])
	}
	if !strings.Contains(para.Text, "dramatic takeover") {
		t.Errorf("unexpected paragraph text %q", para.Text)
	}

	market := doc.Sections[1]
	if len(market.Content) != 2 {
		t.Fatalf("expected subsection + table, got %d items", len(market.Content))
	}
	if sub, ok := market.Content[0].(model.Subsection); !ok || sub.Title != "2.1 Wireless Market" {
		t.Errorf("unexpected subsection: %+v", market.Content[0])
	}
	tbl, ok := market.Content[1].(*model.Table)
	if !ok {
		t.Fatalf("expected table, got %T", market.Content[1])
	}
	if tbl.Caption != "Rhode Island Wireless Market Share Trend" {
		t.Errorf("caption line not attached, got %q", tbl.Caption)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(tbl.Rows))
	}
	if !reflect.DeepEqual(tbl.NumericColumns, []int{1, 2, 3, 4}) {
		t.Errorf("expected numeric columns 1-4, got %v", tbl.NumericColumns)
	}

	// "Market Share" is highlight-enabled under the default policy.
	wantHighlights := map[model.CellRef]model.HighlightKind{
		{Row: 0, Col: 4}: model.HighlightPositive,
		{Row: 1, Col: 4}: model.HighlightNegative,
	}
	if !reflect.DeepEqual(tbl.Highlights, wantHighlights) {
		t.Errorf("expected highlights %v, got %v", wantHighlights, tbl.Highlights)
	}
}

func TestParse_ProseSectionConvertsTables(t *testing.T) {
	input := `## Strategic Shifts

| Company | Direction | Detail |
|---------|-----------|--------|
| **T-Mobile** | Expanding | Fixed wireless push |
| Verizon | Retrenching | |
`
	doc := Parse(input, Options{}, DefaultPolicy())

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	content := doc.Sections[0].Content
	if len(content) != 2 {
		t.Fatalf("expected 2 prose paragraphs, got %d items", len(content))
	}
	for _, item := range content {
		if _, ok := item.(*model.Table); ok {
			t.Fatal("prose section rendered a table")
		}
	}
	first := content[0].(model.Paragraph)
	if !strings.HasPrefix(first.Text, "**T-Mobile**") {
		t.Errorf("expected bolded label, got %q", first.Text)
	}
	if !strings.Contains(first.Text, "Direction: Expanding") || !strings.Contains(first.Text, "Detail: Fixed wireless push") {
		t.Errorf("expected header: value fragments, got %q", first.Text)
	}
	second := content[1].(model.Paragraph)
	if strings.Contains(second.Text, "Detail:") {
		t.Errorf("empty cell should be skipped, got %q", second.Text)
	}
}

func TestParse_CaptionParagraphBeforeTable(t *testing.T) {
	input := `## Financial Performance

**Quarterly revenue by carrier**
| Carrier | Q1 |
|---------|----|
| AT&T | $30.0B |
`
	doc := Parse(input, Options{}, DefaultPolicy())
	content := doc.Sections[0].Content
	if len(content) != 1 {
		t.Fatalf("expected caption folded into table, got %d items", len(content))
	}
	tbl := content[0].(*model.Table)
	if tbl.Caption != "Quarterly revenue by carrier" {
		t.Errorf("expected markers stripped from caption, got %q", tbl.Caption)
	}
}

func TestParse_ShortTableBlockDiscarded(t *testing.T) {
	input := `## Data

| Only | Header |
|------|--------|

After the stub.
`
	doc := Parse(input, Options{}, DefaultPolicy())
	content := doc.Sections[0].Content
	if len(content) != 1 {
		t.Fatalf("expected only trailing paragraph, got %d items", len(content))
	}
	if p, ok := content[0].(model.Paragraph); !ok || p.Text != "After the stub." {
		t.Errorf("unexpected content: %+v", content[0])
	}
}

func TestParse_TitleFallbackAndOverride(t *testing.T) {
	doc := Parse("plain text only", Options{}, DefaultPolicy())
	if doc.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", doc.Title)
	}

	doc = Parse("# From Heading", Options{TitleOverride: "From Caller"}, DefaultPolicy())
	if doc.Title != "From Caller" {
		t.Errorf("override should win, got %q", doc.Title)
	}
}

func TestParse_FullLineEmphasis(t *testing.T) {
	input := `## Notes

**All bold line**
*All italic line*
Plain line.
`
	doc := Parse(input, Options{}, DefaultPolicy())
	content := doc.Sections[0].Content
	if len(content) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(content))
	}

	bold := content[0].(model.Paragraph)
	if !bold.Bold || bold.Italic || bold.Text != "All bold line" {
		t.Errorf("unexpected bold paragraph: %+v", bold)
	}
	italic := content[1].(model.Paragraph)
	if italic.Bold || !italic.Italic || italic.Text != "All italic line" {
		t.Errorf("unexpected italic paragraph: %+v", italic)
	}
	plain := content[2].(model.Paragraph)
	if plain.Bold || plain.Italic {
		t.Errorf("unexpected emphasis on plain line: %+v", plain)
	}
}

func TestParse_MinorHeading(t *testing.T) {
	input := "## Section\n\n#### Key Observation\n\nBody.\n"
	doc := Parse(input, Options{}, DefaultPolicy())
	content := doc.Sections[0].Content
	if h, ok := content[0].(model.MinorHeading); !ok || h.Title != "Key Observation" {
		t.Errorf("expected minor heading, got %+v", content[0])
	}
}

func TestParse_Deterministic(t *testing.T) {
	a := Parse(marketReport, Options{IncludeTOC: true}, DefaultPolicy())
	b := Parse(marketReport, Options{IncludeTOC: true}, DefaultPolicy())
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated parses of identical input differ")
	}
}

func TestStripInlineMarkers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic*", "bold and italic"},
		{"no markers", "no markers"},
		{"**label** — Detail: x", "label — Detail: x"},
	}
	for _, tt := range tests {
		if got := StripInlineMarkers(tt.in); got != tt.want {
			t.Errorf("StripInlineMarkers(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

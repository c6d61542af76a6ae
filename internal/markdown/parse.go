// Package markdown converts a practical, line-oriented markdown dialect into
// the content model. The parser never fails: unrecognized constructs degrade
// to plain paragraphs and a missing title falls back to a placeholder.
package markdown

import (
	"regexp"
	"strings"

	"github.com/reconanalytics/docgen/internal/model"
)

// DefaultTitle is used when neither the markdown nor the caller supplies a
// document title.
const DefaultTitle = "Untitled Document"

// Options carry caller-supplied document metadata into a parse.
type Options struct {
	TitleOverride string // wins over any # heading in the text
	Author        string
	Date          string
	IncludeTOC    bool
}

// captionLineRe matches dedicated caption lines like "Table 3: Results".
var captionLineRe = regexp.MustCompile(`(?i)^(table|figure|chart)\s+\d+:\s*(.+)$`)

// parseState is the explicit context threaded through the single forward
// pass. No parser state lives outside this struct, which keeps Parse
// re-entrant.
type parseState struct {
	sectionName    string
	subsectionName string
	pendingCaption string
	section        *model.Section
	content        []model.Content
	sections       []model.Section
}

func (st *parseState) flushSection() {
	if st.section != nil {
		st.section.Content = st.content
		st.sections = append(st.sections, *st.section)
	}
	st.section = nil
	st.content = nil
}

// Parse converts markdown text into a Document under the given policy.
func Parse(text string, opts Options, pol Policy) *model.Document {
	lines := strings.Split(text, "\n")
	title := opts.TitleOverride
	st := &parseState{}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		// H1: document title, first occurrence wins unless overridden.
		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
			if title == "" {
				title = strings.TrimSpace(line[2:])
			}
			continue
		}

		// H2: close the previous section, open a new one.
		if strings.HasPrefix(line, "## ") {
			st.flushSection()
			st.sectionName = strings.TrimSpace(line[3:])
			st.subsectionName = ""
			st.section = &model.Section{Title: st.sectionName, Level: 2}
			continue
		}

		// H3: subsection heading within the current section.
		if strings.HasPrefix(line, "### ") {
			st.subsectionName = strings.TrimSpace(line[4:])
			st.content = append(st.content, model.Subsection{Title: st.subsectionName})
			continue
		}

		// H4: minor heading; does not affect section-name tracking.
		if strings.HasPrefix(line, "#### ") {
			st.content = append(st.content, model.MinorHeading{Title: strings.TrimSpace(line[5:])})
			continue
		}

		// Table block: a contiguous run of lines starting with "|".
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			var block []string
			for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "|") {
				block = append(block, strings.TrimSpace(lines[i]))
				i++
			}
			i-- // loop increment re-advances past the block
			st.consumeTableBlock(block, pol)
			continue
		}

		// Dedicated caption line, e.g. "Table 1: Market Share Trend".
		if m := captionLineRe.FindStringSubmatch(line); m != nil {
			st.pendingCaption = strings.TrimSpace(m[2])
			continue
		}

		// Anything else is a paragraph. Full-line bold is tested before
		// full-line italic, so a line wrapped in ** is never italic.
		text := line
		bold := strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) >= 4
		italic := false
		if bold {
			text = strings.TrimSuffix(strings.TrimPrefix(text, "**"), "**")
		} else if strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*") && len(line) >= 2 {
			italic = true
			text = strings.TrimSuffix(strings.TrimPrefix(text, "*"), "*")
		}

		// Caption-before-table heuristic: a paragraph immediately followed
		// by a table block becomes that table's caption instead of content.
		// Only the caption copy has its inline markers stripped; stored
		// paragraph text keeps them for run splitting at render time.
		if i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), "|") {
			st.pendingCaption = StripInlineMarkers(text)
			continue
		}

		st.content = append(st.content, model.Paragraph{Text: text, Bold: bold, Italic: italic})
	}

	st.flushSection()

	if title == "" {
		title = DefaultTitle
	}

	return &model.Document{
		Title:      title,
		Author:     opts.Author,
		Date:       opts.Date,
		IncludeTOC: opts.IncludeTOC,
		Sections:   st.sections,
	}
}

// consumeTableBlock resolves a collected table block against the policy and
// appends the resulting content items. Blocks too short to hold a header,
// separator and at least one data row are dropped silently.
func (st *parseState) consumeTableBlock(block []string, pol Policy) {
	if len(block) < 3 {
		return
	}

	if pol.IsProse(st.sectionName, st.subsectionName) {
		st.content = append(st.content, tableBlockToProse(block)...)
		// Captions are table-only.
		st.pendingCaption = ""
		return
	}

	tbl := parseTableBlock(block, pol.HighlightEnabled(st.sectionName, st.subsectionName))
	if tbl == nil {
		return
	}
	if st.pendingCaption != "" {
		tbl.Caption = st.pendingCaption
		st.pendingCaption = ""
	}
	st.content = append(st.content, tbl)
}

var (
	boldMarkerRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicMarkerRe = regexp.MustCompile(`\*(.+?)\*`)
)

// StripInlineMarkers removes **bold** and *italic* markers, keeping the
// wrapped text.
func StripInlineMarkers(s string) string {
	s = boldMarkerRe.ReplaceAllString(s, "$1")
	return italicMarkerRe.ReplaceAllString(s, "$1")
}

package markdown

import (
	"regexp"
	"sort"
	"strings"

	"github.com/reconanalytics/docgen/internal/model"
)

// numericCellRe decides whether a cell looks like a number, percentage,
// currency amount or point change. A column is numeric if any of its cells
// match.
var numericCellRe = regexp.MustCompile(`^[-+]?[\d,.%$]+[%pp]*$`)

// parseTableBlock turns a pipe-delimited block (header row, separator row,
// data rows) into a Table. Returns nil when the block has no usable header.
func parseTableBlock(block []string, highlight bool) *model.Table {
	headers := splitRow(block[0])
	if len(headers) == 0 {
		return nil
	}

	var rows [][]string
	numericSet := map[int]bool{}
	highlights := map[model.CellRef]model.HighlightKind{}

	// block[1] is the dashed separator row.
	for rowIdx, line := range block[2:] {
		cells := splitRow(line)
		rows = append(rows, cells)

		for colIdx, cell := range cells {
			if numericCellRe.MatchString(strings.ReplaceAll(cell, " ", "")) {
				numericSet[colIdx] = true
			}
			if !highlight {
				continue
			}
			if kind, ok := highlightKind(cell); ok {
				highlights[model.CellRef{Row: rowIdx, Col: colIdx}] = kind
			}
		}
	}

	tbl := &model.Table{Headers: headers, Rows: rows}
	if len(numericSet) > 0 {
		for col := range numericSet {
			tbl.NumericColumns = append(tbl.NumericColumns, col)
		}
		sort.Ints(tbl.NumericColumns)
	}
	if len(highlights) > 0 {
		tbl.Highlights = highlights
	}
	return tbl
}

// highlightKind classifies a cell value for conditional shading: a signed
// prefix plus a "%" or "pp" marker. Unsigned or unit-less values get none.
func highlightKind(cell string) (model.HighlightKind, bool) {
	signed := strings.HasPrefix(cell, "+") || strings.HasPrefix(cell, "-")
	if !signed || !(strings.Contains(cell, "%") || strings.Contains(cell, "pp")) {
		return "", false
	}
	if strings.HasPrefix(cell, "+") {
		return model.HighlightPositive, true
	}
	return model.HighlightNegative, true
}

// tableBlockToProse converts each data row of a table block into a paragraph
// led by the bolded first cell, with the remaining cells rendered as
// "header: value" fragments.
func tableBlockToProse(block []string) []model.Content {
	headers := splitRow(block[0])
	var items []model.Content

	for _, line := range block[2:] {
		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}

		label := StripInlineMarkers(cells[0])
		var fragments []string
		for i := 1; i < len(cells) && i < len(headers); i++ {
			if cells[i] == "" {
				continue
			}
			fragments = append(fragments, headers[i]+": "+cells[i])
		}

		text := "**" + label + "**"
		if len(fragments) > 0 {
			text += " — " + strings.Join(fragments, "; ")
		}
		items = append(items, model.Paragraph{Text: text})
	}
	return items
}

// splitRow splits a pipe-delimited row into trimmed cells. Leading and
// trailing pipes are optional.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

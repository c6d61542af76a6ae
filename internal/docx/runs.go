package docx

import (
	"regexp"
	"strings"
)

// inlineRun is one formatted segment of paragraph text.
type inlineRun struct {
	text   string
	bold   bool
	italic bool
}

var inlineMarkerRe = regexp.MustCompile(`\*\*[^*]+?\*\*|\*[^*]+?\*`)

// splitInlineRuns splits text holding **bold** and *italic* markers into
// alternating literal/bold/italic runs, preserving order. A paragraph-level
// bold flag forces a single bold run and skips marker re-parsing entirely;
// a paragraph-level italic flag is applied as the base for literal and bold
// segments.
func splitInlineRuns(text string, baseBold, baseItalic bool) []inlineRun {
	if baseBold || !strings.Contains(text, "*") {
		return []inlineRun{{text: text, bold: baseBold, italic: baseItalic}}
	}

	var runs []inlineRun
	last := 0
	for _, loc := range inlineMarkerRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			runs = append(runs, inlineRun{text: text[last:loc[0]], italic: baseItalic})
		}
		token := text[loc[0]:loc[1]]
		if strings.HasPrefix(token, "**") {
			runs = append(runs, inlineRun{
				text:   strings.TrimSuffix(strings.TrimPrefix(token, "**"), "**"),
				bold:   true,
				italic: baseItalic,
			})
		} else {
			runs = append(runs, inlineRun{
				text:   strings.TrimSuffix(strings.TrimPrefix(token, "*"), "*"),
				italic: true,
			})
		}
		last = loc[1]
	}
	if last < len(text) {
		runs = append(runs, inlineRun{text: text[last:], italic: baseItalic})
	}
	if len(runs) == 0 {
		runs = []inlineRun{{text: text, italic: baseItalic}}
	}
	return runs
}

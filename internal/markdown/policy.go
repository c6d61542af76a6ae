package markdown

import "strings"

// Policy controls how table blocks are treated depending on which section or
// subsection they appear under. Matching is case-insensitive substring
// matching: the section name "Financial Performance Review" matches the key
// "financial performance".
type Policy struct {
	// ProseSections lists section-name keys whose tables are converted to
	// bolded-label paragraphs instead of grid tables.
	ProseSections []string `yaml:"proseSections"`

	// HighlightSections lists section-name keys whose tables get colored
	// cell backgrounds for signed percentage/point values.
	HighlightSections []string `yaml:"highlightSections"`
}

// DefaultPolicy returns the stock policy used when no policy file is
// configured.
func DefaultPolicy() Policy {
	return Policy{
		ProseSections: []string{
			"strategic shifts",
			"key takeaways",
			"recommendations",
		},
		HighlightSections: []string{
			"market share",
			"financial performance",
			"subscriber trends",
		},
	}
}

// IsProse reports whether a table under the given section/subsection names
// should be rendered as prose paragraphs.
func (p Policy) IsProse(sectionName, subsectionName string) bool {
	return matchAny(p.ProseSections, sectionName, subsectionName)
}

// HighlightEnabled reports whether tables under the given section/subsection
// names get conditional cell highlighting.
func (p Policy) HighlightEnabled(sectionName, subsectionName string) bool {
	return matchAny(p.HighlightSections, sectionName, subsectionName)
}

func matchAny(keys []string, names ...string) bool {
	for _, name := range names {
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		for _, key := range keys {
			if key == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(key)) {
				return true
			}
		}
	}
	return false
}

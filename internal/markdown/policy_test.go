package markdown

import "testing"

func TestPolicyMatching(t *testing.T) {
	pol := DefaultPolicy()

	tests := []struct {
		section    string
		subsection string
		prose      bool
		highlight  bool
	}{
		{"2. Market Share", "", false, true},
		{"3. Financial Performance Review", "", false, true},
		{"5. Strategic Shifts", "", true, false},
		{"Key Takeaways", "", true, false},
		{"1. Executive Summary", "", false, false},
		{"Appendix", "Subscriber Trends by State", false, true},
		{"", "", false, false},
	}
	for _, tt := range tests {
		if got := pol.IsProse(tt.section, tt.subsection); got != tt.prose {
			t.Errorf("IsProse(%q, %q) = %v, want %v", tt.section, tt.subsection, got, tt.prose)
		}
		if got := pol.HighlightEnabled(tt.section, tt.subsection); got != tt.highlight {
			t.Errorf("HighlightEnabled(%q, %q) = %v, want %v", tt.section, tt.subsection, got, tt.highlight)
		}
	}
}

func TestPolicyEmptyKeysNeverMatch(t *testing.T) {
	pol := Policy{ProseSections: []string{""}}
	if pol.IsProse("Any Section", "") {
		t.Error("empty key matched a section name")
	}
}

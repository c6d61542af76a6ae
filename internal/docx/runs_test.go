package docx

import (
	"reflect"
	"testing"
)

func TestSplitInlineRuns(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		baseBold   bool
		baseItalic bool
		want       []inlineRun
	}{
		{
			name: "plain text single run",
			text: "no markers here",
			want: []inlineRun{{text: "no markers here"}},
		},
		{
			name: "bold token mid-sentence",
			text: "a **big** jump",
			want: []inlineRun{
				{text: "a "},
				{text: "big", bold: true},
				{text: " jump"},
			},
		},
		{
			name: "italic token",
			text: "an *aside* here",
			want: []inlineRun{
				{text: "an "},
				{text: "aside", italic: true},
				{text: " here"},
			},
		},
		{
			name: "mixed tokens keep order",
			text: "**T-Mobile** gained *sharply*",
			want: []inlineRun{
				{text: "T-Mobile", bold: true},
				{text: " gained "},
				{text: "sharply", italic: true},
			},
		},
		{
			name:     "base bold forces single run",
			text:     "**nested** ignored",
			baseBold: true,
			want:     []inlineRun{{text: "**nested** ignored", bold: true}},
		},
		{
			name:       "base italic carries into bold tokens",
			text:       "plain **strong** tail",
			baseItalic: true,
			want: []inlineRun{
				{text: "plain ", italic: true},
				{text: "strong", bold: true, italic: true},
				{text: " tail", italic: true},
			},
		},
		{
			name:       "italic token overrides base italic without bold",
			text:       "*solo*",
			baseItalic: true,
			want:       []inlineRun{{text: "solo", italic: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitInlineRuns(tt.text, tt.baseBold, tt.baseItalic)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitInlineRuns(%q, %v, %v) = %+v, want %+v",
					tt.text, tt.baseBold, tt.baseItalic, got, tt.want)
			}
		})
	}
}

// Package model defines the in-memory content model for a generated report.
// A Document is built once, either by the markdown parser or directly from a
// structured request, consumed by exactly one render pass, then discarded.
package model

// Document is the root of the content model.
type Document struct {
	Title      string // required; the renderer upper-cases it
	Subtitle   string
	Author     string
	Date       string
	IncludeTOC bool
	Sections   []Section

	// Logo holds raw image bytes for the footer logo. Nil means no logo;
	// the renderer omits the image but still emits the footer.
	Logo []byte
}

// Section is a titled run of content. Level 2 is a section, 3 a subsection,
// 4 a minor heading. Levels 3 and 4 may also appear inside a section's
// content sequence as Subsection / MinorHeading items.
type Section struct {
	Title   string
	Level   int
	Content []Content
}

// Content is the closed set of items that can appear inside a section.
// The renderer switches exhaustively over these types; anything else is a
// contract violation and fails the render.
type Content interface {
	isContent()
}

// Paragraph is body text. Bold and Italic are paragraph-level defaults;
// Text may additionally carry inline **bold** and *italic* markers, which
// the renderer splits into runs. A paragraph-level Bold flag takes
// precedence over inline markers.
type Paragraph struct {
	Text   string
	Bold   bool
	Italic bool
}

// Subsection is a level-3 heading appearing inside a section.
type Subsection struct {
	Title string
}

// MinorHeading is a level-4 heading appearing inside a section.
type MinorHeading struct {
	Title string
}

// HighlightKind marks a table cell for conditional background shading.
type HighlightKind string

const (
	HighlightPositive HighlightKind = "positive"
	HighlightNegative HighlightKind = "negative"
)

// CellRef addresses a body cell: Row is 0-based excluding the header row,
// Col is 0-based.
type CellRef struct {
	Row int
	Col int
}

// Table is a grid with a header row. Every row must have exactly
// len(Headers) cells; the parser does not enforce this, the renderer does.
type Table struct {
	Caption        string // without number; numbering happens at render time
	Headers        []string
	Rows           [][]string
	NumericColumns []int                     // 0-based column indices to right-align
	Highlights     map[CellRef]HighlightKind // nil when highlighting is off
	ColumnWidths   []int                     // DXA; nil means equal widths
}

// Figure is an image with a caption.
type Figure struct {
	Description string
	Image       []byte
	WidthInches float64 // 0 means the default display width
}

// Chart is an image with a caption, numbered independently from figures.
type Chart struct {
	Description string
	Image       []byte
	WidthInches float64
}

func (Paragraph) isContent()    {}
func (Subsection) isContent()   {}
func (MinorHeading) isContent() {}
func (*Table) isContent()       {}
func (*Figure) isContent()      {}
func (*Chart) isContent()       {}

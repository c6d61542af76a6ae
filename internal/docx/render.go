// Package docx renders a content model into a paginated WordprocessingML
// package. The renderer emits field instructions for page numbers and the
// table of contents rather than computing values; the consuming viewer
// recomputes them on open.
package docx

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/reconanalytics/docgen/internal/model"
)

// DefaultSiteURL is the footer URL line when no override is configured.
// The trailing space matches the brand footer's right-edge alignment.
const DefaultSiteURL = "www.reconanalytics.com "

// Renderer turns one Document into package bytes. All state is local to the
// renderer value, so concurrent renders with separate renderers never share
// anything beyond the static style table.
type Renderer struct {
	// SiteURL is the right-aligned footer line.
	SiteURL string

	counters   map[string]int
	content    []any
	docRels    []relationship
	footerRels []relationship
	media      []mediaFile
	drawingID  int
}

type mediaFile struct {
	name string
	data []byte
}

// NewRenderer returns a renderer for a single render pass.
func NewRenderer() *Renderer {
	return &Renderer{SiteURL: DefaultSiteURL}
}

// reset clears render-local state so caption numbering restarts at 1 for
// every render pass.
func (r *Renderer) reset() {
	r.counters = map[string]int{}
	r.content = nil
	r.media = nil
	r.footerRels = nil
	r.drawingID = 0
	r.docRels = []relationship{
		{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
		{ID: "rId2", Type: relTypeHeader, Target: "header1.xml"},
		{ID: "rId3", Type: relTypeFooter, Target: "footer1.xml"},
	}
}

// Render produces the complete package for doc. It either returns a full
// package or an error; never a partial document.
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	if doc == nil || doc.Title == "" {
		return nil, ErrNoTitle
	}
	r.reset()

	r.addTitleBlock(doc)
	if doc.IncludeTOC {
		r.addTableOfContents()
	}
	for i := range doc.Sections {
		if err := r.addSection(&doc.Sections[i]); err != nil {
			return nil, err
		}
	}

	return r.assemble(doc)
}

func (r *Renderer) addTitleBlock(doc *model.Document) {
	r.content = append(r.content, styledPara("Heading1", strings.ToUpper(doc.Title)))
	if doc.Subtitle != "" {
		r.content = append(r.content, &paragraph{
			Runs: []*run{{Props: &runProps{Italic: &struct{}{}}, Content: []any{newText(doc.Subtitle)}}},
		})
	}
	if doc.Author != "" {
		r.content = append(r.content, plainPara("By: "+doc.Author))
	}
	if doc.Date != "" {
		r.content = append(r.content, plainPara(doc.Date))
	}
}

// addTableOfContents emits the TOC heading, the TOC field with a placeholder
// result, and a forced page break. The field instruction covers outline
// levels 1-3.
func (r *Renderer) addTableOfContents() {
	r.content = append(r.content, styledPara("Heading1", "Table of Contents"))
	r.content = append(r.content, &paragraph{
		Runs: []*run{fieldRun(
			` TOC \o "1-3" \h \z \u `,
			"Right-click and select 'Update Field' to generate Table of Contents",
		)},
	})
	r.content = append(r.content, &paragraph{
		Runs: []*run{{Content: []any{lineBreak{Type: "page"}}}},
	})
}

func (r *Renderer) addSection(sec *model.Section) error {
	r.content = append(r.content, sectionHeading(sec.Level, sec.Title))
	for _, item := range sec.Content {
		if err := r.addContent(item); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) addContent(item model.Content) error {
	switch c := item.(type) {
	case model.Paragraph:
		r.addParagraph(c)
	case model.Subsection:
		r.content = append(r.content, sectionHeading(3, c.Title))
	case model.MinorHeading:
		r.content = append(r.content, sectionHeading(4, c.Title))
	case *model.Table:
		return r.addTable(c)
	case *model.Figure:
		return r.addImage("Figure", c.Description, c.Image, c.WidthInches)
	case *model.Chart:
		return r.addImage("Chart", c.Description, c.Image, c.WidthInches)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownContent, item)
	}
	return nil
}

func (r *Renderer) addParagraph(p model.Paragraph) {
	para := &paragraph{}
	for _, ir := range splitInlineRuns(p.Text, p.Bold, p.Italic) {
		para.Runs = append(para.Runs, formattedRun(ir))
	}
	r.content = append(r.content, para)
}

// caption emits the auto-numbered caption paragraph for kind ("Table",
// "Figure" or "Chart") and returns the assigned number. Counters are
// per-render and per-kind, starting at 1 in first-occurrence order.
func (r *Renderer) caption(kind, description string) int {
	r.counters[kind]++
	n := r.counters[kind]
	after := 120
	r.content = append(r.content, &paragraph{
		Props: &paraProps{Spacing: &spacing{After: &after}},
		Runs: []*run{{
			Props:   &runProps{Bold: &struct{}{}},
			Content: []any{newText(fmt.Sprintf("%s %d: %s", kind, n, description))},
		}},
	})
	return n
}

func (r *Renderer) addTable(t *model.Table) error {
	cols := len(t.Headers)
	if cols == 0 {
		return fmt.Errorf("%w: %s has no header row", ErrTableGeometry, tableName(t, r.counters["Table"]+1))
	}
	for i, row := range t.Rows {
		if len(row) != cols {
			return fmt.Errorf("%w: %s row %d has %d cells, want %d",
				ErrTableGeometry, tableName(t, r.counters["Table"]+1), i, len(row), cols)
		}
	}

	if t.Caption != "" {
		r.caption("Table", t.Caption)
	}

	widths := t.ColumnWidths
	if len(widths) != cols {
		widths = make([]int, cols)
		for i := range widths {
			widths[i] = tableWidth / cols
		}
	}

	numeric := map[int]bool{}
	for _, col := range t.NumericColumns {
		numeric[col] = true
	}

	tbl := &table{
		Props: tblProps{
			W:  &widthAttr{W: tableWidth, Type: "dxa"},
			Jc: &valAttr{Val: "left"},
		},
	}
	for _, w := range widths {
		tbl.Grid.Cols = append(tbl.Grid.Cols, gridCol{W: w})
	}

	// Header row: dark fill, bold light text, repeated on every page the
	// table spans.
	headerRow := &tableRow{Props: &trProps{
		CantSplit: &valAttr{Val: "true"},
		TblHeader: &valAttr{Val: "true"},
	}}
	for col, h := range t.Headers {
		headerRow.Cells = append(headerRow.Cells, headerCell(h, widths[col], numeric[col]))
	}
	tbl.Rows = append(tbl.Rows, headerRow)

	for rowIdx, row := range t.Rows {
		tr := &tableRow{Props: &trProps{CantSplit: &valAttr{Val: "true"}}}
		for colIdx, value := range row {
			fill := ""
			switch t.Highlights[model.CellRef{Row: rowIdx, Col: colIdx}] {
			case model.HighlightPositive:
				fill = colorPositive
			case model.HighlightNegative:
				fill = colorNegative
			}
			tr.Cells = append(tr.Cells, bodyCell(value, widths[colIdx], numeric[colIdx], fill))
		}
		tbl.Rows = append(tbl.Rows, tr)
	}

	r.content = append(r.content, tbl, &paragraph{})
	return nil
}

func tableName(t *model.Table, nextNum int) string {
	if t.Caption != "" {
		return fmt.Sprintf("table %q", t.Caption)
	}
	return fmt.Sprintf("uncaptioned table %d", nextNum)
}

// addImage embeds a centered figure or chart at the requested display width,
// height implied by the source aspect ratio.
func (r *Renderer) addImage(kind, description string, data []byte, widthInches float64) error {
	lower := strings.ToLower(kind)
	if len(data) == 0 {
		return fmt.Errorf("%w: %s %q", ErrImageMissing, lower, description)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrImageDecode, lower, description, err)
	}

	n := r.caption(kind, description)

	if widthInches <= 0 {
		widthInches = defaultImageWidthInches
	}
	cx := int64(widthInches * emuPerInch)
	cy := cx * int64(cfg.Height) / int64(cfg.Width)

	r.drawingID++
	id := r.drawingID
	name := fmt.Sprintf("image%d.%s", id, mediaExt(format))
	relID := fmt.Sprintf("rId%d", len(r.docRels)+1)
	r.docRels = append(r.docRels, relationship{ID: relID, Type: relTypeImage, Target: "media/" + name})
	r.media = append(r.media, mediaFile{name: name, data: data})

	after := 0
	r.content = append(r.content, &paragraph{
		Props: &paraProps{Jc: &valAttr{Val: "center"}},
		Runs: []*run{{Content: []any{drawing{Inline: &inlineDrawing{
			Extent:  extent{CX: cx, CY: cy},
			DocPr:   docPr{ID: id, Name: fmt.Sprintf("%s %d", kind, n), Descr: description},
			FramePr: graphicFramePr{Locks: graphicFrameLocks{NoChangeAspect: 1}},
			Graphic: pictureGraphic(id, fmt.Sprintf("%s %d", kind, n), relID, cx, cy),
		}}}}},
	}, &paragraph{Props: &paraProps{Spacing: &spacing{After: &after}}})
	return nil
}

// assemble marshals every part and zips the package.
func (r *Renderer) assemble(doc *model.Document) ([]byte, error) {
	header, err := marshalPart(r.buildHeader())
	if err != nil {
		return nil, err
	}
	footer, err := marshalPart(r.buildFooter(doc.Logo))
	if err != nil {
		return nil, err
	}
	docXML, err := marshalPart(documentPart{
		XmlnsW: nsW, XmlnsR: nsR, XmlnsWP: nsWP, XmlnsA: nsA, XmlnsPic: nsPic,
		Body: docBody{
			Content: r.content,
			SectPr: sectPr{
				HeaderRef: &partRef{Type: "default", ID: "rId2"},
				FooterRef: &partRef{Type: "default", ID: "rId3"},
				PgSz:      pageSize{W: pageWidth, H: pageHeight},
				PgMar: pageMargins{
					Top: marginTop, Right: marginRight, Bottom: marginBottom,
					Left: marginLeft, Header: headerDistance, Footer: footerDistance,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	rootRels, err := rootRelsXML()
	if err != nil {
		return nil, err
	}
	docRels, err := relationshipsXML(r.docRels)
	if err != nil {
		return nil, err
	}

	parts := []zipPart{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", rootRels},
		{"docProps/core.xml", corePropsXML(doc.Title, doc.Author, time.Now())},
		{"docProps/app.xml", []byte(appPropsXML)},
		{"word/document.xml", docXML},
		{"word/_rels/document.xml.rels", docRels},
		{"word/styles.xml", stylesXML()},
		{"word/header1.xml", header},
		{"word/footer1.xml", footer},
	}
	if len(r.footerRels) > 0 {
		footerRels, err := relationshipsXML(r.footerRels)
		if err != nil {
			return nil, err
		}
		parts = append(parts, zipPart{"word/_rels/footer1.xml.rels", footerRels})
	}
	for _, m := range r.media {
		parts = append(parts, zipPart{"word/media/" + m.name, m.data})
	}

	return buildPackage(parts)
}

// buildHeader emits the right-aligned PAGE field with a literal "1" as the
// displayed placeholder text.
func (r *Renderer) buildHeader() headerPart {
	after := 0
	return headerPart{
		XmlnsW: nsW, XmlnsR: nsR,
		Content: []any{
			&paragraph{
				Props: &paraProps{Spacing: &spacing{After: &after}, Jc: &valAttr{Val: "right"}},
				Runs:  []*run{fieldRun(` PAGE   \* MERGEFORMAT `, "1")},
			},
			&paragraph{Props: &paraProps{Spacing: &spacing{After: &after}}},
		},
	}
}

// buildFooter emits the position-anchored logo (when present and decodable)
// followed by the right-aligned site URL line. A missing logo degrades to a
// footer without imagery.
func (r *Renderer) buildFooter(logo []byte) footerPart {
	after := 0
	before := 960
	ind := &indent{Right: footerIndentRight}

	logoPara := &paragraph{
		Props: &paraProps{Spacing: &spacing{After: &after}, Indent: ind, Jc: &valAttr{Val: "right"}},
	}
	if len(logo) > 0 {
		if _, format, err := image.DecodeConfig(bytes.NewReader(logo)); err == nil {
			name := "logo." + mediaExt(format)
			r.footerRels = append(r.footerRels,
				relationship{ID: "rId1", Type: relTypeImage, Target: "media/" + name})
			r.media = append(r.media, mediaFile{name: name, data: logo})
			logoPara.Runs = []*run{{Content: []any{drawing{Anchor: anchoredLogo("rId1")}}}}
		}
	}

	return footerPart{
		XmlnsW: nsW, XmlnsR: nsR, XmlnsWP: nsWP, XmlnsA: nsA, XmlnsPic: nsPic,
		Content: []any{
			logoPara,
			&paragraph{Props: &paraProps{
				Spacing: &spacing{Before: &before, After: &after}, Indent: ind, Jc: &valAttr{Val: "right"},
			}},
			&paragraph{
				Props: &paraProps{Spacing: &spacing{After: &after}, Indent: ind, Jc: &valAttr{Val: "right"}},
				Runs: []*run{{
					Props: &runProps{
						Bold:  &struct{}{},
						Color: &valAttr{Val: colorNavy},
						Sz:    &valAttr{Val: fmt.Sprint(sizeURL)},
						SzCs:  &valAttr{Val: fmt.Sprint(sizeURL)},
					},
					Content: []any{newText(r.SiteURL)},
				}},
			},
		},
	}
}

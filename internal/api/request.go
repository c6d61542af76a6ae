package api

import (
	"fmt"

	"github.com/reconanalytics/docgen/internal/generate"
	"github.com/reconanalytics/docgen/internal/model"
)

// Request DTOs mirror the JSON wire format: snake_case fields, a type
// discriminator per content item, base64 image payloads.

type documentRequest struct {
	Title      string           `json:"title"`
	Subtitle   string           `json:"subtitle,omitempty"`
	Author     string           `json:"author,omitempty"`
	Date       string           `json:"date,omitempty"`
	IncludeTOC *bool            `json:"include_toc,omitempty"`
	Sections   []sectionRequest `json:"sections"`
	LogoBase64 string           `json:"logo_base64,omitempty"`
}

type sectionRequest struct {
	Title   string           `json:"title"`
	Level   int              `json:"level,omitempty"`
	Content []contentRequest `json:"content"`
}

type contentRequest struct {
	Type   string         `json:"type"`
	Text   string         `json:"text,omitempty"`
	Bold   bool           `json:"bold,omitempty"`
	Italic bool           `json:"italic,omitempty"`
	Table  *tableRequest  `json:"table,omitempty"`
	Figure *figureRequest `json:"figure,omitempty"`
	Chart  *figureRequest `json:"chart,omitempty"`
}

type tableRequest struct {
	Caption        string             `json:"caption,omitempty"`
	Headers        []string           `json:"headers"`
	Rows           [][]string         `json:"rows"`
	NumericColumns []int              `json:"numeric_columns,omitempty"`
	Highlights     []highlightRequest `json:"highlights,omitempty"`
	ColumnWidths   []int              `json:"column_widths,omitempty"`
}

type highlightRequest struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Type string `json:"type"`
}

type figureRequest struct {
	Description string  `json:"description"`
	ImageBase64 string  `json:"image_base64"`
	WidthInches float64 `json:"width_inches,omitempty"`
}

type markdownRequest struct {
	Markdown   string `json:"markdown"`
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Date       string `json:"date,omitempty"`
	IncludeTOC *bool  `json:"include_toc,omitempty"`
	LogoBase64 string `json:"logo_base64,omitempty"`
}

type documentResponse struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url,omitempty"`
	FileBase64  string `json:"file_base64,omitempty"`
	Error       string `json:"error,omitempty"`
}

// toModel converts the wire request into the content model, decoding every
// base64 image payload along the way.
func (dr *documentRequest) toModel() (*model.Document, error) {
	doc := &model.Document{
		Title:      dr.Title,
		Subtitle:   dr.Subtitle,
		Author:     dr.Author,
		Date:       dr.Date,
		IncludeTOC: dr.IncludeTOC == nil || *dr.IncludeTOC,
	}

	if dr.LogoBase64 != "" {
		logo, err := generate.DecodeImage(dr.LogoBase64)
		if err != nil {
			return nil, fmt.Errorf("logo: %w", err)
		}
		doc.Logo = logo
	}

	for si, sr := range dr.Sections {
		sec := model.Section{Title: sr.Title, Level: sr.Level}
		if sec.Level == 0 {
			sec.Level = 2
		}
		for ci, cr := range sr.Content {
			item, err := cr.toModel()
			if err != nil {
				return nil, fmt.Errorf("section %d content %d: %w", si, ci, err)
			}
			sec.Content = append(sec.Content, item)
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc, nil
}

func (cr *contentRequest) toModel() (model.Content, error) {
	switch cr.Type {
	case "paragraph":
		return model.Paragraph{Text: cr.Text, Bold: cr.Bold, Italic: cr.Italic}, nil
	case "subsection":
		return model.Subsection{Title: cr.Text}, nil
	case "minor_heading":
		return model.MinorHeading{Title: cr.Text}, nil
	case "table":
		if cr.Table == nil {
			return nil, fmt.Errorf("table item has no table data")
		}
		return cr.Table.toModel(), nil
	case "figure":
		if cr.Figure == nil {
			return nil, fmt.Errorf("figure item has no figure data")
		}
		return cr.Figure.toFigure()
	case "chart":
		if cr.Chart == nil {
			return nil, fmt.Errorf("chart item has no chart data")
		}
		return cr.Chart.toChart()
	default:
		return nil, fmt.Errorf("unknown content type %q", cr.Type)
	}
}

func (tr *tableRequest) toModel() *model.Table {
	t := &model.Table{
		Caption:        tr.Caption,
		Headers:        tr.Headers,
		Rows:           tr.Rows,
		NumericColumns: tr.NumericColumns,
		ColumnWidths:   tr.ColumnWidths,
	}
	if len(tr.Highlights) > 0 {
		t.Highlights = make(map[model.CellRef]model.HighlightKind, len(tr.Highlights))
		for _, h := range tr.Highlights {
			t.Highlights[model.CellRef{Row: h.Row, Col: h.Col}] = model.HighlightKind(h.Type)
		}
	}
	return t
}

func (fr *figureRequest) toFigure() (model.Content, error) {
	img, err := generate.DecodeImage(fr.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("figure image: %w", err)
	}
	return &model.Figure{Description: fr.Description, Image: img, WidthInches: fr.WidthInches}, nil
}

func (fr *figureRequest) toChart() (model.Content, error) {
	img, err := generate.DecodeImage(fr.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("chart image: %w", err)
	}
	return &model.Chart{Description: fr.Description, Image: img, WidthInches: fr.WidthInches}, nil
}

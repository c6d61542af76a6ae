package docx

// Small constructors shared by the body, header and footer builders.

func newText(s string) text {
	return text{Space: "preserve", Value: s}
}

func plainPara(s string) *paragraph {
	return &paragraph{Runs: []*run{{Content: []any{newText(s)}}}}
}

func styledPara(style, s string) *paragraph {
	return &paragraph{
		Props: &paraProps{Style: &valAttr{Val: style}},
		Runs:  []*run{{Content: []any{newText(s)}}},
	}
}

// sectionHeading builds the heading paragraph for a heading level. Level-2
// headings carry the decorative bottom rule.
func sectionHeading(level int, title string) *paragraph {
	switch level {
	case 3:
		return styledPara("Heading3", title)
	case 4:
		return styledPara("Heading4", title)
	default:
		p := styledPara("Heading2", title)
		p.Props.Borders = &paraBorders{Bottom: &borderEdge{
			Val: "single", Sz: 12, Space: 6, Color: colorGrayText,
		}}
		return p
	}
}

// fieldRun emits a complete computed-field placeholder: begin, the field
// instruction, separator, the literal display text, end.
func fieldRun(instruction, placeholder string) *run {
	return &run{Content: []any{
		fldChar{Type: "begin"},
		instrText{Space: "preserve", Value: instruction},
		fldChar{Type: "separate"},
		newText(placeholder),
		fldChar{Type: "end"},
	}}
}

func formattedRun(ir inlineRun) *run {
	rn := &run{Content: []any{newText(ir.text)}}
	if ir.bold || ir.italic {
		rn.Props = &runProps{}
		if ir.bold {
			rn.Props.Bold = &struct{}{}
		}
		if ir.italic {
			rn.Props.Italic = &struct{}{}
		}
	}
	return rn
}

func cellAlignment(numeric bool) string {
	if numeric {
		return "right"
	}
	return "left"
}

func cellBorders(color string) *tcBorders {
	edge := borderEdge{Val: "single", Sz: 4, Space: 0, Color: color}
	return &tcBorders{Top: edge, Left: edge, Bottom: edge, Right: edge}
}

func headerCell(heading string, width int, numeric bool) *tableCell {
	after := 0
	return &tableCell{
		Props: &tcProps{
			W:       &widthAttr{W: width, Type: "dxa"},
			Borders: cellBorders(colorNavy),
			Shading: &shading{Val: "clear", Color: "auto", Fill: colorNavy},
		},
		Paras: []*paragraph{{
			Props: &paraProps{Spacing: &spacing{After: &after}, Jc: &valAttr{Val: cellAlignment(numeric)}},
			Runs: []*run{{
				Props:   &runProps{Bold: &struct{}{}, Color: &valAttr{Val: colorWhite}},
				Content: []any{newText(heading)},
			}},
		}},
	}
}

func bodyCell(value string, width int, numeric bool, fill string) *tableCell {
	after := 0
	props := &tcProps{
		W:       &widthAttr{W: width, Type: "dxa"},
		Borders: cellBorders(colorBorder),
	}
	if fill != "" {
		props.Shading = &shading{Val: "clear", Color: "auto", Fill: fill}
	}
	para := &paragraph{
		Props: &paraProps{Spacing: &spacing{After: &after}, Jc: &valAttr{Val: cellAlignment(numeric)}},
	}
	for _, ir := range splitInlineRuns(value, false, false) {
		para.Runs = append(para.Runs, formattedRun(ir))
	}
	return &tableCell{Props: props, Paras: []*paragraph{para}}
}

// pictureGraphic builds the a:graphic subtree shared by inline and anchored
// drawings.
func pictureGraphic(id int, name, relID string, cx, cy int64) graphic {
	return graphic{Data: graphicData{
		URI: nsPic,
		Pic: picture{
			NvPicPr:  nvPicPr{CNvPr: cNvPr{ID: id, Name: name}},
			BlipFill: blipFill{Blip: blip{Embed: relID}},
			SpPr: spPr{
				Xfrm: xfrm{Ext: extent{CX: cx, CY: cy}},
				Geom: prstGeom{Prst: "rect"},
			},
		},
	}}
}

// anchoredLogo positions the footer logo against the page itself, behind the
// document text, spanning the full page width at a fixed offset from the
// page top.
func anchoredLogo(relID string) *anchorDrawing {
	return &anchorDrawing{
		DistL: 114300, DistR: 114300,
		RelativeHeight: 251658240,
		BehindDoc:      1,
		LayoutInCell:   1,
		AllowOverlap:   1,
		PositionH:      anchorPosition{RelativeFrom: "page", PosOffset: 0},
		PositionV:      anchorPosition{RelativeFrom: "page", PosOffset: logoPosOffset},
		Extent:         extent{CX: logoExtentCX, CY: logoExtentCY},
		DocPr:          docPr{ID: 1000, Name: "Logo"},
		FramePr:        graphicFramePr{Locks: graphicFrameLocks{NoChangeAspect: 1}},
		Graphic:        pictureGraphic(1000, "Logo", relID, logoExtentCX, logoExtentCY),
	}
}

func mediaExt(format string) string {
	switch format {
	case "jpeg":
		return "jpeg"
	case "gif":
		return "gif"
	default:
		return "png"
	}
}

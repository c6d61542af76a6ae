package docx

import "encoding/xml"

// WordprocessingML element types used when marshaling package parts.
// Element names carry their namespace prefixes literally; the prefixes are
// declared once on each part's root element.

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
)

// documentPart is the root of word/document.xml.
type documentPart struct {
	XMLName  xml.Name `xml:"w:document"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`
	Body     docBody  `xml:"w:body"`
}

type docBody struct {
	Content []any
	SectPr  sectPr `xml:"w:sectPr"`
}

// headerPart is the root of word/header1.xml.
type headerPart struct {
	XMLName xml.Name `xml:"w:hdr"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Content []any
}

// footerPart is the root of word/footer1.xml.
type footerPart struct {
	XMLName  xml.Name `xml:"w:ftr"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`
	Content  []any
}

type sectPr struct {
	HeaderRef *partRef    `xml:"w:headerReference,omitempty"`
	FooterRef *partRef    `xml:"w:footerReference,omitempty"`
	PgSz      pageSize    `xml:"w:pgSz"`
	PgMar     pageMargins `xml:"w:pgMar"`
}

type partRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type pageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pageMargins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *paraProps `xml:"w:pPr,omitempty"`
	Runs    []*run
}

// paraProps fields follow the CT_PPr schema order.
type paraProps struct {
	Style   *valAttr     `xml:"w:pStyle,omitempty"`
	Borders *paraBorders `xml:"w:pBdr,omitempty"`
	Spacing *spacing     `xml:"w:spacing,omitempty"`
	Indent  *indent      `xml:"w:ind,omitempty"`
	Jc      *valAttr     `xml:"w:jc,omitempty"`
}

type valAttr struct {
	Val string `xml:"w:val,attr"`
}

type paraBorders struct {
	Bottom *borderEdge `xml:"w:bottom,omitempty"`
}

type borderEdge struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type spacing struct {
	Before *int `xml:"w:before,attr,omitempty"`
	After  *int `xml:"w:after,attr,omitempty"`
}

type indent struct {
	Right int `xml:"w:right,attr"`
}

type run struct {
	XMLName xml.Name  `xml:"w:r"`
	Props   *runProps `xml:"w:rPr,omitempty"`
	Content []any
}

// runProps fields follow the CT_RPr schema order.
type runProps struct {
	Fonts  *runFonts `xml:"w:rFonts,omitempty"`
	Bold   *struct{} `xml:"w:b,omitempty"`
	Italic *struct{} `xml:"w:i,omitempty"`
	Caps   *struct{} `xml:"w:caps,omitempty"`
	Color  *valAttr  `xml:"w:color,omitempty"`
	Sz     *valAttr  `xml:"w:sz,omitempty"`
	SzCs   *valAttr  `xml:"w:szCs,omitempty"`
}

type runFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type text struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type lineBreak struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

// fldChar and instrText implement computed-field placeholders: the viewer
// recomputes the field value from the instruction text on open.
type fldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

type instrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr"`
	Value   string   `xml:",chardata"`
}

type table struct {
	XMLName xml.Name `xml:"w:tbl"`
	Props   tblProps `xml:"w:tblPr"`
	Grid    tblGrid  `xml:"w:tblGrid"`
	Rows    []*tableRow
}

type tblProps struct {
	W  *widthAttr `xml:"w:tblW,omitempty"`
	Jc *valAttr   `xml:"w:jc,omitempty"`
}

type widthAttr struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tblGrid struct {
	Cols []gridCol
}

type gridCol struct {
	XMLName xml.Name `xml:"w:gridCol"`
	W       int      `xml:"w:w,attr"`
}

type tableRow struct {
	XMLName xml.Name `xml:"w:tr"`
	Props   *trProps `xml:"w:trPr,omitempty"`
	Cells   []*tableCell
}

type trProps struct {
	// CantSplit keeps the row on one page; TblHeader repeats the header
	// row atop every page the table spans. Both are required for
	// multi-page tables, not styling.
	CantSplit *valAttr `xml:"w:cantSplit,omitempty"`
	TblHeader *valAttr `xml:"w:tblHeader,omitempty"`
}

type tableCell struct {
	XMLName xml.Name `xml:"w:tc"`
	Props   *tcProps `xml:"w:tcPr,omitempty"`
	Paras   []*paragraph
}

// tcProps fields follow the CT_TcPr schema order: tcW, tcBorders, shd.
type tcProps struct {
	W       *widthAttr `xml:"w:tcW,omitempty"`
	Borders *tcBorders `xml:"w:tcBorders,omitempty"`
	Shading *shading   `xml:"w:shd,omitempty"`
}

type tcBorders struct {
	Top    borderEdge `xml:"w:top"`
	Left   borderEdge `xml:"w:left"`
	Bottom borderEdge `xml:"w:bottom"`
	Right  borderEdge `xml:"w:right"`
}

type shading struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

// Drawing structures for inline figures/charts and the anchored footer logo.

type drawing struct {
	XMLName xml.Name       `xml:"w:drawing"`
	Inline  *inlineDrawing `xml:"wp:inline,omitempty"`
	Anchor  *anchorDrawing `xml:"wp:anchor,omitempty"`
}

type inlineDrawing struct {
	DistT   int            `xml:"distT,attr"`
	DistB   int            `xml:"distB,attr"`
	DistL   int            `xml:"distL,attr"`
	DistR   int            `xml:"distR,attr"`
	Extent  extent         `xml:"wp:extent"`
	Effect  effectExtent   `xml:"wp:effectExtent"`
	DocPr   docPr          `xml:"wp:docPr"`
	FramePr graphicFramePr `xml:"wp:cNvGraphicFramePr"`
	Graphic graphic        `xml:"a:graphic"`
}

type anchorDrawing struct {
	DistT          int `xml:"distT,attr"`
	DistB          int `xml:"distB,attr"`
	DistL          int `xml:"distL,attr"`
	DistR          int `xml:"distR,attr"`
	SimplePosAttr  int `xml:"simplePos,attr"`
	RelativeHeight int `xml:"relativeHeight,attr"`
	BehindDoc      int `xml:"behindDoc,attr"`
	Locked         int `xml:"locked,attr"`
	LayoutInCell   int `xml:"layoutInCell,attr"`
	AllowOverlap   int `xml:"allowOverlap,attr"`

	SimplePos simplePos      `xml:"wp:simplePos"`
	PositionH anchorPosition `xml:"wp:positionH"`
	PositionV anchorPosition `xml:"wp:positionV"`
	Extent    extent         `xml:"wp:extent"`
	Effect    effectExtent   `xml:"wp:effectExtent"`
	WrapNone  struct{}       `xml:"wp:wrapNone"`
	DocPr     docPr          `xml:"wp:docPr"`
	FramePr   graphicFramePr `xml:"wp:cNvGraphicFramePr"`
	Graphic   graphic        `xml:"a:graphic"`
}

type simplePos struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

type anchorPosition struct {
	RelativeFrom string `xml:"relativeFrom,attr"`
	PosOffset    int64  `xml:"wp:posOffset"`
}

type extent struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type effectExtent struct {
	L int `xml:"l,attr"`
	T int `xml:"t,attr"`
	R int `xml:"r,attr"`
	B int `xml:"b,attr"`
}

type docPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type graphicFramePr struct {
	Locks graphicFrameLocks `xml:"a:graphicFrameLocks"`
}

type graphicFrameLocks struct {
	NoChangeAspect int `xml:"noChangeAspect,attr"`
}

type graphic struct {
	Data graphicData `xml:"a:graphicData"`
}

type graphicData struct {
	URI string  `xml:"uri,attr"`
	Pic picture `xml:"pic:pic"`
}

type picture struct {
	NvPicPr  nvPicPr  `xml:"pic:nvPicPr"`
	BlipFill blipFill `xml:"pic:blipFill"`
	SpPr     spPr     `xml:"pic:spPr"`
}

type nvPicPr struct {
	CNvPr    cNvPr    `xml:"pic:cNvPr"`
	CNvPicPr struct{} `xml:"pic:cNvPicPr"`
}

type cNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type blipFill struct {
	Blip    blip    `xml:"a:blip"`
	Stretch stretch `xml:"a:stretch"`
}

type blip struct {
	Embed string `xml:"r:embed,attr"`
}

type stretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

type spPr struct {
	Xfrm xfrm     `xml:"a:xfrm"`
	Geom prstGeom `xml:"a:prstGeom"`
}

type xfrm struct {
	Off shapeOffset `xml:"a:off"`
	Ext extent      `xml:"a:ext"`
}

type shapeOffset struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

type prstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

// OPC relationship parts (*.rels).

type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Rels    []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

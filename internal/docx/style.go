package docx

import "fmt"

// Brand style table. Point sizes and colors per heading level are fixed,
// not user-configurable.
const (
	fontName = "Calibri Light"

	colorNavy     = "203864"
	colorGrayText = "595959"
	colorWhite    = "FFFFFF"
	colorBlack    = "000000"
	colorBorder   = "CCCCCC"
	colorPositive = "E2EFDA" // light green
	colorNegative = "FCE4D6" // light red

	// Font sizes in half-points.
	sizeBody  = 22 // 11pt
	sizeTitle = 32 // 16pt
	sizeHead  = 24 // 12pt
	sizeURL   = 16 // 8pt
)

// Page geometry in twips (US Letter with brand margins).
const (
	pageWidth      = 12240
	pageHeight     = 15840
	marginTop      = 950
	marginBottom   = 1440
	marginLeft     = 851
	marginRight    = 900
	headerDistance = 426
	footerDistance = 288

	// Usable width for tables, in DXA.
	tableWidth = 9360
)

// EMU geometry for the anchored footer logo.
const (
	emuPerInch = 914400

	logoExtentCX  = 7776000 // full page width
	logoExtentCY  = 721774
	logoPosOffset = 9335744 // from the top of the page

	footerIndentRight = -491
)

// defaultImageWidthInches is the display width for figures and charts when
// the model does not specify one.
const defaultImageWidthInches = 6.0

const stylesTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s"/>
        <w:color w:val="%[2]s"/>
        <w:sz w:val="%[3]d"/>
        <w:szCs w:val="%[3]d"/>
      </w:rPr>
    </w:rPrDefault>
    <w:pPrDefault>
      <w:pPr>
        <w:spacing w:after="240"/>
      </w:pPr>
    </w:pPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:keepNext/>
      <w:outlineLvl w:val="0"/>
    </w:pPr>
    <w:rPr>
      <w:caps/>
      <w:sz w:val="%[4]d"/>
      <w:szCs w:val="%[4]d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading2">
    <w:name w:val="heading 2"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:keepNext/>
      <w:spacing w:before="360"/>
      <w:outlineLvl w:val="1"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:sz w:val="%[5]d"/>
      <w:szCs w:val="%[5]d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading3">
    <w:name w:val="heading 3"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:keepNext/>
      <w:spacing w:before="360" w:after="120"/>
      <w:outlineLvl w:val="2"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:sz w:val="%[5]d"/>
      <w:szCs w:val="%[5]d"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading4">
    <w:name w:val="heading 4"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:keepNext/>
      <w:outlineLvl w:val="3"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:i/>
      <w:color w:val="%[6]s"/>
      <w:sz w:val="%[5]d"/>
      <w:szCs w:val="%[5]d"/>
    </w:rPr>
  </w:style>
</w:styles>
`

func stylesXML() []byte {
	return []byte(fmt.Sprintf(stylesTemplate,
		fontName, colorGrayText, sizeBody, sizeTitle, sizeHead, colorBlack))
}

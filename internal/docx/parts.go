package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Relationship type URIs.
const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	relTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
)

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
  <Default Extension="jpeg" ContentType="image/jpeg"/>
  <Default Extension="gif" ContentType="image/gif"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>
  <Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>
`

const appPropsXML = xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>docgen</Application>
</Properties>
`

// corePropsXML builds docProps/core.xml with the document title and author.
func corePropsXML(title, author string, now time.Time) []byte {
	stamp := now.UTC().Format(time.RFC3339)
	return []byte(xmlHeader + fmt.Sprintf(
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>%s</dc:title>
  <dc:creator>%s</dc:creator>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>
`, xmlEscape(title), xmlEscape(author), stamp, stamp))
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// marshalPart renders a part root struct to bytes with the XML declaration.
func marshalPart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal part: %w", err)
	}
	out := make([]byte, 0, len(xmlHeader)+len(body))
	out = append(out, xmlHeader...)
	out = append(out, body...)
	return out, nil
}

func relationshipsXML(rels []relationship) ([]byte, error) {
	return marshalPart(relationships{Xmlns: nsRelationships, Rels: rels})
}

func rootRelsXML() ([]byte, error) {
	return relationshipsXML([]relationship{
		{ID: "rId1", Type: relTypeOfficeDocument, Target: "word/document.xml"},
		{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relTypeExtendedProps, Target: "docProps/app.xml"},
	})
}

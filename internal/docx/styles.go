// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

// documentNamespaces are declared on the w:document root so paragraph and
// drawing markup can be emitted without per-element declarations.
var documentNamespaces = []string{
	`xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`,
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`,
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"`,
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`,
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"`,
}

// rootRels is the package-root relationship part. Without the
// officeDocument relationship readers cannot locate word/document.xml.
const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// sectionProps sets an A4 page with 2.0/2.0/3.0/1.5 cm margins
// (top/bottom/left/right), in twips.
const sectionProps = `<w:sectPr>` +
	`<w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1134" w:right="850" w:bottom="1134" w:left="1701" w:header="708" w:footer="708" w:gutter="0"/>` +
	`</w:sectPr>`

// stylesXML carries the document defaults every block inherits: Times New
// Roman 14 pt (sz is half-points), 1.5 line spacing (360/240), justified,
// 1.25 cm first-line indent (709 twips).
const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults>` +
	`<w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/>` +
	`<w:sz w:val="28"/><w:szCs w:val="28"/>` +
	`</w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr>` +
	`<w:spacing w:after="0" w:line="360" w:lineRule="auto"/>` +
	`<w:ind w:firstLine="709"/>` +
	`<w:jc w:val="both"/>` +
	`</w:pPr></w:pPrDefault>` +
	`</w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`</w:styles>`

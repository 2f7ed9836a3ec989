// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx writes styled WordprocessingML documents. It builds the
// OOXML package directly over archive/zip: document.xml, styles.xml,
// relationships, content types, and media parts.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// OOXML unit conversions.
const (
	emuPerCm   = 360000
	twipsPerCm = 567
)

// Alignment values for Style.Align.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "both"
)

// Style is the paragraph-level style of one block. Zero fields inherit the
// document defaults set in styles.xml (Times New Roman 14 pt, 1.5 line
// spacing, justified, 1.25 cm first-line indent).
type Style struct {
	// SizeHalfPt is the font size in half-points (28 = 14 pt). 0 inherits.
	SizeHalfPt int

	// Bold applies to every run of the paragraph.
	Bold bool

	// Align overrides the default justification.
	Align string

	// NoIndent suppresses the default first-line indent.
	NoIndent bool

	// Color is a hex RGB run color, "" for automatic.
	Color string

	// SpacingLine overrides line spacing, in 240ths of a line.
	SpacingLine int
}

// Run is a fragment of paragraph text with run-level formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// mediaFile is one image part of the package.
type mediaFile struct {
	name        string // part name under word/, e.g. "media/image1.png"
	contentType string
	data        []byte
}

// Document accumulates styled blocks and writes them out as a .docx.
type Document struct {
	paras []string // rendered <w:p> elements, in order
	media []mediaFile
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph of runs under the given style.
func (d *Document) AddParagraph(style Style, runs ...Run) {
	var b strings.Builder
	b.WriteString("<w:p>")
	b.WriteString(paragraphProps(style))
	for _, r := range runs {
		b.WriteString("<w:r>")
		b.WriteString(runProps(style, r))
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escape(r.Text))
		b.WriteString("</w:t></w:r>")
	}
	b.WriteString("</w:p>")
	d.paras = append(d.paras, b.String())
}

// AddText appends a single-run paragraph.
func (d *Document) AddText(style Style, text string) {
	d.AddParagraph(style, Run{Text: text})
}

// AddPageBreak appends a hard page break.
func (d *Document) AddPageBreak() {
	d.paras = append(d.paras, `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

// AddImage appends a centered inline image sized widthCm by heightCm.
// The extension selects the declared content type; unknown extensions are
// stored as PNG.
func (d *Document) AddImage(data []byte, ext string, widthCm, heightCm float64) {
	ct, ok := imageContentTypes[strings.ToLower(ext)]
	if !ok {
		ct = "image/png"
		ext = ".png"
	}
	n := len(d.media) + 1
	d.media = append(d.media, mediaFile{
		name:        fmt.Sprintf("media/lab_image%d%s", n, ext),
		contentType: ct,
		data:        data,
	})

	cx := int(widthCm * emuPerCm)
	cy := int(heightCm * emuPerCm)
	relID := mediaRelID(n)
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:pPr><w:ind w:firstLine="0"/><w:jc w:val="center"/></w:pPr>`+
			`<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`+
			`<wp:extent cx="%d" cy="%d"/><wp:docPr id="%d" name="Picture %d"/>`+
			`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:pic><pic:nvPicPr><pic:cNvPr id="%d" name="Picture %d"/><pic:cNvPicPr/></pic:nvPicPr>`+
			`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
			`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
			`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`,
		cx, cy, n, n, n, n, relID, cx, cy))
}

var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

// mediaRelID returns the relationship id of the nth media part. The
// prefix keeps the ids clear of rId1 (styles) and of any ids an existing
// template package may use.
func mediaRelID(n int) string {
	return fmt.Sprintf("rIdLab%d", n)
}

func paragraphProps(s Style) string {
	var b strings.Builder
	b.WriteString("<w:pPr>")
	if s.NoIndent {
		b.WriteString(`<w:ind w:firstLine="0"/>`)
	}
	if s.SpacingLine > 0 {
		fmt.Fprintf(&b, `<w:spacing w:line="%d" w:lineRule="auto"/>`, s.SpacingLine)
	}
	if s.Align != "" {
		fmt.Fprintf(&b, `<w:jc w:val="%s"/>`, s.Align)
	}
	b.WriteString("</w:pPr>")
	return b.String()
}

func runProps(s Style, r Run) string {
	var b strings.Builder
	b.WriteString("<w:rPr>")
	if s.Bold || r.Bold {
		b.WriteString("<w:b/>")
	}
	if r.Italic {
		b.WriteString("<w:i/>")
	}
	if s.Color != "" {
		fmt.Fprintf(&b, `<w:color w:val="%s"/>`, s.Color)
	}
	if s.SizeHalfPt > 0 {
		fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, s.SizeHalfPt, s.SizeHalfPt)
	}
	b.WriteString("</w:rPr>")
	return b.String()
}

func escape(text string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}

// Save writes the document package to path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Write serializes the document package to w.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", d.contentTypes()},
		{"_rels/.rels", []byte(rootRels)},
		{"word/document.xml", d.documentXML()},
		{"word/_rels/document.xml.rels", d.documentRels()},
		{"word/styles.xml", []byte(stylesXML)},
	}
	for _, m := range d.media {
		parts = append(parts, struct {
			name string
			data []byte
		}{"word/" + m.name, m.data})
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return err
		}
		if _, err := f.Write(p.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

// BodyXML returns the rendered body paragraphs without the surrounding
// document element. Template mode splices this into an existing package.
func (d *Document) BodyXML() string {
	return strings.Join(d.paras, "")
}

func (d *Document) documentXML() []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document`)
	for _, ns := range documentNamespaces {
		b.WriteString(" " + ns)
	}
	b.WriteString("><w:body>")
	b.WriteString(d.BodyXML())
	b.WriteString(sectionProps)
	b.WriteString("</w:body></w:document>")
	return []byte(b.String())
}

func (d *Document) documentRels() []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for i, m := range d.media {
		fmt.Fprintf(&b,
			`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`,
			mediaRelID(i+1), m.name)
	}
	b.WriteString("</Relationships>")
	return []byte(b.String())
}

func (d *Document) contentTypes() []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	seen := map[string]bool{}
	for _, m := range d.media {
		ext := strings.TrimPrefix(m.name[strings.LastIndex(m.name, "."):], ".")
		if !seen[ext] {
			seen[ext] = true
			fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, ext, m.contentType)
		}
	}
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	b.WriteString("</Types>")
	return []byte(b.String())
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// SaveWithTemplate writes the document by appending its body blocks to an
// existing .docx package. The template's own content (its first page is
// the title page) stays untouched; rendered paragraphs are spliced in
// before the closing section properties, and media parts, relationships,
// and content-type defaults are merged.
func (d *Document) SaveWithTemplate(templatePath, outPath string) error {
	tr, err := zip.OpenReader(templatePath)
	if err != nil {
		return fmt.Errorf("open template %s: %w", templatePath, err)
	}
	defer tr.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	zw := zip.NewWriter(out)

	write := func(name string, data []byte) error {
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		_, err = f.Write(data)
		return err
	}

	sawDocRels := false
	for _, f := range tr.File {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("template part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("template part %s: %w", f.Name, err)
		}

		switch f.Name {
		case "word/document.xml":
			data = []byte(spliceBody(string(data), d.BodyXML()))
		case "word/_rels/document.xml.rels":
			sawDocRels = true
			data = []byte(spliceBefore(string(data), "</Relationships>", d.mediaRelsXML()))
		case "[Content_Types].xml":
			data = []byte(d.mergeContentTypes(string(data)))
		}
		if err := write(f.Name, data); err != nil {
			return err
		}
	}

	if !sawDocRels && len(d.media) > 0 {
		rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			d.mediaRelsXML() + `</Relationships>`
		if err := write("word/_rels/document.xml.rels", []byte(rels)); err != nil {
			return err
		}
	}

	for _, m := range d.media {
		if err := write("word/"+m.name, m.data); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return out.Close()
}

// spliceBody inserts rendered paragraphs before the template's body-level
// sectPr, or before </w:body> when the template carries none.
func spliceBody(doc, body string) string {
	if i := strings.LastIndex(doc, "<w:sectPr"); i >= 0 {
		return doc[:i] + body + doc[i:]
	}
	return spliceBefore(doc, "</w:body>", body)
}

func spliceBefore(doc, marker, insert string) string {
	if i := strings.Index(doc, marker); i >= 0 {
		return doc[:i] + insert + doc[i:]
	}
	return doc
}

// mediaRelsXML renders the relationship entries for this document's media.
// Relationship ids carry a distinct prefix so they cannot collide with the
// template's own ids.
func (d *Document) mediaRelsXML() string {
	var b strings.Builder
	for i, m := range d.media {
		fmt.Fprintf(&b,
			`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`,
			mediaRelID(i+1), m.name)
	}
	return b.String()
}

// mergeContentTypes adds Default entries for media extensions the template
// does not already declare.
func (d *Document) mergeContentTypes(doc string) string {
	var missing strings.Builder
	seen := map[string]bool{}
	for _, m := range d.media {
		ext := strings.TrimPrefix(m.name[strings.LastIndex(m.name, "."):], ".")
		if seen[ext] || strings.Contains(doc, fmt.Sprintf(`Extension="%s"`, ext)) {
			continue
		}
		seen[ext] = true
		fmt.Fprintf(&missing, `<Default Extension="%s" ContentType="%s"/>`, ext, m.contentType)
	}
	return spliceBefore(doc, "</Types>", missing.String())
}

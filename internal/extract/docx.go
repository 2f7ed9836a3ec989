// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// relTypeImage is the suffix of the OOXML image relationship type.
const relTypeImage = "/image"

// contentTypeExt maps declared image content types to output extensions.
// Unrecognized types fall back to .png.
var contentTypeExt = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/bmp":     ".bmp",
	"image/tiff":    ".tif",
	"image/svg+xml": ".svg",
	"image/x-emf":   ".emf",
	"image/x-wmf":   ".wmf",
}

// document.xml structures. Only direct body children are matched, so
// table-cell paragraphs do not double as body paragraphs.
type docxDocument struct {
	XMLName    xml.Name        `xml:"document"`
	Paragraphs []docxParagraph `xml:"body>p"`
	Tables     []docxTable     `xml:"body>tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text     []docxText    `xml:"t"`
	Drawings []docxDrawing `xml:"drawing"`
}

type docxText struct {
	Value string `xml:",chardata"`
}

type docxDrawing struct {
	Inline *docxBlipHolder `xml:"inline"`
	Anchor *docxBlipHolder `xml:"anchor"`
}

type docxBlipHolder struct {
	Blip *docxBlip `xml:"graphic>graphicData>pic>blipFill>blip"`
}

type docxBlip struct {
	Embed string `xml:"embed,attr"`
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// relationships file structures (word/_rels/*.rels).
type docxRelationships struct {
	XMLName xml.Name           `xml:"Relationships"`
	Rels    []docxRelationship `xml:"Relationship"`
}

type docxRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// [Content_Types].xml structures.
type docxContentTypes struct {
	XMLName   xml.Name           `xml:"Types"`
	Defaults  []docxTypeDefault  `xml:"Default"`
	Overrides []docxTypeOverride `xml:"Override"`
}

type docxTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type docxTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// extractDocx concatenates non-empty paragraph texts, then appends every
// table's rows as pipe-joined cell text, one row per segment.
func extractDocx(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	doc, err := parseDocxDocument(&r.Reader)
	if err != nil {
		return "", err
	}

	var segments []string
	for _, p := range doc.Paragraphs {
		if text := p.text(); text != "" {
			segments = append(segments, text)
		}
	}
	segments = append(segments, tableSegments(doc.Tables)...)
	return strings.Join(segments, "\n\n"), nil
}

// extractDocxFull extracts every image part referenced by a relationship
// anywhere in the package, then walks body paragraphs matching r:embed ids
// to their extracted files. Association is best-effort: images referenced
// only from headers, text boxes, or nested content end up in the trailing
// unreferenced block.
func extractDocxFull(path string, sink *imageSink) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	doc, err := parseDocxDocument(&r.Reader)
	if err != nil {
		return "", err
	}

	images, byEmbed, err := extractDocxImages(&r.Reader, sink)
	if err != nil {
		return "", err
	}

	var segments []string
	for _, p := range doc.Paragraphs {
		for _, id := range p.embeds() {
			img, ok := byEmbed[id]
			if !ok {
				continue
			}
			img.used = true
			segments = append(segments, fmt.Sprintf("![Image %d](%s)", img.seq, img.ref))
		}
		if text := p.text(); text != "" {
			segments = append(segments, text)
		}
	}
	segments = append(segments, tableSegments(doc.Tables)...)

	for _, img := range images {
		if !img.used {
			segments = append(segments,
				fmt.Sprintf("![Image %d (not referenced from body text)](%s)", img.seq, img.ref))
		}
	}
	return strings.Join(segments, "\n\n"), nil
}

// text returns the concatenated run text of a paragraph, trimmed.
func (p docxParagraph) text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Text {
			sb.WriteString(t.Value)
		}
	}
	return strings.TrimSpace(sb.String())
}

// embeds returns the relationship ids of images drawn in this paragraph,
// in run order.
func (p docxParagraph) embeds() []string {
	var ids []string
	for _, r := range p.Runs {
		for _, d := range r.Drawings {
			for _, h := range []*docxBlipHolder{d.Inline, d.Anchor} {
				if h != nil && h.Blip != nil && h.Blip.Embed != "" {
					ids = append(ids, h.Blip.Embed)
				}
			}
		}
	}
	return ids
}

// tableSegments serializes each table row as pipe-joined cell text.
func tableSegments(tables []docxTable) []string {
	var segments []string
	for _, tbl := range tables {
		for _, row := range tbl.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				var parts []string
				for _, p := range cell.Paragraphs {
					if text := p.text(); text != "" {
						parts = append(parts, text)
					}
				}
				cells = append(cells, strings.Join(parts, " "))
			}
			segments = append(segments, strings.Join(cells, " | "))
		}
	}
	return segments
}

func parseDocxDocument(zr *zip.Reader) (*docxDocument, error) {
	data, err := readZipPart(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}
	var doc docxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document.xml: %w", err)
	}
	return &doc, nil
}

// docxImage records one extracted image part.
type docxImage struct {
	ref  string
	seq  int
	used bool
}

// extractDocxImages writes every image relationship target in the package
// through the sink. It returns the images in extraction order and a lookup
// from document.xml relationship id (the ids body paragraphs reference).
func extractDocxImages(zr *zip.Reader, sink *imageSink) ([]*docxImage, map[string]*docxImage, error) {
	ctypes, err := parseContentTypes(zr)
	if err != nil {
		return nil, nil, err
	}

	var relsNames []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/_rels/") && strings.HasSuffix(f.Name, ".rels") {
			relsNames = append(relsNames, f.Name)
		}
	}
	sort.Strings(relsNames)

	var images []*docxImage
	byEmbed := make(map[string]*docxImage)

	for _, relsName := range relsNames {
		data, err := readZipPart(zr, relsName)
		if err != nil {
			return nil, nil, err
		}
		var rels docxRelationships
		if err := xml.Unmarshal(data, &rels); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", relsName, err)
		}

		for _, rel := range rels.Rels {
			if !strings.HasSuffix(rel.Type, relTypeImage) || rel.TargetMode == "External" {
				continue
			}
			partName := resolveRelTarget(relsName, rel.Target)
			blob, err := readZipPart(zr, partName)
			if err != nil {
				return nil, nil, fmt.Errorf("image part %s: %w", partName, err)
			}

			ext, ok := contentTypeExt[ctypes.lookup(partName)]
			if !ok {
				ext = ".png"
			}
			ref, seq, err := sink.write(blob, ext)
			if err != nil {
				return nil, nil, err
			}

			img := &docxImage{ref: ref, seq: seq}
			images = append(images, img)
			if relsName == "word/_rels/document.xml.rels" {
				byEmbed[rel.ID] = img
			}
		}
	}
	return images, byEmbed, nil
}

// resolveRelTarget turns a relationship target into a package part name.
// Targets are relative to the directory of the part the .rels file
// describes (word/_rels/document.xml.rels describes word/document.xml).
func resolveRelTarget(relsName, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	base := path.Dir(path.Dir(relsName)) // strip "_rels" and the file name
	return path.Clean(path.Join(base, target))
}

// contentTypeIndex resolves a part name to its declared content type.
type contentTypeIndex struct {
	defaults  map[string]string // lowercased extension (no dot) -> type
	overrides map[string]string // "/word/media/image1.png" -> type
}

func (c contentTypeIndex) lookup(partName string) string {
	if t, ok := c.overrides["/"+partName]; ok {
		return t
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(partName), "."))
	return c.defaults[ext]
}

func parseContentTypes(zr *zip.Reader) (contentTypeIndex, error) {
	idx := contentTypeIndex{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
	data, err := readZipPart(zr, "[Content_Types].xml")
	if err != nil {
		return idx, err
	}
	var ct docxContentTypes
	if err := xml.Unmarshal(data, &ct); err != nil {
		return idx, fmt.Errorf("parsing content types: %w", err)
	}
	for _, d := range ct.Defaults {
		idx.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	for _, o := range ct.Overrides {
		idx.overrides[o.PartName] = o.ContentType
	}
	return idx, nil
}

func readZipPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a classified Markdown report into a styled .docx
// document, resolving figure placeholders through an image map.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/labdoc/internal/docx"
	"github.com/pdiddy/labdoc/internal/images"
	"github.com/pdiddy/labdoc/internal/report"
	"github.com/pdiddy/labdoc/pkg/types"
)

// MaxImageWidthCm is the text width of an A4 page with 3.0/1.5 cm side
// margins. Wider images scale down to exactly this width.
const MaxImageWidthCm = 16.5

// Block styles. The zero style inherits the document defaults. Figure
// captions center under their image; table captions sit right-aligned
// above the table.
var (
	styleBody       = docx.Style{}
	styleHeading    = docx.Style{Bold: true, Align: docx.AlignLeft, NoIndent: true}
	styleFigCaption = docx.Style{SizeHalfPt: 24, Align: docx.AlignCenter, NoIndent: true}
	styleTblCaption = docx.Style{SizeHalfPt: 24, Align: docx.AlignRight, NoIndent: true}
	styleMuted      = docx.Style{Color: "808080", Align: docx.AlignCenter, NoIndent: true}
	styleFlagged    = docx.Style{Color: "FF0000", Align: docx.AlignCenter, NoIndent: true}
)

// Options configures one render run.
type Options struct {
	// ImagesDir is the directory relative image-map entries resolve under.
	ImagesDir string

	// ImageMap maps figure numbers to image files.
	ImageMap ImageMap

	// TemplatePath, when set, names a style template document whose first
	// page already carries the title content; no synthetic title page is
	// generated. A missing template is warned about and ignored.
	TemplatePath string

	// Now is the timestamp for the title-page year; zero means time.Now().
	Now time.Time
}

// Render builds the output document from a report and writes it to outPath.
func Render(cfg types.ReportConfig, reportText string, opts Options, outPath string) error {
	meta, body, err := report.SplitFrontMatter(reportText)
	if err != nil {
		return err
	}
	meta.Apply(&cfg)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	// A template that does not exist downgrades to title-page generation
	// so a stale path still yields a document.
	templatePath := opts.TemplatePath
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: template %s not found, generating title page\n", templatePath)
			templatePath = ""
		}
	}

	doc := docx.New()
	if templatePath == "" {
		addTitlePage(doc, cfg, now)
	}

	for _, line := range report.ClassifyAll(body) {
		if err := addLine(doc, line, opts); err != nil {
			return err
		}
	}

	if templatePath != "" {
		return doc.SaveWithTemplate(templatePath, outPath)
	}
	return doc.Save(outPath)
}

// addLine emits the block for one classified report line.
func addLine(doc *docx.Document, line report.Line, opts Options) error {
	switch line.Kind {
	case report.Blank:
		// Blank lines separate blocks; they produce nothing themselves.
	case report.Heading1, report.Heading2:
		doc.AddText(styleHeading, line.Number+". "+line.Title)
	case report.FigurePlaceholder:
		return addFigure(doc, line, opts)
	case report.FigureCaption:
		doc.AddText(styleFigCaption, strings.TrimSpace(line.Raw))
	case report.TableCaption:
		doc.AddText(styleTblCaption, strings.TrimSpace(line.Raw))
	default:
		spans := report.Spans(strings.TrimSpace(line.Raw))
		runs := make([]docx.Run, len(spans))
		for i, s := range spans {
			runs[i] = docx.Run{Text: s.Text, Bold: s.Bold, Italic: s.Italic}
		}
		doc.AddParagraph(styleBody, runs...)
	}
	return nil
}

// addFigure resolves a figure placeholder against the image map. A mapped
// and present file becomes a scaled image block; a mapped but missing file
// becomes a visible marker; an unmapped figure keeps the placeholder line
// verbatim in a muted style so the gap stays traceable.
func addFigure(doc *docx.Document, line report.Line, opts Options) error {
	name, ok := opts.ImageMap.Lookup(line.Figure)
	if !ok {
		doc.AddText(styleMuted, strings.TrimSpace(line.Raw))
		return nil
	}

	path := resolvePath(name, opts.ImagesDir)
	if _, err := os.Stat(path); err != nil {
		doc.AddText(styleFlagged, fmt.Sprintf("[image not found: %s]", name))
		return nil
	}

	info, err := images.Probe(path)
	if err != nil {
		return fmt.Errorf("figure %d: %w", line.Figure, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("figure %d: %w", line.Figure, err)
	}

	w, h := info.ScaledCm(MaxImageWidthCm)
	doc.AddImage(data, filepath.Ext(path), w, h)
	return nil
}

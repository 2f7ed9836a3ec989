// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfPageTexts returns the trimmed text of every page, empty pages
// included as empty strings so indices stay aligned with page numbers.
func pdfPageTexts(path string) (texts []string, err error) {
	// The underlying parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	texts = make([]string, r.NumPage())
	for n := 1; n <= r.NumPage(); n++ {
		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		texts[n-1] = strings.TrimSpace(text)
	}
	return texts, nil
}

// extractPDF concatenates per-page text with blank-line separation,
// skipping pages that yield no text.
func extractPDF(path string) (string, error) {
	texts, err := pdfPageTexts(path)
	if err != nil {
		return "", err
	}
	var pages []string
	for _, t := range texts {
		if t != "" {
			pages = append(pages, t)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

// extractPDFFull extracts page text and embedded images. Each image is
// written through the sink and referenced in the output right after the
// text of its page.
func extractPDFFull(path string, sink *imageSink) (string, error) {
	texts, err := pdfPageTexts(path)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	var out []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		var segments []string
		if pageNr <= len(texts) && texts[pageNr-1] != "" {
			segments = append(segments, texts[pageNr-1])
		}

		refs, err := extractPageImages(ctx, pageNr, sink)
		if err != nil {
			return "", fmt.Errorf("page %d images: %w", pageNr, err)
		}
		segments = append(segments, refs...)

		if len(segments) > 0 {
			out = append(out, strings.Join(segments, "\n\n"))
		}
	}
	return strings.Join(out, "\n\n"), nil
}

// extractPageImages writes one page's embedded images through the sink and
// returns their Markdown references. Object numbers are visited in sorted
// order so numbering is deterministic.
func extractPageImages(ctx *model.Context, pageNr int, sink *imageSink) ([]string, error) {
	images, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
	if err != nil {
		return nil, err
	}

	objNrs := make([]int, 0, len(images))
	for nr := range images {
		objNrs = append(objNrs, nr)
	}
	sort.Ints(objNrs)

	var refs []string
	for _, nr := range objNrs {
		img := images[nr]
		data, err := io.ReadAll(img)
		if err != nil {
			return nil, fmt.Errorf("reading image object %d: %w", nr, err)
		}
		ext := ".png"
		if img.FileType != "" {
			ext = "." + img.FileType
		}
		ref, seq, err := sink.write(data, ext)
		if err != nil {
			return nil, err
		}
		refs = append(refs, fmt.Sprintf("![Image %d (page %d)](%s)", seq, pageNr, ref))
	}
	return refs, nil
}

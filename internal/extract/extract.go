// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts lab-assignment source documents (PDF, DOCX,
// TXT, MD) into plain text or, in full mode, into Markdown with embedded
// images written to an images directory.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// handler bundles the plain and full extraction functions for one format.
type handler struct {
	plain func(path string) (string, error)
	full  func(path string, sink *imageSink) (string, error)
}

// handlers maps a lowercased file extension to its format handler.
// Adding a format is adding an entry.
var handlers = map[string]handler{
	".pdf":  {plain: extractPDF, full: extractPDFFull},
	".docx": {plain: extractDocx, full: extractDocxFull},
	".txt":  {plain: extractRaw, full: extractRawFull},
	".md":   {plain: extractRaw, full: extractRawFull},
}

// Supported returns the supported file extensions in sorted order.
func Supported() []string {
	exts := make([]string, 0, len(handlers))
	for ext := range handlers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// lookup resolves the handler for a path, checking that the file exists.
func lookup(path string) (handler, error) {
	if _, err := os.Stat(path); err != nil {
		return handler{}, fmt.Errorf("extract %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	h, ok := handlers[ext]
	if !ok {
		return handler{}, fmt.Errorf("extract %s: unsupported format %q (supported: %s)",
			path, ext, strings.Join(Supported(), ", "))
	}
	return h, nil
}

// File extracts the textual content of a document as a single string.
func File(path string) (string, error) {
	h, err := lookup(path)
	if err != nil {
		return "", err
	}
	text, err := h.plain(path)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

// FileFull extracts a document as Markdown, writing embedded images to
// imagesDir and interleaving Markdown image references with the text.
// Image numbering starts at 1 and is local to this call.
func FileFull(path, imagesDir string) (string, error) {
	h, err := lookup(path)
	if err != nil {
		return "", err
	}
	text, err := h.full(path, &imageSink{dir: imagesDir})
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

// imageSink writes extracted image blobs under sequential zero-padded
// 1-based names and remembers where each one went.
type imageSink struct {
	dir string
	n   int
}

// write stores one image blob and returns its Markdown-referenceable path
// and sequence number. The extension must include the leading dot.
func (s *imageSink) write(data []byte, ext string) (string, int, error) {
	if ext == "" {
		ext = ".png"
	}
	if s.n == 0 {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", 0, fmt.Errorf("creating images directory: %w", err)
		}
	}
	s.n++
	name := fmt.Sprintf("image_%03d%s", s.n, ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", name, err)
	}
	return filepath.ToSlash(filepath.Join(s.dir, name)), s.n, nil
}

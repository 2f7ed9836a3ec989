// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options configures a batch extraction run.
type Options struct {
	// OutDir is where per-file outputs are written.
	OutDir string

	// Full enables image extraction; outputs become .md instead of .txt.
	Full bool

	// ImagesDir is the destination for extracted images in full mode.
	ImagesDir string
}

// Result holds the outcome of a batch extraction run.
type Result struct {
	Extracted int
	Failed    int
}

// Total returns the total number of files processed.
func (r Result) Total() int {
	return r.Extracted + r.Failed
}

// HasFailures reports whether any files failed extraction.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Batch extracts each input file into opts.OutDir, printing per-file status
// to w and returning a summary. Outputs are overwritten; a batch run is
// idempotent given the same inputs.
func Batch(paths []string, opts Options, w io.Writer) Result {
	var result Result
	for _, p := range paths {
		if err := extractOne(p, opts); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", filepath.Base(p), err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "extracted: %s\n", filepath.Base(p))
		result.Extracted++
	}
	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d failed (total: %d)\n",
		result.Extracted, result.Failed, result.Total())
	return result
}

func extractOne(path string, opts Options) error {
	var (
		text string
		err  error
		ext  = ".txt"
	)
	if opts.Full {
		text, err = FileFull(path, opts.ImagesDir)
		ext = ".md"
	} else {
		text, err = File(path)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", opts.OutDir, err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(opts.OutDir, base+ext)
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

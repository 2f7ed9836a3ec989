// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labdoc/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE [FILE...]",
	Short: "Extract text (and optionally images) from assignment documents",
	Long: `Extract converts assignment source documents into plain text. With
--full, embedded images are written to the images directory and the output
becomes Markdown with numbered image references.

A single file prints to stdout. Several files (or --out-dir) write one
output file per input and print a batch summary.

Supported formats: ` + strings.Join(extract.Supported(), ", ") + `.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	imagesDir := flagOrConfig(cmd, "images-dir", "images_dir")
	outDir, _ := cmd.Flags().GetString("out-dir")

	if len(args) == 1 && outDir == "" {
		var (
			text string
			err  error
		)
		if full {
			text, err = extract.FileFull(args[0], imagesDir)
		} else {
			text, err = extract.File(args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, text)
		return nil
	}

	if outDir == "" {
		outDir = "."
	}
	result := extract.Batch(args, extract.Options{
		OutDir:    outDir,
		Full:      full,
		ImagesDir: imagesDir,
	}, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", result.Failed)
	}
	return nil
}

// flagOrConfig returns the flag value, falling back to the viper config
// key when the flag was not set on the command line.
func flagOrConfig(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func init() {
	extractCmd.Flags().Bool("full", false, "extract embedded images and emit Markdown references")
	extractCmd.Flags().String("images-dir", "images", "output directory for extracted images")
	extractCmd.Flags().String("out-dir", "", "write per-file outputs here instead of stdout")

	rootCmd.AddCommand(extractCmd)
}

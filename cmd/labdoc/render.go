// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labdoc/internal/render"
	"github.com/pdiddy/labdoc/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a Markdown report into a styled .docx document",
	Long: `Render reads a Markdown report and a JSON configuration, classifies
each report line (headings, figure placeholders, captions, paragraphs),
and writes a styled .docx with a generated title page.

Figure placeholders resolve through --image-map; a mapped figure whose file
is missing renders a visible marker, and an unmapped figure keeps its
placeholder line. With --template the title page comes from the template
document instead of being generated.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config-file")
	reportPath, _ := cmd.Flags().GetString("report")
	outputPath, _ := cmd.Flags().GetString("output")
	imageMapPath, _ := cmd.Flags().GetString("image-map")
	templatePath, _ := cmd.Flags().GetString("template")
	imagesDir := flagOrConfig(cmd, "images-dir", "images_dir")

	cfg, err := loadReportConfig(configPath)
	if err != nil {
		return err
	}

	reportText, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	opts := render.Options{
		ImagesDir:    imagesDir,
		TemplatePath: templatePath,
	}
	if imageMapPath != "" {
		opts.ImageMap, err = render.LoadImageMap(imageMapPath)
		if err != nil {
			return err
		}
	}

	if err := render.Render(cfg, string(reportText), opts, outputPath); err != nil {
		return fmt.Errorf("render %s: %w", reportPath, err)
	}

	fmt.Fprintf(os.Stdout, "Report saved to %s\n", outputPath)
	return nil
}

func loadReportConfig(path string) (types.ReportConfig, error) {
	var cfg types.ReportConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func init() {
	renderCmd.Flags().String("config-file", "", "report configuration JSON (student, institution, course)")
	renderCmd.Flags().String("report", "", "Markdown report to render")
	renderCmd.Flags().String("output", "", "output .docx path")
	renderCmd.Flags().String("images-dir", "images", "directory searched for figure image files")
	renderCmd.Flags().String("image-map", "", "figure-number to file-name map (JSON or YAML)")
	renderCmd.Flags().String("template", "", "style template .docx whose first page is the title page")

	_ = renderCmd.MarkFlagRequired("config-file")
	_ = renderCmd.MarkFlagRequired("report")
	_ = renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(renderCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"time"

	"github.com/pdiddy/labdoc/internal/docx"
	"github.com/pdiddy/labdoc/pkg/types"
)

// addTitlePage appends the synthetic title page: institution top-center,
// course and lab title mid-page, student identity bottom-right, city and
// calendar year bottom-center, then a hard page break. Every missing
// config field renders its fallback placeholder.
func addTitlePage(doc *docx.Document, cfg types.ReportConfig, now time.Time) {
	center := docx.Style{Align: docx.AlignCenter, NoIndent: true}
	centerBold := docx.Style{Align: docx.AlignCenter, NoIndent: true, Bold: true}
	right := docx.Style{Align: docx.AlignRight, NoIndent: true}
	spacer := docx.Style{Align: docx.AlignCenter, NoIndent: true}

	doc.AddText(centerBold, cfg.Institution.DisplayName())

	for i := 0; i < 8; i++ {
		doc.AddText(spacer, "")
	}

	doc.AddText(center, cfg.Course.DisplayName())
	doc.AddText(centerBold, fmt.Sprintf("Lab report %s", labNumber(cfg.Course)))
	doc.AddText(center, cfg.Course.DisplayLabTitle())

	for i := 0; i < 8; i++ {
		doc.AddText(spacer, "")
	}

	doc.AddText(right, "Student: "+cfg.Student.DisplayName())
	doc.AddText(right, "Group: "+cfg.Student.DisplayGroup())

	for i := 0; i < 4; i++ {
		doc.AddText(spacer, "")
	}

	doc.AddText(center, fmt.Sprintf("%s, %d", cfg.Institution.DisplayCity(), now.Year()))
	doc.AddPageBreak()
}

func labNumber(c types.CourseConfig) string {
	if c.LabNumber == 0 {
		return "N"
	}
	return fmt.Sprintf("%d", c.LabNumber)
}

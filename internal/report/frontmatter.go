// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/labdoc/pkg/types"
)

const frontMatterDelim = "---"

// Meta holds report front matter fields. Every field is optional; a set
// field overrides the corresponding configuration value for this render.
type Meta struct {
	// LabNumber overrides course.lab_number.
	LabNumber int `yaml:"lab_number"`

	// LabTitle overrides course.lab_title.
	LabTitle string `yaml:"lab_title"`

	// Student overrides student.name.
	Student string `yaml:"student"`

	// Group overrides student.group.
	Group string `yaml:"group"`
}

// Apply overrides cfg with the fields set in m.
func (m Meta) Apply(cfg *types.ReportConfig) {
	if m.LabNumber != 0 {
		cfg.Course.LabNumber = m.LabNumber
	}
	if m.LabTitle != "" {
		cfg.Course.LabTitle = m.LabTitle
	}
	if m.Student != "" {
		cfg.Student.Name = m.Student
	}
	if m.Group != "" {
		cfg.Student.Group = m.Group
	}
}

// SplitFrontMatter separates optional YAML front matter from the report
// body. A report without a leading "---" line is returned unchanged with
// zero Meta.
func SplitFrontMatter(text string) (Meta, string, error) {
	var meta Meta
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontMatterDelim+"\n") {
		return meta, text, nil
	}

	rest := normalized[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return meta, text, fmt.Errorf("front matter opened but never closed")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, text, fmt.Errorf("parsing front matter: %w", err)
	}

	body := rest[end+len("\n"+frontMatterDelim):]
	body = strings.TrimPrefix(body, "\n")
	return meta, body, nil
}

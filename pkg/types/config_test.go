// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayFallbacks(t *testing.T) {
	var cfg ReportConfig
	assert.Equal(t, FallbackStudent, cfg.Student.DisplayName())
	assert.Equal(t, FallbackGroup, cfg.Student.DisplayGroup())
	assert.Equal(t, FallbackInstitution, cfg.Institution.DisplayName())
	assert.Equal(t, FallbackCity, cfg.Institution.DisplayCity())
	assert.Equal(t, FallbackCourse, cfg.Course.DisplayName())
	assert.Equal(t, FallbackLabTitle, cfg.Course.DisplayLabTitle())
}

func TestDisplaySetValues(t *testing.T) {
	cfg := ReportConfig{
		Student:     StudentConfig{Name: "Ivan Petrov", Group: "CS-201"},
		Institution: InstitutionConfig{Name: "State Technical University", City: "Novosibirsk"},
		Course:      CourseConfig{Name: "Operating Systems", LabTitle: "Scheduling"},
	}
	assert.Equal(t, "Ivan Petrov", cfg.Student.DisplayName())
	assert.Equal(t, "CS-201", cfg.Student.DisplayGroup())
	assert.Equal(t, "State Technical University", cfg.Institution.DisplayName())
	assert.Equal(t, "Novosibirsk", cfg.Institution.DisplayCity())
	assert.Equal(t, "Operating Systems", cfg.Course.DisplayName())
	assert.Equal(t, "Scheduling", cfg.Course.DisplayLabTitle())
}

func TestReportConfigJSON(t *testing.T) {
	raw := `{
		"student": {"name": "Ivan Petrov", "group": "CS-201"},
		"institution": {"name": "State Technical University", "city": "Novosibirsk"},
		"course": {"name": "Operating Systems", "lab_number": 3, "lab_title": "Scheduling"}
	}`

	var cfg ReportConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, "Ivan Petrov", cfg.Student.Name)
	assert.Equal(t, 3, cfg.Course.LabNumber)
	assert.Equal(t, "Scheduling", cfg.Course.LabTitle)
}

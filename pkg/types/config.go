// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration structures for labdoc.
package types

// Placeholder strings substituted for title-page fields that are absent
// from the configuration. They are deliberately loud so an unfinished
// config is visible in the rendered document.
const (
	FallbackInstitution = "INSTITUTION NAME"
	FallbackCity        = "CITY"
	FallbackCourse      = "COURSE NAME"
	FallbackLabTitle    = "LAB TITLE"
	FallbackStudent     = "STUDENT NAME"
	FallbackGroup       = "GROUP"
)

// StudentConfig identifies the report author.
type StudentConfig struct {
	// Name is the student's full name.
	Name string `json:"name" yaml:"name"`

	// Group is the student's group or cohort identifier.
	Group string `json:"group" yaml:"group"`
}

// DisplayName returns the student name or its fallback placeholder.
func (s StudentConfig) DisplayName() string {
	if s.Name == "" {
		return FallbackStudent
	}
	return s.Name
}

// DisplayGroup returns the group identifier or its fallback placeholder.
func (s StudentConfig) DisplayGroup() string {
	if s.Group == "" {
		return FallbackGroup
	}
	return s.Group
}

// InstitutionConfig identifies the institution named on the title page.
type InstitutionConfig struct {
	// Name is the full institution name.
	Name string `json:"name" yaml:"name"`

	// City is printed with the calendar year at the bottom of the title page.
	City string `json:"city" yaml:"city"`
}

// DisplayName returns the institution name or its fallback placeholder.
func (i InstitutionConfig) DisplayName() string {
	if i.Name == "" {
		return FallbackInstitution
	}
	return i.Name
}

// DisplayCity returns the city or its fallback placeholder.
func (i InstitutionConfig) DisplayCity() string {
	if i.City == "" {
		return FallbackCity
	}
	return i.City
}

// CourseConfig identifies the course and the lab assignment being reported.
type CourseConfig struct {
	// Name is the course title.
	Name string `json:"name" yaml:"name"`

	// LabNumber is the assignment number (0 means unset).
	LabNumber int `json:"lab_number" yaml:"lab_number"`

	// LabTitle is the assignment title.
	LabTitle string `json:"lab_title" yaml:"lab_title"`
}

// DisplayName returns the course name or its fallback placeholder.
func (c CourseConfig) DisplayName() string {
	if c.Name == "" {
		return FallbackCourse
	}
	return c.Name
}

// DisplayLabTitle returns the lab title or its fallback placeholder.
func (c CourseConfig) DisplayLabTitle() string {
	if c.LabTitle == "" {
		return FallbackLabTitle
	}
	return c.LabTitle
}

// ReportConfig groups every title-page field. All fields are optional;
// missing values render as their fallback placeholders.
type ReportConfig struct {
	Student     StudentConfig     `json:"student" yaml:"student"`
	Institution InstitutionConfig `json:"institution" yaml:"institution"`
	Course      CourseConfig      `json:"course" yaml:"course"`
}

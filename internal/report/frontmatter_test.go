// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labdoc/pkg/types"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Run("report without front matter passes through", func(t *testing.T) {
		meta, body, err := SplitFrontMatter("1. Intro\n\ntext\n")
		require.NoError(t, err)
		assert.Equal(t, Meta{}, meta)
		assert.Equal(t, "1. Intro\n\ntext\n", body)
	})

	t.Run("front matter is parsed and stripped", func(t *testing.T) {
		text := "---\nlab_number: 4\nlab_title: Diffraction\nstudent: Ivanov I.I.\n---\n1. Intro\n"
		meta, body, err := SplitFrontMatter(text)
		require.NoError(t, err)
		assert.Equal(t, 4, meta.LabNumber)
		assert.Equal(t, "Diffraction", meta.LabTitle)
		assert.Equal(t, "Ivanov I.I.", meta.Student)
		assert.Equal(t, "1. Intro\n", body)
	})

	t.Run("unclosed front matter is an error", func(t *testing.T) {
		_, _, err := SplitFrontMatter("---\nlab_number: 4\n")
		assert.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		_, _, err := SplitFrontMatter("---\n\t: bad\n---\nbody\n")
		assert.Error(t, err)
	})
}

func TestMetaApply(t *testing.T) {
	cfg := types.ReportConfig{
		Student: types.StudentConfig{Name: "Petrov P.P.", Group: "A-12"},
		Course:  types.CourseConfig{LabNumber: 1, LabTitle: "Optics"},
	}

	Meta{LabNumber: 7, Student: "Sidorov S.S."}.Apply(&cfg)

	assert.Equal(t, 7, cfg.Course.LabNumber)
	assert.Equal(t, "Optics", cfg.Course.LabTitle, "unset fields stay untouched")
	assert.Equal(t, "Sidorov S.S.", cfg.Student.Name)
	assert.Equal(t, "A-12", cfg.Student.Group)
}

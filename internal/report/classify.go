// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report parses the Markdown-like lab report grammar: an ordered
// regex classification of lines into headings, figure placeholders,
// captions, and plain paragraphs, plus inline bold/italic spans and
// optional YAML front matter.
package report

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the classification of one report line.
type Kind int

const (
	Blank Kind = iota
	Heading2
	Heading1
	FigurePlaceholder
	FigureCaption
	TableCaption
	Paragraph
)

// Line is one classified report line.
type Line struct {
	Kind Kind

	// Raw is the original line text, untrimmed.
	Raw string

	// Number is the heading or caption numeral as written ("3", "1.2").
	Number string

	// Title is the heading or caption title text.
	Title string

	// Figure is the referenced figure number for placeholders and
	// figure captions.
	Figure int
}

// Classification patterns, evaluated top to bottom, first match wins.
// The level-2 pattern runs before level-1: both start with a numeral, and
// the embedded dot of "1.2" would otherwise satisfy the level-1 pattern.
// Placeholder and caption markers accept English and Russian forms, since
// report sources in this domain are commonly Russian-language.
var (
	heading2Re    = regexp.MustCompile(`^(\d+\.\d+)\.?\s+(.+)$`)
	heading1Re    = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	placeholderRe = regexp.MustCompile(`^\[(?:INSERT FIGURE (\d+) HERE|ВСТАВИТЬ РИСУНОК (\d+) ЗДЕСЬ)\]$`)
	figCaptionRe  = regexp.MustCompile(`^(?:Figure|Рисунок)\s+(\d+)\s*[.:—–-]\s*(.+)$`)
	tblCaptionRe  = regexp.MustCompile(`^(?:Table|Таблица)\s+(\d+)\s*[.:—–-]\s*(.+)$`)
)

// Classify assigns exactly one Kind to a report line.
func Classify(raw string) Line {
	line := Line{Raw: raw}
	text := strings.TrimSpace(raw)

	switch {
	case text == "":
		line.Kind = Blank
	case heading2Re.MatchString(text):
		m := heading2Re.FindStringSubmatch(text)
		line.Kind = Heading2
		line.Number = m[1]
		line.Title = m[2]
	case heading1Re.MatchString(text):
		m := heading1Re.FindStringSubmatch(text)
		line.Kind = Heading1
		line.Number = m[1]
		line.Title = m[2]
	case placeholderRe.MatchString(text):
		m := placeholderRe.FindStringSubmatch(text)
		num := m[1]
		if num == "" {
			num = m[2]
		}
		line.Kind = FigurePlaceholder
		line.Figure, _ = strconv.Atoi(num)
	case figCaptionRe.MatchString(text):
		m := figCaptionRe.FindStringSubmatch(text)
		line.Kind = FigureCaption
		line.Number = m[1]
		line.Title = m[2]
		line.Figure, _ = strconv.Atoi(m[1])
	case tblCaptionRe.MatchString(text):
		m := tblCaptionRe.FindStringSubmatch(text)
		line.Kind = TableCaption
		line.Number = m[1]
		line.Title = m[2]
	default:
		line.Kind = Paragraph
	}
	return line
}

// ClassifyAll classifies every line of a report body.
func ClassifyAll(body string) []Line {
	raw := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = Classify(l)
	}
	return lines
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"regexp"
	"strings"
)

// LineKind classifies a whole line of input.
type LineKind int

const (
	LineEmpty LineKind = iota
	LineParagraph
	LineSection
	LineSubsection
	LineSubsubsection
	LineItemize
	LineEnumerate
	LineMathDisplay
)

// String returns the LaTeX-facing name of the kind; heading and list
// kinds double as the emitted command/environment name.
func (k LineKind) String() string {
	switch k {
	case LineParagraph:
		return "paragraph"
	case LineSection:
		return "section"
	case LineSubsection:
		return "subsection"
	case LineSubsubsection:
		return "subsubsection"
	case LineItemize:
		return "itemize"
	case LineEnumerate:
		return "enumerate"
	case LineMathDisplay:
		return "math_display"
	default:
		return "empty"
	}
}

var (
	// Dotted academic numbering: "3.1 Title", "2.4.1. Title". The
	// trailing dot after the numbering is optional.
	dottedHeadingPat = regexp.MustCompile(`^(\d+(?:\.\d+)+)\.?\s+(.*)$`)

	// "1. item" enumerated-list prefix.
	enumPrefixPat = regexp.MustCompile(`^\d+\.\s+`)
)

// DetectStructure classifies a trimmed line into a structural kind and
// extracts its content. The priority order is fixed: user markers win
// over everything, then delimiter-wrapped and symbol-bearing math lines,
// then numbered headings, then list prefixes, and anything else left
// non-empty is a paragraph.
func (lx *Lexicon) DetectStructure(line string) (LineKind, string) {
	// The subsection marker is checked first: with the default "##"/"###"
	// pair every subsection line also has the section prefix.
	if strings.HasPrefix(line, lx.subsectionMarker) {
		return LineSubsection, strings.TrimSpace(strings.Replace(line, lx.subsectionMarker, "", 1))
	}
	if strings.HasPrefix(line, lx.sectionMarker) {
		return LineSection, strings.TrimSpace(strings.Replace(line, lx.sectionMarker, "", 1))
	}

	// A line the author already wrapped in $…$ is display math; the
	// delimiters are stripped so they cannot leak into the rendered block.
	if len(line) > 1 && strings.HasPrefix(line, "$") && strings.HasSuffix(line, "$") {
		return LineMathDisplay, strings.TrimSpace(line[1 : len(line)-1])
	}

	if lx.IsMathLine(line) {
		return LineMathDisplay, line
	}

	if m := dottedHeadingPat.FindStringSubmatch(line); m != nil {
		numbering, title := m[1], strings.TrimSpace(m[2])
		switch {
		case strings.HasSuffix(numbering, ".0"):
			return LineSection, title
		case strings.Count(numbering, ".") == 1:
			return LineSubsection, title
		default:
			return LineSubsubsection, title
		}
	}

	if loc := enumPrefixPat.FindStringIndex(line); loc != nil {
		return LineEnumerate, line[loc[1]:]
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return LineItemize, strings.TrimSpace(line[2:])
	}

	if line != "" {
		return LineParagraph, line
	}
	return LineEmpty, ""
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"regexp"
	"strings"
	"unicode"
)

var wordSpanPat = regexp.MustCompile(`\S+`)

// labelJoinPunct: when the segmented right side opens with one of these,
// the bold label and the rest concatenate without a space.
const labelJoinPunct = ":;,.!?"

// FormatListItem renders a list item's content, bolding a leading
// "Label:" when the colon falls within the first five words. Anything
// without such a label falls back to plain inline segmentation.
func (lx *Lexicon) FormatListItem(raw string) string {
	spans := wordSpanPat.FindAllStringIndex(raw, -1)
	if spans == nil {
		return lx.SegmentInline(raw)
	}

	// Search up to the end of the 5th word, or the last word when the
	// item is shorter.
	idx := len(spans) - 1
	if idx > 4 {
		idx = 4
	}
	limit := spans[idx][1]

	colon := strings.Index(raw[:limit], ":")
	if colon < 0 {
		return lx.SegmentInline(raw)
	}

	label := strings.TrimRightFunc(raw[:colon], unicode.IsSpace)
	rest := strings.TrimLeftFunc(raw[colon:], unicode.IsSpace)
	if strings.TrimSpace(label) == "" {
		return lx.SegmentInline(raw)
	}

	labelTex := lx.SegmentInline(label)
	restTex := lx.SegmentInline(rest)

	if restTex != "" && strings.ContainsRune(labelJoinPunct, rune(restTex[0])) {
		return `\textbf{` + labelTex + `}` + restTex
	}
	return `\textbf{` + labelTex + `} ` + restTex
}

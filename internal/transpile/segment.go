// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"regexp"
	"strings"
)

var (
	// Leading and trailing runs of punctuation, brackets and quotes are
	// peeled off a token before classification so "(x)," classifies on
	// the bare "x".
	leadingPunctPat  = regexp.MustCompile(`^([.,;:?!()\[\]"']+)(.*)$`)
	trailingPunctPat = regexp.MustCompile(`^(.*?)([.,;:?!()\[\]"']+)$`)
)

// articleLookaheadChars trigger the a/an special case: the article joins
// the inline math span when the following token carries one of these.
const articleLookaheadChars = "=+≤≥><⊕≈"

// SegmentInline splits a prose line into space-separated tokens,
// classifies each, and routes math tokens through the renderer wrapped in
// $…$ and everything else through the sanitizer. Runs of spaces collapse
// to one; the normalization is lossy.
func (lx *Lexicon) SegmentInline(line string) string {
	rawTokens := make([]string, 0, 16)
	for _, t := range strings.Split(line, " ") {
		if t != "" {
			rawTokens = append(rawTokens, t)
		}
	}

	out := make([]string, 0, len(rawTokens))
	for i, token := range rawTokens {
		prefix, core, suffix := splitTokenEdges(token)

		// Repair one level of closing brackets swallowed by the
		// suffix strip, so F(x) keeps its parenthesis inside the span.
		for strings.Count(core, "(") > strings.Count(core, ")") && strings.HasPrefix(suffix, ")") {
			core += ")"
			suffix = suffix[1:]
		}
		for strings.Count(core, "[") > strings.Count(core, "]") && strings.HasPrefix(suffix, "]") {
			core += "]"
			suffix = suffix[1:]
		}

		var isMath bool
		if core == "a" || core == "an" {
			// Articles read as math only when the next token does:
			// "a = b" versus "a cat".
			if i+1 < len(rawTokens) {
				next := strings.Trim(rawTokens[i+1], tokenPunct)
				isMath = strings.ContainsAny(next, articleLookaheadChars)
			}
		} else {
			isMath = lx.IsMathToken(core)
		}

		if isMath {
			out = append(out, Sanitize(prefix)+"$"+lx.RenderMath(core)+"$"+Sanitize(suffix))
		} else {
			out = append(out, Sanitize(token))
		}
	}
	return strings.Join(out, " ")
}

// splitTokenEdges strips a leading punctuation run into prefix and a
// trailing run into suffix, leaving the classifiable core.
func splitTokenEdges(token string) (prefix, core, suffix string) {
	core = token
	if m := leadingPunctPat.FindStringSubmatch(core); m != nil {
		prefix, core = m[1], m[2]
	}
	if m := trailingPunctPat.FindStringSubmatch(core); m != nil {
		core, suffix = m[1], m[2]
	}
	return prefix, core, suffix
}

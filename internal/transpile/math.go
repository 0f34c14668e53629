// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"regexp"
	"strings"
)

// mathEscaper handles the four characters whose escaping is shared
// between text and math mode. Math mode has its own table for the rest,
// so this is independent of the prose escape table.
var mathEscaper = strings.NewReplacer(
	"%", `\%`,
	"#", `\#`,
	"$", `\$`,
	"&", `\&`,
)

var (
	// Function names become commands only when a bracket follows, so
	// prose fragments like "log of" stay untouched. The bracket is
	// captured and re-emitted because RE2 has no lookahead.
	mathFuncPat = regexp.MustCompile(`\b(Pr|log|sin|cos|lim)([\[(])`)

	// Enck(/Deck( is the keyed-operator notation used throughout
	// cryptographic prose.
	keyedOpPat = regexp.MustCompile(`\b(Enc|Dec)k\(`)

	sqrtWordPat    = regexp.MustCompile(`√(\w+)`)
	letterDigitPat = regexp.MustCompile(`\b([a-zA-Z])([0-9])\b`)
	twoLetterPat   = regexp.MustCompile(`\b([a-zA-Z])([a-zA-Z])\b`)
	spaceRunPat    = regexp.MustCompile(`\s+`)
)

// RenderMath converts one raw math-bearing expression to LaTeX. The
// passes run in a fixed order that later passes depend on: escaping
// first, named functions and keyed operators before symbol substitution,
// square roots after it, then the subscript rewrites, and finally
// whitespace normalization to absorb the padding the symbol substitution
// introduces.
func (lx *Lexicon) RenderMath(expr string) string {
	text := mathEscaper.Replace(expr)

	text = mathFuncPat.ReplaceAllString(text, `\${1}${2}`)
	text = keyedOpPat.ReplaceAllString(text, `\text{${1}}_k(`)

	// Symbol commands are padded with spaces so adjacent substitutions
	// cannot fuse into a single bogus command name.
	for _, r := range symbolTable {
		text = strings.ReplaceAll(text, r.from, " "+r.to+" ")
	}

	if strings.Contains(text, "√") {
		text = sqrtWordPat.ReplaceAllString(text, `\sqrt{$1}`)
		text = strings.ReplaceAll(text, "√", `\sqrt`)
	}

	// x2 -> x_2.
	text = subscriptPass(text, letterDigitPat, nil)

	// Bare two-letter words read as subscripted identifiers (xi -> x_i)
	// unless the word is a known anchor or carries the Pr stem.
	text = subscriptPass(text, twoLetterPat, func(word string) bool {
		return lx.anchors[word] || strings.Contains(word, "Pr")
	})

	return strings.TrimSpace(spaceRunPat.ReplaceAllString(text, " "))
}

// subscriptPass rewrites every word-bounded two-character match of pat as
// first_second. Matches directly preceded by a backslash are part of an
// already-emitted LaTeX command and are left alone (RE2 has no
// lookbehind, so the guard is a byte check on the match start). keep, when
// non-nil, exempts whole matched words from rewriting.
func subscriptPass(text string, pat *regexp.Regexp, keep func(word string) bool) string {
	matches := pat.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '\\' {
			continue
		}
		if keep != nil && keep(text[start:end]) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(text[m[2]:m[3]])
		b.WriteByte('_')
		b.WriteString(text[m[4]:m[5]])
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"regexp"
	"strings"
	"unicode"
)

// tokenPunct is the punctuation stripped from token edges before
// classification.
const tokenPunct = ".,;:?!"

// callPat matches a capitalized-identifier call such as Fk( or Gen(.
var callPat = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9]*\(`)

// operator characters that mark a token as math over and above the
// symbol table.
const tokenOperators = `=<>+^_|\/`

// IsMathToken reports whether a single token is mathematical notation.
// The checks run cheapest-first and each is a pure heuristic: anchor
// words are prose no matter what, call patterns and operator or digit
// content are math, lone and paired letters are math except for the
// English words "a", "A" and "I", and a token carrying both parentheses
// is math.
func (lx *Lexicon) IsMathToken(token string) bool {
	clean := strings.Trim(token, tokenPunct)
	if clean == "" {
		return false
	}
	if lx.anchors[strings.ToLower(clean)] {
		return false
	}
	if callPat.MatchString(clean) {
		return true
	}
	if strings.ContainsAny(clean, tokenOperators) || strings.Contains(clean, "·") {
		return true
	}
	for _, r := range symbolTable {
		if strings.Contains(clean, r.from) {
			return true
		}
	}
	for _, c := range clean {
		if unicode.IsDigit(c) {
			return true
		}
	}
	runes := []rune(clean)
	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		return clean != "a" && clean != "A" && clean != "I"
	}
	if len(runes) == 2 && unicode.IsLetter(runes[0]) && unicode.IsLetter(runes[1]) {
		return true
	}
	if strings.Contains(clean, "(") && strings.Contains(clean, ")") {
		return true
	}
	return false
}

// linePromptWordPat extracts candidate English words for the line-level
// prose test.
var linePromptWordPat = regexp.MustCompile(`\b[a-zA-Z]{2,}\b`)

// lineIndicators are the characters that, absent enough anchor words,
// mark a whole line as display math.
var lineIndicators = []string{"=", "≤", "≥", "≠", "≈", "→", "<", ">"}

// IsMathLine reports whether a whole line should render as display math.
// Two or more distinct anchor words veto the math reading regardless of
// any symbols on the line; otherwise any strong indicator character or
// symbol-table entry makes the line math.
func (lx *Lexicon) IsMathLine(line string) bool {
	seen := make(map[string]bool)
	for _, w := range linePromptWordPat.FindAllString(strings.ToLower(line), -1) {
		if lx.anchors[w] {
			seen[w] = true
		}
	}
	if len(seen) >= 2 {
		return false
	}
	for _, c := range lineIndicators {
		if strings.Contains(line, c) {
			return true
		}
	}
	for _, r := range symbolTable {
		if strings.Contains(line, r.from) {
			return true
		}
	}
	return false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transpile converts loosely structured plain text into LaTeX
// source. It infers document structure (headings, lists, tables, display
// math) and decides token by token whether a span is mathematical notation
// or prose, then emits escaped, correctly nested markup.
//
// The package performs no I/O and raises no interactive errors; its whole
// surface is Transpiler.MergeSettings and Transpiler.Transpile.
// See docs/ARCHITECTURE § Transpiler Core.
package transpile

import (
	"sort"
	"strings"
)

// replacement is one literal-string rewrite rule. Both the escape and
// symbol tables are ordered slices, not maps: the escaped forms of '~'
// and '^' embed braces, so brace entries must be applied first, and the
// symbol table's substitution order follows the same fixed sequence on
// every run to keep output deterministic.
type replacement struct {
	from string
	to   string
}

// escapeTable maps characters that are special in LaTeX text mode to
// their escaped prose forms. Applied in order by Sanitize.
var escapeTable = []replacement{
	{"&", `\&`},
	{"%", `\%`},
	{"$", `\$`},
	{"#", `\#`},
	{"_", `\_`},
	{"{", `\{`},
	{"}", `\}`},
	{"~", `\textasciitilde{}`},
	{"^", `\^{}`},
}

// symbolTable maps unicode math symbols to LaTeX commands. '*', '{' and
// '}' are deliberately remapped to math-mode forms that differ from the
// prose escapes above.
var symbolTable = []replacement{
	{"α", `\alpha`}, {"β", `\beta`}, {"γ", `\gamma`}, {"δ", `\delta`},
	{"ϵ", `\epsilon`}, {"ε", `\varepsilon`}, {"ζ", `\zeta`}, {"η", `\eta`},
	{"θ", `\theta`}, {"ι", `\iota`}, {"κ", `\kappa`}, {"λ", `\lambda`},
	{"μ", `\mu`}, {"ν", `\nu`}, {"ξ", `\xi`}, {"π", `\pi`},
	{"ρ", `\rho`}, {"σ", `\sigma`}, {"τ", `\tau`}, {"υ", `\upsilon`},
	{"φ", `\phi`}, {"χ", `\chi`}, {"ψ", `\psi`}, {"ω", `\omega`},
	{"Γ", `\Gamma`}, {"Δ", `\Delta`}, {"Θ", `\Theta`}, {"Λ", `\Lambda`},
	{"Ξ", `\Xi`}, {"Π", `\Pi`}, {"Σ", `\Sigma`}, {"Φ", `\Phi`},
	{"Ψ", `\Psi`}, {"Ω", `\Omega`},
	{"⊕", `\oplus`}, {"⊗", `\otimes`}, {"⊖", `\ominus`}, {"⊙", `\odot`},
	{"×", `\times`}, {"·", `\cdot`}, {"÷", `\div`}, {"±", `\pm`},
	{"≤", `\le`}, {"≥", `\ge`}, {"≠", `\neq`}, {"≈", `\approx`}, {"≡", `\equiv`},
	{"→", `\to`}, {"←", `\gets`}, {"⇒", `\Rightarrow`}, {"⇔", `\Leftrightarrow`}, {"↦", `\mapsto`},
	{"∀", `\forall`}, {"∃", `\exists`}, {"¬", `\neg`}, {"∧", `\land`}, {"∨", `\lor`},
	{"∈", `\in`}, {"∉", `\notin`}, {"⊂", `\subset`}, {"⊃", `\supset`},
	{"⊆", `\subseteq`}, {"⊇", `\supseteq`}, {"∪", `\cup`}, {"∩", `\cap`},
	{"∅", `\emptyset`}, {"∞", `\infty`}, {"∂", `\partial`}, {"∇", `\nabla`},
	{"∑", `\sum`}, {"∏", `\prod`}, {"∫", `\int`}, {"...", `\ldots`}, {"◦", `\circ`},
	{"*", `\times`}, {"{", `\{`}, {"}", `\}`},
}

// baseAnchors is the seed set of natural-language words that bias
// classification toward prose. Heavily weighted toward the connective
// tissue of cryptography and proof write-ups, where single letters and
// short identifiers are otherwise assumed to be math.
var baseAnchors = []string{
	"the", "and", "for", "is", "are", "this", "that", "with", "from", "to",
	"in", "on", "by", "send", "sends", "single", "response",
	"an", "as", "at", "be", "or", "we", "our", "it", "if", "then", "of",
	"can", "has", "have", "security",
	"result", "method", "using", "given", "where", "let", "assume", "note",
	"function", "define", "fundamental",
	"suppose", "hence", "thus", "therefore", "show", "prove", "prover",
	"such", "valid", "check", "random", "no", "input",
	"am", "do", "go", "he", "me", "my", "ok", "so", "up", "us", "ip",
}

// Default structural markers, markdown style.
const (
	defaultSectionMarker    = "##"
	defaultSubsectionMarker = "###"
)

// Settings is a merge delta for a Lexicon. Zero-valued fields leave the
// corresponding lexicon state untouched; IncludeTitle is a pointer so
// "not supplied" and "false" stay distinguishable.
type Settings struct {
	SectionMarker    string
	SubsectionMarker string
	IncludeTitle     *bool

	// AnchorWords are unioned into the existing set, never removed.
	// Callers are expected to supply lowercase.
	AnchorWords []string

	// PrimerWords is accepted from the settings surface but consumed by
	// no transform rule; the field is reserved.
	PrimerWords []string
}

// Lexicon holds the mutable classification state: structural markers, the
// title flag, and the anchor-word set. The fixed escape and symbol tables
// are process-wide. A Lexicon is not safe for a Merge concurrent with a
// transpile pass; callers serialize configuration changes.
type Lexicon struct {
	sectionMarker    string
	subsectionMarker string
	includeTitle     bool
	anchors          map[string]bool
	primers          map[string]bool
}

// NewLexicon returns a Lexicon with default markers, title rendering
// enabled, and the base anchor set.
func NewLexicon() *Lexicon {
	lx := &Lexicon{
		sectionMarker:    defaultSectionMarker,
		subsectionMarker: defaultSubsectionMarker,
		includeTitle:     true,
		anchors:          make(map[string]bool, len(baseAnchors)),
		primers:          make(map[string]bool),
	}
	for _, w := range baseAnchors {
		lx.anchors[w] = true
	}
	return lx
}

// Merge applies a settings delta. Anchor and primer words are unioned in
// with the case supplied; markers and the title flag are overwritten only
// when the delta actually carries a value.
func (lx *Lexicon) Merge(s Settings) {
	for _, w := range s.AnchorWords {
		if w = strings.TrimSpace(w); w != "" {
			lx.anchors[w] = true
		}
	}
	for _, w := range s.PrimerWords {
		if w = strings.TrimSpace(w); w != "" {
			lx.primers[w] = true
		}
	}
	if s.SectionMarker != "" {
		lx.sectionMarker = s.SectionMarker
	}
	if s.SubsectionMarker != "" {
		lx.subsectionMarker = s.SubsectionMarker
	}
	if s.IncludeTitle != nil {
		lx.includeTitle = *s.IncludeTitle
	}
}

// IsAnchor reports whether word is in the anchor set, matched exactly as
// stored. Classification lowercases before calling; the math renderer's
// two-letter rule deliberately does not.
func (lx *Lexicon) IsAnchor(word string) bool {
	return lx.anchors[word]
}

// SectionMarker returns the configured section prefix.
func (lx *Lexicon) SectionMarker() string { return lx.sectionMarker }

// SubsectionMarker returns the configured subsection prefix.
func (lx *Lexicon) SubsectionMarker() string { return lx.subsectionMarker }

// IncludeTitle reports whether \maketitle is emitted into the body.
func (lx *Lexicon) IncludeTitle() bool { return lx.includeTitle }

// AnchorCount returns the size of the anchor set.
func (lx *Lexicon) AnchorCount() int { return len(lx.anchors) }

// UserAnchors returns the anchor words that are not part of the base
// set, sorted.
func (lx *Lexicon) UserAnchors() []string {
	base := make(map[string]bool, len(baseAnchors))
	for _, w := range baseAnchors {
		base[w] = true
	}
	var out []string
	for w := range lx.anchors {
		if !base[w] {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// PrimerWords returns the recorded primer words, sorted. Nothing reads
// them during transpilation.
func (lx *Lexicon) PrimerWords() []string {
	out := make([]string, 0, len(lx.primers))
	for w := range lx.primers {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

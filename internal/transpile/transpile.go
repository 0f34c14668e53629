// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import "strings"

// preamble is the fixed document header emitted before the title block.
var preamble = []string{
	`\documentclass{article}`,
	`\usepackage{amsmath, amssymb}`,
	`\usepackage[utf8]{inputenc}`,
	`\usepackage{xltabular}`,
	`\usepackage{booktabs}`,
	`\setlength{\parskip}{1em}`,
}

// untitledFallback is the document title used when the input is empty.
const untitledFallback = "Untitled Document"

// Transpiler is the core's entire external surface: merge settings in,
// pass raw text through, get a LaTeX buffer back. It holds no state
// besides the lexicon, and a transpile pass reads but never mutates it.
// Concurrent MergeSettings and Transpile calls are the caller's data
// race to avoid.
type Transpiler struct {
	lex *Lexicon
}

// New returns a Transpiler with the default lexicon.
func New() *Transpiler {
	return &Transpiler{lex: NewLexicon()}
}

// MergeSettings applies a settings delta to the lexicon. It never fails;
// empty fields leave prior values in place.
func (t *Transpiler) MergeSettings(s Settings) {
	t.lex.Merge(s)
}

// Lexicon exposes the current lexicon for inspection.
func (t *Transpiler) Lexicon() *Lexicon {
	return t.lex
}

// Transpile converts raw text to a complete LaTeX document. The first
// line becomes the title; every following line is classified and routed
// through the list/table state machine. The transform is deterministic
// and pure: same lexicon and input, same output.
func (t *Transpiler) Transpile(raw string) string {
	lx := t.lex

	title := untitledFallback
	var lines []string
	if body := strings.TrimSpace(raw); body != "" {
		lines = strings.Split(body, "\n")
		title, lines = lines[0], lines[1:]
	}

	out := make([]string, 0, len(lines)+16)
	out = append(out, preamble...)
	out = append(out,
		`\title{`+lx.SegmentInline(title)+`}`,
		`\author{}`,
		`\date{\today}`,
		`\begin{document}`,
	)
	if lx.includeTitle {
		out = append(out, `\maketitle`)
	}

	var tableBuf []string
	openList := "" // "", "itemize" or "enumerate"; at most one list open

	closeList := func() {
		if openList != "" {
			out = append(out, `\end{`+openList+`}`)
			openList = ""
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		// Tab-bearing lines bypass classification and accumulate until
		// the run ends; the buffer then flushes as one table block.
		if strings.Contains(line, "\t") {
			tableBuf = append(tableBuf, line)
			continue
		}
		if len(tableBuf) > 0 {
			out = append(out, lx.TableBlock(tableBuf))
			tableBuf = nil
		}

		kind, content := lx.DetectStructure(line)

		if kind == LineItemize || kind == LineEnumerate {
			item := lx.FormatListItem(content)
			env := kind.String()
			if openList != "" && openList != env {
				closeList()
			}
			if openList == "" {
				out = append(out, `\begin{`+env+`}`)
				openList = env
			}
			out = append(out, `    \item `+item)
			continue
		}
		closeList()

		switch kind {
		case LineMathDisplay:
			out = append(out, `\[ `+lx.RenderMath(content)+` \]`)
		case LineParagraph:
			out = append(out, lx.SegmentInline(content)+"\n\n")
		case LineSection, LineSubsection, LineSubsubsection:
			out = append(out, `\`+kind.String()+`{`+lx.SegmentInline(content)+`}`)
		}
	}

	closeList()
	if len(tableBuf) > 0 {
		out = append(out, lx.TableBlock(tableBuf))
	}
	out = append(out, `\end{document}`)

	return strings.Join(out, "\n")
}

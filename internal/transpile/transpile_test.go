// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"strings"
	"testing"
)

func TestTranspileEmptyInput(t *testing.T) {
	tr := New()
	got := tr.Transpile("")

	if !strings.Contains(got, `\title{Untitled Document}`) {
		t.Errorf("missing fallback title:\n%s", got)
	}
	if !strings.HasSuffix(got, "\\begin{document}\n\\maketitle\n\\end{document}") {
		t.Errorf("empty input should produce an empty body:\n%s", got)
	}
	if got != tr.Transpile("   \n  ") {
		t.Error("whitespace-only input differs from empty input")
	}
}

func TestTranspileTitleAndParagraph(t *testing.T) {
	tr := New()
	got := tr.Transpile("Title\nHello world")

	if !strings.Contains(got, `\title{Title}`) {
		t.Errorf("missing title directive:\n%s", got)
	}
	if !strings.Contains(got, "Hello world\n\n") {
		t.Errorf("missing paragraph:\n%s", got)
	}
	if strings.Contains(got, "$Hello") || strings.Contains(got, "world$") {
		t.Errorf("prose wrongly wrapped as math:\n%s", got)
	}
	if strings.Count(got, `\title{`) != 1 {
		t.Errorf("want exactly one title directive:\n%s", got)
	}
}

func TestTranspileIncludeTitleToggle(t *testing.T) {
	tr := New()
	off := false
	tr.MergeSettings(Settings{IncludeTitle: &off})

	got := tr.Transpile("My Doc\nbody text here")
	if strings.Contains(got, `\maketitle`) {
		t.Error("\\maketitle emitted with IncludeTitle off")
	}
	// The title still lands in the preamble.
	if !strings.Contains(got, `\title{My Doc}`) {
		t.Errorf("title directive missing from preamble:\n%s", got)
	}
}

func TestTranspilePreamble(t *testing.T) {
	tr := New()
	got := tr.Transpile("T\nbody")

	for _, want := range []string{
		`\documentclass{article}`,
		`\usepackage{amsmath, amssymb}`,
		`\usepackage[utf8]{inputenc}`,
		`\usepackage{xltabular}`,
		`\usepackage{booktabs}`,
		`\setlength{\parskip}{1em}`,
		`\author{}`,
		`\date{\today}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("preamble missing %q", want)
		}
	}
	if !strings.HasSuffix(got, `\end{document}`) {
		t.Error("missing closing directive")
	}
}

func TestTranspileHeadings(t *testing.T) {
	tr := New()
	got := tr.Transpile("T\n## Intro\n### Scope\n2.3.1 Deep Dive")

	for _, want := range []string{
		`\section{Intro}`,
		`\subsection{Scope}`,
		`\subsubsection{Deep Dive}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestTranspileDisplayMath(t *testing.T) {
	tr := New()

	got := tr.Transpile("T\nx ⊕ y = z")
	if !strings.Contains(got, `\[ x \oplus y = z \]`) {
		t.Errorf("missing display block:\n%s", got)
	}

	// Author-delimited math loses its dollars.
	got = tr.Transpile("T\n$x+y$")
	if !strings.Contains(got, `\[ x+y \]`) {
		t.Errorf("missing display block for $-wrapped line:\n%s", got)
	}
	if strings.Contains(got, "$x+y$") {
		t.Errorf("dollar delimiters leaked into output:\n%s", got)
	}
}

func TestTranspileListStateMachine(t *testing.T) {
	tr := New()
	got := tr.Transpile("T\n- first point\n- second point\n1. ordered one\nclosing paragraph text")

	wantOrder := []string{
		`\begin{itemize}`,
		`\item first point`,
		`\item second point`,
		`\end{itemize}`,
		`\begin{enumerate}`,
		`\item ordered one`,
		`\end{enumerate}`,
		"closing paragraph text",
	}
	pos := 0
	for _, want := range wantOrder {
		idx := strings.Index(got[pos:], want)
		if idx < 0 {
			t.Fatalf("missing or out of order: %q\n%s", want, got)
		}
		pos += idx + len(want)
	}

	// One list open at a time.
	if strings.Count(got, `\begin{itemize}`) != 1 || strings.Count(got, `\end{itemize}`) != 1 {
		t.Errorf("itemize environment unbalanced:\n%s", got)
	}
}

func TestTranspileListClosedAtEOF(t *testing.T) {
	tr := New()
	got := tr.Transpile("T\n- dangling item")
	if strings.Count(got, `\begin{itemize}`) != strings.Count(got, `\end{itemize}`) {
		t.Errorf("unclosed list at end of input:\n%s", got)
	}
}

func TestTranspileTableBuffering(t *testing.T) {
	tr := New()
	got := tr.Transpile("T\na\tb\tc\n1\t2\t3\nafter the table we continue")

	if strings.Count(got, `\begin{xltabular}`) != 1 {
		t.Errorf("want exactly one table block:\n%s", got)
	}
	if !strings.Contains(got, `\addlinespace`) {
		t.Errorf("data row missing spacer:\n%s", got)
	}
	if strings.Index(got, `\end{xltabular}`) > strings.Index(got, "after the table") {
		t.Errorf("table not flushed before following paragraph:\n%s", got)
	}
}

func TestTranspileTableFlushedAtEOF(t *testing.T) {
	tr := New()
	got := tr.Transpile("T\nh1\th2\nv1\tv2")
	if !strings.Contains(got, `\end{xltabular}`) {
		t.Errorf("trailing table not flushed:\n%s", got)
	}
	if strings.Index(got, `\end{xltabular}`) > strings.Index(got, `\end{document}`) {
		t.Errorf("table flushed after document close:\n%s", got)
	}
}

func TestTranspileDeterministic(t *testing.T) {
	tr := New()
	input := "Crypto Notes\n## Setup\nthe prover sends α to the verifier\nc = Enck(m)\n- Security: Pr[A] ≤ negl\nk\tv\na\t1"

	first := tr.Transpile(input)
	for i := 0; i < 5; i++ {
		if got := tr.Transpile(input); got != first {
			t.Fatalf("output changed between identical runs (iteration %d)", i)
		}
	}
}

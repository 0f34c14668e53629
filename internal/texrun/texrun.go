// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texrun invokes an external LaTeX compiler. The transpiler core
// never touches this package; the CLI hands it a .tex path and gets back
// a PDF path or the tail of the compiler log. Engines are detected on
// PATH, pdflatex first.
// See docs/ARCHITECTURE § Compilation.
package texrun

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/prosetex/pkg/types"
)

// logTailBytes is how much of the end of a failed compile log is
// surfaced to the user.
const logTailBytes = 500

// Result describes a completed compile.
type Result struct {
	// PDFPath is the produced artifact.
	PDFPath string

	// Log is the full combined compiler output.
	Log string
}

// Engine compiles LaTeX sources with one external binary.
type Engine interface {
	// Name returns the engine binary name.
	Name() string

	// Available reports whether the binary exists on PATH and responds
	// to a version query.
	Available() bool

	// Compile runs the engine on texPath, writing output next to the
	// source or into outDir when non-empty.
	Compile(ctx context.Context, texPath, outDir string) (Result, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// engine implements Engine for a specific compiler binary. The TeX Live
// engines and tectonic share the logic and differ only in binary name
// and argument shape.
type engine struct {
	bin  string
	argv func(base, outDir string) []string
	exec executor
}

func (e *engine) Name() string { return e.bin }

func (e *engine) Available() bool {
	if _, err := e.exec.LookPath(e.bin); err != nil {
		return false
	}
	return e.exec.RunSilent(e.bin, "--version") == nil
}

func (e *engine) Compile(ctx context.Context, texPath, outDir string) (Result, error) {
	workDir := filepath.Dir(texPath)
	base := filepath.Base(texPath)

	out, err := e.exec.RunInDir(ctx, workDir, e.bin, e.argv(base, outDir)...)
	res := Result{Log: string(out)}
	if err != nil {
		return res, fmt.Errorf("%s failed on %s: %w\nlog tail:\n%s",
			e.bin, base, err, LogTail(res.Log))
	}

	pdfDir := workDir
	if outDir != "" {
		pdfDir = outDir
	}
	res.PDFPath = filepath.Join(pdfDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
	return res, nil
}

// LogTail returns the last chunk of a compiler log, where LaTeX puts the
// actual error.
func LogTail(log string) string {
	if len(log) <= logTailBytes {
		return log
	}
	return log[len(log)-logTailBytes:]
}

func texliveArgv(base, outDir string) []string {
	args := []string{"-interaction=nonstopmode"}
	if outDir != "" {
		args = append(args, "-output-directory="+outDir)
	}
	return append(args, base)
}

func tectonicArgv(base, outDir string) []string {
	args := []string{}
	if outDir != "" {
		args = append(args, "--outdir", outDir)
	}
	return append(args, base)
}

func newEngine(name types.LaTeXEngine, exec executor) *engine {
	bin := string(name)
	e := &engine{bin: bin, exec: exec}
	if name == types.EngineTectonic {
		e.argv = tectonicArgv
	} else {
		e.argv = texliveArgv
	}
	return e
}

var defaultExec executor = &osExecutor{}

// detection order for EngineAuto.
var autoOrder = []types.LaTeXEngine{
	types.EnginePdflatex,
	types.EngineXelatex,
	types.EngineTectonic,
}

// DetectEngine resolves the configured engine. EngineAuto (or empty)
// tries pdflatex, xelatex, then tectonic; a named engine is returned
// only if it is actually available.
func DetectEngine(name types.LaTeXEngine) (Engine, error) {
	return detectEngine(name, defaultExec)
}

func detectEngine(name types.LaTeXEngine, exec executor) (Engine, error) {
	if name == "" || name == types.EngineAuto {
		for _, candidate := range autoOrder {
			if e := newEngine(candidate, exec); e.Available() {
				return e, nil
			}
		}
		return nil, fmt.Errorf("no LaTeX engine available: tried %v", autoOrder)
	}

	e := newEngine(name, exec)
	if !e.Available() {
		return nil, fmt.Errorf("LaTeX engine %q not found or not operational", name)
	}
	return e, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CompileStatus tracks whether a document's LaTeX has been compiled.
type CompileStatus string

const (
	CompileNone   CompileStatus = "none"
	CompileDone   CompileStatus = "done"
	CompileFailed CompileStatus = "failed"
)

// Document records one conversion run in the archive.
type Document struct {
	// ID is the archive slug, derived from the source name or title.
	ID string `json:"id" yaml:"id"`

	// Title is the document title (the input's first line).
	Title string `json:"title" yaml:"title"`

	// SourcePath is the input path or URL the text came from; empty for
	// stdin.
	SourcePath string `json:"source_path,omitempty" yaml:"source_path,omitempty"`

	// TexPath is where the emitted LaTeX was written.
	TexPath string `json:"tex_path" yaml:"tex_path"`

	// PDFPath is the compiled artifact, when compilation ran.
	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`

	// CompileStatus records the outcome of the optional compile step.
	CompileStatus CompileStatus `json:"compile_status" yaml:"compile_status"`

	// CreatedAt is when the conversion ran.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

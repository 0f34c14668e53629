// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the prosetex pipeline:
// stage configuration and the archived document record.
// See docs/ARCHITECTURE § Pipeline Interface.
package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "prosetex/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TranspileConfig holds the lexicon settings applied before a conversion.
type TranspileConfig struct {
	// SectionMarker is the literal prefix recognized as a section
	// heading (default "##").
	SectionMarker string `json:"section_marker" yaml:"section_marker"`

	// SubsectionMarker is the literal prefix recognized as a subsection
	// heading (default "###"). Checked before SectionMarker.
	SubsectionMarker string `json:"subsection_marker" yaml:"subsection_marker"`

	// IncludeTitle controls whether \maketitle is emitted into the body.
	// Nil means "keep the current value".
	IncludeTitle *bool `json:"include_title,omitempty" yaml:"include_title,omitempty"`

	// AnchorWords are unioned into the anchor set; supply lowercase.
	AnchorWords []string `json:"anchors,omitempty" yaml:"anchors,omitempty"`

	// PrimerWords is collected from settings surfaces for forward
	// compatibility; no transform rule reads it.
	PrimerWords []string `json:"primers,omitempty" yaml:"primers,omitempty"`

	// SettingsFile is an optional YAML file with the fields above,
	// merged on top of this struct at startup.
	SettingsFile string `json:"settings_file,omitempty" yaml:"settings_file,omitempty"`
}

// FetchConfig holds settings for reading source text from URLs.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the retry budget for rate-limited or transient
	// failures (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxBytes caps the size of a fetched document (default 8 MiB).
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes"`
}

// LaTeXEngine identifies the external compiler binary.
type LaTeXEngine string

const (
	EngineAuto     LaTeXEngine = "auto"
	EnginePdflatex LaTeXEngine = "pdflatex"
	EngineXelatex  LaTeXEngine = "xelatex"
	EngineTectonic LaTeXEngine = "tectonic"
)

// CompileConfig holds settings for invoking the external LaTeX compiler.
type CompileConfig struct {
	// Engine selects the compiler: auto, pdflatex, xelatex, or tectonic.
	Engine LaTeXEngine `json:"engine" yaml:"engine"`

	// OutputDir receives the compiled PDF; empty means alongside the
	// .tex file.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// ArchiveConfig holds settings for the conversion-run archive.
type ArchiveConfig struct {
	// ArchiveDir is the directory containing the archive database.
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir"`

	// MaxResults is the default maximum number of query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Transpile TranspileConfig `json:"transpile" yaml:"transpile"`
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Compile   CompileConfig   `json:"compile" yaml:"compile"`
	Archive   ArchiveConfig   `json:"archive" yaml:"archive"`
}

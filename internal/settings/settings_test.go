// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/prosetex/internal/transpile"
	"github.com/pdiddy/prosetex/pkg/types"
)

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(cfg.AnchorWords) != 0 || cfg.SectionMarker != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadFileParsesLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prosetex-settings.yaml")
	content := `section_marker: "@@"
include_title: false
anchors:
  - Figure
  - Table
primers:
  - "$"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.SectionMarker != "@@" {
		t.Errorf("SectionMarker = %q", cfg.SectionMarker)
	}
	if cfg.IncludeTitle == nil || *cfg.IncludeTitle {
		t.Error("IncludeTitle not parsed as explicit false")
	}
	if len(cfg.AnchorWords) != 2 || len(cfg.PrimerWords) != 1 {
		t.Errorf("word lists = %v / %v", cfg.AnchorWords, cfg.PrimerWords)
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() on malformed YAML should fail")
	}
}

func TestDeltaLowercasesAnchors(t *testing.T) {
	s := Delta(types.TranspileConfig{
		AnchorWords: []string{" Figure ", "TABLE", ""},
		PrimerWords: []string{"$"},
	})
	if len(s.AnchorWords) != 2 || s.AnchorWords[0] != "figure" || s.AnchorWords[1] != "table" {
		t.Errorf("AnchorWords = %v", s.AnchorWords)
	}
	if len(s.PrimerWords) != 1 {
		t.Errorf("PrimerWords = %v", s.PrimerWords)
	}
}

func TestApplyLayersFileOverConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("anchors: [figure]\nsection_marker: '@@'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tr := transpile.New()
	err := Apply(tr, types.TranspileConfig{
		AnchorWords:  []string{"lemma"},
		SettingsFile: path,
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	lx := tr.Lexicon()
	if !lx.IsAnchor("lemma") || !lx.IsAnchor("figure") {
		t.Error("anchors from config and file should both be merged")
	}
	if lx.SectionMarker() != "@@" {
		t.Errorf("SectionMarker = %q, want @@ from file", lx.SectionMarker())
	}
	if lx.SubsectionMarker() != "###" {
		t.Errorf("SubsectionMarker = %q, want default", lx.SubsectionMarker())
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings loads lexicon settings from YAML files and converts
// them into transpiler merge deltas. A settings file carries anchor and
// primer word lists plus the structural markers and title flag; it is
// merged on top of whatever configuration the CLI already collected.
// See docs/ARCHITECTURE § Settings.
package settings

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/prosetex/internal/transpile"
	"github.com/pdiddy/prosetex/pkg/types"
)

// LoadFile reads a YAML settings file. A missing file is not an error:
// the zero config is returned and defaults apply.
func LoadFile(path string) (types.TranspileConfig, error) {
	var cfg types.TranspileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return cfg, nil
}

// Delta converts a TranspileConfig into a lexicon merge delta. Word
// lists are trimmed and anchors lowercased, since the classifier
// compares lowercase forms.
func Delta(cfg types.TranspileConfig) transpile.Settings {
	s := transpile.Settings{
		SectionMarker:    strings.TrimSpace(cfg.SectionMarker),
		SubsectionMarker: strings.TrimSpace(cfg.SubsectionMarker),
		IncludeTitle:     cfg.IncludeTitle,
	}
	for _, w := range cfg.AnchorWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			s.AnchorWords = append(s.AnchorWords, w)
		}
	}
	for _, w := range cfg.PrimerWords {
		if w = strings.TrimSpace(w); w != "" {
			s.PrimerWords = append(s.PrimerWords, w)
		}
	}
	return s
}

// Apply loads cfg.SettingsFile when set, layers it over cfg, and merges
// the result into the transpiler. The file's word lists extend the
// in-memory ones; its scalar fields win only when non-empty.
func Apply(tr *transpile.Transpiler, cfg types.TranspileConfig) error {
	tr.MergeSettings(Delta(cfg))

	if cfg.SettingsFile == "" {
		return nil
	}
	fileCfg, err := LoadFile(cfg.SettingsFile)
	if err != nil {
		return err
	}
	tr.MergeSettings(Delta(fileCfg))
	return nil
}

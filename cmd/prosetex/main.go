// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the prosetex CLI.
// It wires the shell concerns — input fetching, settings files, .tex
// output, external compilation, the run archive — around the pure
// transpiler core. See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prosetex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the prosetex CLI.
var rootCmd = &cobra.Command{
	Use:   "prosetex",
	Short: "Heuristic plain-text to LaTeX transpiler",
	Long: `prosetex converts loosely structured plain text — prose mixed with
unmarked mathematical notation, ad-hoc headings, lists, and tab-separated
tables — into compilable LaTeX, without any explicit markup from the
author. Structure and math/prose boundaries are inferred heuristically.

The convert subcommand does the transpilation; compile hands the result
to an external LaTeX engine; archive inspects past conversion runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./prosetex.yaml or ~/.config/prosetex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("prosetex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "prosetex"))
		}
	}

	viper.SetEnvPrefix("PROSETEX")
	viper.AutomaticEnv()

	viper.SetDefault("transpile.settings_file", "")
	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", "prosetex/"+version)
	viper.SetDefault("fetch.max_retries", 5)
	viper.SetDefault("compile.engine", string(types.EngineAuto))
	viper.SetDefault("compile.output_dir", "")
	viper.SetDefault("output_dir", ".")
	viper.SetDefault("archive.dir", defaultArchiveDir())
	viper.SetDefault("archive.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultArchiveDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".prosetex"
	}
	return filepath.Join(home, ".local", "share", "prosetex")
}

// loadConfig assembles the pipeline configuration from viper state
// (defaults, config file, environment).
func loadConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Transpile: types.TranspileConfig{
			SectionMarker:    viper.GetString("transpile.section_marker"),
			SubsectionMarker: viper.GetString("transpile.subsection_marker"),
			AnchorWords:      viper.GetStringSlice("transpile.anchors"),
			PrimerWords:      viper.GetStringSlice("transpile.primers"),
			SettingsFile:     viper.GetString("transpile.settings_file"),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			MaxRetries: viper.GetInt("fetch.max_retries"),
			MaxBytes:   viper.GetInt64("fetch.max_bytes"),
		},
		Compile: types.CompileConfig{
			Engine:    types.LaTeXEngine(viper.GetString("compile.engine")),
			OutputDir: viper.GetString("compile.output_dir"),
		},
		Archive: types.ArchiveConfig{
			ArchiveDir: viper.GetString("archive.dir"),
			MaxResults: viper.GetInt("archive.max_results"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

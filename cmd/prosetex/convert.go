package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prosetex/internal/archive"
	"github.com/pdiddy/prosetex/internal/fetch"
	"github.com/pdiddy/prosetex/internal/settings"
	"github.com/pdiddy/prosetex/internal/texrun"
	"github.com/pdiddy/prosetex/internal/transpile"
	"github.com/pdiddy/prosetex/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source]",
	Short: "Convert plain text to a LaTeX document",
	Long: `Convert reads plain text from a file, an http(s) URL, or stdin when no
source is given, infers its structure and math content, and writes a
complete LaTeX document. The first input line becomes the title.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output .tex path, or - for stdout (default: <slug>.tex in output dir)")
	convertCmd.Flags().String("settings", "", "YAML settings file with markers and word lists")
	convertCmd.Flags().String("section-marker", "", "line prefix marking a section heading")
	convertCmd.Flags().String("subsection-marker", "", "line prefix marking a subsection heading")
	convertCmd.Flags().Bool("no-title", false, "omit \\maketitle from the output")
	convertCmd.Flags().Bool("compile", false, "compile the result to PDF after converting")
	convertCmd.Flags().String("engine", "", "LaTeX engine for --compile: auto, pdflatex, xelatex, or tectonic")
	convertCmd.Flags().Bool("no-archive", false, "skip recording the run in the archive")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	source := ""
	if len(args) == 1 && args[0] != "-" {
		source = args[0]
	}

	raw, err := readSource(ctx, source, cfg.Fetch)
	if err != nil {
		return err
	}

	tr := transpile.New()
	if err := settings.Apply(tr, convertTranspileConfig(cmd, cfg.Transpile)); err != nil {
		return err
	}
	tex := tr.Transpile(raw)

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), tex)
		return nil
	}

	slug := fetch.Slug(source)
	if outPath == "" {
		outPath = filepath.Join(viper.GetString("output_dir"), slug+".tex")
	}
	if err := os.WriteFile(outPath, []byte(tex+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)

	doc := types.Document{
		ID:            slug,
		Title:         documentTitle(raw),
		SourcePath:    source,
		TexPath:       outPath,
		CompileStatus: types.CompileNone,
		CreatedAt:     time.Now().UTC(),
	}

	var compileErr error
	if doCompile, _ := cmd.Flags().GetBool("compile"); doCompile {
		engineName := cfg.Compile.Engine
		if v, _ := cmd.Flags().GetString("engine"); v != "" {
			engineName = types.LaTeXEngine(v)
		}
		engine, err := texrun.DetectEngine(engineName)
		if err != nil {
			return err
		}

		res, err := engine.Compile(ctx, outPath, cfg.Compile.OutputDir)
		if err != nil {
			doc.CompileStatus = types.CompileFailed
			compileErr = err
		} else {
			doc.CompileStatus = types.CompileDone
			doc.PDFPath = res.PDFPath
			fmt.Fprintf(cmd.OutOrStdout(), "Compiled %s with %s\n", res.PDFPath, engine.Name())
		}
	}

	if noArchive, _ := cmd.Flags().GetBool("no-archive"); !noArchive {
		store, err := archive.NewStore(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Record(ctx, doc, raw); err != nil {
			return err
		}
	}

	return compileErr
}

// readSource pulls the raw text from a file, URL, or stdin.
func readSource(ctx context.Context, source string, cfg types.FetchConfig) (string, error) {
	if source == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	client := &http.Client{Timeout: cfg.Timeout}
	return fetch.Read(ctx, client, source, cfg)
}

// convertTranspileConfig layers convert's flags over the loaded config.
func convertTranspileConfig(cmd *cobra.Command, cfg types.TranspileConfig) types.TranspileConfig {
	if v, _ := cmd.Flags().GetString("settings"); v != "" {
		cfg.SettingsFile = v
	}
	if v, _ := cmd.Flags().GetString("section-marker"); v != "" {
		cfg.SectionMarker = v
	}
	if v, _ := cmd.Flags().GetString("subsection-marker"); v != "" {
		cfg.SubsectionMarker = v
	}
	if cmd.Flags().Changed("no-title") {
		noTitle, _ := cmd.Flags().GetBool("no-title")
		include := !noTitle
		cfg.IncludeTitle = &include
	}
	return cfg
}

// documentTitle mirrors the transpiler's title rule: first input line,
// or a fixed fallback for empty input.
func documentTitle(raw string) string {
	body := strings.TrimSpace(raw)
	if body == "" {
		return "Untitled Document"
	}
	return strings.TrimSpace(strings.SplitN(body, "\n", 2)[0])
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prosetex/internal/texrun"
	"github.com/pdiddy/prosetex/pkg/types"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.tex>",
	Short: "Compile a LaTeX file to PDF",
	Long: `Compile hands a .tex file to an external LaTeX engine. With
--engine auto (the default) the first of pdflatex, xelatex, and
tectonic found on PATH is used. On failure the tail of the compiler
log is included in the error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig().Compile

		engineName := cfg.Engine
		if v, _ := cmd.Flags().GetString("engine"); v != "" {
			engineName = types.LaTeXEngine(v)
		}
		engine, err := texrun.DetectEngine(engineName)
		if err != nil {
			return err
		}

		outDir := cfg.OutputDir
		if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
			outDir = v
		}
		res, err := engine.Compile(cmd.Context(), args[0], outDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Compiled %s with %s\n", res.PDFPath, engine.Name())
		return nil
	},
}

func init() {
	compileCmd.Flags().String("engine", "", "LaTeX engine: auto, pdflatex, xelatex, or tectonic")
	compileCmd.Flags().String("output-dir", "", "directory for compiler output (default: next to the source)")

	rootCmd.AddCommand(compileCmd)
}

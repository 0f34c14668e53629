package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prosetex/internal/settings"
	"github.com/pdiddy/prosetex/internal/transpile"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show the effective classification lexicon",
	Long: `Lexicon prints the markers and word lists the transpiler would use
after merging the built-in defaults, the config file, and the settings
file. Useful for checking why a word is or is not treated as prose.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig().Transpile
		if v, _ := cmd.Flags().GetString("settings"); v != "" {
			cfg.SettingsFile = v
		}

		tr := transpile.New()
		if err := settings.Apply(tr, cfg); err != nil {
			return err
		}
		lx := tr.Lexicon()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "section marker:    %q\n", lx.SectionMarker())
		fmt.Fprintf(out, "subsection marker: %q\n", lx.SubsectionMarker())
		fmt.Fprintf(out, "include title:     %v\n", lx.IncludeTitle())
		fmt.Fprintf(out, "anchor words:      %d total\n", lx.AnchorCount())
		if user := lx.UserAnchors(); len(user) > 0 {
			fmt.Fprintf(out, "  user-added:      %s\n", strings.Join(user, ", "))
		}
		if primers := lx.PrimerWords(); len(primers) > 0 {
			fmt.Fprintf(out, "primer words:      %s\n", strings.Join(primers, ", "))
		}
		return nil
	},
}

func init() {
	lexiconCmd.Flags().String("settings", "", "YAML settings file with markers and word lists")

	rootCmd.AddCommand(lexiconCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/trnltk/internal/cli"
	"github.com/aretw0/trnltk/internal/config"
	"github.com/aretw0/trnltk/internal/presentation/graph"
	"github.com/aretw0/trnltk/pkg/domain"
	suffixgraph "github.com/aretw0/trnltk/pkg/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the suffix graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the configured suffix graph. With
--word, the states visited by the word's first analysis are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		word, _ := cmd.Flags().GetString("word")
		if format != "mermaid" {
			return fmt.Errorf("unsupported graph format %q", format)
		}

		var states []*domain.State
		var overlay *graph.GraphOverlay
		if word == "" {
			g, err := suffixgraph.ByName(cfg.Graph)
			if err != nil {
				return err
			}
			states = g.States()
		} else {
			local := cfg
			local.Cache.Kind = config.CacheNone
			rt, err := cli.NewRuntime(cmd.Context(), local, logger, domain.LifecycleHooks{})
			if err != nil {
				return err
			}
			defer rt.Close()

			results, err := rt.Parser.ParseStr(cmd.Context(), word)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no analysis for %q", word)
			}
			states = rt.Analyzer.Graph().States()
			overlay = graph.OverlayFor(results[0])
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(states, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("format", "mermaid", "Output format")
	graphCmd.Flags().StringP("word", "w", "", "Highlight the path of a word")
}

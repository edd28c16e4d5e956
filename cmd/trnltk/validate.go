package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/trnltk/internal/validator"
	suffixgraph "github.com/aretw0/trnltk/pkg/graph"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the suffix graph for consistency",
	Long: `Reports states that no root reaches, states that cannot end in a terminal
state, and suffixes that label no edge or have no forms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := suffixgraph.ByName(cfg.Graph)
		if err != nil {
			return err
		}

		report := validator.ValidateGraph(g, validator.PredefinedOnly...)
		logger.Debug("graph validated",
			"graph", report.Graph,
			"states", report.States,
			"suffixes", report.Suffixes,
			"root_states", len(report.RootStates),
		)
		if err := report.Err(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Graph %q is valid: %d states, %d suffixes, %d root states\n",
			report.Graph, report.States, report.Suffixes, len(report.RootStates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/trnltk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trnltk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trnltk version %s\n", trnltk.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

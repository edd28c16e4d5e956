package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/trnltk/internal/cli"
	"github.com/aretw0/trnltk/internal/logging"
	"github.com/aretw0/trnltk/internal/presentation/tui"
	"github.com/aretw0/trnltk/pkg/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse [word...]",
	Short: "Analyse words",
	Long: `Prints every analysis of the given words. Without arguments, words are
read from standard input, whitespace separated, until EOF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		forms, _ := cmd.Flags().GetBool("forms")
		jsonMode, _ := cmd.Flags().GetBool("json")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		rt, err := cli.NewRuntime(ctx, cfg, logger, observability.LogHooks(logger))
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		opts := cli.SessionOptions{JSON: jsonMode, Forms: forms}
		interactive := len(args) == 0 && !jsonMode && logging.IsTerminal(os.Stdin)
		if interactive {
			tui.PrintBanner(out)
			opts.Prompt = "> "
		}
		session := cli.NewSession(rt.Parser, out, opts)

		if len(args) > 0 {
			err = session.ParseWords(ctx, args)
		} else {
			err = session.Run(ctx, cmd.InOrStdin())
		}
		if ctx.Signal() != nil && errors.Is(err, ctx.Err()) {
			logger.Info("interrupted", "signal", ctx.Signal().String())
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("forms", "f", false, "Show suffix forms and consumed text")
	parseCmd.Flags().Bool("json", false, "Write one JSON object per word (NDJSON)")

	// 'trnltk kitaba' parses like 'trnltk parse kitaba'.
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && logging.IsTerminal(os.Stdin) {
			return cmd.Help()
		}
		return parseCmd.RunE(cmd, args)
	}
	rootCmd.Flags().AddFlagSet(parseCmd.Flags())
}

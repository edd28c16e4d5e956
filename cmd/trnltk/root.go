package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/trnltk/internal/config"
	"github.com/aretw0/trnltk/internal/logging"
	suffixgraph "github.com/aretw0/trnltk/pkg/graph"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "trnltk",
	Short: "trnltk is a Turkish morphological analyzer",
	Long: `trnltk finds every way a Turkish word can be built from a dictionary root
and a chain of suffixes, and prints each analysis as root+Pos+Tag+...`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Configuration file (YAML, TOML or JSON)")
	flags.String("graph", "", "Suffix graph: "+strings.Join(suffixgraph.Names(), ", ")+" (default: "+suffixgraph.DefaultName+")")
	flags.String("cache", "", "Parse cache: none, lru, offline, twolevel or redis")
	flags.String("dict", "", "Extra dictionary file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig reads --config and applies the flag overrides on top of it.
func loadConfig(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	overrides := map[string]*string{
		"graph":     &cfg.Graph,
		"cache":     &cfg.Cache.Kind,
		"dict":      &cfg.Lexicon.Path,
		"log-level": &cfg.Log.Level,
	}
	for name, target := range overrides {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger = logging.NewPretty(level)
	slog.SetDefault(logger)
	return nil
}

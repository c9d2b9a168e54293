// Root command for the metagrate CLI.
package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xchem/metagrate/internal/logging"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Global flag values.
var (
	flagConfig   string
	flagDebug    bool
	flagLogLevel string
)

// Initialized by PersistentPreRunE for all subcommands.
var (
	cfg *viper.Viper
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "metagrate",
	Short: "Migrate curator annotations between metadata exports",
	Long: `Metagrate reconciles two exports of the same dataset: a source
(older, curator-annotated) and a template (newer, structurally
authoritative). It produces the template enriched with the source's
curator tags and site alias renames, with consistency checks that abort
rather than silently corrupt curated data.`,
	Version: Version,
	// Errors returned by subcommands are reported, not usage mistakes.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := flagLogLevel
		if level == "" {
			level = cfg.GetString(cfgKeyLogLevel)
		}
		log = logging.New(level, flagDebug)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./metagrate.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(diffCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gmkit/gcssync/internal/config"
	"github.com/gmkit/gcssync/internal/game/ruleset"
	"github.com/gmkit/gcssync/internal/importer"
	"github.com/gmkit/gcssync/internal/observability"
	"github.com/gmkit/gcssync/internal/storage/jsonfile"
	"github.com/gmkit/gcssync/internal/ui"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "gcssync",
	Short: "Sync GURPS character records with GCS character sheets",
	Long: `gcssync imports GCS character sheet exports into JSON character
records and keeps those records up to date as the sheets evolve, merging
builder changes without losing in-play state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, reporting failure through the standard
// logger so CLI errors come out in the same shape as everything else.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log, logErr := observability.NewLogger("debug", "console"); logErr == nil {
			log.Error("command failed", zap.Error(err))
			_ = log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing gcssync.yaml")
}

// setup loads configuration and builds the importer with its
// collaborators. Shared by the import and update commands.
func setup() (*importer.Importer, *zap.Logger, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, err
	}
	log, err := observability.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}

	defs := ruleset.DefaultSkills()
	if cfg.Rules.SkillsDir != "" {
		campaign, err := ruleset.LoadSkillDefs(cfg.Rules.SkillsDir)
		if err != nil {
			return nil, nil, fmt.Errorf("loading campaign skills: %w", err)
		}
		defs = append(defs, campaign...)
	}

	im := importer.New(
		log,
		ruleset.NewCalculator(defs),
		jsonfile.NewStore(),
		ui.NewConsole(os.Stdin, os.Stdout),
		cfg.Reconcile.GenericGear,
	)
	return im, log, nil
}

// printChanges writes the operation's change list for the user.
func printChanges(changes []string) {
	for _, change := range changes {
		fmt.Println(change)
	}
}

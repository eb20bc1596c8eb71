package main

import (
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <sheet.gcs> <record.json>",
	Short: "Build a fresh character record from a GCS sheet",
	Long: `Import reads a GCS character sheet export and writes a brand new
character record, replacing any record already at the target path. The
record remembers the sheet path for later updates.

Example:
  gcssync import korda.gcs korda.json`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	im, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	changes, err := im.Import(args[0], args[1])
	if err != nil {
		return err
	}
	printChanges(changes)
	return nil
}

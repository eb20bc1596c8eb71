package main

import (
	"github.com/spf13/cobra"
)

var updateSheetPath string

var updateCmd = &cobra.Command{
	Use:   "update <record.json>",
	Short: "Merge sheet changes into an existing character record",
	Long: `Update re-reads the GCS sheet remembered by the record, diffs the
extracted character against the stored one, and merges the differences.
Entries only present in the record are kept and reported as orphaned;
ambiguous equipment changes are resolved interactively.

Examples:
  gcssync update korda.json
  gcssync update korda.json --sheet korda-v2.gcs`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateSheetPath, "sheet", "", "GCS sheet path, overriding the one in the record")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	im, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	changes, err := im.Update(args[0], updateSheetPath)
	if err != nil {
		return err
	}
	printChanges(changes)
	return nil
}

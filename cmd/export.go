package cmd

import (
	"fmt"

	"plafond/internal/export"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan as a PDF document",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	clock, err := referenceClock()
	if err != nil {
		return err
	}

	path, err := export.Save(flagExportOut, export.Plan{
		State:       tr.State(),
		Snapshot:    tr.Snapshot(),
		GeneratedAt: clock(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Plan exporté: %s\n", path)
	return nil
}

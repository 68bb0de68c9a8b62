package cmd

import (
	"fmt"

	"plafond/internal/cli"
	"plafond/internal/engine"

	"github.com/spf13/cobra"
)

var (
	flagSimTJM  float64
	flagSimDays float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Preview a mission's impact without committing it",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimTJM, "tjm", 0, "Daily rate (€)")
	simulateCmd.Flags().Float64Var(&flagSimDays, "days", 0, "Duration in days (fractional allowed)")
	_ = simulateCmd.MarkFlagRequired("tjm")
	_ = simulateCmd.MarkFlagRequired("days")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimTJM <= 0 || flagSimDays <= 0 {
		return fmt.Errorf("tjm and days must be positive")
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	state := tr.State()
	snap := tr.Snapshot()

	amountHT := engine.MissionImpact(flagSimTJM, flagSimDays, state.VATEnabled, state.VATRate)
	newTotal := snap.TotalEngaged + amountHT
	newPct := engine.ProgressPercentage(newTotal)

	fmt.Println()
	fmt.Printf("  %s\n", cli.FormatMission(len(state.Missions)+1, flagSimTJM, flagSimDays, amountHT))
	if state.VATEnabled {
		fmt.Printf("  Montant TTC: %s (TVA %g%%)\n",
			engine.FormatEuro(flagSimTJM*flagSimDays), state.VATRate)
	}
	fmt.Printf("  Montant HT: %s\n", engine.FormatEuro(amountHT))
	fmt.Printf("  CA engagé après mission: %s (%s du plafond)\n",
		engine.FormatEuro(newTotal), engine.FormatPercent(newPct))

	if newTotal > engine.Threshold {
		fmt.Printf("  Cette mission ferait dépasser le plafond de %s.\n",
			engine.FormatEuro(newTotal-engine.Threshold))
	} else {
		fmt.Printf("  Marge restante après mission: %s\n",
			engine.FormatEuro(engine.Threshold-newTotal))
	}
	fmt.Println()
	return nil
}

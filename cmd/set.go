package cmd

import (
	"fmt"

	"plafond/internal/engine"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <earned|secured|tjm> <amount>",
	Short: "Set earned revenue, secured revenue, or the reference daily rate",
	Long: "Set a tracked amount. Input is tolerant of French formatting:\n" +
		"spaces as thousands separators and decimal commas both parse.\n" +
		"Negative or unreadable input normalizes to 0.",
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	amount := engine.ParseAmount(args[1])

	switch args[0] {
	case "earned":
		tr.SetEarnedCA(amount)
		fmt.Printf("  CA encaissé: %s\n", engine.FormatEuro(tr.State().EarnedCA))
	case "secured":
		tr.SetSecuredCA(amount)
		fmt.Printf("  CA sécurisé: %s\n", engine.FormatEuro(tr.State().SecuredCA))
	case "tjm":
		tr.SetDefaultTJM(amount)
		fmt.Printf("  TJM de référence: %s\n", engine.FormatEuro(tr.State().DefaultTJM))
	default:
		return fmt.Errorf("unknown field %q (want earned, secured, or tjm)", args[0])
	}

	snap := tr.Snapshot()
	fmt.Printf("  CA total engagé: %s (%s du plafond)\n",
		engine.FormatEuro(snap.TotalEngaged), engine.FormatPercent(snap.ProgressPercentage))
	return nil
}

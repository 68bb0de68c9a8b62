package cmd

import (
	"fmt"

	"plafond/internal/engine"

	"github.com/spf13/cobra"
)

var vatCmd = &cobra.Command{
	Use:   "vat",
	Short: "Configure VAT handling for mission amounts",
}

var vatOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Treat mission totals as incl.-tax (convert to HT)",
	RunE: func(_ *cobra.Command, _ []string) error {
		return setVATEnabled(true)
	},
}

var vatOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Treat mission totals as excl.-tax",
	RunE: func(_ *cobra.Command, _ []string) error {
		return setVATEnabled(false)
	},
}

var vatRateCmd = &cobra.Command{
	Use:   "rate <20|10|5.5>",
	Short: "Select the VAT rate",
	Args:  cobra.ExactArgs(1),
	RunE:  runVATRate,
}

func init() {
	vatCmd.AddCommand(vatOnCmd)
	vatCmd.AddCommand(vatOffCmd)
	vatCmd.AddCommand(vatRateCmd)
	rootCmd.AddCommand(vatCmd)
}

func setVATEnabled(enabled bool) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	tr.SetVATEnabled(enabled)
	if enabled {
		fmt.Printf("  TVA activée (%g%%)\n", tr.State().VATRate)
	} else {
		fmt.Println("  TVA désactivée")
	}
	return nil
}

func runVATRate(_ *cobra.Command, args []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	rate := engine.ParseAmount(args[0])
	if err := tr.SetVATRate(rate); err != nil {
		return fmt.Errorf("%w: %q (valid rates: 20, 10, 5.5)", err, args[0])
	}
	fmt.Printf("  Taux de TVA: %g%%\n", tr.State().VATRate)
	return nil
}

package cmd

import (
	"fmt"

	"plafond/internal/cli"
	"plafond/internal/engine"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current situation against the ceiling",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	state := tr.State()
	snap := tr.Snapshot()

	fmt.Println()
	fmt.Println(cli.RenderTitle("PLAFOND MICRO-ENTREPRISE"))
	fmt.Println()

	fmt.Printf("  %s\n\n", cli.RenderProgressBar(snap.ProgressPercentage, 40))

	situationRows := [][]string{
		{"CA encaissé", engine.FormatEuro(state.EarnedCA)},
		{"CA sécurisé", engine.FormatEuro(state.SecuredCA)},
		{"CA total engagé", engine.FormatEuro(snap.TotalEngaged)},
		{"---"},
		{"Plafond annuel (HT)", engine.FormatEuro(engine.Threshold)},
		{"CA restant autorisé", engine.FormatEuro(snap.RemainingCA)},
		{"Statut", cli.StatusLabel(snap.Status)},
	}
	if state.VATEnabled {
		situationRows = append(situationRows, []string{"TVA appliquée", fmt.Sprintf("%g%%", state.VATRate)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Situation",
		Headers: []string{"Indicateur", "Valeur"},
		Rows:    situationRows,
	}))

	projectionRows := [][]string{
		{"Mois restants", fmt.Sprintf("%d", snap.MonthsRemaining)},
		{"Budget conseillé/mois", engine.FormatEuro(snap.MonthlyLimit)},
		{"Rythme moyen/mois", engine.FormatEuro(snap.AverageMonthlyRate)},
	}
	if snap.OverflowMonth != nil {
		projectionRows = append(projectionRows, []string{"Dépassement prévu", *snap.OverflowMonth})
	}
	if snap.RemainingDays != nil {
		projectionRows = append(projectionRows, []string{
			"Jours facturables restants",
			fmt.Sprintf("%d j à %s/j", *snap.RemainingDays, engine.FormatEuro(state.DefaultTJM)),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projection",
		Headers: []string{"Indicateur", "Valeur"},
		Rows:    projectionRows,
	}))

	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderStatus(snap.Recommendation.Level))
	fmt.Print(cli.RenderParagraph(snap.Recommendation.Message, 70))
	fmt.Println()

	return nil
}

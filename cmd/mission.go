package cmd

import (
	"fmt"

	"plafond/internal/cli"
	"plafond/internal/engine"

	"github.com/spf13/cobra"
)

var (
	flagMissionTJM  float64
	flagMissionDays float64
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Manage simulated missions",
}

var missionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a mission and commit its amount to secured revenue",
	RunE:  runMissionAdd,
}

var missionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List simulated missions",
	RunE:  runMissionList,
}

var missionRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a mission and release its secured amount",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionRm,
}

func init() {
	missionAddCmd.Flags().Float64Var(&flagMissionTJM, "tjm", 0, "Daily rate (€)")
	missionAddCmd.Flags().Float64Var(&flagMissionDays, "days", 0, "Duration in days (fractional allowed)")
	_ = missionAddCmd.MarkFlagRequired("tjm")
	_ = missionAddCmd.MarkFlagRequired("days")

	missionCmd.AddCommand(missionAddCmd)
	missionCmd.AddCommand(missionListCmd)
	missionCmd.AddCommand(missionRmCmd)
	rootCmd.AddCommand(missionCmd)
}

func runMissionAdd(_ *cobra.Command, _ []string) error {
	if flagMissionTJM <= 0 || flagMissionDays <= 0 {
		return fmt.Errorf("tjm and days must be positive")
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	state := tr.State()
	amountHT := engine.MissionImpact(flagMissionTJM, flagMissionDays, state.VATEnabled, state.VATRate)
	m := tr.AddMission(flagMissionTJM, flagMissionDays, amountHT)

	fmt.Printf("  Mission ajoutée (%s)\n", m.ID)
	fmt.Printf("  Montant HT: %s\n", engine.FormatEuro(m.AmountHT))
	fmt.Printf("  CA sécurisé: %s\n", engine.FormatEuro(tr.State().SecuredCA))

	snap := tr.Snapshot()
	fmt.Printf("  Progression: %s\n", engine.FormatPercent(snap.ProgressPercentage))
	return nil
}

func runMissionList(_ *cobra.Command, _ []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	missions := tr.State().Missions
	if len(missions) == 0 {
		fmt.Println("  Aucune mission simulée.")
		return nil
	}

	rows := make([][]string, 0, len(missions))
	for i, m := range missions {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			m.ID[:8],
			engine.FormatEuro(m.TJM),
			fmt.Sprintf("%g", m.Days),
			engine.FormatEuro(m.AmountHT),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Missions Simulées",
		Headers: []string{"#", "Id", "TJM", "Jours", "Montant HT"},
		Rows:    rows,
	}))
	return nil
}

func runMissionRm(_ *cobra.Command, args []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	// Accept the short prefix shown by `mission list`.
	id := args[0]
	if len(id) < 36 {
		for _, m := range tr.State().Missions {
			if len(m.ID) >= len(id) && m.ID[:len(id)] == id {
				id = m.ID
				break
			}
		}
	}

	if !tr.RemoveMission(id) {
		fmt.Printf("  Aucune mission %q — rien à faire.\n", args[0])
		return nil
	}
	fmt.Printf("  Mission supprimée. CA sécurisé: %s\n", engine.FormatEuro(tr.State().SecuredCA))
	return nil
}

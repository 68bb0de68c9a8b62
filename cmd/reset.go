package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all tracked data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		fmt.Print("  Effacer toutes les données ? (o/N) ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "o" && answer != "oui" {
			fmt.Println("  Annulé.")
			return nil
		}
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	tr.Reset()
	fmt.Println("  Données effacées.")
	return nil
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"plafond/internal/config"
	"plafond/internal/engine"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	fmt.Println()
	fmt.Println("  Bienvenue dans plafond !")
	fmt.Println()

	// 1. VAT
	fmt.Println("  1. Facturez-vous avec TVA ? (o/N)")
	fmt.Print("     > ")
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	vatEnabled := answer == "o" || answer == "oui"
	tr.SetVATEnabled(vatEnabled)

	if vatEnabled {
		fmt.Println("  2. Taux de TVA")
		fmt.Println("     (1) 20% [défaut]")
		fmt.Println("     (2) 10%")
		fmt.Println("     (3) 5,5%")
		fmt.Print("     > ")
		choice, _ := reader.ReadString('\n')
		rate := engine.DefaultVATRate
		switch strings.TrimSpace(choice) {
		case "2":
			rate = 10
		case "3":
			rate = 5.5
		}
		if err := tr.SetVATRate(rate); err != nil {
			return err
		}
	}

	// 2. Reference daily rate
	fmt.Println("  3. TJM de référence (€/jour, vide pour passer)")
	fmt.Print("     > ")
	tjmInput, _ := reader.ReadString('\n')
	if tjm := engine.ParseAmount(tjmInput); tjm > 0 {
		tr.SetDefaultTJM(tjm)
	}

	// 3. Theme
	fmt.Println("  4. Thème du tableau de bord")
	fmt.Println("     (1) Flexoki Dark [défaut]")
	fmt.Println("     (2) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Configuration enregistrée dans %s\n", config.Path())
	fmt.Println("  Lancez `plafond` pour voir votre situation.")
	fmt.Println()

	return nil
}

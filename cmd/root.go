// Package cmd implements the plafond CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"plafond/internal/config"
	"plafond/internal/session"
	"plafond/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagDate    string
)

var rootCmd = &cobra.Command{
	Use:   "plafond",
	Short: "Suivi du plafond micro-entreprise",
	Long: "Track your micro-entrepreneur revenue against the 77 700 € HT annual ceiling:\n" +
		"remaining capacity, monthly budget, overflow forecast, and mission simulation.",
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Reference date (YYYY-MM-DD, default: today)")
}

// resolveDataDir applies the flag > config > XDG precedence.
func resolveDataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

// referenceClock returns the clock for calendar-relative derivations,
// honoring the --date override.
func referenceClock() (func() time.Time, error) {
	if flagDate == "" {
		return time.Now, nil
	}
	at, err := time.ParseInLocation("2006-01-02", flagDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", flagDate)
	}
	return func() time.Time { return at }, nil
}

// openTracker opens the persistent store and hydrates the tracker.
// When the database cannot be opened the session degrades to
// memory-only rather than failing; nothing in the core is fatal.
func openTracker() (*session.Tracker, func(), error) {
	cfg, _ := config.Load()

	clock, err := referenceClock()
	if err != nil {
		return nil, nil, err
	}

	var st store.Store
	st, err = store.Open(config.DBPath(resolveDataDir(cfg)))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Store unavailable (%v), running memory-only\n", err)
		}
		st = store.NewMemory()
	}

	tr := session.New(st, session.WithClock(clock))
	return tr, func() { _ = st.Close() }, nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"plafond/internal/config"
	"plafond/internal/server"

	"github.com/spf13/cobra"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tracker as a read-only local HTTP API",
	Long: "Expose the current state and computed snapshot as JSON on a local\n" +
		"address. GET /healthz, GET /v1/state, GET /v1/snapshot.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	addr := flagServeAddr
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagQuiet {
		fmt.Printf("  Listening on http://%s (Ctrl+C to stop)\n", addr)
	}

	return server.New(tr).Run(ctx, addr)
}

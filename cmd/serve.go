package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gocfs/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveEnvFile string
	serveAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculations as a JSON HTTP API",
	Long: `Start an HTTP server exposing the section calculations.

Routes:
  GET  /api/health
  POST /api/gross              section JSON -> gross properties
  POST /api/effective          section JSON -> every load case
  POST /api/effective/{mode}   section JSON -> one load case
  POST /api/report/pdf         section JSON -> PDF report
  POST /api/report/xlsx        section JSON -> XLSX report

Settings are read from the environment, optionally from an env file:
  GOCFS_ADDR   listen address (default :8080)
  GOCFS_RATE   requests per second per client (default 5)
  GOCFS_BURST  burst size per client (default 10)

Examples:
  gocfs serve
  gocfs serve --addr 127.0.0.1:9000 --env production.env`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveEnvFile, "env", ".env", "Env file with server settings")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides GOCFS_ADDR")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(serveEnvFile)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Run(ctx, cfg)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/wispmon/internal/storage"
	"github.com/user/wispmon/internal/web"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the telemetry ingestion API",
	Long: `Start the HTTP server that routers push telemetry to.

The server provides:
- POST /api/router-data        accepts telemetry reports
- GET  /api/router-data        returns the accumulated feed
- GET  /api/router-data/{id}   returns one router's reports
- POST /api/router-data/{id}/restart|disconnect router actions
- GET  /api/summary            fleet counts
- GET  /health                 liveness probe
- GET  /metrics                Prometheus metrics

Set WISPMON_API_TOKEN (or api_token in the config file) to require a
bearer token on the /api routes.

Examples:
  wispmon serve
  wispmon serve --listen :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveListen != "" {
		cfg.ListenAddr = serveListen
	}

	// Initialize database
	db, err := storage.Initialize(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	store := storage.NewTelemetryStorage(db)
	backup := storage.NewBackupWriter(cfg.BackupFile)

	fmt.Printf("Starting ingestion API on %s\n", cfg.ListenAddr)
	fmt.Println("Press Ctrl+C to stop")

	srv := web.NewServer(cfg, store, backup)
	return srv.Start()
}

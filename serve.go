package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtmuztaba/portfolio/internal/config"
	"github.com/mtmuztaba/portfolio/internal/content"
	"github.com/mtmuztaba/portfolio/internal/db"
	"github.com/mtmuztaba/portfolio/internal/session"
	"github.com/mtmuztaba/portfolio/internal/site"
)

const sessionRetentionDays = 30

var (
	servePort   int
	serveMemory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the portfolio web server. Sessions and visitor statistics are kept in SQLite
unless --memory is given, which also disables tracking and the admin dashboard.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "Keep sessions in memory and disable tracking")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := content.Load(content.Dir(cfg.ContentDir))
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveMemory {
		log.Println("Running with in-memory sessions, tracking disabled")
		srv, err := site.New(cfg, c, session.NewMemoryStore(), nil)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		return srv.Run(ctx)
	}

	database, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer database.Close()

	srv, err := site.New(cfg, c, session.NewSQLStore(database), database)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	go cleanupLoop(ctx, srv, database)

	return srv.Run(ctx)
}

// cleanupLoop applies the retention rules at startup and then daily.
func cleanupLoop(ctx context.Context, srv *site.Server, database *db.DB) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		srv.CleanupOldVisitorData(ctx)
		if n, err := database.PruneSessions(ctx, sessionRetentionDays); err != nil {
			log.Printf("Error pruning sessions: %v", err)
		} else if n > 0 {
			log.Printf("Pruned %d idle sessions", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

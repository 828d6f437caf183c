package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/johnwards/crm/internal/config"
	"github.com/johnwards/crm/internal/database"
	"github.com/johnwards/crm/internal/logging"
	"github.com/johnwards/crm/internal/server"
	"github.com/johnwards/crm/internal/store"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API and ops servers",
		Long: `Run the CRM API on addr and, unless ops_addr is "off", the operations
server (health, metrics, admin) on ops_addr.

Both servers shut down gracefully on SIGINT or SIGTERM. When a config file is
in use, changes to log.level are applied without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, rootOpts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *RootOptions) error {
	cfg, level, err := opts.setup()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DB.Driver, cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	s := store.New(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	servers := []*http.Server{{
		Addr:              cfg.Addr,
		Handler:           server.New(s, server.Options{RequestLog: cfg.RequestLog, Registerer: reg}),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg.OpsAddr != "" {
		servers = append(servers, &http.Server{
			Addr:              cfg.OpsAddr,
			Handler:           server.NewOps(s, reg),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	if path := opts.configPath(); path != "" {
		go func() {
			err := config.Watch(ctx, path, func(c config.Config) {
				if err := logging.SetLevel(level, c.Log.Level); err != nil {
					slog.Error("apply log level", "error", err)
				}
			})
			if err != nil {
				slog.Error("config watch stopped", "path", path, "error", err)
			}
		}()
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			slog.Info("starting server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "addr", srv.Addr, "error", err)
		}
	}

	return runErr
}

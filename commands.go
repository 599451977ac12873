package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/config"
	"github.com/bakurvik/mylib/libadmin/internal/database"
	"github.com/bakurvik/mylib/libadmin/internal/metrics"
	"github.com/bakurvik/mylib/libadmin/internal/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
	dbStatsName       = "library"
)

func newRootCommand() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "libadmin",
		Short:         "Library administration service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.AddCommand(newServeCommand(&envFile), newInitDBCommand(&envFile))
	return root
}

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API and the front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func newInitDBCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create missing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			return initDB(cmd.Context(), cfg)
		},
	}
}

// loadConfig reads the configuration and installs the JSON logger at the
// configured level. Errors are logged here since cobra is kept silent.
func loadConfig(envFile string) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return config.Config{}, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return cfg, nil
}

func initDB(ctx context.Context, cfg config.Config) error {
	db, err := common.SetupDB(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed setup db", "error", err)
		return err
	}
	defer common.CloseDB(db)

	if err := database.ApplySchema(ctx, db); err != nil {
		slog.Error("Failed to create tables", "error", err)
		return err
	}
	slog.Info("Tables created", "driver", cfg.DB.Driver)
	return nil
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests before the pool is closed.
func serve(ctx context.Context, cfg config.Config) error {
	db, err := common.SetupDB(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed setup db", "error", err)
		return err
	}
	defer common.CloseDB(db)

	m := metrics.New()
	if err := m.RegisterDB(db.DB, dbStatsName); err != nil {
		return errors.Wrap(err, "register db metrics")
	}

	sm := http.NewServeMux()
	apiCfg := server.ApiConfig{DB: database.New(db), Metrics: m, StaticDir: cfg.StaticDir}
	server.Handle(sm, &apiCfg)

	s := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           common.CORSMiddleware(common.LoggingMiddleware(common.RecoverMiddleware(m.Middleware(sm)))),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Addr, "driver", cfg.DB.Driver)
		serverErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		slog.Error("Failed starting server", "error", err)
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown server")
	}
	return nil
}

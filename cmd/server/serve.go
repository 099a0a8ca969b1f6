package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alecviz/internal/config"
	"alecviz/internal/handler"
	"alecviz/internal/loader"
	"alecviz/internal/logger"
	"alecviz/internal/service"
	"alecviz/internal/telemetry"
	"alecviz/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve graphs over HTTP",
	Long: `Serve point-in-time graphs over HTTP.

The dataset is read from --data-dir, or from --dataset in the --db store.
When neither is set, or loading fails and sample fallback is enabled, the
embedded sample dataset is served.

Example:
  alecviz serve --data-dir ./data --watch
  alecviz serve --db alecviz.db --dataset lab`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "HTTP listen address")
	serveCmd.Flags().String("data-dir", "", "dataset directory")
	serveCmd.Flags().String("db", "", "SQLite dataset store")
	serveCmd.Flags().String("dataset", "", "dataset name in the store")
	serveCmd.Flags().Bool("watch", false, "reload --data-dir when its files change")
}

// applyServeFlags overrides config values with flags set on the command line
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("data-dir") {
		cfg.Data.Dir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("db") {
		cfg.Database.Path, _ = flags.GetString("db")
	}
	if flags.Changed("dataset") {
		cfg.Data.Dataset, _ = flags.GetString("dataset")
	}
	if flags.Changed("watch") {
		cfg.Data.Watch, _ = flags.GetBool("watch")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyServeFlags(cmd, cfg)

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfgPath != "" {
		log.Info("config loaded", zap.String("path", cfgPath))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = version
	}
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	svc, err := service.NewGraphService(cfg.Cache.Size, log)
	if err != nil {
		return err
	}

	source := datasetSource{Dir: cfg.Data.Dir, DBPath: cfg.Database.Path, Dataset: cfg.Data.Dataset}
	if err := registerWithFallback(ctx, svc, cfg.Data.ID, source, cfg.Data.SampleFallback, log); err != nil {
		return err
	}

	if cfg.Data.Watch && cfg.Data.Dir != "" {
		w := watcher.New(cfg.Data.Dir, func() {
			reload(svc, cfg.Data.ID, cfg.Data.Dir, log)
		}).WithLogger(log)
		go func() {
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("dataset watcher stopped", zap.Error(err))
			}
		}()
	}

	h := handler.NewGraphHandler(svc, log)
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.Wrap(h.Router(), log, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// registerWithFallback loads and registers the configured dataset. When
// either step fails and fallback is enabled the embedded sample is
// registered instead, so an empty dataset falls back like a missing one.
func registerWithFallback(ctx context.Context, svc *service.GraphService, id string, source datasetSource, fallback bool, log *zap.Logger) error {
	ds, err := source.load(ctx)
	if err == nil {
		err = svc.Register(id, ds)
	}
	if err == nil {
		log.Info("dataset loaded", zap.Stringer("source", source))
		return nil
	}
	if !fallback {
		return fmt.Errorf("failed to load %s: %w", source, err)
	}

	log.Warn("failed to load dataset, serving embedded sample",
		zap.Stringer("source", source),
		zap.Error(err),
	)
	sample, err := loader.Sample()
	if err != nil {
		return err
	}
	return svc.Register(id, sample)
}

// reload swaps in the current contents of dir, keeping the previous dataset
// when the new one does not load
func reload(svc *service.GraphService, id, dir string, log *zap.Logger) {
	ds, err := loader.LoadDir(dir)
	if err != nil {
		log.Warn("dataset reload failed, keeping previous", zap.String("dir", dir), zap.Error(err))
		return
	}
	if err := svc.Register(id, ds); err != nil {
		log.Warn("dataset reload rejected, keeping previous", zap.String("dir", dir), zap.Error(err))
	}
}

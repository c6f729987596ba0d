// Command transitroute-server loads a transit network and serves routing
// queries over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/transitroute/internal/api"
	"github.com/persistorai/transitroute/internal/config"
	"github.com/persistorai/transitroute/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "transitroute-server: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	// Level was validated by config.Load.
	level, _ := logrus.ParseLevel(cfg.LogLevel) //nolint:errcheck // validated.
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

// run builds the network and serves until ctx is cancelled. A dataset that
// fails to load or build stops startup before anything listens.
func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"version":     config.Version,
		"data_source": cfg.DataSource,
		"database":    cfg.DatabaseURL,
	}).Info("starting transitroute-server")

	src, err := openSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer src.Close()

	n, err := loadNetwork(ctx, src.DatasetSource, log)
	if err != nil {
		return err
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := service.NewRouteService(n, log)
	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:            log,
		Routes:         svc,
		Database:       src.health,
		CORSOrigins:    cfg.CORSOrigins,
		Version:        config.Version,
		APIKey:         cfg.APIKey.Value(),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return listen(srv, log, "api") })
	g.Go(func() error { return listen(metricsSrv, log, "metrics") })
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(srv.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
	})

	return g.Wait()
}

func listen(srv *http.Server, log *logrus.Logger, name string) error {
	log.WithFields(logrus.Fields{"server": name, "addr": srv.Addr}).Info("listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}

	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/http"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/seed"
)

type App struct {
	Log        *logger.Logger
	Cfg        Config
	Repos      *repos.Repos
	Services   Services
	Router     *gin.Engine
	Metrics    *observability.Metrics
	SeedReport seed.Report

	server        *http.Server
	closeStore    func() error
	shutdownTrace func(context.Context) error
}

// New builds the store, seeds it and wires the router. The returned app is
// fully loaded before anything listens.
func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	if strings.EqualFold(cfg.App.Environment, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTrace := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
		Version:     cfg.App.Version,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})

	reposet, closeStore, err := wireRepos(log, cfg.Store)
	if err != nil {
		_ = shutdownTrace(ctx)
		return nil, err
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	serviceset := wireServices(log, reposet)

	log.Info("Seeding store...", "data_dir", cfg.Seed.DataDir)
	report := seed.NewLoader(log, serviceset.seedServices(), seed.Config{
		DataDir:          cfg.Seed.DataDir,
		CollegesFile:     cfg.Seed.CollegesFile,
		ScholarshipsFile: cfg.Seed.ScholarshipsFile,
		CoursesFile:      cfg.Seed.CoursesFile,
		DeadlineYear:     cfg.Seed.DeadlineYear,
	}).Run(ctx)
	for _, res := range report.Results {
		metrics.ObserveSeed(res.Source, res.Loaded, res.Err != nil)
	}

	handlerset := wireHandlers(log, serviceset)
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:           log,
		Cfg:           cfg,
		Repos:         reposet,
		Services:      serviceset,
		Router:        router,
		Metrics:       metrics,
		SeedReport:    report,
		closeStore:    closeStore,
		shutdownTrace: shutdownTrace,
		server: http.NewServer(router, http.ServerConfig{
			Addr:            cfg.HTTP.Addr(),
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
			IdleTimeout:     cfg.HTTP.IdleTimeout,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		}),
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.HTTP.Addr())
		return a.server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down HTTP server...")
		return a.server.Shutdown(context.Background())
	})
	return g.Wait()
}

func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.closeStore != nil {
		errs = append(errs, a.closeStore())
	}
	if a.shutdownTrace != nil {
		errs = append(errs, a.shutdownTrace(ctx))
	}
	a.Log.Sync()
	return errors.Join(errs...)
}

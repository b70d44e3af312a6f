// Command app runs the SceneIt HTTP backend.
//
//	@title						SceneIt API
//	@version					1.0
//	@description				Media tracking backend: favorites, playlists, watch state, ratings and reviews.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/SceneIt_Go/docs"
	"github.com/osse101/SceneIt_Go/internal/auth"
	"github.com/osse101/SceneIt_Go/internal/bootstrap"
	"github.com/osse101/SceneIt_Go/internal/config"
	"github.com/osse101/SceneIt_Go/internal/database"
	"github.com/osse101/SceneIt_Go/internal/playlist"
	"github.com/osse101/SceneIt_Go/internal/profile"
	"github.com/osse101/SceneIt_Go/internal/review"
	"github.com/osse101/SceneIt_Go/internal/scheduler"
	"github.com/osse101/SceneIt_Go/internal/server"
	"github.com/osse101/SceneIt_Go/internal/tracking"
	"github.com/osse101/SceneIt_Go/internal/worker"
)

func main() {
	initBootLogger()

	// Load reads .env, so validation has to come after it
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.RunMigrations {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	eventBus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	profileService := profile.NewService(repos.Profile, profile.Config{
		CacheSize: cfg.ProfileCacheSize,
		CacheTTL:  cfg.ProfileCacheTTL,
	})
	trackingService := tracking.NewService(repos.Tracking, profileService, eventBus)
	playlistService := playlist.NewService(repos.Playlist, eventBus)
	reviewService := review.NewService(repos.Review, eventBus)

	verifier, err := auth.NewVerifier(auth.Config{
		Secret:       cfg.JWTSecret,
		JWKSURL:      cfg.JWKSURL,
		Audience:     cfg.JWTAudience,
		Issuer:       cfg.JWTIssuer,
		JWKSCacheTTL: cfg.JWKSCacheTTL,
	})
	if err != nil {
		dbPool.Close()
		return err
	}

	workers := worker.NewPool(cfg.WorkerCount, bootstrap.WorkerQueueSize)
	workers.Start()
	sched := scheduler.New(workers)
	sched.Schedule(cfg.CounterReconcileInterval, worker.NewCounterReconcileJob(trackingService))
	slog.Info(bootstrap.LogMsgWorkersStarted,
		"workers", cfg.WorkerCount,
		"reconcile_interval", cfg.CounterReconcileInterval)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		AllowedOrigins:    cfg.AllowedOrigins(),
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	}, dbPool, verifier, server.Services{
		Tracking: trackingService,
		Playlist: playlistService,
		Review:   reviewService,
		Profile:  profileService,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   workers,
		DB:        dbPool,
	})
	return runErr
}

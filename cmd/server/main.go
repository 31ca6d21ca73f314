package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/config"
	"github.com/mkamara9/herdsman/internal/repository/mongodb"
	"github.com/mkamara9/herdsman/internal/repository/sheets"
	"github.com/mkamara9/herdsman/internal/scheduler"
	"github.com/mkamara9/herdsman/internal/server/handlers"
	"github.com/mkamara9/herdsman/internal/server/router"
	breedingsvc "github.com/mkamara9/herdsman/internal/service/breeding"
	healthsvc "github.com/mkamara9/herdsman/internal/service/health"
	livestocksvc "github.com/mkamara9/herdsman/internal/service/livestock"
	reportingsvc "github.com/mkamara9/herdsman/internal/service/reporting"
	"github.com/mkamara9/herdsman/pkg/clients/upstream"
	"github.com/mkamara9/herdsman/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var sheetsRepo sheets.Repository
	if cfg.Sheets.CredentialsPath != "" {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("sheet export enabled")
	}

	api := upstream.New(cfg.Upstream.BaseURL)

	livestockSvc := livestocksvc.NewService(api, baseLogger.Named("svc.livestock"))
	breedingSvc := breedingsvc.NewService(api, livestockSvc, baseLogger.Named("svc.breeding"))
	healthSvc := healthsvc.NewService(api, baseLogger.Named("svc.health"))
	reportingSvc := reportingsvc.NewService(breedingSvc, mongoRepo, sheetsRepo, baseLogger.Named("svc.reporting"))

	engine := router.New(
		handlers.NewBreedingHandler(breedingSvc, baseLogger.Named("handlers.breeding")),
		handlers.NewHealthHandler(healthSvc, baseLogger.Named("handlers.health")),
		handlers.NewLivestockHandler(livestockSvc, baseLogger.Named("handlers.livestock")),
		handlers.NewReportsHandler(reportingSvc, baseLogger.Named("handlers.reports")),
		baseLogger.Named("router"),
	)

	sched := scheduler.NewScheduler(*cfg, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

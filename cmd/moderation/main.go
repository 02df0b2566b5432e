package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	appAlert "github.com/ufobeep/quarantine/pkg/app/alert"
	"github.com/ufobeep/quarantine/pkg/app/moderation"
	"github.com/ufobeep/quarantine/pkg/config"
	handlers "github.com/ufobeep/quarantine/pkg/handlers/http"
	infraCache "github.com/ufobeep/quarantine/pkg/infra/cache"
	"github.com/ufobeep/quarantine/pkg/infra/database"
	infraLogger "github.com/ufobeep/quarantine/pkg/infra/logger"
	"github.com/ufobeep/quarantine/pkg/infra/repository"
	"github.com/ufobeep/quarantine/pkg/infra/store"
	"github.com/ufobeep/quarantine/pkg/infra/syncgateway"
	"github.com/ufobeep/quarantine/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("could not load config file")
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize outbox database")
	}
	defer db.Close()

	cacheInstance, err := infraCache.NewCache(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize redis")
	}
	defer cacheInstance.Close()

	gatewaySettings, err := syncgateway.DecodeSettings(cfg.Sync)
	if err != nil {
		logger.WithError(err).Fatal("invalid sync gateway settings")
	}
	gateway := syncgateway.NewHTTPGateway(logger, nil, gatewaySettings)

	// infrastructure
	alerts := store.NewMemoryStore()
	outbox := repository.NewOutboxRepository(db.DB)
	publisher := infraCache.NewRedisEventPublisher(cacheInstance)

	// services
	deriver := moderation.NewDeriver(logger, moderation.Thresholds{
		NsfwConfidence:       cfg.Moderation.NsfwThreshold,
		MisleadingConfidence: cfg.Moderation.MisleadingThreshold,
	})
	quarantiner := moderation.NewQuarantiner(logger, alerts, outbox, publisher)
	approver := moderation.NewApprover(logger, alerts, outbox, publisher)
	reclassifier := moderation.NewReclassifier(logger, alerts, deriver, publisher)
	creator := appAlert.NewCreator(logger, alerts)
	finder := appAlert.NewFinder(logger, alerts)
	evictor := appAlert.NewEvictor(logger, alerts, publisher)

	srv := server.NewModerationServer(server.ModerationServerDI{
		Config: cfg,
		Logger: logger,
		HandlerTransport: handlers.HandlerTransport{
			CreateAlertHandler:     handlers.NewCreateAlertHandler(logger, creator),
			GetAlertHandler:        handlers.NewGetAlertHandler(logger, finder),
			ListAlertsHandler:      handlers.NewListAlertsHandler(logger, finder),
			EvictAlertHandler:      handlers.NewEvictAlertHandler(logger, evictor),
			SubmitAnalysisHandler:  handlers.NewSubmitAnalysisHandler(logger, reclassifier),
			QuarantineAlertHandler: handlers.NewQuarantineAlertHandler(logger, quarantiner),
			ApproveAlertHandler:    handlers.NewApproveAlertHandler(logger, approver),
		},
	})

	worker := syncgateway.NewWorker(logger, outbox, gateway,
		time.Duration(cfg.Moderation.SyncIntervalSeconds)*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run()
	})
	group.Go(func() error {
		return worker.Run(ctx)
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return srv.Shutdown()
	})

	if err := group.Wait(); err != nil && ctx.Err() == nil {
		logger.WithError(err).Fatal("server exited with error")
	}
}

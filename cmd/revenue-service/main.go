package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/filari/revenue-service/internal/config"
	"github.com/filari/revenue-service/internal/delivery/http/handlers"
	"github.com/filari/revenue-service/internal/infrastructure/kafka"
	"github.com/filari/revenue-service/internal/infrastructure/logger"
	"github.com/filari/revenue-service/internal/infrastructure/metrics"
	"github.com/filari/revenue-service/internal/infrastructure/migrate"
	"github.com/filari/revenue-service/internal/infrastructure/postgres"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/repository"
	"github.com/filari/revenue-service/internal/usecase/referral"
	"github.com/filari/revenue-service/internal/usecase/revenue"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.RevenueDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v\n", err)
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	breakdownPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.RevenueTopic)
	filingSubscriber := kafka.NewDefaultKafkaSubscriber(brokers)

	// Init repositories
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	partyRepo := repository.NewDefaultPartyRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)

	// Init metrics and audit log
	revenueMetrics := metrics.NewRevenueMetrics()
	eventLog := logger.NewPGRevenueEventLogger(db)

	// Init usecases
	revenueUsecase := revenue.NewDefaultRevenueUsecase(
		transactionRepo,
		partyRepo,
		referralRepo,
		breakdownPublisher,
		eventLog,
		revenueMetrics,
	)
	referralUsecase := referral.NewDefaultReferralUsecase(partyRepo, referralRepo)

	// Filing completion events trigger breakdown computation
	filingConsumer := kafka.NewFilingConsumer(
		filingSubscriber,
		revenueUsecase,
		cfg.KafkaService.FilingTopic,
		cfg.KafkaService.GroupID,
	)
	go func() {
		if err := filingConsumer.Run(context.Background()); err != nil {
			slog.Error("filing consumer stopped", "error", err.Error())
		}
	}()

	// HTTP delivery
	e := echo.New()
	e.HideBanner = true
	handlers.NewRevenueHandler(revenueUsecase).RegisterRoutes(e)
	handlers.NewReferralHandler(referralUsecase).RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("revenue service started on %s\n", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.RevenueConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

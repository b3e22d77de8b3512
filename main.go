package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/config"
	"github.com/yeremiapane/food-delivery/database"
	"github.com/yeremiapane/food-delivery/events"
	"github.com/yeremiapane/food-delivery/kds"
	"github.com/yeremiapane/food-delivery/middlewares"
	"github.com/yeremiapane/food-delivery/router"
	"github.com/yeremiapane/food-delivery/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	settings := config.Load()
	utils.InitLogger(settings.LogLevel, settings.LogFormat)

	if settings.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(ctx, settings)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	hub := kds.NewHub()
	publishers := events.Multi{hub}
	if len(settings.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(events.NewKafkaWriter(settings.KafkaBrokers, settings.KafkaTopic))
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
		utils.InfoLogger.WithFields(logrus.Fields{
			"brokers": settings.KafkaBrokers,
			"topic":   settings.KafkaTopic,
		}).Info("Publishing order events to Kafka")
	}

	r := router.SetupRouter(router.Dependencies{
		DB:        db,
		Settings:  settings,
		Hub:       hub,
		Publisher: publishers,
	})

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           middlewares.NewCORS(settings).Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.WithFields(logrus.Fields{
			"app":     settings.AppName,
			"version": settings.AppVersion,
			"port":    settings.Port,
			"driver":  settings.DBDriver,
		}).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Graceful shutdown failed: %v", err)
	}
	hub.Close()
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/dathagerty/feedback-app/config"
	"github.com/dathagerty/feedback-app/internal/api"
	"github.com/dathagerty/feedback-app/internal/database"
	"github.com/dathagerty/feedback-app/internal/models"
	"github.com/dathagerty/feedback-app/internal/repository"
	"github.com/dathagerty/feedback-app/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate the schema
	err = db.AutoMigrate(&models.Prompt{}, &models.Feedback{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	router := api.NewRouter(repository.New(db))

	logger.Log.Info("server listening",
		zap.String("addr", ":"+cfg.Port),
		zap.String("database", cfg.DatabaseURL),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

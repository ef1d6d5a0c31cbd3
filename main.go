// main.go
package main

import (
	"log"

	"freelance-market/cmd"
	"freelance-market/internal/data/repository"
	"freelance-market/internal/wire"
	"freelance-market/pkg/cache"
	"freelance-market/pkg/database"
	"freelance-market/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to redis, sessions fall back to the database when it is down
	redis := cache.NewRedis(config.Redis, logger)
	defer redis.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, redis, logger)

	// Wire all dependencies
	app := wire.NewWiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.SetupRouter(), config.App.Port)
}

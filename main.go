// main.go
package main

import (
	"context"
	"log"
	"path/filepath"

	"theater-booking/cmd"
	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/mirror"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/usecase"
	"theater-booking/internal/wire"
	"theater-booking/pkg/database"
	"theater-booking/pkg/utils"

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

	// Initialize repositories and the file mirrors
	repos := repository.NewRepository(db, logger)
	screenings := mirror.NewScreeningStore(filepath.Join(config.Catalog.Dir, mirror.ScreeningFile), logger)
	bookings := mirror.NewBookingStore(filepath.Join(config.Catalog.Dir, mirror.BookingFile), logger)

	service := usecase.NewService(db, repos, screenings, bookings, config, logger)

	// Rebuild the schema, seed the catalog, restore the mirrored state
	// and top the schedule up before taking traffic.
	if err := service.Sync.Bootstrap(context.Background()); err != nil {
		logger.Fatal("Bootstrap failed", zap.Error(err))
	}

	// Wire the HTTP surface
	handler := adaptor.NewHandler(service, logger)
	app := wire.Wiring(handler, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

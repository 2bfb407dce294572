package main

import (
	"os"

	"github.com/webfolio/portfolio-backend/internal/config"
	"github.com/webfolio/portfolio-backend/internal/db"
	"github.com/webfolio/portfolio-backend/internal/logging"
	"github.com/webfolio/portfolio-backend/internal/server"
)

func main() {
	// Load configuration (reads .env and the environment once)
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Configure and get logger
	if err := logging.InitLogger(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Resolve the database handle. A missing or broken database is not
	// fatal: the contact endpoint degrades to storage errors and /test
	// reports the state.
	database := db.Open(cfg.DatabaseURL)
	defer database.Close()

	switch database.Status() {
	case db.StatusConnected:
		logger.Info("Successfully connected to database")
	case db.StatusUninitialized:
		logger.Warn("DATABASE_URL not set, running without a database")
	case db.StatusUnavailable:
		logger.Error("Failed to initialize database: %v", database.Err())
	}

	// Create and start server
	srv := server.NewServer(cfg, database)

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

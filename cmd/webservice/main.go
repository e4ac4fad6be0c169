package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/shopping-cart-service/config"
	"github.com/alimikegami/shopping-cart-service/internal/app"
	"github.com/rs/zerolog/log"

	postgresDriver "github.com/alimikegami/shopping-cart-service/internal/infrastructure/database/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func run() error {
	config := config.CreateNewConfig()
	if err := config.Validate(); err != nil {
		return err
	}

	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		return err
	}
	defer db.Close()

	server := app.App{
		DB:     db,
		Config: config,
	}

	if err := server.Setup(); err != nil {
		server.StopServer()
		return err
	}

	// Setup has assigned every field StopServer reads
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	}()

	return server.Start()
}

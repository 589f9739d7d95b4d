package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/rpupo63/portfolio-site/api"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/media"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rs/zerolog/log"
)

func main() {
	fmt.Println("Initializing app...")

	ctx := context.Background()

	c, err := config.Load(ctx)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetupLogging(c)

	log.Info().Str("DB_TYPE", config.GetString(c, "DB_TYPE", "postgres")).Msg("Connecting to database...")
	db, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)
	defer currentDB.Close()

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		if n := models.ColumnMismatchReport(db, os.Stdout); n > 0 {
			os.Exit(1)
		}
		return
	}

	if config.GetBool(c, "AUTO_MIGRATE", true) {
		if err := currentDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
		log.Info().Msg("Database schema is up to date")
	}

	store, err := media.NewStoreFromConfig(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing media store")
	}

	dispatcher := services.NewDispatcherFromConfig(c)
	log.Info().Strs("notifiers", dispatcher.Names()).Msg("Contact notifications configured")

	server, err := api.NewServer(currentDB,
		api.WithConfig(c),
		api.WithNotifier(dispatcher),
		api.WithMediaStore(store),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// Listen for interrupt signals to gracefully shutdown the server
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(server, interrupt, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}

// serve runs server until it fails or a signal arrives on interrupt. After a
// signal it shuts the server down and waits for Start to return.
func serve(server api.Server, interrupt <-chan os.Signal, timeout time.Duration) error {
	errChannel := make(chan error, 1)
	go server.Start(errChannel)

	select {
	case err := <-errChannel:
		return err
	case sig := <-interrupt:
		log.Info().Msgf("Closing server: %s", sig)
	}

	server.ShutdownGracefully(timeout)
	if err := <-errChannel; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

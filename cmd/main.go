package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "matchboard/docs"
	"matchboard/internal/handlers"
	"matchboard/internal/logger"
	"matchboard/internal/repository"
	"matchboard/internal/server"
	"matchboard/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log_level"))

	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, authConfig())
	apiHandler := handlers.NewHandler(services, log)

	router := apiHandler.InitRoutes(handlers.Options{
		CORSAllowOrigins: viper.GetStringSlice("cors.allow_origins"),
	})

	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, router); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "matchboard.db")
		dbPath = "matchboard.db"
	}
	return repository.InitDB(dbPath)
}

func authConfig() service.AuthConfig {
	ttl := viper.GetInt("auth.token_ttl_hours")
	if ttl <= 0 {
		ttl = 24
	}
	key := viper.GetString("auth.signing_key")
	if key == "" {
		key = "sample_match_secret_key"
	}
	return service.AuthConfig{
		SigningKey:      key,
		TokenTTL:        time.Duration(ttl) * time.Hour,
		VerifyPasswords: viper.GetBool("auth.verify_passwords"),
	}
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

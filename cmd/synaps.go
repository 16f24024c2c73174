package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sakib928/synaps-server/internal/client"
	"github.com/Sakib928/synaps-server/internal/configuration"
	"github.com/Sakib928/synaps-server/internal/database"
	"github.com/Sakib928/synaps-server/internal/logger"
	"github.com/Sakib928/synaps-server/internal/server"
)

func main() {
	if err := runApp(); err != nil {
		os.Exit(1)
	}
}

func runApp() error {
	appContext := context.Background()
	logOutput := io.Writer(os.Stdout)
	appLogger := logger.NewLogger(logger.LevelInfo, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	_ = godotenv.Load()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("synaps_server.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogLevel, logOutput)

	appLogger.Info("Connecting to DB")
	dbConn, err := database.ConnectDB(appContext, config.DatabaseURI)
	if err != nil {
		appLogger.Error("Error connecting to DB:", err)
		return err
	}
	defer func() {
		if err := dbConn.Disconnect(appContext); err != nil {
			appLogger.Error("Error disconnecting from DB:", err)
		}
	}()

	srv := server.Server{
		DB: database.Database{Database: dbConn.Database(database.Name)},
		Client: client.Client{
			Client:        &http.Client{Timeout: 15 * time.Second},
			StripeKey:     config.StripeSecretKey,
			StripeBaseURL: client.DefaultStripeBaseURL,
			Logger:        appLogger,
		},
		Logger:         appLogger,
		AuthSecretKey:  config.AuthSecretKey,
		AllowedOrigins: config.AllowedOrigins,
	}

	httpSrv := &http.Server{
		Handler:      srv.Handler(),
		Addr:         config.ServerAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Serving on", httpSrv.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		appLogger.Error("Server error:", err)
		return err
	case sig := <-quit:
		appLogger.Info("Received signal, shutting down:", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(appContext, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Error shutting down server:", err)
		return err
	}
	return nil
}

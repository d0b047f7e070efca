// ABOUTME: Entry point for the cabin booking HTTP backend
// ABOUTME: Wires config, logging, calendar client, routes, and shutdown
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/example/cabana-booking/config"
	"github.com/example/cabana-booking/gcal"
	"github.com/example/cabana-booking/web"
)

func main() {
	// Optional .env next to the binary; real deployments set env vars.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.FromEnv()

	client := gcal.NewGoogleClient(cfg.CredentialsFile, cfg.CalendarID)
	server := web.NewServer(logger, client, cfg)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      cors(server.Router()),
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":       cfg.Port,
			"calendarId": cfg.CalendarID,
		}).Info("server listening")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.WithField("signal", sig.String()).Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("graceful shutdown failed")
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"eventex/config"
	"eventex/db"
	"eventex/mail"
	"eventex/router"

	"github.com/gin-gonic/gin"
)

// =====================
// Configuração
// =====================
//
// CONFIG_PATH (padrão config.json) aponta para o arquivo JSON; sem arquivo,
// valem os padrões. Qualquer chave pode ser sobrescrita por variável de
// ambiente: API_PORT, DATABASE, DB_HOST, AUTOMIGRATE, SECRET_KEY,
// MAIL_BACKEND, MAIL_HOST, MAIL_FROM, ...
//
// =====================

func main() {
	cfg := config.Get(configPath())

	logFile, err := openLogFile(cfg.LogPath)
	if err != nil {
		slog.Error("failed to open the log file", "path", cfg.LogPath, "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}
	log := slog.New(slog.NewTextHandler(io.MultiWriter(os.Stdout, logFile), &opts))
	slog.SetDefault(log)

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Error("failed to connect the database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	sender, err := mail.New(cfg, log)
	if err != nil {
		log.Error("failed to init the mail sender", "error", err)
		os.Exit(1)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := router.Initialize(r, cfg, log, database, sender); err != nil {
		log.Error("failed to init the router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Eventex listening", "port", cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	log.Info("server stopped")
}

// configPath returns "" when the default file is absent so that defaults
// and environment variables are enough to boot.
func configPath() string {
	path := getenv("CONFIG_PATH", "config.json")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && os.Getenv("CONFIG_PATH") == "" {
		return ""
	}
	return path
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

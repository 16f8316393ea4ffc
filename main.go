package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/router"
)

func main() {
	setupLogger()

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the store
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables + question catalog), once, before anything else
	if err := db.EnsureSchema(context.Background(), conn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	logDatabaseReady(cfg)

	store := diary.NewStore(conn, cfg.DatabaseType, diary.WithPasswordScheme(cfg.PasswordScheme))

	server := http.Server{
		Handler: router.NewRouter(store, cfg),
		Addr:    "127.0.0.1:" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "addr", server.Addr)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// setupLogger uses readable text logs on a terminal and JSON otherwise
func setupLogger() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

func logDatabaseReady(cfg cliparse.Config) {
	if cfg.DatabaseType != db.SQLite {
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return
	}
	size := "unknown"
	if info, err := os.Stat(cfg.DatabaseURL); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType, "path", cfg.DatabaseURL, "size", size)
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/survey-pulse/cliparse"
	"github.com/danielhkuo/survey-pulse/db"
	"github.com/danielhkuo/survey-pulse/router"
	"github.com/danielhkuo/survey-pulse/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open storage
	var s store.Store
	if cfg.DatabaseType == cliparse.DatabaseMemory {
		slog.Warn("using in-memory store, responses are lost on exit")
		s = store.NewMemoryStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sqlStore, err := store.Open(ctx, db.Dialect(cfg.DatabaseType), cfg.DatabaseURL)
		cancel()
		if err != nil {
			slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
			os.Exit(1)
		}
		defer sqlStore.Close()

		// Create schema (tables)
		if err := db.CreateSchema(sqlStore.DB(), sqlStore.Dialect()); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		s = sqlStore
	}

	// Create router
	mux := router.NewRouter(s, cfg)

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown incomplete", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_body", humanize.IBytes(uint64(cfg.MaxBodyBytes)),
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

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

	"github.com/danielhkuo/vote-service/auth"
	"github.com/danielhkuo/vote-service/cliparse"
	"github.com/danielhkuo/vote-service/db"
	"github.com/danielhkuo/vote-service/middleware"
	"github.com/danielhkuo/vote-service/realtime"
	"github.com/danielhkuo/vote-service/router"
	"github.com/danielhkuo/vote-service/sessions"
	"github.com/danielhkuo/vote-service/store"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt, err = auth.GenerateSalt()
		if err != nil {
			slog.Error("admin salt generation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("ADMIN_KEY_SALT not set; admin keys will not survive a restart")
	}

	// Connect and create schema
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st := store.NewSQLStore(dbConn, store.Dialect(cfg.DatabaseType))
	hub := realtime.NewHub()
	svc := sessions.NewService(st, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go svc.RunSweeper(ctx, cfg.SweepInterval)

	// Create server
	mux := router.NewRouter(svc, hub, cfg)
	server := http.Server{
		Handler:           middleware.CORS(cfg.FrontendURL)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "frontend", cfg.FrontendURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

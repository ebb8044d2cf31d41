package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/api"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/auth"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/infrastructure/config"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/reports"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/service"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"

	_ "github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/docs" // generated swagger docs
)

// @title           Capacitación Bancos y Aseguradoras API
// @version         1.0
// @description     Training platform for insurance and banking staff — CNSF exam practice, courses, and progress reports.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := auth.NewService(ctx, db, logger, cfg.DemoPasswordHash)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	engine := service.NewExamService(db, logger)
	reportSvc := reports.NewService(db, logger)
	handler := api.NewHandler(engine, sessions, tokens, reportSvc, db, logger)

	// The timekeeper drives the exam countdown and auto-submits
	// attempts that run out of time.
	timekeeper := service.NewTimekeeper(engine, sessions, cfg.TickInterval, logger)
	go timekeeper.Run(ctx)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

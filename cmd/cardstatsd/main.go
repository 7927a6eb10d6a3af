package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/text/message"

	"github.com/randomtoy/cardstats-go/internal/adapters/decks"
	httpadapter "github.com/randomtoy/cardstats-go/internal/adapters/http"
	"github.com/randomtoy/cardstats-go/internal/adapters/sessions"
	"github.com/randomtoy/cardstats-go/internal/app"
	"github.com/randomtoy/cardstats-go/internal/config"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int        { return rand.IntN(n) }
func (stdRNG) NormFloat64() float64 { return rand.NormFloat64() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	stackStore := decks.NewEmbeddedStore(cfg.StackFiles...)
	if err := stackStore.Load(); err != nil {
		logger.Error("failed to load stacks", "error", err)
		os.Exit(1)
	}
	if _, err := stackStore.GetStack(context.Background(), cfg.DefaultStack); err != nil {
		logger.Error("default stack unavailable", "stack", cfg.DefaultStack, "error", err)
		os.Exit(1)
	}

	sessionStore := sessions.NewMemoryStore(cfg.MaxSessions, cfg.SessionTTL)

	svc := app.NewCardStatsService(stackStore, sessionStore, stdRNG{}, app.Options{
		DefaultStack: cfg.DefaultStack,
		LoadingDelay: cfg.LoadingDelay,
	}, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, message.NewPrinter(cfg.Locale), logger)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "default_stack", cfg.DefaultStack)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", "open_sessions", sessionStore.Len())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

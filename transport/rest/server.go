package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	handlers Handlers
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	log := logger.With("component", "rest")

	return &Server{
		logger:   log,
		handlers: NewHandlers(log, game),
	}
}

// Routes - builds the HTTP handler with all routes and middleware.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /play", that.handlers.Play)
	mux.HandleFunc("GET /draw", that.handlers.Draw)
	mux.HandleFunc("GET /reset_game", that.handlers.ResetGame)
	mux.HandleFunc("GET /moves", that.handlers.Moves)
	mux.HandleFunc("GET /status", that.handlers.Status)
	mux.HandleFunc("GET /ping", that.handlers.Ping)

	return withRequestID(withLogging(that.logger, withCORS(mux)))
}

// Start - serves HTTP on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

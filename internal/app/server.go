package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Server runs the cart service's HTTP listener and handles graceful
// shutdown. In-flight cart mutations finish before the listener closes;
// write-through persistence is synchronous, so a drained server leaves
// no cart state in memory only.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer wraps the router in an http.Server bound to the given port.
func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		shutdownTimeout: 10 * time.Second,
	}
}

// Run starts the listener and blocks until SIGINT/SIGTERM or a listen
// failure, then drains the server.
func (s *Server) Run() error {
	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Cart service listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received, draining")
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests within the shutdown timeout.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown deadline exceeded, connections dropped")
		return err
	}

	log.Info().Msg("Cart service stopped")
	return nil
}

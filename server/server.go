package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/flightdesk/logger"
)

const shutdownGrace = 10 * time.Second

type Server struct {
	StartTime time.Time
	Svr       *http.Server
	log       *logger.Logger
}

func NewServer(cfg *Conf, deps Deps) *Server {
	s := &Server{
		StartTime: time.Now().UTC(),
		log:       logger.NewLogger("Server", uuid.NewString()),
	}
	if deps.Log == nil {
		deps.Log = s.log
	}
	s.Svr = &http.Server{
		Handler:      SetupRoutes(deps, s.RunTime),
		Addr:         cfg.Addr,
		ReadTimeout:  cfg.TimeoutRead,
		WriteTimeout: cfg.TimeoutWrite,
		IdleTimeout:  cfg.TimeoutIdle,
	}
	return s
}

// Log returns the server's logger.
func (s *Server) Log() *logger.Logger {
	return s.log
}

func secondsToTimeStr(seconds float64) string {
	duration := time.Duration(int64(seconds)) * time.Second
	timeValue := time.Time{}.Add(duration)
	return timeValue.Format("15:04:05")
}

// returns the current run time of the server
// as a HH:MM:SS formatted string.
func (s *Server) RunTime() string {
	return secondsToTimeStr(time.Since(s.StartTime).Seconds())
}

// forcibly shuts down server and returns total run time.
func (s *Server) Shutdown() (string, error) {
	if err := s.Svr.Close(); err != nil && err != http.ErrServerClosed {
		return "0", fmt.Errorf("server shutdown failed: %v", err)
	}
	return s.RunTime(), nil
}

// starts a server that can be shut down via ctrl-c
func (s *Server) Run() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	shutDown := make(chan struct{})
	go func() {
		<-sig
		close(shutDown)
	}()
	return s.Start(shutDown)
}

// start a server that stops once shutDown is closed or receives a value.
func (s *Server) Start(shutDown <-chan struct{}) error {
	serverCtx, serverStopCtx := context.WithCancel(context.Background())
	defer serverStopCtx()

	errc := make(chan error, 1)
	go func() {
		s.log.Info("starting server...", "addr", s.Svr.Addr)
		if err := s.Svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.Svr.Addr, err)
		}
		return nil
	case <-shutDown:
	}

	// shutdown signal with grace period
	shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownGrace)
	defer cancel()

	s.log.Info("shutting down server...")
	if err := s.Svr.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("shutdown timed out. forcing exit.", "error", err)
		if _, err := s.Shutdown(); err != nil {
			return err
		}
	}
	s.log.Info(fmt.Sprintf("server run time: %s", s.RunTime()))
	return nil
}

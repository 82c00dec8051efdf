package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const defaultShutdownTimeout = 10 * time.Second

// GracefulServer runs an Echo server until SIGINT or SIGTERM and then drains
// it together with the registered components
type GracefulServer struct {
	echo       *echo.Echo
	logger     *logger.ZapLogger
	addr       string
	timeout    time.Duration
	components *ShutdownManager
}

// NewGracefulServer creates a server for cfg. components may be nil.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig, components *ShutdownManager) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	return &GracefulServer{
		echo:       e,
		logger:     zapLogger,
		addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		timeout:    timeout,
		components: components,
	}
}

// Start serves until a shutdown signal arrives
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// SIGTERM comes from Docker or Kubernetes
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(err))
		s.shutdownComponents()
		return err
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and then runs
// the component cleanups
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}
	if s.components != nil {
		s.components.Shutdown(ctx)
	}

	s.logger.Info("Server shutdown completed")
	return err
}

func (s *GracefulServer) shutdownComponents() {
	if s.components == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.components.Shutdown(ctx)
}

// ShutdownManager runs cleanup functions in registration order
type ShutdownManager struct {
	mu        sync.Mutex
	logger    *logger.ZapLogger
	names     []string
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named cleanup function
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.names = append(sm.names, name)
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every cleanup and keeps going when one fails. It returns the
// number of failed components.
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	sm.mu.Lock()
	names := append([]string(nil), sm.names...)
	functions := append([]func(context.Context) error(nil), sm.functions...)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	failed := 0
	for i, fn := range functions {
		if err := fn(ctx); err != nil {
			failed++
			sm.logger.Error("Error during component shutdown",
				logger.String("component", names[i]),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed", logger.Int("failed", failed))
	return failed
}

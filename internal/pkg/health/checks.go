package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
)

// Dependency statuses
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker checks one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a ping function such as PostgresClient.Ping
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Report is the body of the detailed health endpoints
type Report struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs every registered checker
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates a health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Check runs all checkers concurrently
func (s *Service) Check(ctx context.Context) Report {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	checkers := make([]Checker, len(names))
	for i, name := range names {
		checkers[i] = s.checkers[name]
	}
	s.mu.RUnlock()

	results := make([]error, len(names))
	var wg sync.WaitGroup
	for i := range checkers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = checkers[i].CheckHealth(ctx)
		}(i)
	}
	wg.Wait()

	report := Report{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}
	for i, name := range names {
		if err := results[i]; err != nil {
			logger.WarnCtx(ctx, "Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			report.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			report.Status = StatusUnhealthy
			continue
		}
		report.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}
	return report
}

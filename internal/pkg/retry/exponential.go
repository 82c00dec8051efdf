package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Maximum number of retry attempts
	BaseDelay     time.Duration    // Base delay between retries
	MaxDelay      time.Duration    // Maximum delay between retries
	Multiplier    float64          // Exponential backoff multiplier
	Jitter        bool             // Add randomization to prevent thundering herd
	RetryableFunc func(error) bool // Function to determine if error is retryable
}

// permanentError marks an error that must not be retried
type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent wraps err so the retrier gives up immediately
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsRetryable reports false for errors wrapped with Permanent
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var p *permanentError
	return !errors.As(err, &p)
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.RetryableFunc == nil {
		config.RetryableFunc = IsRetryable
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Retrier{
		config: config,
		logger: l,
	}
}

// ExecuteWithMetrics executes the function with retry logic and reports
// how many attempts were made.
func (r *Retrier) ExecuteWithMetrics(ctx context.Context, fn RetryableFunc) (RetryMetrics, error) {
	metrics := RetryMetrics{
		StartTime: time.Now(),
	}

	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		// Check if context is cancelled
		select {
		case <-ctx.Done():
			metrics.EndTime = time.Now()
			return metrics, ctx.Err()
		default:
		}

		metrics.Attempts++
		attemptStart := time.Now()
		err := fn(ctx)
		metrics.AttemptDurations = append(metrics.AttemptDurations, time.Since(attemptStart))

		if err == nil {
			metrics.EndTime = time.Now()
			metrics.Success = true
			if attempt > 0 {
				r.logger.Info("Function succeeded after retries",
					logger.Int("attempt", attempt+1),
					logger.Duration("total_duration", metrics.TotalDuration()))
			}
			return metrics, nil
		}

		lastErr = err
		metrics.Errors = append(metrics.Errors, err.Error())

		if !r.config.RetryableFunc(err) {
			r.logger.Debug("Error is not retryable, stopping",
				logger.Err(err),
				logger.Int("attempt", attempt+1))
			metrics.EndTime = time.Now()
			return metrics, err
		}

		// Don't sleep after the last attempt
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		metrics.Delays = append(metrics.Delays, delay)

		r.logger.Debug("Function failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Int("max_retries", r.config.MaxRetries))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			metrics.EndTime = time.Now()
			return metrics, ctx.Err()
		case <-timer.C:
		}
	}

	metrics.EndTime = time.Now()

	r.logger.Warn("Function failed after all retries",
		logger.Err(lastErr),
		logger.Int("total_attempts", metrics.Attempts))

	return metrics, fmt.Errorf("retry limit exceeded after %d attempts: %w", metrics.Attempts, lastErr)
}

// calculateDelay calculates the delay for the given attempt number
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// up to 10% jitter
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}

// RetryMetrics holds metrics about retry execution
type RetryMetrics struct {
	StartTime        time.Time
	EndTime          time.Time
	Attempts         int
	Success          bool
	Errors           []string
	Delays           []time.Duration
	AttemptDurations []time.Duration
}

// TotalDuration returns the total duration of all retry attempts
func (m RetryMetrics) TotalDuration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

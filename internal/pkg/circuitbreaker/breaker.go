// Package circuitbreaker stops webhook delivery to callback hosts that keep
// failing, so one dead tenant endpoint does not hold every worker.
package circuitbreaker

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows requests to pass through
	StateClosed State = iota
	// StateOpen rejects requests until the cool-down elapses
	StateOpen
	// StateHalfOpen lets a probe request through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Errors
var (
	ErrOpen            = errors.New("circuit breaker is open")
	ErrProbeInProgress = errors.New("circuit breaker probe in progress")
)

// Config holds circuit breaker configuration
type Config struct {
	FailureThreshold uint32               // consecutive failures that open the breaker
	CoolDown         time.Duration        // how long the breaker stays open
	Window           time.Duration        // counters reset after this much time while closed
	IsFailure        func(err error) bool // which errors count against the host
}

// DefaultConfig returns the breaker policy used for callback hosts
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		CoolDown:         time.Minute,
		Window:           30 * time.Second,
		IsFailure: func(err error) bool {
			return err != nil
		},
	}
}

// CircuitBreaker guards calls to one host
type CircuitBreaker struct {
	name   string
	config Config
	now    func() time.Time

	mutex    sync.Mutex
	state    State
	failures uint32
	probing  bool
	expiry   time.Time
}

func newBreaker(name string, config Config, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{
		name:   name,
		config: config,
		now:    now,
		state:  StateClosed,
		expiry: now().Add(config.Window),
	}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.allow(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) allow() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	now := cb.now()
	switch cb.state {
	case StateClosed:
		if now.After(cb.expiry) {
			cb.failures = 0
			cb.expiry = now.Add(cb.config.Window)
		}
	case StateOpen:
		if now.Before(cb.expiry) {
			return ErrOpen
		}
		cb.transition(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrProbeInProgress
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.probing = false
	if !cb.config.IsFailure(err) {
		cb.failures = 0
		if cb.state == StateHalfOpen {
			cb.transition(StateClosed)
			cb.expiry = cb.now().Add(cb.config.Window)
		}
		return
	}

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
		cb.transition(StateOpen)
		cb.expiry = cb.now().Add(cb.config.CoolDown)
	}
}

func (cb *CircuitBreaker) transition(state State) {
	if cb.state == state {
		return
	}
	logger.Info("Callback host circuit changed",
		logger.String("host", cb.name),
		logger.String("from", cb.state.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(cb.failures)))
	cb.state = state
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.state
}

// Manager keeps one breaker per callback host
type Manager struct {
	config Config
	now    func() time.Time

	mutex    sync.Mutex
	breakers map[string]*CircuitBreaker
}

// NewManager creates a new circuit breaker manager
func NewManager(config Config) *Manager {
	if config.IsFailure == nil {
		config.IsFailure = DefaultConfig().IsFailure
	}
	return &Manager{
		config:   config,
		now:      time.Now,
		breakers: make(map[string]*CircuitBreaker),
	}
}

// ForURL returns the breaker of the host of rawURL
func (m *Manager) ForURL(rawURL string) *CircuitBreaker {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	cb, ok := m.breakers[host]
	if !ok {
		cb = newBreaker(host, m.config, m.now)
		m.breakers[host] = cb
	}
	return cb
}

// Execute runs fn behind the breaker of rawURL's host
func (m *Manager) Execute(ctx context.Context, rawURL string, fn func(context.Context) error) error {
	return m.ForURL(rawURL).Execute(ctx, fn)
}

// States reports the state of every known host
func (m *Manager) States() map[string]string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	states := make(map[string]string, len(m.breakers))
	for host, cb := range m.breakers {
		states[host] = cb.State().String()
	}
	return states
}

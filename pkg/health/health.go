// Package health exposes liveness and readiness probes for the
// go-stardrift headless server. Liveness answers "is the process up";
// readiness runs the registered component checks and fails when any of
// them does.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HealthCheck is one component's health probe.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus is the aggregated result over all registered checks.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// ComponentHealth is one check's result.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker runs a registry of component checks.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates an empty registry.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// AddCheck registers a check, replacing any existing one of the same
// name.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// RemoveCheck removes a check by name.
func (hc *HealthChecker) RemoveCheck(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	delete(hc.checks, name)
}

// CheckHealth runs every registered check. The overall status is
// healthy only when all of them pass.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: "healthy",
		Checks: make(map[string]ComponentHealth),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = "unhealthy"
			status.Checks[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Checks[name] = ComponentHealth{
				Status: "healthy",
			}
		}
	}

	return status
}

// LivenessHandler answers 200 whenever the process can serve HTTP at
// all. Orchestrators restart the process when this stops responding.
func (hc *HealthChecker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
}

// ReadinessHandler runs the full check registry under a 5 second
// budget and answers 503 when anything fails.
func (hc *HealthChecker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := hc.CheckHealth(ctx)

	w.Header().Set("Content-Type", "application/json")

	if health.Status == "healthy" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(health)
}

// GameEngineHealthCheck fails while the simulation is not running.
type GameEngineHealthCheck struct {
	gameRunning func() bool
}

// NewGameEngineHealthCheck creates a health check over the engine's
// running flag.
func NewGameEngineHealthCheck(gameRunning func() bool) *GameEngineHealthCheck {
	return &GameEngineHealthCheck{
		gameRunning: gameRunning,
	}
}

// Name returns the name of this health check.
func (g *GameEngineHealthCheck) Name() string {
	return "game_engine"
}

// Check verifies the engine reports itself running.
func (g *GameEngineHealthCheck) Check(ctx context.Context) error {
	if !g.gameRunning() {
		return fmt.Errorf("game engine is not running")
	}
	return nil
}

// SimulationHealthCheck watches tick progression. A running engine
// whose tick counter stops advancing indicates a stalled update loop,
// which the plain running-flag check cannot see.
type SimulationHealthCheck struct {
	currentTick func() uint64
	staleAfter  time.Duration

	mu          sync.Mutex
	lastTick    uint64
	lastAdvance time.Time
}

// NewSimulationHealthCheck creates a health check that fails when the
// tick counter sits still longer than staleAfter.
func NewSimulationHealthCheck(currentTick func() uint64, staleAfter time.Duration) *SimulationHealthCheck {
	return &SimulationHealthCheck{
		currentTick: currentTick,
		staleAfter:  staleAfter,
		lastAdvance: time.Now(),
	}
}

// Name returns the name of this health check.
func (s *SimulationHealthCheck) Name() string {
	return "simulation"
}

// Check verifies that the simulation tick counter is still advancing.
func (s *SimulationHealthCheck) Check(ctx context.Context) error {
	tick := s.currentTick()

	s.mu.Lock()
	defer s.mu.Unlock()

	if tick != s.lastTick {
		s.lastTick = tick
		s.lastAdvance = time.Now()
		return nil
	}

	if stale := time.Since(s.lastAdvance); stale > s.staleAfter {
		return fmt.Errorf("simulation stalled at tick %d for %v", tick, stale.Round(time.Millisecond))
	}
	return nil
}

// MemoryHealthCheck fails when the supplied memory reading exceeds the
// limit.
type MemoryHealthCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryHealthCheck creates a health check over a memory source.
func NewMemoryHealthCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryHealthCheck {
	return &MemoryHealthCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name returns the name of this health check.
func (m *MemoryHealthCheck) Name() string {
	return "memory"
}

// Check verifies that memory usage is within the limit.
func (m *MemoryHealthCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}

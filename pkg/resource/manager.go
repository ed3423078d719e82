// Package resource enforces process-level budgets for a long-running
// simulation: a heap ceiling, a cap on tracked goroutines, and a
// shutdown barrier that waits for tracked work to drain.
package resource

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stardrift/go-stardrift/pkg/config"
	"github.com/stardrift/go-stardrift/pkg/logging"
)

// Manager watches heap usage on an interval and meters goroutines
// started through Go. It does not kill anything on its own; limit
// breaches surface through logs and the health check.
type Manager struct {
	heapLimitMB    int64
	goroutineLimit int64
	drainTimeout   time.Duration
	probeInterval  time.Duration

	tracked int64 // atomic
	heapMB  int64 // atomic

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	running  bool
	probedAt time.Time

	logger *logging.Logger
}

// Usage is a point-in-time view of the budgets.
type Usage struct {
	Goroutines     int64     `json:"goroutines"`
	GoroutineLimit int64     `json:"goroutine_limit"`
	HeapMB         int64     `json:"heap_mb"`
	HeapLimitMB    int64     `json:"heap_limit_mb"`
	ProbedAt       time.Time `json:"probed_at"`
}

// NewManager creates a manager from the process environment settings.
func NewManager(cfg *config.EnvironmentConfig) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		heapLimitMB:    cfg.MaxMemoryMB,
		goroutineLimit: int64(cfg.MaxGoroutines),
		drainTimeout:   cfg.ShutdownTimeout,
		probeInterval:  cfg.ResourceCheckInterval,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
		probedAt:       time.Now(),
		logger:         logging.NewLogger(),
	}
}

// Start launches the probe loop. Calling Start on a running manager is
// an error.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return fmt.Errorf("resource manager already running")
	}
	m.running = true

	go m.probeLoop()

	m.logger.Info(m.ctx, "Resource manager started",
		"heap_limit_mb", m.heapLimitMB,
		"goroutine_limit", m.goroutineLimit,
		"probe_interval", m.probeInterval,
	)
	return nil
}

// Go starts fn on a tracked goroutine. It refuses when the goroutine
// budget is exhausted, and recovers panics so one crashed worker does
// not take the process down.
func (m *Manager) Go(ctx context.Context, name string, fn func(context.Context)) error {
	if current := atomic.LoadInt64(&m.tracked); current >= m.goroutineLimit {
		return fmt.Errorf("goroutine budget exhausted: %d/%d", current, m.goroutineLimit)
	}
	atomic.AddInt64(&m.tracked, 1)

	go func() {
		defer atomic.AddInt64(&m.tracked, -1)
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error(ctx, "Tracked goroutine panicked",
					fmt.Errorf("panic: %v", r),
					"name", name,
				)
			}
		}()
		fn(ctx)
	}()

	return nil
}

// ProbeHeap samples the live heap and records it. It returns an error
// when the heap exceeds the configured ceiling.
func (m *Manager) ProbeHeap() error {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	heapMB := int64(stats.Alloc / 1024 / 1024)
	atomic.StoreInt64(&m.heapMB, heapMB)

	m.mu.Lock()
	m.probedAt = time.Now()
	m.mu.Unlock()

	if heapMB > m.heapLimitMB {
		return fmt.Errorf("heap %dMB over the %dMB ceiling", heapMB, m.heapLimitMB)
	}
	return nil
}

// TrackedGoroutines returns how many goroutines started via Go are
// still running.
func (m *Manager) TrackedGoroutines() int64 {
	return atomic.LoadInt64(&m.tracked)
}

// HeapMB returns the heap size recorded by the last probe. Zero until
// the first probe fires.
func (m *Manager) HeapMB() int64 {
	return atomic.LoadInt64(&m.heapMB)
}

// Snapshot returns the current budget usage.
func (m *Manager) Snapshot() Usage {
	m.mu.Lock()
	probedAt := m.probedAt
	m.mu.Unlock()

	return Usage{
		Goroutines:     m.TrackedGoroutines(),
		GoroutineLimit: m.goroutineLimit,
		HeapMB:         m.HeapMB(),
		HeapLimitMB:    m.heapLimitMB,
		ProbedAt:       probedAt,
	}
}

// Shutdown stops the probe loop and waits for tracked goroutines to
// drain, bounded by the caller's context and the configured drain
// timeout. Safe to call more than once.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	m.mu.Unlock()

	m.logger.Info(ctx, "Resource manager shutting down",
		"tracked_goroutines", m.TrackedGoroutines(),
	)
	m.cancel()

	drainCtx, cancel := context.WithTimeout(ctx, m.drainTimeout)
	defer cancel()

	select {
	case <-m.done:
	case <-drainCtx.Done():
		m.logger.Warn(ctx, "Probe loop did not stop before the drain deadline")
	}

	return m.drain(drainCtx)
}

// drain polls the tracked count until it reaches zero or the context
// expires.
func (m *Manager) drain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		remaining := m.TrackedGoroutines()
		if remaining == 0 {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("shutdown drain timed out with %d goroutines running", remaining)
		}
	}
}

// probeLoop samples the heap on the configured interval until
// Shutdown cancels it.
func (m *Manager) probeLoop() {
	defer close(m.done)

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.ProbeHeap(); err != nil {
				m.logger.Error(m.ctx, "Heap ceiling exceeded", err,
					"heap_mb", m.HeapMB(),
					"heap_limit_mb", m.heapLimitMB,
				)
			}
		case <-m.ctx.Done():
			return
		}
	}
}

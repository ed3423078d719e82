package resource

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stardrift/go-stardrift/pkg/config"
)

// testEnvConfig returns tight budgets and a fast probe so tests finish
// quickly.
func testEnvConfig() *config.EnvironmentConfig {
	return &config.EnvironmentConfig{
		MaxMemoryMB:           4096,
		MaxGoroutines:         4,
		ShutdownTimeout:       time.Second,
		ResourceCheckInterval: 10 * time.Millisecond,
	}
}

func TestNewManager(t *testing.T) {
	m := NewManager(testEnvConfig())
	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.TrackedGoroutines() != 0 {
		t.Errorf("tracked = %d before any Go call, expected 0", m.TrackedGoroutines())
	}
	if m.HeapMB() != 0 {
		t.Errorf("heap = %d before first probe, expected 0", m.HeapMB())
	}
}

func TestManager_StartTwiceFails(t *testing.T) {
	m := NewManager(testEnvConfig())
	if err := m.Start(); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	defer m.Shutdown(context.Background())

	if err := m.Start(); err == nil {
		t.Error("second Start succeeded, expected an error")
	}
}

func TestManager_GoTracksAndDrains(t *testing.T) {
	m := NewManager(testEnvConfig())

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	err := m.Go(context.Background(), "worker", func(ctx context.Context) {
		wg.Done()
		<-release
	})
	if err != nil {
		t.Fatalf("Go failed: %v", err)
	}

	wg.Wait()
	if m.TrackedGoroutines() != 1 {
		t.Errorf("tracked = %d, expected 1", m.TrackedGoroutines())
	}

	close(release)
	deadline := time.After(time.Second)
	for m.TrackedGoroutines() != 0 {
		select {
		case <-deadline:
			t.Fatal("tracked count never drained")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestManager_GoRefusesOverBudget(t *testing.T) {
	m := NewManager(testEnvConfig())

	release := make(chan struct{})
	defer close(release)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		if err := m.Go(context.Background(), "filler", func(ctx context.Context) {
			wg.Done()
			<-release
		}); err != nil {
			t.Fatalf("Go %d failed under budget: %v", i, err)
		}
	}
	wg.Wait()

	if err := m.Go(context.Background(), "overflow", func(ctx context.Context) {}); err == nil {
		t.Error("Go succeeded past the goroutine budget")
	}
}

func TestManager_GoRecoversPanic(t *testing.T) {
	m := NewManager(testEnvConfig())

	if err := m.Go(context.Background(), "crasher", func(ctx context.Context) {
		panic("deliberate")
	}); err != nil {
		t.Fatalf("Go failed: %v", err)
	}

	deadline := time.After(time.Second)
	for m.TrackedGoroutines() != 0 {
		select {
		case <-deadline:
			t.Fatal("panicked goroutine never released its budget slot")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestManager_ProbeHeap(t *testing.T) {
	m := NewManager(testEnvConfig())

	if err := m.ProbeHeap(); err != nil {
		t.Errorf("ProbeHeap failed under a 4GB ceiling: %v", err)
	}

	usage := m.Snapshot()
	if usage.HeapLimitMB != 4096 {
		t.Errorf("heap limit = %d, expected 4096", usage.HeapLimitMB)
	}
	if usage.ProbedAt.IsZero() {
		t.Error("probe timestamp not recorded")
	}
}

func TestManager_ProbeHeapOverCeiling(t *testing.T) {
	cfg := testEnvConfig()
	cfg.MaxMemoryMB = 0

	m := NewManager(cfg)
	// Keep at least 2MB live so the probe cannot round down to the
	// zero ceiling.
	ballast := make([]byte, 2<<20)
	defer func() { _ = ballast }()

	if err := m.ProbeHeap(); err == nil {
		t.Error("ProbeHeap passed with a zero ceiling")
	}
}

func TestManager_ProbeLoopRuns(t *testing.T) {
	m := NewManager(testEnvConfig())
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer m.Shutdown(context.Background())

	time.Sleep(50 * time.Millisecond)

	if m.HeapMB() < 0 {
		t.Error("heap reading negative")
	}
	if m.Snapshot().ProbedAt.IsZero() {
		t.Error("probe loop never stamped a probe time")
	}
}

func TestManager_ShutdownIdempotent(t *testing.T) {
	m := NewManager(testEnvConfig())
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := m.Shutdown(context.Background()); err != nil {
		t.Errorf("first Shutdown failed: %v", err)
	}
	if err := m.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown failed: %v", err)
	}
}

func TestManager_ShutdownDrainTimeout(t *testing.T) {
	cfg := testEnvConfig()
	cfg.ShutdownTimeout = 50 * time.Millisecond
	m := NewManager(cfg)
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	release := make(chan struct{})
	defer close(release)
	var wg sync.WaitGroup
	wg.Add(1)
	if err := m.Go(context.Background(), "straggler", func(ctx context.Context) {
		wg.Done()
		<-release
	}); err != nil {
		t.Fatalf("Go failed: %v", err)
	}
	wg.Wait()

	if err := m.Shutdown(context.Background()); err == nil {
		t.Error("Shutdown succeeded with a goroutine still running")
	}
}

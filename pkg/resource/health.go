// pkg/resource/health.go
package resource

import (
	"context"
	"fmt"
)

// HealthCheck reports budget pressure for readiness probes. It trips
// on a heap over the ceiling or on goroutine usage past 80% of the
// cap, before the hard refusal in Go would start biting.
type HealthCheck struct {
	manager *Manager
}

// NewResourceHealthCheck creates a health check over the manager.
func NewResourceHealthCheck(manager *Manager) *HealthCheck {
	return &HealthCheck{manager: manager}
}

// Name returns the name of this health check.
func (h *HealthCheck) Name() string {
	return "resource"
}

// Check verifies that budget usage leaves headroom.
func (h *HealthCheck) Check(ctx context.Context) error {
	usage := h.manager.Snapshot()

	if usage.HeapMB > usage.HeapLimitMB {
		return fmt.Errorf("heap %dMB over the %dMB ceiling", usage.HeapMB, usage.HeapLimitMB)
	}

	threshold := int64(float64(usage.GoroutineLimit) * 0.8)
	if usage.Goroutines > threshold {
		return fmt.Errorf("goroutine usage %d past the 80%% threshold (%d/%d)",
			usage.Goroutines, threshold, usage.GoroutineLimit)
	}

	return nil
}

package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/colima-services/reference-api/internal/metrics"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/colima-services/reference-api/pkg/log"
	"github.com/robfig/cron"
)

// Monitor periodically sweeps the secret store's health
// and publishes the outcome as metrics.
type Monitor struct {
	secrets  *vault.Client
	schedule cron.Schedule
}

// New builds a Monitor firing at the given interval. A zero
// interval disables the sweep entirely.
func New(secrets *vault.Client, interval time.Duration) (*Monitor, error) {
	if interval == 0 {
		return &Monitor{secrets: secrets}, nil
	}

	schedule, err := cron.Parse(fmt.Sprintf("@every %v", interval))
	if err != nil {
		return nil, err
	}

	return &Monitor{secrets: secrets, schedule: schedule}, nil
}

// Enabled reports whether the Monitor has a schedule to run on.
func (m *Monitor) Enabled() bool {
	return m.schedule != nil
}

// Listen blocks, sweeping the store's health on every tick
// until the context is cancelled.
func (m *Monitor) Listen(ctx context.Context) {
	if !m.Enabled() {
		return
	}

	log.Info("health monitor listening")

	for {
		select {
		case <-time.After(time.Until(m.schedule.Next(time.Now()))):
			m.Sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Sweep performs a single health check and records it.
func (m *Monitor) Sweep(ctx context.Context) vault.HealthStatus {
	health := m.secrets.CheckStoreHealth(ctx)

	healthy := 1.0
	if health.Status != vault.StatusHealthy {
		healthy = 0
		log.Warn("secret store unhealthy", "error", health.Error)
	} else {
		log.Debug(
			"secret store healthy",
			"initialized", health.Initialized,
			"sealed", health.Sealed,
			"version", health.Version,
		)
	}

	metrics.StoreHealthy.Set(healthy)
	metrics.DependencyHealthy.WithLabelValues("vault").Set(healthy)

	return health
}

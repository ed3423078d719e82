// Package observability exposes Prometheus metrics for the simulation
// loop so a headless session can be watched from the outside.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the simulation-level Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	ticksTotal      prometheus.Counter
	tickDuration    prometheus.Histogram
	bodies          prometheus.Gauge
	enemies         prometheus.Gauge
	projectiles     prometheus.Gauge
	rocketFuel      prometheus.Gauge
	rocketHealth    prometheus.Gauge
	collisionsTotal prometheus.Counter
	landingsTotal   prometheus.Counter
	takeoffsTotal   prometheus.Counter
	enemiesKilled   prometheus.Counter
	shotsFired      prometheus.Counter
}

// NewMetrics creates the collectors on a private registry so tests can
// instantiate as many as they like without duplicate registration
// panics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ticksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "stardrift_ticks_total",
			Help: "Fixed simulation steps executed.",
		}),
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stardrift_tick_duration_seconds",
			Help:    "Wall-clock time spent per fixed simulation step.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 2, 12),
		}),
		bodies: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stardrift_bodies",
			Help: "Celestial bodies currently simulated.",
		}),
		enemies: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stardrift_enemies",
			Help: "Active enemy ships.",
		}),
		projectiles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stardrift_projectiles",
			Help: "Active projectiles in flight.",
		}),
		rocketFuel: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stardrift_rocket_fuel",
			Help: "Player rocket fuel reserve.",
		}),
		rocketHealth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stardrift_rocket_health",
			Help: "Player rocket hull health.",
		}),
		collisionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "stardrift_surface_collisions_total",
			Help: "Hard surface impacts (bounces) the rocket has taken.",
		}),
		landingsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "stardrift_landings_total",
			Help: "Successful soft landings.",
		}),
		takeoffsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "stardrift_takeoffs_total",
			Help: "Completed hold-to-launch takeoffs.",
		}),
		enemiesKilled: factory.NewCounter(prometheus.CounterOpts{
			Name: "stardrift_enemies_destroyed_total",
			Help: "Enemy ships destroyed.",
		}),
		shotsFired: factory.NewCounter(prometheus.CounterOpts{
			Name: "stardrift_shots_fired_total",
			Help: "Projectiles fired by anyone.",
		}),
	}
}

// Handler returns the HTTP handler serving this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TickObserved records one completed fixed step and its duration.
func (m *Metrics) TickObserved(d time.Duration) {
	m.ticksTotal.Inc()
	m.tickDuration.Observe(d.Seconds())
}

// RecordCounts updates the population gauges.
func (m *Metrics) RecordCounts(bodies, enemies, projectiles int) {
	m.bodies.Set(float64(bodies))
	m.enemies.Set(float64(enemies))
	m.projectiles.Set(float64(projectiles))
}

// RecordRocket updates the player state gauges.
func (m *Metrics) RecordRocket(fuel, health float64) {
	m.rocketFuel.Set(fuel)
	m.rocketHealth.Set(health)
}

// RecordCollision counts a hard surface impact.
func (m *Metrics) RecordCollision() { m.collisionsTotal.Inc() }

// RecordLanding counts a soft landing.
func (m *Metrics) RecordLanding() { m.landingsTotal.Inc() }

// RecordTakeoff counts a completed takeoff.
func (m *Metrics) RecordTakeoff() { m.takeoffsTotal.Inc() }

// RecordEnemyDestroyed counts a destroyed enemy.
func (m *Metrics) RecordEnemyDestroyed() { m.enemiesKilled.Inc() }

// RecordShotFired counts a projectile launch.
func (m *Metrics) RecordShotFired() { m.shotsFired.Inc() }

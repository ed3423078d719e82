// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// GameConfig contains configuration for a Stardrift session
type GameConfig struct {
	World      WorldConfig      `json:"world"`
	Simulation SimulationConfig `json:"simulation"`
	Rocket     RocketConfig     `json:"rocket"`
	Enemies    EnemyConfig      `json:"enemies"`
}

// WorldConfig drives procedural star-system generation
type WorldConfig struct {
	Seed            int64   `json:"seed"`
	StarMassMin     float64 `json:"starMassMin"`
	StarMassMax     float64 `json:"starMassMax"`
	StarRadius      float64 `json:"starRadius"`
	PlanetCount     int     `json:"planetCount"`
	MinOrbitRadius  float64 `json:"minOrbitRadius"`
	MaxOrbitRadius  float64 `json:"maxOrbitRadius"`
	PlanetMassMin   float64 `json:"planetMassMin"`
	PlanetMassMax   float64 `json:"planetMassMax"`
	PlanetRadiusMin float64 `json:"planetRadiusMin"`
	PlanetRadiusMax float64 `json:"planetRadiusMax"`
	AsteroidCount   int     `json:"asteroidCount"`
	AsteroidMassMin float64 `json:"asteroidMassMin"`
	AsteroidMassMax float64 `json:"asteroidMassMax"`
	StationCount    int     `json:"stationCount"`
	StationMass     float64 `json:"stationMass"`
	BlackHoleChance float64 `json:"blackHoleChance"`
	BlackHoleMass   float64 `json:"blackHoleMass"`
	BlackHoleRadius float64 `json:"blackHoleRadius"`
}

// SimulationConfig holds every physics tunable in one injectable
// struct. There is no module-level state anywhere in the physics
// packages: tests inject exaggerated values here instead of waiting
// out realistic timescales.
type SimulationConfig struct {
	GravityConstant           float64 `json:"gravityConstant"`
	TimeStep                  float64 `json:"timeStep"`
	MaxFrameTime              float64 `json:"maxFrameTime"`
	MinDistanceSq             float64 `json:"minDistanceSq"`
	CrashThreshold            float64 `json:"crashThreshold"`
	CrashDamage               float64 `json:"crashDamage"`
	BounceDamping             float64 `json:"bounceDamping"`
	TakeoffDuration           float64 `json:"takeoffDuration"`
	TakeoffFuelCost           float64 `json:"takeoffFuelCost"`
	TakeoffThrustMultiplier   float64 `json:"takeoffThrustMultiplier"`
	TrajectorySteps           int     `json:"trajectorySteps"`
	TrajectoryStepDt          float64 `json:"trajectoryStepDt"`
	TrajectoryRefreshInterval float64 `json:"trajectoryRefreshInterval"`
}

// RocketConfig contains the player craft tuning
type RocketConfig struct {
	Mass                float64 `json:"mass"`
	Radius              float64 `json:"radius"`
	Thrust              float64 `json:"thrust"`
	TurnRate            float64 `json:"turnRate"`
	BrakeFactor         float64 `json:"brakeFactor"`
	MaxFuel             float64 `json:"maxFuel"`
	FuelConsumptionRate float64 `json:"fuelConsumptionRate"`
	MaxHealth           float64 `json:"maxHealth"`
	MaxShield           float64 `json:"maxShield"`
}

// EnemyConfig contains enemy spawn tuning
type EnemyConfig struct {
	MaxEnemies int     `json:"maxEnemies"`
	SpawnRate  float64 `json:"spawnRate"`
	Health     float64 `json:"health"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the reference game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Seed:            1,
			StarMassMin:     5e6,
			StarMassMax:     5e7,
			StarRadius:      300,
			PlanetCount:     5,
			MinOrbitRadius:  1500,
			MaxOrbitRadius:  10000,
			PlanetMassMin:   5e4,
			PlanetMassMax:   5e5,
			PlanetRadiusMin: 20,
			PlanetRadiusMax: 50,
			AsteroidCount:   12,
			AsteroidMassMin: 10,
			AsteroidMassMax: 100,
			StationCount:    1,
			StationMass:     5e4,
			BlackHoleChance: 0.25,
			BlackHoleMass:   1e8,
			BlackHoleRadius: 80,
		},
		Simulation: DefaultSimulationConfig(),
		Rocket: RocketConfig{
			Mass:                100,
			Radius:              10,
			Thrust:              500,
			TurnRate:            3.0,
			BrakeFactor:         1.5,
			MaxFuel:             1000,
			FuelConsumptionRate: 0.5,
			MaxHealth:           100,
			MaxShield:           50,
		},
		Enemies: EnemyConfig{
			MaxEnemies: 5,
			SpawnRate:  0.01,
			Health:     3,
		},
	}
}

// DefaultSimulationConfig returns the reference physics tunables
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		GravityConstant:           9.674e-5,
		TimeStep:                  0.1,
		MaxFrameTime:              0.25,
		MinDistanceSq:             1.0,
		CrashThreshold:            30,
		CrashDamage:               50,
		BounceDamping:             0.3,
		TakeoffDuration:           2.0,
		TakeoffFuelCost:           100,
		TakeoffThrustMultiplier:   5.0,
		TrajectorySteps:           200,
		TrajectoryStepDt:          0.2,
		TrajectoryRefreshInterval: 0.5,
	}
}

// EnvironmentConfig holds process-level settings read from the
// environment rather than the game config file.
type EnvironmentConfig struct {
	MaxMemoryMB           int64
	MaxGoroutines         int
	ShutdownTimeout       time.Duration
	ResourceCheckInterval time.Duration
	MetricsAddr           string
}

// LoadConfigFromEnv reads process-level settings from STARDRIFT_*
// environment variables, applying safe defaults for anything unset.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		MaxMemoryMB:           500,
		MaxGoroutines:         1000,
		ShutdownTimeout:       30 * time.Second,
		ResourceCheckInterval: 10 * time.Second,
		MetricsAddr:           ":9190",
	}

	if v := os.Getenv("STARDRIFT_MAX_MEMORY_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid STARDRIFT_MAX_MEMORY_MB: %q", v)
		}
		cfg.MaxMemoryMB = n
	}
	if v := os.Getenv("STARDRIFT_MAX_GOROUTINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid STARDRIFT_MAX_GOROUTINES: %q", v)
		}
		cfg.MaxGoroutines = n
	}
	if v := os.Getenv("STARDRIFT_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid STARDRIFT_SHUTDOWN_TIMEOUT: %q", v)
		}
		cfg.ShutdownTimeout = d
	}
	if v := os.Getenv("STARDRIFT_RESOURCE_CHECK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid STARDRIFT_RESOURCE_CHECK_INTERVAL: %q", v)
		}
		cfg.ResourceCheckInterval = d
	}
	if v := os.Getenv("STARDRIFT_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}

	return cfg, nil
}

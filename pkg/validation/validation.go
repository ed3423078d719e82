// Package validation checks game configuration and generated world
// content before the simulation starts, so bad numbers fail fast
// instead of producing NaN positions ten minutes into a session.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stardrift/go-stardrift/pkg/config"
)

// Content limits
const (
	MaxNameLen     = 32
	MaxPlanetCount = 64
	MaxBodyCount   = 1024
)

// Allow alphanumeric, spaces, hyphens, and basic punctuation for body names
var validNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)

// ValidateName validates and trims a celestial or craft name
func ValidateName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return "", fmt.Errorf("name too long: %d characters (max %d)", len(name), MaxNameLen)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name cannot be only whitespace")
	}
	if !validNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("name contains invalid characters")
	}

	return trimmed, nil
}

// ValidateBodyParameters checks the physical parameters of a single body
func ValidateBodyParameters(mass, radius float64) error {
	if mass < 0 {
		return fmt.Errorf("mass cannot be negative: %v", mass)
	}
	if radius <= 0 {
		return fmt.Errorf("radius must be positive: %v", radius)
	}
	return nil
}

// ValidateSimulationConfig checks the physics tunables
func ValidateSimulationConfig(sim config.SimulationConfig) error {
	if sim.GravityConstant <= 0 {
		return fmt.Errorf("gravity constant must be positive: %v", sim.GravityConstant)
	}
	if sim.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive: %v", sim.TimeStep)
	}
	if sim.MaxFrameTime < sim.TimeStep {
		return fmt.Errorf("max frame time %v shorter than time step %v", sim.MaxFrameTime, sim.TimeStep)
	}
	if sim.MinDistanceSq <= 0 {
		return fmt.Errorf("minimum distance guard must be positive: %v", sim.MinDistanceSq)
	}
	if sim.CrashThreshold < 0 {
		return fmt.Errorf("crash threshold cannot be negative: %v", sim.CrashThreshold)
	}
	if sim.BounceDamping < 0 || sim.BounceDamping > 1 {
		return fmt.Errorf("bounce damping must be in [0, 1]: %v", sim.BounceDamping)
	}
	if sim.TakeoffDuration <= 0 {
		return fmt.Errorf("takeoff duration must be positive: %v", sim.TakeoffDuration)
	}
	if sim.TrajectorySteps <= 0 {
		return fmt.Errorf("trajectory steps must be positive: %d", sim.TrajectorySteps)
	}
	if sim.TrajectoryStepDt <= 0 {
		return fmt.Errorf("trajectory step dt must be positive: %v", sim.TrajectoryStepDt)
	}
	return nil
}

// ValidateWorldConfig checks the generation parameters
func ValidateWorldConfig(world config.WorldConfig) error {
	if world.StarMassMin <= 0 || world.StarMassMax < world.StarMassMin {
		return fmt.Errorf("invalid star mass range [%v, %v]", world.StarMassMin, world.StarMassMax)
	}
	if world.StarRadius <= 0 {
		return fmt.Errorf("star radius must be positive: %v", world.StarRadius)
	}
	if world.PlanetCount < 0 || world.PlanetCount > MaxPlanetCount {
		return fmt.Errorf("planet count out of range: %d (max %d)", world.PlanetCount, MaxPlanetCount)
	}
	if world.MinOrbitRadius <= world.StarRadius {
		return fmt.Errorf("minimum orbit radius %v inside the star (radius %v)", world.MinOrbitRadius, world.StarRadius)
	}
	if world.MaxOrbitRadius < world.MinOrbitRadius {
		return fmt.Errorf("invalid orbit radius range [%v, %v]", world.MinOrbitRadius, world.MaxOrbitRadius)
	}
	if world.PlanetMassMin <= 0 || world.PlanetMassMax < world.PlanetMassMin {
		return fmt.Errorf("invalid planet mass range [%v, %v]", world.PlanetMassMin, world.PlanetMassMax)
	}
	if world.PlanetRadiusMin <= 0 || world.PlanetRadiusMax < world.PlanetRadiusMin {
		return fmt.Errorf("invalid planet radius range [%v, %v]", world.PlanetRadiusMin, world.PlanetRadiusMax)
	}
	if world.AsteroidCount < 0 {
		return fmt.Errorf("asteroid count cannot be negative: %d", world.AsteroidCount)
	}
	if world.AsteroidCount > 0 && (world.AsteroidMassMin <= 0 || world.AsteroidMassMax < world.AsteroidMassMin) {
		return fmt.Errorf("invalid asteroid mass range [%v, %v]", world.AsteroidMassMin, world.AsteroidMassMax)
	}
	if world.StationCount > 0 && world.StationMass <= 0 {
		return fmt.Errorf("station mass must be positive: %v", world.StationMass)
	}
	if world.BlackHoleChance < 0 || world.BlackHoleChance > 1 {
		return fmt.Errorf("black hole chance must be in [0, 1]: %v", world.BlackHoleChance)
	}
	if world.BlackHoleChance > 0 {
		if err := ValidateBodyParameters(world.BlackHoleMass, world.BlackHoleRadius); err != nil {
			return fmt.Errorf("black hole: %w", err)
		}
	}

	// A black hole is at most one extra body.
	total := 1 + world.PlanetCount + world.AsteroidCount + world.StationCount
	if world.BlackHoleChance > 0 {
		total++
	}
	if total > MaxBodyCount {
		return fmt.Errorf("world too large: %d bodies (max %d)", total, MaxBodyCount)
	}
	return nil
}

// ValidateRocketConfig checks the player craft tuning
func ValidateRocketConfig(rocket config.RocketConfig) error {
	if err := ValidateBodyParameters(rocket.Mass, rocket.Radius); err != nil {
		return err
	}
	if rocket.Mass == 0 {
		return fmt.Errorf("rocket mass must be positive")
	}
	if rocket.Thrust <= 0 {
		return fmt.Errorf("thrust must be positive: %v", rocket.Thrust)
	}
	if rocket.TurnRate <= 0 {
		return fmt.Errorf("turn rate must be positive: %v", rocket.TurnRate)
	}
	if rocket.MaxFuel < 0 {
		return fmt.Errorf("fuel capacity cannot be negative: %v", rocket.MaxFuel)
	}
	if rocket.FuelConsumptionRate < 0 {
		return fmt.Errorf("fuel consumption cannot be negative: %v", rocket.FuelConsumptionRate)
	}
	if rocket.MaxHealth <= 0 {
		return fmt.Errorf("max health must be positive: %v", rocket.MaxHealth)
	}
	return nil
}

// ValidateGameConfig checks an entire configuration before a session starts
func ValidateGameConfig(cfg *config.GameConfig) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := ValidateSimulationConfig(cfg.Simulation); err != nil {
		return fmt.Errorf("simulation config: %w", err)
	}
	if err := ValidateWorldConfig(cfg.World); err != nil {
		return fmt.Errorf("world config: %w", err)
	}
	if err := ValidateRocketConfig(cfg.Rocket); err != nil {
		return fmt.Errorf("rocket config: %w", err)
	}
	if cfg.Enemies.MaxEnemies < 0 {
		return fmt.Errorf("enemies config: max enemies cannot be negative: %d", cfg.Enemies.MaxEnemies)
	}
	if cfg.Rocket.MaxFuel > 0 && cfg.Simulation.TakeoffFuelCost > cfg.Rocket.MaxFuel {
		return fmt.Errorf("takeoff fuel cost %v exceeds tank capacity %v", cfg.Simulation.TakeoffFuelCost, cfg.Rocket.MaxFuel)
	}
	return nil
}

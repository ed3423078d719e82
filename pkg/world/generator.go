// Package world procedurally generates the star system the game is
// played in: a central star, planets on circular orbits, an asteroid
// belt, orbiting stations, and sometimes a black hole in the far
// outskirts.
package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/stardrift/go-stardrift/pkg/config"
	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
	"github.com/stardrift/go-stardrift/pkg/validation"
)

// World holds the generated system contents
type World struct {
	Star       *entity.Celestial
	Planets    []*entity.Celestial
	Asteroids  []*entity.Celestial
	Stations   []*entity.Celestial
	BlackHoles []*entity.Celestial
}

// Bodies returns every celestial in the system, star first.
func (w *World) Bodies() []*entity.Celestial {
	bodies := make([]*entity.Celestial, 0, 1+len(w.Planets)+len(w.Asteroids)+len(w.Stations)+len(w.BlackHoles))
	bodies = append(bodies, w.Star)
	bodies = append(bodies, w.Planets...)
	bodies = append(bodies, w.Asteroids...)
	bodies = append(bodies, w.Stations...)
	bodies = append(bodies, w.BlackHoles...)
	return bodies
}

var planetNames = []string{
	"Aridus", "Glacia", "Sylva", "Ferrum", "Umbra",
	"Corvus", "Talos", "Nereid", "Vesper", "Halcyon",
}

var biomeCycle = []entity.Biome{
	entity.BiomeDesert, entity.BiomeIce, entity.BiomeForest, entity.BiomeNone,
}

// Generate builds a star system from the world configuration. The same
// seed and gravity constant always produce the same system.
func Generate(world config.WorldConfig, g float64) (*World, error) {
	if err := validation.ValidateWorldConfig(world); err != nil {
		return nil, fmt.Errorf("world generation: %w", err)
	}

	rng := rand.New(rand.NewSource(world.Seed))

	starMass := world.StarMassMin + rng.Float64()*(world.StarMassMax-world.StarMassMin)
	star := entity.NewCelestial(entity.GenerateID(), "Sol Prime", entity.Star, physics.Vector2D{}, starMass, world.StarRadius)

	w := &World{Star: star}

	// Planets sit on evenly spaced circular orbits with a little radial
	// jitter, each starting at a random angle.
	for i := 0; i < world.PlanetCount; i++ {
		orbit := orbitRadius(world, rng, i)
		angle := rng.Float64() * 2 * math.Pi
		position := physics.FromAngle(angle, orbit)

		mass := world.PlanetMassMin + rng.Float64()*(world.PlanetMassMax-world.PlanetMassMin)
		radius := world.PlanetRadiusMin + rng.Float64()*(world.PlanetRadiusMax-world.PlanetRadiusMin)

		// Circular orbit speed around the star, tangent to the radial.
		speed := math.Sqrt(g * starMass / orbit)
		velocity := physics.FromAngle(angle+math.Pi/2, speed)

		name := planetNames[i%len(planetNames)]
		biome := biomeCycle[i%len(biomeCycle)]

		w.Planets = append(w.Planets, entity.NewPlanet(entity.GenerateID(), name, position, velocity, mass, radius, biome))
	}

	// Asteroids drift in the outer half of the orbit band. They carry
	// enough mass to feel the star's pull and stay on their orbits, but
	// never exert gravity or accept landings.
	for i := 0; i < world.AsteroidCount; i++ {
		span := world.MaxOrbitRadius - world.MinOrbitRadius
		orbit := world.MinOrbitRadius + span/2 + rng.Float64()*span/2
		angle := rng.Float64() * 2 * math.Pi
		mass := world.AsteroidMassMin + rng.Float64()*(world.AsteroidMassMax-world.AsteroidMassMin)

		a := entity.NewCelestial(entity.GenerateID(), fmt.Sprintf("Asteroid %d", i+1), entity.Asteroid,
			physics.FromAngle(angle, orbit), mass, 8+rng.Float64()*8)
		speed := math.Sqrt(g * starMass / orbit)
		a.Body.Velocity = physics.FromAngle(angle+math.Pi/2, speed)

		w.Asteroids = append(w.Asteroids, a)
	}

	// Stations orbit near the inner band. Like stars and black holes
	// they have no safe surface: any contact bounces.
	for i := 0; i < world.StationCount; i++ {
		orbit := world.MinOrbitRadius * (1.1 + 0.2*float64(i))
		angle := rng.Float64() * 2 * math.Pi

		s := entity.NewCelestial(entity.GenerateID(), fmt.Sprintf("Station %d", i+1), entity.Station,
			physics.FromAngle(angle, orbit), world.StationMass, 25)
		speed := math.Sqrt(g * starMass / orbit)
		s.Body.Velocity = physics.FromAngle(angle+math.Pi/2, speed)

		w.Stations = append(w.Stations, s)
	}

	// Some systems hide a black hole in the far outskirts. It sits at
	// rest, dominating its corner of the map rather than orbiting.
	if rng.Float64() < world.BlackHoleChance {
		angle := rng.Float64() * 2 * math.Pi
		position := physics.FromAngle(angle, world.MaxOrbitRadius*1.5)

		bh := entity.NewCelestial(entity.GenerateID(), "Erebus", entity.BlackHole,
			position, world.BlackHoleMass, world.BlackHoleRadius)
		w.BlackHoles = append(w.BlackHoles, bh)
	}

	return w, nil
}

// orbitRadius spaces planet orbits evenly across the configured band
// and jitters each by up to a quarter of the spacing.
func orbitRadius(world config.WorldConfig, rng *rand.Rand, index int) float64 {
	if world.PlanetCount <= 1 {
		return world.MinOrbitRadius
	}
	spacing := (world.MaxOrbitRadius - world.MinOrbitRadius) / float64(world.PlanetCount-1)
	jitter := (rng.Float64() - 0.5) * spacing / 2
	orbit := world.MinOrbitRadius + spacing*float64(index) + jitter
	return math.Max(orbit, world.MinOrbitRadius)
}

// SpawnPosition picks the player start: a parking spot above the first
// landable planet, or a fixed offset from the star when there is none.
func (w *World) SpawnPosition() physics.Vector2D {
	for _, p := range w.Planets {
		if p.Landable() {
			offset := p.Body.Position.Sub(w.Star.Body.Position).NormalizeOr(physics.Vector2D{X: 1})
			return p.Body.Position.Add(offset.Scale(p.Body.Radius * 4))
		}
	}
	return w.Star.Body.Position.Add(physics.Vector2D{X: w.Star.Body.Radius * 6})
}

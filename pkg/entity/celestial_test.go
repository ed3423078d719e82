// pkg/entity/celestial_test.go
package entity

import (
	"testing"

	"github.com/stardrift/go-stardrift/pkg/physics"
)

func TestNewCelestial_GravityFlags(t *testing.T) {
	tests := []struct {
		name          string
		class         BodyClass
		exertsGravity bool
	}{
		{"star", Star, true},
		{"planet", Planet, true},
		{"black_hole", BlackHole, true},
		{"asteroid", Asteroid, false},
		{"station", Station, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCelestial(GenerateID(), tt.name, tt.class, physics.Vector2D{}, 1e5, 20)
			if c.GravitySource() != tt.exertsGravity {
				t.Errorf("GravitySource() = %v, expected %v", c.GravitySource(), tt.exertsGravity)
			}
			if c.Landable() {
				t.Errorf("%s landable without a biome", tt.name)
			}
		})
	}
}

func TestNewPlanet_BiomeDecidesLandability(t *testing.T) {
	tests := []struct {
		name          string
		biome         Biome
		landable      bool
		takeoffFactor float64
	}{
		{"desert", BiomeDesert, true, 0.7},
		{"ice", BiomeIce, true, 1.2},
		{"forest", BiomeForest, true, 1.0},
		{"barren", BiomeNone, false, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlanet(GenerateID(), tt.name, physics.Vector2D{X: 2000}, physics.Vector2D{Y: 10}, 5e4, 30, tt.biome)
			if p.Landable() != tt.landable {
				t.Errorf("Landable() = %v, expected %v", p.Landable(), tt.landable)
			}
			if p.TakeoffCostFactor != tt.takeoffFactor {
				t.Errorf("TakeoffCostFactor = %v, expected %v", p.TakeoffCostFactor, tt.takeoffFactor)
			}
			if !p.GravitySource() {
				t.Error("planet must exert gravity")
			}
			if p.Body.Velocity.Y != 10 {
				t.Errorf("orbital velocity not applied: %v", p.Body.Velocity)
			}
		})
	}
}

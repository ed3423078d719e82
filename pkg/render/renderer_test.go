package render

import (
	"testing"

	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

func TestNullRenderer_ImplementsRenderer(t *testing.T) {
	var _ entity.Renderer = NewNullRenderer()
	var _ entity.Renderer = NewTerminalRenderer(10, 10, 1)
}

func TestNullRenderer_NilEntitiesDoNotPanic(t *testing.T) {
	r := NewNullRenderer()

	r.Clear()
	r.RenderRocket(nil)
	r.RenderCelestial(nil)
	r.RenderEnemy(nil)
	r.RenderProjectile(nil)
	r.RenderTrajectory(nil)
	r.Present()
}

func TestNullRenderer_RendersEntities(t *testing.T) {
	r := NewNullRenderer()

	rocket := entity.NewRocket(entity.GenerateID(), physics.Vector2D{}, entity.DefaultRocketStats(), physics.LandingState{})
	planet := entity.NewPlanet(entity.GenerateID(), "Test", physics.Vector2D{X: 100}, physics.Vector2D{}, 1e5, 30, entity.BiomeForest)
	enemy := entity.NewEnemy(entity.GenerateID(), physics.Vector2D{X: 50}, 3)

	r.Clear()
	r.RenderRocket(rocket)
	r.RenderCelestial(planet)
	r.RenderEnemy(enemy)
	r.RenderTrajectory([]physics.Vector2D{{X: 1}, {X: 2}})
	r.Present()
}

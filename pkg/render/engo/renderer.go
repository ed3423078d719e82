// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/stardrift/go-stardrift/pkg/engine"
	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// sceneEntity pairs an ECS entity with the components the renderer
// mutates each frame.
type sceneEntity struct {
	basic  ecs.BasicEntity
	render *common.RenderComponent
	space  *common.SpaceComponent
}

// EngoRenderer draws game state snapshots through Engo's render
// system. It owns one ECS entity per simulated object and updates the
// components in place rather than recreating them every frame.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	camera       *CameraSystem

	rocketEntity      *sceneEntity
	celestialEntities map[entity.ID]*sceneEntity
	enemyEntities     map[entity.ID]*sceneEntity
	shotEntities      map[entity.ID]*sceneEntity
	trajectoryDots    []*sceneEntity

	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World, camera *CameraSystem) *EngoRenderer {
	return &EngoRenderer{
		world:             world,
		camera:            camera,
		celestialEntities: make(map[entity.ID]*sceneEntity),
		enemyEntities:     make(map[entity.ID]*sceneEntity),
		shotEntities:      make(map[entity.ID]*sceneEntity),
		assets:            NewAssetManager(),
	}
}

// Initialize sets up the render system and loads assets
func (r *EngoRenderer) Initialize() error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)

	return r.assets.LoadAssets()
}

// RenderState draws one complete state snapshot
func (r *EngoRenderer) RenderState(state *engine.GameState) {
	r.renderTrajectory(state.Rocket.Trajectory)

	for _, c := range state.Celestials {
		r.renderCelestial(c)
	}
	for _, en := range state.Enemies {
		r.renderEnemy(en)
	}
	for _, p := range state.Projectiles {
		r.renderProjectile(p)
	}
	r.renderRocket(state.Rocket)

	r.pruneStale(state)
}

// renderRocket updates the player craft entity
func (r *EngoRenderer) renderRocket(rs engine.RocketState) {
	if r.rocketEntity == nil {
		r.rocketEntity = r.newSceneEntity(r.assets.GetRocketSprite(false), 24, 32, color.RGBA{255, 255, 255, 255})
	}

	r.rocketEntity.render.Drawable = r.assets.GetRocketSprite(rs.Thrusting)
	r.rocketEntity.render.Hidden = !rs.Active

	pos := r.camera.WorldToScreen(rs.Position)
	r.rocketEntity.space.Position = engo.Point{X: float32(pos.X) - 12, Y: float32(pos.Y) - 16}
	r.rocketEntity.space.Rotation = float32(rs.Rotation * 180 / math.Pi)
}

// renderCelestial updates or creates the entity for a body
func (r *EngoRenderer) renderCelestial(cs engine.CelestialState) {
	se, exists := r.celestialEntities[cs.ID]
	if !exists {
		size := float32(cs.Radius) * 2
		se = r.newSceneEntity(r.assets.GetCelestialSprite(cs.Class), size, size, celestialColor(cs))
		r.celestialEntities[cs.ID] = se
	}

	zoom := r.camera.GetZoom()
	size := float32(cs.Radius) * 2 * zoom
	pos := r.camera.WorldToScreen(cs.Position)
	se.space.Position = engo.Point{X: float32(pos.X) - size/2, Y: float32(pos.Y) - size/2}
	se.space.Width = size
	se.space.Height = size
}

// renderEnemy updates or creates the entity for an enemy ship
func (r *EngoRenderer) renderEnemy(es engine.EnemyState) {
	se, exists := r.enemyEntities[es.ID]
	if !exists {
		se = r.newSceneEntity(r.assets.GetEnemySprite(), 24, 24, color.RGBA{255, 80, 80, 255})
		r.enemyEntities[es.ID] = se
	}

	pos := r.camera.WorldToScreen(es.Position)
	se.space.Position = engo.Point{X: float32(pos.X) - 12, Y: float32(pos.Y) - 12}
	se.space.Rotation = float32(es.Rotation * 180 / math.Pi)
}

// renderProjectile updates or creates the entity for a shot
func (r *EngoRenderer) renderProjectile(ps engine.ProjectileState) {
	se, exists := r.shotEntities[ps.ID]
	if !exists {
		shotColor := color.RGBA{255, 220, 0, 255}
		if ps.Hostile {
			shotColor = color.RGBA{255, 60, 60, 255}
		}
		se = r.newSceneEntity(r.assets.GetShotSprite(ps.Hostile), 8, 8, shotColor)
		r.shotEntities[ps.ID] = se
	}

	pos := r.camera.WorldToScreen(ps.Position)
	se.space.Position = engo.Point{X: float32(pos.X) - 4, Y: float32(pos.Y) - 4}
}

// renderTrajectory lays the predicted flight path out as faint dots
func (r *EngoRenderer) renderTrajectory(points []physics.Vector2D) {
	// Grow the dot pool as needed, hide the surplus
	for len(r.trajectoryDots) < len(points) {
		dot := r.newSceneEntity(r.assets.GetShotSprite(false), 3, 3, color.RGBA{120, 120, 140, 160})
		r.trajectoryDots = append(r.trajectoryDots, dot)
	}

	for i, dot := range r.trajectoryDots {
		if i >= len(points) {
			dot.render.Hidden = true
			continue
		}
		dot.render.Hidden = false
		pos := r.camera.WorldToScreen(points[i])
		dot.space.Position = engo.Point{X: float32(pos.X), Y: float32(pos.Y)}
	}
}

// newSceneEntity registers a fresh entity with the render system
func (r *EngoRenderer) newSceneEntity(drawable common.Drawable, width, height float32, tint color.Color) *sceneEntity {
	se := &sceneEntity{
		basic: ecs.NewBasic(),
		render: &common.RenderComponent{
			Drawable: drawable,
			Color:    tint,
		},
		space: &common.SpaceComponent{
			Position: engo.Point{},
			Width:    width,
			Height:   height,
		},
	}

	r.renderSystem.Add(&se.basic, se.render, se.space)
	return se
}

// celestialColor tints a body by its class and biome
func celestialColor(cs engine.CelestialState) color.Color {
	switch cs.Class {
	case entity.Star:
		return color.RGBA{255, 210, 80, 255}
	case entity.Station:
		return color.RGBA{120, 220, 255, 255}
	case entity.Asteroid:
		return color.RGBA{150, 140, 130, 255}
	case entity.BlackHole:
		return color.RGBA{160, 100, 220, 255}
	}

	switch cs.Biome {
	case entity.BiomeDesert:
		return color.RGBA{220, 180, 100, 255}
	case entity.BiomeIce:
		return color.RGBA{180, 220, 255, 255}
	case entity.BiomeForest:
		return color.RGBA{90, 200, 110, 255}
	default:
		return color.RGBA{128, 128, 128, 255}
	}
}

// pruneStale removes entities whose objects left the snapshot
func (r *EngoRenderer) pruneStale(state *engine.GameState) {
	for id, se := range r.enemyEntities {
		if _, alive := state.Enemies[id]; !alive {
			r.renderSystem.Remove(se.basic)
			delete(r.enemyEntities, id)
		}
	}
	for id, se := range r.shotEntities {
		if _, alive := state.Projectiles[id]; !alive {
			r.renderSystem.Remove(se.basic)
			delete(r.shotEntities, id)
		}
	}
}

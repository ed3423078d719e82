// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/logging"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// NullRenderer is a simple implementation of entity.Renderer.
// Headless sessions use it so entity render paths stay exercised.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}

// RenderRocket implements entity.Renderer.
func (d *NullRenderer) RenderRocket(rocket *entity.Rocket) {
	ctx := context.Background()
	if rocket == nil {
		d.logger.Debug(ctx, "RenderRocket called with nil rocket")
		return
	}
	d.logger.Debug(ctx, "RenderRocket called",
		"rocket_id", rocket.ID,
		"fuel", rocket.Fuel,
		"landed", rocket.Landed(),
	)
}

// RenderCelestial implements entity.Renderer.
func (d *NullRenderer) RenderCelestial(body *entity.Celestial) {
	ctx := context.Background()
	if body == nil {
		d.logger.Debug(ctx, "RenderCelestial called with nil body")
		return
	}
	d.logger.Debug(ctx, "RenderCelestial called",
		"body_id", body.ID,
		"body_name", body.Name,
		"class", body.Class,
	)
}

// RenderEnemy implements entity.Renderer.
func (d *NullRenderer) RenderEnemy(enemy *entity.Enemy) {
	ctx := context.Background()
	if enemy == nil {
		d.logger.Debug(ctx, "RenderEnemy called with nil enemy")
		return
	}
	d.logger.Debug(ctx, "RenderEnemy called",
		"enemy_id", enemy.ID,
		"health", enemy.Health,
	)
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(projectile *entity.Projectile) {
	ctx := context.Background()
	if projectile == nil {
		d.logger.Debug(ctx, "RenderProjectile called with nil projectile")
		return
	}
	d.logger.Debug(ctx, "RenderProjectile called",
		"projectile_id", projectile.ID,
		"hostile", projectile.Hostile,
	)
}

// RenderTrajectory implements entity.Renderer.
func (d *NullRenderer) RenderTrajectory(points []physics.Vector2D) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderTrajectory called", "points", len(points))
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer()

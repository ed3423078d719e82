// pkg/entity/renderer.go
package entity

import "github.com/stardrift/go-stardrift/pkg/physics"

// Renderer abstracts the drawing layer so entities can render without
// knowing about the graphics library.
type Renderer interface {
	Clear()
	Present()
	RenderRocket(rocket *Rocket)
	RenderCelestial(body *Celestial)
	RenderEnemy(enemy *Enemy)
	RenderProjectile(projectile *Projectile)
	RenderTrajectory(points []physics.Vector2D)
}

// pkg/entity/weapon.go
package entity

import (
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// Weapon is a projectile launcher with a simulation-time cooldown.
// Cooldowns tick with the fixed step, not wall-clock time, so firing
// cadence stays consistent with the physics.
type Weapon struct {
	Name     string
	Cooldown float64 // seconds between shots
	FuelCost float64
	Damage   float64
	Speed    float64
	Range    float64

	remaining float64
}

// NewBlaster returns the rocket's standard cannon.
func NewBlaster() *Weapon {
	return &Weapon{
		Name:     "Blaster",
		Cooldown: 0.3,
		FuelCost: 2,
		Damage:   1,
		Speed:    800,
		Range:    2000,
	}
}

// NewEnemyGun returns the pursuit ships' slower gun.
func NewEnemyGun() *Weapon {
	return &Weapon{
		Name:     "EnemyGun",
		Cooldown: 1.5,
		Damage:   10,
		Speed:    600,
		Range:    1500,
	}
}

// TickCooldown advances the weapon's cooldown by one simulation step.
func (w *Weapon) TickCooldown(dt float64) {
	if w.remaining > 0 {
		w.remaining -= dt
		if w.remaining < 0 {
			w.remaining = 0
		}
	}
}

// Ready reports whether the weapon can fire this tick.
func (w *Weapon) Ready() bool {
	return w.remaining <= 0
}

// Fire creates a projectile from the given muzzle state and starts the
// cooldown. Returns nil while cooling down. Projectiles are massless
// and ride the simpler kinematic path, outside gravity entirely.
func (w *Weapon) Fire(ownerID ID, position physics.Vector2D, baseVelocity physics.Vector2D, angle float64, hostile bool) *Projectile {
	if !w.Ready() {
		return nil
	}
	w.remaining = w.Cooldown

	return &Projectile{
		BaseEntity: BaseEntity{
			ID:   GenerateID(),
			Name: w.Name,
			Body: physics.Body{
				Position: position,
				Velocity: baseVelocity.Add(physics.FromAngle(angle, w.Speed)),
				Mass:     0,
				Radius:   3,
			},
			Rotation: angle,
			Active:   true,
		},
		OwnerID: ownerID,
		Damage:  w.Damage,
		Range:   w.Range,
		Hostile: hostile,
	}
}

// Projectile represents a fired shot in the game
type Projectile struct {
	BaseEntity
	OwnerID          ID
	Damage           float64
	Range            float64
	DistanceTraveled float64

	// Hostile projectiles hurt the rocket; friendly ones hurt enemies.
	Hostile bool
}

// Update advances the projectile kinematically and expires it past its
// range.
func (p *Projectile) Update(dt float64) {
	step := p.Body.Velocity.Scale(dt)
	p.Body.Position = p.Body.Position.Add(step)
	p.DistanceTraveled += step.Length()

	if p.DistanceTraveled >= p.Range {
		p.Active = false
	}
}

// pkg/entity/enemy.go
package entity

import (
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// Enemy is a kinematic pursuit ship. It steers straight at its target
// at fixed speed, ignoring gravity, and fires once in range. The
// physics core never integrates it.
type Enemy struct {
	BaseEntity
	Health    float64
	MaxHealth float64
	Speed     float64
	FireRange float64
	Gun       *Weapon
}

// NewEnemy creates a pursuit ship at the given position.
func NewEnemy(id ID, position physics.Vector2D, health float64) *Enemy {
	return &Enemy{
		BaseEntity: BaseEntity{
			ID:   id,
			Name: "Enemy",
			Body: physics.Body{
				Position: position,
				Mass:     50,
				Radius:   15,
			},
			Active: true,
		},
		Health:    health,
		MaxHealth: health,
		Speed:     150,
		FireRange: 800,
		Gun:       NewEnemyGun(),
	}
}

// Update steers toward the target and returns a projectile when the
// gun fires this tick, nil otherwise.
func (en *Enemy) Update(dt float64, target physics.Vector2D) *Projectile {
	if !en.Active {
		return nil
	}

	en.Gun.TickCooldown(dt)

	delta := target.Sub(en.Body.Position)
	distance := delta.Length()
	if distance == 0 {
		return nil
	}

	direction := delta.Scale(1 / distance)
	en.Body.Velocity = direction.Scale(en.Speed)
	en.Body.Position = en.Body.Position.Add(en.Body.Velocity.Scale(dt))
	en.Rotation = direction.Angle()

	if distance < en.FireRange {
		muzzle := en.Body.Position.Add(direction.Scale(en.Body.Radius))
		return en.Gun.Fire(en.ID, muzzle, en.Body.Velocity, en.Rotation, true)
	}
	return nil
}

// TakeDamage applies damage and deactivates the enemy at zero health.
// Returns true when the enemy is destroyed.
func (en *Enemy) TakeDamage(amount float64) bool {
	en.Health -= amount
	if en.Health <= 0 {
		en.Active = false
		return true
	}
	return false
}

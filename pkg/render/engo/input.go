// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/stardrift/go-stardrift/pkg/engine"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// InputSystem reads keyboard state each frame, folds it into a control
// intent, and hands it to the simulation. Firing is edge triggered so a
// held key does not spam the blaster past its cooldown.
type InputSystem struct {
	game *engine.Game

	intent physics.ControlIntent
}

// NewInputSystem creates a new input system bound to a game session
func NewInputSystem(game *engine.Game) *InputSystem {
	return &InputSystem{
		game: game,
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update processes input and forwards it to the simulation
func (is *InputSystem) Update(dt float32) {
	is.intent = readIntent()
	is.game.SetControls(is.intent)

	if engo.Input.Button("fire").JustPressed() {
		// Firing can legitimately fail while landed or out of fuel;
		// the HUD already shows why, so the error is dropped here.
		_ = is.game.FireBlaster()
	}
}

// readIntent samples the movement buttons into a control intent
func readIntent() physics.ControlIntent {
	return physics.ControlIntent{
		Thrust:      engo.Input.Button("thrust").Down(),
		Brake:       engo.Input.Button("brake").Down(),
		RotateCCW:   engo.Input.Button("turnLeft").Down(),
		RotateCW:    engo.Input.Button("turnRight").Down(),
		TakeoffHold: engo.Input.Button("takeoff").Down(),
	}
}

// CurrentIntent returns the intent sampled on the last update
func (is *InputSystem) CurrentIntent() physics.ControlIntent {
	return is.intent
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton("thrust", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("brake", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("turnLeft", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("turnRight", engo.KeyD, engo.KeyArrowRight)

	// Space doubles as the hold-to-launch key while landed
	engo.Input.RegisterButton("takeoff", engo.KeySpace)
	engo.Input.RegisterButton("fire", engo.KeyF)
}

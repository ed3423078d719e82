// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/stardrift/go-stardrift/pkg/engine"
	"github.com/stardrift/go-stardrift/pkg/event"
)

// GameScene hosts a local simulation inside an Engo window. Each frame
// the simulation system steps the game, takes a state snapshot, and
// fans it out to the camera, renderer, and HUD.
type GameScene struct {
	world *ecs.World

	game     *engine.Game
	eventBus *event.Bus

	renderer   *EngoRenderer
	camera     *CameraSystem
	input      *InputSystem
	hud        *HUDSystem
	simulation *simulationSystem
}

// NewGameScene creates a scene around an existing game session
func NewGameScene(game *engine.Game, eventBus *event.Bus) *GameScene {
	return &GameScene{
		game:     game,
		eventBus: eventBus,
		world:    &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// All sprites are generated at Setup time, nothing to preload
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	scene.world.AddSystem(&common.MouseSystem{})

	SetupInputBindings()
	SetupCameraControls()

	scene.camera = NewCameraSystem()
	scene.world.AddSystem(scene.camera)

	scene.renderer = NewEngoRenderer(scene.world, scene.camera)
	if err := scene.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	scene.input = NewInputSystem(scene.game)
	scene.world.AddSystem(scene.input)

	scene.hud = NewHUDSystem()
	scene.world.AddSystem(scene.hud)

	scene.simulation = newSimulationSystem(scene.game, scene.camera, scene.renderer, scene.hud)
	scene.world.AddSystem(scene.simulation)

	scene.subscribeToEvents()

	scene.game.Start()
}

// subscribeToEvents wires simulation events into the HUD message line
func (scene *GameScene) subscribeToEvents() {
	scene.eventBus.Subscribe(event.RocketLanded, func(e event.Event) {
		scene.hud.ShowMessage("Touchdown")
	})
	scene.eventBus.Subscribe(event.RocketCrashed, func(e event.Event) {
		scene.hud.ShowMessage("Hard impact!")
	})
	scene.eventBus.Subscribe(event.RocketRefueled, func(e event.Event) {
		scene.hud.ShowMessage("Tanks refilled")
	})
	scene.eventBus.Subscribe(event.EnemyDestroyed, func(e event.Event) {
		scene.hud.ShowMessage("Enemy destroyed")
	})
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.game.Stop()
}

// simulationSystem advances the game and distributes the resulting
// snapshot to the display systems. It must run after the input system
// so the frame's controls are already applied.
type simulationSystem struct {
	game     *engine.Game
	camera   *CameraSystem
	renderer *EngoRenderer
	hud      *HUDSystem
}

func newSimulationSystem(game *engine.Game, camera *CameraSystem, renderer *EngoRenderer, hud *HUDSystem) *simulationSystem {
	return &simulationSystem{
		game:     game,
		camera:   camera,
		renderer: renderer,
		hud:      hud,
	}
}

// Add satisfies the ecs.System interface
func (ss *simulationSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for simulation system
}

// Remove satisfies the ecs.System interface
func (ss *simulationSystem) Remove(basic ecs.BasicEntity) {
	// Not used for simulation system
}

// Update steps the simulation and publishes the frame
func (ss *simulationSystem) Update(dt float32) {
	ss.game.Update()

	state := ss.game.GetGameState()
	ss.syncState(state)
}

// syncState distributes one snapshot to the display systems
func (ss *simulationSystem) syncState(state *engine.GameState) {
	ss.camera.SetTarget(state.Rocket.Position)
	ss.renderer.RenderState(state)
	ss.hud.UpdateGameState(state)
}

// pkg/render/engo/scene_test.go
package engo

import (
	"testing"

	"github.com/stardrift/go-stardrift/pkg/config"
	"github.com/stardrift/go-stardrift/pkg/engine"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

func newTestGame(t *testing.T) *engine.Game {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.World.Seed = 42
	game, err := engine.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return game
}

func TestNewGameScene(t *testing.T) {
	game := newTestGame(t)

	scene := NewGameScene(game, game.EventBus)

	if scene == nil {
		t.Fatal("NewGameScene() returned nil")
	}
	if scene.game != game {
		t.Error("expected game to be set")
	}
	if scene.eventBus != game.EventBus {
		t.Error("expected eventBus to be set")
	}
	if scene.world == nil {
		t.Error("expected world to be initialized")
	}
}

func TestGameScene_Type(t *testing.T) {
	game := newTestGame(t)
	scene := NewGameScene(game, game.EventBus)

	if got := scene.Type(); got != "GameScene" {
		t.Errorf("Type() = %q, expected %q", got, "GameScene")
	}
}

func TestGameScene_Preload(t *testing.T) {
	game := newTestGame(t)
	scene := NewGameScene(game, game.EventBus)

	// Preload is a no-op: all sprites are generated in Setup
	scene.Preload()
}

func TestGameScene_ExitStopsGame(t *testing.T) {
	game := newTestGame(t)
	scene := NewGameScene(game, game.EventBus)

	game.Start()
	scene.Exit()

	if game.Running {
		t.Error("expected Exit to stop the simulation")
	}
}

func TestNewSimulationSystem(t *testing.T) {
	game := newTestGame(t)
	camera := NewCameraSystem()
	hud := NewHUDSystem()

	ss := newSimulationSystem(game, camera, nil, hud)

	if ss.game != game || ss.camera != camera || ss.hud != hud {
		t.Error("expected simulation system fields to be wired")
	}
}

func TestNewInputSystem(t *testing.T) {
	game := newTestGame(t)
	is := NewInputSystem(game)

	if is.game != game {
		t.Error("expected game to be set")
	}
	if is.CurrentIntent() != (physics.ControlIntent{}) {
		t.Error("expected zero intent before the first update")
	}
}

// cmd/stardrift/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/stardrift/go-stardrift/pkg/config"
	"github.com/stardrift/go-stardrift/pkg/engine"
	engorender "github.com/stardrift/go-stardrift/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	seed := flag.Int64("seed", 0, "World generation seed (overrides config when nonzero)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	flag.Parse()

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if *seed != 0 {
		gameConfig.World.Seed = *seed
	}

	game, err := engine.NewGame(gameConfig)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// The scene starts the simulation in Setup and stops it in Exit
	scene := engorender.NewGameScene(game, game.EventBus)

	opts := engo.RunOptions{
		Title:      "Stardrift",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

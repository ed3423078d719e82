// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/stardrift/go-stardrift/pkg/config"
	"github.com/stardrift/go-stardrift/pkg/engine"
	"github.com/stardrift/go-stardrift/pkg/health"
	"github.com/stardrift/go-stardrift/pkg/logging"
	"github.com/stardrift/go-stardrift/pkg/observability"
	"github.com/stardrift/go-stardrift/pkg/physics"
	"github.com/stardrift/go-stardrift/pkg/render"
	"github.com/stardrift/go-stardrift/pkg/resource"
)

const frameInterval = 33 * time.Millisecond

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	seed := flag.Int64("seed", 0, "World generation seed (overrides config when nonzero)")
	scale := flag.Float64("scale", 0.05, "World units per terminal cell")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	if *seed != 0 {
		gameConfig.World.Seed = *seed
	}

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Failed to load environment configuration", err)
		os.Exit(1)
	}

	// Create game
	game, err := engine.NewGame(gameConfig)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}
	game.Metrics = observability.NewMetrics()

	if err := game.InitializeResourceManager(); err != nil {
		logger.Error(ctx, "Failed to initialize resource manager", err)
		os.Exit(1)
	}

	// Setup health checks
	healthChecker := health.NewHealthChecker()

	healthChecker.AddCheck(health.NewGameEngineHealthCheck(game.IsRunning))
	healthChecker.AddCheck(health.NewSimulationHealthCheck(game.Tick, 5*time.Second))
	healthChecker.AddCheck(health.NewMemoryHealthCheck(
		envConfig.MaxMemoryMB,
		game.ResourceManager.HeapMB,
	))
	healthChecker.AddCheck(resource.NewResourceHealthCheck(game.ResourceManager))

	// Start metrics and health HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", game.Metrics.Handler())
	mux.HandleFunc("/health", healthChecker.LivenessHandler)
	mux.HandleFunc("/ready", healthChecker.ReadinessHandler)

	httpServer := &http.Server{
		Addr:         envConfig.MetricsAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "Starting metrics server",
			"addr", envConfig.MetricsAddr,
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "Metrics server failed", err)
		}
	}()

	// Setup terminal display
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error(ctx, "Failed to create terminal screen", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error(ctx, "Failed to initialize terminal screen", err)
		os.Exit(1)
	}
	display := render.NewTcellDisplay(screen, *scale)

	// Poll terminal events off the main loop
	events := make(chan tcell.Event, 16)
	err = game.ResourceManager.Go(ctx, "terminal-input", func(ctx context.Context) {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})
	if err != nil {
		screen.Fini()
		logger.Error(ctx, "Failed to start input poller", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	game.Start()
	logger.Info(ctx, "Simulation started",
		"seed", gameConfig.World.Seed,
		"planets", gameConfig.World.PlanetCount,
	)

	runLoop(game, display, screen, events, sigChan, logger, ctx)

	// Graceful shutdown
	screen.Fini()
	game.Stop()
	logger.Info(ctx, "Shutting down",
		"tick", game.Tick(),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), envConfig.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Metrics server shutdown failed", err)
	}
	if err := game.ResourceManager.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Resource manager shutdown failed", err)
	}
}

// runLoop drives the simulation at a fixed frame rate, folding terminal
// key events into the control intent. Held keys stay active through
// terminal autorepeat; the intent resets every frame so releasing a key
// stops the input within one repeat interval.
func runLoop(
	game *engine.Game,
	display *render.TcellDisplay,
	screen tcell.Screen,
	events <-chan tcell.Event,
	sigChan <-chan os.Signal,
	logger *logging.Logger,
	ctx context.Context,
) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var intent physics.ControlIntent

	for {
		select {
		case <-sigChan:
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				var fire, quit bool
				intent, fire, quit = render.IntentFromKey(tev, intent)
				if quit {
					return
				}
				if fire {
					if err := game.FireBlaster(); err != nil {
						logger.Debug(logging.WithTick(ctx, game.Tick()), "Blaster unavailable", "reason", err)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			game.SetControls(intent)
			game.Update()
			display.Render(game.GetGameState())
			intent = physics.ControlIntent{}
		}
	}
}

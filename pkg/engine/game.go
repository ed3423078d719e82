// pkg/engine/game.go
package engine

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/stardrift/go-stardrift/pkg/config"
	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/event"
	"github.com/stardrift/go-stardrift/pkg/observability"
	"github.com/stardrift/go-stardrift/pkg/physics"
	"github.com/stardrift/go-stardrift/pkg/resource"
	"github.com/stardrift/go-stardrift/pkg/validation"
	"github.com/stardrift/go-stardrift/pkg/world"
)

type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// Game owns the full session state: the star system, the player
// rocket, enemies, projectiles, and the physics helpers that advance
// them. Rendering and input layers talk to it through SetControls,
// FireBlaster, Update, and GetGameState.
type Game struct {
	Config *config.GameConfig
	World  *world.World
	Rocket *entity.Rocket

	Celestials  map[entity.ID]*entity.Celestial
	Enemies     map[entity.ID]*entity.Enemy
	Projectiles map[entity.ID]*entity.Projectile

	EntityLock  sync.RWMutex
	Running     bool
	Status      GameStatus
	CurrentTick uint64
	SimTime     float64

	EventBus  *event.Bus
	Gravity   *physics.GravityField
	Contacts  *physics.ContactResolver
	Predictor *physics.TrajectoryPredictor

	// Blaster is the player weapon; its cooldown ticks with the fixed
	// step alongside everything else.
	Blaster *entity.Weapon

	// Resource management
	ResourceManager *resource.Manager

	Metrics *observability.Metrics

	lastUpdate      time.Time
	accumulator     float64
	trajectoryTimer float64
	intent          physics.ControlIntent
	rng             *rand.Rand
}

// NewGame validates the configuration, generates the star system, and
// places the rocket at its spawn point.
func NewGame(cfg *config.GameConfig) (*Game, error) {
	if err := validation.ValidateGameConfig(cfg); err != nil {
		return nil, err
	}

	w, err := world.Generate(cfg.World, cfg.Simulation.GravityConstant)
	if err != nil {
		return nil, err
	}

	sim := cfg.Simulation
	gravity := physics.NewGravityField(sim.GravityConstant)
	gravity.MinDistanceSq = sim.MinDistanceSq
	predictor := physics.NewTrajectoryPredictor(sim.GravityConstant, sim.TrajectorySteps, sim.TrajectoryStepDt)
	predictor.MinDistanceSq = sim.MinDistanceSq

	rocket := entity.NewRocket(entity.GenerateID(), w.SpawnPosition(), rocketStats(cfg.Rocket), physics.LandingState{
		TakeoffDuration:         sim.TakeoffDuration,
		TakeoffFuelCost:         sim.TakeoffFuelCost,
		TakeoffThrustMultiplier: sim.TakeoffThrustMultiplier,
	})

	game := &Game{
		Config:      cfg,
		World:       w,
		Rocket:      rocket,
		Celestials:  make(map[entity.ID]*entity.Celestial),
		Enemies:     make(map[entity.ID]*entity.Enemy),
		Projectiles: make(map[entity.ID]*entity.Projectile),
		EventBus:    event.NewEventBus(),
		Gravity:     gravity,
		Contacts:    physics.NewContactResolver(sim.CrashThreshold, sim.CrashDamage, sim.BounceDamping),
		Predictor:   predictor,
		Blaster:     entity.NewBlaster(),
		lastUpdate:  time.Now(),
		rng:         rand.New(rand.NewSource(cfg.World.Seed)),
	}

	for _, c := range w.Bodies() {
		game.Celestials[c.ID] = c
	}

	return game, nil
}

func rocketStats(rc config.RocketConfig) entity.RocketStats {
	return entity.RocketStats{
		Mass:                rc.Mass,
		Radius:              rc.Radius,
		Thrust:              rc.Thrust,
		TurnRate:            rc.TurnRate,
		BrakeFactor:         rc.BrakeFactor,
		MaxFuel:             rc.MaxFuel,
		FuelConsumptionRate: rc.FuelConsumptionRate,
		MaxHealth:           rc.MaxHealth,
		MaxShield:           rc.MaxShield,
	}
}

// InitializeResourceManager initializes the resource manager with environment configuration.
// This is called separately to avoid circular dependencies during game creation.
func (g *Game) InitializeResourceManager() error {
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		// Use safe defaults if environment config fails
		envConfig = &config.EnvironmentConfig{
			MaxMemoryMB:           500,
			MaxGoroutines:         1000,
			ShutdownTimeout:       30 * time.Second,
			ResourceCheckInterval: 10 * time.Second,
		}
	}
	g.ResourceManager = resource.NewManager(envConfig)
	return g.ResourceManager.Start()
}

// Start begins the session
func (g *Game) Start() {
	g.EntityLock.Lock()
	g.Running = true
	g.Status = GameStatusActive
	g.lastUpdate = time.Now()
	g.EntityLock.Unlock()

	g.EventBus.Publish(event.NewGameEvent(event.GameStarted, g, ""))
}

// Stop halts the session
func (g *Game) Stop() {
	g.EntityLock.Lock()
	g.Running = false
	g.EntityLock.Unlock()

	g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, "stopped"))
}

// IsRunning reports whether the session is active. Safe to call from
// other goroutines, unlike reading the Running field directly.
func (g *Game) IsRunning() bool {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()
	return g.Running
}

// Tick returns the current simulation tick under the entity lock.
func (g *Game) Tick() uint64 {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()
	return g.CurrentTick
}

// SetControls replaces the control intent applied on subsequent steps.
func (g *Game) SetControls(intent physics.ControlIntent) {
	g.EntityLock.Lock()
	g.intent = intent
	g.EntityLock.Unlock()
}

// Update advances the simulation by the wall-clock time elapsed since
// the last call. Frames run on a fixed-step accumulator: long frames
// are clamped to MaxFrameTime, then consumed in TimeStep slices, so
// physics behavior never depends on the frame rate.
func (g *Game) Update() {
	now := time.Now()
	frame := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	if frame > g.Config.Simulation.MaxFrameTime {
		frame = g.Config.Simulation.MaxFrameTime
	}

	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if !g.Running {
		return
	}

	g.accumulator += frame
	for g.accumulator >= g.Config.Simulation.TimeStep {
		g.step(g.Config.Simulation.TimeStep)
		g.accumulator -= g.Config.Simulation.TimeStep
	}
}

// Step advances exactly one fixed step, bypassing the wall-clock
// accumulator. Headless drivers and tests use it for determinism.
func (g *Game) Step() {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if !g.Running {
		return
	}
	g.step(g.Config.Simulation.TimeStep)
}

// step runs one fixed tick. Order matters: forces accumulate first,
// controls add theirs, integration moves everything, and only then do
// contacts and landing pinning correct positions.
func (g *Game) step(dt float64) {
	started := time.Now()

	g.applyGravity()
	g.applyRocketControls(dt)
	g.integrate(dt)
	g.resolveContacts()
	g.updateEnemies(dt)
	g.updateProjectiles(dt)
	g.refreshTrajectory(dt)
	g.cleanupInactiveEntities()

	g.CurrentTick++
	g.SimTime += dt

	g.recordMetrics(started)
}

// applyGravity accumulates forces onto every gravity participant. The
// rocket joins the set as a test particle only while in free flight; a
// landed rocket is slaved to its parent and takes no forces. Enemies
// and projectiles fly kinematically and never enter the field.
func (g *Game) applyGravity() {
	bodies := make([]*physics.Body, 0, len(g.Celestials)+1)
	for _, c := range g.Celestials {
		bodies = append(bodies, &c.Body)
	}
	if g.Rocket.Active && !g.Rocket.Landed() {
		bodies = append(bodies, &g.Rocket.Body)
	}
	g.Gravity.Apply(bodies)
}

// applyRocketControls turns this tick's intent into forces or takeoff
// progress, depending on whether the rocket is surface-bound.
func (g *Game) applyRocketControls(dt float64) {
	if !g.Rocket.Active {
		return
	}

	if g.Rocket.Landed() {
		launched := g.Rocket.Landing.UpdateTakeoff(&g.Rocket.Body, g.intent.TakeoffHold, dt, g.Rocket.Fuel, g.Rocket.Stats.Thrust)
		if launched {
			g.handleTakeoff()
		}
		return
	}

	g.Rocket.ApplyControls(g.intent, dt)
}

func (g *Game) handleTakeoff() {
	cost := g.Rocket.Landing.TakeoffFuelCost
	g.Rocket.Fuel -= cost
	if g.Rocket.Fuel < 0 {
		g.Rocket.Fuel = 0
	}

	// Restore the configured base cost; landing may have scaled it for
	// the departed surface.
	g.Rocket.Landing.TakeoffFuelCost = g.Config.Simulation.TakeoffFuelCost

	if g.Metrics != nil {
		g.Metrics.RecordTakeoff()
	}
	g.EventBus.Publish(event.NewRocketEvent(event.RocketTookOff, g, uint64(g.Rocket.ID), 0, 0))
}

// integrate moves celestials and the free-flying rocket. A landed
// rocket is pinned to its parent's surface after the parent has moved.
func (g *Game) integrate(dt float64) {
	for _, c := range g.Celestials {
		c.Body.Integrate(dt)
	}

	if !g.Rocket.Active {
		return
	}
	if g.Rocket.Landed() {
		g.Rocket.Landing.Pin(&g.Rocket.Body)
	} else {
		g.Rocket.Body.Integrate(dt)
	}
}

// resolveContacts checks the rocket against every celestial surface
// and routes the outcome: landings pin and possibly refuel, hard
// impacts damage the hull once per collision event.
func (g *Game) resolveContacts() {
	if !g.Rocket.Active {
		return
	}

	for _, c := range g.Celestials {
		outcome, damage := g.Contacts.Resolve(&g.Rocket.Body, &g.Rocket.Landing, &c.Body)
		switch outcome {
		case physics.ContactLanded:
			g.handleLanding(c)
		case physics.ContactBounced:
			g.handleImpact(c, damage)
		}
	}
}

func (g *Game) handleLanding(c *entity.Celestial) {
	// The local biome scales the takeoff cost.
	g.Rocket.Landing.TakeoffFuelCost = g.Config.Simulation.TakeoffFuelCost * c.TakeoffCostFactor

	if g.Metrics != nil {
		g.Metrics.RecordLanding()
	}
	g.EventBus.Publish(event.NewRocketEvent(event.RocketLanded, g, uint64(g.Rocket.ID), uint64(c.ID), 0))

	// Touchdown refills the tank from the surface.
	if g.Rocket.Fuel < g.Config.Rocket.MaxFuel {
		g.Rocket.Refuel()
		g.EventBus.Publish(event.NewRocketEvent(event.RocketRefueled, g, uint64(g.Rocket.ID), uint64(c.ID), 0))
	}
}

func (g *Game) handleImpact(c *entity.Celestial, damage float64) {
	if g.Metrics != nil {
		g.Metrics.RecordCollision()
	}
	if damage <= 0 {
		return
	}

	g.EventBus.Publish(event.NewRocketEvent(event.RocketCrashed, g, uint64(g.Rocket.ID), uint64(c.ID), damage))
	if g.Rocket.TakeDamage(damage) {
		g.destroyRocket()
	}
}

func (g *Game) destroyRocket() {
	g.Rocket.Active = false
	g.EventBus.Publish(event.NewRocketEvent(event.RocketDestroyed, g, uint64(g.Rocket.ID), 0, 0))
	g.endGameInternal("rocket destroyed")
}

// updateEnemies steers pursuit ships, collects their shots, and spawns
// replacements up to the configured cap.
func (g *Game) updateEnemies(dt float64) {
	if !g.Rocket.Active {
		return
	}

	for _, en := range g.Enemies {
		if shot := en.Update(dt, g.Rocket.Body.Position); shot != nil {
			g.registerProjectile(shot)
		}
	}

	g.maybeSpawnEnemy()
}

// maybeSpawnEnemy rolls the per-tick spawn chance and drops a new
// pursuit ship on a ring outside the rocket's immediate vicinity.
func (g *Game) maybeSpawnEnemy() {
	ec := g.Config.Enemies
	if len(g.Enemies) >= ec.MaxEnemies || g.rng.Float64() >= ec.SpawnRate {
		return
	}

	angle := g.rng.Float64() * 2 * math.Pi
	distance := 1200 + g.rng.Float64()*800
	position := g.Rocket.Body.Position.Add(physics.FromAngle(angle, distance))

	en := entity.NewEnemy(entity.GenerateID(), position, ec.Health)
	g.Enemies[en.ID] = en
	g.EventBus.Publish(event.NewEnemyEvent(event.EnemySpawned, g, uint64(en.ID)))
}

// updateProjectiles advances shots and resolves their hits: hostile
// shots hurt the rocket, friendly shots hurt enemies, and any celestial
// absorbs whatever flies into it.
func (g *Game) updateProjectiles(dt float64) {
	for _, p := range g.Projectiles {
		if !p.Active {
			continue
		}
		p.Update(dt)
		if !p.Active {
			continue
		}

		if p.Hostile {
			g.resolveHostileHit(p)
		} else {
			g.resolveFriendlyHit(p)
		}
		if p.Active {
			g.resolveCelestialAbsorption(p)
		}
	}
}

func (g *Game) resolveHostileHit(p *entity.Projectile) {
	if !g.Rocket.Active || g.Rocket.Landed() {
		return
	}
	if !p.Body.Overlaps(&g.Rocket.Body) {
		return
	}

	p.Active = false
	if g.Rocket.TakeDamage(p.Damage) {
		g.destroyRocket()
	}
}

func (g *Game) resolveFriendlyHit(p *entity.Projectile) {
	for _, en := range g.Enemies {
		if !en.Active || !p.Body.Overlaps(&en.Body) {
			continue
		}

		p.Active = false
		if en.TakeDamage(p.Damage) {
			if g.Metrics != nil {
				g.Metrics.RecordEnemyDestroyed()
			}
			g.EventBus.Publish(event.NewEnemyEvent(event.EnemyDestroyed, g, uint64(en.ID)))
		}
		return
	}
}

func (g *Game) resolveCelestialAbsorption(p *entity.Projectile) {
	for _, c := range g.Celestials {
		if p.Body.Overlaps(&c.Body) {
			p.Active = false
			return
		}
	}
}

// refreshTrajectory regenerates the predicted flight path on a
// throttle. Prediction is far more expensive than a live tick, and the
// display does not need it more than a couple of times a second.
func (g *Game) refreshTrajectory(dt float64) {
	g.trajectoryTimer += dt
	if g.trajectoryTimer < g.Config.Simulation.TrajectoryRefreshInterval {
		return
	}
	g.trajectoryTimer = 0

	if !g.Rocket.Active || g.Rocket.Landed() {
		g.Rocket.Trajectory = nil
		return
	}

	sources := make([]*physics.Body, 0, len(g.World.Planets))
	for _, p := range g.World.Planets {
		sources = append(sources, &p.Body)
	}
	g.Rocket.Trajectory = g.Predictor.Predict(&g.Rocket.Body, sources)
}

// FireBlaster fires the player weapon if it is ready, the tank covers
// the shot, and the rocket is in free flight.
func (g *Game) FireBlaster() error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if !g.Rocket.Active {
		return errors.New("rocket is destroyed")
	}
	if g.Rocket.Landed() {
		return errors.New("cannot fire while landed")
	}
	if g.Rocket.Fuel < g.Blaster.FuelCost {
		return errors.New("insufficient fuel")
	}

	muzzle := g.Rocket.Body.Position.Add(physics.FromAngle(g.Rocket.Rotation, g.Rocket.Body.Radius))
	shot := g.Blaster.Fire(g.Rocket.ID, muzzle, g.Rocket.Body.Velocity, g.Rocket.Rotation, false)
	if shot == nil {
		return nil // cooling down
	}

	g.Rocket.Fuel -= g.Blaster.FuelCost
	g.registerProjectile(shot)
	return nil
}

func (g *Game) registerProjectile(p *entity.Projectile) {
	g.Projectiles[p.ID] = p
	if g.Metrics != nil {
		g.Metrics.RecordShotFired()
	}
	g.EventBus.Publish(event.NewProjectileEvent(g, uint64(p.ID), uint64(p.OwnerID), p.Hostile))
}

// cleanupInactiveEntities removes expired projectiles and dead enemies.
// The player blaster cools down here too so cadence follows sim time.
func (g *Game) cleanupInactiveEntities() {
	g.Blaster.TickCooldown(g.Config.Simulation.TimeStep)

	for id, p := range g.Projectiles {
		if !p.Active {
			delete(g.Projectiles, id)
		}
	}
	for id, en := range g.Enemies {
		if !en.Active {
			delete(g.Enemies, id)
		}
	}
}

func (g *Game) recordMetrics(started time.Time) {
	if g.Metrics == nil {
		return
	}
	g.Metrics.TickObserved(time.Since(started))
	g.Metrics.RecordCounts(len(g.Celestials), len(g.Enemies), len(g.Projectiles))
	g.Metrics.RecordRocket(g.Rocket.Fuel, g.Rocket.Health)
}

// endGameInternal ends the game (must be called with lock held)
func (g *Game) endGameInternal(reason string) {
	if g.Status == GameStatusEnded {
		return
	}
	g.Status = GameStatusEnded
	g.Running = false
	g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, reason))
}

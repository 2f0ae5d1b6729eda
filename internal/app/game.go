// internal/app/game.go
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"space-game/internal/component"
	"space-game/internal/defs"
	"space-game/internal/entity"
	"space-game/internal/event"
	"space-game/internal/platform"
	"space-game/internal/system"
	"space-game/internal/ui"
	"space-game/internal/utils"
)

// ErrInvariant is returned by Tick when the world reaches an impossible state.
var ErrInvariant = system.ErrInvariant

// Game holds the main game state and logic.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Textures        system.TextureSource

	WaveSystem     *system.WaveSystem
	PlayerSystem   *system.PlayerSystem
	BulletSystem   *system.BulletSystem
	EnemySystem    *system.EnemySystem
	ParticleSystem *system.ParticleSystem
	PowerUpSystem  *system.PowerUpSystem
	RenderSystem   *system.RenderSystem
	HUD            *ui.HUD

	logger    *log.Logger
	kills     int
	debug     bool
	lastDelta float64
}

// NewGame builds a fresh world from the content library.
func NewGame(lib *defs.Library, rng *utils.PRNGService, logger *log.Logger) (*Game, error) {
	player, err := lib.NewPlayer()
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	waves, err := lib.NewWaves()
	if err != nil {
		return nil, fmt.Errorf("create waves: %w", err)
	}
	powerUps, err := lib.NewPowerUps(player.Pos)
	if err != nil {
		return nil, fmt.Errorf("create power-ups: %w", err)
	}

	world := entity.NewWorld(player)
	world.Waves = waves
	world.PowerUps = powerUps

	eventDispatcher := event.NewDispatcher()
	particles := system.NewParticleSystem(world, rng)
	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		WaveSystem:      system.NewWaveSystem(world, rng, eventDispatcher, logger),
		PlayerSystem:    system.NewPlayerSystem(world, rng),
		BulletSystem:    system.NewBulletSystem(world, particles, eventDispatcher),
		EnemySystem:     system.NewEnemySystem(world, particles, rng, eventDispatcher),
		ParticleSystem:  particles,
		PowerUpSystem:   system.NewPowerUpSystem(world, rng, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(world, logger),
		HUD:             ui.NewHUD(),
		logger:          logger,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyDestroyed, listener)
	eventDispatcher.Subscribe(event.PartDamaged, listener)
	eventDispatcher.Subscribe(event.PowerUpCollected, listener)
	eventDispatcher.Subscribe(event.PlayerDestroyed, listener)

	logger.Info("game started", "content", lib.Source, "parts", len(player.Parts), "waves", len(waves))
	return g, nil
}

// Tick advances the simulation by deltaTime seconds. Outside RunPlaying it does nothing.
func (g *Game) Tick(deltaTime float64, in platform.Input) error {
	w := g.World
	if w.State != component.RunPlaying {
		return nil
	}
	g.lastDelta = deltaTime

	w.GameTime += deltaTime
	g.WaveSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime, in)
	g.BulletSystem.Update(deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.ParticleSystem.Update(deltaTime)
	g.PowerUpSystem.Update()
	w.Retain()

	if err := system.CheckInvariants(w); err != nil {
		g.SetRunState(component.RunOver)
		return fmt.Errorf("tick at %.2fs: %w", w.GameTime, err)
	}

	for i := range w.Player.Parts {
		part := &w.Player.Parts[i]
		if part.Health <= 0 {
			g.EventDispatcher.Emit(event.PlayerDestroyed, event.PlayerDestroyedData{Part: part.Name, GameTime: w.GameTime})
			g.SetRunState(component.RunOver)
			break
		}
	}
	return nil
}

// Draw renders the world and the HUD. It never changes the world.
func (g *Game) Draw(s platform.Surface, width, height int) {
	g.RenderSystem.Draw(s, g.Textures, width, height, g.debug)
	g.HUD.Draw(s, width, height, g.World.Player, g.stats(), g.debug)
}

func (g *Game) stats() ui.Stats {
	fps := 0.0
	if g.lastDelta > 0 {
		fps = 1 / g.lastDelta
	}
	return ui.Stats{
		GameTime:  g.World.GameTime,
		Kills:     g.kills,
		FPS:       fps,
		Particles: len(g.World.Particles),
		Bullets:   len(g.World.Bullets),
		Enemies:   len(g.World.Enemies),
	}
}

func (g *Game) RunState() component.RunState { return g.World.State }

// SetRunState switches between playing, paused and over. Over is final.
func (g *Game) SetRunState(s component.RunState) {
	prev := g.World.State
	if prev == s || prev == component.RunOver {
		return
	}
	g.World.State = s
	g.logger.Info("run state changed", "from", prev, "to", s, "time", g.World.GameTime)
}

// Terminal reports whether the run has ended.
func (g *Game) Terminal() bool { return g.World.State == component.RunOver }

func (g *Game) ElapsedTime() float64 { return g.World.GameTime }

func (g *Game) Kills() int { return g.kills }

func (g *Game) SetDebug(on bool) { g.debug = on }

func (g *Game) Debug() bool { return g.debug }

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	logger := l.game.logger
	switch e.Type {
	case event.EnemyDestroyed:
		l.game.kills++
		if d, ok := e.Data.(event.EnemyDestroyedData); ok {
			logger.Debug("enemy destroyed", "archetype", d.Archetype, "cause", d.Cause, "kills", l.game.kills)
		}
	case event.PartDamaged:
		if d, ok := e.Data.(event.PartDamagedData); ok {
			logger.Debug("part damaged", "part", d.Part, "damage", d.Damage, "remaining", d.Remaining)
		}
	case event.PowerUpCollected:
		if d, ok := e.Data.(event.PowerUpData); ok {
			logger.Info("power-up collected", "kind", d.Kind)
		}
	case event.PlayerDestroyed:
		if d, ok := e.Data.(event.PlayerDestroyedData); ok {
			logger.Info("ship destroyed", "part", d.Part, "survived", ui.FormatTime(d.GameTime), "kills", l.game.kills)
		}
	}
}

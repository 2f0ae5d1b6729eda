// internal/system/wave.go
package system

import (
	"math"

	"github.com/charmbracelet/log"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/entity"
	"space-game/internal/event"
	"space-game/internal/utils"
)

// WaveSystem порождает врагов по расписанию каждой волны. Every spawn shortens
// the wave's interval and every burst raises its chance of spawning several
// enemies at once, both up to the wave's limits.
type WaveSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	return &WaveSystem{world: world, rng: rng, eventDispatcher: eventDispatcher, logger: logger}
}

func (s *WaveSystem) Update(deltaTime float64) {
	for i := range s.world.Waves {
		wave := &s.world.Waves[i]
		if !(wave.Interval > 0) {
			continue
		}
		wave.Accumulator += deltaTime
		for wave.Accumulator >= wave.Interval {
			amount := s.burstSize(wave.DoubleSpawnChance)
			wave.DoubleSpawnChance = math.Min(wave.DoubleSpawnChance+config.DoubleSpawnIncrement, wave.MaxDoubleSpawnChance)
			for n := 0; n < amount; n++ {
				wave.Accumulator -= wave.Interval
				wave.Interval = math.Max(wave.Interval-config.SpawnIntervalDecrement, wave.MinInterval)
				s.spawnEnemy(wave)
			}
			s.logger.Debug("wave spawned", "wave", wave.Name, "amount", amount,
				"interval", wave.Interval, "chance", wave.DoubleSpawnChance)
			s.eventDispatcher.Emit(event.EnemySpawned, event.EnemySpawnedData{Archetype: wave.Template.Name, Amount: amount})
		}
	}
}

// burstSize rolls how many enemies spawn together. Each extra enemy is less
// likely than the last: P(n+1 | n) = chance/n².
func (s *WaveSystem) burstSize(chance float64) int {
	amount := 1
	for amount < config.MaxSpawnBurst && s.rng.Float64() < chance/float64(amount*amount) {
		amount++
	}
	return amount
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	player := s.world.Player
	e := wave.Template.Clone()
	e.Pos = player.Pos.Add(s.rng.Direction().Scale(config.SpawnDistance))
	e.Dir = s.rng.Direction()
	e.TargetPos = player.Pos
	if e.Cannon != nil {
		e.Cannon.Dir = e.Dir
	}
	s.world.Enemies = append(s.world.Enemies, e)
}

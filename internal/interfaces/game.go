package interfaces

import (
	"space-game/internal/component"
	"space-game/internal/platform"
)

// Simulation is what the run states drive. app.Game implements it.
type Simulation interface {
	Tick(deltaTime float64, in platform.Input) error
	Draw(s platform.Surface, width, height int)
	RunState() component.RunState
	SetRunState(component.RunState)
	ElapsedTime() float64
	Kills() int
	SetDebug(on bool)
	Debug() bool
}

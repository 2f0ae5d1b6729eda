// internal/state/game_state.go
package state

import (
	"space-game/internal/component"
	"space-game/internal/interfaces"
	"space-game/internal/platform"
)

var _ State = (*PlayState)(nil)

// PlayState — основное игровое состояние: симуляция идёт каждый кадр.
type PlayState struct {
	sm   *StateMachine
	game interfaces.Simulation
}

func NewPlayState(sm *StateMachine, game interfaces.Simulation) *PlayState {
	return &PlayState{sm: sm, game: game}
}

func (s *PlayState) Enter() {
	s.game.SetRunState(component.RunPlaying)
}

// Update ticks the game. An invariant violation ends the run and is returned
// for the host to log; drawing goes on.
func (s *PlayState) Update(deltaTime float64) error {
	s.sm.handleHostKeys(s.game)
	if s.sm.host.IsKeyReleased(platform.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s, s.game))
		return nil
	}

	err := s.game.Tick(deltaTime, s.sm.host)
	if err != nil || s.game.RunState() == component.RunOver {
		s.sm.SetState(NewGameOverState(s.sm, s.game))
	}
	return err
}

func (s *PlayState) Draw() {
	s.sm.drawGame(s.game)
}

func (s *PlayState) Exit() {}

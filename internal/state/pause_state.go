// internal/state/pause_state.go
package state

import (
	"fmt"

	"space-game/internal/component"
	"space-game/internal/interfaces"
	"space-game/internal/platform"
	"space-game/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm            *StateMachine
	previousState State
	game          interfaces.Simulation
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.Simulation) *PauseState {
	return &PauseState{sm: sm, previousState: prevState, game: game}
}

func (s *PauseState) Enter() {
	s.game.SetRunState(component.RunPaused)
}

func (s *PauseState) Update(deltaTime float64) error {
	s.sm.handleHostKeys(s.game)
	if s.sm.host.IsKeyReleased(platform.KeyEscape) {
		s.sm.SetState(s.previousState)
	}
	return nil
}

// Draw рисует замороженный мир и затемнение поверх
func (s *PauseState) Draw() {
	s.sm.drawGame(s.game)
	w, h := s.sm.host.ScreenSize()
	ui.DrawOverlay(s.sm.host, w, h, "PAUSED", "Esc to resume")
}

func (s *PauseState) Exit() {}

var _ State = (*GameOverState)(nil)

// GameOverState is terminal: the world stays on screen, nothing moves.
type GameOverState struct {
	sm   *StateMachine
	game interfaces.Simulation
}

func NewGameOverState(sm *StateMachine, game interfaces.Simulation) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {
	s.game.SetRunState(component.RunOver)
}

func (s *GameOverState) Update(deltaTime float64) error {
	s.sm.handleHostKeys(s.game)
	return nil
}

func (s *GameOverState) Draw() {
	s.sm.drawGame(s.game)
	w, h := s.sm.host.ScreenSize()
	sub := fmt.Sprintf("survived %s, %d kills", ui.FormatTime(s.game.ElapsedTime()), s.game.Kills())
	ui.DrawOverlay(s.sm.host, w, h, "GAME OVER", sub)
}

func (s *GameOverState) Exit() {}

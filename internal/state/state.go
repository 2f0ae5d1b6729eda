// internal/state/state.go
package state

import (
	"github.com/charmbracelet/log"

	"space-game/internal/interfaces"
	"space-game/internal/platform"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw()
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	host    platform.Host
	logger  *log.Logger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(host platform.Host, logger *log.Logger) *StateMachine {
	return &StateMachine{host: host, logger: logger}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

// handleHostKeys processes the keys every state honours: F3 debug and F11 fullscreen.
func (sm *StateMachine) handleHostKeys(game interfaces.Simulation) {
	if sm.host.IsKeyReleased(platform.KeyF3) {
		game.SetDebug(!game.Debug())
		sm.logger.Debug("debug overlay", "on", game.Debug())
	}
	if sm.host.IsKeyReleased(platform.KeyF11) {
		sm.host.ToggleFullscreen()
	}
}

func (sm *StateMachine) drawGame(game interfaces.Simulation) {
	w, h := sm.host.ScreenSize()
	game.Draw(sm.host, w, h)
}

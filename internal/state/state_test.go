package state

import (
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"space-game/internal/component"
	"space-game/internal/platform"
	"space-game/internal/platform/platformtest"
)

// fakeSim counts ticks and can be told to fail or end the run.
type fakeSim struct {
	state   component.RunState
	ticks   int
	elapsed float64
	kills   int
	debug   bool
	failAt  int
	endAt   int
	drawn   int
}

func (f *fakeSim) Tick(dt float64, _ platform.Input) error {
	if f.state != component.RunPlaying {
		return nil
	}
	f.ticks++
	f.elapsed += dt
	if f.failAt > 0 && f.ticks == f.failAt {
		f.state = component.RunOver
		return errors.New("boom")
	}
	if f.endAt > 0 && f.ticks == f.endAt {
		f.state = component.RunOver
	}
	return nil
}

func (f *fakeSim) Draw(s platform.Surface, _, _ int) {
	f.drawn++
	s.Clear(color.RGBA{})
}

func (f *fakeSim) RunState() component.RunState { return f.state }

func (f *fakeSim) SetRunState(s component.RunState) {
	if f.state == component.RunOver {
		return
	}
	f.state = s
}

func (f *fakeSim) ElapsedTime() float64 { return f.elapsed }
func (f *fakeSim) Kills() int           { return f.kills }
func (f *fakeSim) SetDebug(on bool)     { f.debug = on }
func (f *fakeSim) Debug() bool          { return f.debug }

func newMachine(sim *fakeSim) (*StateMachine, *platformtest.Surface) {
	host := platformtest.NewSurface(800, 600)
	sm := NewStateMachine(host, log.New(io.Discard))
	sm.SetState(NewPlayState(sm, sim))
	return sm, host
}

func step(t *testing.T, sm *StateMachine, host *platformtest.Surface) {
	t.Helper()
	if err := sm.Update(1.0 / 60); err != nil {
		t.Fatalf("Update: %v", err)
	}
	host.Next()
}

func TestPlayStateTicks(t *testing.T) {
	sim := &fakeSim{}
	sm, host := newMachine(sim)
	if sim.state != component.RunPlaying {
		t.Fatalf("state = %v, want playing", sim.state)
	}
	for i := 0; i < 3; i++ {
		step(t, sm, host)
	}
	if sim.ticks != 3 {
		t.Errorf("ticks = %d, want 3", sim.ticks)
	}
}

func TestEscapeTogglesPause(t *testing.T) {
	sim := &fakeSim{}
	sm, host := newMachine(sim)

	host.Release(platform.KeyEscape)
	step(t, sm, host)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("current = %T, want *PauseState", sm.Current())
	}
	if sim.state != component.RunPaused {
		t.Errorf("state = %v, want paused", sim.state)
	}
	if sim.ticks != 0 {
		t.Errorf("ticked on the pause frame")
	}

	step(t, sm, host)
	step(t, sm, host)
	if sim.ticks != 0 {
		t.Errorf("ticks while paused = %d", sim.ticks)
	}

	host.Release(platform.KeyEscape)
	step(t, sm, host)
	if _, ok := sm.Current().(*PlayState); !ok {
		t.Fatalf("current = %T, want *PlayState", sm.Current())
	}
	if sim.state != component.RunPlaying {
		t.Errorf("state = %v, want playing", sim.state)
	}
	step(t, sm, host)
	if sim.ticks != 1 {
		t.Errorf("ticks after resume = %d, want 1", sim.ticks)
	}
}

func TestPauseOverlay(t *testing.T) {
	sim := &fakeSim{}
	sm, host := newMachine(sim)
	host.Release(platform.KeyEscape)
	step(t, sm, host)

	host.Reset()
	sm.Draw()
	if sim.drawn != 1 {
		t.Errorf("world drawn %d times, want 1", sim.drawn)
	}
	if !containsText(host.Texts(), "PAUSED") {
		t.Errorf("texts = %v, want PAUSED", host.Texts())
	}
}

func TestRunOverSwitchesToGameOver(t *testing.T) {
	sim := &fakeSim{endAt: 2, kills: 7}
	sm, host := newMachine(sim)
	step(t, sm, host)
	step(t, sm, host)
	if _, ok := sm.Current().(*GameOverState); !ok {
		t.Fatalf("current = %T, want *GameOverState", sm.Current())
	}

	// Escape no longer pauses and nothing ticks.
	host.Release(platform.KeyEscape)
	step(t, sm, host)
	step(t, sm, host)
	if sim.ticks != 2 {
		t.Errorf("ticks = %d, want 2", sim.ticks)
	}
	if sim.state != component.RunOver {
		t.Errorf("state = %v, want over", sim.state)
	}

	host.Reset()
	sm.Draw()
	texts := host.Texts()
	if !containsText(texts, "GAME OVER") || !containsText(texts, "7 kills") {
		t.Errorf("texts = %v", texts)
	}
}

func TestTickErrorIsReturnedAndEndsRun(t *testing.T) {
	sim := &fakeSim{failAt: 1}
	sm, _ := newMachine(sim)
	if err := sm.Update(0.1); err == nil {
		t.Fatal("expected tick error")
	}
	if _, ok := sm.Current().(*GameOverState); !ok {
		t.Fatalf("current = %T, want *GameOverState", sm.Current())
	}
}

func TestHostKeys(t *testing.T) {
	sim := &fakeSim{}
	sm, host := newMachine(sim)

	host.Release(platform.KeyF3)
	host.Release(platform.KeyF11)
	step(t, sm, host)
	if !sim.debug {
		t.Error("F3 did not enable debug")
	}
	if !host.Fullscreen {
		t.Error("F11 did not toggle fullscreen")
	}

	// Works while paused too.
	host.Release(platform.KeyEscape)
	step(t, sm, host)
	host.Release(platform.KeyF3)
	step(t, sm, host)
	if sim.debug {
		t.Error("F3 while paused did not disable debug")
	}
}

func TestEmptyMachine(t *testing.T) {
	sm := NewStateMachine(platformtest.NewSurface(10, 10), log.New(io.Discard))
	if err := sm.Update(1); err != nil {
		t.Fatal(err)
	}
	sm.Draw()
}

func containsText(texts []string, sub string) bool {
	for _, s := range texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

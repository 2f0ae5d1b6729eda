package component

// RunState — состояние симуляции. Only RunPlaying advances the world.
type RunState int

const (
	RunPlaying RunState = iota
	RunPaused
	RunOver
)

func (s RunState) String() string {
	switch s {
	case RunPlaying:
		return "playing"
	case RunPaused:
		return "paused"
	case RunOver:
		return "game over"
	default:
		return "unknown"
	}
}

package component

// Wave is the spawn schedule of one enemy archetype.
type Wave struct {
	Name                 string
	Interval             float64
	MinInterval          float64
	DoubleSpawnChance    float64
	MaxDoubleSpawnChance float64
	Accumulator          float64
	Template             Enemy
}

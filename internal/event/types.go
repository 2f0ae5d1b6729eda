package event

const (
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemySpawnedData
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Data: EnemyDestroyedData
	PartDamaged      EventType = "PartDamaged"      // Data: PartDamagedData
	PowerUpCollected EventType = "PowerUpCollected" // Data: PowerUpData
	PlayerDestroyed  EventType = "PlayerDestroyed"  // Data: PlayerDestroyedData
)

// Cause — причина гибели врага.
type Cause string

const (
	CauseBullet    Cause = "bullet"
	CauseRamming   Cause = "ramming"
	CauseCollision Cause = "collision"
)

type EnemySpawnedData struct {
	Archetype string
	Amount    int
}

type EnemyDestroyedData struct {
	Archetype string
	Cause     Cause
}

type PartDamagedData struct {
	Part      string
	Damage    float64
	Remaining float64
}

type PowerUpData struct {
	Kind string
}

type PlayerDestroyedData struct {
	Part     string
	GameTime float64
}

// internal/config/config.go
package config

import "image/color"

const (
	WindowTitle  = "Space Game"
	ScreenWidth  = 1280 // windowed size when the monitor size is unknown
	ScreenHeight = 720
	MaxDeltaTime = 0.25 // host clamp, seconds
	TargetFPS    = 144

	ImagesDir      = "Images"
	WarningTexture = "EnemyWarning.png"

	// Player
	PlayerTextureScale = 2.0
	FireConeCos        = 0.75 // cosine window around the nose that lets the player's guns fire

	// Enemies
	PredictIterations = 10
	SpawnDistance     = 2000.0

	// Waves
	SpawnIntervalDecrement = 0.1
	DoubleSpawnIncrement   = 0.05
	MaxSpawnBurst          = 16

	// Power-ups
	PowerUpRadius     = 16.0
	RepairMinDistance = 2000.0
	RepairMaxDistance = 2500.0
	PowerUpScale      = 2.0

	// Emitter exhaust jitter
	JitterMin = 20.0
	JitterMax = 40.0

	// Explosions
	ExplosionParticleSize = 5.0

	HitParticles   = 50
	HitDuration    = 0.1
	HitForceMax    = 600.0
	DeathParticles = 500
	DeathDuration  = 0.3
	DeathForceMax  = 300.0

	// Background
	StarTileSize = 10
	StarChance   = 0.1
	StarSize     = 4.0

	// HUD
	TextSize      = 18
	TimerTextSize = 40
	WarningScale  = 1.5
	WarningMargin = 32.0
)

var (
	BackgroundColor = color.RGBA{10, 10, 10, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	DimColor        = color.RGBA{0, 0, 0, 128}

	// friendly hit on an enemy
	EnemyHitStart = color.RGBA{255, 0, 0, 255}
	EnemyHitEnd   = color.RGBA{255, 255, 50, 0}
	// hit on a player part
	PartHitStart = color.RGBA{140, 255, 251, 255}
	PartHitEnd   = color.RGBA{255, 0, 50, 0}
	// enemyDies
	DeathStart = color.RGBA{200, 200, 50, 255}
	DeathEnd   = color.RGBA{255, 0, 0, 100}

	FriendlyBulletColor = color.RGBA{0, 228, 48, 255}
	HostileBulletColor  = color.RGBA{230, 41, 55, 255}

	DebugPartHealthy = color.RGBA{0, 228, 48, 255}
	DebugPartBroken  = color.RGBA{0, 121, 241, 255}
	DebugEnemyColor  = color.RGBA{230, 41, 55, 255}
	DebugTargetColor = color.RGBA{255, 161, 0, 255}

	PartHealthyText = color.RGBA{255, 255, 255, 255}
	PartDamagedText = color.RGBA{255, 161, 0, 255}
	PartBrokenText  = color.RGBA{230, 41, 55, 255}
)

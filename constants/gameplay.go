package constants

import "time"

// Tunnel Geometry
const (
	// TubeRadius is the tunnel radius R; spawn annuli are fractions of it
	TubeRadius = 0.65

	// PlayerRadius is the player's collision radius
	PlayerRadius = 0.18

	// MaxOffset bounds the lateral offset from the centerline
	MaxOffset = 0.55
)

// Speed Progression
const (
	BaseSpeed          = 2.0
	SpeedIncrement     = 0.15
	BaseMoveSpeed      = 1.25
	MoveSpeedIncrement = 0.02

	// AccelerationScale multiplies MoveSpeed*dt into per-tick steering acceleration
	AccelerationScale = 2.5

	// VelocityDamping is applied to the lateral velocity once per tick
	VelocityDamping = 0.9
)

// Score & Levels
const (
	ScorePerSecond      = 10.0
	LevelScoreThreshold = 150.0
)

// Obstacle Waves
const (
	ObstacleBaseCount         = 5
	ObstacleIncrementPerLevel = 2
	ObstacleMaxCount          = 50
	ObstacleSize              = 0.08

	// Obstacle wave placement: path sub-range and annulus as fractions of TubeRadius
	ObstaclePathFrom   = 0.2
	ObstaclePathTo     = 0.95
	ObstacleRadiusMinF = 0.15
	ObstacleRadiusMaxF = 0.5
)

// Collectible Waves
const (
	CollectibleBaseCount         = 3
	CollectibleIncrementPerLevel = 1
	CollectibleMaxCount          = 20
	CollectibleSize              = 0.06
	CollectibleScoreValue        = 25.0

	CollectiblePathFrom   = 0.15
	CollectiblePathTo     = 0.95
	CollectibleRadiusMinF = 0.1
	CollectibleRadiusMaxF = 0.4
)

// Boost Mechanics
const (
	// BoostPower multiplies the effective speed while boost is active
	BoostPower = 2.0

	BoostDuration = 1500 * time.Millisecond
	BoostCooldown = 800 * time.Millisecond

	// BoostRechargeRate and BoostDrainRate are charge points per second
	BoostRechargeRate = 15.0
	BoostDrainRate    = 40.0

	// BoostMinCharge is the charge required to leave the Ready state
	BoostMinCharge = 30.0

	// BoostMaxCharge is the charge ceiling
	BoostMaxCharge = 100.0
)

// Health
const (
	HealthMax             = 3
	InvulnerabilityWindow = 1000 * time.Millisecond
)

// Path Sampling
const (
	// LoopDuration is the elapsed-time period of one lap
	LoopDuration = 10000.0

	// PathTimeScale converts elapsed simulated milliseconds into loop time
	PathTimeScale = 0.1

	// ForwardEpsilon is the look-ahead used to derive the path tangent
	ForwardEpsilon = 0.03

	// ViewDistance is the broad-phase depth window along the forward axis
	ViewDistance = 6.0
)

// Entity Visuals
const (
	// RotationSpeedMax bounds the random per-entity spin in rad/s
	RotationSpeedMax = 1.5
)

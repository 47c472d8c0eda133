// Package config holds every gameplay tunable and loads overrides from an ini file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/ini.v1"

	"github.com/lixenwraith/hyperspace/constants"
)

var ErrInvalid = errors.New("invalid config")

// TunnelConfig describes the tube and the player's reach inside it
type TunnelConfig struct {
	Radius       float64 `ini:"radius"`
	PlayerRadius float64 `ini:"player_radius"`
	MaxOffset    float64 `ini:"max_offset"`
	ViewDistance float64 `ini:"view_distance"`
}

// PlayerConfig drives lateral steering
type PlayerConfig struct {
	BaseMoveSpeed      float64 `ini:"base_move_speed"`
	MoveSpeedIncrement float64 `ini:"move_speed_increment"`
	AccelerationScale  float64 `ini:"acceleration_scale"`
	Damping            float64 `ini:"damping"`
}

// SpeedConfig drives forward speed growth
type SpeedConfig struct {
	Base      float64 `ini:"base"`
	Increment float64 `ini:"increment"`
}

// ScoreConfig drives scoring and level thresholds
type ScoreConfig struct {
	PerSecond      float64 `ini:"per_second"`
	LevelThreshold float64 `ini:"level_threshold"`
}

// WaveConfig sizes and places one pooled entity kind
type WaveConfig struct {
	BaseCount         int     `ini:"base_count"`
	IncrementPerLevel int     `ini:"increment_per_level"`
	MaxCount          int     `ini:"max_count"`
	Size              float64 `ini:"size"`
	PathFrom          float64 `ini:"path_from"`
	PathTo            float64 `ini:"path_to"`
	RadiusMinFraction float64 `ini:"radius_min_fraction"`
	RadiusMaxFraction float64 `ini:"radius_max_fraction"`
	ScoreValue        float64 `ini:"score_value"`
}

// CountForLevel returns min(base + (level-1)*increment, max), never negative
func (w WaveConfig) CountForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	n := w.BaseCount + (level-1)*w.IncrementPerLevel
	if n > w.MaxCount {
		n = w.MaxCount
	}
	if n < 0 {
		n = 0
	}
	return n
}

// BoostConfig drives the Ready -> Active -> Cooldown -> Ready machine
type BoostConfig struct {
	Power        float64       `ini:"power"`
	Duration     time.Duration `ini:"duration"`
	Cooldown     time.Duration `ini:"cooldown"`
	RechargeRate float64       `ini:"recharge_rate"`
	DrainRate    float64       `ini:"drain_rate"`
	MinCharge    float64       `ini:"min_charge"`
}

// HealthConfig drives damage and the invulnerability window
type HealthConfig struct {
	Max                   int           `ini:"max"`
	InvulnerabilityWindow time.Duration `ini:"invulnerability_window"`
}

// LoopConfig drives path sampling and the frame cap
type LoopConfig struct {
	Duration       float64 `ini:"duration"`
	PathTimeScale  float64 `ini:"path_time_scale"`
	ForwardEpsilon float64 `ini:"forward_epsilon"`
	FPS            int     `ini:"fps"`
	MaxDelta       float64 `ini:"max_delta"`
}

// Config is the full tuning set; the zero value is not usable, start from Default
type Config struct {
	Tunnel       TunnelConfig `ini:"tunnel"`
	Player       PlayerConfig `ini:"player"`
	Speed        SpeedConfig  `ini:"speed"`
	Score        ScoreConfig  `ini:"score"`
	Obstacles    WaveConfig   `ini:"obstacles"`
	Collectibles WaveConfig   `ini:"collectibles"`
	Boost        BoostConfig  `ini:"boost"`
	Health       HealthConfig `ini:"health"`
	Loop         LoopConfig   `ini:"loop"`
}

// Default returns the stock tuning
func Default() Config {
	return Config{
		Tunnel: TunnelConfig{
			Radius:       constants.TubeRadius,
			PlayerRadius: constants.PlayerRadius,
			MaxOffset:    constants.MaxOffset,
			ViewDistance: constants.ViewDistance,
		},
		Player: PlayerConfig{
			BaseMoveSpeed:      constants.BaseMoveSpeed,
			MoveSpeedIncrement: constants.MoveSpeedIncrement,
			AccelerationScale:  constants.AccelerationScale,
			Damping:            constants.VelocityDamping,
		},
		Speed: SpeedConfig{
			Base:      constants.BaseSpeed,
			Increment: constants.SpeedIncrement,
		},
		Score: ScoreConfig{
			PerSecond:      constants.ScorePerSecond,
			LevelThreshold: constants.LevelScoreThreshold,
		},
		Obstacles: WaveConfig{
			BaseCount:         constants.ObstacleBaseCount,
			IncrementPerLevel: constants.ObstacleIncrementPerLevel,
			MaxCount:          constants.ObstacleMaxCount,
			Size:              constants.ObstacleSize,
			PathFrom:          constants.ObstaclePathFrom,
			PathTo:            constants.ObstaclePathTo,
			RadiusMinFraction: constants.ObstacleRadiusMinF,
			RadiusMaxFraction: constants.ObstacleRadiusMaxF,
		},
		Collectibles: WaveConfig{
			BaseCount:         constants.CollectibleBaseCount,
			IncrementPerLevel: constants.CollectibleIncrementPerLevel,
			MaxCount:          constants.CollectibleMaxCount,
			Size:              constants.CollectibleSize,
			PathFrom:          constants.CollectiblePathFrom,
			PathTo:            constants.CollectiblePathTo,
			RadiusMinFraction: constants.CollectibleRadiusMinF,
			RadiusMaxFraction: constants.CollectibleRadiusMaxF,
			ScoreValue:        constants.CollectibleScoreValue,
		},
		Boost: BoostConfig{
			Power:        constants.BoostPower,
			Duration:     constants.BoostDuration,
			Cooldown:     constants.BoostCooldown,
			RechargeRate: constants.BoostRechargeRate,
			DrainRate:    constants.BoostDrainRate,
			MinCharge:    constants.BoostMinCharge,
		},
		Health: HealthConfig{
			Max:                   constants.HealthMax,
			InvulnerabilityWindow: constants.InvulnerabilityWindow,
		},
		Loop: LoopConfig{
			Duration:       constants.LoopDuration,
			PathTimeScale:  constants.PathTimeScale,
			ForwardEpsilon: constants.ForwardEpsilon,
			FPS:            int(time.Second / constants.FrameUpdateInterval),
			MaxDelta:       constants.MaxTickDelta,
		},
	}
}

// Load overlays the ini file at path onto Default
// A missing file is not an error: the defaults are returned
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] %s not found, using defaults", path)
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := file.MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("map config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	log.Printf("[config] loaded %s", path)
	return cfg, nil
}

// Save writes cfg as an ini file, useful as a starting point for tuning
func Save(path string, cfg Config) error {
	file := ini.Empty()
	if err := ini.ReflectFrom(file, &cfg); err != nil {
		return fmt.Errorf("reflect config: %w", err)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// Validate rejects values that would break the arithmetic of a tick
// Gameplay values that merely look odd are left alone; the core clamps them
func (c Config) Validate() error {
	switch {
	case c.Loop.Duration <= 0:
		return fmt.Errorf("%w: loop.duration must be positive, got %v", ErrInvalid, c.Loop.Duration)
	case c.Score.LevelThreshold <= 0:
		return fmt.Errorf("%w: score.level_threshold must be positive, got %v", ErrInvalid, c.Score.LevelThreshold)
	case c.Loop.FPS <= 0:
		return fmt.Errorf("%w: loop.fps must be positive, got %d", ErrInvalid, c.Loop.FPS)
	case c.Loop.MaxDelta <= 0:
		return fmt.Errorf("%w: loop.max_delta must be positive, got %v", ErrInvalid, c.Loop.MaxDelta)
	case c.Obstacles.MaxCount < 0 || c.Collectibles.MaxCount < 0:
		return fmt.Errorf("%w: wave max_count must not be negative", ErrInvalid)
	case c.Health.Max < 1:
		return fmt.Errorf("%w: health.max must be at least 1, got %d", ErrInvalid, c.Health.Max)
	case c.Tunnel.Radius <= 0:
		return fmt.Errorf("%w: tunnel.radius must be positive, got %v", ErrInvalid, c.Tunnel.Radius)
	}
	return nil
}

// FrameInterval converts Loop.FPS to the frame cap interval
func (c Config) FrameInterval() time.Duration {
	if c.Loop.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Loop.FPS)
}

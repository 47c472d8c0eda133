// Package game holds the authoritative run state and the per-tick update.
// Everything here runs on the simulation goroutine; readers get value snapshots.
package game

import (
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/hyperspace/config"
	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/input"
	"github.com/lixenwraith/hyperspace/physics"
	"github.com/lixenwraith/hyperspace/pool"
	"github.com/lixenwraith/hyperspace/track"
	"github.com/lixenwraith/hyperspace/vmath"
)

// Session owns one player's game: config, path, pools, rng and state
type Session struct {
	cfg  config.Config
	path track.Sampler
	rng  *vmath.FastRand

	obstacles        *pool.Pool
	collectibles     *pool.Pool
	obstaclePlace    pool.Placement
	collectiblePlace pool.Placement

	params physics.Params
	hits   *physics.Result

	queue *events.EventQueue

	player PlayerState
	run    RunState

	tick       uint64
	boostLatch bool // Boost input seen on the previous tick
}

// NewSession builds a session with pools sized to the configured wave maximums
// The session is idle until Start
func NewSession(cfg config.Config, path track.Sampler, queue *events.EventQueue, seed uint64) *Session {
	rng := vmath.NewFastRand(seed)
	r := cfg.Tunnel.Radius

	s := &Session{
		cfg:          cfg,
		path:         path,
		rng:          rng,
		queue:        queue,
		obstacles:    pool.New(pool.KindObstacle, cfg.Obstacles.MaxCount, rng),
		collectibles: pool.New(pool.KindCollectible, cfg.Collectibles.MaxCount, rng),
		obstaclePlace: pool.Placement{
			From:      cfg.Obstacles.PathFrom,
			To:        cfg.Obstacles.PathTo,
			MinRadius: cfg.Obstacles.RadiusMinFraction * r,
			MaxRadius: cfg.Obstacles.RadiusMaxFraction * r,
		},
		collectiblePlace: pool.Placement{
			From:      cfg.Collectibles.PathFrom,
			To:        cfg.Collectibles.PathTo,
			MinRadius: cfg.Collectibles.RadiusMinFraction * r,
			MaxRadius: cfg.Collectibles.RadiusMaxFraction * r,
		},
		params: physics.Params{
			PlayerRadius:      cfg.Tunnel.PlayerRadius,
			ObstacleRadius:    cfg.Obstacles.Size,
			CollectibleRadius: cfg.Collectibles.Size,
			ViewDistance:      cfg.Tunnel.ViewDistance,
		},
	}
	s.hits = physics.NewResult(s.collectibles.Capacity())
	s.run.Level = 1
	s.run.Health = cfg.Health.Max
	s.run.BoostCharge = constants.BoostMaxCharge
	s.updatePlayerWorld()
	return s
}

// Start resets player and run state, spawns both waves and begins playing
// Valid from any state; this is the only way out of Ended
func (s *Session) Start(now time.Time) {
	s.player = PlayerState{}
	s.run = RunState{
		RunID:           uuid.NewString(),
		StartedAt:       now,
		Level:           1,
		SpeedMultiplier: s.cfg.Speed.Base,
		MoveSpeed:       s.cfg.Player.BaseMoveSpeed,
		Health:          s.cfg.Health.Max,
		BoostCharge:     constants.BoostMaxCharge,
		Boost:           BoostReady,
		IsPlaying:       true,
	}
	// A boost key still held from the start screen must be released first
	s.boostLatch = true

	s.spawnWaves()
	s.updatePlayerWorld()

	log.Printf("[game] run %s started (obstacles=%d collectibles=%d)", s.run.RunID, s.run.ObstacleCount, s.run.CollectibleCount)
	s.emit(events.EventRunStarted, &events.RunStartedPayload{RunID: s.run.RunID}, now)
}

// Tick advances the run by delta seconds of real time
// No-op unless playing and not paused; delta is clamped to [0, MaxDelta]
func (s *Session) Tick(now time.Time, delta float64, in input.State) {
	if !s.run.IsPlaying || s.run.Paused {
		return
	}
	s.tick++

	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}
	if delta > s.cfg.Loop.MaxDelta {
		delta = s.cfg.Loop.MaxDelta
	}

	// 1. Timed windows
	s.pollDeadlines(now)

	// 2-3. Distance and score
	speed := s.EffectiveSpeed()
	s.run.ElapsedTime += delta * 1000 * speed
	s.run.Score += delta * s.cfg.Score.PerSecond * speed

	// 4. Level
	s.checkLevel(now)

	// 5. Boost charge
	s.updateBoostCharge(delta)

	// 6. Boost trigger on the rising edge of the input
	if in.Boost && !s.boostLatch {
		s.ActivateBoost(now)
	}
	s.boostLatch = in.Boost

	// 7-8. Steering and world position
	s.integrateMovement(delta, in)
	s.updatePlayerWorld()

	// 9. Visual spin
	s.obstacles.Rotate(delta)
	s.collectibles.Rotate(delta)

	// 10. Collisions
	s.resolveCollisions(now)
}

// EffectiveSpeed is SpeedMultiplier scaled by BoostPower while boosting
func (s *Session) EffectiveSpeed() float64 {
	if s.run.Boost == BoostActive {
		return s.run.SpeedMultiplier * s.cfg.Boost.Power
	}
	return s.run.SpeedMultiplier
}

// SetPaused gates Tick; only meaningful while playing
func (s *Session) SetPaused(paused bool, now time.Time) {
	if !s.run.IsPlaying || s.run.Paused == paused {
		return
	}
	s.run.Paused = paused
	s.emit(events.EventPauseChanged, &events.PausePayload{Paused: paused}, now)
}

// Menu leaves the game-over screen; the frozen result is dropped, pools stay as they are
func (s *Session) Menu() {
	if s.run.IsPlaying {
		return
	}
	s.run.Ended = false
}

func (s *Session) Paused() bool {
	return s.run.Paused
}

func (s *Session) Playing() bool {
	return s.run.IsPlaying
}

func (s *Session) Ended() bool {
	return s.run.Ended
}

// Run returns a copy of the run state
func (s *Session) Run() RunState {
	return s.run
}

// Player returns a copy of the player state
func (s *Session) Player() PlayerState {
	return s.player
}

// Config returns the tuning the session was built with
func (s *Session) Config() config.Config {
	return s.cfg
}

// TickCount returns the number of simulated ticks since construction
func (s *Session) TickCount() uint64 {
	return s.tick
}

func (s *Session) spawnWaves() {
	s.run.ObstacleCount = s.obstacles.SpawnWave(s.cfg.Obstacles.CountForLevel(s.run.Level), s.obstaclePlace, s.path, s.rng)
	s.run.CollectibleCount = s.collectibles.SpawnWave(s.cfg.Collectibles.CountForLevel(s.run.Level), s.collectiblePlace, s.path, s.rng)
}

func (s *Session) pollDeadlines(now time.Time) {
	s.pollBoost(now)
	s.pollInvulnerability(now)
}

func (s *Session) resolveCollisions(now time.Time) {
	physics.Detect(s.player.Position, s.player.Forward, s.obstacles, s.collectibles, s.params, s.hits)

	if s.hits.Obstacle >= 0 {
		// Retired even when absorbed by invulnerability so it cannot hit twice
		s.obstacles.Deactivate(s.hits.Obstacle)
		s.ApplyDamage(now)
	}

	// Ended runs are frozen; pickups overlapping the final hit are not credited
	if !s.run.IsPlaying {
		return
	}

	for _, idx := range s.hits.Collected {
		e := s.collectibles.At(idx)
		pos := e.World
		if !s.collectibles.Deactivate(idx) {
			continue
		}
		value := s.cfg.Collectibles.ScoreValue
		s.run.Score += value
		s.run.Collected++
		s.emit(events.EventItemCollected, &events.CollectPayload{
			Index:    idx,
			Value:    value,
			Score:    s.run.Score,
			Position: pos,
		}, now)
	}
}

func (s *Session) emit(t events.EventType, payload any, now time.Time) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      s.tick,
		Timestamp: now,
	})
}

package game

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/hyperspace/events"
)

// levelForScore is floor(score/threshold)+1
func (s *Session) levelForScore(score float64) int {
	return int(math.Floor(score/s.cfg.Score.LevelThreshold)) + 1
}

// checkLevel runs the level-up transition when the score crossed one or more thresholds
// Per-level speed increments apply once per level gained; both waves re-spawn once
func (s *Session) checkLevel(now time.Time) {
	next := s.levelForScore(s.run.Score)
	if next <= s.run.Level {
		return
	}

	gained := float64(next - s.run.Level)
	s.run.Level = next
	s.run.SpeedMultiplier += gained * s.cfg.Speed.Increment
	s.run.MoveSpeed += gained * s.cfg.Player.MoveSpeedIncrement

	s.spawnWaves()

	log.Printf("[game] level %d (speed=%.2f obstacles=%d)", s.run.Level, s.run.SpeedMultiplier, s.run.ObstacleCount)
	s.emit(events.EventLevelUp, &events.LevelUpPayload{
		Level:        s.run.Level,
		Obstacles:    s.run.ObstacleCount,
		Collectibles: s.run.CollectibleCount,
		Speed:        s.run.SpeedMultiplier,
	}, now)
}

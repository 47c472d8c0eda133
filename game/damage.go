package game

import (
	"log"
	"time"

	"github.com/lixenwraith/hyperspace/events"
)

// ApplyDamage takes one hit unless the run is already lost or invulnerable
// An absorbed hit leaves health and the invulnerability window untouched
// Reaching zero health ends the run
func (s *Session) ApplyDamage(now time.Time) bool {
	s.pollInvulnerability(now)
	if !s.run.IsPlaying || s.run.Health <= 0 || s.run.Invulnerable {
		return false
	}

	s.run.Health--
	s.run.Hits++
	s.run.Invulnerable = true
	s.run.InvulnerableUntil = now.Add(s.cfg.Health.InvulnerabilityWindow)

	s.emit(events.EventDamageTaken, &events.DamagePayload{
		Health:   s.run.Health,
		Position: s.player.Position,
	}, now)

	if s.run.Health <= 0 {
		s.endRun(now)
	}
	return true
}

func (s *Session) pollInvulnerability(now time.Time) {
	if s.run.Invulnerable && !now.Before(s.run.InvulnerableUntil) {
		s.run.Invulnerable = false
	}
}

// endRun is the terminal Playing -> Ended transition; state stays frozen until Start
func (s *Session) endRun(now time.Time) {
	s.run.IsPlaying = false
	s.run.Paused = false
	s.run.Ended = true

	log.Printf("[game] run %s ended: score=%d level=%d", s.run.RunID, int(s.run.Score), s.run.Level)
	s.emit(events.EventRunEnded, &events.RunEndedPayload{
		RunID: s.run.RunID,
		Score: s.run.Score,
		Level: s.run.Level,
	}, now)
}

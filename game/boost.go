package game

import (
	"time"

	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/vmath"
)

// ActivateBoost moves Ready -> Active when charge allows
// Returns false (no-op) while Active or Cooldown, below MinCharge, or when not playing
func (s *Session) ActivateBoost(now time.Time) bool {
	if !s.run.IsPlaying || s.run.Paused {
		return false
	}
	s.pollBoost(now)
	if s.run.Boost != BoostReady || s.run.BoostCharge < s.cfg.Boost.MinCharge {
		return false
	}

	s.setBoostPhase(BoostActive, now.Add(s.cfg.Boost.Duration))
	s.emit(events.EventBoostActivated, nil, now)
	return true
}

// pollBoost advances the boost machine past every deadline that has elapsed at now
func (s *Session) pollBoost(now time.Time) {
	if s.run.Boost == BoostActive && !now.Before(s.run.BoostUntil) {
		// Cooldown is anchored on the Active deadline so late polling doesn't stretch it
		s.setBoostPhase(BoostCooldown, s.run.BoostUntil.Add(s.cfg.Boost.Cooldown))
		s.emit(events.EventBoostCooldown, nil, now)
	}
	if s.run.Boost == BoostCooldown && !now.Before(s.run.BoostUntil) {
		s.setBoostPhase(BoostReady, time.Time{})
		s.emit(events.EventBoostReady, nil, now)
	}
}

func (s *Session) setBoostPhase(phase BoostPhase, until time.Time) {
	s.run.Boost = phase
	s.run.BoostActive = phase == BoostActive
	s.run.BoostCooldown = phase == BoostCooldown
	s.run.BoostUntil = until
}

// updateBoostCharge drains while Active and recharges otherwise, clamped to [0, 100]
func (s *Session) updateBoostCharge(delta float64) {
	if s.run.Boost == BoostActive {
		s.run.BoostCharge -= s.cfg.Boost.DrainRate * delta
	} else if s.run.BoostCharge < constants.BoostMaxCharge {
		s.run.BoostCharge += s.cfg.Boost.RechargeRate * delta
	}
	s.run.BoostCharge = vmath.Clamp(s.run.BoostCharge, 0, constants.BoostMaxCharge)
}

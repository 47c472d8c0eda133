package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRunStarted signals a fresh run with reset state and new waves
	// Trigger: Session.Start
	// Consumer: render (hide menus), spectate | Payload: *RunStartedPayload
	EventRunStarted EventType = iota

	// EventRunEnded signals the terminal Playing -> Ended transition
	// Trigger: ApplyDamage when health reaches 0
	// Consumer: record.Keeper, render (game over), spectate | Payload: *RunEndedPayload
	EventRunEnded

	// EventDamageTaken signals an accepted hit (not one absorbed by invulnerability)
	// Trigger: obstacle collision
	// Consumer: render (flash, shake) | Payload: *DamagePayload
	EventDamageTaken

	// EventItemCollected signals one pickup collected; several may arrive in one tick
	// Trigger: collectible collision
	// Consumer: render (score popup) | Payload: *CollectPayload
	EventItemCollected

	// EventLevelUp signals a level transition and the re-spawned waves
	// Trigger: score crossing a level threshold
	// Consumer: render (banner) | Payload: *LevelUpPayload
	EventLevelUp

	// EventBoostActivated signals Ready -> Active
	// Consumer: render (glow) | Payload: nil
	EventBoostActivated

	// EventBoostCooldown signals Active -> Cooldown once the active deadline passes
	// Payload: nil
	EventBoostCooldown

	// EventBoostReady signals Cooldown -> Ready
	// Payload: nil
	EventBoostReady

	// EventPauseChanged signals the pause gate flipping
	// Payload: *PausePayload
	EventPauseChanged

	// EventTypeCount is the number of event types
	EventTypeCount
)

var eventNames = [...]string{
	EventRunStarted:     "run_started",
	EventRunEnded:       "run_ended",
	EventDamageTaken:    "damage_taken",
	EventItemCollected:  "item_collected",
	EventLevelUp:        "level_up",
	EventBoostActivated: "boost_activated",
	EventBoostCooldown:  "boost_cooldown",
	EventBoostReady:     "boost_ready",
	EventPauseChanged:   "pause_changed",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Session tick that produced the event
	Timestamp time.Time
}

package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/vmath"
)

const (
	flashDuration  = 200 * time.Millisecond
	shakeDuration  = 300 * time.Millisecond
	popupDuration  = 800 * time.Millisecond
	bannerDuration = 1500 * time.Millisecond
	maxPopups      = 16
)

// Clock is the real-time source for effect timers
type Clock interface {
	Now() time.Time
}

type popup struct {
	text  string
	world vmath.Vec3F
	until time.Time
}

// Effects turns core events into timed one-shot visuals
// Timers run on real time and never feed back into the session
type Effects struct {
	clock Clock
	rng   *vmath.FastRand

	flashUntil  time.Time
	shakeUntil  time.Time
	bannerUntil time.Time
	banner      string
	boostGlow   bool

	popups []popup
}

func NewEffects(clock Clock, seed uint64) *Effects {
	return &Effects{
		clock:  clock,
		rng:    vmath.NewFastRand(seed),
		popups: make([]popup, 0, maxPopups),
	}
}

func (fx *Effects) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRunStarted,
		events.EventDamageTaken,
		events.EventItemCollected,
		events.EventLevelUp,
		events.EventBoostActivated,
		events.EventBoostCooldown,
		events.EventRunEnded,
	}
}

func (fx *Effects) HandleEvent(_ *game.Snapshot, ev events.GameEvent) {
	now := fx.clock.Now()

	switch ev.Type {
	case events.EventRunStarted:
		fx.reset()

	case events.EventDamageTaken:
		fx.flashUntil = now.Add(flashDuration)
		fx.shakeUntil = now.Add(shakeDuration)
		if p, ok := ev.Payload.(*events.DamagePayload); ok {
			// Cosmetic only; score is unaffected by damage
			fx.addPopup("-1 HP", p.Position, now)
		}

	case events.EventItemCollected:
		if p, ok := ev.Payload.(*events.CollectPayload); ok {
			fx.addPopup(fmt.Sprintf("+%d", int(p.Value)), p.Position, now)
		}

	case events.EventLevelUp:
		if p, ok := ev.Payload.(*events.LevelUpPayload); ok {
			fx.banner = fmt.Sprintf("LEVEL %d", p.Level)
			fx.bannerUntil = now.Add(bannerDuration)
		}

	case events.EventBoostActivated:
		fx.boostGlow = true

	case events.EventBoostCooldown, events.EventRunEnded:
		fx.boostGlow = false
	}
}

func (fx *Effects) reset() {
	fx.flashUntil = time.Time{}
	fx.shakeUntil = time.Time{}
	fx.bannerUntil = time.Time{}
	fx.banner = ""
	fx.boostGlow = false
	fx.popups = fx.popups[:0]
}

func (fx *Effects) addPopup(text string, at vmath.Vec3F, now time.Time) {
	if len(fx.popups) == maxPopups {
		copy(fx.popups, fx.popups[1:])
		fx.popups = fx.popups[:maxPopups-1]
	}
	fx.popups = append(fx.popups, popup{text: text, world: at, until: now.Add(popupDuration)})
}

// expire drops finished popups
func (fx *Effects) expire(now time.Time) {
	kept := fx.popups[:0]
	for _, p := range fx.popups {
		if now.Before(p.until) {
			kept = append(kept, p)
		}
	}
	fx.popups = kept
}

func (fx *Effects) Flashing(now time.Time) bool {
	return now.Before(fx.flashUntil)
}

// Shake returns the cell offset to apply this frame
func (fx *Effects) Shake(now time.Time) (int, int) {
	if !now.Before(fx.shakeUntil) {
		return 0, 0
	}
	return fx.rng.Intn(3) - 1, fx.rng.Intn(3) - 1
}

// Banner returns the active banner text, "" when none
func (fx *Effects) Banner(now time.Time) string {
	if now.Before(fx.bannerUntil) {
		return fx.banner
	}
	return ""
}

func (fx *Effects) BoostGlow() bool {
	return fx.boostGlow
}

// PopupCount returns the number of live popups
func (fx *Effects) PopupCount() int {
	return len(fx.popups)
}

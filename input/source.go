package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Source turns tcell key events into held controls
// Terminals report presses and auto-repeats but never releases, so a control stays
// held until the hold window passes without another press or repeat
// Not safe for concurrent use: feed and sample it from the goroutine that owns the loop
type Source struct {
	table    *KeyTable
	hold     time.Duration
	lastSeen [controlCount]time.Time
}

// NewSource creates a source over the given bindings; nil table uses the defaults
func NewSource(table *KeyTable, hold time.Duration) *Source {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Source{table: table, hold: hold}
}

// HandleKey records a press at now and returns the bound action, if any
func (s *Source) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	entry, ok := s.table.Lookup(ev)
	if !ok {
		return ActionNone
	}
	if entry.Control != ControlNone {
		s.lastSeen[entry.Control] = now
	}
	return entry.Action
}

// State samples the held controls at now
func (s *Source) State(now time.Time) State {
	return State{
		Up:    s.held(ControlUp, now),
		Down:  s.held(ControlDown, now),
		Left:  s.held(ControlLeft, now),
		Right: s.held(ControlRight, now),
		Boost: s.held(ControlBoost, now),
	}
}

func (s *Source) held(c Control, now time.Time) bool {
	last := s.lastSeen[c]
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < s.hold
}

// Release drops every held control (focus loss, pause, screen change)
func (s *Source) Release() {
	for i := range s.lastSeen {
		s.lastSeen[i] = time.Time{}
	}
}

package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behavior without function pointers
// A key may hold a control and trigger an action at once (Space boosts and starts)
type KeyEntry struct {
	Control Control
	Action  Action
}

// Bound reports whether the entry does anything
func (e KeyEntry) Bound() bool {
	return e.Control != ControlNone || e.Action != ActionNone
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {Control: ControlUp},
			tcell.KeyDown:   {Control: ControlDown},
			tcell.KeyLeft:   {Control: ControlLeft},
			tcell.KeyRight:  {Control: ControlRight},
			tcell.KeyEnter:  {Action: ActionStart},
			tcell.KeyEscape: {Action: ActionPause},
			tcell.KeyCtrlC:  {Action: ActionQuit},
		},

		Runes: map[rune]KeyEntry{
			'w': {Control: ControlUp},
			's': {Control: ControlDown},
			'a': {Control: ControlLeft},
			'd': {Control: ControlRight},
			' ': {Control: ControlBoost, Action: ActionStart},
			'p': {Action: ActionPause},
			'r': {Action: ActionRestart},
			'm': {Action: ActionMenu},
			'q': {Action: ActionQuit},
		},
	}
}

// Lookup resolves a tcell key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if e, ok := kt.Runes[r]; ok {
			return e, true
		}
		e, ok := kt.Runes[toLower(r)]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneKeyMap(kt.SpecialKeys),
		Runes:       cloneRuneMap(kt.Runes),
	}
}

func cloneRuneMap(m map[rune]KeyEntry) map[rune]KeyEntry {
	result := make(map[rune]KeyEntry, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

func cloneKeyMap(m map[tcell.Key]KeyEntry) map[tcell.Key]KeyEntry {
	result := make(map[tcell.Key]KeyEntry, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

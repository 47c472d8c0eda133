package input

import "sort"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve ini action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// Steering
	"steer_up":    {Control: ControlUp},
	"steer_down":  {Control: ControlDown},
	"steer_left":  {Control: ControlLeft},
	"steer_right": {Control: ControlRight},

	// Boost doubles as start on menus
	"boost":      {Control: ControlBoost, Action: ActionStart},
	"boost_only": {Control: ControlBoost},

	// System
	"pause":   {Action: ActionPause},
	"start":   {Action: ActionStart},
	"restart": {Action: ActionRestart},
	"menu":    {Action: ActionMenu},
	"quit":    {Action: ActionQuit},
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

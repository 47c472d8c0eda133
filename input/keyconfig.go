package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/ini.v1"
)

// Rune aliases for keys that can't be bare single-char ini keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"semicolon": ';',
	"hash":      '#',
	"equals":    '=',
}

// Ini section names
const (
	runeSection    = "keys"
	specialSection = "special_keys"
)

// keysByName maps lowercased tcell key names ("up", "esc", "ctrl-c") to keys
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses ini keymap data into a sparse override KeyTable
// source is anything ini.Load accepts: a file path or raw []byte
// Only sections present in the data are populated
func LoadKeyConfig(source any) (*KeyTable, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if section, err := file.GetSection(runeSection); err == nil {
		kt.Runes = make(map[rune]KeyEntry, len(section.Keys()))
		for _, key := range section.Keys() {
			r, err := resolveRune(key.Name())
			if err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", runeSection, key.Name(), err)
			}
			entry, err := resolveAction(key.String())
			if err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", runeSection, key.Name(), err)
			}
			kt.Runes[r] = entry
		}
	}

	if section, err := file.GetSection(specialSection); err == nil {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(section.Keys()))
		for _, key := range section.Keys() {
			k, ok := keysByName[strings.ToLower(key.Name())]
			if !ok {
				return nil, fmt.Errorf("[%s] unknown key name: %q", specialSection, key.Name())
			}
			entry, err := resolveAction(key.String())
			if err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", specialSection, key.Name(), err)
			}
			kt.SpecialKeys[k] = entry
		}
	}

	return kt, nil
}

// resolveRune converts an ini key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return toLower(runes[0]), nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v.Bound() {
			result.Runes[k] = v
		} else {
			delete(result.Runes, k)
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Bound() {
			result.SpecialKeys[k] = v
		} else {
			delete(result.SpecialKeys, k)
		}
	}

	return result
}

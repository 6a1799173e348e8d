package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// runeAliases name characters that are awkward as TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"slash":     '/',
	"backslash": '\\',
}

// keyFile is the keymap file layout: [runes] and [keys] sections of key = "action"
type keyFile struct {
	Runes map[string]string `toml:"runes"`
	Keys  map[string]string `toml:"keys"`
}

var keysByName = buildKeyNames()

func buildKeyNames() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keyFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap parse: unknown section %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Runes: make(map[rune]Action, len(f.Runes)),
		Keys:  make(map[tcell.Key]Action, len(f.Keys)),
	}
	for keyStr, name := range f.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = a
	}
	for keyStr, name := range f.Keys {
		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.Keys[k] = a
	}
	return kt, nil
}

// resolveRune maps a [runes] key to its character; aliases cover keys TOML can't spell bare
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError && size == len(s) {
		return r, nil
	}
	return 0, fmt.Errorf("invalid rune key %q: want one character or one of space, slash, backslash", s)
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

package terminal

import (
	"strconv"
	"strings"
)

// InputKind tags the payload carried by InputInfo
type InputKind uint8

const (
	InputNone  InputKind = iota
	InputChar            // Rune is valid
	InputKey             // Key is valid
	InputMouse           // Mouse is valid
)

// InputInfo is one decoded input event
// Overwritten on every decode; copy it if it must outlive the cycle
type InputInfo struct {
	Kind  InputKind
	Rune  rune
	Key   Key
	Mouse Mouse
	Mod   Modifier
	Name  string // Human-readable, for tracing
}

// Reset clears the event to InputNone
func (ii *InputInfo) Reset() {
	*ii = InputInfo{}
}

// IsChar reports whether the event is the character r with exactly the modifiers mod
func (ii *InputInfo) IsChar(r rune, mod Modifier) bool {
	return ii.Kind == InputChar && ii.Rune == r && ii.Mod == mod
}

// IsKey reports whether the event is the special key k, ignoring modifiers
func (ii *InputInfo) IsKey(k Key) bool {
	return ii.Kind == InputKey && ii.Key == k
}

func (ii *InputInfo) setChar(r rune, mod Modifier) {
	ii.Kind = InputChar
	ii.Rune = r
	ii.Mod = mod
	ii.Name = mod.Prefix() + charName(r)
}

func (ii *InputInfo) setKey(k Key, mod Modifier) {
	ii.Kind = InputKey
	ii.Key = k
	ii.Mod = mod
	ii.Name = mod.Prefix() + k.String()
}

func (ii *InputInfo) setMouse(m Mouse, mod Modifier) {
	ii.Kind = InputMouse
	ii.Mouse = m
	ii.Mod = mod

	var b strings.Builder
	b.WriteString(mod.Prefix())
	b.WriteString("Mouse")
	b.WriteString(m.Btn.String())
	b.WriteString(m.Action.String())
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(m.Col))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(m.Row))
	b.WriteByte(')')
	ii.Name = b.String()
}

func charName(r rune) string {
	switch {
	case r == ' ':
		return "Space"
	case r < 0x20 || r == 0x7f:
		return "U+" + strconv.FormatInt(int64(r), 16)
	default:
		return string(r)
	}
}

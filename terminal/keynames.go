package terminal

// keyToName maps Key constants to display names used in InputInfo.Name
var keyToName = map[Key]string{
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Tab", // reported as Shift+Tab via modifiers
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",

	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PgUp",
	KeyPageDown: "PgDown",
	KeyInsert:   "Insert",

	KeyF1:  "F1",
	KeyF2:  "F2",
	KeyF3:  "F3",
	KeyF4:  "F4",
	KeyF5:  "F5",
	KeyF6:  "F6",
	KeyF7:  "F7",
	KeyF8:  "F8",
	KeyF9:  "F9",
	KeyF10: "F10",
	KeyF11: "F11",
	KeyF12: "F12",

	KeyPasteBegin: "PasteBegin",
	KeyPasteEnd:   "PasteEnd",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		if k == KeyBacktab {
			continue
		}
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["Backtab"] = KeyBacktab
	nameToKey["Escape"] = KeyEscape
}

// String returns the display name, empty for KeyNone
func (k Key) String() string {
	return keyToName[k]
}

// KeyByName resolves a display name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

package terminal

import "strconv"

// Key represents a decoded special key
type Key uint16

// Key constants
const (
	KeyNone Key = iota

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Bracketed paste markers
	KeyPasteBegin
	KeyPasteEnd
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Shift reports whether the shift flag is set
func (m Modifier) Shift() bool { return m&ModShift != 0 }

// Alt reports whether the alt flag is set
func (m Modifier) Alt() bool { return m&ModAlt != 0 }

// Ctrl reports whether the ctrl flag is set
func (m Modifier) Ctrl() bool { return m&ModCtrl != 0 }

// Prefix returns the modifier chain as it appears in event names, e.g. "Ctrl+Alt+"
func (m Modifier) Prefix() string {
	var s string
	if m.Ctrl() {
		s += "Ctrl+"
	}
	if m.Alt() {
		s += "Alt+"
	}
	if m.Shift() {
		s += "Shift+"
	}
	return s
}

// xtermModifier decodes the xterm modifier parameter (2..8) into flags
// Parameter value is 1 + bitmask(shift=1, alt=2, ctrl=4)
func xtermModifier(p int) Modifier {
	if p < 2 || p > 8 {
		return ModNone
	}
	return Modifier(p - 1)
}

// escapeSequence maps an escape sequence body to a key
// Body is the part after ESC [ or ESC O (e.g., "A" for up arrow)
type escapeSequence struct {
	seq string
	key Key
	mod Modifier
}

// Base CSI sequences; modified variants are generated from these
var csiBase = []escapeSequence{
	// Arrow keys
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},
	{"Z", KeyBacktab, ModShift},

	// Navigation
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"1~", KeyHome, ModNone},
	{"4~", KeyEnd, ModNone},
	{"5~", KeyPageUp, ModNone},
	{"6~", KeyPageDown, ModNone},
	{"2~", KeyInsert, ModNone},
	{"3~", KeyDelete, ModNone},
	{"7~", KeyHome, ModNone},
	{"8~", KeyEnd, ModNone},

	// Function keys (xterm)
	{"11~", KeyF1, ModNone},
	{"12~", KeyF2, ModNone},
	{"13~", KeyF3, ModNone},
	{"14~", KeyF4, ModNone},
	{"15~", KeyF5, ModNone},
	{"17~", KeyF6, ModNone},
	{"18~", KeyF7, ModNone},
	{"19~", KeyF8, ModNone},
	{"20~", KeyF9, ModNone},
	{"21~", KeyF10, ModNone},
	{"23~", KeyF11, ModNone},
	{"24~", KeyF12, ModNone},

	// Function keys (linux console)
	{"[A", KeyF1, ModNone},
	{"[B", KeyF2, ModNone},
	{"[C", KeyF3, ModNone},
	{"[D", KeyF4, ModNone},
	{"[E", KeyF5, ModNone},

	{"200~", KeyPasteBegin, ModNone},
	{"201~", KeyPasteEnd, ModNone},
}

// Final bytes that take the "1;m" modifier form (arrows, home/end, F1-F4)
var csiLetterModified = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// Numeric codes that take the "n;m~" modifier form
var csiTildeModified = map[string]Key{
	"2": KeyInsert, "3": KeyDelete, "5": KeyPageUp, "6": KeyPageDown,
	"15": KeyF5, "17": KeyF6, "18": KeyF7, "19": KeyF8,
	"20": KeyF9, "21": KeyF10, "23": KeyF11, "24": KeyF12,
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"P", KeyF1, ModNone},
	{"Q", KeyF2, ModNone},
	{"R", KeyF3, ModNone},
	{"S", KeyF4, ModNone},
	{"M", KeyEnter, ModNone}, // Keypad Enter
}

var (
	csiMap    = buildSequenceMap(csiSequences())
	ss3Map    = buildSequenceMap(ss3Sequences)
	csiPrefix = buildPrefixSet(csiMap)
)

// csiSequences expands the base table with xterm modifier variants (m = 2..8)
func csiSequences() []escapeSequence {
	seqs := make([]escapeSequence, 0, len(csiBase)+7*(len(csiLetterModified)+len(csiTildeModified)))
	seqs = append(seqs, csiBase...)
	for m := 2; m <= 8; m++ {
		ms := strconv.Itoa(m)
		for final, key := range csiLetterModified {
			seqs = append(seqs, escapeSequence{"1;" + ms + string(final), key, xtermModifier(m)})
		}
		for code, key := range csiTildeModified {
			seqs = append(seqs, escapeSequence{code + ";" + ms + "~", key, xtermModifier(m)})
		}
	}
	return seqs
}

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// buildPrefixSet collects every proper prefix of the known sequence bodies
func buildPrefixSet(m map[string]escapeSequence) map[string]struct{} {
	p := make(map[string]struct{}, len(m)*2)
	for seq := range m {
		for i := 1; i < len(seq); i++ {
			p[seq[:i]] = struct{}{}
		}
	}
	return p
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(body []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(body)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// isCSIPrefix reports whether body can still grow into a known CSI sequence
func isCSIPrefix(body []byte) bool {
	_, ok := csiPrefix[string(body)]
	return ok
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(body []byte) (Key, Modifier, bool) {
	if s, ok := ss3Map[string(body)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

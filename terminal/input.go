package terminal

import "unicode/utf8"

// SeqMaxLength is the longest escape sequence the decoder buffers before resynchronizing
const SeqMaxLength = 24

const keyEsc = 0x1b

// match is the outcome of testing the pending bytes against the known patterns
type match uint8

const (
	matchPartial match = iota // may still complete, wait for more bytes
	matchFull                 // complete event decoded
	matchNone                 // cannot complete, resynchronize
)

// Decoder converts a raw byte stream into InputInfo events, one per call
// Stateful and resumable: bytes of an incomplete sequence stay pending across calls
// Zero value is ready to use
type Decoder struct {
	seq [SeqMaxLength]byte
	n   int
}

// Pending returns the number of bytes held for an incomplete sequence
func (d *Decoder) Pending() int {
	return d.n
}

// DecodeInputSeq decodes at most one event from pending bytes plus the queue
// Returns the byte count of the emitted event, or 0 when the queue is exhausted and
// pending bytes (if any) still form a valid prefix; ii is reset on every call
func (d *Decoder) DecodeInputSeq(q *InputQueue, ii *InputInfo) int {
	ii.Reset()

	for {
		if d.n == 0 {
			b, ok := q.Pop()
			if !ok {
				return 0
			}
			d.seq[0] = b
			d.n = 1
		}

		// Idle: single-byte literal, classify immediately
		if first := d.seq[0]; first != keyEsc && utf8SeqLen(first) <= 1 {
			return d.emitOldest(ii)
		}

		switch d.match(ii) {
		case matchFull:
			n := d.n
			d.n = 0
			return n
		case matchNone:
			return d.emitOldest(ii)
		}

		if d.n == len(d.seq) {
			return d.emitOldest(ii)
		}

		b, ok := q.Pop()
		if !ok {
			return 0
		}
		d.seq[d.n] = b
		d.n++
	}
}

// FlushPending forces the oldest pending byte out as a literal event
// Used when the input source reports no more bytes, so a lone ESC becomes the Escape key
func (d *Decoder) FlushPending(ii *InputInfo) int {
	ii.Reset()
	if d.n == 0 {
		return 0
	}
	return d.emitOldest(ii)
}

// Reset drops pending bytes
func (d *Decoder) Reset() {
	d.n = 0
}

// emitOldest resynchronizes: the oldest pending byte becomes a literal event,
// the remainder stays pending for the next call
func (d *Decoder) emitOldest(ii *InputInfo) int {
	literal(d.seq[0], ModNone, ii)
	copy(d.seq[:], d.seq[1:d.n])
	d.n--
	return 1
}

// match tests pending bytes, fills ii on matchFull
func (d *Decoder) match(ii *InputInfo) match {
	s := d.seq[:d.n]
	if s[0] == keyEsc {
		return matchEscape(s, ii)
	}
	return matchUTF8(s, ii)
}

// matchEscape handles sequences introduced by ESC
func matchEscape(s []byte, ii *InputInfo) match {
	if len(s) < 2 {
		return matchPartial
	}

	switch b := s[1]; {
	case b == '[':
		return matchCSI(s, ii)
	case b == 'O':
		if len(s) < 3 {
			return matchPartial
		}
		if key, mod, ok := lookupSS3(s[2:3]); ok {
			ii.setKey(key, mod)
			return matchFull
		}
		return matchNone
	case b == keyEsc:
		// ESC ESC -> Alt+Escape
		ii.setKey(KeyEscape, ModAlt)
		return matchFull
	case b <= 0x7f:
		// Alt+printable, Alt+control
		literal(b, ModAlt, ii)
		return matchFull
	}
	return matchNone
}

// matchCSI handles ESC [ sequences: keys from the table and mouse reports
func matchCSI(s []byte, ii *InputInfo) match {
	if len(s) < 3 {
		return matchPartial
	}

	switch s[2] {
	case '<':
		return matchSGRMouse(s, ii)
	case 'M':
		return matchX10Mouse(s, ii)
	}

	body := s[2:]
	if key, mod, ok := lookupCSI(body); ok {
		ii.setKey(key, mod)
		return matchFull
	}
	if isCSIPrefix(body) {
		return matchPartial
	}
	return matchNone
}

// matchSGRMouse parses ESC [ < Btn ; X ; Y M/m
func matchSGRMouse(s []byte, ii *InputInfo) match {
	params := s[3:]
	for i, b := range params {
		switch {
		case b >= '0' && b <= '9', b == ';':
			continue
		case (b == 'M' || b == 'm') && i == len(params)-1:
			btn, x, y, ok := parseSGRParams(params[:i])
			if !ok || x < 1 || y < 1 {
				return matchNone
			}
			m, mod := decodeMouseButton(btn, b == 'm')
			m.Col = x - 1
			m.Row = y - 1
			ii.setMouse(m, mod)
			return matchFull
		default:
			return matchNone
		}
	}
	return matchPartial
}

// matchX10Mouse parses legacy ESC [ M Cb Cx Cy, each value offset by 32
func matchX10Mouse(s []byte, ii *InputInfo) match {
	if len(s) < 6 {
		return matchPartial
	}
	if s[3] < 32 || s[4] < 33 || s[5] < 33 {
		return matchNone
	}
	m, mod := decodeMouseButton(int(s[3]-32), false)
	m.Col = int(s[4]) - 33
	m.Row = int(s[5]) - 33
	ii.setMouse(m, mod)
	return matchFull
}

// matchUTF8 assembles a multi-byte rune
func matchUTF8(s []byte, ii *InputInfo) match {
	need := utf8SeqLen(s[0])
	for _, b := range s[1:] {
		if b&0xc0 != 0x80 {
			return matchNone
		}
	}
	if len(s) < need {
		return matchPartial
	}
	r, size := utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		return matchNone
	}
	ii.setChar(r, ModNone)
	return matchFull
}

// literal classifies a single byte; mod is added to whatever the byte implies
func literal(b byte, mod Modifier, ii *InputInfo) {
	switch {
	case b == keyEsc:
		ii.setKey(KeyEscape, mod)
	case b == '\r' || b == '\n':
		ii.setKey(KeyEnter, mod)
	case b == '\t':
		ii.setKey(KeyTab, mod)
	case b == 0x08 || b == 0x7f:
		ii.setKey(KeyBackspace, mod)
	case b == 0x00:
		ii.setChar(' ', mod|ModCtrl)
	case b <= 0x1a:
		// Ctrl+A .. Ctrl+Z
		ii.setChar(rune('A'+b-1), mod|ModCtrl)
	case b < 0x20:
		// 0x1c..0x1f -> Ctrl+\ ] ^ _
		ii.setChar(rune('\\'+b-0x1c), mod|ModCtrl)
	case b < 0x80:
		ii.setChar(rune(b), mod)
	default:
		ii.setChar(utf8.RuneError, mod)
	}
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		if b == ';' {
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 { // Sanity limit
				return 0, 0, 0, false
			}
		} else {
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}

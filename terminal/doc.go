// Package terminal provides the raw terminal layer of the toolkit.
//
// Input: platform InputSource implementations deliver raw bytes, an
// InputQueue buffers them and a Decoder turns them into InputInfo
// events (keys with modifiers, UTF-8 characters, xterm mouse reports).
//
// Output: a Terminal wraps a PAL (buffered character output plus a sleep
// primitive) with cursor, color, clear and mouse-mode helpers. Nothing
// reaches the screen before Flush.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal

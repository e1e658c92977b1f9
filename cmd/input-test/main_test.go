package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/termwins/terminal"
)

func TestDumpStopsOnCtrlD(t *testing.T) {
	var out bytes.Buffer
	term := terminal.New(terminal.NewWriterPAL(&out))
	src := terminal.NewScriptSourceStrings(false, "a\x1b[1;5A", "\x1b[<0;3;4M", "\x04", "never")

	dump(term, src)

	text := terminal.StripEscapes(out.String())
	assert.Contains(t, text, "a  char='a' len=1")
	assert.Contains(t, text, "Ctrl+Up  key=")
	assert.Contains(t, text, "mod=Ctrl len=6")
	assert.Contains(t, text, "MouseLeftPress(2,3)  btn=Left action=Press col=2 row=3 len=")
	assert.Contains(t, text, "Ctrl+D")
	assert.Equal(t, 1, src.Remaining())
}

func TestDumpFlushesLoneEscape(t *testing.T) {
	var out bytes.Buffer
	term := terminal.New(terminal.NewWriterPAL(&out))

	dump(term, terminal.NewScriptSourceStrings(true, "\x1b"))

	text := terminal.StripEscapes(out.String())
	assert.Contains(t, text, "(pending 1 bytes)")
	assert.Contains(t, text, "Esc  key=")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "  bytes: 0x1b [ A\r\n", formatBytes([]byte("\x1b[A")))
}

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/lixenwraith/termwins/app"
	"github.com/lixenwraith/termwins/config"
	"github.com/lixenwraith/termwins/terminal"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config file")
	backendFlag = flag.String("backend", "", "Input backend: stdio, tty, script")
	mouseFlag   = flag.String("mouse", "motion", "Mouse mode: off, click, drag, motion")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT-TEST CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}
	cfg.MouseMode = *mouseFlag
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}

	platform, err := app.OpenPlatform(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer platform.Close()

	term := app.NewTerminal(platform.Out)
	term.MouseMode(cfg.Mouse())
	term.Write("Input Test - press keys, click, scroll - Ctrl+D to quit\r\n")
	term.Flush()

	dump(term, platform.Source)

	term.MouseMode(terminal.MouseModeOff)
	term.Flush()
}

// dump prints every decoded event until Ctrl+D or the source closes
func dump(term *terminal.Terminal, src terminal.InputSource) {
	var (
		q   terminal.InputQueue
		dec terminal.Decoder
		ii  terminal.InputInfo
	)

	for {
		seq, quit := src.ReadInput()
		if len(seq) > 0 {
			for data := seq; len(data) > 0; {
				n := q.Extend(data)
				data = data[n:]
				for cnt := dec.DecodeInputSeq(&q, &ii); cnt > 0; cnt = dec.DecodeInputSeq(&q, &ii) {
					term.Write(formatEvent(&ii, cnt))
					if app.IsQuit(&ii) {
						term.Flush()
						return
					}
				}
			}
			if dec.Pending() > 0 {
				term.Write(fmt.Sprintf("  (pending %d bytes)\r\n", dec.Pending()))
			}
			term.Write(formatBytes(seq))
		} else if dec.Pending() > 0 {
			for cnt := dec.FlushPending(&ii); cnt > 0; cnt = dec.FlushPending(&ii) {
				term.Write(formatEvent(&ii, cnt))
			}
		}
		term.Flush()

		if quit {
			return
		}
	}
}

func formatEvent(ii *terminal.InputInfo, n int) string {
	var b strings.Builder
	b.WriteString(terminal.Bold)
	b.WriteString(ii.Name)
	b.WriteString(terminal.Normal)

	switch ii.Kind {
	case terminal.InputChar:
		fmt.Fprintf(&b, "  char=%q", ii.Rune)
	case terminal.InputKey:
		fmt.Fprintf(&b, "  key=%d", ii.Key)
	case terminal.InputMouse:
		fmt.Fprintf(&b, "  btn=%s action=%s col=%d row=%d", ii.Mouse.Btn, ii.Mouse.Action, ii.Mouse.Col, ii.Mouse.Row)
	}
	if ii.Mod != terminal.ModNone {
		fmt.Fprintf(&b, " mod=%s", strings.TrimSuffix(ii.Mod.Prefix(), "+"))
	}
	fmt.Fprintf(&b, " len=%d\r\n", n)
	return b.String()
}

func formatBytes(seq []byte) string {
	var b strings.Builder
	b.WriteString("  bytes:")
	for _, c := range seq {
		b.WriteByte(' ')
		if c >= 0x21 && c < 0x7f {
			b.WriteByte(c)
			continue
		}
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(c), 16))
	}
	b.WriteString("\r\n")
	return b.String()
}

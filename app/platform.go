package app

import (
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/termwins/config"
	"github.com/lixenwraith/termwins/terminal"
)

// Platform bundles the input source and output stream chosen by configuration
type Platform struct {
	Source terminal.InputSource
	Out    io.Writer
	closer func() error
	sizer  terminal.Sizer
}

// Size reports the screen dimensions, the defaults when the backend has no screen
func (p *Platform) Size() (int, int) {
	if p.sizer == nil {
		return terminal.DefaultCols, terminal.DefaultRows
	}
	return p.sizer.Size()
}

// Close restores the terminal mode; safe to call more than once
func (p *Platform) Close() error {
	if p.closer == nil {
		return nil
	}
	err := p.closer()
	p.closer = nil
	return err
}

// OpenPlatform opens the configured backend
func OpenPlatform(cfg *config.Config) (*Platform, error) {
	switch cfg.Backend {
	case config.BackendStdio:
		src := terminal.NewStdioSource(cfg.ReadTimeout)
		if err := src.Open(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
		}
		return &Platform{Source: src, Out: os.Stdout, closer: src.Close, sizer: src}, nil

	case config.BackendTty:
		src, err := terminal.NewTtySource(cfg.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
		}
		if err := src.Open(); err != nil {
			src.Close()
			return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
		}
		return &Platform{Source: src, Out: src.Writer(), closer: src.Close, sizer: src}, nil

	case config.BackendScript:
		src := terminal.NewScriptSourceStrings(true, cfg.Script...)
		return &Platform{Source: src, Out: os.Stdout}, nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// OptionsFrom maps configuration onto loop options
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		MouseMode:     cfg.Mouse(),
		MaxIterations: cfg.MaxIterations,
		CycleSleep:    cfg.CycleSleep,
		ExitDelay:     cfg.ExitDelay,
		EscTimeout:    cfg.EscTimeout,
	}
}

// NewTerminal creates a Terminal writing to out through a line-buffered PAL
func NewTerminal(out io.Writer) *terminal.Terminal {
	return terminal.New(terminal.NewWriterPAL(out))
}

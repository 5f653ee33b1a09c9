package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner charsets: Unicode braille dots, or |/-\ when ASCII is forced.
const (
	unicodeSpinnerSet = 14
	asciiSpinnerSet   = 9
)

// Spinner shows an activity indicator on stderr while an external command
// runs. It is inert when stderr is not a terminal.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// NewSpinner returns a spinner with the given message as its suffix.
func NewSpinner(message string) *Spinner {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return &Spinner{}
	}

	set := asciiSpinnerSet
	if caps.SupportsUnicode {
		set = unicodeSpinnerSet
	}

	sp := spinner.New(spinner.CharSets[set], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " " + message
	return &Spinner{s: sp, enabled: true}
}

// Start begins the animation. No-op when disabled.
func (p *Spinner) Start() {
	if p.enabled {
		p.s.Start()
	}
}

// Stop halts the animation and clears the line. No-op when disabled.
func (p *Spinner) Stop() {
	if p.enabled {
		p.s.Stop()
	}
}

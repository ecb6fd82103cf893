package native

import (
	"sync"

	"github.com/muesli/termenv"

	"lookandfeel/internal/logger"
	"lookandfeel/pkg/lnftypes"
)

// TerminalProbe is the subset of *termenv.Output the terminal backend queries.
type TerminalProbe interface {
	ForegroundColor() termenv.Color
	BackgroundColor() termenv.Color
	HasDarkBackground() bool
	ColorProfile() termenv.Profile
}

// TerminalBackend derives metrics from the controlling terminal: its default colors, whether
// the background is dark, and how many colors it can show. Fonts are never supplied.
type TerminalBackend struct {
	probe TerminalProbe

	mu     sync.RWMutex
	ints   map[lnftypes.IntID]int32
	colors map[lnftypes.ColorID]lnftypes.Color
}

// NewTerminalBackend creates a backend over probe. A nil probe uses termenv's default output.
func NewTerminalBackend(probe TerminalProbe) *TerminalBackend {
	if probe == nil {
		probe = termenv.DefaultOutput()
	}
	return &TerminalBackend{probe: probe}
}

// Name returns "terminal".
func (t *TerminalBackend) Name() string {
	return "terminal"
}

// Init probes the terminal.
func (t *TerminalBackend) Init() error {
	return t.Refresh()
}

// Refresh probes the terminal again.
func (t *TerminalBackend) Refresh() error {
	ints := make(map[lnftypes.IntID]int32)
	colors := make(map[lnftypes.ColorID]lnftypes.Color)

	dark := t.probe.HasDarkBackground()
	ints[lnftypes.IntSystemUsesDarkTheme] = boolInt(dark)

	profile := t.probe.ColorProfile()
	// A terminal that cannot show color is the closest thing to a forced-colors mode.
	ints[lnftypes.IntUseAccessibilityTheme] = boolInt(profile == termenv.Ascii)

	fg, hasFG := terminalColor(t.probe.ForegroundColor())
	bg, hasBG := terminalColor(t.probe.BackgroundColor())

	if hasBG {
		for _, id := range []lnftypes.ColorID{
			lnftypes.ColorWindow, lnftypes.ColorCanvas, lnftypes.ColorField, lnftypes.ColorBackground,
		} {
			colors[id] = bg
		}
	}
	if hasFG {
		for _, id := range []lnftypes.ColorID{
			lnftypes.ColorWindowText, lnftypes.ColorCanvasText, lnftypes.ColorFieldText,
		} {
			colors[id] = fg
		}
	}
	if hasFG && hasBG {
		gray := fg.Colorful().BlendRgb(bg.Colorful(), 0.5)
		colors[lnftypes.ColorGrayText] = lnftypes.FromColorful(gray, 0xff)
	}

	if profile != termenv.Ascii {
		// ANSI blue is what terminals use for selections and links by convention.
		if blue, ok := terminalColor(termenv.ANSIBlue); ok {
			colors[lnftypes.ColorHighlight] = blue
			colors[lnftypes.ColorAccentColor] = blue
			colors[lnftypes.ColorLinkText] = blue
		}
	}

	t.mu.Lock()
	t.ints = ints
	t.colors = colors
	t.mu.Unlock()

	logger.Debug("Terminal probed", "dark", dark, "colors", len(colors))
	return nil
}

// Int implements Backend.
func (t *TerminalBackend) Int(id lnftypes.IntID) (int32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.ints[id]
	return v, ok
}

// Float implements Backend. Terminals report no float metrics.
func (t *TerminalBackend) Float(lnftypes.FloatID) (float32, bool) {
	return 0, false
}

// Color implements Backend.
func (t *TerminalBackend) Color(id lnftypes.ColorID) (lnftypes.Color, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.colors[id]
	return v, ok
}

// Font implements Backend. Terminals do not expose fonts.
func (t *TerminalBackend) Font(lnftypes.FontID) (lnftypes.Font, bool) {
	return lnftypes.Font{}, false
}

// PasswordChar implements Backend.
func (t *TerminalBackend) PasswordChar() (uint16, bool) {
	return 0, false
}

// EchoPassword implements Backend.
func (t *TerminalBackend) EchoPassword() (bool, bool) {
	return false, false
}

func terminalColor(c termenv.Color) (lnftypes.Color, bool) {
	if c == nil {
		return 0, false
	}
	if _, none := c.(termenv.NoColor); none {
		return 0, false
	}
	return lnftypes.FromColorful(termenv.ConvertToRGB(c), 0xff), true
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Package output provides the console printer used by the lnf commands.
// Results go to stdout through a Printer so commands can be redirected in tests,
// and status lines get semantic styling only when the terminal supports it.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic is the meaning of a status line, used to pick its style.
type Semantic string

const (
	SemanticPlain   Semantic = "plain"
	SemanticInfo    Semantic = "info"
	SemanticSuccess Semantic = "success"
	SemanticWarning Semantic = "warning"
	SemanticError   Semantic = "error"
)

// plainPrefixes mark status lines when styling is off.
var plainPrefixes = map[Semantic]string{
	SemanticInfo:    "ℹ ",
	SemanticSuccess: "✓ ",
	SemanticWarning: "⚠ ",
	SemanticError:   "✗ ",
}

// Styles maps each semantic to a lipgloss style.
type Styles map[Semantic]lipgloss.Style

// DefaultStyles returns adaptive styles that read on light and dark terminals.
func DefaultStyles() Styles {
	return Styles{
		SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"}),
		SemanticSuccess: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}),
		SemanticWarning: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}),
		SemanticError:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}).Bold(true),
	}
}

// Printer writes command results and status lines.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	styles Styles
	plain  bool
	silent bool
	prefix string
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriter redirects output. A nil writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.writer = w
		}
	}
}

// WithStyles replaces the semantic styles.
func WithStyles(styles Styles) Option {
	return func(p *Printer) {
		p.styles = styles
	}
}

// PlainText disables styling.
func PlainText() Option {
	return func(p *Printer) {
		p.plain = true
	}
}

// Silent discards all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// WithPrefix prepends prefix to every write.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}

// NewPrinter creates a Printer writing to stdout. Styling is turned off
// when stdout has no color support.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		styles: DefaultStyles(),
	}
	for _, opt := range options {
		opt(p)
	}
	if f, ok := p.writer.(*os.File); !ok || termenv.NewOutput(f).Profile == termenv.Ascii {
		p.plain = true
	}
	return p
}

// Print writes text unchanged.
func (p *Printer) Print(text string) {
	p.write(SemanticPlain, text, false)
}

// Printf writes formatted text unchanged.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.write(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	p.write(SemanticPlain, text, true)
}

func (p *Printer) Info(text string) {
	p.write(SemanticInfo, text, true)
}

func (p *Printer) Success(text string) {
	p.write(SemanticSuccess, text, true)
}

func (p *Printer) Warning(text string) {
	p.write(SemanticWarning, text, true)
}

func (p *Printer) Error(text string) {
	p.write(SemanticError, text, true)
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	p.write(SemanticPlain, string(data), true)
	return nil
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer
}

// IsStyled reports whether status lines are rendered with styles.
func (p *Printer) IsStyled() bool {
	return !p.plain
}

func (p *Printer) write(semantic Semantic, text string, newline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if semantic != SemanticPlain {
		if style, ok := p.styles[semantic]; ok && !p.plain {
			text = style.Render(text)
		} else {
			text = plainPrefixes[semantic] + text
		}
	}
	if newline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = fmt.Fprint(p.writer, p.prefix+text)
}

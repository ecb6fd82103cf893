package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"lookandfeel/internal/native"
	"lookandfeel/internal/transport"
	"lookandfeel/pkg/lnftypes"
)

// Output formats understood by RenderService.Render.
const (
	FormatTable    = "table"
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// RenderService turns tables into text for people and files.
type RenderService struct {
	initialized bool
	wordWrap    int
}

// RenderTheme holds the styles used for table output. It is derived from the table being shown,
// so a dump looks like the theme it describes.
type RenderTheme struct {
	Heading lipgloss.Style
	Name    lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
}

// RenderOptions selects the output.
type RenderOptions struct {
	Format string
	// Name labels YAML profiles and headings.
	Name string
	// MarkdownStyle is a glamour standard style. Empty picks dark or light from the table.
	MarkdownStyle string
	// Plain disables ANSI styling.
	Plain bool
}

// NewRenderService creates a new RenderService instance.
func NewRenderService() *RenderService {
	return &RenderService{wordWrap: 100}
}

// Name returns the service name "render" for registration.
func (r *RenderService) Name() string {
	return "render"
}

// Initialize sets up the RenderService for operation.
func (r *RenderService) Initialize() error {
	r.initialized = true
	return nil
}

// Formats returns the supported output formats.
func (r *RenderService) Formats() []string {
	return []string{FormatTable, FormatYAML, FormatJSON, FormatMarkdown}
}

// Render formats table according to opts.
func (r *RenderService) Render(table *lnftypes.FullLookAndFeel, opts RenderOptions) (string, error) {
	if !r.initialized {
		return "", fmt.Errorf("render service not initialized")
	}
	if table == nil {
		return "", lnftypes.ErrNilTable
	}

	name := opts.Name
	if name == "" {
		name = "snapshot"
	}

	switch strings.ToLower(opts.Format) {
	case "", FormatTable:
		return r.renderTable(table, name, opts.Plain), nil
	case FormatYAML:
		data, err := yaml.Marshal(native.ToProfileFile(table, name))
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(data), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := transport.Encode(&buf, table); err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return buf.String(), nil
	case FormatMarkdown:
		md := r.Markdown(table, name)
		if opts.Plain {
			return md, nil
		}
		return r.renderMarkdown(md, r.markdownStyle(table, opts.MarkdownStyle))
	default:
		return "", fmt.Errorf("unknown format %q (expected %s)", opts.Format, strings.Join(r.Formats(), ", "))
	}
}

// ThemeFor derives output styles from table's own colors, falling back to adaptive defaults for
// colors the table lacks.
func (r *RenderService) ThemeFor(table *lnftypes.FullLookAndFeel) *RenderTheme {
	accent := tableColor(table, lnftypes.ColorAccentColor, lipgloss.AdaptiveColor{Light: "#005fd7", Dark: "#5fafff"})
	text := tableColor(table, lnftypes.ColorWindowText, lipgloss.AdaptiveColor{Light: "#1d1d1f", Dark: "#e6e6e6"})
	gray := tableColor(table, lnftypes.ColorGrayText, lipgloss.AdaptiveColor{Light: "#6d6d6d", Dark: "#8a8a8a"})

	return &RenderTheme{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Name:    lipgloss.NewStyle().Foreground(text),
		Value:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(gray).Italic(true),
	}
}

func tableColor(table *lnftypes.FullLookAndFeel, id lnftypes.ColorID, fallback lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c, ok := table.Color(id); ok {
		return lipgloss.Color(opaqueHex(c))
	}
	return fallback
}

// opaqueHex drops alpha, which terminals cannot show.
func opaqueHex(c lnftypes.Color) string {
	return lnftypes.NewColor(c.R(), c.G(), c.B(), 0xff).Hex()
}

type row struct {
	name   string
	value  string
	swatch string
}

func (r *RenderService) renderTable(table *lnftypes.FullLookAndFeel, name string, plain bool) string {
	theme := r.ThemeFor(table)
	if plain {
		theme = &RenderTheme{
			Heading: lipgloss.NewStyle(),
			Name:    lipgloss.NewStyle(),
			Value:   lipgloss.NewStyle(),
			Muted:   lipgloss.NewStyle(),
		}
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Look and feel: %s", name)))
	b.WriteString("\n")
	if table.Generation() != "" {
		b.WriteString(theme.Muted.Render("generation " + table.Generation()))
		b.WriteString("\n")
	}

	sections := []struct {
		title string
		rows  []row
	}{
		{"Integers", intRows(table)},
		{"Floats", floatRows(table)},
		{"Colors", colorRows(table, plain)},
		{"Fonts", fontRows(table)},
		{"Password", []row{
			{name: "PasswordChar", value: FormatPasswordChar(table.PasswordChar())},
			{name: "EchoPassword", value: fmt.Sprintf("%t", table.EchoPassword())},
		}},
	}

	width := 0
	for _, s := range sections {
		for _, rw := range s.rows {
			width = max(width, ansi.StringWidth(rw.name))
		}
	}

	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render(fmt.Sprintf("%s (%d)", s.title, len(s.rows))))
		b.WriteString("\n")
		if len(s.rows) == 0 {
			b.WriteString("  ")
			b.WriteString(theme.Muted.Render("none supplied"))
			b.WriteString("\n")
			continue
		}
		for _, rw := range s.rows {
			b.WriteString("  ")
			b.WriteString(theme.Name.Render(rw.name))
			b.WriteString(strings.Repeat(" ", width-ansi.StringWidth(rw.name)+2))
			if rw.swatch != "" {
				b.WriteString(rw.swatch)
				b.WriteString(" ")
			}
			b.WriteString(theme.Value.Render(rw.value))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func intRows(table *lnftypes.FullLookAndFeel) []row {
	ids := table.IntIDs()
	rows := make([]row, 0, len(ids))
	for _, id := range ids {
		v, _ := table.Int(id)
		rows = append(rows, row{name: id.String(), value: fmt.Sprintf("%d", v)})
	}
	return rows
}

func floatRows(table *lnftypes.FullLookAndFeel) []row {
	ids := table.FloatIDs()
	rows := make([]row, 0, len(ids))
	for _, id := range ids {
		v, _ := table.Float(id)
		rows = append(rows, row{name: id.String(), value: fmt.Sprintf("%g", v)})
	}
	return rows
}

func colorRows(table *lnftypes.FullLookAndFeel, plain bool) []row {
	ids := table.ColorIDs()
	rows := make([]row, 0, len(ids))
	for _, id := range ids {
		v, _ := table.Color(id)
		rw := row{name: id.String(), value: v.Hex()}
		if !plain {
			rw.swatch = lipgloss.NewStyle().Background(lipgloss.Color(opaqueHex(v))).Render("  ")
		}
		rows = append(rows, rw)
	}
	return rows
}

func fontRows(table *lnftypes.FullLookAndFeel) []row {
	ids := table.FontIDs()
	rows := make([]row, 0, len(ids))
	for _, id := range ids {
		v, _ := table.Font(id)
		rows = append(rows, row{name: id.String(), value: FormatFont(v)})
	}
	return rows
}

// Markdown renders table as a markdown document with one table per kind.
func (r *RenderService) Markdown(table *lnftypes.FullLookAndFeel, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Look and feel: %s\n\n", name)
	if table.Generation() != "" {
		fmt.Fprintf(&b, "Generation `%s`\n\n", table.Generation())
	}

	writeSection := func(title string, rows []row) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		if len(rows) == 0 {
			b.WriteString("_none supplied_\n\n")
			return
		}
		b.WriteString("| Identifier | Value |\n|---|---|\n")
		for _, rw := range rows {
			fmt.Fprintf(&b, "| %s | `%s` |\n", rw.name, rw.value)
		}
		b.WriteString("\n")
	}

	writeSection("Integers", intRows(table))
	writeSection("Floats", floatRows(table))
	writeSection("Colors", colorRows(table, true))
	writeSection("Fonts", fontRows(table))
	writeSection("Password", []row{
		{name: "PasswordChar", value: FormatPasswordChar(table.PasswordChar())},
		{name: "EchoPassword", value: fmt.Sprintf("%t", table.EchoPassword())},
	})

	return b.String()
}

func (r *RenderService) markdownStyle(table *lnftypes.FullLookAndFeel, requested string) string {
	if requested != "" {
		return requested
	}
	if dark, ok := table.Int(lnftypes.IntSystemUsesDarkTheme); ok && dark != 0 {
		return "dark"
	}
	return "light"
}

func (r *RenderService) renderMarkdown(md, style string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(r.wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	return rendered, nil
}

// GetGlobalRenderService returns the registered render service.
func GetGlobalRenderService() (*RenderService, error) {
	return globalService[*RenderService]("render")
}

package services

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lookandfeel/internal/native"
	"lookandfeel/internal/transport"
	"lookandfeel/pkg/lnftypes"
)

func newRenderService(t *testing.T) *RenderService {
	t.Helper()
	s := NewRenderService()
	require.NoError(t, s.Initialize())
	return s
}

func TestRenderService_BasicFunctionality(t *testing.T) {
	s := NewRenderService()
	assert.Equal(t, "render", s.Name())

	_, err := s.Render(sampleTable(), RenderOptions{})
	assert.Error(t, err, "uninitialized service")

	require.NoError(t, s.Initialize())
	_, err = s.Render(nil, RenderOptions{})
	assert.ErrorIs(t, err, lnftypes.ErrNilTable)

	_, err = s.Render(sampleTable(), RenderOptions{Format: "xml"})
	assert.Error(t, err)
}

func TestRenderService_Table(t *testing.T) {
	s := newRenderService(t)

	out, err := s.Render(sampleTable(), RenderOptions{Format: FormatTable, Name: "dark"})
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Look and feel: dark")
	assert.Contains(t, plain, "generation gen-1")
	assert.Contains(t, plain, "Integers (2)")
	assert.Contains(t, plain, "ScrollbarWidth")
	assert.Contains(t, plain, "#3584e4")
	assert.Contains(t, plain, "Inter 13px weight=600")
	assert.Contains(t, plain, "U+2022")
}

func TestRenderService_TableAlignsValues(t *testing.T) {
	s := newRenderService(t)

	out, err := s.Render(sampleTable(), RenderOptions{Format: FormatTable, Plain: true})
	require.NoError(t, err)

	var columns []int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ScrollbarWidth") || strings.HasPrefix(line, "  TextScaleFactor") {
			trimmed := strings.TrimRight(line, " ")
			columns = append(columns, strings.LastIndex(trimmed, " ")+1)
		}
	}
	require.Len(t, columns, 2)
	assert.Equal(t, columns[0], columns[1])
}

func TestRenderService_EmptySections(t *testing.T) {
	s := newRenderService(t)

	out, err := s.Render(lnftypes.NewTableBuilder().Build(), RenderOptions{Plain: true})
	require.NoError(t, err)
	assert.Contains(t, out, "Fonts (0)")
	assert.Contains(t, out, "none supplied")
}

func TestRenderService_YAMLIsAProfile(t *testing.T) {
	s := newRenderService(t)

	out, err := s.Render(sampleTable(), RenderOptions{Format: FormatYAML, Name: "snap"})
	require.NoError(t, err)

	var file native.ProfileFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	assert.Equal(t, "snap", file.Name)
	assert.Equal(t, "#202020", file.Colors["Window"])
	assert.Equal(t, "•", file.PasswordChar)
}

func TestRenderService_JSONDecodes(t *testing.T) {
	s := newRenderService(t)

	out, err := s.Render(sampleTable(), RenderOptions{Format: FormatJSON})
	require.NoError(t, err)

	decoded, err := transport.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, sampleTable().Equal(decoded))
}

func TestRenderService_Markdown(t *testing.T) {
	s := newRenderService(t)

	raw, err := s.Render(sampleTable(), RenderOptions{Format: FormatMarkdown, Plain: true})
	require.NoError(t, err)
	assert.Contains(t, raw, "# Look and feel: snapshot")
	assert.Contains(t, raw, "| ScrollbarWidth | `17` |")

	rendered, err := s.Render(sampleTable(), RenderOptions{Format: FormatMarkdown, MarkdownStyle: "notty"})
	require.NoError(t, err)
	assert.Contains(t, rendered, "ScrollbarWidth")
}

func TestRenderService_MarkdownStyleFollowsTable(t *testing.T) {
	s := newRenderService(t)

	assert.Equal(t, "dark", s.markdownStyle(sampleTable(), ""))
	assert.Equal(t, "light", s.markdownStyle(lnftypes.NewTableBuilder().Build(), ""))
	assert.Equal(t, "ascii", s.markdownStyle(sampleTable(), "ascii"))
}

func TestRenderService_ThemeFor(t *testing.T) {
	s := newRenderService(t)

	theme := s.ThemeFor(sampleTable())
	assert.Equal(t, lipgloss.Color("#3584e4"), theme.Heading.GetForeground())
}

func TestOpaqueHex(t *testing.T) {
	assert.Equal(t, "#102030", opaqueHex(lnftypes.NewColor(0x10, 0x20, 0x30, 0x40)))
}

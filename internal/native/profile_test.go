package native

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lookandfeel/internal/data/embedded"
	"lookandfeel/pkg/lnftypes"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProfileBackend_EmbeddedProfilesLoad(t *testing.T) {
	names := embedded.ProfileNames()
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			b := NewProfileBackend(name)
			require.NoError(t, b.Init())
			assert.Equal(t, "", b.Path())

			_, ok := b.Color(lnftypes.ColorWindow)
			assert.True(t, ok, "every embedded profile defines Window")
		})
	}
}

func TestProfileBackend_FileValues(t *testing.T) {
	path := writeProfile(t, `
name: test
ints:
  ScrollbarWidth: 17
  caretwidth: "2"
  NoSuchMetric: 5
  TooltipDelay: soon
floats:
  CaretAspectRatio: 0.05
colors:
  Window: "#102030"
  Highlight: "#10203080"
  Bogus: "#000000"
  Menu: "not a color"
fonts:
  Menu:
    family: Inter
    style: {size: 12}
  Caption:
    family: ""
    style: {size: 12}
password_char: "•"
echo_password: true
`)
	b := NewProfileBackend(path)
	require.NoError(t, b.Init())
	assert.Equal(t, path, b.Path())

	v, ok := b.Int(lnftypes.IntScrollbarWidth)
	assert.True(t, ok)
	assert.Equal(t, int32(17), v)

	v, ok = b.Int(lnftypes.IntCaretWidth)
	assert.True(t, ok)
	assert.Equal(t, int32(2), v)

	_, ok = b.Int(lnftypes.IntTooltipDelay)
	assert.False(t, ok)

	f, ok := b.Float(lnftypes.FloatCaretAspectRatio)
	assert.True(t, ok)
	assert.InDelta(t, 0.05, f, 1e-6)

	c, ok := b.Color(lnftypes.ColorHighlight)
	assert.True(t, ok)
	assert.Equal(t, lnftypes.NewColor(0x10, 0x20, 0x30, 0x80), c)

	_, ok = b.Color(lnftypes.ColorMenu)
	assert.False(t, ok)

	font, ok := b.Font(lnftypes.FontMenu)
	assert.True(t, ok)
	assert.Equal(t, "Inter", font.Family)
	assert.Equal(t, lnftypes.FontWeightNormal, font.Style.Weight)

	_, ok = b.Font(lnftypes.FontCaption)
	assert.False(t, ok, "a font without a family is not supplied")

	pc, ok := b.PasswordChar()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x2022), pc)

	echo, ok := b.EchoPassword()
	assert.True(t, ok)
	assert.True(t, echo)
}

func TestProfileBackend_MissingScalars(t *testing.T) {
	b := NewProfileBackend(writeProfile(t, "name: sparse\nints:\n  ScrollbarWidth: 17\n"))
	require.NoError(t, b.Init())

	_, ok := b.PasswordChar()
	assert.False(t, ok)
	_, ok = b.EchoPassword()
	assert.False(t, ok)
}

func TestProfileBackend_RefreshKeepsPreviousOnError(t *testing.T) {
	path := writeProfile(t, "name: a\nints:\n  ScrollbarWidth: 17\n")
	b := NewProfileBackend(path)
	require.NoError(t, b.Init())

	require.NoError(t, os.WriteFile(path, []byte("ints: [unterminated"), 0o644))
	assert.Error(t, b.Refresh())

	v, ok := b.Int(lnftypes.IntScrollbarWidth)
	assert.True(t, ok)
	assert.Equal(t, int32(17), v)

	require.NoError(t, os.WriteFile(path, []byte("name: b\nints:\n  ScrollbarWidth: 12\n"), 0o644))
	require.NoError(t, b.Refresh())
	v, _ = b.Int(lnftypes.IntScrollbarWidth)
	assert.Equal(t, int32(12), v)
}

func TestProfileBackend_MissingFile(t *testing.T) {
	b := NewProfileBackend(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, b.Init())

	_, ok := b.Int(lnftypes.IntScrollbarWidth)
	assert.False(t, ok)
}

func TestPasswordCodeUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    uint16
		wantErr bool
	}{
		{input: "*", want: '*'},
		{input: "●", want: 0x25cf},
		{input: "ab", wantErr: true},
		{input: "😀", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := passwordCodeUnit(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToProfileFile_LoadsBack(t *testing.T) {
	table := lnftypes.NewTableBuilder().
		SetInt(lnftypes.IntScrollbarWidth, 14).
		SetFloat(lnftypes.FloatTextScaleFactor, 1.5).
		SetColor(lnftypes.ColorHighlight, lnftypes.NewColor(0x12, 0x34, 0x56, 0x78)).
		SetFont(lnftypes.FontMenu, lnftypes.Font{Family: "Noto Sans", Style: lnftypes.FontStyle{Size: 12, Weight: 500, Stretch: 1}}).
		SetPasswordChar(0x2022).
		SetEchoPassword(true).
		Build()

	data, err := yaml.Marshal(ToProfileFile(table, "snapshot"))
	require.NoError(t, err)

	b := NewProfileBackend(writeProfile(t, string(data)))
	require.NoError(t, b.Init())

	v, ok := b.Int(lnftypes.IntScrollbarWidth)
	assert.True(t, ok)
	assert.Equal(t, int32(14), v)
	f, ok := b.Float(lnftypes.FloatTextScaleFactor)
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), f)
	c, ok := b.Color(lnftypes.ColorHighlight)
	assert.True(t, ok)
	assert.Equal(t, lnftypes.NewColor(0x12, 0x34, 0x56, 0x78), c)
	font, ok := b.Font(lnftypes.FontMenu)
	assert.True(t, ok)
	assert.Equal(t, "Noto Sans", font.Family)
	assert.Equal(t, uint16(500), font.Style.Weight)
	pc, ok := b.PasswordChar()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x2022), pc)
	echo, ok := b.EchoPassword()
	assert.True(t, ok)
	assert.True(t, echo)
}

func TestProfileBackend_NonFiniteFloatsAreDropped(t *testing.T) {
	b := NewProfileBackend(writeProfile(t, `
name: odd
floats:
  CaretAspectRatio: .nan
  TextScaleFactor: .inf
  IMEUnderlineRelativeSize: 1.5
fonts:
  Menu:
    family: Inter
    style: {size: .inf}
`))
	require.NoError(t, b.Init())

	_, ok := b.Float(lnftypes.FloatCaretAspectRatio)
	assert.False(t, ok)
	_, ok = b.Float(lnftypes.FloatTextScaleFactor)
	assert.False(t, ok)
	v, ok := b.Float(lnftypes.FloatIMEUnderlineRelativeSize)
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), v)
	_, ok = b.Font(lnftypes.FontMenu)
	assert.False(t, ok)
}

package native

import (
	"math"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookandfeel/internal/testutils"
	"lookandfeel/pkg/lnftypes"
)

func TestLayeredBackend_FirstAnswerWins(t *testing.T) {
	terminal := NewTerminalBackend(&fakeProbe{
		fg:      termenv.RGBColor("#eeeeee"),
		bg:      termenv.RGBColor("#111111"),
		dark:    true,
		profile: termenv.TrueColor,
	})
	profile := NewProfileBackend("light")
	b := NewLayeredBackend(terminal, profile)

	require.NoError(t, b.Init())
	assert.Equal(t, "layered(terminal,profile)", b.Name())

	c, ok := b.Color(lnftypes.ColorWindow)
	assert.True(t, ok)
	assert.Equal(t, "#111111", c.Hex(), "terminal layer answers first")

	c, ok = b.Color(lnftypes.ColorButtonFace)
	assert.True(t, ok)
	assert.Equal(t, "#f0f0f4", c.Hex(), "profile layer fills the gaps")

	v, ok := b.Int(lnftypes.IntSystemUsesDarkTheme)
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)

	font, ok := b.Font(lnftypes.FontMenu)
	assert.True(t, ok)
	assert.Equal(t, "Cantarell", font.Family)

	pc, ok := b.PasswordChar()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x25cf), pc)

	require.NoError(t, b.Refresh())
}

func TestLayeredBackend_InitErrorsAreJoined(t *testing.T) {
	b := NewLayeredBackend(NewProfileBackend("/does/not/exist.yaml"), NewProfileBackend("dark"))
	err := b.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile")

	_, ok := b.Color(lnftypes.ColorWindow)
	assert.True(t, ok, "healthy layers still answer")
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind     string
		wantName string
		wantErr  bool
	}{
		{kind: "", wantName: "profile"},
		{kind: "profile", wantName: "profile"},
		{kind: "Terminal", wantName: "terminal"},
		{kind: "layered", wantName: "layered(terminal,profile)"},
		{kind: "win32", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			b, err := New(tt.kind, "light")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, b.Name())
		})
	}
}

func TestLayeredBackend_InvalidAnswersFallThrough(t *testing.T) {
	top := testutils.NewMockBackend().
		SetFont(lnftypes.FontMenu, lnftypes.Font{Style: lnftypes.FontStyle{Size: 14}}).
		SetFloat(lnftypes.FloatTextScaleFactor, float32(math.NaN())).
		SetPasswordChar(0)
	bottom := testutils.NewMockBackend().
		SetFont(lnftypes.FontMenu, lnftypes.Font{Family: "Inter", Style: lnftypes.FontStyle{Size: 12}}).
		SetFloat(lnftypes.FloatTextScaleFactor, 1.25).
		SetPasswordChar(0x2022)
	b := NewLayeredBackend(top, bottom)

	font, ok := b.Font(lnftypes.FontMenu)
	assert.True(t, ok)
	assert.Equal(t, "Inter", font.Family)

	f, ok := b.Float(lnftypes.FloatTextScaleFactor)
	assert.True(t, ok)
	assert.Equal(t, float32(1.25), f)

	pc, ok := b.PasswordChar()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x2022), pc)

	_, ok = NewLayeredBackend(top).Font(lnftypes.FontMenu)
	assert.False(t, ok, "no valid answer in any layer")
}

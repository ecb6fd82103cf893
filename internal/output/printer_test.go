package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_PlainOutput(t *testing.T) {
	buf := NewCaptureBuffer()
	p := NewPrinter(WithWriter(buf))

	p.Print("a")
	p.Println("b")
	p.Printf("n=%d\n", 3)

	assert.Equal(t, "ab\nn=3\n", buf.String())
	assert.False(t, p.IsStyled())
}

func TestPrinter_StatusPrefixesWhenPlain(t *testing.T) {
	buf := NewCaptureBuffer()
	p := NewPrinter(WithWriter(buf), PlainText())

	p.Info("information")
	p.Success("done")
	p.Warning("careful")
	p.Error("failed")

	assert.Equal(t, []string{"ℹ information", "✓ done", "⚠ careful", "✗ failed"}, buf.Lines())
}

func TestPrinter_MissingStyleFallsBackToPrefix(t *testing.T) {
	buf := NewCaptureBuffer()
	p := NewPrinter(WithWriter(buf), WithStyles(Styles{SemanticInfo: lipgloss.NewStyle()}))

	p.Warning("careful")
	assert.Equal(t, "⚠ careful\n", buf.String())
}

func TestPrinter_SilentAndPrefix(t *testing.T) {
	buf := NewCaptureBuffer()
	NewPrinter(WithWriter(buf), Silent()).Println("hidden")
	assert.Empty(t, buf.String())

	NewPrinter(WithWriter(buf), WithPrefix("[child] ")).Println("ready")
	assert.Equal(t, "[child] ready\n", buf.String())
}

func TestPrinter_JSON(t *testing.T) {
	buf := NewCaptureBuffer()
	p := NewPrinter(WithWriter(buf))

	require.NoError(t, p.JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())

	assert.Error(t, p.JSON(func() {}))
}

func TestCaptureGlobal_RestoresPrinter(t *testing.T) {
	before := GetGlobalPrinter()

	out := CaptureGlobal(func() {
		Println("x")
		Error("y")
	})

	assert.Equal(t, "x\n✗ y\n", out)
	assert.Same(t, before, GetGlobalPrinter())
}

func TestCaptureBuffer_Lines(t *testing.T) {
	buf := NewCaptureBuffer()
	assert.Equal(t, []string{}, buf.Lines())

	_, _ = buf.Write([]byte("one\ntwo\n"))
	assert.Equal(t, []string{"one", "two"}, buf.Lines())

	buf.Reset()
	assert.Empty(t, buf.String())
}

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookandfeel/pkg/lnftypes"
)

func TestWithOverrides_NothingToOverride(t *testing.T) {
	base := NewProfileBackend("light")
	assert.Same(t, base, WithOverrides(base, nil, nil))
}

func TestWithOverrides_PasswordScalars(t *testing.T) {
	mask := uint16('#')
	echo := true
	b := WithOverrides(NewProfileBackend("light"), &mask, &echo)
	require.NoError(t, b.Init())

	c, ok := b.PasswordChar()
	assert.True(t, ok)
	assert.Equal(t, uint16('#'), c)

	e, ok := b.EchoPassword()
	assert.True(t, ok)
	assert.True(t, e)

	_, ok = b.Color(lnftypes.ColorWindow)
	assert.True(t, ok, "metrics still come from the base backend")
}

func TestOverrideBackend_PartialOverride(t *testing.T) {
	echo := false
	o := NewOverrideBackend(nil, &echo)
	assert.False(t, o.Empty())

	_, ok := o.PasswordChar()
	assert.False(t, ok)
	e, ok := o.EchoPassword()
	assert.True(t, ok)
	assert.False(t, e)

	_, ok = o.Int(lnftypes.IntScrollbarWidth)
	assert.False(t, ok)
}

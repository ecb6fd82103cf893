package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookandfeel/internal/lookandfeel"
	"lookandfeel/internal/testutils"
	"lookandfeel/pkg/lnftypes"
)

func tableWithWidth(w int32) *lnftypes.FullLookAndFeel {
	return lnftypes.NewTableBuilder().SetInt(lnftypes.IntScrollbarWidth, w).Build()
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "parent", RoleParent.String())
	assert.Equal(t, "child", RoleChild.String())
	assert.Equal(t, "unset", RoleUnset.String())
}

func TestNewParent(t *testing.T) {
	backend := testutils.NewMockBackend().SetInt(lnftypes.IntScrollbarWidth, 17)
	source := lookandfeel.NewNativeLookAndFeel(backend)
	ctx := NewParent(source, lookandfeel.WithGenerator(testutils.NewGenerationSequence().Next))

	assert.Equal(t, RoleParent, ctx.Role())
	require.NotNil(t, ctx.Extractor())

	lf, err := ctx.LookAndFeel()
	require.NoError(t, err)
	assert.Same(t, source, lf)

	first, err := ctx.ExtractCurrent()
	require.NoError(t, err)
	second, err := ctx.ExtractCurrent()
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, ctx.Invalidate())
	third, err := ctx.ExtractCurrent()
	require.NoError(t, err)
	assert.NotSame(t, first, third)

	assert.ErrorIs(t, ctx.InstallRemote(tableWithWidth(1)), ErrNotChild)
	assert.ErrorIs(t, ctx.SetData(tableWithWidth(1)), ErrNotReceiver)
}

func TestNewChild(t *testing.T) {
	ctx, err := NewChild(tableWithWidth(17))
	require.NoError(t, err)

	assert.Equal(t, RoleChild, ctx.Role())
	assert.Nil(t, ctx.Extractor())

	_, err = ctx.ExtractCurrent()
	assert.ErrorIs(t, err, ErrNotParent)
	assert.ErrorIs(t, ctx.Invalidate(), ErrNotParent)

	lf, err := ctx.LookAndFeel()
	require.NoError(t, err)
	v, ok := lf.GetInt(lnftypes.IntScrollbarWidth)
	assert.True(t, ok)
	assert.Equal(t, int32(17), v)

	_, err = NewChild(nil)
	assert.ErrorIs(t, err, lnftypes.ErrNilTable)
}

func TestInstallRemote_ReplacesWholesale(t *testing.T) {
	ctx := New()
	require.NoError(t, ctx.InstallRemote(tableWithWidth(17)))
	assert.Equal(t, RoleChild, ctx.Role())

	lf, err := ctx.LookAndFeel()
	require.NoError(t, err)

	require.NoError(t, ctx.InstallRemote(lnftypes.NewTableBuilder().SetInt(lnftypes.IntCaretBlinkTime, 500).Build()))

	again, err := ctx.LookAndFeel()
	require.NoError(t, err)
	assert.Same(t, lf, again, "the remote provider is reused")

	_, ok := again.GetInt(lnftypes.IntScrollbarWidth)
	assert.False(t, ok, "old entries do not survive a replacement")
	v, ok := again.GetInt(lnftypes.IntCaretBlinkTime)
	assert.True(t, ok)
	assert.Equal(t, int32(500), v)
}

func TestSetData_ForwardsToRemote(t *testing.T) {
	ctx := New()
	assert.ErrorIs(t, ctx.SetData(tableWithWidth(1)), ErrNoProvider)

	require.NoError(t, ctx.InstallRemote(tableWithWidth(17)))
	require.NoError(t, ctx.SetData(tableWithWidth(12)))

	lf, err := ctx.LookAndFeel()
	require.NoError(t, err)
	v, _ := lf.GetInt(lnftypes.IntScrollbarWidth)
	assert.Equal(t, int32(12), v)

	assert.ErrorIs(t, ctx.SetData(nil), lnftypes.ErrNilTable)
}

func TestClose(t *testing.T) {
	ctx, err := NewChild(tableWithWidth(17))
	require.NoError(t, err)

	ctx.Close()
	assert.Equal(t, RoleUnset, ctx.Role())
	_, err = ctx.LookAndFeel()
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestGlobalContext(t *testing.T) {
	ResetGlobalContext()
	t.Cleanup(ResetGlobalContext)

	first := GetGlobalContext()
	require.NotNil(t, first)
	assert.Same(t, first, GetGlobalContext())
	assert.Equal(t, RoleUnset, first.Role())

	child, err := NewChild(tableWithWidth(17))
	require.NoError(t, err)
	SetGlobalContext(child)
	assert.Same(t, child, GetGlobalContext())

	ResetGlobalContext()
	assert.Equal(t, RoleUnset, child.Role(), "reset closes the previous context")
	assert.NotSame(t, child, GetGlobalContext())
}

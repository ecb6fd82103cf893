package services

import (
	lnfcontext "lookandfeel/internal/context"
	"lookandfeel/internal/lookandfeel"
	"lookandfeel/internal/testutils"
	"lookandfeel/pkg/lnftypes"
)

func sampleTable() *lnftypes.FullLookAndFeel {
	return lnftypes.NewTableBuilder().
		SetInt(lnftypes.IntScrollbarWidth, 17).
		SetInt(lnftypes.IntSystemUsesDarkTheme, 1).
		SetFloat(lnftypes.FloatTextScaleFactor, 1.25).
		SetColor(lnftypes.ColorWindow, lnftypes.NewColor(0x20, 0x20, 0x20, 0xff)).
		SetColor(lnftypes.ColorAccentColor, lnftypes.NewColor(0x35, 0x84, 0xe4, 0xff)).
		SetFont(lnftypes.FontCaption, lnftypes.Font{Family: "Inter", Style: lnftypes.FontStyle{Size: 13, Weight: 600}}).
		SetPasswordChar(0x2022).
		SetGeneration("gen-1").
		Build()
}

func childContext(table *lnftypes.FullLookAndFeel) *lnfcontext.ProcessContext {
	ctx, err := lnfcontext.NewChild(table)
	if err != nil {
		panic(err)
	}
	return ctx
}

func parentContext(backend *testutils.MockBackend) *lnfcontext.ProcessContext {
	source := lookandfeel.NewNativeLookAndFeel(backend)
	return lnfcontext.NewParent(source, lookandfeel.WithGenerator(testutils.NewGenerationSequence().Next))
}

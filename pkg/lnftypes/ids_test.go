package lnftypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSpaces_NamesMatchEnumerations(t *testing.T) {
	assert.Equal(t, int(intIDCount), len(intIDNames))
	assert.Equal(t, int(floatIDCount), len(floatIDNames))
	assert.Equal(t, int(colorIDCount), len(colorIDNames))
	assert.Equal(t, int(fontIDCount), len(fontIDNames))
}

func TestIDSpaces_ParseRoundTrip(t *testing.T) {
	for _, id := range AllIntIDs() {
		parsed, ok := ParseIntID(id.String())
		assert.True(t, ok, id.String())
		assert.Equal(t, id, parsed)
	}
	for _, id := range AllFloatIDs() {
		parsed, ok := ParseFloatID(id.String())
		assert.True(t, ok, id.String())
		assert.Equal(t, id, parsed)
	}
	for _, id := range AllColorIDs() {
		parsed, ok := ParseColorID(id.String())
		assert.True(t, ok, id.String())
		assert.Equal(t, id, parsed)
	}
	for _, id := range AllFontIDs() {
		parsed, ok := ParseFontID(id.String())
		assert.True(t, ok, id.String())
		assert.Equal(t, id, parsed)
	}
}

func TestParseIntID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   IntID
		wantOK bool
	}{
		{name: "exact", input: "ScrollbarWidth", want: IntScrollbarWidth, wantOK: true},
		{name: "case insensitive", input: "caretblinktime", want: IntCaretBlinkTime, wantOK: true},
		{name: "surrounding space", input: "  SubmenuDelay ", want: IntSubmenuDelay, wantOK: true},
		{name: "unknown", input: "NoSuchMetric", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIDs_OutOfRange(t *testing.T) {
	assert.False(t, intIDCount.Valid())
	assert.Equal(t, "IntID(9999)", IntID(9999).String())
	assert.Equal(t, "ColorID(500)", ColorID(500).String())
	assert.False(t, FontID(fontIDCount).Valid())
	assert.True(t, FloatCaretAspectRatio.Valid())
}

package lnftypes

import (
	"maps"
	"math"
	"slices"
)

// DefaultPasswordChar masks password input when the producer supplied no native glyph.
const DefaultPasswordChar uint16 = '*'

// FullLookAndFeel is an immutable snapshot of every metric a producer could supply.
//
// Tables are sparse: an identifier missing from a table was not supplied by the producer and
// is reported as absent, never as a zero value. The password character and echo flag are
// always present.
type FullLookAndFeel struct {
	ints         map[IntID]int32
	floats       map[FloatID]float32
	colors       map[ColorID]Color
	fonts        map[FontID]Font
	passwordChar uint16
	echoPassword bool
	generation   string
}

// NewFullLookAndFeel builds a table from copies of the given maps. Identifiers outside their
// enumeration, non-finite floats and invalid fonts are dropped. A zero passwordChar selects
// DefaultPasswordChar.
func NewFullLookAndFeel(
	ints map[IntID]int32,
	floats map[FloatID]float32,
	colors map[ColorID]Color,
	fonts map[FontID]Font,
	passwordChar uint16,
	echoPassword bool,
) *FullLookAndFeel {
	b := NewTableBuilder()
	for id, v := range ints {
		b.SetInt(id, v)
	}
	for id, v := range floats {
		b.SetFloat(id, v)
	}
	for id, v := range colors {
		b.SetColor(id, v)
	}
	for id, v := range fonts {
		b.SetFont(id, v)
	}
	if passwordChar != 0 {
		b.SetPasswordChar(passwordChar)
	}
	b.SetEchoPassword(echoPassword)
	return b.Build()
}

// Int returns the stored value for id.
func (t *FullLookAndFeel) Int(id IntID) (int32, bool) {
	v, ok := t.ints[id]
	return v, ok
}

// Float returns the stored value for id.
func (t *FullLookAndFeel) Float(id FloatID) (float32, bool) {
	v, ok := t.floats[id]
	return v, ok
}

// Color returns the stored value for id.
func (t *FullLookAndFeel) Color(id ColorID) (Color, bool) {
	v, ok := t.colors[id]
	return v, ok
}

// Font returns the stored value for id.
func (t *FullLookAndFeel) Font(id FontID) (Font, bool) {
	v, ok := t.fonts[id]
	return v, ok
}

// PasswordChar returns the UTF-16 code unit used to mask password input.
func (t *FullLookAndFeel) PasswordChar() uint16 { return t.passwordChar }

// EchoPassword reports whether typed password characters are briefly revealed.
func (t *FullLookAndFeel) EchoPassword() bool { return t.echoPassword }

// Generation returns the identifier the producer stamped on this table, if any.
func (t *FullLookAndFeel) Generation() string { return t.generation }

// IntIDs returns the identifiers present in the table, sorted.
func (t *FullLookAndFeel) IntIDs() []IntID { return slices.Sorted(maps.Keys(t.ints)) }

// FloatIDs returns the identifiers present in the table, sorted.
func (t *FullLookAndFeel) FloatIDs() []FloatID { return slices.Sorted(maps.Keys(t.floats)) }

// ColorIDs returns the identifiers present in the table, sorted.
func (t *FullLookAndFeel) ColorIDs() []ColorID { return slices.Sorted(maps.Keys(t.colors)) }

// FontIDs returns the identifiers present in the table, sorted.
func (t *FullLookAndFeel) FontIDs() []FontID { return slices.Sorted(maps.Keys(t.fonts)) }

// Len returns the number of sparse entries across all four maps.
func (t *FullLookAndFeel) Len() int {
	return len(t.ints) + len(t.floats) + len(t.colors) + len(t.fonts)
}

// Equal compares two tables by value. Floats compare by bit pattern. The generation stamp is
// ignored.
func (t *FullLookAndFeel) Equal(o *FullLookAndFeel) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	return t.passwordChar == o.passwordChar &&
		t.echoPassword == o.echoPassword &&
		maps.Equal(t.ints, o.ints) &&
		maps.EqualFunc(t.floats, o.floats, sameFloat) &&
		maps.Equal(t.colors, o.colors) &&
		maps.EqualFunc(t.fonts, o.fonts, Font.sameAs)
}

func sameFloat(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// TableBuilder accumulates values for a new table on the producer side.
type TableBuilder struct {
	t *FullLookAndFeel
}

// NewTableBuilder returns an empty builder with the default password character.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{t: emptyTable()}
}

func emptyTable() *FullLookAndFeel {
	return &FullLookAndFeel{
		ints:         make(map[IntID]int32),
		floats:       make(map[FloatID]float32),
		colors:       make(map[ColorID]Color),
		fonts:        make(map[FontID]Font),
		passwordChar: DefaultPasswordChar,
	}
}

// SetInt records an integer metric. Unknown identifiers are ignored.
func (b *TableBuilder) SetInt(id IntID, v int32) *TableBuilder {
	if id.Valid() {
		b.t.ints[id] = v
	}
	return b
}

// SetFloat records a float metric. Unknown identifiers and NaN or infinite values count as not
// supplied and are ignored.
func (b *TableBuilder) SetFloat(id FloatID, v float32) *TableBuilder {
	if id.Valid() && Finite(v) {
		b.t.floats[id] = v
	}
	return b
}

// SetColor records a color. Unknown identifiers are ignored.
func (b *TableBuilder) SetColor(id ColorID, v Color) *TableBuilder {
	if id.Valid() {
		b.t.colors[id] = v
	}
	return b
}

// SetFont records a font. Invalid fonts count as not supplied and are ignored.
func (b *TableBuilder) SetFont(id FontID, f Font) *TableBuilder {
	if id.Valid() && f.Valid() {
		b.t.fonts[id] = f
	}
	return b
}

// SetPasswordChar overrides the default password character.
func (b *TableBuilder) SetPasswordChar(c uint16) *TableBuilder {
	b.t.passwordChar = c
	return b
}

// SetEchoPassword sets the echo flag.
func (b *TableBuilder) SetEchoPassword(echo bool) *TableBuilder {
	b.t.echoPassword = echo
	return b
}

// SetGeneration stamps the table with a producer-chosen identifier.
func (b *TableBuilder) SetGeneration(generation string) *TableBuilder {
	b.t.generation = generation
	return b
}

// Build hands the accumulated table over to the caller. The builder starts empty again, so
// no later Set call can reach the returned table.
func (b *TableBuilder) Build() *FullLookAndFeel {
	t := b.t
	b.t = emptyTable()
	return t
}

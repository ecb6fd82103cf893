package lnftypes

import "math"

// Standard font weights.
const (
	FontWeightNormal uint16 = 400
	FontWeightBold   uint16 = 700
)

// FontStyle carries the style attributes of a system font.
type FontStyle struct {
	Size       float32 `yaml:"size" json:"size"`
	Weight     uint16  `yaml:"weight,omitempty" json:"weight,omitempty"`
	Italic     bool    `yaml:"italic,omitempty" json:"italic,omitempty"`
	Stretch    float32 `yaml:"stretch,omitempty" json:"stretch,omitempty"`
	SystemFont bool    `yaml:"system_font,omitempty" json:"system_font,omitempty"`
}

// Font is a family name plus its style.
type Font struct {
	Family string    `yaml:"family" json:"family"`
	Style  FontStyle `yaml:"style" json:"style"`
}

// Valid reports whether the font names a family and has a finite size and stretch. An
// invalid font is treated as not supplied everywhere in the system.
func (f Font) Valid() bool {
	return f.Family != "" && Finite(f.Style.Size) && Finite(f.Style.Stretch)
}

// Finite reports whether v is neither NaN nor infinite. Tables only hold finite floats.
func Finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func (f Font) sameAs(o Font) bool {
	return f.Family == o.Family &&
		math.Float32bits(f.Style.Size) == math.Float32bits(o.Style.Size) &&
		f.Style.Weight == o.Style.Weight &&
		f.Style.Italic == o.Style.Italic &&
		math.Float32bits(f.Style.Stretch) == math.Float32bits(o.Style.Stretch) &&
		f.Style.SystemFont == o.Style.SystemFont
}

// Normalized fills unset style fields with their CSS defaults.
func (f Font) Normalized() Font {
	if f.Style.Weight == 0 {
		f.Style.Weight = FontWeightNormal
	}
	if f.Style.Stretch == 0 {
		f.Style.Stretch = 1
	}
	return f
}

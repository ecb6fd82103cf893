// Package transport moves look-and-feel tables from a parent process to its children. Tables
// travel as JSON records keyed by identifier names, over plain HTTP for one-shot fetches and
// over a WebSocket for pushed updates.
package transport

import (
	"encoding/json"
	"fmt"
	"io"

	"lookandfeel/internal/logger"
	"lookandfeel/internal/version"
	"lookandfeel/pkg/lnftypes"
)

// Record is the wire form of a table.
type Record struct {
	Schema       string                   `json:"schema"`
	Generation   string                   `json:"generation,omitempty"`
	Ints         map[string]int32         `json:"ints,omitempty"`
	Floats       map[string]float32       `json:"floats,omitempty"`
	Colors       map[string]string        `json:"colors,omitempty"`
	Fonts        map[string]lnftypes.Font `json:"fonts,omitempty"`
	PasswordChar uint16                   `json:"password_char"`
	EchoPassword bool                     `json:"echo_password"`
}

// ToRecord converts table to its wire form.
func ToRecord(table *lnftypes.FullLookAndFeel) Record {
	rec := Record{
		Schema:       version.SchemaVersion,
		Generation:   table.Generation(),
		Ints:         make(map[string]int32),
		Floats:       make(map[string]float32),
		Colors:       make(map[string]string),
		Fonts:        make(map[string]lnftypes.Font),
		PasswordChar: table.PasswordChar(),
		EchoPassword: table.EchoPassword(),
	}

	for _, id := range table.IntIDs() {
		v, _ := table.Int(id)
		rec.Ints[id.String()] = v
	}
	for _, id := range table.FloatIDs() {
		v, _ := table.Float(id)
		rec.Floats[id.String()] = v
	}
	for _, id := range table.ColorIDs() {
		v, _ := table.Color(id)
		rec.Colors[id.String()] = v.Hex()
	}
	for _, id := range table.FontIDs() {
		v, _ := table.Font(id)
		rec.Fonts[id.String()] = v
	}

	return rec
}

// FromRecord builds a table from a wire record. Identifiers this build does not know are
// dropped, so a newer parent can talk to an older child within one schema major version.
func FromRecord(rec Record) (*lnftypes.FullLookAndFeel, error) {
	if err := version.CheckSchema(rec.Schema); err != nil {
		return nil, err
	}

	b := lnftypes.NewTableBuilder().SetGeneration(rec.Generation)

	for name, v := range rec.Ints {
		id, ok := lnftypes.ParseIntID(name)
		if !ok {
			logger.Debug("Dropping unknown int metric", "id", name)
			continue
		}
		b.SetInt(id, v)
	}
	for name, v := range rec.Floats {
		id, ok := lnftypes.ParseFloatID(name)
		if !ok {
			logger.Debug("Dropping unknown float metric", "id", name)
			continue
		}
		b.SetFloat(id, v)
	}
	for name, hex := range rec.Colors {
		id, ok := lnftypes.ParseColorID(name)
		if !ok {
			logger.Debug("Dropping unknown color", "id", name)
			continue
		}
		c, err := lnftypes.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		b.SetColor(id, c)
	}
	for name, f := range rec.Fonts {
		id, ok := lnftypes.ParseFontID(name)
		if !ok {
			logger.Debug("Dropping unknown font", "id", name)
			continue
		}
		b.SetFont(id, f)
	}

	if rec.PasswordChar != 0 {
		b.SetPasswordChar(rec.PasswordChar)
	}
	b.SetEchoPassword(rec.EchoPassword)

	return b.Build(), nil
}

// Marshal encodes table as JSON.
func Marshal(table *lnftypes.FullLookAndFeel) ([]byte, error) {
	return json.Marshal(ToRecord(table))
}

// Unmarshal decodes a JSON table.
func Unmarshal(data []byte) (*lnftypes.FullLookAndFeel, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}
	return FromRecord(rec)
}

// Encode writes table to w as indented JSON.
func Encode(w io.Writer, table *lnftypes.FullLookAndFeel) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToRecord(table))
}

// Decode reads one JSON table from r.
func Decode(r io.Reader) (*lnftypes.FullLookAndFeel, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}
	return FromRecord(rec)
}

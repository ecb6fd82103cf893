package native

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"lookandfeel/internal/data/embedded"
	"lookandfeel/internal/logger"
	"lookandfeel/pkg/lnftypes"
)

// ProfileFile is the YAML layout of a look-and-feel profile. Map keys are identifier names.
type ProfileFile struct {
	Name         string                   `yaml:"name"`
	Description  string                   `yaml:"description,omitempty"`
	Ints         map[string]interface{}   `yaml:"ints,omitempty"`
	Floats       map[string]interface{}   `yaml:"floats,omitempty"`
	Colors       map[string]string        `yaml:"colors,omitempty"`
	Fonts        map[string]lnftypes.Font `yaml:"fonts,omitempty"`
	PasswordChar string                   `yaml:"password_char,omitempty"`
	EchoPassword *bool                    `yaml:"echo_password,omitempty"`
}

// profile is a parsed ProfileFile keyed by identifiers.
type profile struct {
	name         string
	ints         map[lnftypes.IntID]int32
	floats       map[lnftypes.FloatID]float32
	colors       map[lnftypes.ColorID]lnftypes.Color
	fonts        map[lnftypes.FontID]lnftypes.Font
	passwordChar uint16
	hasPassword  bool
	echoPassword bool
	hasEcho      bool
}

// ProfileBackend serves metrics from a YAML profile, either embedded or on disk.
type ProfileBackend struct {
	ref string

	mu      sync.RWMutex
	current *profile
}

// NewProfileBackend creates a backend for ref, which is an embedded profile name or a file path.
func NewProfileBackend(ref string) *ProfileBackend {
	return &ProfileBackend{ref: ref}
}

// Name returns "profile".
func (p *ProfileBackend) Name() string {
	return "profile"
}

// Path returns the file backing the profile, or "" for embedded profiles.
func (p *ProfileBackend) Path() string {
	if embedded.HasProfile(p.ref) {
		return ""
	}
	return p.ref
}

// Init loads the profile.
func (p *ProfileBackend) Init() error {
	return p.Refresh()
}

// Refresh re-reads the profile. On error the previously loaded profile stays in place.
func (p *ProfileBackend) Refresh() error {
	data, err := p.read()
	if err != nil {
		return err
	}

	parsed, err := parseProfile(data)
	if err != nil {
		return fmt.Errorf("failed to parse profile %s: %w", p.ref, err)
	}

	p.mu.Lock()
	p.current = parsed
	p.mu.Unlock()

	logger.Debug("Profile loaded", "profile", parsed.name, "source", p.ref)
	return nil
}

func (p *ProfileBackend) read() ([]byte, error) {
	if embedded.HasProfile(p.ref) {
		return embedded.ProfileData(p.ref)
	}
	data, err := os.ReadFile(p.ref)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return data, nil
}

func (p *ProfileBackend) snapshot() *profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return &profile{}
	}
	return p.current
}

// Int implements Backend.
func (p *ProfileBackend) Int(id lnftypes.IntID) (int32, bool) {
	v, ok := p.snapshot().ints[id]
	return v, ok
}

// Float implements Backend.
func (p *ProfileBackend) Float(id lnftypes.FloatID) (float32, bool) {
	v, ok := p.snapshot().floats[id]
	return v, ok
}

// Color implements Backend.
func (p *ProfileBackend) Color(id lnftypes.ColorID) (lnftypes.Color, bool) {
	v, ok := p.snapshot().colors[id]
	return v, ok
}

// Font implements Backend.
func (p *ProfileBackend) Font(id lnftypes.FontID) (lnftypes.Font, bool) {
	v, ok := p.snapshot().fonts[id]
	return v, ok
}

// PasswordChar implements Backend.
func (p *ProfileBackend) PasswordChar() (uint16, bool) {
	cur := p.snapshot()
	return cur.passwordChar, cur.hasPassword
}

// EchoPassword implements Backend.
func (p *ProfileBackend) EchoPassword() (bool, bool) {
	cur := p.snapshot()
	return cur.echoPassword, cur.hasEcho
}

// parseProfile decodes YAML into a profile. Unknown identifier names and malformed values are
// skipped with a warning so one bad entry does not hide the rest of the profile.
func parseProfile(data []byte) (*profile, error) {
	var file ProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	out := &profile{
		name:   file.Name,
		ints:   make(map[lnftypes.IntID]int32, len(file.Ints)),
		floats: make(map[lnftypes.FloatID]float32, len(file.Floats)),
		colors: make(map[lnftypes.ColorID]lnftypes.Color, len(file.Colors)),
		fonts:  make(map[lnftypes.FontID]lnftypes.Font, len(file.Fonts)),
	}

	for name, raw := range file.Ints {
		id, ok := lnftypes.ParseIntID(name)
		if !ok {
			logger.Warn("Unknown int metric in profile", "profile", file.Name, "id", name)
			continue
		}
		v, err := cast.ToInt32E(raw)
		if err != nil {
			logger.Warn("Invalid int metric in profile", "profile", file.Name, "id", name, "error", err)
			continue
		}
		out.ints[id] = v
	}

	for name, raw := range file.Floats {
		id, ok := lnftypes.ParseFloatID(name)
		if !ok {
			logger.Warn("Unknown float metric in profile", "profile", file.Name, "id", name)
			continue
		}
		v, err := cast.ToFloat32E(raw)
		if err != nil {
			logger.Warn("Invalid float metric in profile", "profile", file.Name, "id", name, "error", err)
			continue
		}
		if !lnftypes.Finite(v) {
			logger.Warn("Non-finite float metric in profile", "profile", file.Name, "id", name, "value", v)
			continue
		}
		out.floats[id] = v
	}

	for name, raw := range file.Colors {
		id, ok := lnftypes.ParseColorID(name)
		if !ok {
			logger.Warn("Unknown color in profile", "profile", file.Name, "id", name)
			continue
		}
		c, err := lnftypes.ParseColor(raw)
		if err != nil {
			logger.Warn("Invalid color in profile", "profile", file.Name, "id", name, "error", err)
			continue
		}
		out.colors[id] = c
	}

	for name, font := range file.Fonts {
		id, ok := lnftypes.ParseFontID(name)
		if !ok {
			logger.Warn("Unknown font in profile", "profile", file.Name, "id", name)
			continue
		}
		if !font.Valid() {
			logger.Warn("Invalid font in profile", "profile", file.Name, "id", name)
			continue
		}
		out.fonts[id] = font.Normalized()
	}

	if file.PasswordChar != "" {
		c, err := passwordCodeUnit(file.PasswordChar)
		if err != nil {
			logger.Warn("Invalid password character in profile", "profile", file.Name, "error", err)
		} else {
			out.passwordChar = c
			out.hasPassword = true
		}
	}

	if file.EchoPassword != nil {
		out.echoPassword = *file.EchoPassword
		out.hasEcho = true
	}

	return out, nil
}

// passwordCodeUnit converts a one-character string to a single UTF-16 code unit.
func passwordCodeUnit(s string) (uint16, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("password character %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || r > 0xffff || (r >= 0xd800 && r <= 0xdfff) {
		return 0, fmt.Errorf("password character %q does not fit in one UTF-16 code unit", s)
	}
	return uint16(r), nil
}

// ToProfileFile converts table to the profile layout, so an extracted snapshot can be loaded
// back as a profile.
func ToProfileFile(table *lnftypes.FullLookAndFeel, name string) ProfileFile {
	file := ProfileFile{
		Name:   name,
		Ints:   make(map[string]interface{}),
		Floats: make(map[string]interface{}),
		Colors: make(map[string]string),
		Fonts:  make(map[string]lnftypes.Font),
	}

	for _, id := range table.IntIDs() {
		v, _ := table.Int(id)
		file.Ints[id.String()] = v
	}
	for _, id := range table.FloatIDs() {
		v, _ := table.Float(id)
		file.Floats[id.String()] = v
	}
	for _, id := range table.ColorIDs() {
		v, _ := table.Color(id)
		file.Colors[id.String()] = v.Hex()
	}
	for _, id := range table.FontIDs() {
		v, _ := table.Font(id)
		file.Fonts[id.String()] = v
	}

	file.PasswordChar = string(utf16.Decode([]uint16{table.PasswordChar()}))
	echo := table.EchoPassword()
	file.EchoPassword = &echo
	return file
}

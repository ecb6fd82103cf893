package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	lnfcontext "lookandfeel/internal/context"
	"lookandfeel/internal/lookandfeel"
	"lookandfeel/pkg/lnftypes"
)

// Query kinds accepted by LookAndFeelService.Query.
const (
	KindInt          = "int"
	KindFloat        = "float"
	KindColor        = "color"
	KindFont         = "font"
	KindPasswordChar = "password_char"
	KindEchoPassword = "echo_password"
)

// Errors returned by LookAndFeelService.
var (
	ErrUnknownKind = errors.New("unknown metric kind")
	ErrUnknownID   = errors.New("unknown metric identifier")
)

// Value is one answered query.
type Value struct {
	Kind string      `json:"kind"`
	ID   string      `json:"id,omitempty"`
	Raw  interface{} `json:"value"`
	Text string      `json:"text"`
}

// LookAndFeelService answers queries by name against the process's active look and feel.
type LookAndFeelService struct {
	initialized bool
	ctx         *lnfcontext.ProcessContext
}

// NewLookAndFeelService creates a service bound to the global process context.
func NewLookAndFeelService() *LookAndFeelService {
	return &LookAndFeelService{}
}

// NewLookAndFeelServiceFor creates a service bound to ctx.
func NewLookAndFeelServiceFor(ctx *lnfcontext.ProcessContext) *LookAndFeelService {
	return &LookAndFeelService{ctx: ctx}
}

// Name returns the service name "lookandfeel" for registration.
func (s *LookAndFeelService) Name() string {
	return "lookandfeel"
}

// Initialize marks the service ready.
func (s *LookAndFeelService) Initialize() error {
	s.initialized = true
	return nil
}

func (s *LookAndFeelService) processContext() *lnfcontext.ProcessContext {
	if s.ctx != nil {
		return s.ctx
	}
	return lnfcontext.GetGlobalContext()
}

func (s *LookAndFeelService) provider() (lnftypes.LookAndFeel, error) {
	if !s.initialized {
		return nil, fmt.Errorf("lookandfeel service not initialized")
	}
	return s.processContext().LookAndFeel()
}

// Kinds returns the accepted query kinds.
func (s *LookAndFeelService) Kinds() []string {
	return []string{KindInt, KindFloat, KindColor, KindFont, KindPasswordChar, KindEchoPassword}
}

// IDNames returns the identifier names of kind, or nil for the scalar kinds.
func (s *LookAndFeelService) IDNames(kind string) []string {
	switch strings.ToLower(kind) {
	case KindInt:
		return names(lnftypes.AllIntIDs())
	case KindFloat:
		return names(lnftypes.AllFloatIDs())
	case KindColor:
		return names(lnftypes.AllColorIDs())
	case KindFont:
		return names(lnftypes.AllFontIDs())
	default:
		return nil
	}
}

func names[T fmt.Stringer](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Query looks up one metric. Scalar kinds ignore id. Absent metrics return an error wrapping
// lnftypes.ErrNotFound.
func (s *LookAndFeelService) Query(kind, id string) (Value, error) {
	lf, err := s.provider()
	if err != nil {
		return Value{}, err
	}

	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case KindInt:
		parsed, ok := lnftypes.ParseIntID(id)
		if !ok {
			return Value{}, fmt.Errorf("%w: int %q", ErrUnknownID, id)
		}
		v, err := lookandfeel.Int(lf, parsed)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, ID: parsed.String(), Raw: v, Text: cast.ToString(v)}, nil

	case KindFloat:
		parsed, ok := lnftypes.ParseFloatID(id)
		if !ok {
			return Value{}, fmt.Errorf("%w: float %q", ErrUnknownID, id)
		}
		v, err := lookandfeel.Float(lf, parsed)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, ID: parsed.String(), Raw: v, Text: cast.ToString(v)}, nil

	case KindColor:
		parsed, ok := lnftypes.ParseColorID(id)
		if !ok {
			return Value{}, fmt.Errorf("%w: color %q", ErrUnknownID, id)
		}
		v, err := lookandfeel.Color(lf, parsed)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, ID: parsed.String(), Raw: v.Hex(), Text: v.Hex()}, nil

	case KindFont:
		parsed, ok := lnftypes.ParseFontID(id)
		if !ok {
			return Value{}, fmt.Errorf("%w: font %q", ErrUnknownID, id)
		}
		v, err := lookandfeel.Font(lf, parsed)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, ID: parsed.String(), Raw: v, Text: FormatFont(v)}, nil

	case KindPasswordChar:
		c := lf.GetPasswordChar()
		return Value{Kind: kind, Raw: c, Text: FormatPasswordChar(c)}, nil

	case KindEchoPassword:
		echo := lf.GetEchoPassword()
		return Value{Kind: kind, Raw: echo, Text: cast.ToString(echo)}, nil

	default:
		return Value{}, fmt.Errorf("%w %q (expected %s)", ErrUnknownKind, kind, strings.Join(s.Kinds(), ", "))
	}
}

// Snapshot returns the full table behind the active look and feel. In a parent this is the
// Extractor's cached table.
func (s *LookAndFeelService) Snapshot() (*lnftypes.FullLookAndFeel, error) {
	if !s.initialized {
		return nil, fmt.Errorf("lookandfeel service not initialized")
	}

	ctx := s.processContext()
	if ctx.Role() == lnfcontext.RoleParent {
		return ctx.ExtractCurrent()
	}

	lf, err := ctx.LookAndFeel()
	if err != nil {
		return nil, err
	}
	if holder, ok := lf.(interface {
		Table() *lnftypes.FullLookAndFeel
	}); ok {
		return holder.Table(), nil
	}
	return lookandfeel.Collect(lf, ""), nil
}

// FormatFont renders a font as e.g. "Inter 13px weight=600 italic".
func FormatFont(f lnftypes.Font) string {
	var b strings.Builder
	b.WriteString(f.Family)
	b.WriteString(" ")
	b.WriteString(cast.ToString(f.Style.Size))
	b.WriteString("px")
	if f.Style.Weight != 0 {
		fmt.Fprintf(&b, " weight=%d", f.Style.Weight)
	}
	if f.Style.Stretch != 0 && f.Style.Stretch != 1 {
		fmt.Fprintf(&b, " stretch=%s", cast.ToString(f.Style.Stretch))
	}
	if f.Style.Italic {
		b.WriteString(" italic")
	}
	if f.Style.SystemFont {
		b.WriteString(" system")
	}
	return b.String()
}

// FormatPasswordChar renders a mask code unit as the character and its code point.
func FormatPasswordChar(c uint16) string {
	return fmt.Sprintf("%c (U+%04X)", rune(c), c)
}

// GetGlobalLookAndFeelService returns the registered lookandfeel service.
func GetGlobalLookAndFeelService() (*LookAndFeelService, error) {
	return globalService[*LookAndFeelService]("lookandfeel")
}

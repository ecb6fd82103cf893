package lookandfeel

import (
	"lookandfeel/pkg/lnftypes"
)

// Collect queries every identifier of lf and assembles a table stamped with generation.
func Collect(lf lnftypes.LookAndFeel, generation string) *lnftypes.FullLookAndFeel {
	b := lnftypes.NewTableBuilder().SetGeneration(generation)

	for _, id := range lnftypes.AllIntIDs() {
		if v, ok := lf.GetInt(id); ok {
			b.SetInt(id, v)
		}
	}
	for _, id := range lnftypes.AllFloatIDs() {
		if v, ok := lf.GetFloat(id); ok {
			b.SetFloat(id, v)
		}
	}
	for _, id := range lnftypes.AllColorIDs() {
		if v, ok := lf.GetColor(id); ok {
			b.SetColor(id, v)
		}
	}
	for _, id := range lnftypes.AllFontIDs() {
		if v, ok := lf.GetFont(id); ok {
			b.SetFont(id, v)
		}
	}

	if c := lf.GetPasswordChar(); c != 0 {
		b.SetPasswordChar(c)
	}
	b.SetEchoPassword(lf.GetEchoPassword())
	return b.Build()
}

// Int returns the value for id or a *lnftypes.NotFoundError.
func Int(lf lnftypes.LookAndFeel, id lnftypes.IntID) (int32, error) {
	if v, ok := lf.GetInt(id); ok {
		return v, nil
	}
	return 0, &lnftypes.NotFoundError{Kind: "int", ID: id.String()}
}

// IntOr returns the value for id, or fallback when absent.
func IntOr(lf lnftypes.LookAndFeel, id lnftypes.IntID, fallback int32) int32 {
	if v, ok := lf.GetInt(id); ok {
		return v
	}
	return fallback
}

// Float returns the value for id or a *lnftypes.NotFoundError.
func Float(lf lnftypes.LookAndFeel, id lnftypes.FloatID) (float32, error) {
	if v, ok := lf.GetFloat(id); ok {
		return v, nil
	}
	return 0, &lnftypes.NotFoundError{Kind: "float", ID: id.String()}
}

// FloatOr returns the value for id, or fallback when absent.
func FloatOr(lf lnftypes.LookAndFeel, id lnftypes.FloatID, fallback float32) float32 {
	if v, ok := lf.GetFloat(id); ok {
		return v
	}
	return fallback
}

// Color returns the value for id or a *lnftypes.NotFoundError.
func Color(lf lnftypes.LookAndFeel, id lnftypes.ColorID) (lnftypes.Color, error) {
	if v, ok := lf.GetColor(id); ok {
		return v, nil
	}
	return 0, &lnftypes.NotFoundError{Kind: "color", ID: id.String()}
}

// ColorOr returns the value for id, or fallback when absent.
func ColorOr(lf lnftypes.LookAndFeel, id lnftypes.ColorID, fallback lnftypes.Color) lnftypes.Color {
	if v, ok := lf.GetColor(id); ok {
		return v
	}
	return fallback
}

// Font returns the value for id or a *lnftypes.NotFoundError.
func Font(lf lnftypes.LookAndFeel, id lnftypes.FontID) (lnftypes.Font, error) {
	if v, ok := lf.GetFont(id); ok {
		return v, nil
	}
	return lnftypes.Font{}, &lnftypes.NotFoundError{Kind: "font", ID: id.String()}
}

// FontOr returns the value for id, or fallback when absent.
func FontOr(lf lnftypes.LookAndFeel, id lnftypes.FontID, fallback lnftypes.Font) lnftypes.Font {
	if v, ok := lf.GetFont(id); ok {
		return v
	}
	return fallback
}

// PasswordRune returns the password character as a rune.
func PasswordRune(lf lnftypes.LookAndFeel) rune {
	return rune(lf.GetPasswordChar())
}

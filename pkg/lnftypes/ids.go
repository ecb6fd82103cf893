// Package lnftypes defines the identifier spaces, value types and core interfaces shared by
// every look-and-feel producer and consumer. Parent and child processes must agree on these
// enumerations, so the names returned by String are the ones carried on the wire.
package lnftypes

import (
	"fmt"
	"strings"
)

// IntID identifies an integer-valued metric such as a delay, a size or a boolean flag.
type IntID uint16

// Integer metrics.
const (
	IntCaretBlinkTime IntID = iota
	IntCaretBlinkCount
	IntCaretWidth
	IntSelectTextfieldsOnKeyFocus
	IntSubmenuDelay
	IntMenusCanOverlapOSBar
	IntUseOverlayScrollbars
	IntAllowOverlayScrollbarsOverlap
	IntSkipNavigatingDisabledMenuItem
	IntDragThresholdX
	IntDragThresholdY
	IntUseAccessibilityTheme
	IntScrollArrowStyle
	IntScrollButtonLeftMouseButtonAction
	IntScrollButtonMiddleMouseButtonAction
	IntScrollButtonRightMouseButtonAction
	IntTreeOpenDelay
	IntTreeCloseDelay
	IntTreeLazyScrollDelay
	IntTreeScrollDelay
	IntTreeScrollLinesMax
	IntAlertNotificationOrigin
	IntScrollToClick
	IntIMERawInputUnderlineStyle
	IntSpellCheckerUnderlineStyle
	IntTouchDeviceSupportPresent
	IntTooltipDelay
	IntScrollbarWidth
	IntScrollbarFadeBeginDelay
	IntScrollbarFadeDuration
	IntContextMenuOffsetVertical
	IntContextMenuOffsetHorizontal
	IntPrefersReducedMotion
	IntSystemUsesDarkTheme

	intIDCount
)

// FloatID identifies a floating point metric.
type FloatID uint16

// Float metrics.
const (
	FloatIMEUnderlineRelativeSize FloatID = iota
	FloatSpellCheckerUnderlineRelativeSize
	FloatCaretAspectRatio
	FloatTextScaleFactor
	FloatCursorScale

	floatIDCount
)

// ColorID identifies a system color.
type ColorID uint16

// System colors.
const (
	ColorActiveBorder ColorID = iota
	ColorActiveCaption
	ColorAppWorkspace
	ColorBackground
	ColorButtonFace
	ColorButtonHighlight
	ColorButtonShadow
	ColorButtonText
	ColorButtonBorder
	ColorCaptionText
	ColorField
	ColorFieldText
	ColorGrayText
	ColorHighlight
	ColorHighlightText
	ColorInactiveBorder
	ColorInactiveCaption
	ColorInactiveCaptionText
	ColorInfoBackground
	ColorInfoText
	ColorMenu
	ColorMenuText
	ColorScrollbar
	ColorThreeDDarkShadow
	ColorThreeDFace
	ColorThreeDHighlight
	ColorThreeDLightShadow
	ColorThreeDShadow
	ColorWindow
	ColorWindowFrame
	ColorWindowText
	ColorAccentColor
	ColorAccentColorText
	ColorCanvas
	ColorCanvasText
	ColorLinkText
	ColorVisitedText
	ColorActiveText
	ColorSelectedItem
	ColorSelectedItemText
	ColorMark
	ColorMarkText

	colorIDCount
)

// FontID identifies a system font.
type FontID uint16

// System fonts.
const (
	FontCaption FontID = iota
	FontIcon
	FontMenu
	FontMessageBox
	FontSmallCaption
	FontStatusBar
	FontMozButton
	FontMozField
	FontMozList
	FontMozPullDownMenu

	fontIDCount
)

var intIDNames = []string{
	"CaretBlinkTime",
	"CaretBlinkCount",
	"CaretWidth",
	"SelectTextfieldsOnKeyFocus",
	"SubmenuDelay",
	"MenusCanOverlapOSBar",
	"UseOverlayScrollbars",
	"AllowOverlayScrollbarsOverlap",
	"SkipNavigatingDisabledMenuItem",
	"DragThresholdX",
	"DragThresholdY",
	"UseAccessibilityTheme",
	"ScrollArrowStyle",
	"ScrollButtonLeftMouseButtonAction",
	"ScrollButtonMiddleMouseButtonAction",
	"ScrollButtonRightMouseButtonAction",
	"TreeOpenDelay",
	"TreeCloseDelay",
	"TreeLazyScrollDelay",
	"TreeScrollDelay",
	"TreeScrollLinesMax",
	"AlertNotificationOrigin",
	"ScrollToClick",
	"IMERawInputUnderlineStyle",
	"SpellCheckerUnderlineStyle",
	"TouchDeviceSupportPresent",
	"TooltipDelay",
	"ScrollbarWidth",
	"ScrollbarFadeBeginDelay",
	"ScrollbarFadeDuration",
	"ContextMenuOffsetVertical",
	"ContextMenuOffsetHorizontal",
	"PrefersReducedMotion",
	"SystemUsesDarkTheme",
}

var floatIDNames = []string{
	"IMEUnderlineRelativeSize",
	"SpellCheckerUnderlineRelativeSize",
	"CaretAspectRatio",
	"TextScaleFactor",
	"CursorScale",
}

var colorIDNames = []string{
	"ActiveBorder",
	"ActiveCaption",
	"AppWorkspace",
	"Background",
	"ButtonFace",
	"ButtonHighlight",
	"ButtonShadow",
	"ButtonText",
	"ButtonBorder",
	"CaptionText",
	"Field",
	"FieldText",
	"GrayText",
	"Highlight",
	"HighlightText",
	"InactiveBorder",
	"InactiveCaption",
	"InactiveCaptionText",
	"InfoBackground",
	"InfoText",
	"Menu",
	"MenuText",
	"Scrollbar",
	"ThreeDDarkShadow",
	"ThreeDFace",
	"ThreeDHighlight",
	"ThreeDLightShadow",
	"ThreeDShadow",
	"Window",
	"WindowFrame",
	"WindowText",
	"AccentColor",
	"AccentColorText",
	"Canvas",
	"CanvasText",
	"LinkText",
	"VisitedText",
	"ActiveText",
	"SelectedItem",
	"SelectedItemText",
	"Mark",
	"MarkText",
}

var fontIDNames = []string{
	"Caption",
	"Icon",
	"Menu",
	"MessageBox",
	"SmallCaption",
	"StatusBar",
	"MozButton",
	"MozField",
	"MozList",
	"MozPullDownMenu",
}

// idSpace maps one closed enumeration to and from its wire names.
type idSpace[T ~uint16] struct {
	names []string
	index map[string]T
}

func newIDSpace[T ~uint16](names []string) idSpace[T] {
	index := make(map[string]T, len(names))
	for i, name := range names {
		index[strings.ToLower(name)] = T(i)
	}
	return idSpace[T]{names: names, index: index}
}

func (s idSpace[T]) name(id T) (string, bool) {
	if int(id) >= len(s.names) {
		return "", false
	}
	return s.names[id], true
}

// parse is case-insensitive so hand-written profiles need not match the exact casing.
func (s idSpace[T]) parse(name string) (T, bool) {
	id, ok := s.index[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

func (s idSpace[T]) all() []T {
	ids := make([]T, len(s.names))
	for i := range s.names {
		ids[i] = T(i)
	}
	return ids
}

var (
	intIDs   = newIDSpace[IntID](intIDNames)
	floatIDs = newIDSpace[FloatID](floatIDNames)
	colorIDs = newIDSpace[ColorID](colorIDNames)
	fontIDs  = newIDSpace[FontID](fontIDNames)
)

// String returns the wire name of the identifier.
func (id IntID) String() string {
	if name, ok := intIDs.name(id); ok {
		return name
	}
	return unknownName("IntID", int(id))
}

// Valid reports whether id belongs to the enumeration.
func (id IntID) Valid() bool { return id < intIDCount }

// String returns the wire name of the identifier.
func (id FloatID) String() string {
	if name, ok := floatIDs.name(id); ok {
		return name
	}
	return unknownName("FloatID", int(id))
}

// Valid reports whether id belongs to the enumeration.
func (id FloatID) Valid() bool { return id < floatIDCount }

// String returns the wire name of the identifier.
func (id ColorID) String() string {
	if name, ok := colorIDs.name(id); ok {
		return name
	}
	return unknownName("ColorID", int(id))
}

// Valid reports whether id belongs to the enumeration.
func (id ColorID) Valid() bool { return id < colorIDCount }

// String returns the wire name of the identifier.
func (id FontID) String() string {
	if name, ok := fontIDs.name(id); ok {
		return name
	}
	return unknownName("FontID", int(id))
}

// Valid reports whether id belongs to the enumeration.
func (id FontID) Valid() bool { return id < fontIDCount }

// ParseIntID resolves a wire name to an IntID.
func ParseIntID(name string) (IntID, bool) { return intIDs.parse(name) }

// ParseFloatID resolves a wire name to a FloatID.
func ParseFloatID(name string) (FloatID, bool) { return floatIDs.parse(name) }

// ParseColorID resolves a wire name to a ColorID.
func ParseColorID(name string) (ColorID, bool) { return colorIDs.parse(name) }

// ParseFontID resolves a wire name to a FontID.
func ParseFontID(name string) (FontID, bool) { return fontIDs.parse(name) }

// AllIntIDs returns every IntID in declaration order.
func AllIntIDs() []IntID { return intIDs.all() }

// AllFloatIDs returns every FloatID in declaration order.
func AllFloatIDs() []FloatID { return floatIDs.all() }

// AllColorIDs returns every ColorID in declaration order.
func AllColorIDs() []ColorID { return colorIDs.all() }

// AllFontIDs returns every FontID in declaration order.
func AllFontIDs() []FontID { return fontIDs.all() }

func unknownName(kind string, id int) string {
	return fmt.Sprintf("%s(%d)", kind, id)
}

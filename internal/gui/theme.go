package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
)

// Theme is the bakery palette every draw helper reads from.
type Theme struct {
	Background    rl.Color
	Counter       rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	Divider       rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	AccentSoft    rl.Color
	Good          rl.Color
	Warning       rl.Color
	Danger        rl.Color
	DisabledPanel rl.Color
	DisabledText  rl.Color
}

var AppTheme = Theme{
	Background:    rl.NewColor(0x24, 0x1A, 0x14, 255), // #241A14
	Counter:       rl.NewColor(0x3A, 0x2A, 0x1E, 255), // #3A2A1E
	Panel:         rl.NewColor(0x2E, 0x22, 0x1A, 255), // #2E221A
	PanelRaised:   rl.NewColor(0x3B, 0x2C, 0x22, 255), // #3B2C22
	Border:        rl.NewColor(0x5A, 0x44, 0x34, 255), // #5A4434
	Divider:       rl.NewColor(0x4A, 0x38, 0x2B, 255), // #4A382B
	TextPrimary:   rl.NewColor(0xF4, 0xE9, 0xD8, 255), // #F4E9D8
	TextSecondary: rl.NewColor(0xC9, 0xB8, 0xA3, 255), // #C9B8A3
	TextMuted:     rl.NewColor(0x93, 0x82, 0x70, 255), // #938270
	Accent:        rl.NewColor(0xE0, 0x9A, 0x3E, 255), // #E09A3E
	AccentSoft:    rl.NewColor(0xB5, 0x7A, 0x35, 200),
	Good:          rl.NewColor(0x7B, 0xB0, 0x5A, 255), // #7BB05A
	Warning:       rl.NewColor(0xE8, 0xC0, 0x4A, 255), // #E8C04A
	Danger:        rl.NewColor(0xD0, 0x55, 0x45, 255), // #D05545
	DisabledPanel: rl.NewColor(0x26, 0x1D, 0x17, 255),
	DisabledText:  rl.NewColor(0x6E, 0x61, 0x55, 255),
}

const (
	spaceXS = float32(8)
	spaceS  = float32(12)
	spaceM  = float32(18)
	spaceL  = float32(24)

	cornerRadius   = float32(0.08)
	cornerSegments = int32(8)

	borderWidth      = float32(1.2)
	borderWidthFocus = float32(2.0)
	rowHeight        = float32(36)
	buttonHeight     = float32(48)
	accentStrip      = float32(4)
)

type buttonState int

const (
	buttonNormal buttonState = iota
	buttonHover
	buttonDisabled
)

func drawPanel(rect rl.Rectangle, title string, raised bool) {
	fill := AppTheme.Panel
	stroke := AppTheme.Border
	width := borderWidth
	if raised {
		fill = AppTheme.PanelRaised
		stroke = mix(AppTheme.Border, AppTheme.Accent, 0.35)
		width = 1.4
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, width, stroke)
	if title == "" {
		return
	}
	drawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
	y := rect.Y + spaceS + float32(typeScale.Header) + 12
	drawDivider(rect.X+spaceM, y, rect.X+rect.Width-spaceM, y)
}

func drawButton(rect rl.Rectangle, state buttonState, text string) {
	fill := AppTheme.Panel
	stroke := AppTheme.Border
	label := AppTheme.TextPrimary
	width := borderWidth
	switch state {
	case buttonHover:
		fill = AppTheme.PanelRaised
		stroke = AppTheme.Accent
		width = borderWidthFocus
	case buttonDisabled:
		fill = AppTheme.DisabledPanel
		stroke = rl.Fade(AppTheme.Border, 0.75)
		label = AppTheme.DisabledText
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, width, stroke)
	if text == "" {
		return
	}
	size := typeScale.Body
	w := measureText(text, size)
	drawText(text, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(size))/2-1), size, label)
}

// drawRow paints one list line with an accent strip when selected.
func drawRow(rect rl.Rectangle, selected bool, left, right string) {
	fill := rl.Fade(AppTheme.PanelRaised, 0.45)
	stroke := rl.Fade(AppTheme.Border, 0.9)
	rightColor := AppTheme.TextSecondary
	width := borderWidth
	if selected {
		fill = AppTheme.PanelRaised
		stroke = AppTheme.Accent
		rightColor = AppTheme.Accent
		width = borderWidthFocus
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, width, stroke)
	if selected {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X+1, rect.Y+2, accentStrip, rect.Height-4), AppTheme.Accent)
	}
	textY := int32(rect.Y + (rect.Height-float32(typeScale.Body))/2)
	if left != "" {
		drawText(left, int32(rect.X+spaceM), textY, typeScale.Body, AppTheme.TextPrimary)
	}
	if right != "" {
		w := measureText(right, typeScale.Body)
		drawText(right, int32(rect.X+rect.Width-spaceM-float32(w)), textY, typeScale.Body, rightColor)
	}
}

func drawInput(rect rl.Rectangle, text, placeholder string, focused bool) {
	stroke := AppTheme.Border
	if focused {
		stroke = AppTheme.Accent
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, AppTheme.DisabledPanel)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, borderWidthFocus, stroke)
	y := int32(rect.Y + (rect.Height-float32(typeScale.Body))/2)
	if text == "" {
		drawText(placeholder, int32(rect.X+spaceS), y, typeScale.Body, AppTheme.TextMuted)
		return
	}
	shown := text
	if focused && (rl.GetTime()*2)-float64(int(rl.GetTime()*2)) < 0.5 {
		shown += "_"
	}
	drawText(shown, int32(rect.X+spaceS), y, typeScale.Body, AppTheme.TextPrimary)
}

func drawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, typeScale.Header, AppTheme.TextPrimary)
	lineW := int32(float32(measureText(text, typeScale.Header)) * 0.6)
	if lineW < 44 {
		lineW = 44
	}
	lineY := float32(y + typeScale.Header + 6)
	rl.DrawLineEx(rl.NewVector2(float32(x), lineY), rl.NewVector2(float32(x+lineW), lineY), 2, AppTheme.Accent)
}

func drawDivider(x1, y1, x2, y2 float32) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), 1, rl.Fade(AppTheme.Divider, 0.95))
}

func tierColor(t minigame.Tier) rl.Color {
	switch t {
	case minigame.TierUrgent:
		return AppTheme.Danger
	case minigame.TierWarning:
		return AppTheme.Warning
	default:
		return AppTheme.Good
	}
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = clampFloat32(t, 0, 1)
	inv := 1 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

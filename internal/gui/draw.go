package gui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cookie-tycoon/internal/engine"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
	"github.com/appengine-ltd/cookie-tycoon/internal/screens"
)

const (
	hudHeight   = float32(52)
	actionsGap  = float32(12)
	buttonWidth = float32(180)
)

// button is a clickable rectangle laid out for one scene.Action.
type button struct {
	id      string
	label   string
	rect    rl.Rectangle
	enabled bool
}

func isRowAction(id string) bool {
	return strings.HasPrefix(id, screens.AddActionID("")) || strings.HasPrefix(id, screens.RemoveActionID(""))
}

// layoutButtons right-aligns the screen-wide actions along the bottom of
// area. Per-row shopping actions are drawn with their rows instead.
func layoutButtons(actions []scene.Action, area rl.Rectangle) []button {
	var out []button
	for _, a := range actions {
		if isRowAction(a.ID) {
			continue
		}
		out = append(out, button{id: a.ID, label: a.Label, enabled: a.Enabled})
	}
	x := area.X + area.Width
	y := area.Y + area.Height - buttonHeight
	for i := len(out) - 1; i >= 0; i-- {
		x -= buttonWidth
		out[i].rect = rl.NewRectangle(x, y, buttonWidth, buttonHeight)
		x -= actionsGap
	}
	return out
}

func (a *App) draw() {
	w, h := float32(a.width), float32(a.height)
	rl.ClearBackground(AppTheme.Background)
	if a.o.Stage().Background() {
		a.drawBackground(w, h)
	}

	content := rl.NewRectangle(spaceL, spaceL, w-spaceL*2, h-spaceL*2)
	if a.o.Phase() != game.PhaseLogin {
		a.drawHUD(a.o.HUD(), rl.NewRectangle(spaceL, spaceS, w-spaceL*2, hudHeight))
		content.Y += hudHeight
		content.Height -= hudHeight
	}

	a.buttons = a.buttons[:0]
	sc := a.o.Screen()
	if sc == nil {
		drawTextCentered("Closing the trailer...", content, int32(content.Y+content.Height/2), typeScale.Header, AppTheme.TextSecondary)
		return
	}
	body := rl.NewRectangle(content.X, content.Y, content.Width, content.Height-buttonHeight-spaceM)
	switch v := sc.View().(type) {
	case screens.Panel:
		a.drawPanelView(v, body)
	case screens.ShoppingView:
		a.drawShopping(v, body)
	case minigame.View:
		a.drawMinigame(v, body)
	case screens.Frame:
		a.drawFrame(v, body)
	default:
		drawPanel(body, fmt.Sprint(v), false)
	}

	a.buttons = append(a.buttons, layoutButtons(sc.Actions(), content)...)
	mouse := rl.GetMousePosition()
	for _, b := range a.buttons {
		if isRowAction(b.id) {
			continue
		}
		state := buttonNormal
		switch {
		case !b.enabled:
			state = buttonDisabled
		case rl.CheckCollisionPointRec(mouse, b.rect):
			state = buttonHover
		}
		drawButton(b.rect, state, b.label)
	}

	if a.toast != "" && time.Now().Before(a.toastUntil) {
		drawText(a.toast, int32(content.X), int32(h-spaceL), typeScale.Small, AppTheme.TextMuted)
	}
}

func (a *App) drawBackground(w, h float32) {
	if a.background.ID != 0 {
		src := rl.NewRectangle(0, 0, float32(a.background.Width), float32(a.background.Height))
		rl.DrawTexturePro(a.background, src, rl.NewRectangle(0, 0, w, h), rl.NewVector2(0, 0), 0, rl.Fade(rl.White, 0.35))
		return
	}
	rl.DrawRectangleRec(rl.NewRectangle(0, h*0.72, w, h*0.28), AppTheme.Counter)
	for x := float32(0); x < w; x += 64 {
		rl.DrawRectangleRec(rl.NewRectangle(x, h*0.72, 32, 6), rl.Fade(AppTheme.Accent, 0.25))
	}
}

func (a *App) drawHUD(hud engine.HUD, rect rl.Rectangle) {
	drawPanel(rect, "", true)
	y := int32(rect.Y + (rect.Height-float32(typeScale.Body))/2)
	x := int32(rect.X + spaceM)
	items := []struct {
		text string
		clr  rl.Color
	}{
		{hud.Username, AppTheme.Accent},
		{fmt.Sprintf("Day %d", hud.Day), AppTheme.TextPrimary},
		{fmt.Sprintf("Funds %s / %s", hud.Funds, hud.Goal), fundsColor(hud.Funds, hud.Goal)},
		{"Reputation " + screens.Stars(hud.Reputation), AppTheme.TextPrimary},
		{fmt.Sprintf("Bread capacity %d", hud.Capacity), AppTheme.TextMuted},
	}
	for _, it := range items {
		if it.text == "" {
			continue
		}
		drawText(it.text, x, y, typeScale.Body, it.clr)
		x += measureText(it.text, typeScale.Body) + int32(spaceL)
	}
	vol := fmt.Sprintf("Vol %d%%", int(a.o.Audio().Volume()*100+0.5))
	drawText(vol, int32(rect.X+rect.Width-spaceM)-measureText(vol, typeScale.Small), y+2, typeScale.Small, AppTheme.TextMuted)
}

func fundsColor(funds, goal game.Money) rl.Color {
	switch {
	case funds < 0:
		return AppTheme.Danger
	case funds >= goal:
		return AppTheme.Good
	default:
		return AppTheme.TextPrimary
	}
}

func (a *App) drawPanelView(v screens.Panel, rect rl.Rectangle) {
	drawPanel(rect, v.Title, false)
	x := int32(rect.X + spaceM)
	y := int32(rect.Y+spaceS) + typeScale.Header + 24
	if v.Subtitle != "" {
		drawText(v.Subtitle, x, y, typeScale.Body, AppTheme.TextSecondary)
		y += lineHeight(typeScale.Body) + int32(spaceXS)
	}
	if v.Loading {
		drawText("Loading...", x, y, typeScale.Body, AppTheme.TextMuted)
		return
	}
	for _, line := range v.Lines {
		for _, wrapped := range wrapText(line, typeScale.Body, int32(rect.Width-spaceM*2), measureText) {
			drawText(wrapped, x, y, typeScale.Body, AppTheme.TextPrimary)
			y += lineHeight(typeScale.Body)
		}
	}
	if v.Prompt != "" {
		y += int32(spaceS)
		drawText(v.Prompt, x, y, typeScale.Body, AppTheme.TextSecondary)
		y += lineHeight(typeScale.Body)
		drawInput(rl.NewRectangle(float32(x), float32(y), 360, 40), v.Input, "type here", true)
		y += 40 + int32(spaceXS)
	}
	if v.Message != "" {
		drawText(v.Message, x, y+int32(spaceXS), typeScale.Body, AppTheme.Danger)
	}
}

func (a *App) drawShopping(v screens.ShoppingView, rect rl.Rectangle) {
	drawPanel(rect, v.Title, false)
	x := rect.X + spaceM
	y := rect.Y + spaceS + float32(typeScale.Header) + 24
	summary := fmt.Sprintf("Cart %s   Left after checkout %s   Cookies %d", v.Total, v.After, v.Cookies)
	clr := AppTheme.TextSecondary
	if v.After < 0 {
		clr = AppTheme.Danger
	}
	drawText(summary, int32(x), int32(y), typeScale.Body, clr)
	y += float32(lineHeight(typeScale.Body)) + spaceXS

	rowW := rect.Width - spaceM*2 - 2*(rowHeight+spaceXS)
	for _, row := range v.Rows {
		r := rl.NewRectangle(x, y, rowW, rowHeight)
		left := fmt.Sprintf("%s (%s) %s", row.Name, row.Unit, row.Price)
		right := fmt.Sprintf("have %d  need %d  cart %d", row.Owned, row.Needed, row.InCart)
		drawRow(r, row.Selected, left, right)
		minus := button{id: screens.RemoveActionID(row.Name), label: "-", enabled: row.InCart > 0,
			rect: rl.NewRectangle(x+rowW+spaceXS, y, rowHeight, rowHeight)}
		plus := button{id: screens.AddActionID(row.Name), label: "+", enabled: true,
			rect: rl.NewRectangle(minus.rect.X+rowHeight+spaceXS, y, rowHeight, rowHeight)}
		for _, b := range []button{minus, plus} {
			state := buttonNormal
			if !b.enabled {
				state = buttonDisabled
			}
			drawButton(b.rect, state, b.label)
			a.buttons = append(a.buttons, b)
		}
		y += rowHeight + 4
	}

	y += spaceXS
	drawInput(rl.NewRectangle(x, y, 260, 36), v.Query, "type to find (Tab)", v.Query != "")
	if v.Message != "" {
		drawText(v.Message, int32(x+280), int32(y+8), typeScale.Body, AppTheme.Danger)
	}
}

func (a *App) drawMinigame(v minigame.View, rect rl.Rectangle) {
	drawPanel(rect, v.Title, false)
	x := int32(rect.X + spaceM)
	y := int32(rect.Y+spaceS) + typeScale.Header + 24
	switch v.State {
	case minigame.StateChoice:
		drawLines(v.Lines, x, y, typeScale.Body, AppTheme.TextPrimary)
	case minigame.StateActive:
		secs := int((v.Remaining + time.Second - 1) / time.Second)
		timer := fmt.Sprintf("%ds", secs)
		drawText(timer, int32(rect.X+rect.Width-spaceM)-measureText(timer, typeScale.Title), y, typeScale.Title, tierColor(v.Tier))
		drawText(fmt.Sprintf("Progress %d/%d", v.Progress, v.Target), x, y, typeScale.Body, AppTheme.TextSecondary)
		y += lineHeight(typeScale.Title) + int32(spaceM)
		drawTextCentered(v.Question, rect, y, typeScale.Title, AppTheme.TextPrimary)
		y += lineHeight(typeScale.Title)
		drawTextCentered(v.Words, rect, y, typeScale.Small, AppTheme.TextMuted)
		y += lineHeight(typeScale.Small) + int32(spaceM)
		in := rl.NewRectangle(rect.X+(rect.Width-240)/2, float32(y), 240, 44)
		drawInput(in, v.Input, "answer", true)
		y += 44 + int32(spaceS)
		if v.Feedback != "" {
			clr := AppTheme.Danger
			if v.FeedbackGood {
				clr = AppTheme.Good
			}
			drawTextCentered(v.Feedback, rect, y, typeScale.Body, clr)
		}
	default:
		drawText(v.Header, x, y, typeScale.Title, AppTheme.Accent)
		y += lineHeight(typeScale.Title)
		drawText(v.Tally, x, y, typeScale.Body, AppTheme.TextSecondary)
		y += lineHeight(typeScale.Body) + int32(spaceS)
		drawLines(v.Lines, x, y, typeScale.Body, AppTheme.TextPrimary)
	}
}

func (a *App) drawFrame(v screens.Frame, rect rl.Rectangle) {
	drawPanel(rect, "", true)
	lines := strings.Split(strings.TrimRight(v.Art, "\n"), "\n")
	lh := lineHeight(typeScale.Mono)
	y := int32(rect.Y+rect.Height/2) - int32(len(lines))*lh/2
	for _, line := range lines {
		drawTextCentered(line, rect, y, typeScale.Mono, AppTheme.Accent)
		y += lh
	}
	if v.Caption != "" {
		drawTextCentered(v.Caption, rect, y+int32(spaceM), typeScale.Header, AppTheme.TextPrimary)
	}
}

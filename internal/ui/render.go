package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/cookie-tycoon/internal/engine"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
	"github.com/appengine-ltd/cookie-tycoon/internal/screens"
)

// --- Styles (warm bakery) ---
var (
	crust    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	title    = crust.Bold(true)
	dough    = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	dim      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	good     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warn     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bad      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selected = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
	box      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("130")).Padding(0, 1)
)

func (m model) View() string {
	var out strings.Builder
	if m.o.Phase() != game.PhaseLogin {
		out.WriteString(renderHUD(m.o.HUD(), m.o.Audio().Volume()))
		out.WriteString("\n")
	}
	sc := m.o.Screen()
	if sc == nil {
		out.WriteString(dim.Render("Closing the trailer..."))
		return out.String()
	}

	var body string
	switch v := sc.View().(type) {
	case screens.Panel:
		body = renderPanel(v)
	case screens.ShoppingView:
		body = renderShopping(v)
	case minigame.View:
		body = renderMinigame(v)
	case screens.Frame:
		body = renderFrame(v)
	default:
		body = fmt.Sprint(v)
	}
	if m.cfg.Art {
		switch m.o.Phase() {
		case game.PhaseVictory, game.PhaseDefeat:
			art := renderCookie(24, m.o.HUD().Reputation, m.o.Phase() == game.PhaseDefeat)
			body = lipgloss.JoinHorizontal(lipgloss.Top, art, "  ", body)
		}
	}
	out.WriteString(box.Render(body))
	out.WriteString("\n")
	out.WriteString(renderActions(sc.Actions()))
	out.WriteString("\n")
	return out.String()
}

func renderHUD(h engine.HUD, volume float32) string {
	funds := dough
	switch {
	case h.Funds < 0:
		funds = bad
	case h.Funds >= h.Goal:
		funds = good
	}
	parts := []string{
		crust.Render(h.Username),
		dough.Render(fmt.Sprintf("Day %d", h.Day)),
		funds.Render(fmt.Sprintf("Funds %s / %s", h.Funds, h.Goal)),
		dough.Render(screens.Stars(h.Reputation)),
		dim.Render(fmt.Sprintf("vol %d%%", int(volume*100+0.5))),
	}
	return strings.Join(parts, dim.Render("  |  "))
}

func renderPanel(p screens.Panel) string {
	lines := []string{title.Render(p.Title)}
	if p.Subtitle != "" {
		lines = append(lines, dim.Render(p.Subtitle))
	}
	lines = append(lines, "")
	if p.Loading {
		return strings.Join(append(lines, dim.Render("Loading...")), "\n")
	}
	for _, l := range p.Lines {
		lines = append(lines, dough.Render(l))
	}
	if p.Prompt != "" {
		lines = append(lines, "", dim.Render(p.Prompt), crust.Render("> "+p.Input+"_"))
	}
	if p.Message != "" {
		lines = append(lines, "", bad.Render(p.Message))
	}
	return strings.Join(lines, "\n")
}

func renderShopping(v screens.ShoppingView) string {
	lines := []string{title.Render(v.Title), ""}
	for _, r := range v.Rows {
		row := fmt.Sprintf("%-12s %-6s %8s  have %3d  need %3d  cart %3d", r.Name, r.Unit, r.Price, r.Owned, r.Needed, r.InCart)
		if r.Selected {
			lines = append(lines, selected.Render("> "+row))
			continue
		}
		lines = append(lines, dough.Render("  "+row))
	}
	after := dough
	if v.After < 0 {
		after = bad
	}
	lines = append(lines, "",
		after.Render(fmt.Sprintf("Cart %s  |  left after checkout %s  |  cookies %d", v.Total, v.After, v.Cookies)),
		dim.Render("find: ")+crust.Render(v.Query+"_"),
		dim.Render("up/down select, left/right or -/+ change, tab completes"),
	)
	if v.Message != "" {
		lines = append(lines, bad.Render(v.Message))
	}
	return strings.Join(lines, "\n")
}

func renderMinigame(v minigame.View) string {
	lines := []string{title.Render(v.Title), ""}
	switch v.State {
	case minigame.StateChoice:
		for _, l := range v.Lines {
			lines = append(lines, dough.Render(l))
		}
	case minigame.StateActive:
		secs := int((v.Remaining + time.Second - 1) / time.Second)
		lines = append(lines,
			tierStyle(v.Tier).Render(fmt.Sprintf("%2ds", secs))+dim.Render(fmt.Sprintf("   progress %d/%d", v.Progress, v.Target)),
			"",
			crust.Bold(true).Render(v.Question),
			dim.Render(v.Words),
			"",
			dough.Render("= "+v.Input+"_"),
		)
		if v.Feedback != "" {
			st := bad
			if v.FeedbackGood {
				st = good
			}
			lines = append(lines, st.Render(v.Feedback))
		}
	default:
		lines = append(lines, crust.Bold(true).Render(v.Header), dim.Render(v.Tally), "")
		for _, l := range v.Lines {
			lines = append(lines, dough.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}

func renderFrame(f screens.Frame) string {
	out := crust.Render(strings.TrimRight(f.Art, "\n"))
	if f.Caption != "" {
		out += "\n\n" + dough.Render(f.Caption)
	}
	return out
}

func tierStyle(t minigame.Tier) lipgloss.Style {
	switch t {
	case minigame.TierUrgent:
		return bad
	case minigame.TierWarning:
		return warn
	default:
		return good
	}
}

func renderActions(actions []scene.Action) string {
	bar := barActions(actions)
	if len(bar) == 0 {
		return dim.Render("ctrl+c quits")
	}
	parts := make([]string, 0, len(bar)+1)
	for i, a := range bar {
		label := fmt.Sprintf("[%s|alt+%d] %s", keyLabel(a.Key), i+1, a.Label)
		if keyLabel(a.Key) == "" {
			label = fmt.Sprintf("[alt+%d] %s", i+1, a.Label)
		}
		if !a.Enabled {
			parts = append(parts, dim.Strikethrough(true).Render(label))
			continue
		}
		parts = append(parts, crust.Render(label))
	}
	parts = append(parts, dim.Render("ctrl+c quits"))
	return strings.Join(parts, "  ")
}

func keyLabel(k loop.Key) string {
	switch k.Code {
	case loop.KeyEnter:
		return "enter"
	case loop.KeyEscape:
		return "esc"
	case loop.KeyBackspace:
		return "backspace"
	case loop.KeyTab:
		return "tab"
	case loop.KeyUp:
		return "up"
	case loop.KeyDown:
		return "down"
	case loop.KeyLeft:
		return "left"
	case loop.KeyRight:
		return "right"
	}
	if k.Rune == 0 {
		return ""
	}
	return string(k.Rune)
}

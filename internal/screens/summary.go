package screens

import (
	"fmt"

	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type Summary struct {
	base
	s    game.DaySummary
	done func()
}

func NewSummary(d scene.Deps, s game.DaySummary, done func()) *Summary {
	sm := &Summary{s: s, done: done}
	sm.init(d, "summary", sm)
	return sm
}

func (sm *Summary) View() any {
	s := sm.s
	lines := []string{
		fmt.Sprintf("Cookies sold:   %d of %d wanted", s.CookiesSold, s.Demand),
		fmt.Sprintf("Sales:          %s", s.Ledger.Sales),
		fmt.Sprintf("Tips:           %s", s.Ledger.Tips),
		fmt.Sprintf("Expenses:       %s", s.Ledger.Expenses),
		fmt.Sprintf("Net:            %s", s.Ledger.Net()),
		"",
	}
	switch {
	case s.Skipped:
		lines = append(lines, fmt.Sprintf("You skipped the dishes. Fine: %s", s.Fine))
	case s.Fine > 0:
		lines = append(lines, fmt.Sprintf("Dishes cleaned: %d of %d. Fine: %s", s.DishesCleaned, s.Dishes, s.Fine))
	default:
		lines = append(lines, fmt.Sprintf("Dishes cleaned: %d of %d. Spotless!", s.DishesCleaned, s.Dishes))
	}
	lines = append(lines,
		fmt.Sprintf("Reputation:     %s", Stars(s.Reputation)),
		fmt.Sprintf("Funds:          %s", s.Funds),
	)
	return Panel{Title: fmt.Sprintf("Day %d Summary", s.Day), Lines: lines}
}

func (sm *Summary) Actions() []scene.Action {
	return []scene.Action{continueAction("")}
}

func (sm *Summary) Act(id string) {
	if id == ActionContinue {
		sm.complete(sm.done)
	}
}

// Stars renders reputation on a five star scale.
func Stars(rep float64) string {
	n := int(rep/game.MaxReputation*5 + 0.5)
	n = max(0, min(5, n))
	out := make([]rune, 0, 5)
	for i := 0; i < 5; i++ {
		if i < n {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return fmt.Sprintf("%s (%.2f)", string(out), rep)
}

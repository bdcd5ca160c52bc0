package screens

import (
	"fmt"

	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

const (
	ActionPlayAgain = "play_again"
	ActionLogout    = "logout"
	ActionQuit      = "quit"
)

// Ending is the victory or defeat screen.
type Ending struct {
	base
	won    bool
	player game.PlayerState
	goal   game.Money
	done   func(game.EndChoice)
}

func NewEnding(d scene.Deps, won bool, p game.PlayerState, goal game.Money, done func(game.EndChoice)) *Ending {
	e := &Ending{won: won, player: p.Clone(), goal: goal, done: done}
	owner := "defeat"
	if won {
		owner = "victory"
	}
	e.init(d, owner, e)
	return e
}

func (e *Ending) Won() bool {
	return e.won
}

func (e *Ending) View() any {
	p := e.player
	days := max(p.CurrentDay-1, 1)
	panel := Panel{
		Lines: []string{
			fmt.Sprintf("Days open:   %d", days),
			fmt.Sprintf("Final funds: %s (goal %s)", p.Funds, e.goal),
			fmt.Sprintf("Reputation:  %s", Stars(p.Reputation)),
		},
	}
	if e.won {
		panel.Title = "You Did It!"
		panel.Subtitle = fmt.Sprintf("%s turned the trailer into a cookie empire.", nameOr(p.Username))
	} else {
		panel.Title = "The Trailer Closes"
		panel.Subtitle = fmt.Sprintf("Out of money and out of flour. Chin up, %s.", nameOr(p.Username))
	}
	return panel
}

func nameOr(name string) string {
	if name == "" {
		return "baker"
	}
	return name
}

func (e *Ending) Actions() []scene.Action {
	return []scene.Action{
		{ID: ActionPlayAgain, Label: "Play again", Key: loop.Code(loop.KeyEnter), Enabled: true},
		{ID: ActionLogout, Label: "Log out", Key: loop.Rune('l'), Enabled: true},
		{ID: ActionQuit, Label: "Quit", Key: loop.Rune('q'), Enabled: true},
	}
}

func (e *Ending) Act(id string) {
	var choice game.EndChoice
	switch id {
	case ActionPlayAgain:
		choice = game.ChoicePlayAgain
	case ActionLogout:
		choice = game.ChoiceLogout
	case ActionQuit:
		choice = game.ChoiceQuit
	default:
		return
	}
	e.complete(func() { e.done(choice) })
}

package screens

import (
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

const ActionLogin = "login"

type Login struct {
	base
	store   prefs.Store
	done    func(username string)
	input   string
	message string
}

// NewLogin asks for a player name, prefilled from the last session.
func NewLogin(d scene.Deps, store prefs.Store, done func(username string)) *Login {
	l := &Login{store: store, done: done}
	if store != nil {
		if p, err := store.Load(); err == nil {
			l.input = p.Username
		}
	}
	l.init(d, "login", l)
	l.listen(l.handleKey)
	return l
}

func (l *Login) handleKey(k loop.Key) bool {
	if !l.alive {
		return false
	}
	switch {
	case k.Code == loop.KeyEnter:
		l.Submit()
	case k.Code == loop.KeyBackspace:
		if len(l.input) > 0 {
			l.input = l.input[:len(l.input)-1]
		}
	case k.IsPrintable():
		if len(l.input) < prefs.MaxUsernameLen {
			l.input += string(k.Rune)
		}
		l.message = ""
	default:
		return false
	}
	return true
}

// Submit validates the name, persists it and completes.
func (l *Login) Submit() {
	if !l.alive {
		return
	}
	name := prefs.CleanUsername(l.input)
	if name == "" {
		l.message = "Please enter a name"
		return
	}
	if l.store != nil {
		if err := prefs.Update(l.store, func(p *prefs.Prefs) { p.Username = name }); err != nil {
			l.deps.Logger().Warn("could not save username", "err", err)
		}
	}
	l.complete(func() { l.done(name) })
}

func (l *Login) Input() string {
	return l.input
}

func (l *Login) View() any {
	return Panel{
		Title:    "Cookie Trailer Tycoon",
		Subtitle: "Who is running the trailer today?",
		Prompt:   "Name",
		Input:    l.input,
		Message:  l.message,
		Lines:    []string{"Type your name and press Enter."},
	}
}

func (l *Login) Actions() []scene.Action {
	return []scene.Action{{ID: ActionLogin, Label: "Start", Key: loop.Code(loop.KeyEnter), Enabled: true}}
}

func (l *Login) Act(id string) {
	if id == ActionLogin {
		l.Submit()
	}
}

package screens

import (
	"fmt"

	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type Story struct {
	base
	name string
	done func()
}

// NewStory greets the player by the saved name, falling back to name.
func NewStory(d scene.Deps, store prefs.Store, name string, done func()) *Story {
	s := &Story{name: name, done: done}
	if store != nil {
		if p, err := store.Load(); err == nil && p.Username != "" {
			s.name = p.Username
		}
	}
	s.init(d, "story", s)
	return s
}

func (s *Story) View() any {
	who := s.name
	if who == "" {
		who = "friend"
	}
	return Panel{
		Title: "A Trailer of Your Own",
		Lines: []string{
			fmt.Sprintf("Hi %s!", who),
			"Your aunt left you her old cookie trailer and a recipe card.",
			"The town has a sweet tooth, but the trailer needs money to keep running.",
			"Bake well, keep the dishes clean, and the customers will keep coming back.",
		},
	}
}

func (s *Story) Actions() []scene.Action {
	return []scene.Action{continueAction("Let's bake")}
}

func (s *Story) Act(id string) {
	if id == ActionContinue {
		s.complete(s.done)
	}
}

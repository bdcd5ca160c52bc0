package engine

import (
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// Factory builds the collaborator for each phase. Every constructor takes the
// shared Deps, the data slice the phase needs and a completion callback, and
// returns something the orchestrator can tear down.
type Factory interface {
	Login(d scene.Deps, done func(username string)) scene.Screen
	Story(d scene.Deps, username string, done func()) scene.Screen
	HowToPlay(d scene.Deps, done func()) scene.Screen
	Order(d scene.Deps, p game.PlayerState, done func([]game.CustomerOrder)) scene.Screen
	RecipeBook(d scene.Deps, prices game.PriceList, p game.PlayerState, done func()) scene.Screen
	Shopping(d scene.Deps, prices game.PriceList, p game.PlayerState, done func(game.Cart)) scene.Screen
	Minigame(d scene.Deps, v minigame.Variant, quantity int, done minigame.DoneFunc) scene.Screen
	Summary(d scene.Deps, s game.DaySummary, done func()) scene.Screen
	Ending(d scene.Deps, won bool, p game.PlayerState, done func(game.EndChoice)) scene.Screen
	Animation(d scene.Deps, phase game.Phase, done func()) scene.Animation
}

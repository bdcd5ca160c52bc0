package screens

import (
	"io/fs"
	"math/rand/v2"

	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// Factory builds the default collaborator for each phase.
type Factory struct {
	Econ         game.Economy
	RNG          *rand.Rand
	Prefs        prefs.Store
	Assets       fs.FS
	Instructions InstructionSource
}

func NewFactory(econ game.Economy, rng *rand.Rand, store prefs.Store, assets fs.FS) *Factory {
	if assets == nil {
		assets = Assets()
	}
	return &Factory{
		Econ:         econ,
		RNG:          rng,
		Prefs:        store,
		Assets:       assets,
		Instructions: FSInstructions{FS: assets, Path: "howto.txt"},
	}
}

func (f *Factory) Login(d scene.Deps, done func(string)) scene.Screen {
	return NewLogin(d, f.Prefs, done)
}

func (f *Factory) Story(d scene.Deps, username string, done func()) scene.Screen {
	return NewStory(d, f.Prefs, username, done)
}

func (f *Factory) HowToPlay(d scene.Deps, done func()) scene.Screen {
	return NewHowToPlay(d, f.Instructions, done)
}

func (f *Factory) Order(d scene.Deps, p game.PlayerState, done func([]game.CustomerOrder)) scene.Screen {
	return NewOrder(d, f.Econ, f.RNG, p, done)
}

func (f *Factory) RecipeBook(d scene.Deps, prices game.PriceList, p game.PlayerState, done func()) scene.Screen {
	return NewRecipeBook(d, f.Econ, prices, p, done)
}

func (f *Factory) Shopping(d scene.Deps, prices game.PriceList, p game.PlayerState, done func(game.Cart)) scene.Screen {
	return NewShopping(d, f.Econ, prices, p, done)
}

func (f *Factory) Minigame(d scene.Deps, v minigame.Variant, quantity int, done minigame.DoneFunc) scene.Screen {
	return minigame.New(d, v, quantity, f.RNG, done)
}

func (f *Factory) Summary(d scene.Deps, s game.DaySummary, done func()) scene.Screen {
	return NewSummary(d, s, done)
}

func (f *Factory) Ending(d scene.Deps, won bool, p game.PlayerState, done func(game.EndChoice)) scene.Screen {
	goal := game.FromFloat(f.Econ.Config().WinThreshold)
	return NewEnding(d, won, p, goal, done)
}

func (f *Factory) Animation(d scene.Deps, phase game.Phase, done func()) scene.Animation {
	length := f.Econ.Config().AnimationLength
	if phase == game.PhaseNewDayAnimation {
		return NewAnimation(d, f.Assets, "newday", "A new day begins...", length, done)
	}
	return NewAnimation(d, f.Assets, "postbaking", "Cookies are served!", length, done)
}

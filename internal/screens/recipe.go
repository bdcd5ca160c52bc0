package screens

import (
	"fmt"

	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type RecipeBook struct {
	base
	econ   game.Economy
	prices game.PriceList
	player game.PlayerState
	done   func()
}

func NewRecipeBook(d scene.Deps, econ game.Economy, prices game.PriceList, p game.PlayerState, done func()) *RecipeBook {
	r := &RecipeBook{econ: econ, prices: prices, player: p.Clone(), done: done}
	r.init(d, "recipe", r)
	return r
}

func (r *RecipeBook) View() any {
	recipe := r.econ.Recipe()
	lines := make([]string, 0, len(recipe.Ingredients)+3)
	for _, name := range recipe.RecipeNames() {
		need := recipe.Ingredients[name]
		unit, _ := r.prices.Lookup(name)
		lines = append(lines, fmt.Sprintf("%-11s x%-2d  %s each, %d in stock", name, need, unit, r.player.Ingredients[name]))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("One cookie costs %s today and sells for %s.", r.econ.RecipeCost(r.prices), r.econ.CookiePrice()),
		fmt.Sprintf("Your stock covers %d cookie%s.", r.econ.MaxCookies(r.player.Ingredients), pluralS(r.econ.MaxCookies(r.player.Ingredients))),
	)
	return Panel{Title: "Recipe Book", Subtitle: recipe.Name, Lines: lines}
}

func (r *RecipeBook) Actions() []scene.Action {
	return []scene.Action{continueAction("Go shopping")}
}

func (r *RecipeBook) Act(id string) {
	if id == ActionContinue {
		r.complete(r.done)
	}
}

package game

import (
	"math"

	"github.com/appengine-ltd/cookie-tycoon/internal/catalog"
	"github.com/appengine-ltd/cookie-tycoon/internal/config"
)

const (
	SkipReputationPenalty    = 0.2
	CleanReputationBonus     = 0.05
	FullCleanReputationBonus = 0.05
)

// Economy applies the business rules of a trailer day. It holds no state of
// its own; every rule reads and writes the PlayerState and Ledger it is given.
type Economy struct {
	cfg config.Config
	cat catalog.Catalog
}

func NewEconomy(cfg config.Config, cat catalog.Catalog) Economy {
	return Economy{cfg: cfg, cat: cat.WithPrices(cfg)}
}

func (e Economy) Config() config.Config {
	return e.cfg
}

func (e Economy) Catalog() catalog.Catalog {
	return e.cat
}

func (e Economy) Recipe() catalog.Recipe {
	return e.cat.Recipe
}

func (e Economy) CookiePrice() Money {
	return FromFloat(e.cfg.CookiePrice)
}

// NewPlayer returns a fresh player with starting funds and an empty pantry.
func (e Economy) NewPlayer(username string) PlayerState {
	p := PlayerState{Username: username}
	e.Reset(&p)
	return p
}

// Reset restores every field except Username to its starting value.
func (e Economy) Reset(p *PlayerState) {
	ingredients := make(Inventory, len(e.cat.Ingredients))
	for _, ing := range e.cat.Ingredients {
		ingredients[ing.Name] = 0
	}
	*p = PlayerState{
		Username:         p.Username,
		Funds:            FromFloat(e.cfg.StartingFunds),
		Ingredients:      ingredients,
		MaxBreadCapacity: e.cfg.MaxBreadCapacity,
		CurrentDay:       1,
		Reputation:       clampReputation(e.cfg.StartingReputation),
	}
}

// MaxCookies is how many full recipes the inventory covers.
func (e Economy) MaxCookies(inv Inventory) int {
	best := math.MaxInt
	for name, need := range e.cat.Recipe.Ingredients {
		if need <= 0 {
			continue
		}
		n := inv[name] / need
		if n < best {
			best = n
		}
	}
	if best == math.MaxInt || best < 0 {
		return 0
	}
	return best
}

func (e Economy) CanMakeCookies(p PlayerState) bool {
	return e.MaxCookies(p.Ingredients) >= 1
}

type BakeOutcome struct {
	CookiesSold int
	Revenue     Money
}

// Bake sells min(makeable, demand) cookies, consumes their ingredients and
// leaves one dirty dish per cookie sold.
func (e Economy) Bake(p *PlayerState, l *Ledger) BakeOutcome {
	sold := min(e.MaxCookies(p.Ingredients), max(p.CurrentDayDemand, 0))
	for name, need := range e.cat.Recipe.Ingredients {
		p.Ingredients[name] -= need * sold
	}
	revenue := e.CookiePrice().Mul(sold)
	p.Funds += revenue
	l.Sales += revenue
	p.BreadInventory = sold
	p.DishesToClean = sold
	return BakeOutcome{CookiesSold: sold, Revenue: revenue}
}

// ApplyTips credits tip_per_correct for every correct baking answer.
func (e Economy) ApplyTips(p *PlayerState, l *Ledger, correct int) Money {
	if correct <= 0 {
		return 0
	}
	tips := FromFloat(e.cfg.TipPerCorrect).Mul(correct)
	p.Funds += tips
	l.Tips += tips
	return tips
}

type CleaningOutcome struct {
	Skipped         bool
	Dishes          int
	Cleaned         int
	Fine            Money
	ReputationDelta float64
	FullClean       bool
}

// ApplyCleaning settles the cleaning minigame and closes the day.
func (e Economy) ApplyCleaning(p *PlayerState, l *Ledger, correct int, skipped bool) CleaningOutcome {
	before := p.Reputation
	out := CleaningOutcome{Skipped: skipped, Dishes: p.DishesToClean}
	if skipped {
		p.Reputation = clampReputation(p.Reputation - SkipReputationPenalty)
		out.Fine = FromFloat(e.cfg.CleaningSkipFine)
	} else {
		out.Cleaned = correct
		p.Reputation = clampReputation(p.Reputation + CleanReputationBonus)
		if left := p.DishesToClean - correct; left > 0 {
			out.Fine = FromFloat(e.cfg.DishFine).Mul(left)
		} else {
			out.FullClean = true
			p.Reputation = clampReputation(p.Reputation + FullCleanReputationBonus)
		}
	}
	p.Funds -= out.Fine
	l.Expenses += out.Fine
	out.ReputationDelta = p.Reputation - before
	p.DishesToClean = 0
	p.CurrentDay++
	return out
}

// CostOfOneCookie prices one recipe at the cheapest possible unit prices.
func (e Economy) CostOfOneCookie() Money {
	var total Money
	for name, need := range e.cat.Recipe.Ingredients {
		ing, ok := e.cat.Ingredient(name)
		if !ok {
			continue
		}
		total += FromFloat(ing.PriceMin).Mul(need)
	}
	return total
}

// CheckBankruptcy reports whether the player can neither bake from stock
// nor afford the ingredients of a single cookie.
func (e Economy) CheckBankruptcy(p PlayerState) bool {
	return !e.CanMakeCookies(p) && p.Funds < e.CostOfOneCookie()
}

func (e Economy) HasWon(p PlayerState) bool {
	return p.Funds >= FromFloat(e.cfg.WinThreshold)
}

// StartDay clears per-day counters before a new order is taken.
func (e Economy) StartDay(p *PlayerState) {
	p.BreadInventory = 0
	p.CurrentDayDemand = 0
}

package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// Price is today's unit price for one ingredient.
type Price struct {
	Name string
	Unit Money
}

type PriceList []Price

func (pl PriceList) Lookup(name string) (Money, bool) {
	for _, p := range pl {
		if p.Name == name {
			return p.Unit, true
		}
	}
	return 0, false
}

// RollPrices draws today's price for every catalog ingredient, rounded to
// whole cents, uniformly within its range.
func (e Economy) RollPrices(rng *rand.Rand) PriceList {
	out := make(PriceList, 0, len(e.cat.Ingredients))
	for _, ing := range e.cat.Ingredients {
		lo := FromFloat(ing.PriceMin)
		hi := FromFloat(ing.PriceMax)
		out = append(out, Price{Name: ing.Name, Unit: Money(randBetween(rng, int(lo), int(hi)))})
	}
	return out
}

// RecipeCost prices one cookie at the given prices.
func (e Economy) RecipeCost(prices PriceList) Money {
	var total Money
	for name, need := range e.cat.Recipe.Ingredients {
		unit, _ := prices.Lookup(name)
		total += unit.Mul(need)
	}
	return total
}

// Cart maps ingredient name to units being bought.
type Cart map[string]int

func (c Cart) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total prices the cart. Unknown ingredients and negative quantities are
// errors.
func (c Cart) Total(prices PriceList) (Money, error) {
	var total Money
	for _, name := range c.Names() {
		qty := c[name]
		if qty < 0 {
			return 0, fmt.Errorf("%w: %s x%d", ErrInvalidQuantity, name, qty)
		}
		unit, ok := prices.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownIngredient, name)
		}
		total += unit.Mul(qty)
	}
	return total, nil
}

// Purchase pays for the cart and stocks the pantry. Nothing changes on
// error.
func (e Economy) Purchase(p *PlayerState, l *Ledger, cart Cart, prices PriceList) (Money, error) {
	total, err := cart.Total(prices)
	if err != nil {
		return 0, err
	}
	if total > p.Funds {
		return 0, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, total, p.Funds)
	}
	if p.Ingredients == nil {
		p.Ingredients = Inventory{}
	}
	for name, qty := range cart {
		p.Ingredients[name] += qty
	}
	p.Funds -= total
	l.Expenses += total
	return total, nil
}

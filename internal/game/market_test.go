package game

import (
	"errors"
	"testing"
)

func TestRollPricesWithinRange(t *testing.T) {
	e := testEconomy(t)
	rng := SeededRNG(3)
	for i := 0; i < 50; i++ {
		for _, p := range e.RollPrices(rng) {
			ing, ok := e.Catalog().Ingredient(p.Name)
			if !ok {
				t.Fatalf("unknown ingredient %s", p.Name)
			}
			if p.Unit < FromFloat(ing.PriceMin) || p.Unit > FromFloat(ing.PriceMax) {
				t.Fatalf("%s price %s outside %v..%v", p.Name, p.Unit, ing.PriceMin, ing.PriceMax)
			}
		}
	}
}

func TestPurchaseStocksPantryAndBooksExpense(t *testing.T) {
	e := testEconomy(t)
	p := e.NewPlayer("sam")
	var l Ledger
	prices := PriceList{{Name: "Flour", Unit: FromFloat(0.75)}, {Name: "Butter", Unit: FromFloat(0.5)}}

	total, err := e.Purchase(&p, &l, Cart{"Flour": 4, "Butter": 8}, prices)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if total != Units(7) {
		t.Fatalf("expected total $7, got %s", total)
	}
	if p.Ingredients["Flour"] != 4 || p.Ingredients["Butter"] != 8 {
		t.Fatalf("expected pantry stocked, got %+v", p.Ingredients)
	}
	if l.Expenses != Units(7) || p.Funds != Units(243) {
		t.Fatalf("expected expense booked, funds %s expenses %s", p.Funds, l.Expenses)
	}
}

func TestPurchaseRejectsWithoutSideEffects(t *testing.T) {
	e := testEconomy(t)
	p := e.NewPlayer("sam")
	p.Funds = Units(1)
	var l Ledger
	prices := PriceList{{Name: "Flour", Unit: Units(1)}}

	if _, err := e.Purchase(&p, &l, Cart{"Flour": 2}, prices); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if _, err := e.Purchase(&p, &l, Cart{"Eggs": 1}, prices); !errors.Is(err, ErrUnknownIngredient) {
		t.Fatalf("expected unknown ingredient, got %v", err)
	}
	if _, err := e.Purchase(&p, &l, Cart{"Flour": -1}, prices); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if p.Funds != Units(1) || l.Expenses != 0 || p.Ingredients["Flour"] != 0 {
		t.Fatalf("expected no state change on rejected purchase")
	}
}

func TestRecipeCost(t *testing.T) {
	e := testEconomy(t)
	prices := PriceList{
		{Name: "Flour", Unit: Units(1)},
		{Name: "Sugar", Unit: Units(1)},
		{Name: "Butter", Unit: Units(1)},
		{Name: "Chocolate", Unit: Units(1)},
		{Name: "BakingSoda", Unit: Units(1)},
	}
	if got := e.RecipeCost(prices); got != Units(15) {
		t.Fatalf("expected $15 recipe, got %s", got)
	}
}

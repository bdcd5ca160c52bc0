package game

import "maps"

const (
	MinReputation = 0.2
	MaxReputation = 1.5
)

// Inventory maps ingredient name to units on hand.
type Inventory map[string]int

func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return Inventory{}
	}
	return maps.Clone(inv)
}

// PlayerState is the whole mutable player/economy state. Only the
// orchestrator mutates it; screens receive clones.
type PlayerState struct {
	Username         string
	Funds            Money
	Ingredients      Inventory
	BreadInventory   int
	DishesToClean    int
	MaxBreadCapacity int
	CurrentDay       int
	Reputation       float64
	CurrentDayDemand int
}

func (p PlayerState) Clone() PlayerState {
	out := p
	out.Ingredients = p.Ingredients.Clone()
	return out
}

// Ledger accumulates one day's money flows. It is reset when shopping
// starts.
type Ledger struct {
	Sales    Money
	Expenses Money
	Tips     Money
}

func (l Ledger) Net() Money {
	return l.Sales + l.Tips - l.Expenses
}

func clampReputation(v float64) float64 {
	if v < MinReputation {
		return MinReputation
	}
	if v > MaxReputation {
		return MaxReputation
	}
	return v
}

package screens

import (
	"fmt"
	"math/rand/v2"

	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type Order struct {
	base
	day    int
	orders []game.CustomerOrder
	done   func([]game.CustomerOrder)
}

// NewOrder draws the day's customer queue from the player's reputation.
func NewOrder(d scene.Deps, econ game.Economy, rng *rand.Rand, p game.PlayerState, done func([]game.CustomerOrder)) *Order {
	o := &Order{
		day:    p.CurrentDay,
		orders: econ.GenerateOrders(rng, p.Reputation),
		done:   done,
	}
	o.init(d, "order", o)
	return o
}

func (o *Order) Orders() []game.CustomerOrder {
	return append([]game.CustomerOrder(nil), o.orders...)
}

func (o *Order) View() any {
	total := 0
	lines := make([]string, 0, len(o.orders)+2)
	for _, ord := range o.orders {
		lines = append(lines, fmt.Sprintf("%-10s %2d cookie%s", ord.Customer, ord.Cookies, pluralS(ord.Cookies)))
		total += ord.Cookies
	}
	lines = append(lines, "", fmt.Sprintf("Total wanted today: %d", total))
	return Panel{
		Title:    fmt.Sprintf("Day %d: Order Board", o.day),
		Subtitle: fmt.Sprintf("%d customers are lining up", len(o.orders)),
		Lines:    lines,
	}
}

func (o *Order) Actions() []scene.Action {
	return []scene.Action{continueAction("Check the recipe")}
}

func (o *Order) Act(id string) {
	if id == ActionContinue {
		orders := o.Orders()
		o.complete(func() { o.done(orders) })
	}
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

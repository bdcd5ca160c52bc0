package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

var customerNames = []string{
	"Ada", "Bea", "Cal", "Dev", "Eli", "Fay", "Gus", "Hal",
	"Ivy", "Jun", "Kai", "Lou", "Max", "Nia", "Oli", "Pip",
}

type CustomerOrder struct {
	Customer string
	Cookies  int
}

// GenerateOrders builds the day's queue. Reputation scales the number of
// customers; the total is kept within the configured demand range.
func (e Economy) GenerateOrders(rng *rand.Rand, reputation float64) []CustomerOrder {
	base := randBetween(rng, e.cfg.CustomersMin, e.cfg.CustomersMax)
	customers := int(math.Round(float64(base) * clampReputation(reputation)))
	if customers < 1 {
		customers = 1
	}
	orders := make([]CustomerOrder, 0, customers)
	total := 0
	for i := 0; i < customers; i++ {
		n := randBetween(rng, 1, 3)
		name := customerNames[(i+rng.IntN(len(customerNames)))%len(customerNames)]
		orders = append(orders, CustomerOrder{Customer: fmt.Sprintf("%s #%d", name, i+1), Cookies: n})
		total += n
	}
	for total > e.cfg.MaxDemand && len(orders) > 0 {
		last := &orders[len(orders)-1]
		over := total - e.cfg.MaxDemand
		if last.Cookies > over {
			last.Cookies -= over
			total -= over
			break
		}
		total -= last.Cookies
		orders = orders[:len(orders)-1]
	}
	if total < e.cfg.MinDemand {
		if len(orders) == 0 {
			orders = append(orders, CustomerOrder{Customer: customerNames[0] + " #1"})
		}
		orders[len(orders)-1].Cookies += e.cfg.MinDemand - total
	}
	return orders
}

// TotalDemand sums an order list defensively. Entries with a negative count
// are dropped and logged; a nil list is zero demand.
func TotalDemand(orders []CustomerOrder, log *slog.Logger) int {
	if log == nil {
		log = slog.Default()
	}
	total := 0
	for i, o := range orders {
		if o.Cookies < 0 {
			log.Warn("dropping malformed order", "index", i, "customer", o.Customer, "cookies", o.Cookies)
			continue
		}
		total += o.Cookies
	}
	return total
}

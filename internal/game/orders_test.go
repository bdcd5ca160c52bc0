package game

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestGenerateOrdersWithinDemandRange(t *testing.T) {
	e := testEconomy(t)
	cfg := e.Config()
	rng := SeededRNG(21)
	for _, rep := range []float64{MinReputation, 1.0, MaxReputation} {
		for i := 0; i < 100; i++ {
			orders := e.GenerateOrders(rng, rep)
			total := TotalDemand(orders, nil)
			if total < cfg.MinDemand || total > cfg.MaxDemand {
				t.Fatalf("demand %d outside %d..%d (rep %.2f)", total, cfg.MinDemand, cfg.MaxDemand, rep)
			}
			for _, o := range orders {
				if o.Cookies < 0 || o.Customer == "" {
					t.Fatalf("bad order %+v", o)
				}
			}
		}
	}
}

func TestHigherReputationBringsMoreCustomers(t *testing.T) {
	e := testEconomy(t)
	low, high := 0, 0
	rngLow, rngHigh := SeededRNG(5), SeededRNG(5)
	for i := 0; i < 200; i++ {
		low += len(e.GenerateOrders(rngLow, MinReputation))
		high += len(e.GenerateOrders(rngHigh, MaxReputation))
	}
	if high <= low {
		t.Fatalf("expected more customers at high reputation, low=%d high=%d", low, high)
	}
}

func TestTotalDemandDropsMalformedOrders(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	got := TotalDemand([]CustomerOrder{{Customer: "a", Cookies: 2}, {Customer: "b", Cookies: -4}, {Customer: "c", Cookies: 1}}, log)
	if got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if !strings.Contains(buf.String(), "malformed") {
		t.Fatalf("expected warning for dropped order")
	}
	if TotalDemand(nil, log) != 0 {
		t.Fatalf("expected zero demand for nil orders")
	}
}

package game

// DaySummary is the read-only report shown at the end of a day.
type DaySummary struct {
	Day           int
	Ledger        Ledger
	Funds         Money
	Reputation    float64
	Demand        int
	CookiesSold   int
	DishesCleaned int
	Dishes        int
	Fine          Money
	Skipped       bool
}

func NewDaySummary(p PlayerState, l Ledger, bake BakeOutcome, clean CleaningOutcome) DaySummary {
	day := p.CurrentDay - 1
	if day < 1 {
		day = 1
	}
	return DaySummary{
		Day:           day,
		Ledger:        l,
		Funds:         p.Funds,
		Reputation:    p.Reputation,
		Demand:        p.CurrentDayDemand,
		CookiesSold:   bake.CookiesSold,
		DishesCleaned: min(clean.Cleaned, clean.Dishes),
		Dishes:        clean.Dishes,
		Fine:          clean.Fine,
		Skipped:       clean.Skipped,
	}
}

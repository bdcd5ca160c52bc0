package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the tunable economy and minigame constants. It is built once
// at startup and passed by value to everything that needs it.
type Config struct {
	StartingFunds      float64
	StartingReputation float64
	WinThreshold       float64
	CookiePrice        float64
	TipPerCorrect      float64
	CleaningSkipFine   float64
	DishFine           float64
	MaxBreadCapacity   int

	MinDemand    int
	MaxDemand    int
	CustomersMin int
	CustomersMax int

	BakingDuration   time.Duration
	CleaningDuration time.Duration
	BakingTarget     int
	CleaningTarget   int
	CleaningShuffles int
	FeedbackDelay    time.Duration
	MistakeDelay     time.Duration
	AnimationLength  time.Duration

	// PriceMin and PriceMax override catalog price bounds, keyed by
	// lowercase ingredient name.
	PriceMin map[string]float64
	PriceMax map[string]float64
}

func Default() Config {
	return Config{
		StartingFunds:      250,
		StartingReputation: 1.0,
		WinThreshold:       1000,
		CookiePrice:        12,
		TipPerCorrect:      1,
		CleaningSkipFine:   50,
		DishFine:           10,
		MaxBreadCapacity:   50,

		MinDemand:    3,
		MaxDemand:    30,
		CustomersMin: 3,
		CustomersMax: 8,

		BakingDuration:   60 * time.Second,
		CleaningDuration: 60 * time.Second,
		BakingTarget:     5,
		CleaningTarget:   5,
		CleaningShuffles: 3,
		FeedbackDelay:    500 * time.Millisecond,
		MistakeDelay:     800 * time.Millisecond,
		AnimationLength:  3 * time.Second,

		PriceMin: map[string]float64{},
		PriceMax: map[string]float64{},
	}
}

// Clone returns a copy that shares no map with c.
func (c Config) Clone() Config {
	out := c
	out.PriceMin = make(map[string]float64, len(c.PriceMin))
	for k, v := range c.PriceMin {
		out.PriceMin[k] = v
	}
	out.PriceMax = make(map[string]float64, len(c.PriceMax))
	for k, v := range c.PriceMax {
		out.PriceMax[k] = v
	}
	return out
}

func (c Config) Validate() error {
	var errs []error
	if c.WinThreshold <= 0 {
		errs = append(errs, fmt.Errorf("win_threshold must be positive, got %v", c.WinThreshold))
	}
	if c.CookiePrice <= 0 {
		errs = append(errs, fmt.Errorf("cookie_price must be positive, got %v", c.CookiePrice))
	}
	if c.StartingReputation < 0.2 || c.StartingReputation > 1.5 {
		errs = append(errs, fmt.Errorf("starting_reputation must be within [0.2, 1.5], got %v", c.StartingReputation))
	}
	if c.MinDemand < 0 || c.MinDemand > c.MaxDemand {
		errs = append(errs, fmt.Errorf("demand range invalid: %d..%d", c.MinDemand, c.MaxDemand))
	}
	if c.CustomersMin < 1 || c.CustomersMin > c.CustomersMax {
		errs = append(errs, fmt.Errorf("customer range invalid: %d..%d", c.CustomersMin, c.CustomersMax))
	}
	if c.BakingDuration <= 0 || c.CleaningDuration <= 0 {
		errs = append(errs, errors.New("minigame durations must be positive"))
	}
	if c.BakingTarget < 1 || c.CleaningTarget < 1 {
		errs = append(errs, errors.New("minigame targets must be at least 1"))
	}
	if c.CleaningShuffles < 0 {
		errs = append(errs, fmt.Errorf("cleaning_shuffles must not be negative, got %d", c.CleaningShuffles))
	}
	for name, lo := range c.PriceMin {
		if lo < 0 {
			errs = append(errs, fmt.Errorf("price_min.%s must not be negative, got %v", name, lo))
		}
		if hi, ok := c.PriceMax[name]; ok && lo > hi {
			errs = append(errs, fmt.Errorf("price range for %s invalid: %v..%v", name, lo, hi))
		}
	}
	return errors.Join(errs...)
}

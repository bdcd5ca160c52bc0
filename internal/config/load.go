package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/appengine-ltd/cookie-tycoon/internal/parser"
)

const DefaultFile = "cookie-tycoon.conf"

type setter func(c *Config, value string) error

var fields = map[string]setter{
	"starting_funds":      floatField(func(c *Config) *float64 { return &c.StartingFunds }),
	"starting_reputation": floatField(func(c *Config) *float64 { return &c.StartingReputation }),
	"win_threshold":       floatField(func(c *Config) *float64 { return &c.WinThreshold }),
	"cookie_price":        floatField(func(c *Config) *float64 { return &c.CookiePrice }),
	"tip_per_correct":     floatField(func(c *Config) *float64 { return &c.TipPerCorrect }),
	"cleaning_skip_fine":  floatField(func(c *Config) *float64 { return &c.CleaningSkipFine }),
	"dish_fine":           floatField(func(c *Config) *float64 { return &c.DishFine }),
	"max_bread_capacity":  intField(func(c *Config) *int { return &c.MaxBreadCapacity }),
	"min_demand":          intField(func(c *Config) *int { return &c.MinDemand }),
	"max_demand":          intField(func(c *Config) *int { return &c.MaxDemand }),
	"customers_min":       intField(func(c *Config) *int { return &c.CustomersMin }),
	"customers_max":       intField(func(c *Config) *int { return &c.CustomersMax }),
	"baking_duration":     secondsField(func(c *Config) *time.Duration { return &c.BakingDuration }),
	"cleaning_duration":   secondsField(func(c *Config) *time.Duration { return &c.CleaningDuration }),
	"baking_target":       intField(func(c *Config) *int { return &c.BakingTarget }),
	"cleaning_target":     intField(func(c *Config) *int { return &c.CleaningTarget }),
	"cleaning_shuffles":   intField(func(c *Config) *int { return &c.CleaningShuffles }),
	"feedback_delay_ms":   millisField(func(c *Config) *time.Duration { return &c.FeedbackDelay }),
	"mistake_delay_ms":    millisField(func(c *Config) *time.Duration { return &c.MistakeDelay }),
	"animation_seconds":   secondsField(func(c *Config) *time.Duration { return &c.AnimationLength }),
}

// Load reads a key=value config file on top of Default(). A missing file is
// not an error. Invalid values fall back to their defaults.
func Load(path string, log *slog.Logger) (Config, error) {
	if log == nil {
		log = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("config file not found, using defaults", "path", path)
			return Default(), nil
		}
		return Default(), fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f, log)
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	log.Info("config loaded", "path", path)
	return cfg, nil
}

// Parse applies key=value lines from r to Default(). Blank lines and #
// comments are ignored, malformed lines and unknown keys are skipped with a
// warning.
func Parse(r io.Reader, log *slog.Logger) (Config, error) {
	if log == nil {
		log = slog.Default()
	}
	cfg := Default()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			log.Warn("skipping malformed config line", "line", lineNo, "text", line)
			continue
		}
		if err := apply(&cfg, key, value); err != nil {
			log.Warn("skipping config entry", "line", lineNo, "key", key, "err", err)
		}
	}
	if err := sc.Err(); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("config values out of range, using defaults for the affected fields", "err", err)
		cfg = repair(cfg)
	}
	return cfg, nil
}

var errUnknownKey = errors.New("unknown key")

func apply(cfg *Config, key, value string) error {
	if name, ok := strings.CutPrefix(key, "price_min."); ok && name != "" {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		cfg.PriceMin[name] = v
		return nil
	}
	if name, ok := strings.CutPrefix(key, "price_max."); ok && name != "" {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		cfg.PriceMax[name] = v
		return nil
	}
	set, ok := fields[key]
	if !ok {
		if hint, found := parser.Closest(key, knownKeys()); found {
			return fmt.Errorf("%w (did you mean %q?)", errUnknownKey, hint)
		}
		return errUnknownKey
	}
	return set(cfg, value)
}

func knownKeys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return keys
}

// repair resets every field group that fails validation to its default.
func repair(cfg Config) Config {
	def := Default()
	if cfg.WinThreshold <= 0 {
		cfg.WinThreshold = def.WinThreshold
	}
	if cfg.CookiePrice <= 0 {
		cfg.CookiePrice = def.CookiePrice
	}
	if cfg.StartingReputation < 0.2 || cfg.StartingReputation > 1.5 {
		cfg.StartingReputation = def.StartingReputation
	}
	if cfg.MinDemand < 0 || cfg.MinDemand > cfg.MaxDemand {
		cfg.MinDemand, cfg.MaxDemand = def.MinDemand, def.MaxDemand
	}
	if cfg.CustomersMin < 1 || cfg.CustomersMin > cfg.CustomersMax {
		cfg.CustomersMin, cfg.CustomersMax = def.CustomersMin, def.CustomersMax
	}
	if cfg.BakingDuration <= 0 {
		cfg.BakingDuration = def.BakingDuration
	}
	if cfg.CleaningDuration <= 0 {
		cfg.CleaningDuration = def.CleaningDuration
	}
	if cfg.BakingTarget < 1 {
		cfg.BakingTarget = def.BakingTarget
	}
	if cfg.CleaningTarget < 1 {
		cfg.CleaningTarget = def.CleaningTarget
	}
	if cfg.CleaningShuffles < 0 {
		cfg.CleaningShuffles = def.CleaningShuffles
	}
	for name, lo := range cfg.PriceMin {
		hi, ok := cfg.PriceMax[name]
		if lo < 0 || (ok && lo > hi) {
			delete(cfg.PriceMin, name)
			delete(cfg.PriceMax, name)
		}
	}
	return cfg
}

func floatField(ptr func(*Config) *float64) setter {
	return func(c *Config, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*ptr(c) = v
		return nil
	}
}

func intField(ptr func(*Config) *int) setter {
	return func(c *Config, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*ptr(c) = v
		return nil
	}
}

func secondsField(ptr func(*Config) *time.Duration) setter {
	return func(c *Config, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*ptr(c) = time.Duration(v * float64(time.Second))
		return nil
	}
}

func millisField(ptr func(*Config) *time.Duration) setter {
	return func(c *Config, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*ptr(c) = time.Duration(v) * time.Millisecond
		return nil
	}
}

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestParseOverridesKnownKeys(t *testing.T) {
	input := `
# economy
starting_funds = 300
win_threshold=1500.5
cleaning_duration = 45
feedback_delay_ms = 250
price_min.flour = 0.25
price_max.flour = 0.75
`
	var logs bytes.Buffer
	cfg, err := Parse(strings.NewReader(input), testLogger(&logs))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.StartingFunds != 300 {
		t.Fatalf("expected starting funds 300, got %v", cfg.StartingFunds)
	}
	if cfg.WinThreshold != 1500.5 {
		t.Fatalf("expected win threshold 1500.5, got %v", cfg.WinThreshold)
	}
	if cfg.CleaningDuration != 45*time.Second {
		t.Fatalf("expected 45s cleaning, got %v", cfg.CleaningDuration)
	}
	if cfg.FeedbackDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms feedback delay, got %v", cfg.FeedbackDelay)
	}
	if cfg.PriceMin["flour"] != 0.25 || cfg.PriceMax["flour"] != 0.75 {
		t.Fatalf("expected flour price override, got %v..%v", cfg.PriceMin["flour"], cfg.PriceMax["flour"])
	}
	if cfg.CookiePrice != Default().CookiePrice {
		t.Fatalf("expected untouched keys to keep defaults")
	}
}

func TestParseSkipsMalformedAndUnknown(t *testing.T) {
	input := "this line has no equals\nwin_treshold = 10\ncookie_price = abc\ntip_per_correct = 2\n"
	var logs bytes.Buffer
	cfg, err := Parse(strings.NewReader(input), testLogger(&logs))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.WinThreshold != Default().WinThreshold {
		t.Fatalf("unknown key must not change win threshold")
	}
	if cfg.CookiePrice != Default().CookiePrice {
		t.Fatalf("bad number must not change cookie price")
	}
	if cfg.TipPerCorrect != 2 {
		t.Fatalf("expected valid line after bad ones to apply, got %v", cfg.TipPerCorrect)
	}
	out := logs.String()
	if !strings.Contains(out, "malformed") {
		t.Fatalf("expected malformed line warning, got: %s", out)
	}
	if !strings.Contains(out, "win_threshold") {
		t.Fatalf("expected did-you-mean hint for win_treshold, got: %s", out)
	}
}

func TestParseRepairsOutOfRangeValues(t *testing.T) {
	input := "min_demand = 40\nmax_demand = 10\nbaking_duration = 0\nstarting_reputation = 9\n"
	cfg, err := Parse(strings.NewReader(input), testLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	def := Default()
	if cfg.MinDemand != def.MinDemand || cfg.MaxDemand != def.MaxDemand {
		t.Fatalf("expected demand range reset, got %d..%d", cfg.MinDemand, cfg.MaxDemand)
	}
	if cfg.BakingDuration != def.BakingDuration {
		t.Fatalf("expected baking duration reset, got %v", cfg.BakingDuration)
	}
	if cfg.StartingReputation != def.StartingReputation {
		t.Fatalf("expected reputation reset, got %v", cfg.StartingReputation)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("repaired config must validate: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.conf"), testLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.StartingFunds != Default().StartingFunds {
		t.Fatalf("expected defaults")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("cookie_price = 20\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path, testLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CookiePrice != 20 {
		t.Fatalf("expected cookie price 20, got %v", cfg.CookiePrice)
	}
}

func TestCloneDoesNotShareMaps(t *testing.T) {
	cfg := Default()
	cfg.PriceMin["sugar"] = 1
	cp := cfg.Clone()
	cp.PriceMin["sugar"] = 5
	if cfg.PriceMin["sugar"] != 1 {
		t.Fatalf("expected clone to own its maps")
	}
}

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/cookie-tycoon/internal/catalog"
	"github.com/appengine-ltd/cookie-tycoon/internal/config"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/screens"
)

func pressUntil(t *testing.T, o *Orchestrator, k loop.Key, want game.Phase) {
	t.Helper()
	o.Press(k)
	require.Equal(t, want, o.Phase())
}

func TestDefaultScreensPlayOneDay(t *testing.T) {
	cfg := config.Default()
	cfg.AnimationLength = time.Second
	rng := game.SeededRNG(9)
	store := prefs.NewMemory()
	econ := game.NewEconomy(cfg, catalog.Default())
	o, err := New(Options{
		Config:  cfg,
		Factory: screens.NewFactory(econ, rng, store, nil),
		RNG:     rng,
		Prefs:   store,
	})
	require.NoError(t, err)
	o.Start()

	for _, r := range "Ada" {
		o.Press(loop.Rune(r))
	}
	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseStoryline)
	saved, _ := store.Load()
	assert.Equal(t, "Ada", saved.Username)

	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseHowToPlay)
	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseOrder)
	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseRecipeBook)
	demand := o.Player().CurrentDayDemand
	assert.GreaterOrEqual(t, demand, cfg.MinDemand)
	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseShopping)

	require.True(t, o.Activate(screens.ActionAddRecipe))
	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseBaking)
	assert.Equal(t, 1, o.Player().DishesToClean)

	pressUntil(t, o, loop.Rune('s'), game.PhasePostBakingAnimation)
	require.Eventually(t, func() bool {
		o.Advance(100 * time.Millisecond)
		return o.Phase() == game.PhaseCleaning
	}, 2*time.Second, time.Millisecond)

	pressUntil(t, o, loop.Rune('s'), game.PhaseDaySummary)
	p := o.Player()
	assert.InDelta(t, 0.8, p.Reputation, 1e-9)
	assert.Equal(t, 2, p.CurrentDay)
	assert.Equal(t, game.FromFloat(cfg.CleaningSkipFine), o.Ledger().Expenses-mustRecipeCost(t, o))

	pressUntil(t, o, loop.Code(loop.KeyEnter), game.PhaseNewDayAnimation)
	require.Eventually(t, func() bool {
		o.Advance(100 * time.Millisecond)
		return o.Phase() == game.PhaseOrder
	}, 2*time.Second, time.Millisecond)
	assert.False(t, o.Bus().Attached())
	assert.Len(t, o.Stage().Layers(), 1)
}

func mustRecipeCost(t *testing.T, o *Orchestrator) game.Money {
	t.Helper()
	return o.Economy().RecipeCost(o.Prices())
}

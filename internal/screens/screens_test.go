package screens

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/cookie-tycoon/internal/catalog"
	"github.com/appengine-ltd/cookie-tycoon/internal/config"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

func newDeps() scene.Deps {
	return scene.Deps{Sched: loop.NewScheduler(), Bus: loop.NewBus(), Stage: scene.NewStage()}
}

func typeText(d scene.Deps, s string) {
	for _, r := range s {
		d.Bus.Dispatch(loop.Rune(r))
	}
}

func testEconomy() game.Economy {
	return game.NewEconomy(config.Default(), catalog.Default())
}

func fixedPrices() game.PriceList {
	return game.PriceList{
		{Name: "Flour", Unit: game.FromFloat(1)},
		{Name: "Sugar", Unit: game.FromFloat(1)},
		{Name: "Butter", Unit: game.FromFloat(0.5)},
		{Name: "Chocolate", Unit: game.FromFloat(2)},
		{Name: "BakingSoda", Unit: game.FromFloat(0.5)},
	}
}

func TestLoginRejectsEmptyName(t *testing.T) {
	d := newDeps()
	called := false
	l := NewLogin(d, prefs.NewMemory(), func(string) { called = true })

	typeText(d, "   ")
	d.Bus.Dispatch(loop.Code(loop.KeyEnter))

	assert.False(t, called)
	assert.Equal(t, "Please enter a name", l.View().(Panel).Message)
	assert.Equal(t, "login", d.Bus.Owner())
}

func TestLoginSavesNameAndCapsLength(t *testing.T) {
	d := newDeps()
	store := prefs.NewMemory()
	var got string
	l := NewLogin(d, store, func(name string) { got = name })

	typeText(d, "Sam the baker from the hill")
	assert.Len(t, l.Input(), prefs.MaxUsernameLen)
	d.Bus.Dispatch(loop.Code(loop.KeyEnter))

	assert.Equal(t, "Sam the baker fr", got)
	p, _ := store.Load()
	assert.Equal(t, got, p.Username)

	l.Cleanup()
	l.Cleanup()
	assert.False(t, d.Bus.Attached())
	assert.Empty(t, d.Stage.Layers())
}

func TestLoginPrefillsSavedName(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, store.Save(prefs.Prefs{Username: "Rae"}))
	l := NewLogin(newDeps(), store, func(string) {})
	assert.Equal(t, "Rae", l.Input())
}

func TestStoryUsesSavedName(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, store.Save(prefs.Prefs{Username: "Rae"}))
	s := NewStory(newDeps(), store, "ignored", func() {})
	assert.Contains(t, s.View().(Panel).Lines[0], "Rae")
}

type gatedSource struct {
	calls     chan chan string
	ignoreCtx bool
}

func (g *gatedSource) Instructions(ctx context.Context) (string, error) {
	ch := make(chan string)
	g.calls <- ch
	if g.ignoreCtx {
		return <-ch, nil
	}
	select {
	case text := <-ch:
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestHowToPlayDropsStaleLoad(t *testing.T) {
	d := newDeps()
	src := &gatedSource{calls: make(chan chan string, 2), ignoreCtx: true}
	h := NewHowToPlay(d, src, func() {})
	first := <-src.calls

	h.Rebuild(40)
	second := <-src.calls

	second <- "new text"
	require.Eventually(t, func() bool {
		d.Sched.Advance(0)
		return h.Loaded()
	}, time.Second, time.Millisecond)
	assert.Equal(t, "new text", h.Text())

	first <- "old text"
	require.Eventually(t, func() bool { return d.Sched.Backlog() == 1 }, time.Second, time.Millisecond)
	d.Sched.Advance(0)
	assert.Equal(t, "new text", h.Text())
	assert.True(t, h.Loaded())
}

type failingSource struct{}

func (failingSource) Instructions(context.Context) (string, error) {
	return "", errors.New("offline")
}

func TestHowToPlayFallsBack(t *testing.T) {
	d := newDeps()
	h := NewHowToPlay(d, failingSource{}, func() {})
	require.Eventually(t, func() bool {
		d.Sched.Advance(0)
		return h.Loaded()
	}, time.Second, time.Millisecond)
	assert.Equal(t, fallbackInstructions, h.Text())
}

func TestHowToPlayIgnoresLoadAfterCleanup(t *testing.T) {
	d := newDeps()
	src := &gatedSource{calls: make(chan chan string, 1)}
	h := NewHowToPlay(d, src, func() {})
	<-src.calls
	h.Cleanup()

	require.Eventually(t, func() bool { return d.Sched.Backlog() == 1 }, time.Second, time.Millisecond)
	d.Sched.Advance(0)
	assert.False(t, h.Loaded())
}

func TestEmbeddedInstructions(t *testing.T) {
	text, err := FSInstructions{FS: Assets(), Path: "howto.txt"}.Instructions(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "dirty dish")
}

func TestOrderCompletesOnce(t *testing.T) {
	d := newDeps()
	econ := testEconomy()
	calls := 0
	var got []game.CustomerOrder
	o := NewOrder(d, econ, game.SeededRNG(3), econ.NewPlayer("x"), func(orders []game.CustomerOrder) {
		calls++
		got = orders
	})

	o.Act(ActionContinue)
	o.Act(ActionContinue)

	assert.Equal(t, 1, calls)
	total := game.TotalDemand(got, nil)
	cfg := econ.Config()
	assert.GreaterOrEqual(t, total, cfg.MinDemand)
	assert.LessOrEqual(t, total, cfg.MaxDemand)
}

func TestShoppingQuickSelectAndCheckout(t *testing.T) {
	d := newDeps()
	econ := testEconomy()
	p := econ.NewPlayer("x")
	var cart game.Cart
	s := NewShopping(d, econ, fixedPrices(), p, func(c game.Cart) { cart = c })

	typeText(d, "suger")
	d.Bus.Dispatch(loop.Code(loop.KeyTab))
	assert.Equal(t, "Sugar", s.Selected())

	d.Bus.Dispatch(loop.Code(loop.KeyRight))
	d.Bus.Dispatch(loop.Rune('+'))
	d.Bus.Dispatch(loop.Rune('-'))
	d.Bus.Dispatch(loop.Code(loop.KeyRight))

	typeText(d, "choc")
	d.Bus.Dispatch(loop.Code(loop.KeyTab))
	assert.Equal(t, "Chocolate", s.Selected())
	d.Bus.Dispatch(loop.Code(loop.KeyRight))

	assert.Equal(t, game.FromFloat(4), s.Total())
	d.Bus.Dispatch(loop.Code(loop.KeyEnter))
	assert.Equal(t, game.Cart{"Sugar": 2, "Chocolate": 1}, cart)
}

func TestShoppingRejectsOverBudget(t *testing.T) {
	d := newDeps()
	econ := testEconomy()
	p := econ.NewPlayer("x")
	p.Funds = game.FromFloat(3)
	called := false
	s := NewShopping(d, econ, fixedPrices(), p, func(game.Cart) { called = true })

	s.Select("Chocolate")
	s.Add("Chocolate", 2)
	s.Checkout()

	assert.False(t, called)
	assert.Contains(t, s.Message(), "Not enough money")
	assert.Equal(t, game.Cart{"Chocolate": 2}, s.Cart())
}

func TestShoppingLeftNeverGoesNegative(t *testing.T) {
	d := newDeps()
	econ := testEconomy()
	s := NewShopping(d, econ, fixedPrices(), econ.NewPlayer("x"), func(game.Cart) {})
	d.Bus.Dispatch(loop.Code(loop.KeyLeft))
	assert.Empty(t, s.Cart())
}

func TestShoppingAddRecipeCoversOneCookie(t *testing.T) {
	d := newDeps()
	econ := testEconomy()
	s := NewShopping(d, econ, fixedPrices(), econ.NewPlayer("x"), func(game.Cart) {})
	s.Act(ActionAddRecipe)
	assert.Equal(t, 1, s.View().(ShoppingView).Cookies)
}

func TestEndingChoices(t *testing.T) {
	cases := []struct {
		action string
		want   game.EndChoice
	}{
		{ActionPlayAgain, game.ChoicePlayAgain},
		{ActionLogout, game.ChoiceLogout},
		{ActionQuit, game.ChoiceQuit},
	}
	for _, tc := range cases {
		var got game.EndChoice = -1
		e := NewEnding(newDeps(), true, game.PlayerState{}, game.Units(1000), func(c game.EndChoice) { got = c })
		e.Act(tc.action)
		if got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.action, got, tc.want)
		}
	}
}

func TestAnimationLoadsAndPlays(t *testing.T) {
	d := newDeps()
	assets := fstest.MapFS{
		"anim/spin/01.txt": {Data: []byte("|")},
		"anim/spin/02.txt": {Data: []byte("/")},
		"anim/spin/03.txt": {Data: []byte("-")},
	}
	done := 0
	a := NewAnimation(d, assets, "spin", "spinning", 3*time.Second, func() { done++ })

	require.NoError(t, a.Load(context.Background()))
	d.Sched.Advance(0)
	a.Play()
	assert.Equal(t, "|", a.View().(Frame).Art)

	d.Sched.Advance(time.Second)
	assert.Equal(t, "/", a.View().(Frame).Art)

	d.Sched.Advance(2 * time.Second)
	assert.Equal(t, 1, done)
	assert.Zero(t, d.Sched.Pending())
}

func TestAnimationLoadErrors(t *testing.T) {
	a := NewAnimation(newDeps(), fstest.MapFS{}, "missing", "", time.Second, func() {})
	assert.Error(t, a.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewAnimation(newDeps(), Assets(), "newday", "", time.Second, func() {})
	assert.ErrorIs(t, b.Load(ctx), context.Canceled)
}

func TestAnimationCleanupStopsTimers(t *testing.T) {
	d := newDeps()
	done := 0
	a := NewAnimation(d, Assets(), "postbaking", "", 3*time.Second, func() { done++ })
	require.NoError(t, a.Load(context.Background()))
	d.Sched.Advance(0)
	a.Play()
	a.Cleanup()
	a.Cleanup()

	d.Sched.Advance(time.Minute)
	assert.Zero(t, done)
	assert.Zero(t, d.Sched.Pending())
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆ (1.00)", Stars(1.0))
	assert.Equal(t, "★★★★★ (1.50)", Stars(1.5))
}

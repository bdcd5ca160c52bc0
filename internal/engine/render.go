package engine

import (
	"context"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// render tears down whatever is live and builds the collaborator for next.
// Teardown always completes before construction starts.
func (o *Orchestrator) render(next game.Phase) {
	o.teardown()
	o.gen.Next()
	o.phase = next
	o.stage.SetBackground(next.HasBackground())

	o.rendering = true
	defer func() { o.rendering = false }()

	d := o.deps(next)
	done := o.gate()
	cfg := o.econ.Config()

	switch next {
	case game.PhaseLogin:
		o.screen = o.factory.Login(d, func(name string) {
			done(func() {
				o.player.Username = name
				o.log.Info("player logged in", "username", name)
				o.advance(game.Outcome{})
			})
		})
	case game.PhaseStoryline:
		o.screen = o.factory.Story(d, o.player.Username, func() {
			done(func() { o.advance(game.Outcome{}) })
		})
	case game.PhaseHowToPlay:
		o.screen = o.factory.HowToPlay(d, func() {
			done(func() { o.advance(game.Outcome{}) })
		})
	case game.PhaseOrder:
		o.econ.StartDay(&o.player)
		o.prices = o.econ.RollPrices(o.rng)
		o.screen = o.factory.Order(d, o.player.Clone(), func(orders []game.CustomerOrder) {
			done(func() { o.takeOrders(orders) })
		})
	case game.PhaseRecipeBook:
		o.screen = o.factory.RecipeBook(d, o.Prices(), o.player.Clone(), func() {
			done(func() { o.advance(game.Outcome{}) })
		})
	case game.PhaseShopping:
		o.ledger = game.Ledger{}
		o.screen = o.factory.Shopping(d, o.Prices(), o.player.Clone(), func(cart game.Cart) {
			done(func() { o.checkout(cart) })
		})
	case game.PhaseBaking:
		o.screen = o.factory.Minigame(d, minigame.Baking(cfg), o.lastBake.CookiesSold, func(res minigame.Result, skipped bool) {
			done(func() { o.finishBaking(res, skipped) })
		})
	case game.PhaseCleaning:
		o.screen = o.factory.Minigame(d, minigame.Cleaning(cfg), o.player.DishesToClean, func(res minigame.Result, skipped bool) {
			done(func() { o.finishCleaning(res, skipped) })
		})
	case game.PhaseDaySummary:
		o.audio.Play(audio.CueDayEnd)
		summary := game.NewDaySummary(o.player, o.ledger, o.lastBake, o.lastClean)
		o.screen = o.factory.Summary(d, summary, func() {
			done(o.closeDay)
		})
	case game.PhaseVictory, game.PhaseDefeat:
		won := next == game.PhaseVictory
		o.recordEnding(won)
		o.screen = o.factory.Ending(d, won, o.player.Clone(), func(choice game.EndChoice) {
			done(func() { o.endGame(choice) })
		})
	case game.PhasePostBakingAnimation, game.PhaseNewDayAnimation:
		o.renderAnimation(d, next, done)
	case game.PhaseGameOver:
		o.log.Info("game over", "funds", o.player.Funds.String(), "day", o.player.CurrentDay)
	}
}

func (o *Orchestrator) takeOrders(orders []game.CustomerOrder) {
	o.player.CurrentDayDemand = game.TotalDemand(orders, o.log)
	o.log.Info("orders taken", "customers", len(orders), "demand", o.player.CurrentDayDemand)
	o.advance(game.Outcome{})
}

func (o *Orchestrator) checkout(cart game.Cart) {
	spent, err := o.econ.Purchase(&o.player, &o.ledger, cart, o.prices)
	if err != nil {
		o.log.Warn("purchase rejected, reopening market", "err", err)
		o.render(game.PhaseShopping)
		return
	}
	if spent > 0 {
		o.audio.Play(audio.CueCoins)
	}
	canBake := o.econ.CanMakeCookies(o.player)
	o.lastBake = game.BakeOutcome{}
	o.lastClean = game.CleaningOutcome{}
	if canBake {
		o.lastBake = o.econ.Bake(&o.player, &o.ledger)
		o.log.Info("cookies baked",
			"sold", o.lastBake.CookiesSold,
			"revenue", o.lastBake.Revenue.String(),
			"demand", o.player.CurrentDayDemand,
		)
	} else {
		o.player.BreadInventory = 0
		o.player.DishesToClean = 0
		o.log.Info("not enough ingredients to bake, going straight to cleaning", "spent", spent.String())
	}
	o.advance(game.Outcome{CanBake: canBake})
}

func (o *Orchestrator) finishBaking(res minigame.Result, skipped bool) {
	tips := o.econ.ApplyTips(&o.player, &o.ledger, res.CorrectAnswers)
	o.log.Info("baking finished", "correct", res.CorrectAnswers, "skipped", skipped, "tips", tips.String())
	o.advance(game.Outcome{})
}

func (o *Orchestrator) finishCleaning(res minigame.Result, skipped bool) {
	o.lastClean = o.econ.ApplyCleaning(&o.player, &o.ledger, res.CorrectAnswers, skipped)
	o.log.Info("cleaning finished",
		"cleaned", o.lastClean.Cleaned,
		"dishes", o.lastClean.Dishes,
		"skipped", skipped,
		"fine", o.lastClean.Fine.String(),
		"reputation", o.player.Reputation,
	)
	o.advance(game.Outcome{})
}

func (o *Orchestrator) closeDay() {
	o.advance(game.Outcome{
		Won:      o.econ.HasWon(o.player),
		Bankrupt: o.econ.CheckBankruptcy(o.player),
	})
}

func (o *Orchestrator) endGame(choice game.EndChoice) {
	if choice != game.ChoiceQuit {
		o.reset()
	}
	o.advance(game.Outcome{Choice: choice})
}

// reset starts a fresh game for the same player.
func (o *Orchestrator) reset() {
	o.econ.Reset(&o.player)
	o.ledger = game.Ledger{}
	o.prices = nil
	o.lastBake = game.BakeOutcome{}
	o.lastClean = game.CleaningOutcome{}
	o.newRun()
	o.log.Info("game reset", "username", o.player.Username)
}

func (o *Orchestrator) recordEnding(won bool) {
	if o.prefs == nil {
		return
	}
	funds := int64(o.player.Funds)
	err := prefs.Update(o.prefs, func(p *prefs.Prefs) {
		if won {
			p.GamesWon++
		} else {
			p.GamesLost++
		}
		if funds > p.BestFunds {
			p.BestFunds = funds
		}
	})
	if err != nil {
		o.log.Warn("could not record result", "err", err)
	}
}

// renderAnimation mounts the animation and loads its assets in the
// background. A failed load skips straight to the next phase.
func (o *Orchestrator) renderAnimation(d scene.Deps, phase game.Phase, done func(func())) {
	anim := o.factory.Animation(d, phase, func() {
		done(func() { o.advance(game.Outcome{}) })
	})
	o.anim = anim
	o.screen = anim

	ctx, cancel := context.WithCancel(context.Background())
	o.cancelLoad = cancel
	token := o.gen.Current()
	go func() {
		err := anim.Load(ctx)
		o.sched.Post(o.gen.Guard(token, func() {
			if o.anim != anim {
				return
			}
			if err != nil {
				o.log.Warn("animation failed to load, skipping it", "phase", phase.String(), "err", err)
				o.cleanupResource("animation", anim)
				o.anim = nil
				o.screen = nil
				o.advance(game.Outcome{})
				return
			}
			anim.Play()
		}))
	}()
}

// teardown releases the live phase. Each resource is cleaned up on its own
// so a failure in one never blocks the rest.
func (o *Orchestrator) teardown() {
	if o.cancelLoad != nil {
		o.cancelLoad()
		o.cancelLoad = nil
	}
	if o.anim != nil {
		o.cleanupResource("animation", o.anim)
		if o.screen == scene.Screen(o.anim) {
			o.screen = nil
		}
		o.anim = nil
	}
	if o.screen != nil {
		o.cleanupResource("screen", o.screen)
		o.screen = nil
	}
	if n := o.stage.Clear(); n > 0 {
		o.log.Warn("detached leftover display nodes", "phase", o.phase.String(), "count", n)
	}
	if o.bus.Attached() {
		owner := o.bus.Owner()
		o.bus.Detach(owner)
		o.log.Error("keyboard listener outlived its phase", "phase", o.phase.String(), "owner", owner)
	}
}

func (o *Orchestrator) cleanupResource(kind string, s scene.Screen) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("cleanup failed", "resource", kind, "phase", o.phase.String(), "panic", r)
		}
	}()
	s.Cleanup()
}

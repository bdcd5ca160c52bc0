package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/catalog"
	"github.com/appengine-ltd/cookie-tycoon/internal/config"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type Options struct {
	Config   config.Config
	Catalog  catalog.Catalog
	Factory  Factory
	Audio    audio.Service
	Prefs    prefs.Store
	Log      *slog.Logger
	RNG      *rand.Rand
	Username string
}

// Orchestrator owns the phase machine, the player state and the day ledger.
// It is single-threaded: every method must be called from the loop
// goroutine, and background work re-enters through the scheduler.
type Orchestrator struct {
	econ    game.Economy
	factory Factory
	rng     *rand.Rand
	prefs   prefs.Store
	baseLog *slog.Logger
	log     *slog.Logger
	runID   string

	sched *loop.Scheduler
	bus   *loop.Bus
	stage *scene.Stage
	audio audio.Service

	phase     game.Phase
	started   bool
	player    game.PlayerState
	ledger    game.Ledger
	prices    game.PriceList
	lastBake  game.BakeOutcome
	lastClean game.CleaningOutcome

	screen     scene.Screen
	anim       scene.Animation
	cancelLoad context.CancelFunc
	gen        loop.Generation
	rendering  bool
}

func New(opts Options) (*Orchestrator, error) {
	if opts.Factory == nil {
		return nil, errors.New("engine: factory is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	cat := opts.Catalog
	if len(cat.Ingredients) == 0 {
		cat = catalog.Default()
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	rng := opts.RNG
	if rng == nil {
		rng = game.SeededRNG(0)
	}
	snd := opts.Audio
	if snd == nil {
		snd = audio.NewNop()
	}
	o := &Orchestrator{
		econ:    game.NewEconomy(opts.Config, cat),
		factory: opts.Factory,
		rng:     rng,
		prefs:   opts.Prefs,
		baseLog: log,
		sched:   loop.NewScheduler(),
		bus:     loop.NewBus(),
		stage:   scene.NewStage(),
		audio:   snd,
		phase:   game.PhaseLogin,
	}
	o.player = o.econ.NewPlayer(opts.Username)
	o.newRun()
	return o, nil
}

func (o *Orchestrator) newRun() {
	o.runID = uuid.NewString()
	o.log = o.baseLog.With("run_id", o.runID)
}

// Start renders the first phase. Calling it again is a no-op.
func (o *Orchestrator) Start() {
	if o.started {
		return
	}
	o.started = true
	o.log.Info("game started", "phase", game.PhaseLogin.String())
	o.render(game.PhaseLogin)
}

// Advance moves the loop clock forward, running due timers and any work
// posted from background goroutines.
func (o *Orchestrator) Advance(d time.Duration) {
	o.sched.Advance(d)
}

// Press routes a key to the attached listener, then to a matching action.
func (o *Orchestrator) Press(k loop.Key) bool {
	if o.bus.Dispatch(k) {
		return true
	}
	if o.screen == nil {
		return false
	}
	a, ok := scene.FindAction(o.screen.Actions(), k)
	if !ok {
		return false
	}
	o.screen.Act(a.ID)
	return true
}

// Activate triggers an action by id, as a mouse click on its button would.
func (o *Orchestrator) Activate(id string) bool {
	if o.screen == nil {
		return false
	}
	for _, a := range o.screen.Actions() {
		if a.ID == id && a.Enabled {
			o.audio.Play(audio.CueClick)
			o.screen.Act(id)
			return true
		}
	}
	return false
}

func (o *Orchestrator) Phase() game.Phase {
	return o.phase
}

// Done reports whether the player quit.
func (o *Orchestrator) Done() bool {
	return o.phase == game.PhaseGameOver
}

func (o *Orchestrator) Player() game.PlayerState {
	return o.player.Clone()
}

func (o *Orchestrator) Ledger() game.Ledger {
	return o.ledger
}

func (o *Orchestrator) Prices() game.PriceList {
	return append(game.PriceList(nil), o.prices...)
}

func (o *Orchestrator) Economy() game.Economy {
	return o.econ
}

func (o *Orchestrator) Screen() scene.Screen {
	return o.screen
}

func (o *Orchestrator) Stage() *scene.Stage {
	return o.stage
}

func (o *Orchestrator) Bus() *loop.Bus {
	return o.bus
}

func (o *Orchestrator) Scheduler() *loop.Scheduler {
	return o.sched
}

func (o *Orchestrator) Audio() audio.Service {
	return o.audio
}

func (o *Orchestrator) RunID() string {
	return o.runID
}

// HUD is the status strip front ends draw above every in-game screen.
type HUD struct {
	Phase      game.Phase
	Username   string
	Day        int
	Funds      game.Money
	Goal       game.Money
	Reputation float64
	Capacity   int
}

func (o *Orchestrator) HUD() HUD {
	return HUD{
		Phase:      o.phase,
		Username:   o.player.Username,
		Day:        o.player.CurrentDay,
		Funds:      o.player.Funds,
		Goal:       game.FromFloat(o.econ.Config().WinThreshold),
		Reputation: o.player.Reputation,
		Capacity:   o.player.MaxBreadCapacity,
	}
}

func (o *Orchestrator) deps(p game.Phase) scene.Deps {
	return scene.Deps{
		Sched: o.sched,
		Bus:   o.bus,
		Stage: o.stage,
		Audio: o.audio,
		Log:   o.log.With("phase", p.String()),
	}
}

// gate binds completions to the phase being rendered. A completion from an
// older phase is dropped; one fired while the next phase is still being
// constructed is deferred until construction returns.
func (o *Orchestrator) gate() func(func()) {
	token := o.gen.Current()
	phase := o.phase
	return func(fn func()) {
		if !o.gen.IsCurrent(token) {
			o.log.Debug("dropped stale completion", "from", phase.String(), "current", o.phase.String())
			return
		}
		if o.rendering {
			o.sched.Post(o.gen.Guard(token, fn))
			return
		}
		fn()
	}
}

// advance asks the transition table for the next phase and renders it.
func (o *Orchestrator) advance(out game.Outcome) {
	next, err := game.Next(o.phase, out)
	if err != nil {
		o.log.Error("transition refused", "phase", o.phase.String(), "err", err)
		return
	}
	o.log.Info("phase transition", "from", o.phase.String(), "to", next.String())
	o.render(next)
}

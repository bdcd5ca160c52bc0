package minigame

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type State int

const (
	StateChoice State = iota
	StateActive
	StateAutoCompleted
	StateTimedOut
	StateResults
	StateDone
	StateSkipped
)

var stateNames = map[State]string{
	StateChoice:        "ChoicePending",
	StateActive:        "Active",
	StateAutoCompleted: "AutoCompleted",
	StateTimedOut:      "TimedOut",
	StateResults:       "ResultsShown",
	StateDone:          "Done",
	StateSkipped:       "Skipped",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Result is what a finished run reports to the orchestrator.
type Result struct {
	CorrectAnswers int
	TotalProblems  int
	TimeRemaining  int
}

// Mistake records one wrong answer for the results screen.
type Mistake struct {
	Question      string
	UserAnswer    string
	CorrectAnswer int
}

// DoneFunc receives the result exactly once.
type DoneFunc func(res Result, skipped bool)

const (
	ActionPlay     = "play"
	ActionSkip     = "skip"
	ActionShuffle  = "shuffle"
	ActionContinue = "continue"
)

// Engine is one timed problem-solving run.
type Engine struct {
	v        Variant
	deps     scene.Deps
	rng      *rand.Rand
	quantity int
	done     DoneFunc
	owner    string

	state     State
	outcome   State
	problem   Problem
	input     string
	remaining time.Duration

	correct   int
	attempted int
	progress  int
	mistakes  []Mistake
	shuffles  int

	feedback     string
	feedbackGood bool
	waiting      bool

	ticker  *loop.Timer
	pending *loop.Timer
	gen     loop.Generation
	alive   bool
	handled bool
}

// New builds a run for quantity items and shows the choice screen. Nothing
// else happens until the player picks Play or Skip.
func New(d scene.Deps, v Variant, quantity int, rng *rand.Rand, done DoneFunc) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if v.Target < 1 {
		v.Target = 1
	}
	if v.MaxInputLen < 1 {
		v.MaxInputLen = 4
	}
	e := &Engine{
		v:         v,
		deps:      d,
		rng:       rng,
		quantity:  max(quantity, 0),
		done:      done,
		owner:     v.Name + "-minigame",
		state:     StateChoice,
		remaining: v.Duration,
		shuffles:  v.Shuffles,
		alive:     true,
	}
	if d.Stage != nil {
		d.Stage.Mount(e.owner, e)
	}
	return e
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Variant() Variant {
	return e.v
}

// Play starts the countdown and the problem loop.
func (e *Engine) Play() {
	if !e.alive || e.state != StateChoice {
		return
	}
	if err := e.deps.Bus.Attach(e.owner, e.handleKey); err != nil {
		e.deps.Logger().Error("minigame could not take keyboard", "minigame", e.v.Name, "err", err)
		return
	}
	e.state = StateActive
	e.remaining = e.v.Duration
	e.ticker = e.deps.Sched.Every(time.Second, e.guard(e.tick))
	e.nextProblem()
	e.deps.Logger().Debug("minigame started", "minigame", e.v.Name, "quantity", e.quantity)
}

// Skip ends the run from the choice screen with no answers.
func (e *Engine) Skip() {
	if !e.alive || e.state != StateChoice {
		return
	}
	e.state = StateSkipped
	e.deps.Logger().Info("minigame skipped", "minigame", e.v.Name)
	e.Cleanup()
	e.report(Result{}, true)
}

// Shuffle swaps the current problem for a new one without scoring it.
func (e *Engine) Shuffle() {
	if !e.alive || e.state != StateActive || e.waiting || e.shuffles <= 0 {
		return
	}
	e.shuffles--
	e.input = ""
	e.feedback = ""
	e.nextProblem()
}

// Continue leaves the results screen and reports.
func (e *Engine) Continue() {
	if !e.alive || e.state != StateResults {
		return
	}
	e.state = StateDone
	reported := e.correct
	if e.progress >= e.v.Target {
		reported = e.quantity
	}
	res := Result{CorrectAnswers: reported, TotalProblems: e.attempted}
	e.Cleanup()
	e.report(res, false)
}

func (e *Engine) report(res Result, skipped bool) {
	if e.handled {
		return
	}
	e.handled = true
	if e.done != nil {
		e.done(res, skipped)
	}
}

// Cleanup stops the timer, releases the keyboard and unmounts. Safe to call
// any number of times, from any state.
func (e *Engine) Cleanup() {
	if !e.alive {
		return
	}
	e.alive = false
	e.gen.Next()
	e.ticker.Stop()
	e.ticker = nil
	e.pending.Stop()
	e.pending = nil
	if e.deps.Bus != nil {
		e.deps.Bus.Detach(e.owner)
	}
	if e.deps.Stage != nil {
		e.deps.Stage.Unmount(e.owner)
	}
}

// guard binds fn to the current generation and to the engine being alive.
func (e *Engine) guard(fn func()) func() {
	return e.gen.Guard(e.gen.Current(), func() {
		if !e.alive {
			return
		}
		fn()
	})
}

func (e *Engine) tick() {
	if e.state != StateActive {
		return
	}
	e.remaining -= time.Second
	if e.remaining <= e.v.UrgentAt && e.remaining > 0 {
		e.deps.Sound().Play(audio.CueTick)
	}
	if e.remaining <= 0 {
		e.remaining = 0
		e.finish(StateTimedOut)
	}
}

func (e *Engine) handleKey(k loop.Key) bool {
	if !e.alive || e.state != StateActive {
		return false
	}
	switch {
	case k.IsDigit():
		if !e.waiting && len(e.input) < e.v.MaxInputLen {
			e.input += string(k.Rune)
		}
		return true
	case k.Code == loop.KeyBackspace:
		if !e.waiting && len(e.input) > 0 {
			e.input = e.input[:len(e.input)-1]
		}
		return true
	case k.Code == loop.KeyEnter:
		e.submit()
		return true
	}
	return false
}

func (e *Engine) submit() {
	if e.waiting {
		return
	}
	text := strings.TrimSpace(e.input)
	if text == "" {
		e.feedback = "Type an answer first"
		e.feedbackGood = false
		return
	}
	answer, err := strconv.Atoi(text)
	e.attempted++
	e.input = ""
	want := e.problem.Answer()
	if err == nil && answer == want {
		e.correct++
		e.progress++
		e.feedback = "Correct!"
		e.feedbackGood = true
		e.deps.Sound().Play(audio.CueCorrect)
		if e.progress >= e.v.Target {
			e.wait(e.v.CorrectDelay, func() { e.finish(StateAutoCompleted) })
			return
		}
		e.wait(e.v.CorrectDelay, e.nextProblem)
		return
	}
	e.mistakes = append(e.mistakes, Mistake{Question: e.problem.Question(), UserAnswer: text, CorrectAnswer: want})
	e.feedback = fmt.Sprintf("Not quite: %s = %d", e.problem.Question(), want)
	e.feedbackGood = false
	e.deps.Sound().Play(audio.CueWrong)
	e.wait(e.v.WrongDelay, e.nextProblem)
}

func (e *Engine) wait(d time.Duration, next func()) {
	e.waiting = true
	e.pending = e.deps.Sched.After(d, e.guard(func() {
		e.pending = nil
		e.waiting = false
		if e.state != StateActive {
			return
		}
		next()
	}))
}

func (e *Engine) nextProblem() {
	prev := e.problem
	for i := 0; i < 4; i++ {
		e.problem = Problem{
			A:  e.v.MinOperand + e.rng.IntN(e.v.MaxOperand-e.v.MinOperand+1),
			B:  e.v.MinOperand + e.rng.IntN(e.v.MaxOperand-e.v.MinOperand+1),
			Op: e.v.Operator,
		}
		if e.problem != prev {
			break
		}
	}
	e.input = ""
	e.feedback = ""
}

func (e *Engine) finish(outcome State) {
	if e.state != StateActive {
		return
	}
	if e.progress >= e.v.Target {
		outcome = StateAutoCompleted
	}
	e.outcome = outcome
	e.ticker.Stop()
	e.ticker = nil
	e.pending.Stop()
	e.pending = nil
	e.waiting = false
	e.deps.Bus.Detach(e.owner)
	e.state = StateResults
	e.deps.Logger().Info("minigame finished",
		"minigame", e.v.Name,
		"outcome", outcome.String(),
		"correct", e.correct,
		"attempted", e.attempted,
	)
}

func (e *Engine) Actions() []scene.Action {
	switch e.state {
	case StateChoice:
		return []scene.Action{
			{ID: ActionPlay, Label: "Play", Key: loop.Code(loop.KeyEnter), Enabled: true},
			{ID: ActionSkip, Label: "Skip", Key: loop.Rune('s'), Enabled: true},
		}
	case StateActive:
		if e.v.Shuffles <= 0 {
			return nil
		}
		return []scene.Action{{
			ID:      ActionShuffle,
			Label:   fmt.Sprintf("Shuffle (%d)", e.shuffles),
			Key:     loop.Rune('x'),
			Enabled: e.shuffles > 0 && !e.waiting,
		}}
	case StateResults:
		return []scene.Action{{ID: ActionContinue, Label: "Continue", Key: loop.Code(loop.KeyEnter), Enabled: true}}
	}
	return nil
}

func (e *Engine) Act(id string) {
	switch id {
	case ActionPlay:
		e.Play()
	case ActionSkip:
		e.Skip()
	case ActionShuffle:
		e.Shuffle()
	case ActionContinue:
		e.Continue()
	}
}

package minigame

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/cookie-tycoon/internal/config"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type harness struct {
	deps    scene.Deps
	calls   int
	result  Result
	skipped bool
}

func newHarness() *harness {
	return &harness{deps: scene.Deps{
		Sched: loop.NewScheduler(),
		Bus:   loop.NewBus(),
		Stage: scene.NewStage(),
	}}
}

func (h *harness) start(v Variant, quantity int) *Engine {
	return New(h.deps, v, quantity, rand.New(rand.NewPCG(7, 11)), func(res Result, skipped bool) {
		h.calls++
		h.result = res
		h.skipped = skipped
	})
}

func typeAnswer(h *harness, e *Engine, answer int) {
	for _, r := range strconv.Itoa(answer) {
		h.deps.Bus.Dispatch(loop.Rune(r))
	}
	h.deps.Bus.Dispatch(loop.Code(loop.KeyEnter))
}

func answerRight(h *harness, e *Engine) {
	typeAnswer(h, e, e.problem.Answer())
	h.deps.Sched.Advance(e.v.CorrectDelay)
}

func answerWrong(h *harness, e *Engine) {
	typeAnswer(h, e, e.problem.Answer()+1)
	h.deps.Sched.Advance(e.v.WrongDelay)
}

func TestNewShowsChoiceOnly(t *testing.T) {
	h := newHarness()
	e := h.start(Cleaning(config.Default()), 7)

	assert.Equal(t, StateChoice, e.State())
	assert.Zero(t, h.deps.Sched.Pending())
	assert.False(t, h.deps.Bus.Attached())
	assert.Equal(t, e, h.deps.Stage.Top())
	assert.Zero(t, h.calls)
}

func TestSkipReportsZero(t *testing.T) {
	h := newHarness()
	e := h.start(Cleaning(config.Default()), 7)

	e.Act(ActionSkip)

	require.Equal(t, 1, h.calls)
	assert.True(t, h.skipped)
	assert.Equal(t, Result{}, h.result)
	assert.Equal(t, StateSkipped, e.State())
	assert.Empty(t, h.deps.Stage.Layers())
}

func TestTargetReachedReportsQuantity(t *testing.T) {
	h := newHarness()
	e := h.start(Cleaning(config.Default()), 7)
	e.Play()
	require.True(t, h.deps.Bus.Attached())

	answerWrong(h, e)
	for i := 0; i < 5; i++ {
		answerRight(h, e)
	}

	require.Equal(t, StateResults, e.State())
	view := e.Snapshot()
	assert.Equal(t, "ALL DONE!", view.Header)
	assert.Len(t, view.Mistakes, 1)
	assert.False(t, h.deps.Bus.Attached())
	assert.Zero(t, h.deps.Sched.Pending())

	e.Act(ActionContinue)
	require.Equal(t, 1, h.calls)
	assert.False(t, h.skipped)
	assert.Equal(t, Result{CorrectAnswers: 7, TotalProblems: 6}, h.result)
}

func TestTimeoutReportsTally(t *testing.T) {
	h := newHarness()
	e := h.start(Cleaning(config.Default()), 7)
	e.Play()

	answerRight(h, e)
	answerRight(h, e)
	h.deps.Sched.Advance(2 * time.Minute)

	require.Equal(t, StateResults, e.State())
	assert.Equal(t, "TIME'S UP!", e.Snapshot().Header)
	assert.Equal(t, []string{"No errors. Spotless!"}, e.Snapshot().Lines)

	e.Continue()
	require.Equal(t, 1, h.calls)
	assert.Equal(t, 2, h.result.CorrectAnswers)
	assert.Zero(t, h.result.TimeRemaining)
}

func TestEmptySubmitIsIgnored(t *testing.T) {
	h := newHarness()
	e := h.start(Baking(config.Default()), 3)
	e.Play()
	q := e.problem

	h.deps.Bus.Dispatch(loop.Code(loop.KeyEnter))

	assert.Zero(t, e.attempted)
	assert.Equal(t, q, e.problem)
	assert.NotEmpty(t, e.Snapshot().Feedback)
}

func TestBackspaceAndInputLimit(t *testing.T) {
	h := newHarness()
	e := h.start(Baking(config.Default()), 3)
	e.Play()

	for _, r := range "123456" {
		h.deps.Bus.Dispatch(loop.Rune(r))
	}
	assert.Equal(t, "1234", e.input)
	h.deps.Bus.Dispatch(loop.Code(loop.KeyBackspace))
	assert.Equal(t, "123", e.input)
	assert.False(t, h.deps.Bus.Dispatch(loop.Rune('x')))
}

func TestSubmissionsIgnoredDuringFeedback(t *testing.T) {
	h := newHarness()
	e := h.start(Baking(config.Default()), 3)
	e.Play()

	typeAnswer(h, e, e.problem.Answer())
	typeAnswer(h, e, e.problem.Answer())

	assert.Equal(t, 1, e.attempted)
	assert.Equal(t, 1, e.correct)
}

func TestShuffleIsBounded(t *testing.T) {
	h := newHarness()
	e := h.start(Cleaning(config.Default()), 4)
	e.Play()

	for i := 0; i < 5; i++ {
		e.Act(ActionShuffle)
	}
	assert.Zero(t, e.shuffles)
	assert.Zero(t, e.attempted)

	acts := e.Actions()
	require.Len(t, acts, 1)
	assert.False(t, acts[0].Enabled)

	answerRight(h, e)
	assert.Equal(t, 1, e.correct)
}

func TestBakingHasNoShuffle(t *testing.T) {
	h := newHarness()
	e := h.start(Baking(config.Default()), 2)
	e.Play()
	assert.Empty(t, e.Actions())
	e.Shuffle()
	assert.Zero(t, e.shuffles)
}

func TestTimerTiers(t *testing.T) {
	h := newHarness()
	e := h.start(Baking(config.Default()), 2)
	e.Play()
	assert.Equal(t, TierNormal, e.TimerTier())

	h.deps.Sched.Advance(30 * time.Second)
	assert.Equal(t, TierWarning, e.TimerTier())

	h.deps.Sched.Advance(20 * time.Second)
	assert.Equal(t, TierUrgent, e.TimerTier())
}

func TestCleanupTwiceMidRun(t *testing.T) {
	h := newHarness()
	e := h.start(Cleaning(config.Default()), 7)
	e.Play()
	typeAnswer(h, e, e.problem.Answer())

	e.Cleanup()
	e.Cleanup()

	assert.Zero(t, h.deps.Sched.Pending())
	assert.False(t, h.deps.Bus.Attached())
	assert.Empty(t, h.deps.Stage.Layers())

	before := e.remaining
	h.deps.Sched.Advance(5 * time.Minute)
	assert.Equal(t, before, e.remaining)
	assert.Zero(t, h.calls)
}

func TestCleanupFromChoice(t *testing.T) {
	h := newHarness()
	e := h.start(Baking(config.Default()), 1)
	e.Cleanup()
	e.Cleanup()
	e.Play()

	assert.False(t, h.deps.Bus.Attached())
	assert.Zero(t, h.deps.Sched.Pending())
	assert.Zero(t, h.calls)
}

func TestMistakeOverflow(t *testing.T) {
	h := newHarness()
	v := Baking(config.Default())
	v.Duration = 10 * time.Minute
	e := h.start(v, 3)
	e.Play()

	for i := 0; i < 8; i++ {
		answerWrong(h, e)
	}
	h.deps.Sched.Advance(10 * time.Minute)

	view := e.Snapshot()
	assert.Len(t, view.Mistakes, 5)
	assert.Equal(t, 3, view.Overflow)
	assert.Equal(t, "...and 3 more", view.Lines[len(view.Lines)-1])
}

func TestProblemText(t *testing.T) {
	p := Problem{A: 7, B: 8, Op: OpMultiply}
	assert.Equal(t, 56, p.Answer())
	assert.Equal(t, "7 × 8", p.Question())
	assert.Equal(t, "seven times eight", p.Words())
}

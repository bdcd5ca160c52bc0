package minigame

import (
	"fmt"
	"time"
)

// Tier is the countdown colour band.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierUrgent
)

func (t Tier) String() string {
	switch t {
	case TierWarning:
		return "warning"
	case TierUrgent:
		return "urgent"
	default:
		return "normal"
	}
}

// View is a render snapshot. Front ends draw it and never mutate the engine.
type View struct {
	Title    string
	Unit     string
	State    State
	Quantity int

	Question  string
	Words     string
	Input     string
	Remaining time.Duration
	Tier      Tier

	Progress int
	Target   int
	Correct  int
	Attempts int
	Shuffles int

	Feedback     string
	FeedbackGood bool

	Header   string
	Tally    string
	Mistakes []Mistake
	Overflow int
	Lines    []string
}

func (e *Engine) TimerTier() Tier {
	switch {
	case e.remaining <= e.v.UrgentAt:
		return TierUrgent
	case e.remaining <= e.v.WarningAt:
		return TierWarning
	default:
		return TierNormal
	}
}

func (e *Engine) View() any {
	return e.Snapshot()
}

func (e *Engine) Snapshot() View {
	v := View{
		Title:        e.v.Title,
		Unit:         e.v.Unit,
		State:        e.state,
		Quantity:     e.quantity,
		Input:        e.input,
		Remaining:    e.remaining,
		Tier:         e.TimerTier(),
		Progress:     e.progress,
		Target:       e.v.Target,
		Correct:      e.correct,
		Attempts:     e.attempted,
		Shuffles:     e.shuffles,
		Feedback:     e.feedback,
		FeedbackGood: e.feedbackGood,
	}
	switch e.state {
	case StateChoice:
		v.Lines = []string{
			fmt.Sprintf("%d %s waiting.", e.quantity, plural(e.v.Unit, e.quantity)),
			fmt.Sprintf("Solve %d problems in %d seconds.", e.v.Target, int(e.v.Duration/time.Second)),
		}
	case StateActive:
		v.Question = e.problem.Question()
		v.Words = e.problem.Words()
	case StateResults, StateDone:
		v.Header = "TIME'S UP!"
		if e.outcome == StateAutoCompleted {
			v.Header = "ALL DONE!"
		}
		v.Tally = fmt.Sprintf("%d correct out of %d attempted", e.correct, e.attempted)
		v.Mistakes, v.Overflow = e.shownMistakes()
		v.Lines = mistakeLines(v.Mistakes, v.Overflow)
	}
	return v
}

func (e *Engine) shownMistakes() ([]Mistake, int) {
	limit := e.v.MistakesShown
	if limit <= 0 {
		limit = 5
	}
	if len(e.mistakes) <= limit {
		return append([]Mistake(nil), e.mistakes...), 0
	}
	return append([]Mistake(nil), e.mistakes[:limit]...), len(e.mistakes) - limit
}

func mistakeLines(ms []Mistake, overflow int) []string {
	if len(ms) == 0 {
		return []string{"No errors. Spotless!"}
	}
	lines := make([]string, 0, len(ms)+1)
	for _, m := range ms {
		lines = append(lines, fmt.Sprintf("%s = %d (you said %s)", m.Question, m.CorrectAnswer, m.UserAnswer))
	}
	if overflow > 0 {
		lines = append(lines, fmt.Sprintf("...and %d more", overflow))
	}
	return lines
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	if unit == "dish" {
		return "dishes"
	}
	return unit + "s"
}

package game

import (
	"errors"
	"fmt"
	"slices"
)

// Phase is one mutually exclusive top-level screen of the game loop.
type Phase int

const (
	PhaseLogin Phase = iota
	PhaseStoryline
	PhaseHowToPlay
	PhaseOrder
	PhaseRecipeBook
	PhaseShopping
	PhaseBaking
	PhasePostBakingAnimation
	PhaseCleaning
	PhaseDaySummary
	PhaseNewDayAnimation
	PhaseVictory
	PhaseDefeat
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseLogin:               "Login",
	PhaseStoryline:           "Storyline",
	PhaseHowToPlay:           "HowToPlay",
	PhaseOrder:               "Order",
	PhaseRecipeBook:          "RecipeBook",
	PhaseShopping:            "Shopping",
	PhaseBaking:              "Baking",
	PhasePostBakingAnimation: "PostBakingAnimation",
	PhaseCleaning:            "Cleaning",
	PhaseDaySummary:          "DaySummary",
	PhaseNewDayAnimation:     "NewDayAnimation",
	PhaseVictory:             "Victory",
	PhaseDefeat:              "Defeat",
	PhaseGameOver:            "GameOver",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func Phases() []Phase {
	out := make([]Phase, 0, len(phaseNames))
	for p := PhaseLogin; p <= PhaseGameOver; p++ {
		out = append(out, p)
	}
	return out
}

func (p Phase) IsAnimation() bool {
	return p == PhasePostBakingAnimation || p == PhaseNewDayAnimation
}

// HasBackground reports whether the persistent background stays mounted.
func (p Phase) HasBackground() bool {
	switch p {
	case PhaseLogin, PhasePostBakingAnimation, PhaseNewDayAnimation, PhaseGameOver:
		return false
	default:
		return true
	}
}

// EndChoice is what the player picked on the victory or defeat screen.
type EndChoice int

const (
	ChoicePlayAgain EndChoice = iota
	ChoiceLogout
	ChoiceQuit
)

// Outcome carries the facts the transition function needs about the phase
// that just completed.
type Outcome struct {
	CanBake  bool
	Won      bool
	Bankrupt bool
	Choice   EndChoice
}

var ErrIllegalTransition = errors.New("illegal phase transition")

var transitions = map[Phase][]Phase{
	PhaseLogin:               {PhaseStoryline},
	PhaseStoryline:           {PhaseHowToPlay},
	PhaseHowToPlay:           {PhaseOrder},
	PhaseOrder:               {PhaseRecipeBook},
	PhaseRecipeBook:          {PhaseShopping},
	PhaseShopping:            {PhaseBaking, PhaseCleaning},
	PhaseBaking:              {PhasePostBakingAnimation},
	PhasePostBakingAnimation: {PhaseCleaning},
	PhaseCleaning:            {PhaseDaySummary},
	PhaseDaySummary:          {PhaseVictory, PhaseDefeat, PhaseNewDayAnimation},
	PhaseNewDayAnimation:     {PhaseOrder},
	PhaseVictory:             {PhaseLogin, PhaseHowToPlay, PhaseGameOver},
	PhaseDefeat:              {PhaseLogin, PhaseHowToPlay, PhaseGameOver},
	PhaseGameOver:            {},
}

func CanTransition(from, to Phase) bool {
	return slices.Contains(transitions[from], to)
}

// Next is the transition function: the next phase depends only on the
// current phase and the outcome of completing it.
func Next(from Phase, out Outcome) (Phase, error) {
	var to Phase
	switch from {
	case PhaseLogin:
		to = PhaseStoryline
	case PhaseStoryline:
		to = PhaseHowToPlay
	case PhaseHowToPlay:
		to = PhaseOrder
	case PhaseOrder:
		to = PhaseRecipeBook
	case PhaseRecipeBook:
		to = PhaseShopping
	case PhaseShopping:
		to = PhaseCleaning
		if out.CanBake {
			to = PhaseBaking
		}
	case PhaseBaking:
		to = PhasePostBakingAnimation
	case PhasePostBakingAnimation:
		to = PhaseCleaning
	case PhaseCleaning:
		to = PhaseDaySummary
	case PhaseDaySummary:
		switch {
		case out.Won:
			to = PhaseVictory
		case out.Bankrupt:
			to = PhaseDefeat
		default:
			to = PhaseNewDayAnimation
		}
	case PhaseNewDayAnimation:
		to = PhaseOrder
	case PhaseVictory, PhaseDefeat:
		switch out.Choice {
		case ChoicePlayAgain:
			to = PhaseHowToPlay
		case ChoiceLogout:
			to = PhaseLogin
		default:
			to = PhaseGameOver
		}
	default:
		return from, fmt.Errorf("%w: %s is terminal", ErrIllegalTransition, from)
	}
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return to, nil
}

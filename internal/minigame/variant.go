package minigame

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/cookie-tycoon/internal/config"
)

type Operator int

const (
	OpAdd Operator = iota
	OpMultiply
)

func (o Operator) Symbol() string {
	if o == OpMultiply {
		return "×"
	}
	return "+"
}

func (o Operator) Word() string {
	if o == OpMultiply {
		return "times"
	}
	return "plus"
}

func (o Operator) Apply(a, b int) int {
	if o == OpMultiply {
		return a * b
	}
	return a + b
}

// Variant parameterises the engine. Baking and Cleaning are the two shipped
// configurations.
type Variant struct {
	Name       string
	Title      string
	Unit       string
	Prompt     string
	Operator   Operator
	MinOperand int
	MaxOperand int

	Duration  time.Duration
	WarningAt time.Duration
	UrgentAt  time.Duration

	// Target is the fixed number of correct answers that ends a run early,
	// independent of the quantity the run was started with.
	Target        int
	Shuffles      int
	CorrectDelay  time.Duration
	WrongDelay    time.Duration
	MistakesShown int
	MaxInputLen   int
}

func Baking(cfg config.Config) Variant {
	return Variant{
		Name:          "baking",
		Title:         "Cookie Rush",
		Unit:          "tray",
		Prompt:        "Measure the batch",
		Operator:      OpAdd,
		MinOperand:    1,
		MaxOperand:    12,
		Duration:      cfg.BakingDuration,
		WarningAt:     30 * time.Second,
		UrgentAt:      10 * time.Second,
		Target:        cfg.BakingTarget,
		CorrectDelay:  cfg.FeedbackDelay,
		WrongDelay:    cfg.MistakeDelay,
		MistakesShown: 5,
		MaxInputLen:   4,
	}
}

func Cleaning(cfg config.Config) Variant {
	return Variant{
		Name:          "cleaning",
		Title:         "Dish Duty",
		Unit:          "dish",
		Prompt:        "Scrub the dish",
		Operator:      OpMultiply,
		MinOperand:    1,
		MaxOperand:    12,
		Duration:      cfg.CleaningDuration,
		WarningAt:     20 * time.Second,
		UrgentAt:      10 * time.Second,
		Target:        cfg.CleaningTarget,
		Shuffles:      cfg.CleaningShuffles,
		CorrectDelay:  cfg.FeedbackDelay,
		WrongDelay:    cfg.MistakeDelay,
		MistakesShown: 5,
		MaxInputLen:   4,
	}
}

// Problem is one arithmetic question.
type Problem struct {
	A  int
	B  int
	Op Operator
}

func (p Problem) Answer() int {
	return p.Op.Apply(p.A, p.B)
}

func (p Problem) Question() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op.Symbol(), p.B)
}

// Words spells the operands out, e.g. "seven times eight".
func (p Problem) Words() string {
	return fmt.Sprintf("%s %s %s", numberWord(p.A), p.Op.Word(), numberWord(p.B))
}

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "twelve",
}

func numberWord(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return fmt.Sprintf("%d", n)
}

package scene

import (
	"context"
	"log/slog"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
)

// Action is a clickable affordance a screen offers, with a keyboard
// shortcut front ends fall back to when no listener consumes the key.
type Action struct {
	ID      string
	Label   string
	Key     loop.Key
	Enabled bool
}

// Screen is the contract every phase collaborator honours: it is built with
// Deps, its data and a completion callback, and it releases everything it
// owns in Cleanup. Cleanup must be safe to call more than once.
type Screen interface {
	View() any
	Actions() []Action
	Act(id string)
	Cleanup()
}

// Animation is a cosmetic screen whose assets load asynchronously. Load runs
// off the loop goroutine; Play runs on it.
type Animation interface {
	Screen
	Load(ctx context.Context) error
	Play()
}

// Deps is the render surface and display layer handed to every screen.
type Deps struct {
	Sched *loop.Scheduler
	Bus   *loop.Bus
	Stage *Stage
	Audio audio.Service
	Log   *slog.Logger
}

func (d Deps) Logger() *slog.Logger {
	if d.Log == nil {
		return slog.Default()
	}
	return d.Log
}

func (d Deps) Sound() audio.Service {
	if d.Audio == nil {
		return audio.NewNop()
	}
	return d.Audio
}

// FindAction returns the enabled action bound to k.
func FindAction(actions []Action, k loop.Key) (Action, bool) {
	for _, a := range actions {
		if !a.Enabled {
			continue
		}
		if a.Key == k && (a.Key.Code != loop.KeyRune || a.Key.Rune != 0) {
			return a, true
		}
	}
	return Action{}, false
}

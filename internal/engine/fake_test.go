package engine

import (
	"context"
	"testing"
	"time"

	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/minigame"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// fakeScreen holds a listener and a ticking timer the way a real
// collaborator does, so leaks show up on the bus and the scheduler.
type fakeScreen struct {
	f        *fakeFactory
	name     string
	deps     scene.Deps
	ticker   *loop.Timer
	cleanups int
	panics   bool
	keys     []loop.Key
	acted    []string
}

func (f *fakeFactory) newScreen(d scene.Deps, name string) *fakeScreen {
	s := &fakeScreen{f: f, name: name, deps: d}
	if err := d.Bus.Attach(name, s.handle); err != nil {
		f.t.Errorf("%s could not attach listener: %v", name, err)
	}
	s.ticker = d.Sched.Every(time.Second, func() {
		if s.cleanups > 0 {
			f.staleTicks++
		}
	})
	d.Stage.Mount(name, s)
	if f.panicOn == name {
		s.panics = true
	}
	f.built = append(f.built, name)
	f.screens = append(f.screens, s)
	return s
}

func (s *fakeScreen) handle(k loop.Key) bool {
	if k == loop.Rune('l') {
		s.keys = append(s.keys, k)
		return true
	}
	return false
}

func (s *fakeScreen) View() any { return s.name }

func (s *fakeScreen) Actions() []scene.Action {
	return []scene.Action{
		{ID: "go", Label: "Go", Key: loop.Rune('g'), Enabled: true},
		{ID: "off", Label: "Off", Key: loop.Rune('o'), Enabled: false},
	}
}

func (s *fakeScreen) Act(id string) { s.acted = append(s.acted, id) }

func (s *fakeScreen) Cleanup() {
	s.cleanups++
	if s.panics {
		panic("cleanup exploded")
	}
	s.ticker.Stop()
	s.deps.Bus.Detach(s.name)
	s.deps.Stage.Unmount(s.name)
}

type fakeAnim struct {
	*fakeScreen
	err    error
	played int
}

func (a *fakeAnim) Load(ctx context.Context) error { return a.err }
func (a *fakeAnim) Play()                          { a.played++ }

type fakeFactory struct {
	t          *testing.T
	built      []string
	screens    []*fakeScreen
	staleTicks int
	panicOn    string
	animErr    error
	instant    string

	login    func(string)
	next     func()
	orders   func([]game.CustomerOrder)
	cart     func(game.Cart)
	mini     minigame.DoneFunc
	miniName string
	miniQty  int
	summary  game.DaySummary
	ending   func(game.EndChoice)
	anim     *fakeAnim
}

func newFakeFactory(t *testing.T) *fakeFactory {
	return &fakeFactory{t: t}
}

func (f *fakeFactory) last() *fakeScreen {
	return f.screens[len(f.screens)-1]
}

func (f *fakeFactory) Login(d scene.Deps, done func(string)) scene.Screen {
	f.login = done
	return f.newScreen(d, "login")
}

func (f *fakeFactory) Story(d scene.Deps, username string, done func()) scene.Screen {
	f.next = done
	return f.newScreen(d, "story")
}

func (f *fakeFactory) HowToPlay(d scene.Deps, done func()) scene.Screen {
	f.next = done
	s := f.newScreen(d, "howto")
	if f.instant == "howto" {
		done()
	}
	return s
}

func (f *fakeFactory) Order(d scene.Deps, p game.PlayerState, done func([]game.CustomerOrder)) scene.Screen {
	f.orders = done
	return f.newScreen(d, "order")
}

func (f *fakeFactory) RecipeBook(d scene.Deps, prices game.PriceList, p game.PlayerState, done func()) scene.Screen {
	f.next = done
	return f.newScreen(d, "recipe")
}

func (f *fakeFactory) Shopping(d scene.Deps, prices game.PriceList, p game.PlayerState, done func(game.Cart)) scene.Screen {
	f.cart = done
	return f.newScreen(d, "shopping")
}

func (f *fakeFactory) Minigame(d scene.Deps, v minigame.Variant, quantity int, done minigame.DoneFunc) scene.Screen {
	f.mini = done
	f.miniName = v.Name
	f.miniQty = quantity
	return f.newScreen(d, v.Name)
}

func (f *fakeFactory) Summary(d scene.Deps, s game.DaySummary, done func()) scene.Screen {
	f.next = done
	f.summary = s
	return f.newScreen(d, "summary")
}

func (f *fakeFactory) Ending(d scene.Deps, won bool, p game.PlayerState, done func(game.EndChoice)) scene.Screen {
	f.ending = done
	name := "defeat"
	if won {
		name = "victory"
	}
	return f.newScreen(d, name)
}

func (f *fakeFactory) Animation(d scene.Deps, phase game.Phase, done func()) scene.Animation {
	f.next = done
	f.anim = &fakeAnim{fakeScreen: f.newScreen(d, "anim-"+phase.String()), err: f.animErr}
	return f.anim
}

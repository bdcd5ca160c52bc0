package screens

import (
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// base owns the lifecycle every screen shares: a stage layer, at most one
// keyboard listener, and a completion that fires once.
type base struct {
	deps     scene.Deps
	owner    string
	alive    bool
	finished bool
	listener bool
	gen      loop.Generation
}

func (b *base) init(d scene.Deps, owner string, sc scene.Screen) {
	b.deps = d
	b.owner = owner
	b.alive = true
	if d.Stage != nil {
		d.Stage.Mount(owner, sc)
	}
}

func (b *base) listen(l loop.Listener) bool {
	if b.deps.Bus == nil {
		return false
	}
	if err := b.deps.Bus.Attach(b.owner, l); err != nil {
		b.deps.Logger().Error("screen could not take keyboard", "screen", b.owner, "err", err)
		return false
	}
	b.listener = true
	return true
}

// complete runs fn once, and only while the screen is live.
func (b *base) complete(fn func()) {
	if !b.alive || b.finished {
		return
	}
	b.finished = true
	if fn != nil {
		fn()
	}
}

func (b *base) Cleanup() {
	if !b.alive {
		return
	}
	b.alive = false
	b.gen.Next()
	if b.listener && b.deps.Bus != nil {
		b.deps.Bus.Detach(b.owner)
		b.listener = false
	}
	if b.deps.Stage != nil {
		b.deps.Stage.Unmount(b.owner)
	}
}

const ActionContinue = "continue"

func continueAction(label string) scene.Action {
	if label == "" {
		label = "Continue"
	}
	return scene.Action{ID: ActionContinue, Label: label, Key: loop.Code(loop.KeyEnter), Enabled: true}
}

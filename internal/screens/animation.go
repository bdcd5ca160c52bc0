package screens

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// Animation plays text frames from anim/<name>/*.txt for a fixed length.
type Animation struct {
	base
	assets  fs.FS
	name    string
	caption string
	length  time.Duration
	done    func()

	frames []string
	index  int
	ticker *loop.Timer
	finish *loop.Timer
}

func NewAnimation(d scene.Deps, assets fs.FS, name, caption string, length time.Duration, done func()) *Animation {
	a := &Animation{assets: assets, name: name, caption: caption, length: length, done: done}
	a.init(d, "anim-"+name, a)
	return a
}

// Load reads every frame. It runs off the loop goroutine and touches
// nothing but its return values until Play.
func (a *Animation) Load(ctx context.Context) error {
	frames, err := loadFrames(ctx, a.assets, a.name)
	if err != nil {
		return err
	}
	a.deps.Sched.Post(func() {
		if a.alive {
			a.frames = frames
		}
	})
	return nil
}

func loadFrames(ctx context.Context, assets fs.FS, name string) ([]string, error) {
	if assets == nil {
		return nil, fmt.Errorf("animation %s: no asset filesystem", name)
	}
	files, err := fs.Glob(assets, path.Join("anim", name, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("animation %s: %w", name, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("animation %s: no frames", name)
	}
	sort.Strings(files)
	frames := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(assets, f)
		if err != nil {
			return nil, fmt.Errorf("animation %s: %w", name, err)
		}
		frames = append(frames, string(data))
	}
	return frames, nil
}

// Play steps through the frames and completes after the configured length.
func (a *Animation) Play() {
	if !a.alive || a.ticker != nil || a.finish != nil {
		return
	}
	length := a.length
	if length <= 0 {
		length = time.Second
	}
	if n := len(a.frames); n > 1 {
		a.ticker = a.deps.Sched.Every(length/time.Duration(n), a.gen.Guard(a.gen.Current(), func() {
			a.index = (a.index + 1) % len(a.frames)
		}))
	}
	a.finish = a.deps.Sched.After(length, a.gen.Guard(a.gen.Current(), func() {
		a.finish = nil
		a.ticker.Stop()
		a.ticker = nil
		a.complete(a.done)
	}))
}

func (a *Animation) Playing() bool {
	return a.finish.Active()
}

func (a *Animation) View() any {
	f := Frame{Name: a.name, Caption: a.caption, Index: a.index, Count: len(a.frames)}
	if len(a.frames) > 0 {
		f.Art = a.frames[a.index]
	}
	return f
}

func (a *Animation) Actions() []scene.Action {
	return []scene.Action{{ID: ActionContinue, Label: "Skip", Key: loop.Code(loop.KeyEnter), Enabled: a.finish.Active()}}
}

func (a *Animation) Act(id string) {
	if id == ActionContinue && a.finish.Active() {
		a.finish.Stop()
		a.finish = nil
		a.ticker.Stop()
		a.ticker = nil
		a.complete(a.done)
	}
}

func (a *Animation) Cleanup() {
	a.ticker.Stop()
	a.ticker = nil
	a.finish.Stop()
	a.finish = nil
	a.base.Cleanup()
}

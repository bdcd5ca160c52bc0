package loop

import "sync/atomic"

// Generation is a monotonically increasing render token. Code that schedules
// work takes a token, and the work checks Current before acting.
type Generation struct {
	n atomic.Uint64
}

// Next invalidates every earlier token and returns the new one.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

func (g *Generation) Current() uint64 {
	return g.n.Load()
}

func (g *Generation) IsCurrent(token uint64) bool {
	return g.n.Load() == token
}

// Guard wraps fn so that it only runs while token is still current.
func (g *Generation) Guard(token uint64, fn func()) func() {
	return func() {
		if !g.IsCurrent(token) {
			return
		}
		fn()
	}
}

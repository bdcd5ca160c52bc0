package loop

import (
	"errors"
	"fmt"
)

var ErrListenerAttached = errors.New("keyboard listener already attached")

// Listener handles a key and reports whether it consumed it.
type Listener func(Key) bool

// Bus holds the single keyboard listener. Attaching while another owner is
// attached is refused.
type Bus struct {
	owner    string
	listener Listener
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Attach(owner string, l Listener) error {
	if l == nil {
		return errors.New("nil listener")
	}
	if b.listener != nil {
		return fmt.Errorf("%w: %s holds it, %s asked", ErrListenerAttached, b.owner, owner)
	}
	b.owner = owner
	b.listener = l
	return nil
}

// Detach removes owner's listener. It is a no-op for any other owner.
func (b *Bus) Detach(owner string) bool {
	if b.listener == nil || b.owner != owner {
		return false
	}
	b.owner = ""
	b.listener = nil
	return true
}

func (b *Bus) Dispatch(k Key) bool {
	if b.listener == nil {
		return false
	}
	return b.listener(k)
}

func (b *Bus) Owner() string {
	return b.owner
}

func (b *Bus) Attached() bool {
	return b.listener != nil
}

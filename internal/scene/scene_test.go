package scene

import (
	"testing"

	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
)

type stubScreen struct{ name string }

func (s *stubScreen) View() any         { return s.name }
func (s *stubScreen) Actions() []Action { return nil }
func (s *stubScreen) Act(string)        {}
func (s *stubScreen) Cleanup()          {}

func TestStageClearKeepsBackground(t *testing.T) {
	st := NewStage()
	st.SetBackground(true)
	st.Mount("order", &stubScreen{name: "order"})
	st.Mount("popup", &stubScreen{name: "popup"})
	if st.Top().View() != "popup" {
		t.Fatalf("expected last mount on top")
	}
	if n := st.Clear(); n != 2 {
		t.Fatalf("expected 2 layers cleared, got %d", n)
	}
	if !st.Background() || st.Top() != nil {
		t.Fatalf("expected only the background to remain")
	}
}

func TestStageMountReplacesSameOwner(t *testing.T) {
	st := NewStage()
	st.Mount("shop", &stubScreen{name: "a"})
	st.Mount("shop", &stubScreen{name: "b"})
	if len(st.Layers()) != 1 || st.Top().View() != "b" {
		t.Fatalf("expected remount to replace, got %+v", st.Layers())
	}
	if !st.Unmount("shop") || st.Unmount("shop") {
		t.Fatalf("unmount should succeed once")
	}
}

func TestFindActionSkipsDisabledAndUnbound(t *testing.T) {
	actions := []Action{
		{ID: "shuffle", Key: loop.Rune('x'), Enabled: false},
		{ID: "none", Enabled: true},
		{ID: "continue", Key: loop.Code(loop.KeyEnter), Enabled: true},
	}
	if _, ok := FindAction(actions, loop.Rune('x')); ok {
		t.Fatalf("disabled action must not match")
	}
	if _, ok := FindAction(actions, loop.Rune(0)); ok {
		t.Fatalf("unbound action must not match")
	}
	a, ok := FindAction(actions, loop.Code(loop.KeyEnter))
	if !ok || a.ID != "continue" {
		t.Fatalf("expected continue, got %+v", a)
	}
}

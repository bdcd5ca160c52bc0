package loop

import (
	"errors"
	"testing"
)

func TestBusAllowsOneListener(t *testing.T) {
	b := NewBus()
	if err := b.Attach("login", func(Key) bool { return true }); err != nil {
		t.Fatalf("attach: %v", err)
	}
	err := b.Attach("shopping", func(Key) bool { return true })
	if !errors.Is(err, ErrListenerAttached) {
		t.Fatalf("expected second attach to fail, got %v", err)
	}
	if b.Owner() != "login" {
		t.Fatalf("expected login to keep the bus, got %q", b.Owner())
	}
}

func TestBusDetachOnlyByOwner(t *testing.T) {
	b := NewBus()
	_ = b.Attach("login", func(Key) bool { return true })
	if b.Detach("shopping") {
		t.Fatalf("non-owner detach must be a no-op")
	}
	if !b.Detach("login") {
		t.Fatalf("owner detach should succeed")
	}
	if b.Detach("login") || b.Attached() {
		t.Fatalf("second detach must be a no-op")
	}
	if b.Dispatch(Rune('a')) {
		t.Fatalf("dispatch without listener must not consume")
	}
}

func TestKeyHelpers(t *testing.T) {
	if !Rune('7').IsDigit() || Rune('a').IsDigit() || Code(KeyEnter).IsDigit() {
		t.Fatalf("IsDigit mismatch")
	}
	if !Rune('~').IsPrintable() || Code(KeyTab).IsPrintable() {
		t.Fatalf("IsPrintable mismatch")
	}
}

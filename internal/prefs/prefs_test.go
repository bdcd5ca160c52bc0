package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileGivesDefaults(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "prefs.json"))
	p, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.json")
	s := NewFileStore(path)
	if err := s.Save(Prefs{Username: "  Maya  ", Volume: 0.4, BestFunds: 123400}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Username != "Maya" || got.Volume != 0.4 || got.BestFunds != 123400 {
		t.Fatalf("unexpected prefs %+v", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := NewFileStore(path).Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if p != Defaults() {
		t.Fatalf("expected defaults alongside error, got %+v", p)
	}
}

func TestCleanUsername(t *testing.T) {
	if got := CleanUsername("  abcdefghijklmnopqrstuvwxyz "); got != "abcdefghijklmnop" {
		t.Fatalf("got %q", got)
	}
}

func TestUpdateOnMemory(t *testing.T) {
	m := NewMemory()
	if err := Update(m, func(p *Prefs) { p.Username = "jo"; p.Volume = 3 }); err != nil {
		t.Fatal(err)
	}
	p, _ := m.Load()
	if p.Username != "jo" || p.Volume != 1 {
		t.Fatalf("unexpected %+v", p)
	}
}

package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const MaxUsernameLen = 16

// Prefs is what survives between sessions.
type Prefs struct {
	Username  string  `json:"username,omitempty"`
	Volume    float32 `json:"volume"`
	BestFunds int64   `json:"best_funds,omitempty"`
	GamesWon  int     `json:"games_won,omitempty"`
	GamesLost int     `json:"games_lost,omitempty"`
}

func Defaults() Prefs {
	return Prefs{Volume: 1}
}

// Store persists Prefs. Screens read and write it through this interface.
type Store interface {
	Load() (Prefs, error)
	Save(Prefs) error
}

func CleanUsername(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > MaxUsernameLen {
		name = name[:MaxUsernameLen]
	}
	return name
}

func normalise(p Prefs) Prefs {
	p.Username = CleanUsername(p.Username)
	if p.Volume < 0 {
		p.Volume = 0
	}
	if p.Volume > 1 {
		p.Volume = 1
	}
	return p
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "cookie-tycoon", "prefs.json"), nil
}

// FileStore keeps Prefs as JSON on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), err
	}
	p := Defaults()
	if err := json.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs: %w", err)
	}
	return normalise(p), nil
}

func (s *FileStore) Save(p Prefs) error {
	p = normalise(p)
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "prefs-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return err
	}
	cleanup = false
	return nil
}

// Memory is an in-process Store for tests and for runs without a config dir.
type Memory struct {
	mu sync.Mutex
	p  Prefs
}

func NewMemory() *Memory {
	return &Memory{p: Defaults()}
}

func (m *Memory) Load() (Prefs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.p, nil
}

func (m *Memory) Save(p Prefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p = normalise(p)
	return nil
}

// Update loads, applies fn and saves.
func Update(s Store, fn func(*Prefs)) error {
	p, err := s.Load()
	if err != nil {
		p = Defaults()
	}
	fn(&p)
	return s.Save(p)
}

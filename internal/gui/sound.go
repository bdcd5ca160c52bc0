package gui

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
)

// Sound is the raylib audio.Service. It is silent until Open succeeds and
// after Close, so the orchestrator can outlive the audio device when the
// window hands over to the terminal front end.
type Sound struct {
	dir string
	log *slog.Logger

	mu     sync.Mutex
	open   bool
	volume float32
	sounds map[audio.Cue]rl.Sound
}

func NewSound(dir string, volume float32, log *slog.Logger) *Sound {
	if log == nil {
		log = slog.Default()
	}
	return &Sound{
		dir:    dir,
		log:    log,
		volume: audio.ClampVolume(volume),
		sounds: make(map[audio.Cue]rl.Sound),
	}
}

// Open starts the audio device and loads sounds/<cue>.wav for every cue.
// Missing files are skipped.
func (s *Sound) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		s.log.Warn("audio device unavailable, running silent")
		return
	}
	s.open = true
	rl.SetMasterVolume(s.volume)
	for _, cue := range audio.Cues() {
		path := filepath.Join(s.dir, "sounds", string(cue)+".wav")
		if _, err := os.Stat(path); err != nil {
			s.log.Debug("sound missing", "cue", cue, "path", path)
			continue
		}
		snd := rl.LoadSound(path)
		if snd.FrameCount == 0 {
			s.log.Warn("sound failed to load", "cue", cue, "path", path)
			continue
		}
		s.sounds[cue] = snd
	}
	s.log.Info("audio ready", "sounds", len(s.sounds), "volume", s.volume)
}

func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	for cue, snd := range s.sounds {
		rl.UnloadSound(snd)
		delete(s.sounds, cue)
	}
	rl.CloseAudioDevice()
	s.open = false
}

func (s *Sound) Play(cue audio.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	if snd, ok := s.sounds[cue]; ok {
		rl.PlaySound(snd)
	}
}

func (s *Sound) SetVolume(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = audio.ClampVolume(v)
	if s.open {
		rl.SetMasterVolume(s.volume)
	}
}

func (s *Sound) Volume() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

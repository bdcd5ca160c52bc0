package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
)

const volumeStep = float32(0.1)

type hotkey int

const (
	hotkeyNone hotkey = iota
	hotkeyVolumeUp
	hotkeyVolumeDown
	hotkeyClassic
)

var specialKeys = []struct {
	key  int32
	code loop.KeyCode
}{
	{rl.KeyEnter, loop.KeyEnter},
	{rl.KeyKpEnter, loop.KeyEnter},
	{rl.KeyBackspace, loop.KeyBackspace},
	{rl.KeyEscape, loop.KeyEscape},
	{rl.KeyTab, loop.KeyTab},
	{rl.KeyUp, loop.KeyUp},
	{rl.KeyDown, loop.KeyDown},
	{rl.KeyLeft, loop.KeyLeft},
	{rl.KeyRight, loop.KeyRight},
}

func keyCodeFor(key int32) (loop.KeyCode, bool) {
	for _, k := range specialKeys {
		if k.key == key {
			return k.code, true
		}
	}
	return loop.KeyRune, false
}

// pollHotkey reports the front-end shortcut pressed this frame, if any.
// Hotkeys never reach the orchestrator.
func pollHotkey() hotkey {
	switch {
	case shiftKeyPressed(rl.KeyUp):
		return hotkeyVolumeUp
	case shiftKeyPressed(rl.KeyDown):
		return hotkeyVolumeDown
	case rl.IsKeyPressed(rl.KeyF10):
		return hotkeyClassic
	}
	return hotkeyNone
}

// pollKeys drains this frame's text input and key presses as loop keys.
func pollKeys() []loop.Key {
	var keys []loop.Key
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 {
			keys = append(keys, loop.Rune(rune(ch)))
		}
	}
	for _, k := range specialKeys {
		pressed := rl.IsKeyPressed(k.key)
		if k.code == loop.KeyBackspace {
			pressed = pressed || rl.IsKeyPressedRepeat(k.key)
		}
		if !pressed {
			continue
		}
		if shiftDown() && (k.code == loop.KeyUp || k.code == loop.KeyDown) {
			continue
		}
		keys = append(keys, loop.Code(k.code))
	}
	return keys
}

func stepVolume(current float32, h hotkey) float32 {
	switch h {
	case hotkeyVolumeUp:
		return audio.ClampVolume(current + volumeStep)
	case hotkeyVolumeDown:
		return audio.ClampVolume(current - volumeStep)
	}
	return current
}

func shiftKeyPressed(key int32) bool {
	if shiftDown() && rl.IsKeyPressed(key) {
		return true
	}
	// Either order: Shift then key, or key then Shift.
	return rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift))
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

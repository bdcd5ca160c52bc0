package gui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cookie-tycoon/internal/engine"
	"github.com/appengine-ltd/cookie-tycoon/internal/prefs"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

type AppConfig struct {
	Title    string
	Width    int32
	Height   int32
	AssetDir string
	Prefs    prefs.Store
	Log      *slog.Logger

	// Classic runs after the window closes when the player asked for the
	// terminal front end. It drives the same orchestrator.
	Classic func() error
}

// rebuilder is implemented by screens whose text reflows with the window.
type rebuilder interface {
	Rebuild(width int)
}

type App struct {
	cfg   AppConfig
	o     *engine.Orchestrator
	sound *Sound
	log   *slog.Logger

	width    int32
	height   int32
	lastTick time.Time

	background    rl.Texture2D
	buttons       []button
	launchClassic bool

	reflowScreen scene.Screen
	reflowCols   int

	toast      string
	toastUntil time.Time
}

// NewApp wraps an orchestrator built with snd as its audio service.
func NewApp(o *engine.Orchestrator, snd *Sound, cfg AppConfig) *App {
	if cfg.Title == "" {
		cfg.Title = "Cookie Tycoon"
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 760
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &App{cfg: cfg, o: o, sound: snd, log: log.With("frontend", "gui"), width: cfg.Width, height: cfg.Height}
}

func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(a.width, a.height, a.cfg.Title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography(a.cfg.AssetDir)
	if a.sound != nil {
		a.sound.Open()
	}
	a.loadBackground()

	a.o.Start()
	a.lastTick = time.Now()
	for !a.o.Done() && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(a.lastTick)
		if delta < 0 {
			delta = 0
		}
		a.lastTick = now

		a.width = int32(rl.GetScreenWidth())
		a.height = int32(rl.GetScreenHeight())

		a.update(delta)
		if a.launchClassic {
			break
		}

		rl.BeginDrawing()
		a.draw()
		rl.EndDrawing()
	}

	if a.background.ID != 0 {
		rl.UnloadTexture(a.background)
		a.background = rl.Texture2D{}
	}
	if a.sound != nil {
		a.sound.Close()
	}
	shutdownTypography()
	rl.CloseWindow()

	if a.launchClassic && a.cfg.Classic != nil {
		a.log.Info("switching to classic mode", "phase", a.o.Phase().String())
		return a.cfg.Classic()
	}
	return nil
}

func (a *App) update(delta time.Duration) {
	switch h := pollHotkey(); h {
	case hotkeyClassic:
		if a.cfg.Classic != nil {
			a.launchClassic = true
			return
		}
	case hotkeyVolumeUp, hotkeyVolumeDown:
		a.setVolume(stepVolume(a.o.Audio().Volume(), h))
	}

	for _, k := range pollKeys() {
		a.o.Press(k)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.click(rl.GetMousePosition())
	}
	a.reflow()
	a.o.Advance(delta)
}

func (a *App) click(p rl.Vector2) {
	for _, b := range a.buttons {
		if !b.enabled || !rl.CheckCollisionPointRec(p, b.rect) {
			continue
		}
		a.o.Activate(b.id)
		return
	}
}

// reflow rebuilds wrapped text when the screen or the window width changes.
func (a *App) reflow() {
	sc := a.o.Screen()
	r, ok := sc.(rebuilder)
	if !ok {
		a.reflowScreen = nil
		return
	}
	cols := charsForWidth(float32(a.width)-spaceL*4, measureText("M", typeScale.Body))
	if sc == a.reflowScreen && cols == a.reflowCols {
		return
	}
	a.reflowScreen, a.reflowCols = sc, cols
	r.Rebuild(cols)
}

func (a *App) setVolume(v float32) {
	a.o.Audio().SetVolume(v)
	a.toast = fmt.Sprintf("Volume %d%%", int(v*100+0.5))
	a.toastUntil = time.Now().Add(2 * time.Second)
	if a.cfg.Prefs == nil {
		return
	}
	if err := prefs.Update(a.cfg.Prefs, func(p *prefs.Prefs) { p.Volume = v }); err != nil {
		a.log.Warn("could not save volume", "err", err)
	}
}

func (a *App) loadBackground() {
	path := filepath.Join(a.cfg.AssetDir, "images", "trailer.png")
	if _, err := os.Stat(path); err != nil {
		a.log.Debug("no background image, drawing the counter", "path", path)
		return
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		a.log.Warn("background image failed to load", "path", path)
		return
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	a.background = tex
}

// charsForWidth converts a pixel width into a wrap column count.
func charsForWidth(px float32, glyph int32) int {
	if glyph <= 0 {
		glyph = 10
	}
	cols := int(px) / int(glyph)
	return clampInt(cols, 20, 120)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package ui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/cookie-tycoon/internal/engine"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
	"github.com/appengine-ltd/cookie-tycoon/internal/screens"
)

const frameInterval = 50 * time.Millisecond

type AppConfig struct {
	Log *slog.Logger
	// Art turns on the half-block cookie on the ending screens. It needs a
	// truecolor terminal.
	Art bool
}

// App is the terminal front end. It drives the same orchestrator the window
// does, so the game can switch front ends mid-run.
type App struct {
	o   *engine.Orchestrator
	cfg AppConfig
}

func NewApp(o *engine.Orchestrator, cfg AppConfig) *App {
	return &App{o: o, cfg: cfg}
}

func (a *App) Run() error {
	a.o.Start()
	p := tea.NewProgram(newModel(a.o, a.cfg, time.Now()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	o     *engine.Orchestrator
	cfg   AppConfig
	log   *slog.Logger
	last  time.Time
	width int

	reflowScreen scene.Screen
	reflowCols   int
}

func newModel(o *engine.Orchestrator, cfg AppConfig, now time.Time) model {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return model{o: o, cfg: cfg, log: log.With("frontend", "terminal"), last: now, width: 80}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if d := now.Sub(m.last); d > 0 {
			m.o.Advance(d)
		}
		m.last = now
		m = m.reflow()
		if m.o.Done() {
			return m, tea.Quit
		}
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m = m.reflow()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.log.Info("interrupted", "phase", m.o.Phase().String())
			return m, tea.Quit
		}
		if n, ok := altDigit(msg); ok {
			m.activateNth(n)
		} else if k, ok := keyFromMsg(msg); ok {
			m.o.Press(k)
		}
		m = m.reflow()
		if m.o.Done() {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// activateNth fires the nth (1-based) action shown in the action bar.
func (m model) activateNth(n int) {
	sc := m.o.Screen()
	if sc == nil {
		return
	}
	bar := barActions(sc.Actions())
	if n < 1 || n > len(bar) {
		return
	}
	m.o.Activate(bar[n-1].ID)
}

func (m model) reflow() model {
	sc := m.o.Screen()
	r, ok := sc.(interface{ Rebuild(width int) })
	if !ok {
		m.reflowScreen = nil
		return m
	}
	cols := m.width - 6
	if cols < 20 {
		cols = 20
	}
	if sc == m.reflowScreen && cols == m.reflowCols {
		return m
	}
	m.reflowScreen, m.reflowCols = sc, cols
	r.Rebuild(cols)
	return m
}

func barActions(actions []scene.Action) []scene.Action {
	out := make([]scene.Action, 0, len(actions))
	for _, a := range actions {
		if strings.HasPrefix(a.ID, screens.AddActionID("")) || strings.HasPrefix(a.ID, screens.RemoveActionID("")) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func altDigit(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func keyFromMsg(msg tea.KeyMsg) (loop.Key, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return loop.Code(loop.KeyEnter), true
	case tea.KeyBackspace:
		return loop.Code(loop.KeyBackspace), true
	case tea.KeyEsc:
		return loop.Code(loop.KeyEscape), true
	case tea.KeyTab:
		return loop.Code(loop.KeyTab), true
	case tea.KeyUp:
		return loop.Code(loop.KeyUp), true
	case tea.KeyDown:
		return loop.Code(loop.KeyDown), true
	case tea.KeyLeft:
		return loop.Code(loop.KeyLeft), true
	case tea.KeyRight:
		return loop.Code(loop.KeyRight), true
	case tea.KeySpace:
		return loop.Rune(' '), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return loop.Key{}, false
		}
		k := loop.Rune(msg.Runes[0])
		return k, k.IsPrintable()
	}
	return loop.Key{}, false
}

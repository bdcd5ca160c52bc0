package screens

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

// InstructionSource fetches the how-to-play text. It may block.
type InstructionSource interface {
	Instructions(ctx context.Context) (string, error)
}

// FSInstructions reads the text from a file in an asset tree.
type FSInstructions struct {
	FS   fs.FS
	Path string
}

func (s FSInstructions) Instructions(ctx context.Context) (string, error) {
	if s.FS == nil {
		return "", errors.New("no asset filesystem")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("instructions are empty")
	}
	return text, nil
}

const fallbackInstructions = "Take orders, buy ingredients, bake, then wash up. " +
	"Right answers at the oven earn tips and clean dishes keep your reputation up. " +
	"Reach the target funds to win."

const defaultWrapWidth = 60

type HowToPlay struct {
	base
	src    InstructionSource
	done   func()
	width  int
	text   string
	loaded bool
	cancel context.CancelFunc
}

// NewHowToPlay starts loading instructions in the background. Until they
// arrive the screen shows a loading line; a failed load shows fallback text.
func NewHowToPlay(d scene.Deps, src InstructionSource, done func()) *HowToPlay {
	h := &HowToPlay{src: src, done: done, width: defaultWrapWidth}
	h.init(d, "howto", h)
	h.load()
	return h
}

// Rebuild relayouts for a new width and reloads. Loads started before the
// rebuild are dropped when they land.
func (h *HowToPlay) Rebuild(width int) {
	if !h.alive {
		return
	}
	if width > 0 {
		h.width = width
	}
	h.load()
}

func (h *HowToPlay) load() {
	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.loaded = false
	token := h.gen.Next()
	src := h.src
	log := h.deps.Logger()
	sched := h.deps.Sched
	go func() {
		var (
			text string
			err  error
		)
		if src == nil {
			err = errors.New("no instruction source")
		} else {
			text, err = src.Instructions(ctx)
		}
		sched.Post(h.gen.Guard(token, func() {
			if !h.alive {
				return
			}
			if err != nil {
				log.Warn("instructions unavailable, using fallback", "err", err)
				text = fallbackInstructions
			}
			h.text = text
			h.loaded = true
		}))
	}()
}

func (h *HowToPlay) Loaded() bool {
	return h.loaded
}

func (h *HowToPlay) Text() string {
	return h.text
}

func (h *HowToPlay) View() any {
	p := Panel{Title: "How to Play"}
	if !h.loaded {
		p.Loading = true
		p.Lines = []string{"Loading instructions..."}
		return p
	}
	for _, para := range strings.Split(h.text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			p.Lines = append(p.Lines, "")
			continue
		}
		p.Lines = append(p.Lines, strings.Split(ansi.Wordwrap(para, h.width, ""), "\n")...)
	}
	return p
}

func (h *HowToPlay) Actions() []scene.Action {
	return []scene.Action{continueAction("Open the trailer")}
}

func (h *HowToPlay) Act(id string) {
	if id == ActionContinue {
		h.complete(h.done)
	}
}

func (h *HowToPlay) Cleanup() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.base.Cleanup()
}

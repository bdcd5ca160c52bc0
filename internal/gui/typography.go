package gui

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
	Mono   int32
}

type fontState struct {
	base       rl.Font
	owned      bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Title:  32,
		Header: 22,
		Body:   19,
		Small:  15,
		Mono:   18,
	}
	uiFont = fontState{lineFactor: 1.34}
)

// initTypography picks the first bundled font under dir, falling back to the
// raylib default.
func initTypography(dir string) {
	uiFont.base = rl.GetFontDefault()
	candidates := []string{
		filepath.Join(dir, "fonts", "Nunito-Regular.ttf"),
		filepath.Join(dir, "fonts", "Inter-Regular.ttf"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f := rl.LoadFontEx(path, 36, nil, 0)
		if f.Texture.ID == 0 {
			continue
		}
		uiFont.base = f
		uiFont.owned = true
		break
	}
	rl.SetTextureFilter(uiFont.base.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiFont.owned && uiFont.base.Texture.ID != 0 {
		rl.UnloadFont(uiFont.base)
	}
	uiFont = fontState{lineFactor: 1.34}
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	if uiFont.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, clr)
		return
	}
	rl.DrawTextEx(uiFont.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), 1, clr)
}

func measureText(text string, size int32) int32 {
	if uiFont.base.Texture.ID == 0 {
		return rl.MeasureText(text, size)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiFont.base, text, float32(size), 1).X)))
}

func lineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiFont.lineFactor)))
}

func drawTextCentered(text string, rect rl.Rectangle, y, size int32, clr rl.Color) {
	w := measureText(text, size)
	drawText(text, int32(rect.X+(rect.Width-float32(w))/2), y, size, clr)
}

// drawLines draws lines top-down and returns the y below the last one.
func drawLines(lines []string, x, y, size int32, clr rl.Color) int32 {
	for _, line := range lines {
		drawText(line, x, y, size, clr)
		y += lineHeight(size)
	}
	return y
}

// wrapText breaks text on spaces so each line measures at most maxWidth.
// Existing newlines are kept.
func wrapText(text string, size, maxWidth int32, measure func(string, int32) int32) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate, size) <= maxWidth {
				current = candidate
				continue
			}
			out = append(out, current)
			current = word
		}
		out = append(out, current)
	}
	return out
}

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/fogleman/gg"
)

// renderCookie draws a chocolate chip cookie for the ending screens as ANSI
// half-block art, width cells wide and width/2 rows tall. Better reputation
// earns more chips; a lost game shows a bite taken out.
func renderCookie(width int, reputation float64, bitten bool) string {
	if width < 8 {
		return ""
	}
	w, h := width, width
	dc := gg.NewContext(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	r := float64(w)/2 - 1

	if bitten {
		dc.DrawCircle(cx+r*0.85, cy-r*0.7, r*0.45)
		dc.Clip()
		dc.InvertMask()
	}

	dough := gg.NewRadialGradient(cx-r*0.3, cy-r*0.3, r*0.1, cx, cy, r*1.1)
	dough.AddColorStop(0, color.RGBA{R: 0xF2, G: 0xC9, B: 0x80, A: 0xFF})
	dough.AddColorStop(1, color.RGBA{R: 0xB9, G: 0x7A, B: 0x38, A: 0xFF})
	dc.SetFillStyle(dough)
	dc.DrawCircle(cx, cy, r)
	dc.Fill()

	dc.SetRGBA(0.45, 0.25, 0.08, 0.9)
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()

	// Chip placement is seeded by the chip count so a frame never flickers.
	chips := chipCount(reputation)
	rng := rand.New(rand.NewPCG(uint64(chips), uint64(width)))
	dc.SetRGB(0.24, 0.12, 0.05)
	for i := 0; i < chips; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := math.Sqrt(rng.Float64()) * r * 0.75
		dc.DrawCircle(cx+math.Cos(angle)*dist, cy+math.Sin(angle)*dist, math.Max(1, r*0.09))
		dc.Fill()
	}
	dc.ResetClip()

	return halfBlocks(dc.Image())
}

func chipCount(reputation float64) int {
	if reputation < 0 {
		reputation = 0
	}
	return 2 + int(math.Round(reputation*4))
}

// halfBlocks packs two pixel rows into each text row using the upper half
// block with separate fore and background colours.
func halfBlocks(img image.Image) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgba8(img.At(x, y))
			var bottom color.RGBA
			if y+1 < b.Max.Y {
				bottom = rgba8(img.At(x, y+1))
			}
			if top.A < 8 && bottom.A < 8 {
				out.WriteByte(' ')
				continue
			}
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}

func rgba8(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

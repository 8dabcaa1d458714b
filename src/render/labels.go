package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Yakovliev/astrolumina/src/starchart"
)

// drawText writes text with a one-pixel shadow so it stays readable on
// both the light chart cells and the dark diagram background.
func drawText(dst *image.RGBA, x, y int, text string, col color.RGBA) {
	face := basicfont.Face7x13
	shadow := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 180}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
	}
	shadow.DrawString(text)
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}

// drawCenteredText centers text horizontally around cx.
func drawCenteredText(dst *image.RGBA, cx, y int, text string, col color.RGBA) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	tw := dr.MeasureString(text).Ceil()
	drawText(dst, cx-tw/2, y, text, col)
}

// textWidth measures text in the strip font.
func textWidth(text string) int {
	dr := &font.Drawer{Face: basicfont.Face7x13}
	return dr.MeasureString(text).Ceil()
}

// drawLegendStrip centers swatch+label pairs inside a horizontal band
// whose top edge sits at top.
func drawLegendStrip(dst *image.RGBA, top, width int, entries []starchart.LegendEntry, ink color.RGBA) {
	if len(entries) == 0 {
		return
	}
	const swatch = 10
	const gap = 16
	total := -gap
	for _, e := range entries {
		total += swatch + 4 + textWidth(e.Label) + gap
	}
	x := (width - total) / 2
	if x < 4 {
		x = 4
	}
	base := top + legendStripHeight/2 + 4
	for _, e := range entries {
		c := hexColor(e.Color)
		box := image.Rect(x, base-swatch+1, x+swatch, base+1)
		draw.Draw(dst, box, image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}), image.Point{}, draw.Src)
		drawText(dst, x+swatch+4, base, e.Label, ink)
		x += swatch + 4 + textWidth(e.Label) + gap
	}
}

// Hint draws a small hint string onto the provided image near the
// bottom-left, over a translucent box for readability.
func Hint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drawText(rgba, x, y, text, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return rgba
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// fontHeight is the natural height of the bitmap font in pixels.
const fontHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// newButtonImage builds a bordered box for drawButton. Menus make their
// boxes once and reuse them every frame.
func newButtonImage(w, h int, bgColor color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(bgColor)

	borderColor := color.RGBA{80, 80, 100, 255}
	for i := 0; i < w; i++ {
		img.Set(i, 0, borderColor)
		img.Set(i, h-1, borderColor)
	}
	for i := 0; i < h; i++ {
		img.Set(0, i, borderColor)
		img.Set(w-1, i, borderColor)
	}
	return img
}

// drawButton draws a prebuilt box at (x, y) with a centred label
func drawButton(screen, box *ebiten.Image, label string, x, y float64, textColor color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(box, op)

	b := box.Bounds()
	drawText(screen, label, x+float64(b.Dx())/2, y+float64(b.Dy())/2, fontHeight, textColor)
}

// drawText draws text centred on (centerX, centerY). size is the text
// height in pixels.
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / fontHeight
	width := text.Advance(str, face) * scale
	drawTextAt(screen, str, centerX-width/2, centerY, size, clr)
}

// drawTextAt draws text with its left edge at x, vertically centred on y
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / fontHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawLabel is drawTextAt for other packages' HUDs.
func DrawLabel(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	drawTextAt(screen, str, x, y, size, clr)
}

// LabelWidth is the width of str drawn at size.
func LabelWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / fontHeight
}

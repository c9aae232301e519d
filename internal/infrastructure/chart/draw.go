package chart

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorText       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorAxis       = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colorBar        = color.RGBA{R: 135, G: 206, B: 235, A: 255} // skyblue
	colorCritical   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorLow        = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	colorThreshold  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	colorEmpty      = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// palette colores de las porciones del gráfico de torta (se repiten si hay más categorías).
var palette = []color.RGBA{
	{R: 246, G: 112, B: 136, A: 255},
	{R: 206, G: 143, B: 49, A: 255},
	{R: 150, G: 163, B: 49, A: 255},
	{R: 50, G: 176, B: 101, A: 255},
	{R: 53, G: 172, B: 164, A: 255},
	{R: 56, G: 167, B: 208, A: 255},
	{R: 163, G: 140, B: 244, A: 255},
	{R: 244, G: 97, B: 221, A: 255},
}

var face = basicfont.Face7x13

func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)
	return img
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Over)
}

// drawText escribe s con la línea base en y.
func drawText(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawCentered escribe s centrado horizontalmente en cx.
func drawCentered(img draw.Image, cx, y int, s string, c color.Color) {
	drawText(img, cx-textWidth(s)/2, y, s, c)
}

func hLine(img draw.Image, x0, x1, y int, c color.Color) {
	fillRect(img, image.Rect(x0, y, x1, y+1), c)
}

func vLine(img draw.Image, x, y0, y1 int, c color.Color) {
	fillRect(img, image.Rect(x, y0, x+1, y1), c)
}

// dashedVLine línea vertical punteada de 2 px de ancho.
func dashedVLine(img draw.Image, x, y0, y1 int, c color.Color) {
	for y := y0; y < y1; y += 10 {
		end := y + 6
		if end > y1 {
			end = y1
		}
		fillRect(img, image.Rect(x-1, y, x+1, end), c)
	}
}

// truncate recorta s a max caracteres agregando "...".
func truncate(s string, max int) string {
	r := []rune(s)
	switch {
	case len(r) <= max:
		return s
	case max <= 0:
		return ""
	case max <= 3:
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// fillPie dibuja porciones proporcionales a fractions, empezando arriba y en sentido horario.
func fillPie(img *image.RGBA, cx, cy, radius int, fractions []float64, colors []color.RGBA) {
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			// ángulo desde las 12 en punto, sentido horario, normalizado a [0, 1)
			a := math.Atan2(float64(dx), float64(-dy)) / (2 * math.Pi)
			if a < 0 {
				a++
			}
			idx := len(fractions) - 1
			acc := 0.0
			for i, f := range fractions {
				acc += f
				if a < acc {
					idx = i
					break
				}
			}
			img.SetRGBA(x, y, colors[idx%len(colors)])
		}
	}
}

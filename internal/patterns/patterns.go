// Package patterns renders display calibration test patterns as images for
// calibration clients to show full-screen.
package patterns

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Pattern identifies one test pattern.
type Pattern uint8

const (
	ColorBars Pattern = iota
	Gradient
	BlackLevel
	WhiteLevel
	Gamma
	WhiteBalance
	Resolution
	DeadPixel
)

// All lists every available pattern.
func All() []Pattern {
	return []Pattern{ColorBars, Gradient, BlackLevel, WhiteLevel, Gamma, WhiteBalance, Resolution, DeadPixel}
}

// Name returns the URL-safe pattern name.
func (p Pattern) Name() string {
	switch p {
	case ColorBars:
		return "color_bars"
	case Gradient:
		return "gradient"
	case BlackLevel:
		return "black_level"
	case WhiteLevel:
		return "white_level"
	case Gamma:
		return "gamma"
	case WhiteBalance:
		return "white_balance"
	case Resolution:
		return "resolution"
	case DeadPixel:
		return "dead_pixel"
	default:
		return "unknown"
	}
}

// Description returns the operator guidance text for the pattern.
func (p Pattern) Description() string {
	switch p {
	case ColorBars:
		return "Standard color bars for checking color reproduction and saturation."
	case Gradient:
		return "Smooth gradient to check for banding and color transitions."
	case BlackLevel:
		return "Black level test - adjust brightness until barely visible."
	case WhiteLevel:
		return "White level test - adjust contrast for visible distinctions."
	case Gamma:
		return "Gamma calibration pattern - should appear uniform at distance."
	case WhiteBalance:
		return "White balance test - pure white should have no color cast."
	case Resolution:
		return "Resolution test pattern for checking sharpness."
	case DeadPixel:
		return "Dead pixel test - solid colors to find stuck pixels."
	default:
		return ""
	}
}

// FromName resolves a pattern by its URL-safe name.
func FromName(name string) (Pattern, bool) {
	for _, p := range All() {
		if p.Name() == strings.ToLower(name) {
			return p, true
		}
	}
	return ColorBars, false
}

// Render draws the pattern at the given size.
func Render(p Pattern, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch p {
	case ColorBars:
		renderColorBars(img)
	case Gradient:
		renderGradient(img)
	case BlackLevel:
		renderLevelPatches(img, 0, 1, "Black Level Test")
	case WhiteLevel:
		renderLevelPatches(img, 93, 1, "White Level Test")
	case Gamma:
		renderGamma(img)
	case WhiteBalance:
		fill(img, img.Bounds(), color.RGBA{255, 255, 255, 255})
		drawLabel(img, 10, 20, "Pure white - check for color cast", color.RGBA{128, 128, 128, 255})
	case Resolution:
		renderResolution(img)
	case DeadPixel:
		fill(img, img.Bounds(), color.RGBA{255, 255, 255, 255})
	}
	return img
}

// EncodePNG renders the pattern and writes it as PNG.
func EncodePNG(w io.Writer, p Pattern, width, height int) error {
	return png.Encode(w, Render(p, width, height))
}

// SMPTE-style bars at 75% amplitude.
func renderColorBars(img *image.RGBA) {
	bars := []color.RGBA{
		{191, 191, 191, 255}, // gray
		{191, 191, 0, 255},   // yellow
		{0, 191, 191, 255},   // cyan
		{0, 191, 0, 255},     // green
		{191, 0, 191, 255},   // magenta
		{191, 0, 0, 255},     // red
		{0, 0, 191, 255},     // blue
	}
	b := img.Bounds()
	barW := b.Dx() / len(bars)
	for i, c := range bars {
		r := image.Rect(b.Min.X+i*barW, b.Min.Y, b.Min.X+(i+1)*barW, b.Max.Y)
		if i == len(bars)-1 {
			r.Max.X = b.Max.X
		}
		fill(img, r, c)
	}
}

// 16-step grayscale ramp.
func renderGradient(img *image.RGBA) {
	const steps = 16
	b := img.Bounds()
	stepW := b.Dx() / steps
	for i := 0; i < steps; i++ {
		v := uint8(i * 255 / (steps - 1))
		r := image.Rect(b.Min.X+i*stepW, b.Min.Y, b.Min.X+(i+1)*stepW, b.Max.Y)
		if i == steps-1 {
			r.Max.X = b.Max.X
		}
		fill(img, r, color.RGBA{v, v, v, 255})
	}
}

// Eight labeled near-black or near-white patches.
func renderLevelPatches(img *image.RGBA, basePercent, stepPercent int, title string) {
	b := img.Bounds()
	fill(img, b, color.RGBA{0, 0, 0, 255})

	const patches = 8
	patchW := b.Dx() / (patches + 1)
	patchH := b.Dy() / 3
	y0 := b.Min.Y + b.Dy()/3

	labelCol := color.RGBA{128, 128, 128, 255}
	drawLabel(img, b.Min.X+10, b.Min.Y+20, title, labelCol)

	for i := 0; i < patches; i++ {
		pct := basePercent + i*stepPercent
		v := uint8(pct * 255 / 100)
		x0 := b.Min.X + patchW/2 + i*patchW
		fill(img, image.Rect(x0, y0, x0+patchW*3/4, y0+patchH), color.RGBA{v, v, v, 255})
		drawLabel(img, x0, y0+patchH+16, fmt.Sprintf("%d%%", pct), labelCol)
	}
}

// Alternating line pairs that average to mid-gray next to a solid patch.
func renderGamma(img *image.RGBA) {
	b := img.Bounds()
	half := b.Min.X + b.Dx()/2

	for y := b.Min.Y; y < b.Max.Y; y++ {
		var c color.RGBA
		if y%2 == 0 {
			c = color.RGBA{255, 255, 255, 255}
		} else {
			c = color.RGBA{0, 0, 0, 255}
		}
		fill(img, image.Rect(b.Min.X, y, half, y+1), c)
	}

	// 2.2-gamma mid-gray: (0.5)^(1/2.2) ≈ 0.73
	fill(img, image.Rect(half, b.Min.Y, b.Max.X, b.Max.Y), color.RGBA{186, 186, 186, 255})
}

// One-pixel checkerboard plus single-pixel grid lines.
func renderResolution(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawLabel(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

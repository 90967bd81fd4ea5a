package backdrop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// placement returns the horizontal and vertical scale plus the offset, in
// canvas pixels, that mode assigns to a w*h image on a W*H canvas. Only
// stretch scales the axes independently; fill and fit compare the canvas
// aspect ratio against the image's to pick the dominating axis and center
// on the other. Center truncates to integer pixel boundaries to prevent
// loss of clarity on unscaled images (this only matters for odd sizes).
func placement(mode Mode, w, h, W, H int) (sx, sy, ox, oy float64) {
	width, height := float64(w), float64(h)
	canvasWidth, canvasHeight := float64(W), float64(H)
	switch mode {
	case Stretch:
		sx = canvasWidth / width
		sy = canvasHeight / height
	case Fill:
		if canvasWidth/canvasHeight > width/height {
			sx = canvasWidth / width
			oy = (canvasHeight - height*sx) / 2
		} else {
			sx = canvasHeight / height
			ox = (canvasWidth - width*sx) / 2
		}
		sy = sx
	case Fit:
		if canvasWidth/canvasHeight > width/height {
			sx = canvasHeight / height
			ox = (canvasWidth - width*sx) / 2
		} else {
			sx = canvasWidth / width
			oy = (canvasHeight - height*sx) / 2
		}
		sy = sx
	case Center:
		sx, sy = 1, 1
		ox = float64(int(canvasWidth/2 - width/2))
		oy = float64(int(canvasHeight/2 - height/2))
	case Tile:
		sx, sy = 1, 1
	default:
		panic(fmt.Sprintf("backdrop: cannot composite %s mode", mode))
	}
	return
}

// Render paints img onto canvas under the given background mode with
// bilinear filtering and a uniform opacity in [0, 1]. The canvas is not
// cleared first; any base color must be filled in beforehand. SolidColor
// and Invalid are programming errors here and panic; they must be handled
// before rendering (see Options.Draw).
func Render(canvas draw.Image, img image.Image, mode Mode, opacity float64) {
	b := canvas.Bounds()
	sb := img.Bounds()
	w, h := sb.Dx(), sb.Dy()
	sx, sy, ox, oy := placement(mode, w, h, b.Dx(), b.Dy())

	mask := image.NewUniform(color.Alpha16{uint16(math.Round(opacity * 0xFFFF))})
	switch mode {
	case Center:
		r := image.Rect(0, 0, w, h).Add(b.Min).Add(image.Pt(int(ox), int(oy)))
		draw.DrawMask(canvas, r, img, sb.Min, mask, image.Point{}, draw.Over)
	case Tile:
		// The image repeats in both directions from the canvas origin.
		for y := 0; y < b.Dy(); y += h {
			for x := 0; x < b.Dx(); x += w {
				r := image.Rect(0, 0, w, h).Add(b.Min).Add(image.Pt(x, y))
				draw.DrawMask(canvas, r, img, sb.Min, mask, image.Point{}, draw.Over)
			}
		}
	default:
		m := f64.Aff3{
			sx, 0, float64(b.Min.X) + ox - sx*float64(sb.Min.X),
			0, sy, float64(b.Min.Y) + oy - sy*float64(sb.Min.Y),
		}
		draw.BiLinear.Transform(canvas, m, img, sb, draw.Over, &draw.Options{SrcMask: mask})
	}
}

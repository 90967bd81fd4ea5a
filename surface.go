package backdrop

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Surface is the canonical in-memory pixel buffer used for all compositing:
// 32 bits per pixel holding 0x00RRGGBB in native word order, with the top
// byte unused. Rows are Stride bytes apart; Stride may exceed Width*4 due
// to row padding. A Surface is exclusively owned by its render pass.
type Surface struct {
	// Pix holds the pixel data as Stride*Height bytes.
	Pix []byte
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	// Width and Height are the surface dimensions in pixels.
	Width, Height int
}

// NewSurface creates a new Surface with the given dimensions and
// row-packed stride.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Pix:    make([]byte, width*4*height),
		Stride: width * 4,
		Width:  width,
		Height: height,
	}
}

// FromImage converts any image to a canonical Surface.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	draw.Draw(s, s.Bounds(), img, b.Min, draw.Src)
	return s
}

// ColorModel returns the Surface's color model.
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds returns the domain for which At can return non-zero color.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.Width, s.Height) }

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return y*s.Stride + x*4
}

// At returns the color of the pixel at (x, y). The surface is opaque, so
// alpha is always 0xFF.
func (s *Surface) At(x, y int) color.Color {
	if !image.Pt(x, y).In(s.Bounds()) {
		return color.RGBA{}
	}
	p := binary.NativeEndian.Uint32(s.Pix[s.PixOffset(x, y):])
	return color.RGBA{uint8(p >> 16), uint8(p >> 8), uint8(p), 0xFF}
}

// Set sets the pixel at (x, y) to c, discarding alpha.
func (s *Surface) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(s.Bounds()) {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	p := uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
	binary.NativeEndian.PutUint32(s.Pix[s.PixOffset(x, y):], p)
}

package backdrop

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

const defaultOpacity = 1.0

// ErrInvalidMode is returned when a background is drawn with an
// unrecognized mode.
var ErrInvalidMode = errors.New("invalid background mode")

// Options represents options that can be used to configure a background
// draw.
type Options struct {
	Mode    Mode
	Color   color.Color
	Opacity float64
}

// NewOptions creates a new option with default setting.
func NewOptions() *Options {
	return &Options{Mode: Fill, Color: color.Black, Opacity: defaultOpacity}
}

// SetMode sets the value for the Mode field.
func (opts *Options) SetMode(mode Mode) *Options {
	opts.Mode = mode
	return opts
}

// SetColor sets the base color filled before any image is composited, and
// the whole background for SolidColor.
func (opts *Options) SetColor(c color.Color) *Options {
	opts.Color = c
	return opts
}

// SetOpacity sets the image opacity in [0, 1].
func (opts *Options) SetOpacity(opacity float64) *Options {
	opts.Opacity = opacity
	return opts
}

// Draw renders the background onto canvas: it fills the base color, then
// composites img under the configured mode. SolidColor stops after the
// fill and ignores img. It is the one place that keeps Invalid and
// SolidColor away from Render.
func (opts *Options) Draw(canvas draw.Image, img image.Image) error {
	if opts.Mode == Invalid {
		return ErrInvalidMode
	}
	if opts.Color != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Color), image.Point{}, draw.Src)
	}
	if opts.Mode == SolidColor {
		return nil
	}
	if img == nil {
		return errors.New("no background image")
	}
	Render(canvas, img, opts.Mode, opts.Opacity)
	return nil
}

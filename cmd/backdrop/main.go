package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/sunshineplan/backdrop"
	"github.com/sunshineplan/utils/log"
)

var (
	img       = flag.String("image", "", "")
	mode      = new(backdrop.Mode)
	colorFlag = flag.String("color", "#000000", "")
	width     = flag.Int("width", 1920, "")
	height    = flag.Int("height", 1080, "")
	alpha     = flag.Float64("alpha", 1, "")
	raw       = flag.String("raw", "", "")
	rawFormat = new(backdrop.PixelFormat)
	rawWidth  = flag.Int("raw-width", 0, "")
	rawHeight = flag.Int("raw-height", 0, "")
	rawStride = flag.Int("raw-stride", 0, "")
	transform = new(backdrop.Transform)
	output    = flag.String("output", "output.png", "")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --image
		background image file (jpg, png, gif, tif, bmp, webp and pdf are supported)
  --mode
		background mode (stretch, fill, fit, center, tile, solid_color, default: fill)
  --color
		background color (#rrggbb, default: #000000)
  --width, --height
		canvas size (default: 1920x1080)
  --alpha
		image opacity (range 0-1, default: 1)
  --raw
		raw framebuffer dump used instead of --image
  --raw-format
		raw pixel format (e.g. xrgb8888, xbgr2101010, bgr888, default: xrgb8888)
  --raw-width, --raw-height, --raw-stride
		raw buffer geometry, stride defaults to width*4
  --transform
		raw output transform (normal, 90, 180, 270, flipped, flipped-90,
		flipped-180, flipped-270, default: normal)
  --output
		output file, format chosen by extension (default: output.png)`)
}

func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color: %s", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color: %s", s)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func load() (image.Image, error) {
	if *raw != "" {
		buf, err := os.ReadFile(*raw)
		if err != nil {
			return nil, err
		}
		stride := *rawStride
		if stride == 0 {
			stride = *rawWidth * 4
		}
		s, err := backdrop.FromBuffer(buf, *rawFormat, *rawWidth, *rawHeight, stride, *transform)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := backdrop.Open(*img)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	flag.Usage = usage
	flag.TextVar(mode, "mode", backdrop.Fill, "")
	flag.TextVar(rawFormat, "raw-format", backdrop.XRGB8888, "")
	flag.TextVar(transform, "transform", backdrop.TransformNormal, "")
	flag.Parse()

	c, err := parseColor(*colorFlag)
	if err != nil {
		log.Error("Failed to parse color", "color", *colorFlag, "error", err)
		os.Exit(1)
	}

	opts := backdrop.NewOptions().SetMode(*mode).SetColor(c).SetOpacity(*alpha)
	canvas := backdrop.NewSurface(*width, *height)

	var background image.Image
	if *mode != backdrop.SolidColor {
		if background, err = load(); err != nil {
			log.Error("Failed to load background image", "error", err)
			os.Exit(1)
		}
	}
	if err := opts.Draw(canvas, background); err != nil {
		log.Error("Failed to draw background", "error", err)
		os.Exit(1)
	}

	if err := backdrop.Save(*output, canvas, backdrop.JPEGQuality(90)); err != nil {
		log.Error("Failed to save output", "output", *output, "error", err)
		os.Exit(1)
	}
}

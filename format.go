package backdrop

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/sunshineplan/utils/log"
)

// PixelFormat identifies the hardware pixel encoding of a compositor
// buffer. The names follow the little-endian packed layouts used by
// display drivers: XRGB8888 stores, from lowest byte to highest,
// B, G, R, X.
type PixelFormat int

// Supported pixel formats.
const (
	XRGB8888 PixelFormat = iota
	ARGB8888
	XBGR8888
	ABGR8888
	XRGB2101010
	ARGB2101010
	XBGR2101010
	ABGR2101010
	RGBX1010102
	RGBA1010102
	BGRX1010102
	BGRA1010102
	BGR888
	RGB888
)

var pixelFormatNames = map[PixelFormat]string{
	XRGB8888:    "xrgb8888",
	ARGB8888:    "argb8888",
	XBGR8888:    "xbgr8888",
	ABGR8888:    "abgr8888",
	XRGB2101010: "xrgb2101010",
	ARGB2101010: "argb2101010",
	XBGR2101010: "xbgr2101010",
	ABGR2101010: "abgr2101010",
	RGBX1010102: "rgbx1010102",
	RGBA1010102: "rgba1010102",
	BGRX1010102: "bgrx1010102",
	BGRA1010102: "bgra1010102",
	BGR888:      "bgr888",
	RGB888:      "rgb888",
}

func (f PixelFormat) String() string {
	if name, ok := pixelFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// ParsePixelFormat parses a pixel format name such as "xrgb8888".
func ParsePixelFormat(s string) (PixelFormat, error) {
	s = strings.ToLower(s)
	for f, name := range pixelFormatNames {
		if s == name {
			return f, nil
		}
	}
	return -1, fmt.Errorf("unknown pixel format: %s", s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (f PixelFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (f *PixelFormat) UnmarshalText(text []byte) (err error) {
	*f, err = ParsePixelFormat(string(text))
	return
}

var hostBigEndian = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

// Normalize rewrites every pixel of s in place from format's encoding into
// the canonical representation. The buffer must hold raw bytes of the
// stated format, as moved by Orient, which copies without interpreting
// pixel bits. Alpha channels are discarded. An unknown format is treated
// as XRGB8888 with a warning; colors may look wrong but rendering
// proceeds.
func (s *Surface) Normalize(format PixelFormat) {
	switch format {
	case XBGR8888, ABGR8888:
		s.fromXBGR32()
	case XRGB2101010, ARGB2101010:
		s.from2101010(22, 12, 2)
	case XBGR2101010, ABGR2101010:
		s.from2101010(2, 12, 22)
	case RGBX1010102, RGBA1010102:
		s.from2101010(24, 14, 4)
	case BGRX1010102, BGRA1010102:
		s.from2101010(4, 14, 24)
	case BGR888, RGB888:
		s.from888()
		if format == RGB888 {
			s.swapRB()
		}
	default:
		log.Warn("Unknown pixel format, assuming XRGB8888, colors may look wrong", "format", format)
		fallthrough
	case XRGB8888, ARGB8888:
		// xrgb8888 little endian is already canonical on little-endian
		// hosts.
		if hostBigEndian {
			s.fromXRGB32LE()
		}
	}
}

// fromXBGR32 swaps the red and blue channels of little-endian
// xbgr8888/abgr8888 pixels, zeroing the unused top byte.
func (s *Surface) fromXBGR32() {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			pix := s.Pix[s.PixOffset(x, y):]
			c := binary.LittleEndian.Uint32(pix)
			binary.NativeEndian.PutUint32(pix, (c&0xFF)<<16|c&0xFF00|(c>>16)&0xFF)
		}
	}
}

// from2101010 unpacks a 10-10-10-2 encoding given the right-shift that
// brings the top 8 bits of each channel's field down to bit 0. The low 2
// bits of each 10-bit channel are truncated, not rounded.
func (s *Surface) from2101010(r, g, b int) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			pix := s.Pix[s.PixOffset(x, y):]
			c := binary.LittleEndian.Uint32(pix)
			binary.NativeEndian.PutUint32(pix, (c>>r&0xFF)<<16|(c>>g&0xFF)<<8|c>>b&0xFF)
		}
	}
}

// from888 widens 3-byte pixels to canonical 4-byte pixels in place. Each
// row is processed from its highest x to its lowest so that the widening
// never overwrites a source byte that has not been consumed yet; this
// direction is a hard invariant of the in-place expansion. The source
// byte order is taken as bgr888 little endian (lowest byte R); rgb888
// needs a swapRB pass afterwards.
func (s *Surface) from888() {
	for y := 0; y < s.Height; y++ {
		row := s.Pix[y*s.Stride:]
		for x := s.Width - 1; x >= 0; x-- {
			src := row[x*3 : x*3+3]
			c := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
			binary.NativeEndian.PutUint32(row[x*4:], c)
		}
	}
}

// swapRB swaps the red and blue channels of canonical pixels.
func (s *Surface) swapRB() {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			pix := s.Pix[s.PixOffset(x, y):]
			c := binary.NativeEndian.Uint32(pix)
			binary.NativeEndian.PutUint32(pix, (c&0xFF)<<16|c&0xFF00|(c>>16)&0xFF)
		}
	}
}

// fromXRGB32LE rebuilds little-endian xrgb8888 pixels as native words.
// Only needed on big-endian hosts.
func (s *Surface) fromXRGB32LE() {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			pix := s.Pix[s.PixOffset(x, y):]
			binary.NativeEndian.PutUint32(pix, binary.LittleEndian.Uint32(pix)&0xFFFFFF)
		}
	}
}

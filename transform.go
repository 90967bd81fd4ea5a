package backdrop

import (
	"fmt"
	"strings"
)

// Transform is an output rotation/flip state describing how a display's
// pixel buffer must be reoriented for upright presentation. The flipped
// variants mirror horizontally before rotating.
type Transform int

// Output transforms.
const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)

var transformNames = map[Transform]string{
	TransformNormal:     "normal",
	Transform90:         "90",
	Transform180:        "180",
	Transform270:        "270",
	TransformFlipped:    "flipped",
	TransformFlipped90:  "flipped-90",
	TransformFlipped180: "flipped-180",
	TransformFlipped270: "flipped-270",
}

func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Transform(%d)", int(t))
}

// ParseTransform parses a transform name such as "flipped-90".
func ParseTransform(s string) (Transform, error) {
	s = strings.ToLower(s)
	for t, name := range transformNames {
		if s == name {
			return t, nil
		}
	}
	return -1, fmt.Errorf("unknown transform: %s", s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Transform) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Transform) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTransform(string(text))
	return
}

// rotated reports whether t swaps the buffer's width and height.
func (t Transform) rotated() bool {
	switch t {
	case Transform90, Transform270, TransformFlipped90, TransformFlipped270:
		return true
	}
	return false
}

// setRaw copies one 4-byte pixel from buf at offset off into s at (x, y),
// tolerating a short tail from sub-32bpp sources.
func (s *Surface) setRaw(x, y int, buf []byte, off int) {
	if off >= len(buf) {
		return
	}
	end := off + 4
	if end > len(buf) {
		end = len(buf)
	}
	copy(s.Pix[y*s.Stride+x*4:], buf[off:end])
}

// Orient copies a raw pixel buffer into a freshly allocated Surface,
// reordering 4-byte pixels according to transform. The destination
// dimensions are swapped for the 90/270 family. Bytes are moved without
// interpreting pixel format; Normalize the result afterwards.
//
// Most of these cases are mostly-copy-and-pasted boilerplate. The only
// interesting differences between them are the definitions of srcx and
// srcy, and which of them keep rows contiguous enough for bulk copies.
func Orient(buf []byte, width, height, stride int, transform Transform) *Surface {
	var s *Surface
	if transform.rotated() {
		s = NewSurface(height, width)
	} else {
		s = NewSurface(width, height)
	}

	minStride := stride
	if s.Stride < minStride {
		minStride = s.Stride
	}

	switch transform {
	case Transform90:
		for desty := 0; desty < s.Height; desty++ {
			srcx := desty
			for destx := 0; destx < s.Width; destx++ {
				srcy := s.Width - destx - 1
				s.setRaw(destx, desty, buf, srcy*stride+srcx*4)
			}
		}
	case Transform180:
		for desty := 0; desty < s.Height; desty++ {
			srcy := s.Height - desty - 1
			for destx := 0; destx < s.Width; destx++ {
				srcx := s.Width - destx - 1
				s.setRaw(destx, desty, buf, srcy*stride+srcx*4)
			}
		}
	case Transform270:
		for desty := 0; desty < s.Height; desty++ {
			srcx := s.Height - desty - 1
			for destx := 0; destx < s.Width; destx++ {
				srcy := destx
				s.setRaw(destx, desty, buf, srcy*stride+srcx*4)
			}
		}
	case TransformFlipped:
		for desty := 0; desty < s.Height; desty++ {
			srcy := desty
			for destx := 0; destx < s.Width; destx++ {
				srcx := s.Width - destx - 1
				s.setRaw(destx, desty, buf, srcy*stride+srcx*4)
			}
		}
	case TransformFlipped90:
		for desty := 0; desty < s.Height; desty++ {
			srcx := desty
			for destx := 0; destx < s.Width; destx++ {
				srcy := destx
				s.setRaw(destx, desty, buf, srcy*stride+srcx*4)
			}
		}
	case TransformFlipped180:
		// A pure vertical mirror keeps rows contiguous, so copy whole
		// rows in reverse order.
		for desty := 0; desty < s.Height; desty++ {
			srcy := s.Height - desty - 1
			copy(s.Pix[desty*s.Stride:desty*s.Stride+minStride], buf[srcy*stride:])
		}
	case TransformFlipped270:
		for desty := 0; desty < s.Height; desty++ {
			srcx := s.Height - desty - 1
			for destx := 0; destx < s.Width; destx++ {
				srcy := s.Width - destx - 1
				s.setRaw(destx, desty, buf, srcy*stride+srcx*4)
			}
		}
	default:
		// In most cases the transform is normal, which is one big copy
		// when the strides agree.
		if stride == s.Stride {
			copy(s.Pix, buf[:s.Height*s.Stride])
		} else {
			for y := 0; y < s.Height; y++ {
				copy(s.Pix[y*s.Stride:y*s.Stride+minStride], buf[y*stride:])
			}
		}
	}

	return s
}

// FromBuffer builds a canonical Surface from a raw compositor buffer:
// it validates the supplied geometry, reorients the raw bytes per
// transform and then normalizes the pixels from format. This is the
// entry point for screen-capture backgrounds.
func FromBuffer(buf []byte, format PixelFormat, width, height, stride int, transform Transform) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer size: %dx%d", width, height)
	}
	if len(buf) < stride*height {
		return nil, fmt.Errorf("buffer length %d, need %d", len(buf), stride*height)
	}
	s := Orient(buf, width, height, stride, transform)
	s.Normalize(format)
	return s, nil
}

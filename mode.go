package backdrop

import (
	"fmt"

	"github.com/sunshineplan/utils/log"
)

// Mode is the policy governing how a background image is scaled and
// positioned relative to a differently-sized canvas.
type Mode int

// Background modes.
const (
	Stretch Mode = iota
	Fill
	Fit
	Center
	Tile
	SolidColor
	// Invalid is the sentinel returned for unrecognized mode names. It
	// must be rejected before any rendering occurs.
	Invalid Mode = -1
)

var modeNames = map[Mode]string{
	Stretch:    "stretch",
	Fill:       "fill",
	Fit:        "fit",
	Center:     "center",
	Tile:       "tile",
	SolidColor: "solid_color",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "invalid"
}

// ParseMode maps a background mode name to its Mode. Unrecognized names
// yield Invalid.
func ParseMode(s string) Mode {
	for m, name := range modeNames {
		if s == name {
			return m
		}
	}
	log.Error("Unsupported background mode", "mode", s)
	return Invalid
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Mode) UnmarshalText(text []byte) error {
	for mode, name := range modeNames {
		if string(text) == name {
			*m = mode
			return nil
		}
	}
	*m = Invalid
	return fmt.Errorf("unsupported background mode: %s", text)
}

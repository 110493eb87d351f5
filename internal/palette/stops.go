package palette

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNoStops reports a colour stop list without entries.
var ErrNoStops = errors.New("colour stop list is empty")

// Stops holds the ordered colour stops for elevations below and above the
// ocean height. Both lists run from the lowest band to the highest.
type Stops struct {
	Below []color.RGBA `json:"below"`
	Above []color.RGBA `json:"above"`
}

// Validate reports an error when either side has no stops.
func (s Stops) Validate() error {
	if len(s.Below) == 0 {
		return fmt.Errorf("%w: below ocean", ErrNoStops)
	}
	if len(s.Above) == 0 {
		return fmt.Errorf("%w: above ocean", ErrNoStops)
	}
	return nil
}

// Clone returns a copy that does not share backing arrays with s.
func (s Stops) Clone() Stops {
	return Stops{
		Below: append([]color.RGBA(nil), s.Below...),
		Above: append([]color.RGBA(nil), s.Above...),
	}
}

// DefaultStops returns the reference topographic palette: ten ocean depths and
// nineteen land bands from beach to snow.
func DefaultStops() Stops {
	return Stops{
		Below: []color.RGBA{
			rgb(8, 14, 48),
			rgb(10, 22, 66),
			rgb(12, 32, 86),
			rgb(16, 44, 106),
			rgb(20, 58, 126),
			rgb(26, 74, 146),
			rgb(34, 92, 164),
			rgb(46, 112, 180),
			rgb(64, 134, 194),
			rgb(88, 158, 206),
		},
		Above: []color.RGBA{
			rgb(214, 204, 150),
			rgb(196, 196, 128),
			rgb(156, 188, 104),
			rgb(118, 176, 84),
			rgb(90, 160, 70),
			rgb(70, 144, 60),
			rgb(58, 128, 52),
			rgb(52, 112, 48),
			rgb(70, 110, 50),
			rgb(96, 112, 56),
			rgb(122, 114, 64),
			rgb(138, 110, 72),
			rgb(128, 100, 76),
			rgb(118, 98, 84),
			rgb(120, 110, 102),
			rgb(140, 134, 128),
			rgb(170, 168, 166),
			rgb(210, 210, 212),
			rgb(246, 246, 250),
		},
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// ErrUnknownPicker reports a picker name with no registered factory.
var ErrUnknownPicker = errors.New("unknown colour picker")

// Picker maps an elevation and a moisture value in [0, 1] to a base colour.
type Picker interface {
	Pick(height uint16, moisture float64) color.RGBA
}

// PickerConfig carries what a picker factory may build on.
type PickerConfig struct {
	Colors *ColorMap
	Ocean  uint16
}

// Factory constructs a Picker.
type Factory func(cfg PickerConfig) Picker

var pickers = map[string]Factory{}

// Register adds a picker factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	pickers[name] = f
}

// Pickers exposes the registry of available picker factories.
func Pickers() map[string]Factory {
	return pickers
}

// Names returns the registered picker names in sorted order.
func Names() []string {
	names := make([]string, 0, len(pickers))
	for name := range pickers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPicker builds the picker registered under name.
func NewPicker(name string, cfg PickerConfig) (Picker, error) {
	f, ok := pickers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownPicker, name, Names())
	}
	return f(cfg), nil
}

func init() {
	Register("topographic", func(cfg PickerConfig) Picker {
		return cfg.Colors
	})
}

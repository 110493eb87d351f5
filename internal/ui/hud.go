//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"relief/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// infoKeys are read-only snapshot entries listed under the controls.
var infoKeys = []string{"seed", "side", "picker", "corners"}

var keyHelp = []string{
	"R  regenerate",
	"S  new seed",
	"1  elevation",
	"2  sea mask",
	"Q  quit",
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 18, B: 22, A: 255}
)

// HUD renders the parameter panel to the right of the map.
type HUD struct {
	surface  core.Surface
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []controlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the surface. Controls are taken from the
// surface when it provides them.
func NewHUD(surface core.Surface, width int) *HUD {
	h := &HUD{surface: surface, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := surface.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := controlsTop + i*lineHeight
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, controlState{control: ctrl, top: top, minus: minus, plus: plus})
		}
	}
	h.intSetter, _ = surface.(core.IntParameterSetter)
	h.floatSetter, _ = surface.(core.FloatParameterSetter)
	return h
}

// Update refreshes the parameter snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.surface.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(h.snapshot)
	}
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.surface.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawInfo()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case p.In(state.minus):
			h.adjust(state, -1)
			return
		case p.In(state.plus):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *controlState, direction int) {
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter.SetIntParameter(state.control.Key, int(target)) {
			state.set(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.set(target)
		}
	}
}

// target returns the next value one step in direction, clamped to the
// control bounds. ok is false when the value cannot move or no setter exists.
func (h *HUD) target(state *controlState, direction int) (float64, bool) {
	if !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(math.Round(step), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := state.value + float64(direction)*step
	if ctrl.HasMin {
		next = math.Max(next, ctrl.Min)
	}
	if ctrl.HasMax {
		next = math.Min(next, ctrl.Max)
	}
	if math.Abs(next-state.value) < 1e-9 {
		return 0, false
	}
	return next, true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title(), face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)

		value, col := "--", dimColor
		if state.hasValue {
			value, col = state.format(), textColor
		}
		width := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.minus.Min.X-buttonGap-width, baseline, col)

		_, canLower := h.target(state, -1)
		_, canRaise := h.target(state, 1)
		h.drawButton(state.minus, "-", canLower)
		h.drawButton(state.plus, "+", canRaise)
	}
}

func (h *HUD) drawInfo() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, key := range infoKeys {
		p, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
		y += infoLine
	}
	y += infoLine
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += infoLine
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) title() string {
	if h.surface == nil || h.surface.Name() == "" {
		return "Controls"
	}
	return h.surface.Name() + " controls"
}

type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	p, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	s.set(parsed)
}

func (s *controlState) set(v float64) {
	s.value = v
	s.hasValue = true
}

func (s *controlState) format() string {
	if s.control.Type == core.ParamTypeInt {
		return strconv.Itoa(int(s.value))
	}
	precision := 1
	switch step := s.control.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(s.value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 24
	infoLine       = 16
	controlsTop    = panelPadding + headerBaseline + 14
)

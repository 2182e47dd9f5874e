package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"pixelsand/internal/core"
)

// Material is one selectable entry of the palette panel.
type Material struct {
	Value uint8
	Name  string
	Color color.RGBA
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// panelState holds everything about the side panel that does not need a
// graphics context: layout, selection and parameter adjustment.
type panelState struct {
	width int
	title string

	materials []Material
	swatches  []image.Rectangle
	selected  int

	controls    []controlState
	controlsTop int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	status []string
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	swatchSize     = 28
	swatchGap      = 8
	sectionGap     = 18
	statusLines    = 4
	statusLeading  = 16
)

func newPanelState(sim core.Sim, width int, materials []Material) *panelState {
	if width < 0 {
		width = 0
	}
	s := &panelState{width: width, materials: materials, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		s.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			s.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		s.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		s.floatSetter = setter
	}
	s.layout()
	return s
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

// layout places the material swatches in rows under the title, followed by a
// status block and then one row per parameter control.
func (s *panelState) layout() {
	top := panelPadding + headerBaseline + swatchGap
	perRow := max(1, (s.width-2*panelPadding+swatchGap)/(swatchSize+swatchGap))
	s.swatches = make([]image.Rectangle, len(s.materials))
	for i := range s.materials {
		col, row := i%perRow, i/perRow
		x := panelPadding + col*(swatchSize+swatchGap)
		y := top + row*(swatchSize+swatchGap)
		s.swatches[i] = image.Rect(x, y, x+swatchSize, y+swatchSize)
	}
	rows := (len(s.materials) + perRow - 1) / perRow
	bottom := top + rows*(swatchSize+swatchGap)
	s.controlsTop = bottom + sectionGap + statusLines*statusLeading + sectionGap
	for i := range s.controls {
		rowTop := s.controlsTop + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(s.width-panelPadding-buttonSize, buttonY, s.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		s.controls[i].top = rowTop
		s.controls[i].minusRect = minusRect
		s.controls[i].plusRect = plusRect
	}
}

// statusTop is the baseline of the first status line.
func (s *panelState) statusTop() int {
	return s.controlsTop - sectionGap - statusLines*statusLeading + statusLeading
}

// Selected returns the highlighted material. ok is false when the panel has
// no materials.
func (s *panelState) Selected() (Material, bool) {
	if s.selected < 0 || s.selected >= len(s.materials) {
		return Material{}, false
	}
	return s.materials[s.selected], true
}

// Select highlights the i-th material. Out-of-range indices are ignored.
func (s *panelState) Select(i int) {
	if i >= 0 && i < len(s.materials) {
		s.selected = i
	}
}

func (s *panelState) setStatus(lines ...string) {
	if len(lines) > statusLines {
		lines = lines[:statusLines]
	}
	s.status = lines
}

func (s *panelState) refresh(snapshot core.ParameterSnapshot) {
	for i := range s.controls {
		state := &s.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// click handles a press at panel-local coordinates and reports whether the
// panel consumed it.
func (s *panelState) click(x, y int) bool {
	pt := image.Pt(x, y)
	for i, r := range s.swatches {
		if pt.In(r) {
			s.selected = i
			return true
		}
	}
	for i := range s.controls {
		state := &s.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			s.adjust(state, -1)
			return true
		}
		if pt.In(state.plusRect) {
			s.adjust(state, 1)
			return true
		}
	}
	return x >= 0 && x < s.width
}

// target computes the value one step away from the control's current value.
// ok is false when no setter is available or the bound is already reached.
func (s *panelState) target(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if s.intSetter == nil {
			return 0, false
		}
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		next := ctrl.Clamp(float64(state.intValue + direction*step))
		return next, int(next) != state.intValue
	case core.ParamTypeFloat:
		if s.floatSetter == nil {
			return 0, false
		}
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		next := ctrl.Clamp(state.floatValue + float64(direction)*step)
		return next, math.Abs(next-state.floatValue) >= 1e-9
	}
	return 0, false
}

func (s *panelState) canAdjust(state *controlState, direction int) bool {
	_, ok := s.target(state, direction)
	return state.hasValue && ok
}

func (s *panelState) adjust(state *controlState, direction int) {
	next, ok := s.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(next)
		if s.intSetter.SetIntParameter(state.control.Key, v) {
			state.intValue = v
			state.floatValue = next
			state.value = strconv.Itoa(v)
		}
	case core.ParamTypeFloat:
		if s.floatSetter.SetFloatParameter(state.control.Key, next) {
			state.floatValue = next
			state.value = formatFloat(state.control, next)
		}
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

package theme

import "slices"

// Update is a single-field assignment within one configuration group. The
// group type parameter keeps updates for one group from being applied to
// another; values can only be built through the constructors in this file.
type Update[G any] interface {
	// Field is the serialised field name, e.g. "hueShift".
	Field() string
	// Value is the typed payload carried by the update.
	Value() any
	apply(*G)
}

// BackgroundUpdate assigns one field of the background group.
type BackgroundUpdate = Update[Background]

// SimulationUpdate assigns one field of the simulation group.
type SimulationUpdate = Update[Simulation]

// PaletteUpdate assigns one field of the palette group.
type PaletteUpdate = Update[Palette]

type fieldUpdate[G any, V any] struct {
	field string
	value V
	set   func(*G, V)
}

func (u fieldUpdate[G, V]) Field() string { return u.field }

func (u fieldUpdate[G, V]) Value() any { return u.value }

func (u fieldUpdate[G, V]) apply(g *G) { u.set(g, u.value) }

func newUpdate[G any, V any](field string, value V, set func(*G, V)) Update[G] {
	return fieldUpdate[G, V]{field: field, value: value, set: set}
}

func SetBaseColor1(v string) BackgroundUpdate {
	return newUpdate("baseColor1", v, func(b *Background, v string) { b.BaseColor1 = v })
}

func SetBaseColor2(v string) BackgroundUpdate {
	return newUpdate("baseColor2", v, func(b *Background, v string) { b.BaseColor2 = v })
}

// SetHueShift sets the hue rotation in degrees.
func SetHueShift(v float64) BackgroundUpdate {
	return newUpdate("hueShift", v, func(b *Background, v float64) { b.HueShift = v })
}

func SetNoiseIntensity(v float64) BackgroundUpdate {
	return newUpdate("noiseIntensity", v, func(b *Background, v float64) { b.NoiseIntensity = v })
}

func SetScanlineIntensity(v float64) BackgroundUpdate {
	return newUpdate("scanlineIntensity", v, func(b *Background, v float64) { b.ScanlineIntensity = v })
}

func SetSpeed(v float64) BackgroundUpdate {
	return newUpdate("speed", v, func(b *Background, v float64) { b.Speed = v })
}

func SetScanlineFrequency(v float64) BackgroundUpdate {
	return newUpdate("scanlineFrequency", v, func(b *Background, v float64) { b.ScanlineFrequency = v })
}

func SetWarpAmount(v float64) BackgroundUpdate {
	return newUpdate("warpAmount", v, func(b *Background, v float64) { b.WarpAmount = v })
}

func SetResolutionScale(v float64) BackgroundUpdate {
	return newUpdate("resolutionScale", v, func(b *Background, v float64) { b.ResolutionScale = v })
}

// SetVerticalPosition moves the shader focus; 0 is centred.
func SetVerticalPosition(v float64) BackgroundUpdate {
	return newUpdate("verticalPosition", v, func(b *Background, v float64) { b.VerticalPosition = v })
}

func SetMouseForce(v float64) SimulationUpdate {
	return newUpdate("mouseForce", v, func(s *Simulation, v float64) { s.MouseForce = v })
}

func SetCursorSize(v float64) SimulationUpdate {
	return newUpdate("cursorSize", v, func(s *Simulation, v float64) { s.CursorSize = v })
}

func SetIsViscous(v bool) SimulationUpdate {
	return newUpdate("isViscous", v, func(s *Simulation, v bool) { s.IsViscous = v })
}

func SetViscous(v float64) SimulationUpdate {
	return newUpdate("viscous", v, func(s *Simulation, v float64) { s.Viscous = v })
}

func SetIterationsViscous(v int) SimulationUpdate {
	return newUpdate("iterationsViscous", v, func(s *Simulation, v int) { s.IterationsViscous = v })
}

func SetIterationsPoisson(v int) SimulationUpdate {
	return newUpdate("iterationsPoisson", v, func(s *Simulation, v int) { s.IterationsPoisson = v })
}

func SetDt(v float64) SimulationUpdate {
	return newUpdate("dt", v, func(s *Simulation, v float64) { s.Dt = v })
}

func SetBFECC(v bool) SimulationUpdate {
	return newUpdate("BFECC", v, func(s *Simulation, v bool) { s.BFECC = v })
}

func SetResolution(v float64) SimulationUpdate {
	return newUpdate("resolution", v, func(s *Simulation, v float64) { s.Resolution = v })
}

func SetIsBounce(v bool) SimulationUpdate {
	return newUpdate("isBounce", v, func(s *Simulation, v bool) { s.IsBounce = v })
}

// SetColors replaces the whole colour list. The length bounds are not
// checked here; use the editor colour operations for guarded edits.
func SetColors(v []string) SimulationUpdate {
	return newUpdate("colors", slices.Clone(v), func(s *Simulation, v []string) { s.Colors = slices.Clone(v) })
}

func SetAutoDemo(v bool) SimulationUpdate {
	return newUpdate("autoDemo", v, func(s *Simulation, v bool) { s.AutoDemo = v })
}

func SetAutoSpeed(v float64) SimulationUpdate {
	return newUpdate("autoSpeed", v, func(s *Simulation, v float64) { s.AutoSpeed = v })
}

func SetAutoIntensity(v float64) SimulationUpdate {
	return newUpdate("autoIntensity", v, func(s *Simulation, v float64) { s.AutoIntensity = v })
}

func SetTakeoverDuration(v float64) SimulationUpdate {
	return newUpdate("takeoverDuration", v, func(s *Simulation, v float64) { s.TakeoverDuration = v })
}

// SetAutoResumeDelay sets the idle delay in milliseconds before the demo resumes.
func SetAutoResumeDelay(v float64) SimulationUpdate {
	return newUpdate("autoResumeDelay", v, func(s *Simulation, v float64) { s.AutoResumeDelay = v })
}

func SetAutoRampDuration(v float64) SimulationUpdate {
	return newUpdate("autoRampDuration", v, func(s *Simulation, v float64) { s.AutoRampDuration = v })
}

// SetPaletteColor assigns the palette slot identified by key. Unknown keys
// produce an update that leaves the palette untouched.
func SetPaletteColor(key PaletteKey, v string) PaletteUpdate {
	return newUpdate(key.String(), v, func(p *Palette, v string) {
		if ptr := key.field(p); ptr != nil {
			*ptr = v
		}
	})
}

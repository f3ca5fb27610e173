package theme

import "slices"

// MaxSimulationColors and MinSimulationColors bound the fluid colour list
// when it is edited through the colour operations.
const (
	MinSimulationColors = 1
	MaxSimulationColors = 8
)

// Group identifies one of the independently addressable configuration groups.
type Group int

const (
	GroupBackground Group = iota
	GroupSimulation
	GroupPalette
)

// String returns the serialised group key.
func (g Group) String() string {
	switch g {
	case GroupBackground:
		return "background"
	case GroupSimulation:
		return "simulation"
	case GroupPalette:
		return "palette"
	default:
		return "unknown"
	}
}

// Groups lists every group in declaration order.
func Groups() []Group {
	return []Group{GroupBackground, GroupSimulation, GroupPalette}
}

// ThemeConfig is the composite configuration value driving the background
// shader, the fluid simulation and the UI palette.
type ThemeConfig struct {
	Name        string     `yaml:"name" json:"name" validate:"required"`
	Description string     `yaml:"description" json:"description"`
	Background  Background `yaml:"background" json:"background"`
	Simulation  Simulation `yaml:"simulation" json:"simulation"`
	Palette     Palette    `yaml:"palette" json:"palette"`
}

// Background holds the shader parameters.
type Background struct {
	BaseColor1        string  `yaml:"baseColor1" json:"baseColor1" validate:"required,css_color"`
	BaseColor2        string  `yaml:"baseColor2" json:"baseColor2" validate:"required,css_color"`
	HueShift          float64 `yaml:"hueShift" json:"hueShift" validate:"gte=0,lte=360"`
	NoiseIntensity    float64 `yaml:"noiseIntensity" json:"noiseIntensity" validate:"gte=0"`
	ScanlineIntensity float64 `yaml:"scanlineIntensity" json:"scanlineIntensity" validate:"gte=0"`
	Speed             float64 `yaml:"speed" json:"speed" validate:"gte=0"`
	ScanlineFrequency float64 `yaml:"scanlineFrequency" json:"scanlineFrequency" validate:"gte=0"`
	WarpAmount        float64 `yaml:"warpAmount" json:"warpAmount" validate:"gte=0"`
	ResolutionScale   float64 `yaml:"resolutionScale" json:"resolutionScale" validate:"gt=0"`
	VerticalPosition  float64 `yaml:"verticalPosition" json:"verticalPosition" validate:"gte=-100,lte=100"`
}

// Simulation holds the fluid-simulation parameters. AutoSpeed and
// AutoIntensity only take effect while AutoDemo is set.
type Simulation struct {
	MouseForce        float64  `yaml:"mouseForce" json:"mouseForce" validate:"gte=0"`
	CursorSize        float64  `yaml:"cursorSize" json:"cursorSize" validate:"gte=0"`
	IsViscous         bool     `yaml:"isViscous" json:"isViscous"`
	Viscous           float64  `yaml:"viscous" json:"viscous" validate:"gte=0"`
	IterationsViscous int      `yaml:"iterationsViscous" json:"iterationsViscous" validate:"gte=1"`
	IterationsPoisson int      `yaml:"iterationsPoisson" json:"iterationsPoisson" validate:"gte=1"`
	Dt                float64  `yaml:"dt" json:"dt" validate:"gt=0"`
	BFECC             bool     `yaml:"BFECC" json:"BFECC"`
	Resolution        float64  `yaml:"resolution" json:"resolution" validate:"gt=0"`
	IsBounce          bool     `yaml:"isBounce" json:"isBounce"`
	Colors            []string `yaml:"colors" json:"colors" validate:"min=1,max=8,dive,css_color"`
	AutoDemo          bool     `yaml:"autoDemo" json:"autoDemo"`
	AutoSpeed         float64  `yaml:"autoSpeed" json:"autoSpeed" validate:"gte=0"`
	AutoIntensity     float64  `yaml:"autoIntensity" json:"autoIntensity" validate:"gte=0"`
	TakeoverDuration  float64  `yaml:"takeoverDuration" json:"takeoverDuration" validate:"gte=0"`
	AutoResumeDelay   float64  `yaml:"autoResumeDelay" json:"autoResumeDelay" validate:"gte=0"`
	AutoRampDuration  float64  `yaml:"autoRampDuration" json:"autoRampDuration" validate:"gte=0"`
}

// Palette holds the UI colours pushed to the style surface.
type Palette struct {
	Primary       string `yaml:"primary" json:"primary" validate:"required,css_color"`
	Secondary     string `yaml:"secondary" json:"secondary" validate:"required,css_color"`
	Accent        string `yaml:"accent" json:"accent" validate:"required,css_color"`
	Background    string `yaml:"background" json:"background" validate:"required,css_color"`
	Surface       string `yaml:"surface" json:"surface" validate:"required,css_color"`
	Text          string `yaml:"text" json:"text" validate:"required,css_color"`
	TextSecondary string `yaml:"textSecondary" json:"textSecondary" validate:"required,css_color"`
	Border        string `yaml:"border" json:"border" validate:"required,css_color"`
	Success       string `yaml:"success" json:"success" validate:"required,css_color"`
	Warning       string `yaml:"warning" json:"warning" validate:"required,css_color"`
	Error         string `yaml:"error" json:"error" validate:"required,css_color"`
}

// Clone returns a deep copy of the configuration. The colour slice is the
// only reference-typed field.
func (c ThemeConfig) Clone() ThemeConfig {
	c.Simulation = c.Simulation.Clone()
	return c
}

// Equal reports whether two configurations hold the same values.
func (c ThemeConfig) Equal(other ThemeConfig) bool {
	return c.Name == other.Name &&
		c.Description == other.Description &&
		c.Background == other.Background &&
		c.Simulation.Equal(other.Simulation) &&
		c.Palette == other.Palette
}

// Clone returns a copy of the simulation group with its own colour slice.
func (s Simulation) Clone() Simulation {
	if s.Colors != nil {
		s.Colors = slices.Clone(s.Colors)
	}
	return s
}

// Equal compares two simulation groups including their colour lists.
func (s Simulation) Equal(other Simulation) bool {
	return s.MouseForce == other.MouseForce &&
		s.CursorSize == other.CursorSize &&
		s.IsViscous == other.IsViscous &&
		s.Viscous == other.Viscous &&
		s.IterationsViscous == other.IterationsViscous &&
		s.IterationsPoisson == other.IterationsPoisson &&
		s.Dt == other.Dt &&
		s.BFECC == other.BFECC &&
		s.Resolution == other.Resolution &&
		s.IsBounce == other.IsBounce &&
		slices.Equal(s.Colors, other.Colors) &&
		s.AutoDemo == other.AutoDemo &&
		s.AutoSpeed == other.AutoSpeed &&
		s.AutoIntensity == other.AutoIntensity &&
		s.TakeoverDuration == other.TakeoverDuration &&
		s.AutoResumeDelay == other.AutoResumeDelay &&
		s.AutoRampDuration == other.AutoRampDuration
}

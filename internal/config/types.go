package config

// AppConfig is the optional user configuration file.
type AppConfig struct {
	Log   LogSettings   `yaml:"log"`
	Theme ThemeSettings `yaml:"theme"`
	API   APISettings   `yaml:"api"`
}

// LogSettings selects verbosity and output encoding. When File is set, logs
// go to a size-rotated file instead of stderr.
type LogSettings struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string `yaml:"format" validate:"omitempty,oneof=text json"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups,omitempty" validate:"gte=0"`
}

// ThemeSettings controls the editor at start-up.
type ThemeSettings struct {
	InitialPreset string `yaml:"initial_preset,omitempty"`
	Strict        bool   `yaml:"strict,omitempty"`
	PresetsFile   string `yaml:"presets_file,omitempty"`
}

// APISettings locates the remote model-configuration service.
type APISettings struct {
	BaseURL  string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	TokenEnv string `yaml:"token_env,omitempty"`
}

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTokenEnv  = "SONORA_TOKEN"
)

// Default returns the configuration used when no file exists.
func Default() AppConfig {
	return AppConfig{
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		API: APISettings{
			TokenEnv: DefaultTokenEnv,
		},
	}
}

// Overrides carries command-line values that take precedence over the file.
// Empty strings and nil pointers leave the file value untouched.
type Overrides struct {
	LogLevel  string
	LogFormat string
	LogFile   string
	Strict    *bool
	Preset    string
	BaseURL   string
}

// Apply returns a copy of cfg with o applied.
func (o Overrides) Apply(cfg AppConfig) AppConfig {
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.Strict != nil {
		cfg.Theme.Strict = *o.Strict
	}
	if o.Preset != "" {
		cfg.Theme.InitialPreset = o.Preset
	}
	if o.BaseURL != "" {
		cfg.API.BaseURL = o.BaseURL
	}
	return cfg
}

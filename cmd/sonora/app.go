package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/sonora/internal/application/theme"
	"github.com/alexisbeaulieu97/sonora/internal/config"
	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/renderer"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/validation"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  config.AppConfig
	Logger  ports.Logger
	Events  *events.LoggingPublisher
	Catalog *domain.Catalog
	Editor  *apptheme.Editor

	ctx      context.Context
	output   ports.Logger
	deferred *logging.DeferredSink
	closers  []io.Closer
}

type appOptions struct {
	// deferLogs holds stderr log entries in memory until Close so they do
	// not corrupt a full-screen program. File logging is never deferred.
	deferLogs bool
	preset    string
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*AppContext, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	if opts.preset != "" {
		cfg.Theme.InitialPreset = opts.preset
	}

	var (
		writer  io.Writer = cmd.ErrOrStderr()
		closers []io.Closer
	)
	if cfg.Log.File != "" {
		file := logging.NewFileWriter(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
		writer = file
		closers = append(closers, file)
	}

	output, err := logging.New(logging.Options{
		Writer: writer,
		Level:  cfg.Log.Level,
		Format: logging.Format(cfg.Log.Format),
		Layer:  "cli",
	})
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Use --log-level debug|info|warn|error and --log-format text|json.")
	}
	logger := output
	var deferred *logging.DeferredSink
	if opts.deferLogs && cfg.Log.File == "" {
		deferred = logging.NewDeferredSink(0)
		logger = deferred.Logger()
	}

	catalog, err := loadCatalog(cfg.Theme.PresetsFile)
	if err != nil {
		for _, c := range closers {
			_ = c.Close()
		}
		return nil, newCommandError("start", "loading presets", err, "Run 'sonora validate --catalog <file>' to inspect the presets file.")
	}

	publisher := events.NewLoggingPublisher(logger)
	var editorOpts []apptheme.Option
	if cfg.Theme.Strict {
		editorOpts = append(editorOpts, apptheme.WithValidator(validation.NewThemeValidator()))
	}
	editor := apptheme.NewEditor(catalog, logger, publisher, editorOpts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app := &AppContext{
		Config:  cfg,
		Logger:  logger,
		Events:  publisher,
		Catalog: catalog,
		Editor:  editor,

		ctx:      logging.NewCorrelatedContext(ctx),
		output:   output,
		deferred: deferred,
		closers:  closers,
	}

	if name := cfg.Theme.InitialPreset; name != "" && name != catalog.DefaultName() {
		if !editor.ApplyPreset(app.ctx, name) {
			app.Close()
			return nil, newCommandError("start", fmt.Sprintf("applying preset %q", name), domain.NewError(domain.ErrCodeNotFound, "preset not found", nil, map[string]interface{}{"preset": name}), presetSuggestion(catalog, name))
		}
	}

	return app, nil
}

// CommandContext returns the invocation context, which carries one
// correlation id for the whole run, and a logger tagged with the command name.
func (a *AppContext) CommandContext(name string) (context.Context, ports.Logger) {
	return a.ctx, a.Logger.With("command", name)
}

// Close writes deferred log entries to the configured output and releases
// log files.
func (a *AppContext) Close() {
	if a.deferred != nil {
		a.deferred.Replay(a.output)
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// AttachSurfaces connects the palette propagator to sink and the renderer
// bridge to a logging renderer. The returned func detaches both.
func (a *AppContext) AttachSurfaces(ctx context.Context, sink ports.StyleSink) (func(), error) {
	current := a.Editor.Current()

	propagation, err := apptheme.NewPropagator(sink, a.Logger).Attach(ctx, a.Events, current.Palette)
	if err != nil {
		return nil, err
	}
	rendering, err := apptheme.NewRendererBridge(renderer.NewLoggingRenderer(a.Logger)).Attach(a.Events, current)
	if err != nil {
		propagation.Unsubscribe()
		return nil, err
	}

	return func() {
		rendering.Unsubscribe()
		propagation.Unsubscribe()
	}, nil
}

func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.AppConfig, error) {
	path := flags.configPath
	optional := false
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.AppConfig{}, newCommandError("start", "locating configuration", err, "Pass --config explicitly.")
		}
		path = defaultPath
		optional = true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return config.AppConfig{}, newCommandError("start", fmt.Sprintf("loading configuration %s", path), err, "Fix the reported field or remove the file to use defaults.")
	}

	overrides := config.Overrides{
		LogLevel:  flags.logLevel,
		LogFormat: flags.logFormat,
		LogFile:   flags.logFile,
	}
	if cmd.Flags().Changed("strict") {
		strict := flags.strict
		overrides.Strict = &strict
	}
	cfg = overrides.Apply(cfg)

	if err := config.Validate(cfg); err != nil {
		return config.AppConfig{}, newCommandError("start", "validating options", err, "Use --log-level debug|info|warn|error and --log-format text|json.")
	}
	return cfg, nil
}

func loadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return presets.Builtin(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return presets.Load(f, path)
}

// presetSuggestion lists the catalog and, when name resembles a preset,
// proposes the closest ones first.
func presetSuggestion(catalog *domain.Catalog, name string) string {
	names := catalog.Names()
	available := fmt.Sprintf("Available presets: %s. Run 'sonora presets' for details.", strings.Join(names, ", "))

	similar := similarPresets(names, name)
	if len(similar) == 0 {
		return available
	}
	quoted := make([]string, len(similar))
	for i, s := range similar {
		quoted[i] = strconv.Quote(s)
	}
	return fmt.Sprintf("Did you mean %s? %s", strings.Join(quoted, " or "), available)
}

const maxSuggestions = 2

func similarPresets(names []string, name string) []string {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	matches := fuzzy.Find(strings.ToLower(name), lowered)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, names[m.Index])
	}
	return out
}

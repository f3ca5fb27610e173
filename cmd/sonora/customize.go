package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
	"github.com/alexisbeaulieu97/sonora/internal/tui/customizer"
)

type customizeOptions struct {
	preset string
}

func newCustomizeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &customizeOptions{}

	cmd := &cobra.Command{
		Use:     "customize",
		Aliases: []string{"customise", "ui"},
		Short:   "Edit the theme interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomize(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Preset to start from (default from configuration)")

	return cmd
}

func runCustomize(cmd *cobra.Command, rootFlags *rootFlags, opts *customizeOptions) error {
	if !isInteractive() {
		return newCommandError("customize", "starting the customiser", errors.New("stdin and stdout must be a terminal"), "Use 'sonora show --set group.field=value' in scripts.")
	}

	app, err := newAppContext(cmd, rootFlags, appOptions{deferLogs: true, preset: opts.preset})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext("command.customize")

	sink := style.NewTerminalSink()
	detach, err := app.AttachSurfaces(ctx, sink)
	if err != nil {
		return newCommandError("customize", "attaching style surface", err, "")
	}
	defer detach()

	model := customizer.NewModel(ctx, app.Editor, sink)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		logger.Error(ctx, "customiser exited with error", "error", err)
		return newCommandError("customize", "running the customiser", err, "Try resizing the terminal or run with --log-level debug.")
	}

	logger.Info(ctx, "customiser closed", "theme", app.Editor.Current().Name)
	return nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

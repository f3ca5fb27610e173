package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sonora/internal/config"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/modelconfig"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

type modelOptions struct {
	baseURL string
	showKey bool

	provider string
	model    string
	apiKey   string
}

func newModelCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &modelOptions{}

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage the model-provider configuration stored for your account",
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "api-url", "", "Base URL of the Sonora API (default from configuration)")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the stored model configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelGet(cmd, rootFlags, opts)
		},
	}
	getCmd.Flags().BoolVar(&opts.showKey, "show-key", false, "Print the API key instead of a masked value")

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Store a model configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelSet(cmd, rootFlags, opts)
		},
	}
	setCmd.Flags().StringVar(&opts.provider, "provider", "", "Model provider, e.g. openai")
	setCmd.Flags().StringVar(&opts.model, "model", "", "Model name")
	setCmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Provider API key")
	_ = setCmd.MarkFlagRequired("provider")
	_ = setCmd.MarkFlagRequired("model")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored model configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelDelete(cmd, rootFlags, opts)
		},
	}

	cmd.AddCommand(getCmd, setCmd, deleteCmd)

	return cmd
}

func newModelStore(cmd *cobra.Command, rootFlags *rootFlags, opts *modelOptions) (*modelconfig.Client, *AppContext, error) {
	app, err := newAppContext(cmd, rootFlags, appOptions{})
	if err != nil {
		return nil, nil, err
	}
	cfg := config.Overrides{BaseURL: opts.baseURL}.Apply(app.Config)

	client := modelconfig.NewClient(
		cfg.API.BaseURL,
		modelconfig.EnvTokenSource(cfg.API.TokenEnv),
		modelconfig.WithLogger(app.Logger),
	)
	return client, app, nil
}

func runModelGet(cmd *cobra.Command, rootFlags *rootFlags, opts *modelOptions) error {
	client, app, err := newModelStore(cmd, rootFlags, opts)
	if err != nil {
		return err
	}
	defer app.Close()
	ctx, _ := app.CommandContext("command.model.get")

	stored, err := client.Get(ctx)
	if err != nil {
		return newCommandError("read model configuration", "contacting the Sonora API", err, tokenSuggestion(app.Config))
	}
	if stored == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No model configuration saved.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'sonora model set --provider <name> --model <model>' to save one.")
		return nil
	}

	out := *stored
	if !opts.showKey {
		out.APIKey = maskSecret(out.APIKey)
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func runModelSet(cmd *cobra.Command, rootFlags *rootFlags, opts *modelOptions) error {
	if strings.TrimSpace(opts.provider) == "" || strings.TrimSpace(opts.model) == "" {
		return newCommandError("save model configuration", "validating flags", errors.New("provider and model cannot be empty"), "Pass --provider and --model.")
	}

	client, app, err := newModelStore(cmd, rootFlags, opts)
	if err != nil {
		return err
	}
	defer app.Close()
	ctx, logger := app.CommandContext("command.model.set")

	err = client.Save(ctx, ports.ModelConfig{
		Provider: opts.provider,
		Model:    opts.model,
		APIKey:   opts.apiKey,
	})
	if err != nil {
		return newCommandError("save model configuration", "contacting the Sonora API", err, tokenSuggestion(app.Config))
	}

	logger.Info(ctx, "model configuration saved", "provider", opts.provider, "model", opts.model)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s/%s.\n", opts.provider, opts.model)
	return nil
}

func runModelDelete(cmd *cobra.Command, rootFlags *rootFlags, opts *modelOptions) error {
	client, app, err := newModelStore(cmd, rootFlags, opts)
	if err != nil {
		return err
	}
	defer app.Close()
	ctx, _ := app.CommandContext("command.model.delete")

	if err := client.Delete(ctx); err != nil {
		return newCommandError("delete model configuration", "contacting the Sonora API", err, tokenSuggestion(app.Config))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Model configuration deleted.")
	return nil
}

func tokenSuggestion(cfg config.AppConfig) string {
	return fmt.Sprintf("Export a session token in $%s and check that the API is reachable.", cfg.API.TokenEnv)
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

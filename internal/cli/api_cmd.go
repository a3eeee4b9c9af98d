package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/wakatime/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAPICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "api [key]",
		Short: "Store your WakaTime API key",
		Long: "Stores the API key used for every request. The key is not checked against\n" +
			"the API. Find yours at " + formatter.SettingsURL + ".\n\n" +
			"Without an argument on an interactive terminal you are prompted for it.",
		Example: "  wakatime api waka_0123abcd-...",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			switch {
			case len(args) == 1:
				key = args[0]
			case app.interactive():
				prompt := app.PromptAPIKey
				if prompt == nil {
					prompt = promptAPIKey
				}
				var err error
				if key, err = prompt(cmd.Context()); err != nil {
					return err
				}
			default:
				return errors.New("api key required: wakatime api <key>")
			}

			if err := app.Keys.SaveAPIKey(cmd.Context(), key); err != nil {
				return fmt.Errorf("saving api key: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatKeySaved(app.Keys.KeyPath()))
			return nil
		},
	}
}

// promptAPIKey asks for the key with a masked input.
func promptAPIKey(ctx context.Context) (string, error) {
	var key string
	err := apiKeyForm(&key).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", errors.New("api key entry cancelled")
	}
	if err != nil {
		return "", fmt.Errorf("reading api key: %w", err)
	}
	return key, nil
}

func apiKeyForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("WakaTime API Key").
				Description("Available at " + formatter.SettingsURL).
				EchoMode(huh.EchoModePassword).
				Value(value).
				Validate(validateAPIKey),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func validateAPIKey(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("key cannot be empty")
	}
	return nil
}

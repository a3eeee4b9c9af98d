package cli

import (
	"github.com/alexanderramin/wakatime/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "account",
		Aliases: []string{"user"},
		Short:   "Show the WakaTime account the stored key belongs to",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := app.Account.Account(cmd.Context())
			if err != nil {
				return handleKeyError(cmd, app, err)
			}
			return render(cmd.OutOrStdout(), opts.format, acct, func() string {
				return formatter.FormatAccount(acct)
			})
		},
	}
}

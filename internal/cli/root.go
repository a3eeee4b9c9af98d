package cli

import (
	"context"

	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/alexanderramin/wakatime/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Summary service.SummaryService
	Account service.AccountService
	Keys    service.KeyService

	// Version is reported by --version. Empty disables the flag.
	Version string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// PromptAPIKey asks the user for a key. Nil uses the masked huh prompt.
	PromptAPIKey func(ctx context.Context) (string, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// rootOptions holds the persistent flags of one invocation.
type rootOptions struct {
	format outputFormat
}

// NewRootCmd creates the top-level "wakatime" command and registers all
// subcommands against the provided App. Running it without a subcommand
// shows today's summary.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{format: formatText}

	root := &cobra.Command{
		Use:   "wakatime",
		Short: "Coding activity summaries from WakaTime",
		Long: "Shows how much time you spent coding, broken down by language and project,\n" +
			"for today, yesterday, the last week, month or year.",
		Version: app.Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, app, opts, domain.RangeToday, "")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Var(&opts.format, "format", "Output format: text or json")

	for _, r := range domain.AllRanges {
		root.AddCommand(newRangeCmd(app, opts, r))
	}
	root.AddCommand(
		newAPICmd(app),
		newAccountCmd(app, opts),
	)

	return root
}

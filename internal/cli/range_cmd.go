package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/wakatime/internal/cli/formatter"
	"github.com/alexanderramin/wakatime/internal/contract"
	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/alexanderramin/wakatime/internal/keystore"
	"github.com/alexanderramin/wakatime/internal/wakatime"
	"github.com/spf13/cobra"
)

var rangeAliases = map[domain.RangeName]string{
	domain.RangeToday:     "t",
	domain.RangeYesterday: "yd",
	domain.RangeWeek:      "w",
	domain.RangeMonth:     "m",
	domain.RangeYear:      "y",
}

var rangeShorts = map[domain.RangeName]string{
	domain.RangeToday:     "Show today's coding activity",
	domain.RangeYesterday: "Show yesterday's coding activity",
	domain.RangeWeek:      "Show the last 7 days of coding activity",
	domain.RangeMonth:     "Show the last month of coding activity",
	domain.RangeYear:      "Show the last year of coding activity",
}

func newRangeCmd(app *App, opts *rootOptions, r domain.RangeName) *cobra.Command {
	return &cobra.Command{
		Use:     string(r) + " [filter]",
		Aliases: []string{rangeAliases[r]},
		Short:   rangeShorts[r],
		Long: rangeShorts[r] + ".\n\n" +
			"The optional filter is a regular expression matched against project names.\n" +
			"It restricts the project breakdown only; language totals stay unfiltered.",
		Example: fmt.Sprintf("  wakatime %s\n  wakatime %s '^api-'", r, rangeAliases[r]),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			return runSummary(cmd, app, opts, r, filter)
		},
	}
}

func runSummary(cmd *cobra.Command, app *App, opts *rootOptions, r domain.RangeName, filter string) error {
	req := contract.NewSummaryRequest(r)
	req.ProjectFilter = filter

	resp, err := app.Summary.Summary(cmd.Context(), req)
	if err != nil {
		return handleKeyError(cmd, app, err)
	}

	return render(cmd.OutOrStdout(), opts.format, resp, func() string {
		return formatter.FormatSummary(resp)
	})
}

// handleKeyError prints guidance for a missing or rejected key and swallows
// the error so the process exits cleanly. Other errors pass through.
func handleKeyError(cmd *cobra.Command, app *App, err error) error {
	switch {
	case errors.Is(err, keystore.ErrKeyMissing):
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMissingKey(app.Keys.KeyPath()))
		return nil
	case errors.Is(err, wakatime.ErrUnauthorized):
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnauthorized(app.Keys.KeyPath()))
		return nil
	default:
		return err
	}
}

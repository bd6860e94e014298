package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abelbrown/cupid/internal/filter"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog the way the collection screen does",
		Long: `Search the configured catalog by name, ignoring case and accents.

Without a query the top rated games are listed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			items, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return WrapExitError(ExitCommandError, "load catalog", err)
			}

			browse, query := cfg.BrowseLimit, cfg.SearchLimit
			if limit > 0 {
				browse, query = limit, limit
			}
			results := filter.View(items, strings.Join(args, " "), browse, query)

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No games match.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tYEAR\tBAYES\tRATINGS")
			for _, it := range results {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\n", it.ID, it.Name, it.YearLabel(), it.Bayes, it.UsersRated)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (default from config)")
	return cmd
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/config"
	"github.com/abelbrown/cupid/internal/logging"
	"github.com/abelbrown/cupid/internal/owned"
	"github.com/abelbrown/cupid/internal/store"
)

// OwnedGame is one row of owned list output. Name is empty when the id is
// not in the catalog.
type OwnedGame struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// OwnedReport is the json output of owned list.
type OwnedReport struct {
	Key       string      `json:"key"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
	Games     []OwnedGame `json:"games"`
}

// NewOwnedCommand creates the owned command group.
func NewOwnedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owned",
		Short: "Inspect or reset the persisted owned selection",
	}
	cmd.AddCommand(newOwnedListCommand(rootOpts))
	cmd.AddCommand(newOwnedClearCommand(rootOpts))
	return cmd
}

func newOwnedListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List owned game ids, with names from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			report, err := buildOwnedReport(cmd.Context(), cfg, st)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d owned games", len(report.Games))
			if report.UpdatedAt != nil {
				fmt.Fprintf(out, " (saved %s)", report.UpdatedAt.Local().Format(time.DateTime))
			}
			fmt.Fprintln(out)
			for _, g := range report.Games {
				name := g.Name
				if name == "" {
					name = "(not in catalog)"
				}
				fmt.Fprintf(out, "  %8d  %s\n", g.ID, name)
			}
			return nil
		},
	}
}

func buildOwnedReport(ctx context.Context, cfg *config.Config, st *store.Store) (OwnedReport, error) {
	adapter := owned.NewAdapter(st, owned.DefaultKey)
	report := OwnedReport{Key: adapter.Key(), Games: []OwnedGame{}}

	entries, err := st.Entries()
	if err != nil {
		return report, WrapExitError(ExitCommandError, "list keys", err)
	}
	for _, e := range entries {
		if e.Key == adapter.Key() {
			updated := e.UpdatedAt
			report.UpdatedAt = &updated
		}
	}

	ids := adapter.Load()
	if len(ids) == 0 {
		return report, nil
	}

	names := map[int]string{}
	items, err := loadCatalog(ctx, cfg)
	if err != nil {
		logging.Warn("catalog unavailable, listing ids only", "source", cfg.CatalogSource, "err", err)
	}
	for _, it := range items {
		names[it.ID] = it.Name
	}
	for _, id := range ids {
		report.Games = append(report.Games, OwnedGame{ID: id, Name: names[id]})
	}
	return report, nil
}

func newOwnedClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget every owned game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(owned.DefaultKey); err != nil {
				return WrapExitError(ExitFailure, "clear owned", err)
			}
			logging.Info("owned selection cleared", "db", cfg.DBPath())
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]bool{"cleared": true})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Owned selection cleared")
			return nil
		},
	}
}

// loadCatalog loads the configured catalog once.
func loadCatalog(ctx context.Context, cfg *config.Config) ([]catalog.Item, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return catalog.NewLoader(30*time.Second, time.Second).Load(ctx, cfg.CatalogSource)
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abelbrown/cupid/internal/config"
	"github.com/abelbrown/cupid/internal/logging"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect config.json",
	}
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	cmd.AddCommand(newConfigShowCommand(rootOpts))
	return cmd
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.json with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootOpts.ConfigPath
			if _, err := os.Stat(path); err == nil && !force {
				return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("%s already exists (use --force to overwrite)", path)}
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return WrapExitError(ExitCommandError, "stat config", err)
			}

			cfg := config.DefaultConfig()
			if rootOpts.DataDir != "" {
				cfg.DataDir = rootOpts.DataDir
			}
			if err := cfg.Save(path); err != nil {
				return WrapExitError(ExitFailure, "write config", err)
			}
			logging.Info("config written", "path", path)

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"path": path})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.json")
	return cmd
}

func newConfigShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config after env and flag overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), cfg)
			}

			source := cfg.CatalogSource
			if source == "" {
				source = "(bundled sample)"
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "catalog_source\t%s\n", source)
			fmt.Fprintf(tw, "data_dir\t%s\n", cfg.DataDir)
			fmt.Fprintf(tw, "log_level\t%s\n", cfg.LogLevel)
			fmt.Fprintf(tw, "seed\t%d\n", cfg.Seed)
			fmt.Fprintf(tw, "browse_limit\t%d\n", cfg.BrowseLimit)
			fmt.Fprintf(tw, "search_limit\t%d\n", cfg.SearchLimit)
			return tw.Flush()
		},
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/logging"
	"github.com/abelbrown/cupid/internal/prep"
)

// PrepOptions holds flags for the prep command.
type PrepOptions struct {
	In         string
	Out        string
	MinUsers   int
	MinYear    int
	MaxGames   int
	NoDedupe   bool
	KeepPromos bool
}

// PrepReport is the json output of prep.
type PrepReport struct {
	Out   string     `json:"out"`
	Stats prep.Stats `json:"stats"`
}

// NewPrepCommand creates the prep command.
func NewPrepCommand(rootOpts *RootOptions) *cobra.Command {
	def := prep.DefaultOptions()
	opts := &PrepOptions{}

	cmd := &cobra.Command{
		Use:   "prep",
		Short: "Build the catalog JSON from a ranks CSV",
		Long: `Build the catalog JSON from a board game ranks CSV dump.

Expansions, promos, rarely rated and old games are dropped, reprints and
editions are folded into one entry per title, and the rest is sorted by
number of ratings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrep(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.In, "in", "", "ranks CSV to read (required)")
	cmd.Flags().StringVar(&opts.Out, "out", "games.json", "catalog JSON to write, - for stdout")
	cmd.Flags().IntVar(&opts.MinUsers, "min-users", def.MinUsersRated, "drop games with fewer ratings")
	cmd.Flags().IntVar(&opts.MinYear, "min-year", def.MinYear, "drop games published before this year")
	cmd.Flags().IntVar(&opts.MaxGames, "max-games", def.MaxGames, "keep at most this many games")
	cmd.Flags().BoolVar(&opts.NoDedupe, "no-dedupe", false, "keep every edition of a title")
	cmd.Flags().BoolVar(&opts.KeepPromos, "keep-promos", false, "keep games whose names look like promos")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func runPrep(rootOpts *RootOptions, opts *PrepOptions, cmd *cobra.Command) error {
	f, err := os.Open(opts.In)
	if err != nil {
		return WrapExitError(ExitCommandError, "open input", err)
	}
	defer f.Close()

	rows, err := prep.ReadCSV(f)
	if err != nil {
		return WrapExitError(ExitCommandError, "read ranks", err)
	}

	items, stats := prep.Run(rows, prep.Options{
		MinUsersRated: opts.MinUsers,
		MinYear:       opts.MinYear,
		MaxGames:      opts.MaxGames,
		DedupeTitles:  !opts.NoDedupe,
		DropPromos:    !opts.KeepPromos,
	})
	logging.Info("prep complete",
		"rows", stats.Rows,
		"invalid", stats.Invalid,
		"expansions", stats.Expansions,
		"promos", stats.Promos,
		"unpopular", stats.Unpopular,
		"old", stats.Old,
		"deduped", stats.Deduped,
		"capped", stats.Capped,
		"kept", stats.Kept,
	)

	if opts.Out == "-" {
		return prep.WriteJSON(cmd.OutOrStdout(), items)
	}
	if err := writeCatalog(opts.Out, items); err != nil {
		return err
	}

	if rootOpts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), PrepReport{Out: opts.Out, Stats: stats})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d games to %s (%d rows read)\n", stats.Kept, opts.Out, stats.Rows)
	return nil
}

func writeCatalog(path string, items []catalog.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return WrapExitError(ExitCommandError, "create output directory", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "create output", err)
	}
	if err := prep.WriteJSON(out, items); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/teamdraw"
)

func (a *app) lookupCommand() *cobra.Command {
	var byKey bool

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Find a participant's team in the published draw",
		Long: `Find the team of a participant in the published draw.

The name may be given as "First Last" or "Last First"; case, accents and extra
spaces are ignored. When no name matches exactly, similar names are suggested.`,
		Example: `  teamdraw lookup Anna Nowak
  teamdraw lookup "nowak anna"
  teamdraw lookup --key "lukasz gorski"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr, stop, err := a.startShared(ctx)
			if err != nil {
				return err
			}
			defer stop()

			query := strings.Join(args, " ")
			var res teamdraw.LookupResult
			if byKey {
				res = mgr.LookupKey(ctx, teamdraw.LookupKey(query))
			} else {
				res = mgr.Lookup(ctx, query)
			}

			return renderLookup(cmd.OutOrStdout(), query, res)
		},
	}

	cmd.Flags().BoolVar(&byKey, "key", false, "treat NAME as an exact lookup key from a suggestion")

	return cmd
}

func (a *app) searchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search PATTERN",
		Short: "List published names containing the typed letters in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr, stop, err := a.startShared(ctx)
			if err != nil {
				return err
			}
			defer stop()

			out := cmd.OutOrStdout()
			if _, ok := mgr.Published(); !ok {
				_, err := fmt.Fprintln(out, "Teams have not been published yet.")
				return err
			}

			for _, s := range mgr.Search(ctx, args[0], limit) {
				if _, err := fmt.Fprintln(out, s.DisplayName); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of names (0 = all)")

	return cmd
}

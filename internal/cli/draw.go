package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/teamdraw"
	"github.com/arloliu/teamdraw/source"
)

func (a *app) drawCommand() *cobra.Command {
	var (
		roster  string
		teams   int
		publish bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Allocate a roster file into teams",
		Long: `Allocate the people listed in a YAML or JSON roster file into teams.

Without --publish the draw is only printed. With --publish it also becomes the
draw participants see through "teamdraw lookup".`,
		Example: `  teamdraw draw --roster people.yaml --teams 5
  teamdraw draw -r people.yaml -k 5 --seed 42 -o yaml
  teamdraw draw -r people.yaml --publish --nats-url nats://localhost:4222`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			rosterOpt := teamdraw.WithRosterSource(source.NewFile(roster))

			var (
				mgr  *teamdraw.Manager
				stop = func() {}
				err  error
			)
			if publish {
				mgr, stop, err = a.startShared(ctx, rosterOpt)
			} else {
				var cfg *teamdraw.Config
				if cfg, err = a.config(); err == nil {
					mgr, err = a.newManager(cfg, rosterOpt)
				}
			}
			if err != nil {
				return err
			}
			defer stop()

			partition, err := mgr.Draw(ctx, teams)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := renderPartition(out, partition, format); err != nil {
				return err
			}

			if !publish {
				return nil
			}

			snap, err := mgr.Publish(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "published version %d (%s)\n", snap.Version, snap.ID)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&roster, "roster", "r", "", "roster file (YAML or JSON with a people list)")
	f.IntVarP(&teams, "teams", "k", 0, "number of teams (configured default when 0)")
	f.BoolVar(&publish, "publish", false, "publish the draw to the NATS bucket")
	f.StringVarP(&format, "output", "o", "text", "output format: text, yaml or json")
	f.Uint64("seed", 0, "random seed for a reproducible draw (0 = random)")
	f.String("strategy", "", "allocation strategy: department or round_robin")
	_ = cmd.MarkFlagRequired("roster")
	_ = a.v.BindPFlag("seed", f.Lookup("seed"))
	_ = a.v.BindPFlag("strategy", f.Lookup("strategy"))

	return cmd
}

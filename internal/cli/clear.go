package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) clearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Withdraw the published draw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			mgr, stop, err := a.startShared(ctx)
			if err != nil {
				return err
			}
			defer stop()

			cleared, err := mgr.Clear(ctx)
			if err != nil {
				return err
			}

			msg := "Nothing was published."
			if cleared {
				msg = "Published draw cleared."
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)

			return err
		},
	}
}

package cmd

import (
	"fmt"

	constants "github.com/ImGajeed76/growgroove/internal"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/prefs"
	"github.com/spf13/cobra"
)

func newForgetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Clear the remembered page from the system keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefs.New(constants.ServiceName)
			if err != nil {
				return err
			}
			if err := store.Forget(); err != nil {
				return err
			}
			a.logger.Info("preferences cleared")
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences cleared")
			return nil
		},
	}
}

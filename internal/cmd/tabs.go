package cmd

import (
	"fmt"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newTabsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the pages and their themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.cfg.Registry()

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "PAGE", "ID", "THEME", "ACCENT")
			for _, tab := range tabs.All() {
				th := reg.MustGet(tab.Theme)
				t.Row(tab.Number, tab.Label, tab.ID, tab.Theme, th.Highlight().Render(th.Accent))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

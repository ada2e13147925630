package cmd

import (
	"fmt"
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/export"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/spf13/cobra"
)

func newPrintCommand(a *app) *cobra.Command {
	var (
		tab      string
		faq      int
		pkg      int
		width    int
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render a page once and exit",
		Long: `Render one page to standard output without the interactive frame.

--faq and --package open an item the way a click would. With --markdown the
page is printed as a document instead, with every answer and feature shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tab == "" {
				tab = a.cfg.UI.DefaultTab
			}
			if _, err := tabs.Lookup(tab); err != nil {
				return err
			}
			if width <= 0 {
				width = a.cfg.Export.Width
			}

			var out string
			var err error
			if markdown {
				out, err = a.printMarkdown(tab, width)
			} else {
				out, err = a.printPage(tab, width, faq, pkg)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tab, "tab", "t", "", "page to print: "+strings.Join(tabs.IDs(), ", "))
	cmd.Flags().IntVar(&faq, "faq", 0, "open the FAQ entry with this id")
	cmd.Flags().IntVar(&pkg, "package", 0, "open the package with this id")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "columns to render for (default export.width)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the page as Markdown")
	return cmd
}

func (a *app) printPage(tab string, width, faq, pkg int) (string, error) {
	if faq != 0 {
		if _, err := content.FAQByID(faq); err != nil {
			return "", err
		}
	}
	if pkg != 0 {
		if _, err := content.PackageByID(pkg); err != nil {
			return "", err
		}
	}
	return growgroove.Render(tab, a.cfg.Registry(), width, growgroove.Selection{FAQ: faq, Package: pkg})
}

func (a *app) printMarkdown(tab string, width int) (string, error) {
	md, err := export.Markdown(tab)
	if err != nil {
		return "", err
	}
	return export.Render(md, a.cfg.Export.Style, width)
}

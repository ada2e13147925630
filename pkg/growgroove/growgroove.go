// Package growgroove runs the Growgroove site in the terminal.
package growgroove

import (
	"context"
	"errors"
	"fmt"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/console"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/sections"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure an interactive run.
type Options struct {
	Site      console.SiteOptions
	AltScreen bool
	Mouse     bool
	// ProgramOptions are passed to bubbletea after the ones above.
	ProgramOptions []tea.ProgramOption
}

// Run shows the site until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := console.NewSiteModel(opts.Site)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	progOpts = append(progOpts, opts.ProgramOptions...)

	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run site: %w", err)
	}
	return nil
}

// Selection names the items open on a statically rendered page. Zero means
// nothing open.
type Selection struct {
	FAQ     int
	Package int
}

// Render draws one page once, without the interactive frame.
func Render(tabID string, reg *theme.Registry, width int, sel Selection) (string, error) {
	tab, err := tabs.Lookup(tabID)
	if err != nil {
		return "", err
	}
	if reg == nil {
		reg = theme.NewRegistry(nil)
	}

	var st sections.State
	if sel.FAQ != 0 {
		st.FAQ.Toggle(sel.FAQ)
	}
	if sel.Package != 0 {
		st.Package.Toggle(sel.Package)
	}

	p := sections.Props{Theme: reg.MustGet(tab.Theme), Width: width}
	page := sections.Page(tab.ID, p, st)
	return components.Center(width, page).View, nil
}

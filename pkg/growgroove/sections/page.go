package sections

import (
	"github.com/ImGajeed76/growgroove/pkg/growgroove/accordion"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
)

// State is the per-page selection a page is rendered with.
type State struct {
	FAQ     accordion.Selection
	Package accordion.Selection
}

// Page composes the sections of a tab in order. Unknown tab ids render an
// empty block.
func Page(tabID string, p Props, st State) components.Block {
	switch tabID {
	case tabs.About:
		return components.Stack(
			AboutHero(p),
			Schedule(p),
			components.Spacer(2),
			Experience(p),
			FAQ(p, st.FAQ),
		)
	case tabs.Agenda:
		return Agenda(p, st.Package)
	case tabs.Tickets:
		return components.Stack(
			ContactHero(p),
			Pricing(p),
		)
	}
	return components.Block{}
}

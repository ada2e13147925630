package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind says what a clickable region controls.
type Kind int

const (
	KindNone Kind = iota
	KindFAQ
	KindPackage
	KindTab
)

func (k Kind) String() string {
	switch k {
	case KindFAQ:
		return "faq"
	case KindPackage:
		return "package"
	case KindTab:
		return "tab"
	default:
		return "none"
	}
}

// Target identifies a clickable header. For KindTab, ID is the tab index.
type Target struct {
	Kind Kind
	ID   int
}

// IsZero reports whether t points at nothing.
func (t Target) IsZero() bool {
	return t.Kind == KindNone
}

// Region is a clickable rectangle in block coordinates (cells, zero based).
type Region struct {
	Target Target
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Block is rendered text together with the clickable regions inside it.
type Block struct {
	View    string
	Regions []Region
}

// Text wraps a plain string without regions.
func Text(s string) Block {
	return Block{View: s}
}

// Clickable makes the whole of view a region for target.
func Clickable(view string, target Target) Block {
	return Block{
		View: view,
		Regions: []Region{{
			Target: target,
			Width:  lipgloss.Width(view),
			Height: lipgloss.Height(view),
		}},
	}
}

// Spacer is n empty lines.
func Spacer(n int) Block {
	if n <= 0 {
		return Block{}
	}
	return Block{View: strings.TrimSuffix(strings.Repeat(" \n", n), "\n")}
}

// Width is the widest line of the block.
func (b Block) Width() int {
	return lipgloss.Width(b.View)
}

// Height is the number of lines, zero for an empty block.
func (b Block) Height() int {
	if b.View == "" && len(b.Regions) == 0 {
		return 0
	}
	return lipgloss.Height(b.View)
}

// Offset returns the block's regions shifted by (dx, dy).
func (b Block) Offset(dx, dy int) []Region {
	out := make([]Region, len(b.Regions))
	for i, r := range b.Regions {
		r.X += dx
		r.Y += dy
		out[i] = r
	}
	return out
}

// Hit returns the target under (x, y). Later regions win on overlap.
func (b Block) Hit(x, y int) (Target, bool) {
	for i := len(b.Regions) - 1; i >= 0; i-- {
		if b.Regions[i].Contains(x, y) {
			return b.Regions[i].Target, true
		}
	}
	return Target{}, false
}

// Region returns the region of target, if the block contains it.
func (b Block) Region(target Target) (Region, bool) {
	for _, r := range b.Regions {
		if r.Target == target {
			return r, true
		}
	}
	return Region{}, false
}

// Targets lists the clickable targets top to bottom, left to right.
func (b Block) Targets() []Target {
	out := make([]Target, 0, len(b.Regions))
	for _, r := range b.Regions {
		out = append(out, r.Target)
	}
	return out
}

// Stack joins blocks top to bottom, left aligned. Empty blocks are skipped.
func Stack(blocks ...Block) Block {
	var views []string
	var regions []Region
	y := 0
	for _, b := range blocks {
		h := b.Height()
		if h == 0 {
			continue
		}
		views = append(views, b.View)
		regions = append(regions, b.Offset(0, y)...)
		y += h
	}
	return Block{View: lipgloss.JoinVertical(lipgloss.Left, views...), Regions: regions}
}

// Row joins blocks left to right, top aligned, with gap columns between them.
func Row(gap int, blocks ...Block) Block {
	var views []string
	var regions []Region
	x := 0
	for _, b := range blocks {
		if b.Height() == 0 {
			continue
		}
		if len(views) > 0 && gap > 0 {
			views = append(views, strings.Repeat(" ", gap))
			x += gap
		}
		views = append(views, b.View)
		regions = append(regions, b.Offset(x, 0)...)
		x += b.Width()
	}
	return Block{View: lipgloss.JoinHorizontal(lipgloss.Top, views...), Regions: regions}
}

// Center places b in the middle of width columns.
func Center(width int, b Block) Block {
	w := b.Width()
	if w >= width {
		return b
	}
	left := (width - w) / 2
	return Block{
		View:    lipgloss.PlaceHorizontal(width, lipgloss.Center, padLines(b.View, w)),
		Regions: b.Offset(left, 0),
	}
}

// padLines right-pads every line to w columns so multi-line blocks move as
// one piece when placed.
func padLines(view string, w int) string {
	lines := strings.Split(view, "\n")
	for i, l := range lines {
		if short := w - lipgloss.Width(l); short > 0 {
			lines[i] = l + strings.Repeat(" ", short)
		}
	}
	return strings.Join(lines, "\n")
}

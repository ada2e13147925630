package tabs

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned when a tab id is not registered.
var ErrUnknownTab = errors.New("unknown tab")

const (
	About   = "about"
	Agenda  = "agenda"
	Tickets = "tickets"
)

// Tab maps a page id to its label, number and theme name.
type Tab struct {
	ID     string
	Label  string
	Number string
	Theme  string
}

var registry = []Tab{
	{ID: About, Label: "SERVICES", Number: "01", Theme: "orange"},
	{ID: Agenda, Label: "PACKAGES", Number: "02", Theme: "purple"},
	{ID: Tickets, Label: "CONTACT", Number: "03", Theme: "blue"},
}

// All returns the tabs in display order.
func All() []Tab {
	out := make([]Tab, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the tab with the given id.
func Lookup(id string) (Tab, error) {
	i := Index(id)
	if i < 0 {
		return Tab{}, fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}
	return registry[i], nil
}

// Index returns the position of id, or -1.
func Index(id string) int {
	for i, t := range registry {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the tab ids in display order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, t := range registry {
		ids[i] = t.ID
	}
	return ids
}

// Next returns the index after i, wrapping around.
func Next(i int) int {
	return (i + 1) % len(registry)
}

// Prev returns the index before i, wrapping around.
func Prev(i int) int {
	return (i - 1 + len(registry)) % len(registry)
}

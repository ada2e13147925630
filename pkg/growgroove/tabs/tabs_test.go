package tabs

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id        string
		wantLabel string
		wantNum   string
		wantTheme string
		wantErr   bool
	}{
		{id: About, wantLabel: "SERVICES", wantNum: "01", wantTheme: "orange"},
		{id: Agenda, wantLabel: "PACKAGES", wantNum: "02", wantTheme: "purple"},
		{id: Tickets, wantLabel: "CONTACT", wantNum: "03", wantTheme: "blue"},
		{id: "pricing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := Lookup(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTab) {
					t.Fatalf("Lookup(%q) error = %v, want ErrUnknownTab", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.id, err)
			}
			if got.Label != tt.wantLabel || got.Number != tt.wantNum || got.Theme != tt.wantTheme {
				t.Errorf("Lookup(%q) = %+v", tt.id, got)
			}
		})
	}
}

func TestNextPrevWrap(t *testing.T) {
	n := len(All())
	if got := Next(n - 1); got != 0 {
		t.Errorf("Next(last) = %d, want 0", got)
	}
	if got := Prev(0); got != n-1 {
		t.Errorf("Prev(0) = %d, want %d", got, n-1)
	}
	if got := Next(0); got != 1 {
		t.Errorf("Next(0) = %d, want 1", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Label = "CHANGED"
	if got, _ := Lookup(About); got.Label != "SERVICES" {
		t.Errorf("registry mutated through All(): %q", got.Label)
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	want := []string{About, Agenda, Tickets}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

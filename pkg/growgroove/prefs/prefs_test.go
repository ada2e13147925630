package prefs

import (
	"errors"
	"testing"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/zalando/go-keyring"
)

func TestNew(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptyService) {
		t.Errorf("New(\"\") error = %v, want ErrEmptyService", err)
	}
	if s, err := New("growgroove-test"); err != nil || s == nil {
		t.Errorf("New() = %v, %v", s, err)
	}
}

func TestLastTabRoundTrip(t *testing.T) {
	keyring.MockInit()

	s, err := New("growgroove-test")
	if err != nil {
		t.Fatal(err)
	}

	if got := s.LastTab(); got != "" {
		t.Errorf("LastTab() before save = %q, want empty", got)
	}

	if err := s.SaveLastTab(tabs.Tickets); err != nil {
		t.Fatalf("SaveLastTab() error = %v", err)
	}
	if got := s.LastTab(); got != tabs.Tickets {
		t.Errorf("LastTab() = %q, want %q", got, tabs.Tickets)
	}

	if err := s.Forget(); err != nil {
		t.Fatalf("Forget() error = %v", err)
	}
	if got := s.LastTab(); got != "" {
		t.Errorf("LastTab() after Forget = %q, want empty", got)
	}
	if err := s.Forget(); err != nil {
		t.Errorf("Forget() twice error = %v", err)
	}
}

func TestSaveLastTabRejectsUnknown(t *testing.T) {
	keyring.MockInit()

	s, _ := New("growgroove-test")
	if err := s.SaveLastTab("blog"); !errors.Is(err, tabs.ErrUnknownTab) {
		t.Errorf("SaveLastTab(blog) error = %v, want ErrUnknownTab", err)
	}
}

func TestLastTabIgnoresStaleValue(t *testing.T) {
	keyring.MockInit()

	if err := keyring.Set("growgroove-test", lastTabKey, "removed-page"); err != nil {
		t.Fatal(err)
	}
	s, _ := New("growgroove-test")
	if got := s.LastTab(); got != "" {
		t.Errorf("LastTab() = %q, want empty for unknown stored tab", got)
	}
}

func TestKeyringErrorsAreReported(t *testing.T) {
	keyring.MockInitWithError(errors.New("locked"))

	s, _ := New("growgroove-test")
	if err := s.SaveLastTab(tabs.About); err == nil {
		t.Error("SaveLastTab() expected error from locked keyring")
	}
	if got := s.LastTab(); got != "" {
		t.Errorf("LastTab() = %q, want empty on keyring error", got)
	}
	if err := s.Forget(); err == nil {
		t.Error("Forget() expected error from locked keyring")
	}
}

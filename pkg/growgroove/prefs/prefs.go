package prefs

import (
	"errors"
	"fmt"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/zalando/go-keyring"
)

// ErrEmptyService is returned by New when no service name is given.
var ErrEmptyService = errors.New("service name cannot be empty")

const lastTabKey = "last_tab"

// Store keeps user preferences in the system keyring, namespaced by service.
// Only navigation preferences live here; accordion state is never stored.
type Store struct {
	service string
}

// New creates a Store for the given service name.
func New(service string) (*Store, error) {
	if service == "" {
		return nil, ErrEmptyService
	}
	return &Store{
		service: service,
	}, nil
}

// LastTab returns the tab id saved by SaveLastTab. It returns "" when nothing
// is saved or the saved value is no longer a known tab.
func (s *Store) LastTab() string {
	value, err := keyring.Get(s.service, lastTabKey)
	if err != nil {
		return ""
	}
	if _, err := tabs.Lookup(value); err != nil {
		return ""
	}
	return value
}

// SaveLastTab remembers id as the tab to open next time.
func (s *Store) SaveLastTab(id string) error {
	if _, err := tabs.Lookup(id); err != nil {
		return err
	}
	if err := keyring.Set(s.service, lastTabKey, id); err != nil {
		return fmt.Errorf("failed to save last tab: %w", err)
	}
	return nil
}

// Forget removes every preference stored under the service name.
func (s *Store) Forget() error {
	err := keyring.Delete(s.service, lastTabKey)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	return nil
}

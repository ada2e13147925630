package theme

// Registry resolves theme names to themes, applying configured overrides on
// top of the built-in palettes.
type Registry struct {
	overrides map[string]Theme
}

// NewRegistry creates a registry. Overrides for names that are not built in
// register new themes.
func NewRegistry(overrides map[string]Theme) *Registry {
	copied := make(map[string]Theme, len(overrides))
	for name, t := range overrides {
		copied[name] = t
	}
	return &Registry{overrides: copied}
}

// Get returns the theme for name.
func (r *Registry) Get(name string) (Theme, error) {
	override, hasOverride := r.overrides[name]
	base, err := Lookup(name)
	if err != nil {
		if hasOverride {
			return override, nil
		}
		return Theme{}, err
	}
	return base.Merge(override), nil
}

// MustGet is Get degraded: an unknown name yields the zero Theme, which
// renders every section unstyled.
func (r *Registry) MustGet(name string) Theme {
	t, _ := r.Get(name)
	return t
}

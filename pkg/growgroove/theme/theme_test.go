package theme

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		wantErr bool
	}{
		{name: "orange", theme: "orange"},
		{name: "purple", theme: "purple"},
		{name: "blue", theme: "blue"},
		{name: "unknown", theme: "green", wantErr: true},
		{name: "empty", theme: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.theme)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTheme) {
					t.Errorf("Lookup(%q) error = %v, want ErrUnknownTheme", tt.theme, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.theme, err)
			}
			if missing := got.Missing(); len(missing) != 0 {
				t.Errorf("built-in theme %q has unusable fields %v", tt.theme, missing)
			}
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"blue", "orange", "purple"}, Names())
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name  string
		theme Theme
		want  []string
	}{
		{
			name:  "zero theme",
			theme: Theme{},
			want:  []string{"bg", "text", "accent", "gradient", "shadow"},
		},
		{
			name:  "missing shadow",
			theme: Theme{Bg: "#000000", Text: "15", Accent: "#fff", Gradient: "#000000,#ffffff"},
			want:  []string{"shadow"},
		},
		{
			name:  "garbage values",
			theme: Theme{Bg: "bg-orange-500", Text: "300", Accent: "#zzz", Gradient: "from-a to-b", Shadow: "#123456"},
			want:  []string{"bg", "text", "accent", "gradient"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.theme.Missing())
		})
	}
}

func TestStylesDegradeWithoutFields(t *testing.T) {
	var empty Theme

	_, hasBg := empty.Background().GetBackground().(lipgloss.NoColor)
	assert.True(t, hasBg, "background should be unset")

	_, hasFg := empty.Foreground().GetForeground().(lipgloss.NoColor)
	assert.True(t, hasFg, "foreground should be unset")

	assert.NotPanics(t, func() {
		_ = empty.Pill().Render("FAQ")
		_ = empty.Border(lipgloss.RoundedBorder()).Render("card")
		_ = empty.Highlight().Render("focus")
		_ = empty.Band(3)
	})
}

func TestBackgroundTextColour(t *testing.T) {
	tests := []struct {
		name      string
		theme     Theme
		wantWhite bool
	}{
		{name: "usable bg", theme: Theme{Bg: "#F97316"}, wantWhite: true},
		{name: "missing bg", theme: Theme{Text: "#111827"}},
		{name: "invalid bg", theme: Theme{Bg: "#zzzzzz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := tt.theme.Background().GetForeground()
			if tt.wantWhite {
				assert.Equal(t, lipgloss.Color("#FFFFFF"), fg)
				return
			}
			_, unset := fg.(lipgloss.NoColor)
			if !unset {
				t.Errorf("Background() foreground = %v, want terminal default", fg)
			}
		})
	}
}

func TestSample(t *testing.T) {
	th := Theme{Gradient: "#000000, #ffffff"}

	start, ok := th.Sample(0)
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#000000"), start)

	end, ok := th.Sample(1)
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#ffffff"), end)

	clamped, ok := th.Sample(7)
	require.True(t, ok)
	assert.Equal(t, end, clamped)

	single := Theme{Gradient: "#123456"}
	c, ok := single.Sample(0.5)
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#123456"), c)

	_, ok = Theme{}.Sample(0.5)
	assert.False(t, ok)
}

func TestBand(t *testing.T) {
	th, err := Lookup("orange")
	require.NoError(t, err)

	band := th.Band(3)
	require.Len(t, band, 3)
	for i, s := range band {
		_, unset := s.GetBackground().(lipgloss.NoColor)
		assert.False(t, unset, "column %d should have a background", i)
	}

	plain := Theme{}.Band(2)
	for i, s := range plain {
		_, unset := s.GetBackground().(lipgloss.NoColor)
		assert.True(t, unset, "column %d should be unstyled", i)
		_, plainText := s.GetForeground().(lipgloss.NoColor)
		assert.True(t, plainText, "column %d should keep the terminal text colour", i)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(map[string]Theme{
		"orange": {Bg: "#111111"},
		"mono":   {Bg: "0", Text: "15"},
	})

	orange, err := r.Get("orange")
	require.NoError(t, err)
	assert.Equal(t, "#111111", orange.Bg)
	assert.Equal(t, "#FF6B35", orange.Text, "fields without override keep the built-in value")

	mono, err := r.Get("mono")
	require.NoError(t, err)
	assert.Equal(t, Theme{Bg: "0", Text: "15"}, mono)

	_, err = r.Get("green")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, Theme{}, r.MustGet("green"))
}

func TestInvalid(t *testing.T) {
	assert.Empty(t, Theme{}.Invalid(), "empty fields are missing, not invalid")

	orange, err := Lookup("orange")
	require.NoError(t, err)
	assert.Empty(t, orange.Invalid())

	broken := Theme{Bg: "tomato", Text: "#FFF", Accent: "300", Gradient: "red blue", Shadow: "12"}
	assert.Equal(t, []string{"bg", "accent", "gradient"}, broken.Invalid())
}

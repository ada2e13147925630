package theme

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownTheme is returned when a theme name is not registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the five style identifiers a section is coloured with.
// Every field is a lipgloss colour string ("#FF6B35" or an ANSI index such as "208").
// Gradient holds two or more stops separated by commas or spaces.
type Theme struct {
	Bg       string `mapstructure:"bg"`
	Text     string `mapstructure:"text"`
	Accent   string `mapstructure:"accent"`
	Gradient string `mapstructure:"gradient"`
	Shadow   string `mapstructure:"shadow"`
}

var builtin = map[string]Theme{
	"orange": {
		Bg:       "#FF6B35",
		Text:     "#FF6B35",
		Accent:   "#FFE3D6",
		Gradient: "#FF8C42,#FF3C38",
		Shadow:   "#A63A12",
	},
	"purple": {
		Bg:       "#8B5CF6",
		Text:     "#A78BFA",
		Accent:   "#EDE4FF",
		Gradient: "#A855F7,#6366F1",
		Shadow:   "#4C1D95",
	},
	"blue": {
		Bg:       "#3B82F6",
		Text:     "#60A5FA",
		Accent:   "#DBEAFE",
		Gradient: "#06B6D4,#3B82F6",
		Shadow:   "#1E3A8A",
	},
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a built-in theme by name.
func Lookup(name string) (Theme, error) {
	t, ok := builtin[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Merge returns t with every non-empty field of override applied on top.
func (t Theme) Merge(override Theme) Theme {
	if override.Bg != "" {
		t.Bg = override.Bg
	}
	if override.Text != "" {
		t.Text = override.Text
	}
	if override.Accent != "" {
		t.Accent = override.Accent
	}
	if override.Gradient != "" {
		t.Gradient = override.Gradient
	}
	if override.Shadow != "" {
		t.Shadow = override.Shadow
	}
	return t
}

// Missing lists the fields that are empty or cannot be used as a colour.
func (t Theme) Missing() []string {
	var missing []string
	if !validColor(t.Bg) {
		missing = append(missing, "bg")
	}
	if !validColor(t.Text) {
		missing = append(missing, "text")
	}
	if !validColor(t.Accent) {
		missing = append(missing, "accent")
	}
	if len(t.Stops()) == 0 {
		missing = append(missing, "gradient")
	}
	if !validColor(t.Shadow) {
		missing = append(missing, "shadow")
	}
	return missing
}

// Invalid lists the fields that are set but cannot be used as a colour.
func (t Theme) Invalid() []string {
	var invalid []string
	check := func(name, value string, ok bool) {
		if strings.TrimSpace(value) != "" && !ok {
			invalid = append(invalid, name)
		}
	}
	check("bg", t.Bg, validColor(t.Bg))
	check("text", t.Text, validColor(t.Text))
	check("accent", t.Accent, validColor(t.Accent))
	check("gradient", t.Gradient, len(t.Stops()) > 0)
	check("shadow", t.Shadow, validColor(t.Shadow))
	return invalid
}

// Background is the card and header fill with white text on it. Without a
// usable bg it is unstyled and text keeps the terminal colour.
func (t Theme) Background() lipgloss.Style {
	s := lipgloss.NewStyle()
	if validColor(t.Bg) {
		s = s.Background(lipgloss.Color(t.Bg)).Foreground(lipgloss.Color("#FFFFFF"))
	}
	return s
}

// Foreground colours headings and body copy.
func (t Theme) Foreground() lipgloss.Style {
	s := lipgloss.NewStyle()
	if validColor(t.Text) {
		s = s.Foreground(lipgloss.Color(t.Text))
	}
	return s
}

// Pill is the badge style: accent fill with text-coloured label.
func (t Theme) Pill() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 2)
	if validColor(t.Accent) {
		s = s.Background(lipgloss.Color(t.Accent))
	}
	if validColor(t.Text) {
		s = s.Foreground(lipgloss.Color(t.Text))
	}
	return s
}

// Border draws a card outline in the shadow colour.
func (t Theme) Border(border lipgloss.Border) lipgloss.Style {
	s := lipgloss.NewStyle().Border(border)
	if validColor(t.Shadow) {
		s = s.BorderForeground(lipgloss.Color(t.Shadow))
	}
	return s
}

// Highlight marks the focused element with the accent colour.
func (t Theme) Highlight() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if validColor(t.Accent) {
		s = s.Foreground(lipgloss.Color(t.Accent))
	}
	return s
}

// Stops parses the gradient stops. Stops that are not hex colours are skipped.
func (t Theme) Stops() []colorful.Color {
	fields := strings.FieldsFunc(t.Gradient, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	stops := make([]colorful.Color, 0, len(fields))
	for _, f := range fields {
		c, err := colorful.Hex(f)
		if err != nil {
			continue
		}
		stops = append(stops, c)
	}
	return stops
}

// Sample returns the gradient colour at position p in [0,1], and false when
// the theme has no usable gradient.
func (t Theme) Sample(p float64) (lipgloss.Color, bool) {
	stops := t.Stops()
	switch len(stops) {
	case 0:
		return "", false
	case 1:
		return lipgloss.Color(stops[0].Hex()), true
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	segment := p * float64(len(stops)-1)
	i := int(segment)
	if i >= len(stops)-1 {
		return lipgloss.Color(stops[len(stops)-1].Hex()), true
	}
	frac := segment - float64(i)
	if frac == 0 {
		return lipgloss.Color(stops[i].Hex()), true
	}
	c := stops[i].BlendLab(stops[i+1], frac).Clamped()
	return lipgloss.Color(c.Hex()), true
}

// Band renders n equal columns of the gradient, each filled with the colour
// sampled at its centre. Without a gradient the columns are unstyled.
func (t Theme) Band(n int) []lipgloss.Style {
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		s := lipgloss.NewStyle()
		if c, ok := t.Sample((float64(i) + 0.5) / float64(n)); ok {
			s = s.Background(c).Foreground(lipgloss.Color("#FFFFFF"))
		}
		styles[i] = s
	}
	return styles
}

func validColor(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		_, err := colorful.Hex(s)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

package internal

var Version = "0.1.0"

const (
	AppName = "Growgroove"
	// Keyring service and config directory name.
	ServiceName = "growgroove"
)

type uiTheme struct {
	PrimaryColor   string
	SecondaryColor string
	ErrorColor     string
	TertiaryColor  string
}

// Theme colours the chrome around the pages (tab bar, footer, hints).
// Page sections are coloured by the tab theme instead.
var Theme = uiTheme{
	PrimaryColor:   "#FFFFFF",
	SecondaryColor: "#ccc",    // Lighter gray for better readability
	ErrorColor:     "#FF5F5F", // Red for errors
	TertiaryColor:  "#666666",
}

package formatter

import (
	"fmt"
	"strings"
)

// SettingsURL is where users find their API key.
const SettingsURL = "https://wakatime.com/settings"

// FormatMissingKey renders the instructions shown when no API key is stored
// or the stored key was rejected.
func FormatMissingKey(path string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StyleRed.Render(" No API Key provided") + "\n")
	b.WriteString(StyleRed.Render(" Example: ") + StylePurple.Render("wakatime api 'your key here'") + "\n")
	b.WriteString(StyleRed.Render(" Note: ") + StylePurple.Render("your api key is available @ "+SettingsURL) + "\n")
	if path != "" {
		b.WriteString(Dim(fmt.Sprintf(" Key file: %s", path)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatUnauthorized renders the message for a key the API rejected.
func FormatUnauthorized(path string) string {
	return "\n" + StyleRed.Render(" The stored API key was rejected.") + "\n" + FormatMissingKey(path)
}

// FormatKeySaved confirms a stored key.
func FormatKeySaved(path string) string {
	return StyleGreen.Render("API key saved.") + " " + Dim(path) + "\n"
}

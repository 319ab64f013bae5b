// Package preferences persists the two theme switches of the installer.
package preferences

// ThemePreferences is the durable theme state written to settings.json
type ThemePreferences struct {
	DarkMode     bool `json:"dark_mode"`
	FollowSystem bool `json:"follow_system"`
}

// Defaults returns the light, manually controlled theme
func Defaults() ThemePreferences {
	return ThemePreferences{}
}

// ThemeName returns "dark" or "light" for the current DarkMode value
func (p ThemePreferences) ThemeName() string {
	if p.DarkMode {
		return "dark"
	}
	return "light"
}
